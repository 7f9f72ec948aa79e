package archive

import (
	"bytes"
	"io"
	"testing"

	"github.com/arthur-md/arthur/format"
	"github.com/stretchr/testify/require"
)

type nopWriteCloser struct {
	*bytes.Buffer
}

func (nopWriteCloser) Close() error { return nil }

type nopReadCloser struct {
	io.Reader
}

func (nopReadCloser) Close() error { return nil }

func TestCompressingWriteCloser_RoundTrip(t *testing.T) {
	kinds := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	payload := bytes.Repeat([]byte("TIMESTAMP SNAPSHOT ASK-DIFF BID-DIFF TRADE "), 200)

	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			var dst bytes.Buffer
			w, err := NewCompressingWriteCloser(nopWriteCloser{&dst}, kind)
			require.NoError(t, err)

			n, err := w.Write(payload)
			require.NoError(t, err)
			require.Equal(t, len(payload), n)
			require.NoError(t, w.Close())

			r, err := NewDecompressingReadCloser(nopReadCloser{bytes.NewReader(dst.Bytes())}, kind)
			require.NoError(t, err)
			defer r.Close()

			got, err := io.ReadAll(r)
			require.NoError(t, err)
			require.Equal(t, payload, got)
		})
	}
}
