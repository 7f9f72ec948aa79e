package archive

import (
	"bytes"
	"io"

	"github.com/arthur-md/arthur/format"
)

// CompressingWriteCloser buffers everything written to it and, on Close,
// compresses the accumulated bytes in one pass and writes the result to the
// wrapped io.WriteCloser before closing it.
//
// A whole-stream compressor cannot compress incrementally the way a frame
// codec does: ARTHUR streams are read start-to-end or seeked by frame
// boundary, and splitting the archival compression into chunks would
// reintroduce the seek complexity archive exists to avoid. Buffering the
// full stream is the tradeoff; callers archiving very large stream files
// should compress the file after writer.Close() instead of through this
// type.
type CompressingWriteCloser struct {
	dst   io.WriteCloser
	codec Codec
	buf   bytes.Buffer
}

// NewCompressingWriteCloser wraps dst so that everything written through
// the returned writer is compressed with kind before landing in dst.
func NewCompressingWriteCloser(dst io.WriteCloser, kind format.CompressionType) (*CompressingWriteCloser, error) {
	codec, err := NewCodec(kind)
	if err != nil {
		return nil, err
	}

	return &CompressingWriteCloser{dst: dst, codec: codec}, nil
}

func (w *CompressingWriteCloser) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

// Close compresses the buffered stream, writes it to the destination, and
// closes the destination. It does not close twice cleanly; callers must
// not write after Close.
func (w *CompressingWriteCloser) Close() error {
	compressed, err := w.codec.Compress(w.buf.Bytes())
	if err != nil {
		return err
	}

	if _, err := w.dst.Write(compressed); err != nil {
		return err
	}

	return w.dst.Close()
}

// DecompressingReadCloser decompresses the entirety of src on first Read
// and serves it from memory thereafter.
type DecompressingReadCloser struct {
	src   io.ReadCloser
	codec Codec
	buf   *bytes.Reader
}

// NewDecompressingReadCloser wraps src, which must contain a stream
// previously produced by a CompressingWriteCloser using the same kind.
func NewDecompressingReadCloser(src io.ReadCloser, kind format.CompressionType) (*DecompressingReadCloser, error) {
	codec, err := NewCodec(kind)
	if err != nil {
		return nil, err
	}

	return &DecompressingReadCloser{src: src, codec: codec}, nil
}

func (r *DecompressingReadCloser) Read(p []byte) (int, error) {
	if r.buf == nil {
		compressed, err := io.ReadAll(r.src)
		if err != nil {
			return 0, err
		}

		decompressed, err := r.codec.Decompress(compressed)
		if err != nil {
			return 0, err
		}

		r.buf = bytes.NewReader(decompressed)
	}

	return r.buf.Read(p)
}

func (r *DecompressingReadCloser) Close() error {
	return r.src.Close()
}
