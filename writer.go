package arthur

import (
	"io"

	"github.com/arthur-md/arthur/bookctx"
	"github.com/arthur-md/arthur/errs"
)

// Writer turns logical messages into ARTHUR frames written to a byte
// sink. It is a single-threaded, sequentially consistent wrapper: no
// suspension or background work happens inside Write, and every frame it
// produces depends only on messages written earlier on this same Writer.
type Writer struct {
	sink   io.Writer
	ctx    *bookctx.Context
	closed bool
}

// NewWriter creates a Writer over sink. By default the Writer starts
// Uninitialized, as at the start of a brand-new stream; pass WithContext
// to resume appending to a stream whose prefix already exists.
func NewWriter(sink io.Writer, opts ...Option) (*Writer, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return &Writer{sink: sink, ctx: cfg.ctx}, nil
}

// Write encodes m and appends its frame(s) to the underlying sink. A
// BookDiff or Trade that overflows the current snapshot's bit widths is
// transparently resolved via its SnapshotDelay callback; see driver.go for
// the recovery rule.
func (w *Writer) Write(m Message) error {
	if w.closed {
		return errs.ErrStreamClosed
	}

	return writeMessage(w.sink, w.ctx, m)
}

// Close flushes (if the sink supports it) and releases the underlying
// sink. Close is idempotent; Write after Close returns
// errs.ErrStreamClosed.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}

	w.closed = true

	if f, ok := w.sink.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return &errs.IOError{Op: "flush", Err: err}
		}
	}

	if c, ok := w.sink.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return &errs.IOError{Op: "close", Err: err}
		}
	}

	return nil
}
