package arthur

import (
	"errors"
	"io"

	"github.com/arthur-md/arthur/bookctx"
	"github.com/arthur-md/arthur/errs"
)

// Reader turns ARTHUR frames read from a byte source back into logical
// messages. Like Writer, it is single-threaded and synchronous: each call
// to Read blocks on the source until it can return a message or an error.
type Reader struct {
	source io.Reader
	ctx    *bookctx.Context
	closed bool
}

// NewReader creates a Reader over source. By default the Reader starts
// Uninitialized and rebuilds its context purely from TIMESTAMP and
// SNAPSHOT frames on the wire; pass WithContext only when source does not
// begin at the start of a stream (e.g. resuming a scan after an external
// seek) and the supplied context exactly reflects everything skipped.
func NewReader(source io.Reader, opts ...Option) (*Reader, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return &Reader{source: source, ctx: cfg.ctx}, nil
}

// Read returns the next logical message, or errs.ErrEndOfStream once the
// source is exhausted at a frame boundary. TIMESTAMP frames are consumed
// internally and never yielded as messages.
func (r *Reader) Read() (Message, error) {
	if r.closed {
		return nil, errs.ErrStreamClosed
	}

	m, err := readMessage(r.source, r.ctx)
	if err != nil && !errors.Is(err, errs.ErrEndOfStream) {
		return nil, err
	}

	return m, err
}

// Close releases the underlying source. Close is idempotent; Read after
// Close returns errs.ErrStreamClosed.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}

	r.closed = true

	if c, ok := r.source.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return &errs.IOError{Op: "close", Err: err}
		}
	}

	return nil
}
