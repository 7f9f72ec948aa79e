// Package errs defines the error taxonomy used by the decimalx, frame,
// codec, and root arthur packages. Precision, overflow, corrupt-stream,
// I/O, closed-stream, missing-snapshot, and end-of-stream conditions are
// reported as one of the types or sentinels defined here (or wrap one), so
// callers can dispatch on error kind with errors.As/errors.Is instead of
// string matching. Argument-validation failures (an empty frame payload, a
// snapshot bit width above 255, a timestamp offset out of range in
// bookctx) are plain errors, not types from this package.
package errs

import (
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for conditions that carry no useful payload beyond their
// identity. Check these with errors.Is.
var (
	// ErrStreamClosed is returned by Writer/Reader operations performed
	// after Close has already been called.
	ErrStreamClosed = errors.New("arthur: stream closed")

	// ErrMissingSnapshot is returned when an overflowing BookDiff or Trade
	// carries no snapshot-resolving callback (or the callback resolves to
	// nil) for the driver to recover with.
	ErrMissingSnapshot = errors.New("arthur: overflow with no snapshot to recover from")

	// ErrEndOfStream is returned by Reader.Read once the underlying source
	// is exhausted at a frame boundary. It is distinct from io.EOF so
	// callers that only import errs don't need the io package, but it
	// wraps io.EOF and satisfies errors.Is(err, io.EOF).
	ErrEndOfStream = fmt.Errorf("arthur: end of stream: %w", io.EOF)
)

// PrecisionError reports that a decimal price or quantity is not an exact
// integer multiple of the governing tick or lot size. It is fatal for the
// message being encoded; the driver never attempts to recover from it.
type PrecisionError struct {
	Kind  string // "price", "qty", or "scale" (a tick/lot size that does not reduce to a signed byte pair)
	Value string // decimal.Decimal.String() of the offending value
	Unit  string // decimal.Decimal.String() of tick_size or lot_size
}

func (e *PrecisionError) Error() string {
	return fmt.Sprintf("arthur: %s %s is not an exact multiple of %s", e.Kind, e.Value, e.Unit)
}

// OverflowError reports that an integer tick or lot count does not fit the
// bit width fixed by the current serialization context. The driver catches
// this error (and only this error) when writing a BookDiff or Trade, and
// recovers by emitting an in-line snapshot; see the arthur package's
// driver.go.
type OverflowError struct {
	Kind  string // "ticks" or "lots"
	Bits  int    // bitlength actually required
	Limit int    // bit width available (pbits or qbits)
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("arthur: %s require %d bits but only %d are available", e.Kind, e.Bits, e.Limit)
}

// CorruptStreamError reports that a frame could not be parsed according to
// its declared type or length: a truncated read mid-structure, a type flag
// outside 0-7, or a payload whose length is inconsistent with its message
// kind. The stream is unusable past the point this error is returned.
type CorruptStreamError struct {
	Reason string
	Err    error // underlying cause, if any (e.g. a short read)
}

func (e *CorruptStreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("arthur: corrupt stream: %s: %v", e.Reason, e.Err)
	}

	return fmt.Sprintf("arthur: corrupt stream: %s", e.Reason)
}

func (e *CorruptStreamError) Unwrap() error {
	return e.Err
}

// IOError wraps a failure surfaced by the caller's underlying byte sink or
// source, unchanged in meaning but identifiable via errors.As.
type IOError struct {
	Op  string // "write", "flush", or "close"
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("arthur: %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
