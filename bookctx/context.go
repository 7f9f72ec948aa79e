package bookctx

import (
	"errors"

	"github.com/shopspring/decimal"
)

// MaxTimestampOffset is the largest value a frame's 16-bit ts_off field can
// carry; a gap larger than this forces a fresh TIMESTAMP frame.
const MaxTimestampOffset = 65535

// Context is the live encoding/decoding state shared, in lock-step, by a
// Writer and a Reader over one stream. The zero value is a valid
// Uninitialized context, ready for stream open.
type Context struct {
	state State

	hasTimestamp bool
	timestamp    int64

	pbits uint8
	qbits uint8

	tickSize decimal.Decimal
	lotSize  decimal.Decimal
}

// New returns a fresh Context in the Uninitialized state.
func New() *Context {
	return &Context{}
}

func (c *Context) State() State { return c.state }

func (c *Context) Timestamp() int64 { return c.timestamp }

func (c *Context) HasTimestamp() bool { return c.hasTimestamp }

func (c *Context) PBits() uint8 { return c.pbits }

func (c *Context) QBits() uint8 { return c.qbits }

func (c *Context) TickSize() decimal.Decimal { return c.tickSize }

func (c *Context) LotSize() decimal.Decimal { return c.lotSize }

// NeedsTimestampFrame reports whether writing a message timestamped ts
// requires a fresh TIMESTAMP frame first: no reference has been set yet,
// ts precedes the current reference, or the gap would not fit in the
// 16-bit ts_off field.
func (c *Context) NeedsTimestampFrame(ts int64) bool {
	if !c.hasTimestamp {
		return true
	}

	delta := ts - c.timestamp

	return delta < 0 || delta > MaxTimestampOffset
}

// SetTimestamp records a new reference epoch, as seen on a TIMESTAMP
// frame; a SNAPSHOT never sets it. It advances Uninitialized to Timed;
// later calls (a subsequent TIMESTAMP frame further down the stream) leave
// the state unchanged.
func (c *Context) SetTimestamp(ts int64) {
	c.timestamp = ts
	c.hasTimestamp = true

	if c.state == Uninitialized {
		c.state = Timed
	}
}

// Offset computes ts_off for a message timestamped ts against the current
// reference. The caller must have already called SetTimestamp if
// NeedsTimestampFrame reported true; Offset returns an error instead of a
// silently truncated value if the precondition was skipped.
func (c *Context) Offset(ts int64) (uint16, error) {
	if !c.hasTimestamp {
		return 0, errors.New("bookctx: no timestamp reference set")
	}

	delta := ts - c.timestamp
	if delta < 0 || delta > MaxTimestampOffset {
		return 0, errors.New("bookctx: timestamp delta out of range for ts_off")
	}

	return uint16(delta), nil
}

// EffectiveTimestamp reconstructs a frame's absolute timestamp from the
// context's current reference and the frame's ts_off, the read-side
// inverse of Offset.
func (c *Context) EffectiveTimestamp(tsOff uint16) int64 {
	return c.timestamp + int64(tsOff)
}

// ApplySnapshot records the bit widths and decimal scales established by a
// SNAPSHOT frame just written or read, advancing the context to Ready.
func (c *Context) ApplySnapshot(pbits, qbits uint8, tickSize, lotSize decimal.Decimal) {
	c.pbits = pbits
	c.qbits = qbits
	c.tickSize = tickSize
	c.lotSize = lotSize
	c.state = Ready
}

// Ready reports whether a SNAPSHOT has been seen, i.e. whether diffs,
// removals, and trades can be written or read against this context.
func (c *Context) Ready() bool {
	return c.state == Ready
}

// FitsTicks reports whether a ticks count needing bits bits fits in the
// context's current pbits. The diff and trade codecs do their own overflow
// check against the pbits they are given and do not call it.
func (c *Context) FitsTicks(bits int) bool {
	return bits <= int(c.pbits)
}

// FitsLots reports whether a lots count needing bits bits fits in the
// context's current qbits. The trade codec does its own overflow check
// against the qbits it is given and does not call it.
func (c *Context) FitsLots(bits int) bool {
	return bits <= int(c.qbits)
}
