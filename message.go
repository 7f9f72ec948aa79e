// Package arthur implements the ARTHUR wire format: a bit-packed binary
// serialization for Level-2 order-book market data. A Writer turns logical
// messages (snapshots, diffs, trades, disconnects) into frames on a byte
// sink; a Reader does the inverse from a byte source. See frame, bookctx,
// and codec for the envelope, shared state, and per-kind wire layouts this
// package drives.
package arthur

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/arthur-md/arthur/codec"
)

// Kind identifies which of the four logical message types a Message is.
type Kind uint8

const (
	KindSnapshot Kind = iota
	KindDiff
	KindTrade
	KindDisconnect
)

func (k Kind) String() string {
	switch k {
	case KindSnapshot:
		return "Snapshot"
	case KindDiff:
		return "Diff"
	case KindTrade:
		return "Trade"
	case KindDisconnect:
		return "Disconnect"
	default:
		return "Unknown"
	}
}

// Message is the tagged-union input/output of Writer.Write and
// Reader.Read: a BookSnapshot, BookDiff, Trade, or Disconnect.
type Message interface {
	Kind() Kind
	Time() int64
}

// SnapshotResolver is the delayed re-entrant value the original source
// calls a lazy thunk: a callback a BookDiff or Trade carries so the driver
// can obtain a full snapshot if (and only if) encoding overflows the
// context's current bit widths. It is invoked at most once, and must
// return a fully realized *BookSnapshot.
type SnapshotResolver func() (*BookSnapshot, error)

// BookSnapshot is a complete view of the book at a moment: every bid and
// ask level, plus the tick_size/lot_size governing every message until the
// next snapshot.
type BookSnapshot struct {
	Bids      []codec.Level
	Asks      []codec.Level
	TickSize  decimal.Decimal
	LotSize   decimal.Decimal
	Timestamp int64
	// Redundant marks a snapshot emitted purely for checksum purposes: a
	// reader maintaining its own book can verify its reconstruction
	// matches instead of trusting it blindly.
	Redundant bool
	// MinPrice and MinQty let the caller widen pbits/qbits beyond what the
	// book's own levels require, so that diffs and trades it already knows
	// are coming (but hasn't written yet) won't immediately overflow this
	// snapshot's widths. Zero value means no extra headroom is requested.
	MinPrice decimal.Decimal
	MinQty   decimal.Decimal
}

func (s *BookSnapshot) Kind() Kind    { return KindSnapshot }
func (s *BookSnapshot) Time() int64 { return s.Timestamp }

// BookDiff is a single price-level update. Qty == 0 means the level was
// removed.
type BookDiff struct {
	Price         decimal.Decimal
	Qty           decimal.Decimal
	IsBid         bool
	Timestamp     int64
	SnapshotDelay SnapshotResolver
}

func (d *BookDiff) Kind() Kind    { return KindDiff }
func (d *BookDiff) Time() int64 { return d.Timestamp }

// Trade is a single executed trade.
type Trade struct {
	Price         decimal.Decimal
	Qty           decimal.Decimal
	MakerIsBid    bool
	ID            codec.TradeID
	Timestamp     int64
	SnapshotDelay SnapshotResolver
}

func (t *Trade) Kind() Kind    { return KindTrade }
func (t *Trade) Time() int64 { return t.Timestamp }

// Disconnect marks a connectivity gap in the upstream feed. It carries no
// payload beyond its timestamp.
type Disconnect struct {
	Timestamp int64
}

func (d *Disconnect) Kind() Kind    { return KindDisconnect }
func (d *Disconnect) Time() int64 { return d.Timestamp }

// NumericTradeID and StringTradeID build a codec.TradeID; re-exported here
// so callers constructing a Trade don't need to import codec directly for
// the common case.
func NumericTradeID(id *big.Int) codec.TradeID { return codec.NumericTradeID(id) }
func StringTradeID(id string) codec.TradeID    { return codec.StringTradeID(id) }
