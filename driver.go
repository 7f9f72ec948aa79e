package arthur

import (
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/arthur-md/arthur/bookctx"
	"github.com/arthur-md/arthur/codec"
	"github.com/arthur-md/arthur/errs"
	"github.com/arthur-md/arthur/format"
	"github.com/arthur-md/arthur/frame"
)

// writeMessage dispatches m to the correct codec and emits its frame(s),
// first emitting a TIMESTAMP frame if the context needs one. It is the
// write half of the serialization driver shared by Writer.
func writeMessage(sink io.Writer, ctx *bookctx.Context, m Message) error {
	ts := m.Time()

	if ctx.NeedsTimestampFrame(ts) {
		if err := frame.WriteTimestampFrame(sink, ts); err != nil {
			return err
		}

		ctx.SetTimestamp(ts)
	}

	tsOff, err := ctx.Offset(ts)
	if err != nil {
		return err
	}

	switch msg := m.(type) {
	case *BookSnapshot:
		return writeSnapshot(sink, ctx, msg, tsOff, msg.MinPrice, msg.MinQty)
	case *BookDiff:
		return writeDiff(sink, ctx, msg, tsOff)
	case *Trade:
		return writeTrade(sink, ctx, msg, tsOff)
	case *Disconnect:
		if !ctx.Ready() {
			return &errs.CorruptStreamError{Reason: "disconnect written before any snapshot"}
		}

		return frame.WriteFrame(sink, format.Disconnect, tsOff, codec.EncodeDisconnect())
	default:
		return fmt.Errorf("arthur: unsupported message type %T", m)
	}
}

func writeSnapshot(sink io.Writer, ctx *bookctx.Context, s *BookSnapshot, tsOff uint16, minPrice, minQty decimal.Decimal) error {
	payload, widths, err := codec.EncodeSnapshot(s.Bids, s.Asks, s.TickSize, s.LotSize, s.Redundant, minPrice, minQty)
	if err != nil {
		return err
	}

	if err := frame.WriteFrame(sink, format.Snapshot, tsOff, payload); err != nil {
		return err
	}

	ctx.ApplySnapshot(widths.PBits, widths.QBits, widths.TickSize, widths.LotSize)

	return nil
}

func writeDiff(sink io.Writer, ctx *bookctx.Context, d *BookDiff, tsOff uint16) error {
	if !ctx.Ready() {
		return &errs.CorruptStreamError{Reason: "diff written before any snapshot"}
	}

	var (
		payload []byte
		typ     format.MessageType
		err     error
	)

	if d.Qty.Sign() == 0 {
		typ = removalType(d.IsBid)
		payload, err = codec.EncodeRemoval(d.Price, ctx.TickSize(), ctx.PBits())
	} else {
		typ = diffType(d.IsBid)
		payload, err = codec.EncodeDiff(d.Price, d.Qty, ctx.TickSize(), ctx.LotSize(), ctx.PBits())
	}

	var oe *errs.OverflowError
	if errors.As(err, &oe) {
		// The resolved snapshot already reflects the state this diff was
		// trying to apply, so the diff itself is dropped per the overflow
		// recovery rule.
		_, rerr := recoverFromOverflow(sink, ctx, d.SnapshotDelay, d.Timestamp, d.Price, d.Qty)
		return rerr
	}

	if err != nil {
		return err
	}

	return frame.WriteFrame(sink, typ, tsOff, payload)
}

func writeTrade(sink io.Writer, ctx *bookctx.Context, t *Trade, tsOff uint16) error {
	if !ctx.Ready() {
		return &errs.CorruptStreamError{Reason: "trade written before any snapshot"}
	}

	payload, err := codec.EncodeTrade(t.Price, t.Qty, t.MakerIsBid, t.ID, ctx.TickSize(), ctx.LotSize(), ctx.PBits(), ctx.QBits())

	var oe *errs.OverflowError
	if errors.As(err, &oe) {
		if _, rerr := recoverFromOverflow(sink, ctx, t.SnapshotDelay, t.Timestamp, t.Price, t.Qty); rerr != nil {
			return rerr
		}

		// Unlike a diff, the trade itself still needs to be on the wire —
		// the new snapshot only widened the context, it didn't carry the
		// trade's information.
		newTSOff, err := ctx.Offset(t.Timestamp)
		if err != nil {
			return err
		}

		payload, err = codec.EncodeTrade(t.Price, t.Qty, t.MakerIsBid, t.ID, ctx.TickSize(), ctx.LotSize(), ctx.PBits(), ctx.QBits())
		if err != nil {
			return err
		}

		return frame.WriteFrame(sink, format.Trade, newTSOff, payload)
	}

	if err != nil {
		return err
	}

	return frame.WriteFrame(sink, format.Trade, tsOff, payload)
}

// recoverFromOverflow resolves snapshotDelay and writes the result as an
// in-line SNAPSHOT frame, as if the caller had written that snapshot
// instead of the overflowing diff or trade. minPrice/minQty widen the new
// snapshot's bit widths to accommodate the pending message.
func recoverFromOverflow(sink io.Writer, ctx *bookctx.Context, resolve SnapshotResolver, ts int64, minPrice, minQty decimal.Decimal) (*BookSnapshot, error) {
	if resolve == nil {
		return nil, errs.ErrMissingSnapshot
	}

	snap, err := resolve()
	if err != nil {
		return nil, err
	}

	if snap == nil {
		return nil, errs.ErrMissingSnapshot
	}

	snap.Timestamp = ts

	if ctx.NeedsTimestampFrame(ts) {
		if err := frame.WriteTimestampFrame(sink, ts); err != nil {
			return nil, err
		}

		ctx.SetTimestamp(ts)
	}

	tsOff, err := ctx.Offset(ts)
	if err != nil {
		return nil, err
	}

	if err := writeSnapshot(sink, ctx, snap, tsOff, minPrice, minQty); err != nil {
		return nil, err
	}

	return snap, nil
}

func diffType(isBid bool) format.MessageType {
	if isBid {
		return format.BidDiff
	}

	return format.AskDiff
}

func removalType(isBid bool) format.MessageType {
	if isBid {
		return format.BidRemoval
	}

	return format.AskRemoval
}

// readMessage reads frames from source until it can yield a logical
// message, transparently applying TIMESTAMP frames to ctx along the way.
// It returns errs.ErrEndOfStream at a clean stream boundary.
func readMessage(source io.Reader, ctx *bookctx.Context) (Message, error) {
	for {
		h, err := frame.ReadHeader(source)
		if err != nil {
			return nil, err
		}

		payload, err := frame.ReadPayload(source, h)
		if err != nil {
			return nil, err
		}

		switch h.Type {
		case format.Timestamp:
			ts, err := frame.DecodeTimestampPayload(payload)
			if err != nil {
				return nil, err
			}

			ctx.SetTimestamp(ts)

			continue

		case format.Snapshot:
			decoded, err := codec.DecodeSnapshot(payload)
			if err != nil {
				return nil, err
			}

			ctx.ApplySnapshot(decoded.Widths.PBits, decoded.Widths.QBits, decoded.Widths.TickSize, decoded.Widths.LotSize)

			return &BookSnapshot{
				Bids:      decoded.Bids,
				Asks:      decoded.Asks,
				TickSize:  decoded.Widths.TickSize,
				LotSize:   decoded.Widths.LotSize,
				Timestamp: ctx.EffectiveTimestamp(h.TSOff),
				Redundant: decoded.Redundant,
			}, nil

		case format.AskDiff, format.BidDiff:
			if !ctx.Ready() {
				return nil, &errs.CorruptStreamError{Reason: "diff frame before any snapshot"}
			}

			lvl, err := codec.DecodeDiff(payload, ctx.PBits(), ctx.TickSize(), ctx.LotSize())
			if err != nil {
				return nil, err
			}

			return &BookDiff{
				Price:     lvl.Price,
				Qty:       lvl.Qty,
				IsBid:     h.Type == format.BidDiff,
				Timestamp: ctx.EffectiveTimestamp(h.TSOff),
			}, nil

		case format.AskRemoval, format.BidRemoval:
			if !ctx.Ready() {
				return nil, &errs.CorruptStreamError{Reason: "removal frame before any snapshot"}
			}

			price, err := codec.DecodeRemoval(payload, ctx.PBits(), ctx.TickSize())
			if err != nil {
				return nil, err
			}

			return &BookDiff{
				Price:     price,
				Qty:       decimal.Zero,
				IsBid:     h.Type == format.BidRemoval,
				Timestamp: ctx.EffectiveTimestamp(h.TSOff),
			}, nil

		case format.Trade:
			if !ctx.Ready() {
				return nil, &errs.CorruptStreamError{Reason: "trade frame before any snapshot"}
			}

			dt, err := codec.DecodeTrade(payload, ctx.PBits(), ctx.QBits(), ctx.TickSize(), ctx.LotSize())
			if err != nil {
				return nil, err
			}

			return &Trade{
				Price:      dt.Price,
				Qty:        dt.Qty,
				MakerIsBid: dt.MakerIsBid,
				ID:         dt.ID,
				Timestamp:  ctx.EffectiveTimestamp(h.TSOff),
			}, nil

		case format.Disconnect:
			if !ctx.Ready() {
				return nil, &errs.CorruptStreamError{Reason: "disconnect frame before any snapshot"}
			}

			if err := codec.DecodeDisconnect(payload); err != nil {
				return nil, err
			}

			return &Disconnect{Timestamp: ctx.EffectiveTimestamp(h.TSOff)}, nil

		default:
			return nil, &errs.CorruptStreamError{Reason: fmt.Sprintf("unknown frame type %d", h.Type)}
		}
	}
}
