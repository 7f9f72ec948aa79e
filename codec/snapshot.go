package codec

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/arthur-md/arthur/bitpack"
	"github.com/arthur-md/arthur/decimalx"
	"github.com/arthur-md/arthur/errs"
	"github.com/arthur-md/arthur/internal/pool"
)

// Level is a single price/quantity pair, as carried in a snapshot's level
// list or reconstructed from a diff.
type Level struct {
	Price decimal.Decimal
	Qty   decimal.Decimal
}

const (
	sideBid uint64 = 1
	sideAsk uint64 = 0
)

// SnapshotWidths carries the bit widths and decimal scales a SNAPSHOT
// establishes for every subsequent diff, removal, and trade until the next
// SNAPSHOT — the fields a bookctx.Context.ApplySnapshot call needs.
type SnapshotWidths struct {
	PBits    uint8
	QBits    uint8
	TickSize decimal.Decimal
	LotSize  decimal.Decimal
}

// EncodeSnapshot packs a full book snapshot into a frame payload.
//
// minPrice and minQty widen the computed bit widths to accommodate a
// message that triggered overflow recovery, or the prices and quantities a
// caller asked room for via BookSnapshot.MinPrice/MinQty; decimal.Zero for
// both requests no width beyond what the levels themselves need.
func EncodeSnapshot(bids, asks []Level, tickSize, lotSize decimal.Decimal, redundant bool, minPrice, minQty decimal.Decimal) ([]byte, SnapshotWidths, error) {
	tick, tickScale, err := decimalx.DecToInts(tickSize)
	if err != nil {
		return nil, SnapshotWidths{}, err
	}

	lot, lotScale, err := decimalx.DecToInts(lotSize)
	if err != nil {
		return nil, SnapshotWidths{}, err
	}

	minPriceTicks, err := decimalx.ToTicks(minPrice, tickSize)
	if err != nil {
		return nil, SnapshotWidths{}, err
	}

	minQtyLots, err := decimalx.ToLots(minQty, lotSize)
	if err != nil {
		return nil, SnapshotWidths{}, err
	}

	priceBits, err := maxBits(bids, asks, tickSize, true)
	if err != nil {
		return nil, SnapshotWidths{}, err
	}

	qtyBits, err := maxBits(bids, asks, lotSize, false)
	if err != nil {
		return nil, SnapshotWidths{}, err
	}

	pbits := max(decimalx.RequiredBits(minPriceTicks), priceBits)
	qbits := max(decimalx.RequiredBits(minQtyLots), 1+qtyBits)

	if pbits > 255 || qbits > 255 {
		return nil, SnapshotWidths{}, fmt.Errorf("codec: snapshot bit width %d/%d exceeds the 8-bit header field", pbits, qbits)
	}

	if len(bids)+len(asks) > 0xFFFF {
		return nil, SnapshotWidths{}, fmt.Errorf("codec: snapshot has %d levels, exceeds 65535", len(bids)+len(asks))
	}

	w := bitpack.NewWriter(32 + (len(bids)+len(asks))*((pbits+qbits+1)/8+1))

	redundantByte := uint64(0)
	if redundant {
		redundantByte = 1
	}

	w.WriteBits(8, redundantByte)
	w.WriteBits(8, uint64(pbits))
	w.WriteBits(8, uint64(qbits))
	w.WriteBits(8, uint64(uint8(tick)))
	w.WriteBits(8, uint64(uint8(tickScale)))
	w.WriteBits(8, uint64(uint8(lot)))
	w.WriteBits(8, uint64(uint8(lotScale)))
	w.WriteBits(16, uint64(len(bids)+len(asks)))

	if err := writeLevels(w, bids, sideBid, tickSize, lotSize, uint8(pbits), uint8(qbits)); err != nil {
		return nil, SnapshotWidths{}, err
	}

	if err := writeLevels(w, asks, sideAsk, tickSize, lotSize, uint8(pbits), uint8(qbits)); err != nil {
		return nil, SnapshotWidths{}, err
	}

	return w.Bytes(), SnapshotWidths{PBits: uint8(pbits), QBits: uint8(qbits), TickSize: tickSize, LotSize: lotSize}, nil
}

func writeLevels(w *bitpack.Writer, levels []Level, side uint64, tickSize, lotSize decimal.Decimal, pbits, qbits uint8) error {
	for _, lvl := range levels {
		ticks, err := decimalx.ToTicks(lvl.Price, tickSize)
		if err != nil {
			return err
		}

		lots, err := decimalx.ToLots(lvl.Qty, lotSize)
		if err != nil {
			return err
		}

		bitpack.WriteUint(w, int(pbits), ticks)
		w.WriteBits(1, side)
		bitpack.WriteUint(w, int(qbits), lots)
	}

	return nil
}

func maxBits(bids, asks []Level, unit decimal.Decimal, isPrice bool) (int, error) {
	total := len(bids) + len(asks)
	if total == 0 {
		return 0, nil
	}

	bitLens, done := pool.GetInt64Slice(total)
	defer done()

	i := 0

	fill := func(levels []Level) error {
		for _, lvl := range levels {
			v := lvl.Qty
			if isPrice {
				v = lvl.Price
			}

			var n *big.Int
			var err error
			if isPrice {
				n, err = decimalx.ToTicks(v, unit)
			} else {
				n, err = decimalx.ToLots(v, unit)
			}

			if err != nil {
				return err
			}

			bitLens[i] = int64(decimalx.RequiredBits(n))
			i++
		}

		return nil
	}

	if err := fill(bids); err != nil {
		return 0, err
	}

	if err := fill(asks); err != nil {
		return 0, err
	}

	maxBitLen := int64(0)
	for _, b := range bitLens {
		if b > maxBitLen {
			maxBitLen = b
		}
	}

	return int(maxBitLen), nil
}

// DecodedSnapshot is a full book snapshot read back from a SNAPSHOT frame.
type DecodedSnapshot struct {
	Bids      []Level
	Asks      []Level
	Redundant bool
	Widths    SnapshotWidths
}

// DecodeSnapshot is the inverse of EncodeSnapshot.
func DecodeSnapshot(payload []byte) (DecodedSnapshot, error) {
	r := bitpack.NewReader(payload)

	redundantV, err := r.ReadBits(8)
	if err != nil {
		return DecodedSnapshot{}, corrupt("snapshot header: redundant flag", err)
	}

	pbitsV, err := r.ReadBits(8)
	if err != nil {
		return DecodedSnapshot{}, corrupt("snapshot header: pbits", err)
	}

	qbitsV, err := r.ReadBits(8)
	if err != nil {
		return DecodedSnapshot{}, corrupt("snapshot header: qbits", err)
	}

	tickV, err := r.ReadBits(8)
	if err != nil {
		return DecodedSnapshot{}, corrupt("snapshot header: tick", err)
	}

	tickScaleV, err := r.ReadBits(8)
	if err != nil {
		return DecodedSnapshot{}, corrupt("snapshot header: tick_scale", err)
	}

	lotV, err := r.ReadBits(8)
	if err != nil {
		return DecodedSnapshot{}, corrupt("snapshot header: lot", err)
	}

	lotScaleV, err := r.ReadBits(8)
	if err != nil {
		return DecodedSnapshot{}, corrupt("snapshot header: lot_scale", err)
	}

	nlevelsV, err := r.ReadBits(16)
	if err != nil {
		return DecodedSnapshot{}, corrupt("snapshot header: nlevels", err)
	}

	pbits := uint8(pbitsV)
	qbits := uint8(qbitsV)
	tickSize := decimalx.IntsToDec(int8(uint8(tickV)), int8(uint8(tickScaleV)))
	lotSize := decimalx.IntsToDec(int8(uint8(lotV)), int8(uint8(lotScaleV)))

	var bids, asks []Level

	for range int(nlevelsV) {
		ticks, err := bitpack.ReadUint(r, int(pbits))
		if err != nil {
			return DecodedSnapshot{}, corrupt("snapshot level: ticks", err)
		}

		side, err := r.ReadBits(1)
		if err != nil {
			return DecodedSnapshot{}, corrupt("snapshot level: side", err)
		}

		lots, err := bitpack.ReadUint(r, int(qbits))
		if err != nil {
			return DecodedSnapshot{}, corrupt("snapshot level: lots", err)
		}

		lvl := Level{
			Price: decimalx.TicksToPrice(ticks, tickSize),
			Qty:   decimalx.LotsToQty(lots, lotSize),
		}

		if side == sideBid {
			bids = append(bids, lvl)
		} else {
			asks = append(asks, lvl)
		}
	}

	return DecodedSnapshot{
		Bids:      bids,
		Asks:      asks,
		Redundant: redundantV == 1,
		Widths: SnapshotWidths{
			PBits:    pbits,
			QBits:    qbits,
			TickSize: tickSize,
			LotSize:  lotSize,
		},
	}, nil
}

func corrupt(reason string, err error) error {
	return &errs.CorruptStreamError{Reason: reason, Err: err}
}
