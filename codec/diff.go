package codec

import (
	"github.com/shopspring/decimal"

	"github.com/arthur-md/arthur/bitpack"
	"github.com/arthur-md/arthur/decimalx"
	"github.com/arthur-md/arthur/errs"
)

// EncodeDiff packs a single nonzero price-level update: the tick count in
// the context's fixed pbits low bits, and the lot count in however many
// high bits it needs — unlike qbits in a snapshot, a diff's lot width is
// not fixed by the context; it is whatever the frame's payload length
// implies, so small quantities cost fewer bytes than qbits would.
//
// Returns an *errs.OverflowError if ticks does not fit in pbits; the
// driver is the only caller allowed to catch that and recover.
func EncodeDiff(price, qty decimal.Decimal, tickSize, lotSize decimal.Decimal, pbits uint8) ([]byte, error) {
	ticks, err := decimalx.ToTicks(price, tickSize)
	if err != nil {
		return nil, err
	}

	tickBits := decimalx.RequiredBits(ticks)
	if tickBits > int(pbits) {
		return nil, &errs.OverflowError{Kind: "ticks", Bits: tickBits, Limit: int(pbits)}
	}

	lots, err := decimalx.ToLots(qty, lotSize)
	if err != nil {
		return nil, err
	}

	lotBits := decimalx.RequiredBits(lots)
	totalBits := int(pbits) + lotBits
	nbytes := (totalBits + 7) / 8
	lotWidth := 8*nbytes - int(pbits)

	w := bitpack.NewWriter(nbytes)
	bitpack.WriteUint(w, lotWidth, lots)
	bitpack.WriteUint(w, int(pbits), ticks)

	return w.Bytes(), nil
}

// DecodeDiff is the inverse of EncodeDiff: it derives the lot field's
// width from the payload's byte length, since a diff never stores it
// explicitly.
func DecodeDiff(payload []byte, pbits uint8, tickSize, lotSize decimal.Decimal) (Level, error) {
	lotWidth := 8*len(payload) - int(pbits)
	if lotWidth < 0 {
		return Level{}, &errs.CorruptStreamError{Reason: "diff payload shorter than pbits"}
	}

	r := bitpack.NewReader(payload)

	lots, err := bitpack.ReadUint(r, lotWidth)
	if err != nil {
		return Level{}, &errs.CorruptStreamError{Reason: "diff: lots", Err: err}
	}

	ticks, err := bitpack.ReadUint(r, int(pbits))
	if err != nil {
		return Level{}, &errs.CorruptStreamError{Reason: "diff: ticks", Err: err}
	}

	return Level{
		Price: decimalx.TicksToPrice(ticks, tickSize),
		Qty:   decimalx.LotsToQty(lots, lotSize),
	}, nil
}

// EncodeRemoval packs a level removal: just the tick count, in the
// context's fixed pbits, using the minimal byte count that holds it.
func EncodeRemoval(price decimal.Decimal, tickSize decimal.Decimal, pbits uint8) ([]byte, error) {
	ticks, err := decimalx.ToTicks(price, tickSize)
	if err != nil {
		return nil, err
	}

	tickBits := decimalx.RequiredBits(ticks)
	if tickBits > int(pbits) {
		return nil, &errs.OverflowError{Kind: "ticks", Bits: tickBits, Limit: int(pbits)}
	}

	nbytes := (int(pbits) + 7) / 8
	w := bitpack.NewWriter(nbytes)
	bitpack.WriteUint(w, int(pbits), ticks)

	return w.Bytes(), nil
}

// DecodeRemoval is the inverse of EncodeRemoval. The resulting level
// always carries qty = 0; the driver is responsible for attaching it.
func DecodeRemoval(payload []byte, pbits uint8, tickSize decimal.Decimal) (decimal.Decimal, error) {
	r := bitpack.NewReader(payload)

	ticks, err := bitpack.ReadUint(r, int(pbits))
	if err != nil {
		return decimal.Decimal{}, &errs.CorruptStreamError{Reason: "removal: ticks", Err: err}
	}

	return decimalx.TicksToPrice(ticks, tickSize), nil
}
