package codec

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/arthur-md/arthur/bitpack"
	"github.com/arthur-md/arthur/decimalx"
	"github.com/arthur-md/arthur/errs"
)

// TradeID is a trade identifier, carried either as a nonnegative integer
// or as a UTF-8 string — exchanges are not consistent about which.
type TradeID struct {
	Numeric bool
	IntID   *big.Int
	StrID   string
}

// NumericTradeID builds a TradeID from a nonnegative integer.
func NumericTradeID(id *big.Int) TradeID {
	return TradeID{Numeric: true, IntID: id}
}

// StringTradeID builds a TradeID from a UTF-8 string.
func StringTradeID(id string) TradeID {
	return TradeID{StrID: id}
}

// EncodeTrade packs a trade: ticks and lots at the context's fixed pbits
// and qbits (unlike a diff, where the lot width floats), the maker side,
// a numeric-vs-string tag, and the trade id itself.
//
// Returns an *errs.OverflowError if ticks or lots does not fit pbits/qbits;
// the driver catches this and recovers the same way it does for a diff,
// but re-emits the trade against the widened context afterward.
func EncodeTrade(price, qty decimal.Decimal, makerIsBid bool, tid TradeID, tickSize, lotSize decimal.Decimal, pbits, qbits uint8) ([]byte, error) {
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
	if lotBits > int(qbits) {
		return nil, &errs.OverflowError{Kind: "lots", Bits: lotBits, Limit: int(qbits)}
	}

	w := bitpack.NewWriter(int(pbits+qbits)/8 + 16)

	bitpack.WriteUint(w, int(pbits), ticks)
	bitpack.WriteUint(w, int(qbits), lots)

	makerBit := uint64(0)
	if makerIsBid {
		makerBit = 1
	}

	w.WriteBits(1, makerBit)

	numericBit := uint64(0)
	if tid.Numeric {
		numericBit = 1
	}

	w.WriteBits(1, numericBit)
	w.Align()

	if tid.Numeric {
		w.WriteBytes(bitpack.UintToUBytes(tid.IntID))
	} else {
		w.WriteBytes([]byte(tid.StrID))
	}

	return w.Bytes(), nil
}

// DecodedTrade is a trade read back from a TRADE frame, minus its
// timestamp (the driver attaches that from the frame envelope).
type DecodedTrade struct {
	Price      decimal.Decimal
	Qty        decimal.Decimal
	MakerIsBid bool
	ID         TradeID
}

// DecodeTrade is the inverse of EncodeTrade.
func DecodeTrade(payload []byte, pbits, qbits uint8, tickSize, lotSize decimal.Decimal) (DecodedTrade, error) {
	r := bitpack.NewReader(payload)

	ticks, err := bitpack.ReadUint(r, int(pbits))
	if err != nil {
		return DecodedTrade{}, &errs.CorruptStreamError{Reason: "trade: ticks", Err: err}
	}

	lots, err := bitpack.ReadUint(r, int(qbits))
	if err != nil {
		return DecodedTrade{}, &errs.CorruptStreamError{Reason: "trade: lots", Err: err}
	}

	makerBit, err := r.ReadBits(1)
	if err != nil {
		return DecodedTrade{}, &errs.CorruptStreamError{Reason: "trade: maker_side", Err: err}
	}

	numericBit, err := r.ReadBits(1)
	if err != nil {
		return DecodedTrade{}, &errs.CorruptStreamError{Reason: "trade: numeric_id flag", Err: err}
	}

	r.Align()

	rest, err := r.ReadBytes(r.Remaining())
	if err != nil {
		return DecodedTrade{}, &errs.CorruptStreamError{Reason: "trade: id", Err: err}
	}

	var id TradeID
	if numericBit == 1 {
		id = NumericTradeID(bitpack.UBytesToUint(rest))
	} else {
		id = StringTradeID(string(rest))
	}

	return DecodedTrade{
		Price:      decimalx.TicksToPrice(ticks, tickSize),
		Qty:        decimalx.LotsToQty(lots, lotSize),
		MakerIsBid: makerBit == 1,
		ID:         id,
	}, nil
}
