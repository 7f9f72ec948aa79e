package decimalx

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/arthur-md/arthur/errs"
)

// ToTicks converts price into the integer number of tick_size multiples it
// represents. It returns a *errs.PrecisionError if price is not an exact
// multiple of tickSize — the driver treats that as fatal for the message
// being encoded rather than silently rounding, since a rounded price would
// silently corrupt the book.
func ToTicks(price, tickSize decimal.Decimal) (*big.Int, error) {
	return toUnits(price, tickSize, "price")
}

// ToLots converts qty into the integer number of lot_size multiples it
// represents, mirroring ToTicks.
func ToLots(qty, lotSize decimal.Decimal) (*big.Int, error) {
	return toUnits(qty, lotSize, "qty")
}

func toUnits(value, unit decimal.Decimal, kind string) (*big.Int, error) {
	if unit.Sign() <= 0 {
		return nil, &errs.PrecisionError{Kind: kind, Value: value.String(), Unit: unit.String()}
	}

	q := value.DivRound(unit, 0)
	if !q.Mul(unit).Equal(value) {
		return nil, &errs.PrecisionError{Kind: kind, Value: value.String(), Unit: unit.String()}
	}

	return q.BigInt(), nil
}

// TicksToPrice reconstructs the decimal price from an integer tick count
// and the governing tick_size, the exact inverse of ToTicks.
func TicksToPrice(ticks *big.Int, tickSize decimal.Decimal) decimal.Decimal {
	return decimal.NewFromBigInt(ticks, 0).Mul(tickSize)
}

// LotsToQty reconstructs the decimal quantity from an integer lot count
// and the governing lot_size, the exact inverse of ToLots.
func LotsToQty(lots *big.Int, lotSize decimal.Decimal) decimal.Decimal {
	return decimal.NewFromBigInt(lots, 0).Mul(lotSize)
}

// RequiredBits returns the number of bits needed to represent n as an
// unsigned integer, with a floor of 1 for zero, so every width derived from
// it (pbits and qbits for an empty book or a zero MinPrice/MinQty, a diff's
// lot field) is at least one bit wide.
func RequiredBits(n *big.Int) int {
	if n.Sign() == 0 {
		return 1
	}

	return n.BitLen()
}

// FitsUint64 reports whether n can be packed with bitpack.Writer's uint64
// fast path instead of the bigint fallback.
func FitsUint64(n *big.Int) bool {
	return n.Sign() >= 0 && n.BitLen() <= 64
}

var ten = big.NewInt(10)

// DecToInts splits a tick_size or lot_size into (v, s) such that
// d == v * 10^(-s), stripping trailing zeros from the coefficient so v is
// as small as possible. It returns a *errs.PrecisionError if the reduced
// coefficient or scale does not fit in a signed byte — tick and lot sizes
// are simple values like 0.01 or 0.000001, so a value that doesn't reduce
// this small signals caller error, not a format limitation.
func DecToInts(d decimal.Decimal) (v int8, s int8, err error) {
	coeff := new(big.Int).Set(d.Coefficient())
	exp := d.Exponent()

	for coeff.Sign() != 0 {
		q, r := new(big.Int).QuoRem(coeff, ten, new(big.Int))
		if r.Sign() != 0 {
			break
		}

		coeff = q
		exp++
	}

	if !coeff.IsInt64() {
		return 0, 0, &errs.PrecisionError{Kind: "scale", Value: d.String(), Unit: "int8"}
	}

	cv := coeff.Int64()
	scale := -int64(exp)

	if cv < math.MinInt8 || cv > math.MaxInt8 || scale < math.MinInt8 || scale > math.MaxInt8 {
		return 0, 0, &errs.PrecisionError{Kind: "scale", Value: d.String(), Unit: "int8"}
	}

	return int8(cv), int8(scale), nil
}

// IntsToDec reconstructs the decimal value encoded by DecToInts: v * 10^(-s).
func IntsToDec(v int8, s int8) decimal.Decimal {
	return decimal.New(int64(v), -int32(s))
}
