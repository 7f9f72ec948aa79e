// Package decimalx converts exact decimal prices and quantities to and from
// the integer tick/lot counts the wire format actually carries.
//
// ARTHUR never writes a decimal.Decimal to the stream: every price is an
// exact multiple of the instrument's tick_size, every quantity an exact
// multiple of lot_size, so the format stores the integer multiple (ticks,
// lots) instead and a reader multiplies back by the same tick_size/lot_size
// it read from the governing SNAPSHOT. decimalx owns that conversion and
// the bit-width accounting that goes with it (decimal.Decimal arithmetic
// guarantees the conversion is exact, unlike float64 multiplication).
package decimalx
