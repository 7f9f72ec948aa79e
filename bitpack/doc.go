// Package bitpack provides MSB-first bit-level I/O for the ARTHUR wire
// format: frame headers, per-level price/qty fields, and the adaptive
// pbits/qbits-width integers that make a SNAPSHOT or diff frame as compact
// as the current book state allows.
//
// # Bit ordering
//
// Every multi-bit field is packed most-significant-bit first, matching the
// frame header's own [type:3|L5:5] layout: WriteBits(3, uint64(msgType))
// followed by WriteBits(5, uint64(lenField)) produces the exact first byte the format
// requires.
//
// # Fast and slow paths
//
// Writer and Reader both fast-path byte-aligned operations (copying whole
// bytes via encoding/binary) and fall back to a bit-by-bit loop when
// straddling a byte boundary mid-field, the same two-path structure as
// reading/writing ASN.1 PER-encoded fields.
//
// # Widths above 64 bits
//
// WriteBits/ReadBits only cover 1-64 bits. bigint.go extends this to
// arbitrary widths via math/big for the rare tick or lot count that would
// overflow uint64 headroom (a multi-hundred-bit lot size on an
// ultra-low-denomination instrument); the common case never leaves the
// uint64 fast path.
//
// # Thread safety
//
// Writer and Reader are NOT safe for concurrent use. Each goroutine packing
// or parsing a stream must use its own instance.
package bitpack
