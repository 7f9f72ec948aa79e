// Package frame implements ARTHUR's message envelope: a compact or extended
// variable-length header carrying a 3-bit message type, a payload length,
// and a 16-bit timestamp offset, followed by the opaque payload bytes.
//
// Layout, MSB-first, on the wire:
//
//	[ type:3 | L5:5 ] [ L32:32? ] [ ts_off:16 ] [ payload: L bytes ]
//
// When the payload is shorter than 32 bytes, L5 carries the length directly
// and the 32-bit extended length is omitted (the compact form). Otherwise
// L5 is zero and a big-endian uint32 length follows (the extended form).
// Both forms leave the header byte-aligned, so frame never needs bitpack's
// sub-byte reader/writer beyond the first byte: the type/L5 pair packs into
// exactly one byte and everything after it is already byte-aligned.
//
// frame never inspects the payload itself (that is the codec package's
// job); its only contract is to preserve byte counts exactly and to let a
// reader skip a frame's payload without decoding it, which is what makes a
// long-running stream linearly scannable.
package frame
