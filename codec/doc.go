// Package codec implements the per-message-kind encodings carried inside a
// frame payload: full book snapshots, price-level diffs and removals,
// trades, and disconnect markers.
//
// Every codec in this package is a pure function of a frame payload (on
// read) or of logical field values (on write) plus the bit widths and
// decimal scales currently in force — it never touches a byte stream
// directly. The driver package (the root arthur package's driver.go) is
// the only caller that combines a codec with frame.WriteFrame,
// frame.ReadHeader/ReadPayload, and a bookctx.Context.
//
// Ticks and lots are packed with bitpack, and converted to and from
// decimal prices and quantities with decimalx; neither package here
// duplicates that arithmetic.
package codec
