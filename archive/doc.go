// Package archive wraps a finished ARTHUR byte stream for cold storage or
// network transport. It has no bearing on the wire format itself — a reader
// never sees these codecs, since they operate below arthur.Reader rather
// than inside it.
//
// # Scope
//
// ARTHUR's own bit-packing already removes the entropy the codec can see
// (adaptive price/qty widths, delta timestamps): adding a general-purpose
// entropy coder inside the frame payload would fight the codec's own
// design rather than help it. archive instead compresses the output of a
// completed Writer, or decompresses the input to a Reader, as an outer
// layer a caller opts into when storing many stream files or shipping one
// over a constrained link:
//
//	w, _ := archive.NewCompressingWriteCloser(file, format.CompressionZstd)
//	writer, _ := arthur.NewWriter(w)
//	// ... write messages ...
//	writer.Close()
//	w.Close()
//
// # Supported algorithms
//
// None (format.CompressionNone), Zstd, S2, and LZ4, mirroring the teacher
// package's lineup. Zstd favors ratio for archival, S2 balances ratio and
// throughput, LZ4 favors decompression speed for frequently replayed
// streams.
//
// # Thread safety
//
// Codec implementations are safe for concurrent use. CompressingWriteCloser
// and DecompressingReadCloser are not, matching the non-concurrency
// guarantee of the arthur.Writer/Reader layered on top of them.
package archive
