package archive

// NoOpCodec passes data through unchanged. Useful when the caller already
// compresses the destination (e.g. a zstd-backed object store) and archival
// compression here would only waste CPU.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

func (NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

func (NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
