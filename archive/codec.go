package archive

import (
	"fmt"

	"github.com/arthur-md/arthur/format"
)

// Compressor compresses a finished ARTHUR byte stream (or a chunk of one)
// for storage or transport.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. Every built-in algorithm implements it.
type Codec interface {
	Compressor
	Decompressor
}

// Stats reports the outcome of a single archival compression pass, useful
// for deciding which algorithm to archive a given stream file with.
type Stats struct {
	Algorithm      format.CompressionType
	OriginalSize   int64
	CompressedSize int64
}

// Ratio returns CompressedSize / OriginalSize; values below 1.0 indicate
// space saved.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// NewCodec is a factory returning the Codec for a CompressionType.
func NewCodec(kind format.CompressionType) (Codec, error) {
	switch kind {
	case format.CompressionNone:
		return NewNoOpCodec(), nil
	case format.CompressionZstd:
		return NewZstdCodec(), nil
	case format.CompressionS2:
		return NewS2Codec(), nil
	case format.CompressionLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("arthur/archive: unsupported compression type: %s", kind)
	}
}
