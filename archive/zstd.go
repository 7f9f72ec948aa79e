package archive

// ZstdCodec compresses with Zstandard, favoring ratio over speed. Suited to
// a stream file written once and read rarely (cold storage, long-haul
// transport of a day's worth of snapshots and diffs).
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
