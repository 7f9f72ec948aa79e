// Package format defines the small closed enumerations shared by the wire
// format: the 3-bit message type tag carried by every frame, and the
// compression algorithm tag used by the optional archive package. Neither
// enum ever grows past the bit width the wire format reserves for it, so
// both are defined as uint8 with a fixed, exhaustive set of constants.
package format

// MessageType identifies the kind of message a frame carries. It occupies
// the 3-bit type field at the start of every frame (frame.Header).
type MessageType uint8

const (
	Timestamp  MessageType = 0
	Snapshot   MessageType = 1
	AskDiff    MessageType = 2
	AskRemoval MessageType = 3
	BidDiff    MessageType = 4
	BidRemoval MessageType = 5
	Trade      MessageType = 6
	Disconnect MessageType = 7
)

// Valid reports whether t is one of the eight message types the wire format
// reserves 3 bits for. Every value of a 3-bit field is a valid MessageType,
// so this only rejects values built from a wider integer.
func (t MessageType) Valid() bool {
	return t <= Disconnect
}

func (t MessageType) String() string {
	switch t {
	case Timestamp:
		return "TIMESTAMP"
	case Snapshot:
		return "SNAPSHOT"
	case AskDiff:
		return "ASK-DIFF"
	case AskRemoval:
		return "ASK-REMOVAL"
	case BidDiff:
		return "BID-DIFF"
	case BidRemoval:
		return "BID-REMOVAL"
	case Trade:
		return "TRADE"
	case Disconnect:
		return "DISCONNECT"
	default:
		return "UNKNOWN"
	}
}

// CompressionType identifies the algorithm an archive.Codec implements. It
// has no bearing on the ARTHUR wire format itself — it is only consulted by
// the optional archive package, which wraps a finished byte stream for cold
// storage.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1
	CompressionZstd CompressionType = 0x2
	CompressionS2   CompressionType = 0x3
	CompressionLZ4  CompressionType = 0x4
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
