package frame

import (
	"io"

	"github.com/arthur-md/arthur/errs"
	"github.com/arthur-md/arthur/format"
)

// TimestampPayloadLen is the fixed payload length of a TIMESTAMP frame: an
// unsigned 64-bit big-endian millisecond epoch reference.
const TimestampPayloadLen = 8

// EncodeTimestampPayload builds the 8-byte payload of a TIMESTAMP frame
// from a millisecond epoch reference.
func EncodeTimestampPayload(ts int64) []byte {
	payload := make([]byte, TimestampPayloadLen)
	byteOrder.PutUint64(payload, uint64(ts))

	return payload
}

// DecodeTimestampPayload recovers the millisecond epoch reference from a
// TIMESTAMP frame's payload.
func DecodeTimestampPayload(payload []byte) (int64, error) {
	if len(payload) != TimestampPayloadLen {
		return 0, &errs.CorruptStreamError{Reason: "timestamp payload is not 8 bytes"}
	}

	return int64(byteOrder.Uint64(payload)), nil
}

// WriteTimestampFrame writes a TIMESTAMP frame carrying ts as the new
// reference epoch. A TIMESTAMP frame always has ts_off = 0: it establishes
// the reference that later frames' offsets are measured against, not an
// offset against it.
func WriteTimestampFrame(w io.Writer, ts int64) error {
	return WriteFrame(w, format.Timestamp, 0, EncodeTimestampPayload(ts))
}
