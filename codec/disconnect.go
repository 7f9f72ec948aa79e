package codec

import "github.com/arthur-md/arthur/errs"

// EncodeDisconnect returns the single placeholder payload byte of a
// DISCONNECT frame. All real information (the event's timestamp) lives in
// the frame envelope; the payload exists only because frame.WriteFrame
// requires at least one byte.
func EncodeDisconnect() []byte {
	return []byte{0}
}

// DecodeDisconnect validates a DISCONNECT frame's payload. There is
// nothing to extract from it.
func DecodeDisconnect(payload []byte) error {
	if len(payload) != 1 {
		return &errs.CorruptStreamError{Reason: "disconnect payload is not 1 byte"}
	}

	return nil
}
