package frame

import (
	"errors"
	"io"
	"math"

	"github.com/arthur-md/arthur/bitpack"
	"github.com/arthur-md/arthur/endian"
	"github.com/arthur-md/arthur/errs"
	"github.com/arthur-md/arthur/format"
	"github.com/arthur-md/arthur/internal/pool"
)

// compactLengthLimit is the first payload length that no longer fits in the
// 5-bit compact length field and must fall back to the extended form.
const compactLengthLimit = 32

// byteOrder is the fixed wire byte order for every multi-byte integer
// outside the bit-packed header fields (the extended length and the
// timestamp offset).
var byteOrder = endian.GetBigEndianEngine()

// Header is the parsed envelope preceding every frame's payload.
type Header struct {
	Type   format.MessageType
	Length uint32
	TSOff  uint16
}

// WriteFrame writes one complete frame — header and payload — to w. payload
// must be non-empty; a frame with nothing to say is a logic error upstream
// (the disconnect codec sends a single placeholder byte for exactly this
// reason).
func WriteFrame(w io.Writer, typ format.MessageType, tsOff uint16, payload []byte) error {
	if len(payload) == 0 {
		return errors.New("frame: payload must be at least 1 byte")
	}

	if uint64(len(payload)) > math.MaxUint32 {
		return errors.New("frame: payload exceeds 2^32-1 bytes")
	}

	buf := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(buf)

	bw := bitpack.NewWriter(7)

	l := uint32(len(payload))
	if l < compactLengthLimit {
		bw.WriteBits(3, uint64(typ))
		bw.WriteBits(5, uint64(l))
	} else {
		bw.WriteBits(3, uint64(typ))
		bw.WriteBits(5, 0)
		bw.WriteBits(32, uint64(l))
	}

	bw.WriteBits(16, uint64(tsOff))

	buf.MustWrite(bw.Bytes())
	buf.MustWrite(payload)

	if _, err := buf.WriteTo(w); err != nil {
		return &errs.IOError{Op: "write", Err: err}
	}

	return nil
}

// ReadHeader reads and parses one frame's header from r, leaving the reader
// positioned at the start of the payload. A clean EOF before any byte of
// the header is read is reported as errs.ErrEndOfStream; any other short
// read is a errs.CorruptStreamError, since it means the stream ended in
// the middle of a frame.
func ReadHeader(r io.Reader) (Header, error) {
	var prefix [1]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return Header{}, errs.ErrEndOfStream
		}

		return Header{}, &errs.CorruptStreamError{Reason: "short read on frame prefix", Err: err}
	}

	typ := format.MessageType(prefix[0] >> 5)
	l5 := prefix[0] & 0x1F

	var length uint32
	if l5 != 0 {
		length = uint32(l5)
	} else {
		var lb [4]byte
		if _, err := io.ReadFull(r, lb[:]); err != nil {
			return Header{}, &errs.CorruptStreamError{Reason: "short read on extended length", Err: err}
		}

		length = byteOrder.Uint32(lb[:])
		if length == 0 {
			return Header{}, &errs.CorruptStreamError{Reason: "extended length field is zero"}
		}
	}

	var tb [2]byte
	if _, err := io.ReadFull(r, tb[:]); err != nil {
		return Header{}, &errs.CorruptStreamError{Reason: "short read on timestamp offset", Err: err}
	}

	return Header{
		Type:   typ,
		Length: length,
		TSOff:  byteOrder.Uint16(tb[:]),
	}, nil
}

// ReadPayload reads exactly h.Length bytes from r, the payload following a
// Header returned by ReadHeader.
func ReadPayload(r io.Reader, h Header) ([]byte, error) {
	payload := make([]byte, h.Length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, &errs.CorruptStreamError{Reason: "short read on frame payload", Err: err}
	}

	return payload, nil
}

// SkipPayload discards h.Length bytes from r without retaining them,
// letting a reader that only wants the header (a timestamp scan, for
// instance) advance past a frame in O(1) allocations.
func SkipPayload(r io.Reader, h Header) error {
	n, err := io.CopyN(io.Discard, r, int64(h.Length))
	if err != nil || uint32(n) != h.Length {
		return &errs.CorruptStreamError{Reason: "short read while skipping frame payload", Err: err}
	}

	return nil
}

// ReadFrame reads one complete frame — header and payload — from r.
func ReadFrame(r io.Reader) (Header, []byte, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return Header{}, nil, err
	}

	payload, err := ReadPayload(r, h)
	if err != nil {
		return Header{}, nil, err
	}

	return h, payload, nil
}
