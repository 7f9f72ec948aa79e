package bitpack

import (
	"encoding/binary"

	"github.com/arthur-md/arthur/internal/pool"
)

// Writer packs MSB-first bit fields into a growable byte buffer.
//
// offset tracks the bit position in the buffer's last byte: 0 means the
// buffer is empty or the last byte is fully consumed and a new byte is due
// on the next write; 1-7 means a partial byte is in progress; the writer
// never stores 8 as a sentinel the way a lazy-advancement codec would,
// since pool.ByteBuffer already gives it cheap append-based growth.
type Writer struct {
	buf    *pool.ByteBuffer
	offset uint8
}

// NewWriter creates a Writer backed by a freshly allocated buffer of the
// given initial capacity in bytes.
func NewWriter(initialCap int) *Writer {
	return &Writer{buf: pool.NewByteBuffer(initialCap)}
}

// Reset clears the writer to start packing a new frame, reusing its buffer.
func (w *Writer) Reset() {
	w.buf.Reset()
	w.offset = 0
}

// Len returns the number of complete bytes currently in the buffer. A
// write in progress mid-byte still counts that partial byte.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Bytes returns the packed bytes so far, including any in-progress partial
// final byte. Callers that need byte alignment first must call Align.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// WriteBits packs the least significant num bits of value, MSB-first.
// num must be in [1, 64]; values outside that range panic, since every
// call site in frame/codec passes a compile-time-known width.
func (w *Writer) WriteBits(num uint8, value uint64) {
	if num == 0 || num > 64 {
		panic("bitpack: WriteBits: num out of range")
	}

	value &= (1 << num) - 1

	if w.offset == 0 {
		nbytes := (int(num) + 7) >> 3
		remainder := num % 8

		var tmp [8]byte
		binary.BigEndian.PutUint64(tmp[:], value<<(64-uint(num)))

		w.buf.MustWrite(tmp[:nbytes])
		w.offset = remainder

		return
	}

	pending := num
	for pending > 0 {
		if w.offset == 0 {
			w.buf.MustWrite([]byte{0})
		}

		available := 8 - w.offset
		nbits := min(pending, available)
		remaining := pending - nbits
		chunk := uint8(value>>remaining) & ((1 << nbits) - 1)
		shift := available - nbits

		pos := w.buf.Len() - 1
		w.buf.B[pos] |= chunk << shift

		w.offset += nbits
		if w.offset == 8 {
			w.offset = 0
		}

		pending -= nbits
	}
}

// WriteBytes appends full octets, continuing from the current bit offset.
// Equivalent to calling WriteBits(8, ...) for each byte but takes the
// byte-aligned fast path whenever possible, which is always for ARTHUR
// since frame payloads never split a byte across the bit-packed header
// and the byte-aligned body.
func (w *Writer) WriteBytes(data []byte) {
	if len(data) == 0 {
		return
	}

	if w.offset == 0 {
		w.buf.MustWrite(data)
		return
	}

	for _, b := range data {
		w.WriteBits(8, uint64(b))
	}
}

// Align pads the current partial byte with zero bits, advancing to the
// next byte boundary. A no-op if already aligned.
func (w *Writer) Align() {
	if w.offset == 0 {
		return
	}

	w.offset = 0
}
