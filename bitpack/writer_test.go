package bitpack

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriter_ReadBack_SingleField(t *testing.T) {
	tests := []struct {
		name string
		bits uint8
		val  uint64
	}{
		{"1 bit set", 1, 1},
		{"1 bit clear", 1, 0},
		{"3 bits", 3, 5},
		{"7 bits", 7, 100},
		{"8 bits", 8, 255},
		{"9 bits", 9, 300},
		{"16 bits", 16, 65535},
		{"32 bits", 32, 1<<32 - 1},
		{"64 bits", 64, ^uint64(0)},
		{"odd width mid-range", 13, 4096},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter(16)
			w.WriteBits(tt.bits, tt.val)

			r := NewReader(w.Bytes())
			got, err := r.ReadBits(tt.bits)
			require.NoError(t, err)
			require.Equal(t, tt.val&((1<<tt.bits)-1), got)
		})
	}
}

func TestWriter_ReadBack_Sequence(t *testing.T) {
	w := NewWriter(16)
	w.WriteBits(3, 6)  // type field
	w.WriteBits(5, 17) // length field
	w.WriteBits(1, 1)  // side bit
	w.WriteBits(21, 1234567)

	r := NewReader(w.Bytes())

	v, err := r.ReadBits(3)
	require.NoError(t, err)
	require.Equal(t, uint64(6), v)

	v, err = r.ReadBits(5)
	require.NoError(t, err)
	require.Equal(t, uint64(17), v)

	v, err = r.ReadBits(1)
	require.NoError(t, err)
	require.Equal(t, uint64(1), v)

	v, err = r.ReadBits(21)
	require.NoError(t, err)
	require.Equal(t, uint64(1234567), v)
}

func TestWriter_WriteBytes_Aligned(t *testing.T) {
	w := NewWriter(16)
	w.WriteBytes([]byte{0xDE, 0xAD, 0xBE, 0xEF})

	r := NewReader(w.Bytes())
	got, err := r.ReadBytes(4)
	require.NoError(t, err)
	require.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, got)
}

func TestWriter_WriteBytes_Unaligned(t *testing.T) {
	w := NewWriter(16)
	w.WriteBits(4, 0xA)
	w.WriteBytes([]byte{0xDE, 0xAD})
	w.WriteBits(4, 0xB)

	r := NewReader(w.Bytes())

	nibble, err := r.ReadBits(4)
	require.NoError(t, err)
	require.Equal(t, uint64(0xA), nibble)

	data, err := r.ReadBytes(2)
	require.NoError(t, err)
	require.Equal(t, []byte{0xDE, 0xAD}, data)

	nibble, err = r.ReadBits(4)
	require.NoError(t, err)
	require.Equal(t, uint64(0xB), nibble)
}

func TestWriter_Align(t *testing.T) {
	w := NewWriter(16)
	w.WriteBits(3, 5)
	w.Align()
	w.WriteBits(8, 0xFF)

	require.Equal(t, 2, w.Len())

	r := NewReader(w.Bytes())
	top, err := r.ReadBits(3)
	require.NoError(t, err)
	require.Equal(t, uint64(5), top)

	r.Align()
	v, err := r.ReadBits(8)
	require.NoError(t, err)
	require.Equal(t, uint64(0xFF), v)
}

func TestReader_ErrorsOnTruncatedData(t *testing.T) {
	r := NewReader([]byte{0xFF})
	_, err := r.ReadBits(16)
	require.Error(t, err)
}

func TestReader_ErrorsOnInsufficientBytes(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02})
	_, err := r.ReadBytes(4)
	require.Error(t, err)
}

func TestWriteUint_ReadUint_DispatchesOnWidth(t *testing.T) {
	tests := []struct {
		name string
		bits int
		val  *big.Int
	}{
		{"small width, small value", 8, big.NewInt(200)},
		{"exactly 64 bits", 64, new(big.Int).SetUint64(^uint64(0))},
		{"over 64 bits", 100, new(big.Int).Lsh(big.NewInt(1), 99)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter(16)
			WriteUint(w, tt.bits, tt.val)

			r := NewReader(w.Bytes())
			got, err := ReadUint(r, tt.bits)
			require.NoError(t, err)
			require.Equal(t, 0, tt.val.Cmp(got))
		})
	}
}

func TestWriteBig_ReadBig_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		bits int
		val  *big.Int
	}{
		{"fits uint64", 64, big.NewInt(123456789)},
		{"96 bits", 96, new(big.Int).Lsh(big.NewInt(1), 90)},
		{"128 bits all set", 128, new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))},
		{"70 bits odd width", 70, new(big.Int).Lsh(big.NewInt(0xABCDEF), 40)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter(32)
			WriteBig(w, tt.bits, tt.val)

			r := NewReader(w.Bytes())
			got, err := ReadBig(r, tt.bits)
			require.NoError(t, err)
			require.Equal(t, 0, tt.val.Cmp(got), "expected %s got %s", tt.val, got)
		})
	}
}
