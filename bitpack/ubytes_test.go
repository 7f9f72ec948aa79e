package bitpack

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUintToUBytes_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		n    *big.Int
		want []byte
	}{
		{"zero", big.NewInt(0), []byte{0}},
		{"single byte", big.NewInt(255), []byte{255}},
		{"two bytes little-endian", big.NewInt(0x0102), []byte{0x02, 0x01}},
		{"26558224", big.NewInt(26558224), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UintToUBytes(tt.n)
			if tt.want != nil {
				require.Equal(t, tt.want, got)
			}

			back := UBytesToUint(got)
			require.Equal(t, 0, tt.n.Cmp(back))
		})
	}
}
