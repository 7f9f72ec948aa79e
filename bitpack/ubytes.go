package bitpack

import "math/big"

// UintToUBytes returns the little-endian minimal unsigned-byte
// representation of a nonnegative integer: no leading (i.e. high-order)
// zero bytes, one byte for n < 256, and exactly one zero byte for n == 0.
// This is how a numeric trade id is serialized, since its byte count is
// implied by the frame's payload length rather than stored explicitly.
func UintToUBytes(n *big.Int) []byte {
	if n.Sign() == 0 {
		return []byte{0}
	}

	be := n.Bytes()
	out := make([]byte, len(be))

	for i, b := range be {
		out[len(be)-1-i] = b
	}

	return out
}

// UBytesToUint is the inverse of UintToUBytes.
func UBytesToUint(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i, v := range b {
		be[len(b)-1-i] = v
	}

	return new(big.Int).SetBytes(be)
}
