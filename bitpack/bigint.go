package bitpack

import "math/big"

// WriteBig packs the non-negative value of n into exactly bits bits,
// MSB-first, chunking into 64-bit WriteBits calls. It is the fallback
// WriteUint uses when a field is wider than 64 bits: a pbits or qbits above
// 64, or a diff's lot field, holding a tick or lot count too wide for a
// uint64.
func WriteBig(w *Writer, bits int, n *big.Int) {
	if bits <= 0 {
		return
	}

	remaining := bits
	for remaining > 0 {
		chunk := remaining
		if chunk > 64 {
			chunk = 64
		}

		shifted := new(big.Int).Rsh(n, uint(remaining-chunk))
		mask := new(big.Int).Lsh(big.NewInt(1), uint(chunk))
		mask.Sub(mask, big.NewInt(1))
		shifted.And(shifted, mask)

		w.WriteBits(uint8(chunk), shifted.Uint64())

		remaining -= chunk
	}
}

// WriteUint packs n into exactly bits bits, dispatching to the uint64 fast
// path when bits is at most 64 and to WriteBig otherwise. Every tick and lot
// field in the codecs goes through this single entry point so callers never
// have to decide which path applies; trade ids are byte-aligned and written
// with UintToUBytes and Writer.WriteBytes instead.
func WriteUint(w *Writer, bits int, n *big.Int) {
	if bits <= 64 {
		w.WriteBits(uint8(bits), n.Uint64())
		return
	}

	WriteBig(w, bits, n)
}

// ReadUint is the inverse of WriteUint.
func ReadUint(r *Reader, bits int) (*big.Int, error) {
	if bits <= 64 {
		v, err := r.ReadBits(uint8(bits))
		if err != nil {
			return nil, err
		}

		return new(big.Int).SetUint64(v), nil
	}

	return ReadBig(r, bits)
}

// ReadBig reads bits bits and reconstructs them into a big.Int, the
// inverse of WriteBig.
func ReadBig(r *Reader, bits int) (*big.Int, error) {
	result := new(big.Int)

	remaining := bits
	for remaining > 0 {
		chunk := remaining
		if chunk > 64 {
			chunk = 64
		}

		v, err := r.ReadBits(uint8(chunk))
		if err != nil {
			return nil, err
		}

		result.Lsh(result, uint(chunk))
		result.Or(result, new(big.Int).SetUint64(v))

		remaining -= chunk
	}

	return result, nil
}
