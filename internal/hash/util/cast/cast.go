// Casting functions between bit vectors and Go values
package cast

import (
	"fmt"

	"github.com/TomFardell/blockchain/bitvec"
)

// WordBits is the width of a SHA-256 word
const WordBits = 32

// DigestBytes is the length of a SHA-256 digest in bytes
const DigestBytes = 32

// Uint32ToWord encodes x as a 32-bit vector, most significant bit first
func Uint32ToWord(x uint32) (*bitvec.BitVector, error) {
	return bitvec.FromUint64(uint64(x), WordBits/bitvec.ByteSize)
}

// WordToUint32 decodes a 32-bit vector
func WordToUint32(w *bitvec.BitVector) (uint32, error) {
	if w.Len() != WordBits {
		return 0, fmt.Errorf("%w: word has %d bits", bitvec.ErrInvalidSize, w.Len())
	}
	n, err := w.Uint64()
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}

// BytesToBits lays data out as a vector of 8*len(data) bits
func BytesToBits(data []byte) (*bitvec.BitVector, error) {
	v, err := bitvec.New(len(data) * bitvec.ByteSize)
	if err != nil {
		return nil, err
	}
	for i, b := range data {
		if err := v.SetByte(i, b); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Helper function to convert string to bits for easy testing
func StringToBits(s string) (*bitvec.BitVector, error) {
	return BytesToBits([]byte(s))
}

// VectorToDigest copies a 256-bit vector into a fixed size array
func VectorToDigest(v *bitvec.BitVector) ([DigestBytes]byte, error) {
	var digest [DigestBytes]byte
	if v.Len() != DigestBytes*bitvec.ByteSize {
		return digest, fmt.Errorf("%w: digest has %d bits", bitvec.ErrInvalidSize, v.Len())
	}
	copy(digest[:], v.Bytes())
	return digest, nil
}
