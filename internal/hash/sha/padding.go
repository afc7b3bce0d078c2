// Helper padding function for sha256
package sha

import (
	"fmt"

	"github.com/TomFardell/blockchain/bitvec"
	"github.com/TomFardell/blockchain/internal/hash/util/cast"
)

const (
	blockSize       = 512
	lengthFieldBits = 64
)

// padMessage appends a single one bit, the fewest zero bits that bring the
// length to 448 mod 512, and the message length in bits as a 64-bit
// big-endian integer
func padMessage(message []byte) (*bitvec.BitVector, error) {
	messageLength := uint64(len(message)) * bitvec.ByteSize

	target := blockSize - lengthFieldBits
	k := (target - int((messageLength+1)%blockSize)) % blockSize
	if k < 0 {
		k += blockSize
	}

	// One bit, k zeros, then the length. Always a whole number of bytes.
	suffix, err := bitvec.New(1 + k + lengthFieldBits)
	if err != nil {
		return nil, err
	}
	if err := suffix.SetBit(0, 1); err != nil {
		return nil, err
	}
	lengthBytes := lengthFieldBits / bitvec.ByteSize
	if err := suffix.SetBytesFromUint64(messageLength, suffix.NumBytes()-lengthBytes, lengthBytes); err != nil {
		return nil, err
	}

	bits, err := cast.BytesToBits(message)
	if err != nil {
		return nil, err
	}

	padded := bitvec.Concat(bits, suffix)
	if padded.Len()%blockSize != 0 {
		return nil, fmt.Errorf("padded message has %d bits", padded.Len())
	}
	return padded, nil
}
