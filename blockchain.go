// Package blockchain exposes a SHA-256 hash computed entirely with bit
// vector operations, plus the leading-zero count used as a proof-of-work
// difficulty measure.
package blockchain

import (
	"github.com/TomFardell/blockchain/bitvec"
	"github.com/TomFardell/blockchain/internal/hash/sha"
	"github.com/TomFardell/blockchain/internal/hash/util/cast"
)

// DigestBits is the length of a hash in bits.
const DigestBits = 256

// Hash returns the SHA-256 digest of message as a 256-bit vector.
func Hash(message []byte) (*bitvec.BitVector, error) {
	return sha.SHA256(message)
}

// Sum256 returns the SHA-256 digest of message as bytes.
func Sum256(message []byte) ([32]byte, error) {
	hash, err := sha.SHA256(message)
	if err != nil {
		return [32]byte{}, err
	}
	return cast.VectorToDigest(hash)
}

// LeadingZeros counts the zero bits at the start of v.
func LeadingZeros(v *bitvec.BitVector) int {
	return v.LeadingZeros()
}

// MeetsDifficulty reports whether hash starts with at least difficulty
// zero bits. A difficulty of zero accepts every hash.
func MeetsDifficulty(hash *bitvec.BitVector, difficulty int) bool {
	return LeadingZeros(hash) >= difficulty
}
