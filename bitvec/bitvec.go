// Package bitvec implements a bit vector addressable at both bit and byte
// granularity. Bits are stored big-endian: bit 0 is the most significant
// bit of byte 0.
//
// A vector of size n owns ceil(n/8) bytes. The bits of the last byte that
// lie at or beyond n are scratch bits: byte-level writes may set them, but
// they never take part in equality, boolean results over the logical range
// or the binary rendering of a vector.
//
// Every operation that combines vectors returns a freshly allocated vector
// and leaves its operands untouched.
package bitvec

import (
	"errors"
	"fmt"
)

// ByteSize is the number of bits in a storage byte.
const ByteSize = 8

var (
	ErrInvalidSize      = errors.New("invalid size")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrInvalidValue     = errors.New("invalid bit value")
	ErrSizeMismatch     = errors.New("size mismatch")
	ErrInvalidCharacter = errors.New("invalid character")
)

// BitVector is a fixed-length sequence of bits backed by packed bytes.
type BitVector struct {
	size int
	data []byte
}

// fullBytesNeeded returns the number of bytes needed to hold numBits bits.
func fullBytesNeeded(numBits int) int {
	return (numBits + ByteSize - 1) / ByteSize
}

// New returns an all-zero vector of size bits.
func New(size int) (*BitVector, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: cannot create vector of %d bits", ErrInvalidSize, size)
	}
	return &BitVector{
		size: size,
		data: make([]byte, fullBytesNeeded(size)),
	}, nil
}

// zeros is New for sizes already known to be valid.
func zeros(size int) *BitVector {
	return &BitVector{
		size: size,
		data: make([]byte, fullBytesNeeded(size)),
	}
}

// FromBitString parses a string of '0' and '1' characters. The vector has
// one bit per character.
func FromBitString(s string) (*BitVector, error) {
	v := zeros(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			v.setBit(i, 1)
		default:
			return nil, fmt.Errorf("%w: %q at position %d of %q", ErrInvalidCharacter, s[i], i, s)
		}
	}
	return v, nil
}

// FromUint64 encodes value big-endian into the given number of bytes.
// High-order bits that do not fit are discarded.
func FromUint64(value uint64, bytes int) (*BitVector, error) {
	if bytes < 0 {
		return nil, fmt.Errorf("%w: cannot create vector of %d bytes", ErrInvalidSize, bytes)
	}
	v := zeros(bytes * ByteSize)
	if err := v.SetBytesFromUint64(value, 0, bytes); err != nil {
		return nil, err
	}
	return v, nil
}

// Len returns the number of logical bits in v.
func (v *BitVector) Len() int {
	return v.size
}

// NumBytes returns the number of allocated storage bytes.
func (v *BitVector) NumBytes() int {
	return len(v.data)
}

// fullBytes returns the number of bytes whose bits are all logical.
func (v *BitVector) fullBytes() int {
	return v.size / ByteSize
}

func mask(index int) byte {
	return 1 << (ByteSize - 1 - index%ByteSize)
}

func (v *BitVector) bit(index int) int {
	if v.data[index/ByteSize]&mask(index) != 0 {
		return 1
	}
	return 0
}

func (v *BitVector) setBit(index, value int) {
	if v.bit(index) == value {
		return
	}
	v.data[index/ByteSize] ^= mask(index)
}

// Bit returns the bit at index as 0 or 1.
func (v *BitVector) Bit(index int) (int, error) {
	if index < 0 || index >= v.size {
		return 0, fmt.Errorf("%w: bit %d of %d-bit vector", ErrIndexOutOfRange, index, v.size)
	}
	return v.bit(index), nil
}

// SetBit sets the bit at index to value, which must be 0 or 1. Setting a
// bit to the value it already holds leaves the storage untouched.
func (v *BitVector) SetBit(index, value int) error {
	if index < 0 || index >= v.size {
		return fmt.Errorf("%w: bit %d of %d-bit vector", ErrIndexOutOfRange, index, v.size)
	}
	if value != 0 && value != 1 {
		return fmt.Errorf("%w: %d", ErrInvalidValue, value)
	}
	v.setBit(index, value)
	return nil
}

// Byte returns the allocated byte at byteIndex, scratch bits included.
func (v *BitVector) Byte(byteIndex int) (byte, error) {
	if byteIndex < 0 || byteIndex >= len(v.data) {
		return 0, fmt.Errorf("%w: byte %d of %d-bit vector (%d bytes)",
			ErrIndexOutOfRange, byteIndex, v.size, len(v.data))
	}
	return v.data[byteIndex], nil
}

// SetByte overwrites the allocated byte at byteIndex. This is the only way
// to write the scratch bits of the last byte.
func (v *BitVector) SetByte(byteIndex int, value byte) error {
	if byteIndex < 0 || byteIndex >= len(v.data) {
		return fmt.Errorf("%w: byte %d of %d-bit vector (%d bytes)",
			ErrIndexOutOfRange, byteIndex, v.size, len(v.data))
	}
	v.data[byteIndex] = value
	return nil
}

// SetBytesFromUint64 writes value big-endian into numBytes bytes starting
// at startByte. Overflowing high-order bits are dropped; neighbouring bytes
// are never touched.
func (v *BitVector) SetBytesFromUint64(value uint64, startByte, numBytes int) error {
	if numBytes < 0 {
		return fmt.Errorf("%w: %d bytes", ErrInvalidSize, numBytes)
	}
	if startByte < 0 || startByte+numBytes > len(v.data) {
		return fmt.Errorf("%w: bytes [%d:%d] of %d-bit vector (%d bytes)",
			ErrIndexOutOfRange, startByte, startByte+numBytes, v.size, len(v.data))
	}
	for i := 0; i < numBytes; i++ {
		v.data[startByte+numBytes-1-i] = byte(value)
		value >>= ByteSize
	}
	return nil
}

// Bytes returns a copy of the storage bytes, scratch bits included.
func (v *BitVector) Bytes() []byte {
	out := make([]byte, len(v.data))
	copy(out, v.data)
	return out
}

// Uint64 returns the logical bits of v as a big-endian unsigned integer.
func (v *BitVector) Uint64() (uint64, error) {
	if v.size > 64 {
		return 0, fmt.Errorf("%w: %d bits do not fit in 64", ErrInvalidSize, v.size)
	}
	var result uint64
	for i := 0; i < v.size; i++ {
		result = result<<1 | uint64(v.bit(i))
	}
	return result, nil
}

// Clone returns an independent copy of v.
func (v *BitVector) Clone() *BitVector {
	result := zeros(v.size)
	copy(result.data, v.data)
	return result
}

// Equal reports whether a and b have the same size and the same logical
// bits. Scratch bits are ignored.
func Equal(a, b *BitVector) bool {
	if a.size != b.size {
		return false
	}

	// Whole bytes first
	for i := 0; i < a.fullBytes(); i++ {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	for i := ByteSize * a.fullBytes(); i < a.size; i++ {
		if a.bit(i) != b.bit(i) {
			return false
		}
	}
	return true
}

// Equal reports whether v and o hold the same logical bits.
func (v *BitVector) Equal(o *BitVector) bool {
	return Equal(v, o)
}

// LeadingZeros counts the zero bits from index 0 up to the first set bit,
// or the size of v if no logical bit is set.
func (v *BitVector) LeadingZeros() int {
	zeroBytes := 0
	for zeroBytes < len(v.data) && v.data[zeroBytes] == 0 {
		zeroBytes++
	}
	if zeroBytes == len(v.data) {
		return v.size
	}

	// The first non-zero byte may only hold scratch bits.
	count := zeroBytes * ByteSize
	for count < (zeroBytes+1)*ByteSize && count < v.size {
		if v.bit(count) != 0 {
			break
		}
		count++
	}
	return count
}
