package bitvec

import (
	"fmt"
)

// byteCombinations is the number of distinct values of a storage byte.
const byteCombinations = 256

type dualOperator int

const (
	opOr dualOperator = iota
	opAnd
	opXor
)

func (op dualOperator) apply(a, b byte) byte {
	switch op {
	case opOr:
		return a | b
	case opAnd:
		return a & b
	default:
		return a ^ b
	}
}

func (op dualOperator) String() string {
	switch op {
	case opOr:
		return "or"
	case opAnd:
		return "and"
	default:
		return "xor"
	}
}

// dual applies op byte-wise over the whole bytes and bit-wise over the
// trailing partial byte so the result carries no scratch bits.
func dual(a, b *BitVector, op dualOperator) (*BitVector, error) {
	if a.size != b.size {
		return nil, fmt.Errorf("%w: cannot %s %d-bit and %d-bit vectors", ErrSizeMismatch, op, a.size, b.size)
	}

	result := zeros(a.size)
	for i := 0; i < a.fullBytes(); i++ {
		result.data[i] = op.apply(a.data[i], b.data[i])
	}
	for i := ByteSize * a.fullBytes(); i < a.size; i++ {
		result.setBit(i, int(op.apply(byte(a.bit(i)), byte(b.bit(i)))))
	}
	return result, nil
}

// Or returns v OR o.
func (v *BitVector) Or(o *BitVector) (*BitVector, error) {
	return dual(v, o, opOr)
}

// And returns v AND o.
func (v *BitVector) And(o *BitVector) (*BitVector, error) {
	return dual(v, o, opAnd)
}

// Xor returns v XOR o.
func (v *BitVector) Xor(o *BitVector) (*BitVector, error) {
	return dual(v, o, opXor)
}

// Not returns v with every logical bit inverted.
func (v *BitVector) Not() *BitVector {
	result := zeros(v.size)
	for i := 0; i < v.fullBytes(); i++ {
		result.data[i] = ^v.data[i]
	}
	for i := ByteSize * v.fullBytes(); i < v.size; i++ {
		result.setBit(i, 1-v.bit(i))
	}
	return result
}

// LShift returns v shifted count bits towards index 0, zero filling the
// vacated bits at the end. A negative count shifts right.
func (v *BitVector) LShift(count int) *BitVector {
	if count <= -v.size {
		return zeros(v.size)
	}
	if count < 0 {
		return v.RShift(-count)
	}

	result := zeros(v.size)
	for i := count; i < v.size; i++ {
		result.setBit(i-count, v.bit(i))
	}
	return result
}

// RShift returns v shifted count bits away from index 0, zero filling the
// vacated bits at the start. A negative count shifts left.
func (v *BitVector) RShift(count int) *BitVector {
	if count <= -v.size {
		return zeros(v.size)
	}
	if count < 0 {
		return v.LShift(-count)
	}

	result := zeros(v.size)
	for i := count; i < v.size; i++ {
		result.setBit(i, v.bit(i-count))
	}
	return result
}

// rotate ORs together a shift by count and the complementary shift that
// brings the wrapped bits around. Rotating an empty vector is a no-op.
func (v *BitVector) rotate(count int, left bool) *BitVector {
	if v.size == 0 {
		return v.Clone()
	}
	count %= v.size
	if count < 0 {
		count += v.size
	}

	var shifted, wrapped *BitVector
	if left {
		shifted = v.LShift(count)
		wrapped = v.RShift(v.size - count)
	} else {
		shifted = v.RShift(count)
		wrapped = v.LShift(v.size - count)
	}

	// Sizes match by construction.
	result, _ := shifted.Or(wrapped)
	return result
}

// LRotate returns v rotated count bits towards index 0. A negative count
// rotates right.
func (v *BitVector) LRotate(count int) *BitVector {
	return v.rotate(count, true)
}

// RRotate returns v rotated count bits away from index 0. A negative count
// rotates left.
func (v *BitVector) RRotate(count int) *BitVector {
	return v.rotate(count, false)
}

// Slice returns the bits [start, end) of v as a new vector.
func (v *BitVector) Slice(start, end int) (*BitVector, error) {
	if start < 0 || end > v.size || end < start {
		return nil, fmt.Errorf("%w: slice [%d:%d] of %d-bit vector", ErrIndexOutOfRange, start, end, v.size)
	}

	result := zeros(end - start)
	for i := start; i < end; i++ {
		result.setBit(i-start, v.bit(i))
	}
	return result, nil
}

// Concat returns the vectors joined end to end.
func Concat(vs ...*BitVector) *BitVector {
	size := 0
	for _, v := range vs {
		size += v.size
	}

	result := zeros(size)
	offset := 0
	for _, v := range vs {
		if offset%ByteSize == 0 {
			copy(result.data[offset/ByteSize:], v.data[:v.fullBytes()])
			for i := ByteSize * v.fullBytes(); i < v.size; i++ {
				result.setBit(offset+i, v.bit(i))
			}
		} else {
			for i := 0; i < v.size; i++ {
				result.setBit(offset+i, v.bit(i))
			}
		}
		offset += v.size
	}
	return result
}

// Choose selects, bit by bit, the bit of a where selector is 1 and the bit
// of b where it is 0.
func Choose(selector, a, b *BitVector) (*BitVector, error) {
	if selector.size != a.size || selector.size != b.size {
		return nil, fmt.Errorf("%w: choose over %d, %d and %d bits",
			ErrSizeMismatch, selector.size, a.size, b.size)
	}

	result := zeros(selector.size)
	for i := 0; i < selector.size; i++ {
		if selector.bit(i) == 1 {
			result.setBit(i, a.bit(i))
		} else {
			result.setBit(i, b.bit(i))
		}
	}
	return result, nil
}

// Majority returns, bit by bit, the value held by at least two of a, b
// and c.
func Majority(a, b, c *BitVector) (*BitVector, error) {
	if a.size != b.size || a.size != c.size {
		return nil, fmt.Errorf("%w: majority over %d, %d and %d bits",
			ErrSizeMismatch, a.size, b.size, c.size)
	}

	result := zeros(a.size)
	for i := 0; i < a.size; i++ {
		if a.bit(i)+b.bit(i)+c.bit(i) > 1 {
			result.setBit(i, 1)
		}
	}
	return result, nil
}

// AddMod returns a + b modulo 2^size, reading both vectors as big-endian
// unsigned integers. The carry out of the most significant bit is dropped.
func AddMod(a, b *BitVector) (*BitVector, error) {
	if a.size != b.size {
		return nil, fmt.Errorf("%w: cannot add %d-bit and %d-bit vectors", ErrSizeMismatch, a.size, b.size)
	}

	result := zeros(a.size)
	carry := 0

	// The trailing partial byte holds the least significant bits.
	for i := a.size - 1; i >= ByteSize*a.fullBytes(); i-- {
		b1, b2 := a.bit(i), b.bit(i)
		result.setBit(i, b1^b2^carry)
		carry = (b1 & b2) | (carry & (b1 ^ b2))
	}

	for i := a.fullBytes() - 1; i >= 0; i-- {
		sum := int(a.data[i]) + int(b.data[i]) + carry
		result.data[i] = byte(sum % byteCombinations)
		carry = sum / byteCombinations
	}
	return result, nil
}

// Add returns v + o modulo 2^size.
func (v *BitVector) Add(o *BitVector) (*BitVector, error) {
	return AddMod(v, o)
}
