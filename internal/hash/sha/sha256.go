// Implementation of FIPS PUB 180-4 SHA-256 on top of bit vectors
// https://nvlpubs.nist.gov/nistpubs/FIPS/NIST.FIPS.180-4.pdf
package sha

import (
	"github.com/samber/lo"

	"github.com/TomFardell/blockchain/bitvec"
	"github.com/TomFardell/blockchain/internal/hash/util/cast"
)

const (
	wordSize = cast.WordBits
	rounds   = 64
)

// Round constants
// More information in the NIST publication
var k256 = [rounds]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// Initial hash value
var h0_256 = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a, 0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// alu applies word operations and remembers the first failure, so the
// round functions read like the formulas in the standard. A failure can
// only come from a word of the wrong size.
type alu struct {
	err error
}

func (a *alu) check(v *bitvec.BitVector, err error) *bitvec.BitVector {
	if err != nil {
		if a.err == nil {
			a.err = err
		}
		zero, _ := bitvec.New(wordSize)
		return zero
	}
	return v
}

func (a *alu) words(values []uint32) []*bitvec.BitVector {
	return lo.Map(values, func(x uint32, _ int) *bitvec.BitVector {
		return a.check(cast.Uint32ToWord(x))
	})
}

func (a *alu) xor(x, y, z *bitvec.BitVector) *bitvec.BitVector {
	return a.check(a.check(x.Xor(y)).Xor(z))
}

// add sums its operands modulo 2^32
func (a *alu) add(x *bitvec.BitVector, ys ...*bitvec.BitVector) *bitvec.BitVector {
	sum := x
	for _, y := range ys {
		sum = a.check(bitvec.AddMod(sum, y))
	}
	return sum
}

// Choice function
// For each bit position, if x bit is 1, choose y bit, else z
func (a *alu) ch(x, y, z *bitvec.BitVector) *bitvec.BitVector {
	return a.check(bitvec.Choose(x, y, z))
}

// Majority function
// For each bit position, choose majority of x, y, and z bits
func (a *alu) maj(x, y, z *bitvec.BitVector) *bitvec.BitVector {
	return a.check(bitvec.Majority(x, y, z))
}

// Big Sigma functions used for compression
func (a *alu) bigSigma0(x *bitvec.BitVector) *bitvec.BitVector {
	return a.xor(x.RRotate(2), x.RRotate(13), x.RRotate(22))
}

func (a *alu) bigSigma1(x *bitvec.BitVector) *bitvec.BitVector {
	return a.xor(x.RRotate(6), x.RRotate(11), x.RRotate(25))
}

// Small Sigma functions used for message schedule expansion
func (a *alu) smallSigma0(x *bitvec.BitVector) *bitvec.BitVector {
	return a.xor(x.RRotate(7), x.RRotate(18), x.RShift(3))
}

func (a *alu) smallSigma1(x *bitvec.BitVector) *bitvec.BitVector {
	return a.xor(x.RRotate(17), x.RRotate(19), x.RShift(10))
}

// messageSchedule expands a 512-bit block into the 64 words W[0..63]
func (a *alu) messageSchedule(block *bitvec.BitVector) []*bitvec.BitVector {
	w := make([]*bitvec.BitVector, rounds)

	for j := 0; j < 16; j++ {
		w[j] = a.check(block.Slice(j*wordSize, (j+1)*wordSize))
	}

	for j := 16; j < rounds; j++ {
		w[j] = a.add(a.smallSigma1(w[j-2]), w[j-7], a.smallSigma0(w[j-15]), w[j-16])
	}

	return w
}

// compress runs the 64 rounds over one block and folds the result into h
func (a *alu) compress(h, k, w []*bitvec.BitVector) {
	va, vb, vc, vd, ve, vf, vg, vh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]

	for j := 0; j < rounds; j++ {
		t1 := a.add(vh, a.bigSigma1(ve), a.ch(ve, vf, vg), k[j], w[j])
		t2 := a.add(a.bigSigma0(va), a.maj(va, vb, vc))

		vh = vg
		vg = vf
		vf = ve
		ve = a.add(vd, t1)
		vd = vc
		vc = vb
		vb = va
		va = a.add(t1, t2)
	}

	for i, v := range []*bitvec.BitVector{va, vb, vc, vd, ve, vf, vg, vh} {
		h[i] = a.add(h[i], v)
	}
}

// SHA256 computes the sha256 hash of the message as a 256-bit vector.
// Every call works on its own state, so concurrent calls are safe.
func SHA256(message []byte) (*bitvec.BitVector, error) {
	paddedMessage, err := padMessage(message)
	if err != nil {
		return nil, err
	}

	var a alu
	k := a.words(k256[:])
	h := a.words(h0_256[:])

	for i := 0; i < paddedMessage.Len(); i += blockSize {
		block := a.check(paddedMessage.Slice(i, i+blockSize))
		a.compress(h, k, a.messageSchedule(block))
		if a.err != nil {
			return nil, a.err
		}
	}

	return bitvec.Concat(h...), nil
}
