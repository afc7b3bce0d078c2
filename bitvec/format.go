package bitvec

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// String renders the logical bits of v as '0' and '1' characters.
func (v *BitVector) String() string {
	var sb strings.Builder
	sb.Grow(v.size)
	for i := 0; i < v.size; i++ {
		sb.WriteByte(byte('0' + v.bit(i)))
	}
	return sb.String()
}

// Grouped renders the logical bits of v with a space after every byte.
func (v *BitVector) Grouped() string {
	var sb strings.Builder
	for i := 0; i < v.size; i++ {
		sb.WriteByte(byte('0' + v.bit(i)))
		if i%ByteSize == ByteSize-1 {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// Hex renders every allocated byte of v as two hex digits. When the size is
// not a multiple of 8 the scratch bits of the last byte are shown too.
func (v *BitVector) Hex() string {
	return hex.EncodeToString(v.data)
}

// Decimal renders every allocated byte of v as a zero padded three digit
// decimal number, separated by spaces. Scratch bits are shown.
func (v *BitVector) Decimal() string {
	parts := make([]string, len(v.data))
	for i, b := range v.data {
		parts[i] = fmt.Sprintf("%03d", b)
	}
	return strings.Join(parts, " ")
}
