package cast

import (
	"testing"

	"github.com/TomFardell/blockchain/bitvec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordRoundTrip(t *testing.T) {
	for _, x := range []uint32{0, 1, 0x428a2f98, 0xffffffff, 0x80000000} {
		w, err := Uint32ToWord(x)
		require.NoError(t, err)
		assert.Equal(t, WordBits, w.Len())

		got, err := WordToUint32(w)
		require.NoError(t, err)
		assert.Equal(t, x, got)
	}

	short, err := bitvec.New(31)
	require.NoError(t, err)
	_, err = WordToUint32(short)
	require.ErrorIs(t, err, bitvec.ErrInvalidSize)
}

func TestStringToBits(t *testing.T) {
	bits, err := StringToBits("ab")
	require.NoError(t, err)
	assert.Equal(t, "0110000101100010", bits.String())

	empty, err := StringToBits("")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

func TestVectorToDigest(t *testing.T) {
	data := make([]byte, DigestBytes)
	for i := range data {
		data[i] = byte(i)
	}
	v, err := BytesToBits(data)
	require.NoError(t, err)

	digest, err := VectorToDigest(v)
	require.NoError(t, err)
	assert.Equal(t, data, digest[:])

	_, err = VectorToDigest(bitvec.Concat(v, v))
	require.ErrorIs(t, err, bitvec.ErrInvalidSize)
}
