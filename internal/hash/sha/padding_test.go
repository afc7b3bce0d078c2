package sha

import (
	"strings"
	"testing"

	"github.com/TomFardell/blockchain/bitvec"
	"github.com/TomFardell/blockchain/internal/hash/util/cast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPadMessageABC checks the worked example of FIPS 180-4 section 5.1.1
func TestPadMessageABC(t *testing.T) {
	padded, err := padMessage([]byte("abc"))
	require.NoError(t, err)
	require.Equal(t, 512, padded.Len())

	message, err := padded.Slice(0, 24)
	require.NoError(t, err)
	abc, err := cast.StringToBits("abc")
	require.NoError(t, err)
	assert.True(t, bitvec.Equal(abc, message))

	one, err := padded.Bit(24)
	require.NoError(t, err)
	assert.Equal(t, 1, one)

	zeros, err := padded.Slice(25, 448)
	require.NoError(t, err)
	assert.Equal(t, 448-25, zeros.LeadingZeros())

	length, err := padded.Slice(448, 512)
	require.NoError(t, err)
	n, err := length.Uint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(24), n)

	expected := "011000010110001001100011" + "1" + strings.Repeat("0", 423) +
		strings.Repeat("0", 59) + "11000"
	assert.Equal(t, expected, padded.String())
}

// TestPadMessageSpill pads 120 bytes, which leaves no room for the
// length field in the second block
func TestPadMessageSpill(t *testing.T) {
	padded, err := padMessage([]byte(strings.Repeat("a", 120)))
	require.NoError(t, err)
	require.Equal(t, 1536, padded.Len())

	expected := strings.Repeat("01100001", 120) + "1" + strings.Repeat("0", 511) +
		strings.Repeat("0", 54) + "1111000000"
	assert.Equal(t, expected, padded.String())
}

func TestPadMessageLengths(t *testing.T) {
	for _, n := range []int{0, 1, 55, 56, 63, 64, 65, 119, 128} {
		padded, err := padMessage(make([]byte, n))
		require.NoError(t, err)
		assert.Zero(t, padded.Len()%blockSize, "length %d", n)
		// The padding never adds a whole spare block.
		assert.Less(t, padded.Len()-n*8-1-lengthFieldBits, blockSize, "length %d", n)
	}
}
