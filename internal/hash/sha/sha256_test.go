package sha

import (
	"crypto/sha256"
	"encoding/hex"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/TomFardell/blockchain/internal/hash/util/cast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// SHA-256 Tests

func TestSHA256Vectors(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"abc", "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"empty", "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{
			"two blocks",
			"abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
			"248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1",
		},
		{
			"896 bits",
			"abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu",
			"cf5b16a778af8380036ce59e7b0492370b249b11e8f07a51afac45037afee9d1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := SHA256([]byte(tt.message))
			require.NoError(t, err)
			assert.Equal(t, 256, hash.Len())
			assert.Equal(t, tt.want, hash.Hex())
		})
	}
}

// TestSHA256StateWords checks the digest word by word against the FIPS
// example for "abc"
func TestSHA256StateWords(t *testing.T) {
	hash, err := SHA256([]byte("abc"))
	require.NoError(t, err)

	expected := [8]uint32{
		0xba7816bf, 0x8f01cfea, 0x414140de, 0x5dae2223,
		0xb00361a3, 0x96177a9c, 0xb410ff61, 0xf20015ad,
	}

	for i, expectedValue := range expected {
		word, err := hash.Slice(i*wordSize, (i+1)*wordSize)
		require.NoError(t, err)
		got, err := cast.WordToUint32(word)
		require.NoError(t, err)
		if got != expectedValue {
			t.Errorf("SHA-256 hash mismatch at index %d: got %08x, expected %08x", i, got, expectedValue)
		}
	}
}

func TestSHA256MatchesStandardLibrary(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, n := range []int{1, 31, 55, 56, 64, 100, 200} {
		message := make([]byte, n)
		r.Read(message)

		hash, err := SHA256(message)
		require.NoError(t, err)

		want := sha256.Sum256(message)
		assert.Equal(t, hex.EncodeToString(want[:]), hash.Hex(), "length %d", n)
	}
}

func TestSHA256Concurrent(t *testing.T) {
	want := sha256.Sum256([]byte(strings.Repeat("x", 70)))

	var wg sync.WaitGroup
	hashes := make([]string, 8)
	for i := range hashes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			hash, err := SHA256([]byte(strings.Repeat("x", 70)))
			if err == nil {
				hashes[i] = hash.Hex()
			}
		}(i)
	}
	wg.Wait()

	for _, h := range hashes {
		assert.Equal(t, hex.EncodeToString(want[:]), h)
	}
}

func TestMessageScheduleFirstWords(t *testing.T) {
	padded, err := padMessage([]byte("abc"))
	require.NoError(t, err)

	var a alu
	w := a.messageSchedule(padded)
	require.NoError(t, a.err)
	require.Len(t, w, rounds)

	w0, err := cast.WordToUint32(w[0])
	require.NoError(t, err)
	assert.Equal(t, uint32(0x61626380), w0)

	w15, err := cast.WordToUint32(w[15])
	require.NoError(t, err)
	assert.Equal(t, uint32(0x00000018), w15)

	// W[16] = sigma1(W[14]) + W[9] + sigma0(W[1]) + W[0] = W[0] here
	w16, err := cast.WordToUint32(w[16])
	require.NoError(t, err)
	assert.Equal(t, uint32(0x61626380), w16)
}

func TestALUKeepsFirstError(t *testing.T) {
	var a alu
	x, err := cast.Uint32ToWord(1)
	require.NoError(t, err)
	short, err := cast.StringToBits("a")
	require.NoError(t, err)

	sum := a.add(x, short)
	require.Error(t, a.err)
	assert.Equal(t, wordSize, sum.Len())

	first := a.err
	a.maj(x, x, short)
	assert.Equal(t, first, a.err)
}

// Benchmarks

// BenchmarkSHA256 benchmarks the SHA-256 implementation
func BenchmarkSHA256(b *testing.B) {
	message := []byte("abc")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SHA256(message)
	}
}
