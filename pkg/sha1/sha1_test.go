package sha1_test

import (
	stdsha1 "crypto/sha1"
	"encoding/hex"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sogaiu/totp/pkg/sha1"
)

func TestSum(t *testing.T) {
	t.Parallel()

	// RFC 3174 section 7.3 and FIPS 180 example vectors.
	vectors := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty input",
			input: "",
			want:  "da39a3ee5e6b4b0d3255bfef95601890afd80709",
		},
		{
			name:  "abc",
			input: "abc",
			want:  "a9993e364706816aba3e25717850c26c9cd0d89d",
		},
		{
			name:  "two block message",
			input: "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
			want:  "84983e441c3bd26ebaae4aa1f95129e5e54670f1",
		},
		{
			name:  "million a",
			input: strings.Repeat("a", 1_000_000),
			want:  "34aa973cd4c4daa4f61eeb2bdbad27316534016f",
		},
	}

	for _, tc := range vectors {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := sha1.Sum([]byte(tc.input))
			assert.Equal(t, tc.want, hex.EncodeToString(got[:]))
		})
	}
}

// Lengths around the 448 mod 512 padding boundary are where off-by-one
// mistakes hide; compare against the standard library for each of them.
func TestSumPaddingBoundaries(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 54, 55, 56, 57, 63, 64, 65, 119, 120, 127, 128, 129} {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i)
		}

		want := stdsha1.Sum(data)
		got := sha1.Sum(data)
		require.Equal(t, want, got, "input length %d", n)
	}
}

func TestSumMatchesStdlibOnRandomInputs(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		data := make([]byte, rng.Intn(513))
		_, err := rng.Read(data)
		require.NoError(t, err)

		want := stdsha1.Sum(data)
		got := sha1.Sum(data)
		require.Equal(t, want, got, "iteration %d, length %d", i, len(data))
	}
}

func TestSumIsDeterministic(t *testing.T) {
	t.Parallel()

	input := []byte("the same input twice")
	first := sha1.Sum(input)
	second := sha1.Sum(input)
	assert.Equal(t, first, second)
}

func TestSumDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	input := []byte("immutable")
	saved := append([]byte(nil), input...)
	_ = sha1.Sum(input)
	assert.Equal(t, saved, input)
}

func BenchmarkSum(b *testing.B) {
	for _, bc := range []struct {
		name string
		size int
	}{
		{"8B", 8},
		{"64B", 64},
		{"1KB", 1024},
	} {
		data := make([]byte, bc.size)
		b.Run(bc.name, func(b *testing.B) {
			b.SetBytes(int64(bc.size))
			for i := 0; i < b.N; i++ {
				_ = sha1.Sum(data)
			}
		})
	}
}
