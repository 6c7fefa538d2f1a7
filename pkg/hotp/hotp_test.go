package hotp_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sogaiu/totp/pkg/hotp"
)

// rfc4226Key is the shared secret from RFC 4226 Appendix D.
var rfc4226Key = []byte("12345678901234567890")

func TestGenerateRFC4226Vectors(t *testing.T) {
	t.Parallel()

	want := []string{
		"755224", "287082", "359152", "969429", "338314",
		"254676", "287922", "162583", "399871", "520489",
	}

	for counter, expected := range want {
		counter, expected := counter, expected
		t.Run(fmt.Sprintf("counter %d", counter), func(t *testing.T) {
			t.Parallel()
			got, err := hotp.Generate(rfc4226Key, uint64(counter))
			require.NoError(t, err)
			assert.Equal(t, expected, got)
		})
	}
}

// The Appendix D tables also list the full 31-bit truncated values; longer
// digit counts must agree with them, including left-zero-padding.
func TestGenerateDigitRange(t *testing.T) {
	t.Parallel()

	cases := []struct {
		counter uint64
		digits  int
		want    string
	}{
		{0, 6, "755224"},
		{0, 7, "4755224"},
		{0, 8, "84755224"},
		{0, 9, "284755224"},
		{0, 10, "1284755224"},
		{2, 10, "0137359152"}, // value 137359152 needs a leading zero at width 10
		{7, 10, "0082162583"},
		{7, 8, "82162583"},
		{9, 9, "645520489"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(fmt.Sprintf("counter %d digits %d", tc.counter, tc.digits), func(t *testing.T) {
			t.Parallel()
			got, err := hotp.Generate(rfc4226Key, tc.counter, hotp.WithDigits(tc.digits))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Len(t, got, tc.digits)
		})
	}
}

func TestGenerateInvalidDigits(t *testing.T) {
	t.Parallel()

	for _, digits := range []int{-1, 0, 1, 5, 11, 100} {
		digits := digits
		t.Run(fmt.Sprintf("digits %d", digits), func(t *testing.T) {
			t.Parallel()
			_, err := hotp.Generate(rfc4226Key, 0, hotp.WithDigits(digits))
			require.Error(t, err)
			assert.ErrorIs(t, err, hotp.ErrInvalidDigits)
		})
	}
}

func TestGenerateFullCounterRange(t *testing.T) {
	t.Parallel()

	// The counter is unsigned; the high bit must not be treated as a sign.
	for _, counter := range []uint64{0, 1, 1<<31 - 1, 1 << 31, 1<<63 - 1, 1 << 63, ^uint64(0)} {
		code, err := hotp.Generate(rfc4226Key, counter)
		require.NoError(t, err, "counter %d", counter)
		assert.Len(t, code, hotp.DefaultDigits)
	}
}

func TestGenerateEmptyKey(t *testing.T) {
	t.Parallel()

	first, err := hotp.Generate(nil, 42)
	require.NoError(t, err)
	second, err := hotp.Generate([]byte{}, 42)
	require.NoError(t, err)
	assert.Equal(t, first, second, "nil and empty keys must generate the same code")

	// The prepared empty key is 64 zero bytes, so an explicit zero key agrees.
	zeros, err := hotp.Generate(make([]byte, 64), 42)
	require.NoError(t, err)
	assert.Equal(t, first, zeros)
}

func TestGenerateIsDeterministic(t *testing.T) {
	t.Parallel()

	first, err := hotp.Generate(rfc4226Key, 12345, hotp.WithDigits(8))
	require.NoError(t, err)
	second, err := hotp.Generate(rfc4226Key, 12345, hotp.WithDigits(8))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func BenchmarkGenerate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = hotp.Generate(rfc4226Key, uint64(i))
	}
}
