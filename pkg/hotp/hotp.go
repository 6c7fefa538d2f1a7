package hotp

import (
	"fmt"

	"github.com/sogaiu/totp/pkg/byteops"
	"github.com/sogaiu/totp/pkg/hmac"
)

const (
	// DefaultDigits is the code length used when no WithDigits option is given.
	DefaultDigits = 6
	// MinDigits and MaxDigits bound the supported code length. The truncated
	// value is below 2^31 < 10^10, so more than 10 digits would only ever
	// add leading zeros.
	MinDigits = 6
	MaxDigits = 10
)

type options struct {
	digits int
}

// Option configures code generation.
type Option func(*options)

// WithDigits sets the code length. Valid values are MinDigits through
// MaxDigits; Generate fails with ErrInvalidDigits outside that range.
func WithDigits(digits int) Option {
	return func(o *options) {
		o.digits = digits
	}
}

// Generate computes the RFC 4226 HOTP code for key and counter. The counter
// covers the full 64-bit range and is encoded as 8 big-endian bytes. The
// returned code is a decimal string left-zero-padded to exactly the
// configured digit count (default DefaultDigits).
func Generate(key []byte, counter uint64, opts ...Option) (string, error) {
	o := options{digits: DefaultDigits}
	for _, opt := range opts {
		opt(&o)
	}
	if o.digits < MinDigits || o.digits > MaxDigits {
		return "", fmt.Errorf("%w: %d (want %d..%d)", ErrInvalidDigits, o.digits, MinDigits, MaxDigits)
	}

	digest := hmac.Sum(key, byteops.PutUint64BE(counter))
	if len(digest) != hmac.Size {
		return "", fmt.Errorf("%w: hmac digest is %d bytes, want %d", ErrInternal, len(digest), hmac.Size)
	}

	code := truncate(digest) % pow10(o.digits)
	return fmt.Sprintf("%0*d", o.digits, code), nil
}

// truncate extracts the RFC 4226 section 5.3 dynamic binary code: the low
// nibble of the last digest byte selects a 4-byte window, and the top bit of
// that window is masked off so the result always fits in 31 bits.
func truncate(digest []byte) uint64 {
	offset := digest[len(digest)-1] & 0x0F
	return uint64(digest[offset]&0x7F)<<24 |
		uint64(digest[offset+1])<<16 |
		uint64(digest[offset+2])<<8 |
		uint64(digest[offset+3])
}

func pow10(n int) uint64 {
	p := uint64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
