package totp

import (
	"crypto/rand"
	"fmt"

	"github.com/sogaiu/totp/pkg/base32"
)

// SecretKeySize is the number of random bytes in a generated secret key.
// 20 bytes (160 bits) matches the SHA-1 output size, per RFC 4226's
// recommendation for the shared secret length.
const SecretKeySize = 20

// GenerateSecretKey returns a new Base32-encoded shared secret suitable for
// enrolling with any RFC 6238 authenticator app.
func GenerateSecretKey() (string, error) {
	buf := make([]byte, SecretKeySize)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate secret key: %w", err)
	}
	return base32.Encode(buf), nil
}
