// Package hotp implements the HMAC-based One-Time Password algorithm from
// RFC 4226: an 8-byte big-endian counter is authenticated with HMAC-SHA-1,
// a 31-bit value is extracted by dynamic truncation, and the result is
// rendered as a fixed-width decimal code.
//
// Generation is a pure function of the key, the counter and the digit count;
// the package keeps no state and is safe for concurrent use. Counter
// management (and validation against a remembered counter) is the caller's
// concern.
//
// Usage:
//
//	import "github.com/sogaiu/totp/pkg/hotp"
//
//	code, err := hotp.Generate(key, counter)                    // 6 digits
//	code, err = hotp.Generate(key, counter, hotp.WithDigits(8)) // 8 digits
//
// An empty key is valid: HMAC-SHA-1 treats it as 64 zero bytes, so codes for
// an empty key are well-defined and deterministic.
package hotp
