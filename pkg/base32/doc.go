// Package base32 implements the RFC 4648 Base32 encoding used for OTP shared
// secrets, with the standard A-Z2-7 alphabet and "=" padding.
//
// The encoder always emits output whose length is a multiple of 8 characters.
// The decoder is self-validating: it rejects characters outside the alphabet
// and lengths that no encoder could have produced, rather than relying on
// callers to pre-validate. Trailing "=" padding is accepted but not required.
//
// Round-tripping is loss-free: Decode(Encode(x)) == x for every byte
// sequence x, including the empty one.
//
// Usage:
//
//	import "github.com/sogaiu/totp/pkg/base32"
//
//	s := base32.Encode(secret) // e.g. "GEZDGNBVGY3TQOJQ"
//
//	raw, err := base32.Decode(s)
//	if err != nil {
//		// errors.Is(err, base32.ErrInvalidCharacter) or base32.ErrInvalidLength
//	}
package base32
