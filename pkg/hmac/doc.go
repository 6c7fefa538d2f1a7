// Package hmac implements the HMAC-SHA-1 keyed message authentication code
// from RFC 2104, on top of this module's own SHA-1 engine.
//
// Keys of any length are accepted: keys longer than the 64-byte SHA-1 block
// are hashed first, and shorter keys (including the empty key, which is valid
// and equivalent to 64 zero bytes) are zero-padded to exactly 64 bytes before
// the inner and outer pads are applied.
//
// Usage:
//
//	import "github.com/sogaiu/totp/pkg/hmac"
//
//	mac := hmac.Sum(key, message) // always 20 bytes
//
// Note that Sum does not compare digests; callers implementing verification
// on top of this package should use a constant-time comparison, which is out
// of scope here (the OTP stack only generates codes).
package hmac
