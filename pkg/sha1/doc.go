// Package sha1 implements the SHA-1 hash function from first principles, as
// specified by RFC 3174. It exists so that the HMAC and OTP packages built on
// top of it do not depend on any external cryptographic code; it is not a
// replacement for crypto/sha1 in contexts that need collision resistance
// (SHA-1 is broken for that purpose — OTP generation only needs its PRF-like
// behavior inside HMAC, per RFC 4226).
//
// Only full-buffer hashing is provided. There is no streaming or incremental
// API: the OTP stack always hashes short, complete messages.
//
// Usage:
//
//	import "github.com/sogaiu/totp/pkg/sha1"
//
//	digest := sha1.Sum([]byte("abc"))
//	fmt.Printf("%x\n", digest) // a9993e364706816aba3e25717850c26c9cd0d89d
//
// Sum is a pure function: it holds no state between calls and is safe for
// concurrent use from any number of goroutines.
package sha1
