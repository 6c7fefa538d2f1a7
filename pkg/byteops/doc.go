// Package byteops provides the small byte-level building blocks shared by the
// hash and OTP packages: fixed-size zero padding, big-endian integer packing,
// and byte-wise XOR masking.
//
// Every function is pure and allocates its result; inputs are never mutated.
// This keeps the packages built on top of it free of shared mutable state and
// safe for concurrent use without synchronization.
//
// Usage:
//
//	import "github.com/sogaiu/totp/pkg/byteops"
//
//	key := byteops.PadRight(secret, 64)        // zero-pad to block size
//	ipad := byteops.XOR(key, 0x36)             // mask every byte
//	ctr := byteops.PutUint64BE(counter)        // 8-byte big-endian counter
package byteops
