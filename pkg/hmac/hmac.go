package hmac

import (
	"github.com/sogaiu/totp/pkg/byteops"
	"github.com/sogaiu/totp/pkg/sha1"
)

const (
	// Size is the length of an HMAC-SHA-1 digest in bytes.
	Size = sha1.Size
	// BlockSize is the SHA-1 block size the key is normalized to.
	BlockSize = sha1.BlockSize
)

// Pad bytes from RFC 2104 section 2.
const (
	innerPad = 0x36
	outerPad = 0x5c
)

// PrepareKey normalizes a key of any length to exactly BlockSize bytes:
// keys longer than BlockSize are replaced by their SHA-1 digest, then the
// result is zero-padded on the right. A key of exactly BlockSize bytes is
// used unchanged; the empty key prepares to BlockSize zero bytes.
func PrepareKey(key []byte) [BlockSize]byte {
	if len(key) > BlockSize {
		digest := sha1.Sum(key)
		key = digest[:]
	}
	// The key is at most BlockSize bytes here, so the padded copy is
	// exactly BlockSize.
	return [BlockSize]byte(byteops.PadRight(key, BlockSize))
}

// Sum computes HMAC-SHA-1 of message under key:
//
//	sha1(key' XOR opad || sha1(key' XOR ipad || message))
//
// The message may be any length, including empty. The result is always
// exactly Size bytes; callers may rely on that without checking.
func Sum(key, message []byte) []byte {
	prepared := PrepareKey(key)

	inner := byteops.XOR(prepared[:], innerPad)
	innerDigest := sha1.Sum(append(inner, message...))

	outer := byteops.XOR(prepared[:], outerPad)
	outerDigest := sha1.Sum(append(outer, innerDigest[:]...))

	return outerDigest[:]
}
