package sha1

import (
	"math/bits"

	"github.com/sogaiu/totp/pkg/byteops"
)

const (
	// Size is the length of a SHA-1 digest in bytes.
	Size = 20
	// BlockSize is the length of one SHA-1 message block in bytes.
	BlockSize = 64
)

// Initial accumulator values from RFC 3174 section 6.1.
const (
	init0 = 0x67452301
	init1 = 0xEFCDAB89
	init2 = 0x98BADCFE
	init3 = 0x10325476
	init4 = 0xC3D2E1F0
)

// Round constants, one per 20-round group.
const (
	k0 = 0x5A827999
	k1 = 0x6ED9EBA1
	k2 = 0x8F1BBCDC
	k3 = 0xCA62C1D6
)

// Sum computes the SHA-1 digest of data. It accepts input of any length,
// including empty, and always returns exactly Size bytes.
func Sum(data []byte) [Size]byte {
	h := [5]uint32{init0, init1, init2, init3, init4}

	msg := pad(data)
	for off := 0; off < len(msg); off += BlockSize {
		compress(&h, msg[off:off+BlockSize])
	}

	var digest [Size]byte
	for i, v := range h {
		copy(digest[i*4:], byteops.PutUint32BE(v))
	}
	return digest
}

// pad appends the RFC 3174 message padding: a 0x80 byte, zero fill until the
// length is congruent to 56 mod 64, then the original length in bits as a
// 64-bit big-endian integer. The result is always a whole number of blocks.
func pad(data []byte) []byte {
	bitLen := uint64(len(data)) * 8

	// One 0x80 byte always fits; the zero fill is at most a block.
	msg := make([]byte, 0, len(data)+BlockSize+8)
	msg = append(msg, data...)
	msg = append(msg, 0x80)
	for len(msg)%BlockSize != BlockSize-8 {
		msg = append(msg, 0x00)
	}
	return append(msg, byteops.PutUint64BE(bitLen)...)
}

// compress folds one 64-byte block into the accumulator state. The expanded
// message schedule lives on the stack and dies with the call; nothing is
// retained between blocks except the five accumulator words.
func compress(h *[5]uint32, block []byte) {
	var w [80]uint32
	for i := 0; i < 16; i++ {
		w[i] = byteops.Uint32BE(block[i*4:])
	}
	for i := 16; i < 80; i++ {
		w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}

	a, b, c, d, e := h[0], h[1], h[2], h[3], h[4]

	for i := 0; i < 80; i++ {
		var f, k uint32
		switch {
		case i < 20:
			f = (b & c) | (^b & d)
			k = k0
		case i < 40:
			f = b ^ c ^ d
			k = k1
		case i < 60:
			f = (b & c) | (b & d) | (c & d)
			k = k2
		default:
			f = b ^ c ^ d
			k = k3
		}

		// All additions wrap mod 2^32, which is native uint32 behavior.
		tmp := bits.RotateLeft32(a, 5) + f + e + k + w[i]
		e = d
		d = c
		c = bits.RotateLeft32(b, 30)
		b = a
		a = tmp
	}

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
	h[4] += e
}
