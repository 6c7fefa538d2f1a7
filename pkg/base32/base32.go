package base32

import (
	"fmt"
	"strings"
)

// Alphabet is the RFC 4648 Base32 alphabet; a character's index is its
// 5-bit value.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

// padChar fills encoded output to a multiple of 8 characters.
const padChar = '='

// Encode returns the Base32 encoding of src. The input is treated as a
// big-endian bitstream regrouped into 5-bit quintets; a final partial quintet
// is zero-padded on the right. The output length is always a multiple of 8,
// filled with "=" as needed. Empty input encodes to the empty string.
func Encode(src []byte) string {
	if len(src) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow((len(src)*8/5 + 8) &^ 7)

	var acc uint32
	bits := 0
	for _, b := range src {
		acc = acc<<8 | uint32(b)
		bits += 8
		for bits >= 5 {
			bits -= 5
			sb.WriteByte(Alphabet[(acc>>bits)&0x1F])
		}
	}
	if bits > 0 {
		sb.WriteByte(Alphabet[(acc<<(5-bits))&0x1F])
	}

	for sb.Len()%8 != 0 {
		sb.WriteByte(padChar)
	}
	return sb.String()
}

// Decode returns the bytes encoded by s. Trailing "=" padding is stripped
// first; every remaining character must belong to Alphabet, and the remaining
// length must be one an encoder can produce (0, 2, 4, 5 or 7 characters
// beyond whole 8-character blocks). Leftover bits from quintet packing are
// discarded, so Decode(Encode(x)) == x for all x. The empty string decodes
// to empty output.
func Decode(s string) ([]byte, error) {
	trimmed := strings.TrimRight(s, string(padChar))

	// 1, 3 or 6 trailing quintets cannot result from packing whole bytes.
	switch len(trimmed) % 8 {
	case 1, 3, 6:
		return nil, fmt.Errorf("%w: %d characters after stripping padding", ErrInvalidLength, len(trimmed))
	}

	out := make([]byte, 0, len(trimmed)*5/8)

	var acc uint32
	bits := 0
	for i := 0; i < len(trimmed); i++ {
		v := strings.IndexByte(Alphabet, trimmed[i])
		if v < 0 {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidCharacter, trimmed[i], i)
		}
		acc = acc<<5 | uint32(v)
		bits += 5
		if bits >= 8 {
			bits -= 8
			out = append(out, byte(acc>>bits))
		}
	}

	// Fewer than 8 leftover bits are encoder padding overhang, not data.
	return out, nil
}
