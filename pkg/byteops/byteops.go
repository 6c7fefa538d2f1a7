package byteops

// PadRight returns a copy of b zero-padded on the right to size bytes.
// If b is already size bytes or longer, an unmodified copy is returned.
func PadRight(b []byte, size int) []byte {
	n := max(len(b), size)
	out := make([]byte, n)
	copy(out, b)
	return out
}

// XOR returns a new slice with every byte of b XORed with mask.
func XOR(b []byte, mask byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[i] = v ^ mask
	}
	return out
}

// PutUint64BE encodes v as 8 big-endian bytes.
func PutUint64BE(v uint64) []byte {
	return []byte{
		byte(v >> 56), byte(v >> 48), byte(v >> 40), byte(v >> 32),
		byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v),
	}
}

// PutUint32BE encodes v as 4 big-endian bytes.
func PutUint32BE(v uint32) []byte {
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

// Uint32BE decodes the first 4 bytes of b as a big-endian 32-bit integer.
// It panics if b holds fewer than 4 bytes.
func Uint32BE(b []byte) uint32 {
	_ = b[3]
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

