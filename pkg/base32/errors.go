package base32

import "errors"

// Package-level error definitions for Base32 decoding.
var (
	ErrInvalidCharacter = errors.New("invalid base32 character")
	ErrInvalidLength    = errors.New("invalid base32 length")
)
