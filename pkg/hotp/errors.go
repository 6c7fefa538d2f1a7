package hotp

import "errors"

// Package-level error definitions for HOTP generation.
var (
	// ErrInvalidDigits reports a requested code length outside [MinDigits, MaxDigits].
	ErrInvalidDigits = errors.New("invalid digit count")
	// ErrInternal reports a failed internal invariant; it indicates a
	// programming error, not bad input.
	ErrInternal = errors.New("internal invariant violation")
)
