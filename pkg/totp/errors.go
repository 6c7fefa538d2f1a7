package totp

import "errors"

// Package-level error definitions for TOTP generation and provisioning.
var (
	// ErrInvalidStep reports a non-positive time step.
	ErrInvalidStep = errors.New("invalid time step")
	// ErrTimeBeforeStart reports a clock value earlier than the configured
	// start time, which would need a negative time factor.
	ErrTimeBeforeStart = errors.New("time is before the start time")
	// ErrInvalidParams reports unusable provisioning URI parameters.
	ErrInvalidParams = errors.New("invalid provisioning parameters")
)
