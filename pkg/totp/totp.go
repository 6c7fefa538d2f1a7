package totp

import (
	"fmt"
	"math/bits"
	"time"

	"github.com/sogaiu/totp/pkg/hotp"
)

const (
	// DefaultStep is the time step used when no WithStep option is given.
	DefaultStep = 30 * time.Second
	// DefaultDigits is the code length used when no WithDigits option is given.
	DefaultDigits = hotp.DefaultDigits
)

type options struct {
	step   time.Duration
	start  time.Time
	digits int
}

func defaultOptions() options {
	return options{
		step:   DefaultStep,
		start:  time.Unix(0, 0),
		digits: DefaultDigits,
	}
}

// Option configures time factor computation and code generation.
type Option func(*options)

// WithStep sets the time step. The step must be positive; TimeFactor and
// Generate fail with ErrInvalidStep otherwise.
func WithStep(step time.Duration) Option {
	return func(o *options) {
		o.step = step
	}
}

// WithStartTime sets the epoch the time factor counts from. The default is
// Unix time 0.
func WithStartTime(start time.Time) Option {
	return func(o *options) {
		o.start = start
	}
}

// WithDigits sets the code length, with the same valid range as
// hotp.WithDigits.
func WithDigits(digits int) Option {
	return func(o *options) {
		o.digits = digits
	}
}

// TimeFactor returns the number of whole time steps elapsed between the
// configured start time and now: floor((now - start) / step).
func TimeFactor(now time.Time, opts ...Option) (uint64, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return timeFactor(now, o)
}

func timeFactor(now time.Time, o options) (uint64, error) {
	if o.step <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidStep, o.step)
	}
	if now.Before(o.start) {
		return 0, fmt.Errorf("%w: %v is before %v", ErrTimeBeforeStart, now.UTC(), o.start.UTC())
	}

	// A Duration difference saturates at roughly 292 years, far short of the
	// 64-bit factor range, so the elapsed time is built from Unix seconds
	// with the sub-second remainders folded in separately.
	sec := uint64(now.Unix() - o.start.Unix())
	nsec := int64(now.Nanosecond()) - int64(o.start.Nanosecond())
	if nsec < 0 {
		sec--
		nsec += int64(time.Second)
	}

	if o.step%time.Second == 0 {
		return sec / uint64(o.step/time.Second), nil
	}

	// Fractional steps need the elapsed nanoseconds, which can exceed
	// 64 bits; divide with 128-bit precision.
	hi, lo := bits.Mul64(sec, uint64(time.Second))
	lo, carry := bits.Add64(lo, uint64(nsec), 0)
	hi += carry
	if hi >= uint64(o.step) {
		return 0, fmt.Errorf("%w: step %v is too small for the elapsed time", ErrInvalidStep, o.step)
	}
	factor, _ := bits.Div64(hi, lo, uint64(o.step))
	return factor, nil
}

// Generate computes the TOTP code for key at the given clock value. It is
// exactly GenerateAt(key, TimeFactor(now)).
func Generate(key []byte, now time.Time, opts ...Option) (string, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	factor, err := timeFactor(now, o)
	if err != nil {
		return "", err
	}
	return hotp.Generate(key, factor, hotp.WithDigits(o.digits))
}

// GenerateAt computes the TOTP code for an explicit time factor. Callers
// building a validation window generate one code per factor value; see the
// package documentation.
func GenerateAt(key []byte, factor uint64, opts ...Option) (string, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return hotp.Generate(key, factor, hotp.WithDigits(o.digits))
}
