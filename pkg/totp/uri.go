package totp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/sogaiu/totp/pkg/base32"
	"github.com/sogaiu/totp/pkg/hotp"
)

// URIParams describes a key to provision into an authenticator app.
type URIParams struct {
	// Secret is the Base32-encoded shared secret (required).
	Secret string
	// Issuer is the issuing organization, e.g. "MyApp".
	Issuer string
	// AccountName identifies the account, e.g. "user@example.com".
	AccountName string
	// Digits is the code length; 0 means DefaultDigits.
	Digits int
	// Period is the time step in seconds; 0 means DefaultStep.
	Period int
}

// URI builds the otpauth:// provisioning URI for params, the format consumed
// by authenticator apps at enrollment. Rendering the URI as a QR code is the
// caller's concern.
func URI(params URIParams) (string, error) {
	secret := strings.TrimSpace(params.Secret)
	if secret == "" {
		return "", fmt.Errorf("%w: secret is required", ErrInvalidParams)
	}
	if _, err := base32.Decode(secret); err != nil {
		return "", fmt.Errorf("%w: secret is not valid base32: %v", ErrInvalidParams, err)
	}

	digits := params.Digits
	if digits == 0 {
		digits = DefaultDigits
	}
	if digits < hotp.MinDigits || digits > hotp.MaxDigits {
		return "", fmt.Errorf("%w: digits %d out of range", ErrInvalidParams, digits)
	}

	period := params.Period
	if period == 0 {
		period = int(DefaultStep.Seconds())
	}
	if period < 0 {
		return "", fmt.Errorf("%w: negative period %d", ErrInvalidParams, period)
	}

	v := url.Values{}
	v.Set("secret", secret)
	v.Set("digits", fmt.Sprintf("%d", digits))
	v.Set("period", fmt.Sprintf("%d", period))

	label := url.PathEscape(params.AccountName)
	if params.Issuer != "" {
		v.Set("issuer", params.Issuer)
		label = url.PathEscape(fmt.Sprintf("%s:%s", params.Issuer, params.AccountName))
	}

	return fmt.Sprintf("otpauth://totp/%s?%s", label, v.Encode()), nil
}
