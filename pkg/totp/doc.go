// Package totp implements RFC 6238 Time-based One-Time Passwords on top of
// the hotp package: wall-clock time is reduced to a time factor
// (floor((now - start) / step)) and the factor is used as the HOTP counter.
//
// The clock is always passed in explicitly. No function reads the ambient
// system time, which keeps every operation a pure, testable function of its
// arguments.
//
// # Generating codes
//
//	import "github.com/sogaiu/totp/pkg/totp"
//
//	code, err := totp.Generate(key, time.Now())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Canonical RFC 6238 vector: 8 digits at Unix time 59.
//	code, err = totp.Generate(key, time.Unix(59, 0), totp.WithDigits(8))
//
// # Validation windows
//
// The package deliberately exposes no window or looping logic. A caller that
// wants W candidate codes computes the factor per slot and generates each
// code itself:
//
//	factor, err := totp.TimeFactor(now)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for i := uint64(0); i < window; i++ {
//		code, err := totp.GenerateAt(key, factor+i)
//		// ...
//	}
//
// # Secrets and provisioning
//
//	secret, err := totp.GenerateSecretKey() // Base32, 20 random bytes
//
//	uri, err := totp.URI(totp.URIParams{
//		Secret:      secret,
//		Issuer:      "MyApp",
//		AccountName: "user@example.com",
//	})
//	// otpauth://totp/MyApp:user@example.com?secret=...&issuer=MyApp&...
//
// Defaults are a 30-second step, a start time of Unix 0 and 6-digit codes,
// matching the common authenticator apps.
package totp
