// Command totp prints time-based one-time passwords for a Base32-encoded
// secret read from standard input (or the TOTP_SECRET environment variable).
//
// Configuration comes from the environment, with a .env file loaded when
// present:
//
//	TOTP_SECRET         Base32 secret; read from stdin when unset
//	TOTP_SECRET_LENGTH  required secret length in characters (default 16, 0 disables the check)
//	TOTP_DIGITS         code length, 6..10 (default 6)
//	TOTP_STEP           time step (default 30s)
//	TOTP_WINDOW         number of consecutive codes to print (default 1)
//	LOG_LEVEL           slog level (default warn)
//
// One code is printed per line, for the current step and the window-1 steps
// after it. Exit code 2 reports bad input or configuration, 1 an internal
// error.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/sogaiu/totp/pkg/base32"
	"github.com/sogaiu/totp/pkg/hotp"
	"github.com/sogaiu/totp/pkg/totp"
)

type config struct {
	Secret       string        `env:"TOTP_SECRET"`
	SecretLength int           `env:"TOTP_SECRET_LENGTH" envDefault:"16"`
	Digits       int           `env:"TOTP_DIGITS" envDefault:"6"`
	Step         time.Duration `env:"TOTP_STEP" envDefault:"30s"`
	Window       int           `env:"TOTP_WINDOW" envDefault:"1"`
	LogLevel     slog.Level    `env:"LOG_LEVEL" envDefault:"warn"`
}

func main() {
	// A missing .env file is fine; explicit environment still applies.
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, "totp:", err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	if err := run(cfg, time.Now(), os.Stdin, os.Stdout, logger); err != nil {
		fmt.Fprintln(os.Stderr, "totp:", err)
		if errors.Is(err, hotp.ErrInternal) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}

func run(cfg config, now time.Time, in io.Reader, out io.Writer, logger *slog.Logger) error {
	secret := cfg.Secret
	if secret == "" {
		logger.Debug("reading secret from stdin")
		line, err := readSecret(in)
		if err != nil {
			return err
		}
		secret = line
	}

	if err := validateSecret(secret, cfg.SecretLength); err != nil {
		return err
	}
	key, err := base32.Decode(secret)
	if err != nil {
		return err
	}

	if cfg.Window < 1 {
		return fmt.Errorf("window must be at least 1, got %d", cfg.Window)
	}

	logger.Debug("generating codes",
		slog.Int("digits", cfg.Digits),
		slog.Duration("step", cfg.Step),
		slog.Int("window", cfg.Window))

	for i := 0; i < cfg.Window; i++ {
		code, err := totp.Generate(key, now.Add(time.Duration(i)*cfg.Step),
			totp.WithStep(cfg.Step), totp.WithDigits(cfg.Digits))
		if err != nil {
			return err
		}
		fmt.Fprintln(out, code)
	}
	return nil
}

// readSecret reads the first line of in and trims surrounding whitespace.
func readSecret(in io.Reader) (string, error) {
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("read secret: %w", err)
		}
		return "", errors.New("no secret on stdin")
	}
	return strings.TrimSpace(scanner.Text()), nil
}

// validateSecret pre-checks the secret the way enrollment tokens are issued:
// a fixed character count (when length > 0) and alphabet membership. The
// codec validates again on decode; this layer exists to give input errors a
// message in terms of what the user typed.
func validateSecret(secret string, length int) error {
	if length > 0 && len(secret) != length {
		return fmt.Errorf("secret must be %d base32 characters, got %d", length, len(secret))
	}
	for i, c := range secret {
		if !strings.ContainsRune(base32.Alphabet, c) {
			return fmt.Errorf("secret has invalid character %q at position %d", c, i)
		}
	}
	return nil
}
