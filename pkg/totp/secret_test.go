package totp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sogaiu/totp/pkg/base32"
	"github.com/sogaiu/totp/pkg/totp"
)

func TestGenerateSecretKey(t *testing.T) {
	t.Parallel()

	t.Run("decodes to the documented size", func(t *testing.T) {
		t.Parallel()
		secret, err := totp.GenerateSecretKey()
		require.NoError(t, err)

		raw, err := base32.Decode(secret)
		require.NoError(t, err)
		assert.Len(t, raw, totp.SecretKeySize)
	})

	t.Run("is usable for code generation", func(t *testing.T) {
		t.Parallel()
		secret, err := totp.GenerateSecretKey()
		require.NoError(t, err)

		raw, err := base32.Decode(secret)
		require.NoError(t, err)

		code, err := totp.GenerateAt(raw, 1)
		require.NoError(t, err)
		assert.Len(t, code, totp.DefaultDigits)
	})

	t.Run("successive keys differ", func(t *testing.T) {
		t.Parallel()
		first, err := totp.GenerateSecretKey()
		require.NoError(t, err)
		second, err := totp.GenerateSecretKey()
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})
}
