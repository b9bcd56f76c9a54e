package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronos-capsule/chronos/internal/crypto"
)

func TestRewrap(t *testing.T) {
	system, err := crypto.NewSystemCipher("rewrap-test-system-key-0123456789abcdef")
	require.NoError(t, err)

	secret := []byte("4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318")
	sysEnv, err := system.Encrypt(secret)
	require.NoError(t, err)

	// system -> password
	k := keys{system: system, newPassword: "first-password"}
	pwEnv, err := rewrap(sysEnv, modeSystem, modePassword, k)
	require.NoError(t, err)
	got, err := crypto.DecryptWithPassword(pwEnv, "first-password")
	require.NoError(t, err)
	assert.Equal(t, secret, got)

	// password -> password
	k = keys{oldPassword: "first-password", newPassword: "second-password"}
	rotated, err := rewrap(pwEnv, modePassword, modePassword, k)
	require.NoError(t, err)
	assert.NotEqual(t, pwEnv, rotated)
	got, err = crypto.DecryptWithPassword(rotated, "second-password")
	require.NoError(t, err)
	assert.Equal(t, secret, got)

	// password -> system
	k = keys{system: system, oldPassword: "second-password"}
	back, err := rewrap(rotated, modePassword, modeSystem, k)
	require.NoError(t, err)
	got, err = system.Decrypt(back)
	require.NoError(t, err)
	assert.Equal(t, secret, got)
}

func TestRewrap_Failures(t *testing.T) {
	system, err := crypto.NewSystemCipher("rewrap-test-system-key-0123456789abcdef")
	require.NoError(t, err)
	pwEnv, err := crypto.EncryptWithPassword([]byte("payload"), "right-password")
	require.NoError(t, err)

	_, err = rewrap(pwEnv, modePassword, modeSystem, keys{system: system, oldPassword: "wrong-password"})
	assert.True(t, crypto.IsAuthenticationFailure(err))

	_, err = rewrap(pwEnv, modePassword, modePassword, keys{oldPassword: "right-password", newPassword: "short"})
	assert.True(t, crypto.IsValidationError(err))

	_, err = rewrap(pwEnv, modePassword, modeSystem, keys{oldPassword: "right-password"})
	assert.True(t, crypto.IsConfigurationError(err))

	assert.Error(t, checkMode("from", "hsm"))
	assert.NoError(t, checkMode("to", modeSystem))
}
