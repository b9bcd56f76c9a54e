package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENCRYPTION_KEY", "")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, "chronos.db", c.DatabasePath)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 4, c.KDFMaxConcurrency)
	assert.Equal(t, int64(25), c.MaxUploadMB)
	assert.Equal(t, 4, c.BatchConcurrency)
	assert.Empty(t, c.EncryptionKey)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENCRYPTION_KEY", "0123456789abcdef0123456789abcdef")
	t.Setenv("KDF_MAX_CONCURRENCY", "2")
	t.Setenv("MAX_UPLOAD_MB", "3")

	require.NoError(t, Init())
	assert.Equal(t, "9090", GetPort())
	assert.Equal(t, "0123456789abcdef0123456789abcdef", GetEncryptionKey())
	assert.Equal(t, 2, GetKDFMaxConcurrency())
	assert.Equal(t, int64(3<<20), GetMaxUploadBytes())
}

func TestLoad_RejectsNonPositiveLimits(t *testing.T) {
	t.Setenv("KDF_MAX_CONCURRENCY", "0")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("KDF_MAX_CONCURRENCY", "1")
	t.Setenv("BATCH_CONCURRENCY", "-1")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("BATCH_CONCURRENCY", "1")
	t.Setenv("MAX_UPLOAD_MB", "notanumber")
	_, err = Load()
	assert.Error(t, err)
}
