package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8000", cfg.Addr)
	assert.Equal(t, "sports_school.db", cfg.DatabasePath)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, "test-secret", cfg.Secret)
	assert.Equal(t, 168*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "admin123", cfg.DefaultAdminPassword)
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SECRET", "test-secret")
	t.Setenv("ADDR", ":9090")
	t.Setenv("TOKEN_TTL_HOURS", "24")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
}

func TestLoadRejectsBadTTL(t *testing.T) {
	t.Setenv("SECRET", "test-secret")
	t.Setenv("TOKEN_TTL_HOURS", "soon")

	_, err := Load()
	assert.Error(t, err)
}
