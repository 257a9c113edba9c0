package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "Kegiatan DTEI", cfg.AppName)
	require.Equal(t, "file:kegiatan.db", cfg.DatabaseURL)
	require.Equal(t, 30*time.Second, cfg.ListCacheTTL)
	require.True(t, cfg.SeedEnabled)
	require.NotEmpty(t, cfg.SessionSecret, "a missing secret gets a per-process random one")
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("KEGIATAN_DATABASE_URL", "postgres://dept:secret@db/kegiatan")
	t.Setenv("KEGIATAN_SESSION_SECRET", "fixed-secret")
	t.Setenv("KEGIATAN_LIST_CACHE_TTL", "2m")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "postgres://dept:secret@db/kegiatan", cfg.DatabaseURL)
	require.Equal(t, "fixed-secret", cfg.SessionSecret)
	require.Equal(t, 2*time.Minute, cfg.ListCacheTTL)
}

func TestLoadRejectsBadTTL(t *testing.T) {
	t.Setenv("KEGIATAN_LIST_CACHE_TTL", "not-a-duration")

	_, err := Load()
	require.Error(t, err)
}
