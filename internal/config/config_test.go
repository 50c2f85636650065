package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/dash")
	t.Setenv("JWT_SECRET", "k")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout.Duration())
	assert.Equal(t, 20, cfg.PG.InitRetries)
	assert.Equal(t, 5*time.Second, cfg.PG.InitBackoff.Duration())
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL.Duration())
	assert.Equal(t, 0, cfg.Auth.BcryptCost)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoad_MissingSecretFails(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/dash")
	// t.Setenv registers the restore; unset to simulate a missing variable.
	t.Setenv("JWT_SECRET", "x")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RedisURLOverride(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/dash")
	t.Setenv("JWT_SECRET", "k")
	t.Setenv("REDIS_ADDR", "ignored:1")
	t.Setenv("REDIS_URL", "redis://default:pw@cache-host:6380/2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "cache-host:6380", cfg.Redis.Addr)
	assert.Equal(t, "pw", cfg.Redis.Password)
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"10", 10 * time.Second},
		{"10s", 10 * time.Second},
		{"5m", 5 * time.Minute},
		{`"30s"`, 30 * time.Second},
		{"'15'", 15 * time.Second},
	}
	for _, tc := range cases {
		got, err := parseDuration(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, bad := range []string{"", "abc", "10x"} {
		if _, err := parseDuration(bad); err == nil {
			t.Fatalf("parseDuration(%q) expected error", bad)
		}
	}
}
