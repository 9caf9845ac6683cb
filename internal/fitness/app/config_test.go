package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{
		"SECRET_KEY", "JWT_ALGORITHM", "ACCESS_TOKEN_EXPIRE_MINUTES", "PORT",
		"ASSISTANT_TIMEOUT", "COOKIE_SECURE", "GEMINI_MODEL", "DATABASE_FILE",
	} {
		t.Setenv(k, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "HS256", cfg.Algorithm)
	require.Equal(t, 30*time.Minute, cfg.TokenTTL)
	require.Equal(t, 8000, cfg.Port)
	require.Equal(t, 30*time.Second, cfg.AssistantTimeout)
	require.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	require.Equal(t, "spano.db", cfg.DatabaseFile)
	require.False(t, cfg.CookieSecure)

	require.Error(t, cfg.Validate(), "missing secret")
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SECRET_KEY", "s")
	t.Setenv("JWT_ALGORITHM", "hs512")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "5")
	t.Setenv("ASSISTANT_TIMEOUT", "12")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "1m")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("PORT", "not-a-port")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "HS512", cfg.Algorithm)
	require.Equal(t, 5*time.Minute, cfg.TokenTTL)
	require.Equal(t, 12*time.Second, cfg.AssistantTimeout)
	require.Equal(t, time.Minute, cfg.ShutdownGracePeriod)
	require.True(t, cfg.CookieSecure)
	require.Equal(t, 8000, cfg.Port)
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	valid := Config{SecretKey: "s", Algorithm: "HS256", TokenTTL: time.Minute, Port: 8000}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty secret", func(c *Config) { c.SecretKey = "" }},
		{"asymmetric algorithm", func(c *Config) { c.Algorithm = "RS256" }},
		{"none algorithm", func(c *Config) { c.Algorithm = "none" }},
		{"zero ttl", func(c *Config) { c.TokenTTL = 0 }},
		{"port out of range", func(c *Config) { c.Port = 70000 }},
		{"negative pool", func(c *Config) { c.DatabaseMaxConns = -1 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := valid
			tc.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
