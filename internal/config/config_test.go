package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Env:             "production",
		Port:            "5000",
		DBPassword:      "secure-password",
		DBSSLMode:       "require",
		AccessTokenKey:  "access-key-that-is-at-least-32-chars",
		RefreshTokenKey: "refresh-key-that-is-at-least-32-chars",
		AccessTokenAge:  3000,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectError bool
	}{
		{"valid production config", func(c *Config) {}, false},
		{"missing port", func(c *Config) { c.Port = "" }, true},
		{"missing access key", func(c *Config) { c.AccessTokenKey = "" }, true},
		{"missing refresh key", func(c *Config) { c.RefreshTokenKey = "" }, true},
		{"same keys", func(c *Config) { c.RefreshTokenKey = c.AccessTokenKey }, true},
		{"zero token age", func(c *Config) { c.AccessTokenAge = 0 }, true},
		{"unknown schema mode", func(c *Config) { c.DBSchemaMode = "hybrid" }, true},
		{"sql schema mode", func(c *Config) { c.DBSchemaMode = "sql" }, false},
		{"production default key", func(c *Config) { c.AccessTokenKey = defaultAccessTokenKey }, true},
		{"production short key", func(c *Config) { c.RefreshTokenKey = "short" }, true},
		{"production weak db password", func(c *Config) { c.DBPassword = "password" }, true},
		{"production ssl disabled", func(c *Config) { c.DBSSLMode = "disable" }, true},
		{"development allows defaults", func(c *Config) {
			c.Env = "development"
			c.AccessTokenKey = defaultAccessTokenKey
			c.RefreshTokenKey = defaultRefreshTokenKey
			c.DBSSLMode = "disable"
			c.DBPassword = "password"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Cleanup(viper.Reset)

	t.Setenv("APP_ENV", "test")
	t.Setenv("PORT", "6000")
	t.Setenv("DB_SSLMODE", "  DISABLE  ")
	t.Setenv("ACCESS_TOKEN_AGE", "60")
	t.Setenv("FEATURE_FLAGS", "comment_like_count=on")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "6000", c.Port)
	assert.Equal(t, "disable", c.DBSSLMode)
	assert.Equal(t, 60, c.AccessTokenAge)
	assert.Equal(t, "comment_like_count=on", c.FeatureFlags)
	assert.Equal(t, 30, c.ThreadCacheTTLSeconds)
}
