package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProductionConfig() *Config {
	return &Config{
		Port:       "8460",
		DBPassword: "a-real-production-password",
		DBSSLMode:  "require",
		JWTSecret:  "an-actual-secret-of-sufficient-length!",
		Env:        "production",
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8460", cfg.Port)
	assert.Equal(t, "reelvault", cfg.DBName)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("PORT", "9999")
	t.Setenv("DB_NAME", "reelvault_test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "reelvault_test", cfg.DBName)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{
			name:   "valid production",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing port",
			mutate:  func(c *Config) { c.Port = "" },
			wantErr: true,
		},
		{
			name:    "missing jwt secret",
			mutate:  func(c *Config) { c.JWTSecret = "" },
			wantErr: true,
		},
		{
			name:    "default jwt secret in production",
			mutate:  func(c *Config) { c.JWTSecret = "your-secret-key-change-in-production" },
			wantErr: true,
		},
		{
			name:    "short jwt secret in production",
			mutate:  func(c *Config) { c.JWTSecret = "too-short" },
			wantErr: true,
		},
		{
			name:    "default db password in production",
			mutate:  func(c *Config) { c.DBPassword = "password" },
			wantErr: true,
		},
		{
			name: "weak values tolerated in development",
			mutate: func(c *Config) {
				c.Env = "development"
				c.JWTSecret = "dev"
				c.DBPassword = "password"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validProductionConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
