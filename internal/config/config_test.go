package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("SERVER_ENV", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, 1, cfg.Session.WriteRetries)
	assert.Equal(t, 1500*time.Millisecond, cfg.Auth.OTPDelay)
	assert.Equal(t, time.Second, cfg.Auth.AdminDelay)
	assert.Equal(t, 5*time.Minute, cfg.Auth.OTPTTL)
	assert.Equal(t, 30*time.Second, cfg.Auth.ResendAfter)
	assert.Equal(t, 500.0, cfg.Wallet.MinWithdrawal)
	assert.Equal(t, "en", cfg.I18n.DefaultLanguage)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "redis")
	t.Setenv("STORAGE_NAMESPACE", "device-7")
	t.Setenv("SESSION_WRITE_RETRIES", "3")
	t.Setenv("AUTH_OTP_DELAY_MS", "0")
	t.Setenv("SESSION_HYDRATE_TIMEOUT", "250ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorageRedis, cfg.Storage.Driver)
	assert.Equal(t, "device-7", cfg.Storage.Namespace)
	assert.Equal(t, 3, cfg.Session.WriteRetries)
	assert.Equal(t, time.Duration(0), cfg.Auth.OTPDelay)
	assert.Equal(t, 250*time.Millisecond, cfg.Session.HydrateTimeout)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: "8080", Env: "development"},
			Storage:  StorageConfig{Driver: StorageMemory},
			Database: DatabaseConfig{Host: "localhost", Name: "driver_setu"},
			Redis:    RedisConfig{Host: "localhost"},
			Session:  SessionConfig{HydrateTimeout: 5 * time.Second},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing port", func(c *Config) { c.Server.Port = "" }, "SERVER_PORT"},
		{"unknown driver", func(c *Config) { c.Storage.Driver = "sqlite" }, "unknown STORAGE_DRIVER"},
		{"redis without host", func(c *Config) { c.Storage.Driver = StorageRedis; c.Redis.Host = "" }, "REDIS_HOST"},
		{"postgres without name", func(c *Config) { c.Storage.Driver = StoragePostgres; c.Database.Name = "" }, "DB_NAME"},
		{"negative retries", func(c *Config) { c.Session.WriteRetries = -1 }, "SESSION_WRITE_RETRIES"},
		{"zero hydrate timeout", func(c *Config) { c.Session.HydrateTimeout = 0 }, "SESSION_HYDRATE_TIMEOUT"},
		{"tiny hydrate timeout", func(c *Config) { c.Session.HydrateTimeout = time.Nanosecond }, "SESSION_HYDRATE_TIMEOUT"},
		{"memory in production", func(c *Config) { c.Server.Env = "production" }, "memory storage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
