package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers
const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NewRelic  NewRelicConfig
	Session   SessionConfig
	Auth      AuthConfig
	Wallet    WalletConfig
	WebSocket WebSocketConfig
	Log       LogConfig
	I18n      I18nConfig
}

type ServerConfig struct {
	Port string
	Env  string
	Host string
}

type StorageConfig struct {
	Driver    string
	Namespace string
}

type DatabaseConfig struct {
	Host           string
	Port           string
	Name           string
	User           string
	Password       string
	SSLMode        string
	MaxConnections int
	MaxIdleConns   int
}

type RedisConfig struct {
	Host        string
	Port        string
	Password    string
	DB          int
	MaxRetries  int
	PoolSize    int
	MinIdleConn int
	DialTimeout time.Duration
	ReadTimeout time.Duration
}

type NewRelicConfig struct {
	LicenseKey        string
	AppName           string
	Enabled           bool
	LogLevel          string
	PoolStatsInterval time.Duration
}

type SessionConfig struct {
	WriteRetries   int
	HydrateTimeout time.Duration
}

type AuthConfig struct {
	OTPDelay    time.Duration
	AdminDelay  time.Duration
	OTPTTL      time.Duration
	ResendAfter time.Duration
}

type WalletConfig struct {
	MinWithdrawal float64
}

type WebSocketConfig struct {
	ReadBufferSize  int
	WriteBufferSize int
}

type LogConfig struct {
	Level  string
	Format string
	Output string
}

type I18nConfig struct {
	DefaultLanguage string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
			Host: getEnv("SERVER_HOST", "127.0.0.1"),
		},
		Storage: StorageConfig{
			Driver:    getEnv("STORAGE_DRIVER", StorageMemory),
			Namespace: getEnv("STORAGE_NAMESPACE", ""),
		},
		Database: DatabaseConfig{
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           getEnv("DB_PORT", "5432"),
			Name:           getEnv("DB_NAME", "driver_setu"),
			User:           getEnv("DB_USER", "postgres"),
			Password:       getEnv("DB_PASSWORD", "postgres"),
			SSLMode:        getEnv("DB_SSLMODE", "disable"),
			MaxConnections: getEnvAsInt("DB_MAX_CONNECTIONS", 5),
			MaxIdleConns:   getEnvAsInt("DB_MAX_IDLE_CONNECTIONS", 2),
		},
		Redis: RedisConfig{
			Host:        getEnv("REDIS_HOST", "localhost"),
			Port:        getEnv("REDIS_PORT", "6379"),
			Password:    getEnv("REDIS_PASSWORD", ""),
			DB:          getEnvAsInt("REDIS_DB", 0),
			MaxRetries:  getEnvAsInt("REDIS_MAX_RETRIES", 3),
			PoolSize:    getEnvAsInt("REDIS_POOL_SIZE", 10),
			MinIdleConn: 1,
			DialTimeout: 5 * time.Second,
			ReadTimeout: 3 * time.Second,
		},
		NewRelic: NewRelicConfig{
			LicenseKey:        getEnv("NEW_RELIC_LICENSE_KEY", ""),
			AppName:           getEnv("NEW_RELIC_APP_NAME", "DriverSetu-Session"),
			Enabled:           getEnvAsBool("NEW_RELIC_ENABLED", true),
			LogLevel:          getEnv("NEW_RELIC_LOG_LEVEL", "info"),
			PoolStatsInterval: time.Duration(getEnvAsInt("NEW_RELIC_POOL_STATS_SECONDS", 60)) * time.Second,
		},
		Session: SessionConfig{
			WriteRetries:   getEnvAsInt("SESSION_WRITE_RETRIES", 1),
			HydrateTimeout: parseDuration(getEnv("SESSION_HYDRATE_TIMEOUT", "5s"), 5*time.Second),
		},
		Auth: AuthConfig{
			OTPDelay:    time.Duration(getEnvAsInt("AUTH_OTP_DELAY_MS", 1500)) * time.Millisecond,
			AdminDelay:  time.Duration(getEnvAsInt("AUTH_ADMIN_DELAY_MS", 1000)) * time.Millisecond,
			OTPTTL:      time.Duration(getEnvAsInt("AUTH_OTP_TTL_SECONDS", 300)) * time.Second,
			ResendAfter: time.Duration(getEnvAsInt("AUTH_OTP_RESEND_SECONDS", 30)) * time.Second,
		},
		Wallet: WalletConfig{
			MinWithdrawal: getEnvAsFloat64("WALLET_MIN_WITHDRAWAL", 500),
		},
		WebSocket: WebSocketConfig{
			ReadBufferSize:  getEnvAsInt("WS_READ_BUFFER_SIZE", 1024),
			WriteBufferSize: getEnvAsInt("WS_WRITE_BUFFER_SIZE", 1024),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
			Output: getEnv("LOG_OUTPUT", "stdout"),
		},
		I18n: I18nConfig{
			DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "en"),
		},
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// minHydrateTimeout leaves room for one storage round trip at boot
const minHydrateTimeout = 10 * time.Millisecond

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	switch c.Storage.Driver {
	case StorageMemory:
	case StorageRedis:
		if c.Redis.Host == "" {
			return fmt.Errorf("REDIS_HOST is required for the redis storage driver")
		}
	case StoragePostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("DB_HOST is required for the postgres storage driver")
		}
		if c.Database.Name == "" {
			return fmt.Errorf("DB_NAME is required for the postgres storage driver")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
	if c.Session.WriteRetries < 0 {
		return fmt.Errorf("SESSION_WRITE_RETRIES must not be negative")
	}
	if c.Session.HydrateTimeout < minHydrateTimeout {
		return fmt.Errorf("SESSION_HYDRATE_TIMEOUT must be at least %s", minHydrateTimeout)
	}
	if c.Storage.Driver == StorageMemory && c.Server.Env == "production" {
		return fmt.Errorf("memory storage does not survive restarts; set STORAGE_DRIVER in production")
	}
	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	return defaultValue
}
