// Package config handles loading and validation of application configuration
// from environment variables.
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"

	"github.com/tripline/tripline-backend/logger"
)

// Environment represents the application's running environment (development or production).
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"ENVIRONMENT"`
	Port           string      `mapstructure:"PORT"`
	AllowedOrigins []string    `mapstructure:"ALLOWED_ORIGINS"`
	// TrustedProxies is a list of CIDR ranges or IPs of trusted reverse proxies.
	// If empty, X-Forwarded-For headers are ignored entirely (safe default).
	TrustedProxies []string `mapstructure:"TRUSTED_PROXIES"`
}

// DatabaseConfig holds PostgreSQL connection details.
type DatabaseConfig struct {
	Host           string `mapstructure:"HOST"`
	Port           int    `mapstructure:"PORT"`
	User           string `mapstructure:"USER"`
	Password       string `mapstructure:"PASSWORD"`
	Name           string `mapstructure:"NAME"`
	SSLMode        string `mapstructure:"SSL_MODE"`
	MaxConnections int    `mapstructure:"MAX_CONNECTIONS"`
	RunMigrations  bool   `mapstructure:"RUN_MIGRATIONS"`
	MigrationsPath string `mapstructure:"MIGRATIONS_PATH"`
}

// URL returns a postgres:// connection URL suitable for pgx and
// golang-migrate.
func (c *DatabaseConfig) URL() string {
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(c.User),
		url.QueryEscape(c.Password),
		c.Host,
		c.Port,
		c.Name,
		sslmode,
	)
}

// RedisConfig holds Redis connection details.
type RedisConfig struct {
	Address  string `mapstructure:"ADDRESS"`
	Password string `mapstructure:"PASSWORD"`
	DB       int    `mapstructure:"DB"`
}

// CacheConfig selects and sizes the locker search cache.
type CacheConfig struct {
	// Backend is "memory" or "redis".
	Backend    string `mapstructure:"BACKEND"`
	TTLSeconds int    `mapstructure:"TTL_SECONDS"`
	// MaxEntries bounds the memory backend; 0 means unbounded.
	MaxEntries int `mapstructure:"MAX_ENTRIES"`
}

// ExternalServices holds credentials and endpoints of upstream APIs.
type ExternalServices struct {
	LineChannelToken   string `mapstructure:"LINE_CHANNEL_TOKEN"`
	LineChannelSecret  string `mapstructure:"LINE_CHANNEL_SECRET"`
	GoogleMapsAPIKey   string `mapstructure:"GOOGLE_MAPS_API_KEY"`
	NominatimBaseURL   string `mapstructure:"NOMINATIM_BASE_URL"`
	NominatimUserAgent string `mapstructure:"NOMINATIM_USER_AGENT"`
	EcboBaseURL        string `mapstructure:"ECBO_BASE_URL"`
}

// Config is the root configuration object.
type Config struct {
	Server           ServerConfig     `mapstructure:"SERVER"`
	Database         DatabaseConfig   `mapstructure:"DATABASE"`
	Redis            RedisConfig      `mapstructure:"REDIS"`
	Cache            CacheConfig      `mapstructure:"CACHE"`
	ExternalServices ExternalServices `mapstructure:"EXTERNAL_SERVICES"`
	LogLevel         string           `mapstructure:"LOG_LEVEL"`
}

func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[1], err)
		}
	}
	return nil
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	log := logger.GetLogger()

	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("SERVER.TRUSTED_PROXIES", []string{})
	v.SetDefault("DATABASE.HOST", "localhost")
	v.SetDefault("DATABASE.PORT", 5432)
	v.SetDefault("DATABASE.USER", "postgres")
	v.SetDefault("DATABASE.PASSWORD", "")
	v.SetDefault("DATABASE.NAME", "tripline_dev")
	v.SetDefault("DATABASE.SSL_MODE", "disable")
	v.SetDefault("DATABASE.MAX_CONNECTIONS", 10)
	v.SetDefault("DATABASE.RUN_MIGRATIONS", false)
	v.SetDefault("DATABASE.MIGRATIONS_PATH", "file://db/migrations")
	v.SetDefault("REDIS.ADDRESS", "localhost:6379")
	v.SetDefault("REDIS.PASSWORD", "")
	v.SetDefault("REDIS.DB", 0)
	v.SetDefault("CACHE.BACKEND", "memory")
	v.SetDefault("CACHE.TTL_SECONDS", 3600)
	v.SetDefault("CACHE.MAX_ENTRIES", 1024)
	v.SetDefault("EXTERNAL_SERVICES.NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org")
	v.SetDefault("EXTERNAL_SERVICES.NOMINATIM_USER_AGENT", "tripline-backend/1.0")
	v.SetDefault("EXTERNAL_SERVICES.ECBO_BASE_URL", "https://cloak.ecbo.io")
	v.SetDefault("LOG_LEVEL", "info")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envBindings := [][2]string{
		{"SERVER.ENVIRONMENT", "SERVER_ENVIRONMENT"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
		{"SERVER.TRUSTED_PROXIES", "TRUSTED_PROXIES"},
		{"DATABASE.HOST", "DB_HOST"},
		{"DATABASE.PORT", "DB_PORT"},
		{"DATABASE.USER", "DB_USER"},
		{"DATABASE.PASSWORD", "DB_PASSWORD"},
		{"DATABASE.NAME", "DB_NAME"},
		{"DATABASE.SSL_MODE", "DB_SSL_MODE"},
		{"DATABASE.RUN_MIGRATIONS", "DB_RUN_MIGRATIONS"},
		{"DATABASE.MIGRATIONS_PATH", "DB_MIGRATIONS_PATH"},
		{"REDIS.ADDRESS", "REDIS_ADDRESS"},
		{"REDIS.PASSWORD", "REDIS_PASSWORD"},
		{"REDIS.DB", "REDIS_DB"},
		{"CACHE.BACKEND", "CACHE_BACKEND"},
		{"CACHE.TTL_SECONDS", "CACHE_TTL_SECONDS"},
		{"CACHE.MAX_ENTRIES", "CACHE_MAX_ENTRIES"},
		{"EXTERNAL_SERVICES.LINE_CHANNEL_TOKEN", "LINE_BOT_ACCESS_TOKEN"},
		{"EXTERNAL_SERVICES.LINE_CHANNEL_SECRET", "LINE_BOT_SECRET"},
		{"EXTERNAL_SERVICES.GOOGLE_MAPS_API_KEY", "GOOGLE_MAPS_API_KEY"},
		{"EXTERNAL_SERVICES.NOMINATIM_BASE_URL", "NOMINATIM_BASE_URL"},
		{"EXTERNAL_SERVICES.NOMINATIM_USER_AGENT", "NOMINATIM_USER_AGENT"},
		{"EXTERNAL_SERVICES.ECBO_BASE_URL", "ECBO_BASE_URL"},
	}
	if err := bindEnvVars(v, envBindings); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal failed: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	log.Infow("Configuration loaded",
		"environment", cfg.Server.Environment,
		"server_port", cfg.Server.Port,
		"db_host", cfg.Database.Host,
		"cache_backend", cfg.Cache.Backend,
	)
	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	log := logger.GetLogger()

	if cfg.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if cfg.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if cfg.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if cfg.Database.Name == "" {
		return fmt.Errorf("database name is required")
	}
	if cfg.Database.Password == "" {
		log.Warn("Database password is not set. Ensure this is intended (e.g., using trusted auth).")
	}

	switch cfg.Cache.Backend {
	case "memory":
	case "redis":
		if cfg.Redis.Address == "" {
			return fmt.Errorf("redis address is required when the redis cache backend is selected")
		}
	default:
		return fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
	if cfg.Cache.TTLSeconds <= 0 {
		return fmt.Errorf("cache TTL must be positive")
	}

	if cfg.Server.Environment == EnvProduction {
		if cfg.ExternalServices.LineChannelToken == "" {
			return fmt.Errorf("LINE channel access token is required in production")
		}
		if cfg.ExternalServices.LineChannelSecret == "" {
			return fmt.Errorf("LINE channel secret is required in production")
		}
	}
	return nil
}
