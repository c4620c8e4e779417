package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	PublicURL         string `mapstructure:"PUBLIC_URL"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Comma-separated proxy IPs/CIDRs whose X-Forwarded-For is believed.
	TrustedProxies []string `mapstructure:"TRUSTED_PROXIES"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// Session cookie.
	SessionSecret     string        `mapstructure:"SESSION_SECRET"`
	SessionCookieName string        `mapstructure:"SESSION_COOKIE_NAME"`
	SessionTTL        time.Duration `mapstructure:"SESSION_TTL"`
	SecureCookies     bool          `mapstructure:"SECURE_COOKIES"`

	// Google OAuth client.
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`

	// Ledger maintenance.
	FeedCacheTTL  time.Duration `mapstructure:"FEED_CACHE_TTL"`
	ReconcileCron string        `mapstructure:"RECONCILE_CRON"`
}

// LoadConfig reads config.yaml (if any) and the environment into a Config.
func LoadConfig() (*Config, error) {
	v := viper.New()
	// Look for a config file named "config.yaml" in the current and "config" directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.SessionSecret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("SESSION_SECRET must be set in production")
		}
		cfg.SessionSecret = "lexify-dev-secret"
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "3000")
	v.SetDefault("PUBLIC_URL", "http://localhost:3000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	v.SetDefault("TRUSTED_PROXIES", "")
	// Advice posting uses transactions, so the default targets a single-node replica set.
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017/?replicaSet=rs0")
	v.SetDefault("DATABASE_NAME", "lexify")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CACHE_DB", 0)
	v.SetDefault("REDIS_SESSION_DB", 1)
	v.SetDefault("REDIS_QUEUE_DB", 2)
	v.SetDefault("SESSION_SECRET", "")
	v.SetDefault("SESSION_COOKIE_NAME", "lexify_session")
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("SECURE_COOKIES", false)
	v.SetDefault("GOOGLE_CLIENT_ID", "")
	v.SetDefault("GOOGLE_CLIENT_SECRET", "")
	v.SetDefault("FEED_CACHE_TTL", "5m")
	v.SetDefault("RECONCILE_CRON", "@every 30m")
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
