package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the application.
type Config struct {
	AppName       string
	AppEnv        string
	DatabaseURL   string
	RedisURL      string
	SessionSecret string
	ListCacheTTL  time.Duration
	SeedEnabled   bool
}

// Load reads configuration values from environment variables and an optional
// .env file. A missing session secret gets a per-process random one, which is
// fine for a single-session desktop run: tokens only need to outlive the
// process that minted them.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("KEGIATAN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Kegiatan DTEI")
	v.SetDefault("app.env", "development")
	v.SetDefault("database.url", "file:kegiatan.db")
	v.SetDefault("list.cache_ttl", "30s")
	v.SetDefault("seed.enabled", true)

	ttlString := v.GetString("list.cache_ttl")
	if ttlString == "" {
		ttlString = "30s"
	}

	ttl, err := time.ParseDuration(ttlString)
	if err != nil {
		return Config{}, fmt.Errorf("invalid list cache ttl: %w", err)
	}

	cfg := Config{
		AppName:       v.GetString("app.name"),
		AppEnv:        v.GetString("app.env"),
		DatabaseURL:   v.GetString("database.url"),
		RedisURL:      v.GetString("redis.url"),
		SessionSecret: v.GetString("session.secret"),
		ListCacheTTL:  ttl,
		SeedEnabled:   v.GetBool("seed.enabled"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("database url must be provided")
	}

	if cfg.SessionSecret == "" {
		cfg.SessionSecret = uuid.NewString()
	}

	return cfg, nil
}
