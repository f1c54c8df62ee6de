package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store backends.
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	Store         string
	RunMigrations bool

	JWTSecret string // Empty disables bearer authentication
	JWTIssuer string

	RateLimit          string // ulule/limiter format, e.g. "200-M"
	CORSAllowedOrigins []string

	RedisURL      string // Empty keeps the rules cache in process
	RulesCacheTTL time.Duration

	QueryDefaultLimit int
	QueryMaxLimit     int

	PostHogAPIKey string
	PostHogHost   string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("STORE", StorePostgres)
	viper.SetDefault("RUN_MIGRATIONS", false)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_ISSUER", "ledger-engine")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("RULES_CACHE_TTL", "5m")
	viper.SetDefault("QUERY_DEFAULT_LIMIT", 25)
	viper.SetDefault("QUERY_MAX_LIMIT", 100)
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_HOST", "https://us.i.posthog.com")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.RunMigrations = viper.GetBool("RUN_MIGRATIONS")

	cfg.Store = strings.ToLower(strings.TrimSpace(viper.GetString("STORE")))
	if cfg.Store != StoreMemory && cfg.Store != StorePostgres {
		log.Printf("Warning: unknown STORE '%s'. Defaulting to %s.\n", cfg.Store, StorePostgres)
		cfg.Store = StorePostgres
	}
	if cfg.Store == StorePostgres && cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTSecret == "" && cfg.IsProduction {
		log.Println("Warning: JWT_SECRET is not set, the ledger API is unauthenticated.")
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.RedisURL = viper.GetString("REDIS_URL")
	ttlStr := viper.GetString("RULES_CACHE_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		ttl = 5 * time.Minute
		log.Printf("Warning: Invalid value for RULES_CACHE_TTL ('%s'). Defaulting to %s.\n", ttlStr, ttl)
	}
	cfg.RulesCacheTTL = ttl

	cfg.QueryDefaultLimit = viper.GetInt("QUERY_DEFAULT_LIMIT")
	cfg.QueryMaxLimit = viper.GetInt("QUERY_MAX_LIMIT")
	if cfg.QueryMaxLimit > 0 && cfg.QueryDefaultLimit > cfg.QueryMaxLimit {
		log.Printf("Warning: QUERY_DEFAULT_LIMIT %d exceeds QUERY_MAX_LIMIT %d. Clamping.\n", cfg.QueryDefaultLimit, cfg.QueryMaxLimit)
		cfg.QueryDefaultLimit = cfg.QueryMaxLimit
	}

	cfg.PostHogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PostHogHost = viper.GetString("POSTHOG_HOST")

	return cfg, nil
}
