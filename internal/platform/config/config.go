package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Data feed
	DataDir    string        // directory holding the mock JSON payloads
	FetchDelay time.Duration // simulated network latency per feed fetch

	// HTTP surface
	RateLimit        string // ulule/limiter formatted rate, e.g. "100-M"
	CORSAllowOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("DATA_DIR", "./mockdata")
	viper.SetDefault("FETCH_DELAY", "500ms")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.DataDir = viper.GetString("DATA_DIR")

	fetchDelayStr := viper.GetString("FETCH_DELAY")
	fetchDelay, err := time.ParseDuration(fetchDelayStr)
	if err != nil {
		fetchDelay = 500 * time.Millisecond
		log.Printf("Warning: Invalid value for FETCH_DELAY ('%s'). Defaulting to %s.\n", fetchDelayStr, fetchDelay)
	}
	cfg.FetchDelay = fetchDelay

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowOrigins = viper.GetStringSlice("CORS_ALLOW_ORIGINS")

	return cfg, nil
}
