package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	// APIBaseURL is the remote NusaBiz REST API root, e.g. http://localhost:3000/api/v1.
	APIBaseURL   string
	Port         string
	IsProduction bool

	// StateDBPath is the sqlite file holding the local session state.
	StateDBPath string

	// HTTPTimeout bounds every outbound backend call.
	HTTPTimeout time.Duration

	// StockDebounce is the quiescence window before a stock adjustment is sent.
	StockDebounce time.Duration

	// RateLimit is an ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string

	// CORSAllowOrigins is the origin list served to browsers.
	CORSAllowOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("API_BASE_URL", "http://localhost:3000/api/v1")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("STATE_DB_PATH", "nusabiz_state.db")
	viper.SetDefault("HTTP_TIMEOUT", "30s")
	viper.SetDefault("STOCK_DEBOUNCE", "500ms")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:5173")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.APIBaseURL = viper.GetString("API_BASE_URL")
	if cfg.APIBaseURL == "" {
		log.Println("Warning: API_BASE_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.StateDBPath = viper.GetString("STATE_DB_PATH")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowOrigins = viper.GetStringSlice("CORS_ALLOW_ORIGINS")

	timeoutStr := viper.GetString("HTTP_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 30 * time.Second
		log.Printf("Warning: Invalid value for HTTP_TIMEOUT ('%s'). Defaulting to %s\n", timeoutStr, timeout)
	}
	cfg.HTTPTimeout = timeout

	debounceStr := viper.GetString("STOCK_DEBOUNCE")
	debounce, err := time.ParseDuration(debounceStr)
	if err != nil {
		debounce = 500 * time.Millisecond
		log.Printf("Warning: Invalid value for STOCK_DEBOUNCE ('%s'). Defaulting to %s\n", debounceStr, debounce)
	}
	cfg.StockDebounce = debounce

	return cfg, nil
}
