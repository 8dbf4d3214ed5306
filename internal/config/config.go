package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultModel           = "openai/gpt-oss-120b"
	DefaultMaxTokens       = 1024
	DefaultTemperature     = 0.7
	DefaultListenAddr      = ":8000"
	DefaultUpstreamBaseURL = "https://api.groq.com/openai/v1"
	DefaultUpstreamTimeout = 30 * time.Second
)

// Config holds the gateway configuration, read once at startup.
type Config struct {
	APIKey          string
	Model           string
	MaxTokens       int
	Temperature     float64
	ListenAddr      string
	UpstreamBaseURL string
	UpstreamTimeout time.Duration
}

// Load reads configuration from the environment. A .env file in the
// working directory is merged in first if present. The API key is
// mandatory; everything else has a default.
func Load() (*Config, error) {
	// Best effort, matching dotenv semantics: real env vars win.
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:          os.Getenv("GROQ_API_KEY"),
		Model:           envOr("GROQ_MODEL", DefaultModel),
		MaxTokens:       DefaultMaxTokens,
		Temperature:     DefaultTemperature,
		ListenAddr:      envOr("LISTEN_ADDR", DefaultListenAddr),
		UpstreamBaseURL: envOr("UPSTREAM_BASE_URL", DefaultUpstreamBaseURL),
		UpstreamTimeout: DefaultUpstreamTimeout,
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY is not set")
	}

	if v := os.Getenv("MAX_TOKENS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid MAX_TOKENS %q", v)
		}
		cfg.MaxTokens = n
	}

	if v := os.Getenv("TEMPERATURE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 || f > 1 {
			return nil, fmt.Errorf("invalid TEMPERATURE %q", v)
		}
		cfg.Temperature = f
	}

	if v := os.Getenv("UPSTREAM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT %q", v)
		}
		cfg.UpstreamTimeout = d
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
