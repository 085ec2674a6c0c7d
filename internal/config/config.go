package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// maxEnvSearchDepth bounds how many parent directories are searched for .env.
const maxEnvSearchDepth = 5

// Config holds all configuration for the application.
type Config struct {
	AppName    string `envconfig:"APP_NAME" default:"Meta Content Manager"`
	AppVersion string `envconfig:"APP_VERSION" default:"1.0.0"`
	APIPort    string `envconfig:"API_PORT" default:"8000"`

	MetaAccessToken string `envconfig:"META_ACCESS_TOKEN"`
	GraphBaseURL    string `envconfig:"GRAPH_BASE_URL" default:"https://graph.facebook.com/v18.0"`

	LLMBaseURL   string `envconfig:"LLM_BASE_URL"`
	LLMAPIKey    string `envconfig:"LLM_API_KEY"`
	LLMModelName string `envconfig:"LLM_MODEL" default:"gpt-4o-mini"`

	ImageBaseURL   string `envconfig:"IMAGE_BASE_URL"`
	ImageAPIKey    string `envconfig:"IMAGE_API_KEY"`
	ImageModelName string `envconfig:"IMAGE_MODEL" default:"dall-e-3"`

	SupabaseURL    string `envconfig:"SUPABASE_URL"`
	SupabaseKey    string `envconfig:"SUPABASE_KEY"`
	SupabaseBucket string `envconfig:"SUPABASE_BUCKET" default:"training-images"`

	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"25s"`
	DBPath         string        `envconfig:"DB_PATH" default:"./data/metacontent.db"`

	RawLogLevel string     `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string     `envconfig:"LOG_FORMAT" default:"text"`
	LogLevel    slog.Level `ignored:"true"`
}

// LLMConfigured reports whether a chat completion endpoint is set.
func (c *Config) LLMConfigured() bool {
	return c.LLMBaseURL != "" && c.LLMAPIKey != ""
}

// ImageConfigured reports whether an image generation endpoint is set. The
// image client falls back to the LLM endpoint and key when its own are empty.
func (c *Config) ImageConfigured() bool {
	return c.imageBaseURL() != "" && c.imageAPIKey() != ""
}

// ImageEndpoint returns the base URL and key for image generation.
func (c *Config) ImageEndpoint() (string, string) {
	return c.imageBaseURL(), c.imageAPIKey()
}

func (c *Config) imageBaseURL() string {
	if c.ImageBaseURL != "" {
		return c.ImageBaseURL
	}
	return c.LLMBaseURL
}

func (c *Config) imageAPIKey() string {
	if c.ImageAPIKey != "" {
		return c.ImageAPIKey
	}
	return c.LLMAPIKey
}

// Load reads configuration from environment variables and returns a Config struct.
// If a .env file exists in the current directory or up to five parents, it is
// loaded first. Environment variables already set take precedence over .env
// file values.
func Load() (*Config, error) {
	loadDotEnv()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration: %w", err)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(strings.TrimSpace(cfg.RawLogLevel))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error: %w", err)
	}

	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	if cfg.RequestTimeout <= 0 {
		return nil, fmt.Errorf("REQUEST_TIMEOUT must be greater than 0")
	}

	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &cfg, nil
}

// loadDotEnv loads the nearest .env file. Missing files are ignored.
func loadDotEnv() {
	wd, err := os.Getwd()
	if err != nil {
		return
	}
	dir := wd
	for i := 0; i <= maxEnvSearchDepth; i++ {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}
