package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var envVars = []string{
	"APP_NAME", "APP_VERSION", "API_PORT",
	"META_ACCESS_TOKEN", "GRAPH_BASE_URL",
	"LLM_BASE_URL", "LLM_API_KEY", "LLM_MODEL",
	"IMAGE_BASE_URL", "IMAGE_API_KEY", "IMAGE_MODEL",
	"SUPABASE_URL", "SUPABASE_KEY", "SUPABASE_BUCKET",
	"REQUEST_TIMEOUT", "DB_PATH", "LOG_LEVEL", "LOG_FORMAT",
}

// isolateEnv clears every config variable for the duration of the test and
// moves into an empty directory so no .env file is picked up.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range envVars {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
	t.Chdir(t.TempDir())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		setupEnv    func(*testing.T)
		wantErr     bool
		checkConfig func(*testing.T, *Config)
	}{
		{
			name: "defaults",
			setupEnv: func(t *testing.T) {
				t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "data", "app.db"))
			},
			checkConfig: func(t *testing.T, cfg *Config) {
				if cfg.APIPort != "8000" {
					t.Errorf("APIPort = %q, want 8000", cfg.APIPort)
				}
				if cfg.GraphBaseURL != "https://graph.facebook.com/v18.0" {
					t.Errorf("GraphBaseURL = %q", cfg.GraphBaseURL)
				}
				if cfg.RequestTimeout != 25*time.Second {
					t.Errorf("RequestTimeout = %v, want 25s", cfg.RequestTimeout)
				}
				if cfg.LogLevel != slog.LevelInfo || cfg.LogFormat != "text" {
					t.Errorf("logging = %v/%q, want INFO/text", cfg.LogLevel, cfg.LogFormat)
				}
				if cfg.SupabaseBucket != "training-images" {
					t.Errorf("SupabaseBucket = %q", cfg.SupabaseBucket)
				}
				if cfg.LLMConfigured() || cfg.ImageConfigured() {
					t.Error("no integration should be configured by default")
				}
				if _, err := os.Stat(filepath.Dir(cfg.DBPath)); err != nil {
					t.Errorf("data directory not created: %v", err)
				}
			},
		},
		{
			name: "overrides",
			setupEnv: func(t *testing.T) {
				t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "app.db"))
				t.Setenv("API_PORT", "9100")
				t.Setenv("LOG_LEVEL", "DEBUG")
				t.Setenv("LOG_FORMAT", "JSON")
				t.Setenv("REQUEST_TIMEOUT", "5s")
				t.Setenv("META_ACCESS_TOKEN", "tok")
			},
			checkConfig: func(t *testing.T, cfg *Config) {
				if cfg.APIPort != "9100" || cfg.MetaAccessToken != "tok" {
					t.Errorf("got port %q token %q", cfg.APIPort, cfg.MetaAccessToken)
				}
				if cfg.LogLevel != slog.LevelDebug || cfg.LogFormat != "json" {
					t.Errorf("logging = %v/%q, want DEBUG/json", cfg.LogLevel, cfg.LogFormat)
				}
				if cfg.RequestTimeout != 5*time.Second {
					t.Errorf("RequestTimeout = %v, want 5s", cfg.RequestTimeout)
				}
			},
		},
		{
			name: "image endpoint falls back to llm",
			setupEnv: func(t *testing.T) {
				t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "app.db"))
				t.Setenv("LLM_BASE_URL", "https://llm.example")
				t.Setenv("LLM_API_KEY", "k")
			},
			checkConfig: func(t *testing.T, cfg *Config) {
				if !cfg.LLMConfigured() || !cfg.ImageConfigured() {
					t.Fatal("llm and image should be configured")
				}
				if url, key := cfg.ImageEndpoint(); url != "https://llm.example" || key != "k" {
					t.Errorf("ImageEndpoint() = %q, %q", url, key)
				}
			},
		},
		{
			name: "invalid log level",
			setupEnv: func(t *testing.T) {
				t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "app.db"))
				t.Setenv("LOG_LEVEL", "loud")
			},
			wantErr: true,
		},
		{
			name: "invalid log format",
			setupEnv: func(t *testing.T) {
				t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "app.db"))
				t.Setenv("LOG_FORMAT", "xml")
			},
			wantErr: true,
		},
		{
			name: "invalid timeout",
			setupEnv: func(t *testing.T) {
				t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "app.db"))
				t.Setenv("REQUEST_TIMEOUT", "soon")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			tt.setupEnv(t)

			cfg, err := Load()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && tt.checkConfig != nil {
				tt.checkConfig(t, cfg)
			}
		})
	}
}

func TestLoad_DotEnvInParent(t *testing.T) {
	isolateEnv(t)

	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	env := "API_PORT=7777\nDB_PATH=" + filepath.Join(root, "app.db") + "\n"
	if err := os.WriteFile(filepath.Join(root, ".env"), []byte(env), 0644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(nested)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIPort != "7777" {
		t.Errorf("APIPort = %q, want 7777 from .env", cfg.APIPort)
	}
}
