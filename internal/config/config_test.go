package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// clearEnv blanks every variable Load consults; viper treats empty as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"MARQUEE_API_KEY", "TMDB_API_KEY", "MARQUEE_API_URL",
		"MARQUEE_IMAGE_URL", "MARQUEE_LOG_LEVEL", "MARQUEE_LOG_FILE",
	} {
		t.Setenv(name, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigUsesDefaultsAndEnvKey(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearEnv(t)
	t.Setenv("TMDB_API_KEY", "from-env")

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != defaultAPIURL {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, defaultAPIURL)
	}
	if cfg.ImageURL != defaultImageURL {
		t.Fatalf("ImageURL = %q, want %q", cfg.ImageURL, defaultImageURL)
	}
	if cfg.APIKey != "from-env" {
		t.Fatalf("APIKey = %q, want from-env", cfg.APIKey)
	}
	if cfg.Logging.Level != defaultLogLevel {
		t.Fatalf("Logging.Level = %q, want %q", cfg.Logging.Level, defaultLogLevel)
	}
	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.Logging.File != wantLog {
		t.Fatalf("Logging.File = %q, want %q", cfg.Logging.File, wantLog)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearEnv(t)

	path := writeConfig(t, `
api_url = "  https://catalog.example.com/3/  "
image_url = "https://img.example.com/w500/"
api_key = "  file-key  "

[logging]
level = "DEBUG"
file = "~/logs/marquee.log"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != "https://catalog.example.com/3" {
		t.Fatalf("APIURL = %q", cfg.APIURL)
	}
	if cfg.ImageURL != "https://img.example.com/w500" {
		t.Fatalf("ImageURL = %q", cfg.ImageURL)
	}
	if cfg.APIKey != "file-key" {
		t.Fatalf("APIKey = %q, want file-key", cfg.APIKey)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if !strings.HasPrefix(cfg.Logging.File, home) {
		t.Fatalf("Logging.File = %q, want it under HOME %q", cfg.Logging.File, home)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	clearEnv(t)
	t.Setenv("MARQUEE_API_KEY", "primary")
	t.Setenv("TMDB_API_KEY", "fallback")
	t.Setenv("MARQUEE_LOG_LEVEL", "warn")

	path := writeConfig(t, `api_key = "file-key"`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIKey != "primary" {
		t.Fatalf("APIKey = %q, want primary", cfg.APIKey)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
}

func TestLoad_MissingKeyFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	clearEnv(t)

	_, err := Load(writeConfig(t, `api_url = "https://catalog.example.com/3"`))
	if err == nil {
		t.Fatalf("Load returned nil error, want missing api_key error")
	}
	if !strings.Contains(err.Error(), "api_key is required") {
		t.Fatalf("Load error = %q, want it to mention api_key", err.Error())
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	clearEnv(t)

	_, err := Load(writeConfig(t, `api_url = [`))
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestValidate(t *testing.T) {
	base := Config{
		APIURL:   defaultAPIURL,
		ImageURL: defaultImageURL,
		APIKey:   "k",
		Logging:  LoggingConfig{Level: "info"},
	}
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"relative api url", func(c *Config) { c.APIURL = "/3" }, "api_url must be"},
		{"ftp image url", func(c *Config) { c.ImageURL = "ftp://img" }, "image_url must be"},
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }, "invalid logging level"},
		{"no key", func(c *Config) { c.APIKey = "" }, "api_key is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

func TestWithLogLevel(t *testing.T) {
	cfg := Config{Logging: LoggingConfig{Level: "info"}}

	got, err := cfg.WithLogLevel(" DEBUG ")
	if err != nil {
		t.Fatalf("WithLogLevel returned error: %v", err)
	}
	if got.Logging.Level != "debug" {
		t.Fatalf("Level = %q, want debug", got.Logging.Level)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("WithLogLevel mutated receiver: %q", cfg.Logging.Level)
	}

	if got, err := cfg.WithLogLevel(""); err != nil || got.Logging.Level != "info" {
		t.Fatalf("WithLogLevel(\"\") = %q, %v; want info, nil", got.Logging.Level, err)
	}
	if _, err := cfg.WithLogLevel("verbose"); err == nil {
		t.Fatal("WithLogLevel(verbose) returned nil error")
	}
}
