package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config captures everything marquee reads at startup.
type Config struct {
	APIURL   string        `mapstructure:"api_url"`
	ImageURL string        `mapstructure:"image_url"`
	APIKey   string        `mapstructure:"api_key"`
	Logging  LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig controls the zerolog output.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

const (
	defaultConfigPath = "~/.config/marquee/config.toml"
	defaultAPIURL     = "https://api.themoviedb.org/3"
	defaultImageURL   = "https://image.tmdb.org/t/p/original"
	defaultLogLevel   = "info"
	defaultLogFile    = "~/.local/state/marquee/marquee.log"
)

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Load reads the optional config file at path (default
// ~/.config/marquee/config.toml), overlays environment variables and
// validates the result. A missing file is not an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	v := viper.New()
	setDefaults(v)
	if err := bindEnv(v); err != nil {
		return Config{}, err
	}

	if _, err := os.Stat(resolved); err == nil {
		v.SetConfigFile(resolved)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	normalize(&cfg)

	if err := validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// DefaultPath returns the config path used when none is given.
func DefaultPath() string {
	return defaultConfigPath
}

// WithLogLevel returns a copy of c using level, which must be one of
// debug, info, warn or error. An empty level keeps the configured one.
func (c Config) WithLogLevel(level string) (Config, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return c, nil
	}
	if !validLevels[level] {
		return c, fmt.Errorf("invalid logging level: %s", level)
	}
	c.Logging.Level = level
	return c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api_url", defaultAPIURL)
	v.SetDefault("image_url", defaultImageURL)
	v.SetDefault("api_key", "")
	v.SetDefault("logging.level", defaultLogLevel)
	v.SetDefault("logging.file", defaultLogFile)
}

func bindEnv(v *viper.Viper) error {
	bindings := [][]string{
		{"api_key", "MARQUEE_API_KEY", "TMDB_API_KEY"},
		{"api_url", "MARQUEE_API_URL"},
		{"image_url", "MARQUEE_IMAGE_URL"},
		{"logging.level", "MARQUEE_LOG_LEVEL"},
		{"logging.file", "MARQUEE_LOG_FILE"},
	}
	for _, b := range bindings {
		if err := v.BindEnv(b...); err != nil {
			return fmt.Errorf("bind env %s: %w", b[0], err)
		}
	}
	return nil
}

func normalize(cfg *Config) {
	cfg.APIURL = strings.TrimRight(strings.TrimSpace(cfg.APIURL), "/")
	if cfg.APIURL == "" {
		cfg.APIURL = defaultAPIURL
	}
	cfg.ImageURL = strings.TrimRight(strings.TrimSpace(cfg.ImageURL), "/")
	if cfg.ImageURL == "" {
		cfg.ImageURL = defaultImageURL
	}
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)

	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(cfg.Logging.File) == "" {
		cfg.Logging.File = defaultLogFile
	}
	cfg.Logging.File = mustExpand(cfg.Logging.File)
}

func validate(cfg Config) error {
	if cfg.APIKey == "" {
		return fmt.Errorf("api_key is required (set it in the config file, MARQUEE_API_KEY or TMDB_API_KEY)")
	}
	if err := validateURL("api_url", cfg.APIURL); err != nil {
		return err
	}
	if err := validateURL("image_url", cfg.ImageURL); err != nil {
		return err
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}
	return nil
}

func validateURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be an absolute http(s) URL, got %q", field, raw)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
