package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/config"
	"github.com/five82/marquee/internal/logging"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/state"
	"github.com/five82/marquee/internal/ui"
)

// Options configure the marquee application.
type Options struct {
	ConfigPath string    // empty uses ~/.config/marquee/config.toml
	PrefsPath  string    // empty uses ~/.config/marquee/prefs.toml
	LogLevel   string    // overrides the configured level when set
	Version    string    // reported in the User-Agent header
	Stdout     io.Writer // headless output; nil uses os.Stdout
	Stderr     io.Writer // headless logs; nil uses os.Stderr
}

func (o Options) stdout() io.Writer {
	if o.Stdout != nil {
		return o.Stdout
	}
	return os.Stdout
}

func (o Options) stderr() io.Writer {
	if o.Stderr != nil {
		return o.Stderr
	}
	return os.Stderr
}

// Run boots the marquee TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, closer, err := logging.NewFile(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	client, err := newClient(cfg, opts.Version, logger)
	if err != nil {
		return err
	}

	userPrefs := prefs.Load(opts.PrefsPath)
	coord := state.NewCoordinator(client, logger)

	logger.Info().
		Str("api_url", cfg.APIURL).
		Str("theme", userPrefs.Theme).
		Msg("starting marquee")

	err = ui.Run(ui.Options{
		Context:      ctx,
		Coordinator:  coord,
		ImageBaseURL: cfg.ImageURL,
		ThemeName:    userPrefs.Theme,
		PrefsPath:    opts.PrefsPath,
		Logger:       logger,
	})
	if err != nil {
		logger.Error().Err(err).Msg("ui exited with error")
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info().Msg("marquee stopped")
	return nil
}

// loadConfig reads the config file and applies the --log-level override.
func loadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err = cfg.WithLogLevel(opts.LogLevel)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func newClient(cfg config.Config, version string, logger zerolog.Logger) (*catalog.Client, error) {
	client, err := catalog.NewClient(catalog.ClientConfig{
		BaseURL:   cfg.APIURL,
		APIKey:    cfg.APIKey,
		UserAgent: userAgent(version),
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("init catalog client: %w", err)
	}
	return client, nil
}

func userAgent(version string) string {
	if version == "" {
		version = "dev"
	}
	return "marquee/" + version
}
