package app

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/five82/marquee/internal/config"
	"github.com/five82/marquee/internal/logging"
	"github.com/five82/marquee/internal/omdb"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/state"
	"github.com/five82/marquee/internal/ui"
)

// Version is reported in the OMDb User-Agent.
var Version = "0.1.0"

// Options configure the marquee application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/marquee/prefs.toml
	LogLevel   string // overrides log_level from the config when set
}

// Run boots the marquee TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	uiOpts, closer, err := setup(ctx, opts)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	log := zerolog.Ctx(uiOpts.Context)
	log.Info().Str("theme", uiOpts.ThemeName).Str("layout", uiOpts.Layout).Msg("marquee starting")

	err = ui.Run(uiOpts)
	log.Info().Int("listed", uiOpts.List.Len()).Err(err).Msg("marquee stopped")
	return err
}

// setup loads configuration and preferences and builds everything the UI
// needs. The returned closer flushes the log file.
func setup(ctx context.Context, opts Options) (ui.Options, io.Closer, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return ui.Options{}, nil, fmt.Errorf("load config: %w", err)
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return ui.Options{}, nil, fmt.Errorf("invalid config: %w", err)
	}

	logger, closer := logging.New(logging.Options{
		Path:  cfg.LogFile,
		Level: cfg.LogLevel,
	})
	ctx = logger.WithContext(ctx)

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn().Err(err).Msg("load prefs, using defaults")
	}

	client, err := omdb.NewClient(omdb.Options{
		BaseURL:   cfg.APIURL,
		APIKey:    cfg.APIKey,
		Timeout:   cfg.RequestTimeout,
		UserAgent: "marquee/" + Version,
	})
	if err != nil {
		_ = closer.Close()
		return ui.Options{}, nil, fmt.Errorf("init omdb client: %w", err)
	}

	return ui.Options{
		Context:   ctx,
		Finder:    client,
		List:      &state.List{},
		Config:    &cfg,
		ThemeName: userPrefs.Theme,
		Layout:    userPrefs.Layout,
		PrefsPath: opts.PrefsPath,
	}, closer, nil
}
