package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/five82/marquee/internal/config"
	"github.com/five82/marquee/internal/prefs"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OMDB_API_KEY", "OMDB_API_URL",
		"MARQUEE_OMDB_API_KEY", "MARQUEE_OMDB_API_URL",
		"MARQUEE_PLACEHOLDER_URL", "MARQUEE_REQUEST_TIMEOUT",
		"MARQUEE_LOG_FILE", "MARQUEE_LOG_LEVEL",
	} {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("Unsetenv(%s): %v", key, err)
		}
	}
}

func TestRun_MissingAPIKeyFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	clearEnv(t)

	err := Run(context.Background(), Options{ConfigPath: filepath.Join(t.TempDir(), "none.toml")})
	if !errors.Is(err, config.ErrMissingAPIKey) {
		t.Fatalf("Run error = %v, want ErrMissingAPIKey", err)
	}
}

func TestSetup_WiresDependencies(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearEnv(t)

	dir := t.TempDir()
	logFile := filepath.Join(dir, "logs", "marquee.log")
	configPath := filepath.Join(dir, "config.toml")
	body := "api_key = \"k\"\nlog_file = \"" + filepath.ToSlash(logFile) + "\"\nlog_level = \"warn\"\n"
	if err := os.WriteFile(configPath, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	prefsPath := filepath.Join(dir, "prefs.toml")
	if err := prefs.Save(prefsPath, prefs.Prefs{Theme: "Slate", Layout: prefs.LayoutStacked}); err != nil {
		t.Fatalf("prefs.Save: %v", err)
	}

	opts, closer, err := setup(context.Background(), Options{
		ConfigPath: configPath,
		PrefsPath:  prefsPath,
		LogLevel:   "debug",
	})
	if err != nil {
		t.Fatalf("setup returned error: %v", err)
	}
	t.Cleanup(func() { _ = closer.Close() })

	if opts.Finder == nil || opts.List == nil || opts.Config == nil {
		t.Fatalf("setup left dependencies nil: %#v", opts)
	}
	if opts.ThemeName != "Slate" || opts.Layout != prefs.LayoutStacked {
		t.Fatalf("prefs = %s/%s, want Slate/stacked", opts.ThemeName, opts.Layout)
	}
	if opts.Config.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want flag override debug", opts.Config.LogLevel)
	}
	if got := zerolog.Ctx(opts.Context).GetLevel(); got != zerolog.DebugLevel {
		t.Fatalf("context logger level = %v, want debug", got)
	}

	zerolog.Ctx(opts.Context).Info().Msg("hello")
	if _, err := os.Stat(logFile); err != nil {
		t.Fatalf("log file not created: %v", err)
	}
}
