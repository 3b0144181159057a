package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything marquee needs to talk to OMDb and to log.
type Config struct {
	APIKey         string
	APIURL         string
	PlaceholderURL string
	RequestTimeout time.Duration
	LogFile        string
	LogLevel       string
}

const (
	defaultConfigPath     = "~/.config/marquee/config.toml"
	defaultLogFile        = "~/.local/state/marquee/marquee.log"
	defaultAPIURL         = "https://www.omdbapi.com/"
	defaultPlaceholderURL = "https://via.placeholder.com/360x270.png?text=no%20preview"
	defaultRequestTimeout = 5 * time.Second
	defaultLogLevel       = "info"

	envPrefix = "marquee"
)

// ErrMissingAPIKey is returned by Validate when no OMDb key was found in the
// config file or the environment.
var ErrMissingAPIKey = errors.New("omdb api key not configured (set api_key or OMDB_API_KEY)")

// envOverrides are read after the file. OMDB_API_KEY and OMDB_API_URL are also
// honoured without the MARQUEE_ prefix.
type envOverrides struct {
	APIKey         string        `envconfig:"OMDB_API_KEY"`
	APIURL         string        `envconfig:"OMDB_API_URL"`
	PlaceholderURL string        `split_words:"true"`
	RequestTimeout time.Duration `split_words:"true"`
	LogFile        string        `split_words:"true"`
	LogLevel       string        `split_words:"true"`
}

// Load parses the config file at path (the default location when empty),
// falling back to defaults when it is missing, then applies .env and
// environment overrides.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	if err := readFile(resolved, &cfg); err != nil {
		return Config{}, err
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	cfg.LogFile = mustExpand(cfg.LogFile)
	return cfg, nil
}

// Validate reports configuration that would make every lookup fail.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return ErrMissingAPIKey
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must not be negative, got %s", c.RequestTimeout)
	}
	return nil
}

// DefaultPath returns the config file location used when none is given.
func DefaultPath() string {
	return defaultConfigPath
}

func defaults() Config {
	return Config{
		APIURL:         defaultAPIURL,
		PlaceholderURL: defaultPlaceholderURL,
		RequestTimeout: defaultRequestTimeout,
		LogFile:        defaultLogFile,
		LogLevel:       defaultLogLevel,
	}
}

func readFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIKey         string `toml:"api_key"`
		APIURL         string `toml:"api_url"`
		PlaceholderURL string `toml:"placeholder_url"`
		RequestTimeout string `toml:"request_timeout"`
		LogFile        string `toml:"log_file"`
		LogLevel       string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	setIfPresent(&cfg.APIKey, raw.APIKey)
	setIfPresent(&cfg.APIURL, raw.APIURL)
	setIfPresent(&cfg.PlaceholderURL, raw.PlaceholderURL)
	setIfPresent(&cfg.LogFile, raw.LogFile)
	setIfPresent(&cfg.LogLevel, raw.LogLevel)

	if timeout := strings.TrimSpace(raw.RequestTimeout); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("parse config: request_timeout: %w", err)
		}
		cfg.RequestTimeout = d
	}
	return nil
}

func applyEnv(cfg *Config) error {
	// A missing .env is the common case.
	_ = godotenv.Load()

	var env envOverrides
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}

	setIfPresent(&cfg.APIKey, env.APIKey)
	setIfPresent(&cfg.APIURL, env.APIURL)
	setIfPresent(&cfg.PlaceholderURL, env.PlaceholderURL)
	setIfPresent(&cfg.LogFile, env.LogFile)
	setIfPresent(&cfg.LogLevel, env.LogLevel)
	if env.RequestTimeout > 0 {
		cfg.RequestTimeout = env.RequestTimeout
	}
	return nil
}

func setIfPresent(dst *string, value string) {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		*dst = trimmed
	}
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
