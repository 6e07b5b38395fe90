// Package config loads segstat settings from defaults, an optional YAML
// file, .env, environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	txt "github.com/revelaction/segstat/file"
	"github.com/revelaction/segstat/plot"
	"github.com/revelaction/segstat/render"
)

const (
	// DefaultFile is read when present and no file is given.
	DefaultFile = "segstat.yaml"

	EnvPrefix = "SEGSTAT_"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Input     string `koanf:"input"`
	Title     string `koanf:"title"`
	Format    string `koanf:"format"`
	Color     bool   `koanf:"color"`
	Charts    bool   `koanf:"charts"`
	OutDir    string `koanf:"out_dir"`
	TopN      int    `koanf:"top_n"`
	Bins      int    `koanf:"bins"`
	Progress  bool   `koanf:"progress"`
	LogLevel  string `koanf:"log_level"`
	LogPretty bool   `koanf:"log_pretty"`
}

// Defaults returns the default settings keyed by config key.
func Defaults() map[string]any {
	return map[string]any{
		"input":      txt.DefaultPath,
		"title":      "Kindling",
		"format":     render.Defaultformat,
		"color":      false,
		"charts":     true,
		"out_dir":    ".",
		"top_n":      plot.DefaultTopN,
		"bins":       plot.DefaultBins,
		"progress":   false,
		"log_level":  "info",
		"log_pretty": true,
	}
}

// Load reads the configuration. Precedence (highest to lowest): flags >
// env vars > .env > config file > defaults. cfgFile may be empty, then
// DefaultFile is used if it exists. flags holds only explicitly set flags,
// keyed by config key.
func Load(cfgFile string, flags map[string]any) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if cfgFile == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			cfgFile = DefaultFile
		}
	}

	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// .env does not override variables already set in the environment
	_ = godotenv.Load()

	// SEGSTAT_OUT_DIR -> out_dir
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if len(flags) > 0 {
		if err := k.Load(confmap.Provider(flags, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: input path is empty", ErrInvalid)
	}

	if !slices.Contains(render.SupportedFormats(), c.Format) {
		return fmt.Errorf("%w: format %q, allowed values are %s", ErrInvalid, c.Format, strings.Join(render.SupportedFormats(), ", "))
	}

	if c.TopN <= 0 {
		return fmt.Errorf("%w: top_n must be positive, got %d", ErrInvalid, c.TopN)
	}

	if c.Bins <= 0 {
		return fmt.Errorf("%w: bins must be positive, got %d", ErrInvalid, c.Bins)
	}

	return nil
}
