// Package config loads the CLI configuration from an optional YAML file with
// environment-variable overrides, layered under command-line flags.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds settings for all demo subcommands
type Config struct {
	Render    RenderConfig    `mapstructure:"render"`
	Grayscale GrayscaleConfig `mapstructure:"grayscale"`
	Pi        PiConfig        `mapstructure:"pi"`
}

// RenderConfig contains scene renderer settings
type RenderConfig struct {
	Width   int    `mapstructure:"width"`
	Height  int    `mapstructure:"height"`
	Workers int    `mapstructure:"workers"` // 0 means one worker per CPU
	Scene   string `mapstructure:"scene"`   // "single" or "triad"
	Format  string `mapstructure:"format"`  // ppm, png, bmp, tiff
	Clamp   bool   `mapstructure:"clamp"`   // clamp channels before byte mapping
}

// GrayscaleConfig contains grayscale converter settings
type GrayscaleConfig struct {
	Workers int    `mapstructure:"workers"`
	Format  string `mapstructure:"format"`
}

// PiConfig contains Monte Carlo π estimator settings
type PiConfig struct {
	Samples int64 `mapstructure:"samples"`
	Batches int   `mapstructure:"batches"`
	Lanes   int   `mapstructure:"lanes"`
	Seed    int64 `mapstructure:"seed"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			Width:   800,
			Height:  400,
			Workers: 0,
			Scene:   "single",
			Format:  "ppm",
			Clamp:   false,
		},
		Grayscale: GrayscaleConfig{
			Workers: 0,
			Format:  "png",
		},
		Pi: PiConfig{
			Samples: 10_000_000,
			Batches: 1,
			Lanes:   0,
			Seed:    42,
		},
	}
}

// Load reads configuration from the given file, or from raydemos.yaml in the
// working directory when path is empty. A missing config file is not an
// error; defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("raydemos")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("RAYDEMOS")
	v.AutomaticEnv()

	cfg := DefaultConfig()
	setDefaults(v, cfg)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// setDefaults registers defaults so partial config files merge cleanly
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("render.width", cfg.Render.Width)
	v.SetDefault("render.height", cfg.Render.Height)
	v.SetDefault("render.workers", cfg.Render.Workers)
	v.SetDefault("render.scene", cfg.Render.Scene)
	v.SetDefault("render.format", cfg.Render.Format)
	v.SetDefault("render.clamp", cfg.Render.Clamp)
	v.SetDefault("grayscale.workers", cfg.Grayscale.Workers)
	v.SetDefault("grayscale.format", cfg.Grayscale.Format)
	v.SetDefault("pi.samples", cfg.Pi.Samples)
	v.SetDefault("pi.batches", cfg.Pi.Batches)
	v.SetDefault("pi.lanes", cfg.Pi.Lanes)
	v.SetDefault("pi.seed", cfg.Pi.Seed)
}
