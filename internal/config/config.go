package config

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"strings"

	"github.com/caarlos0/env/v11"
)

// MaxZoom bounds the zoom factor. At 4 the scaled source is already four
// times the canvas edge and everything past the canvas is clipped.
const MaxZoom = 4.0

// Config holds the inputs of one generation run.
type Config struct {
	Source string  `env:"MIPMAP_SOURCE" envDefault:"icon.png"`
	ResDir string  `env:"MIPMAP_RES_DIR" envDefault:"app/src/main/res"`
	Zoom   float64 `env:"MIPMAP_ZOOM" envDefault:"0.75"`
}

// ParseConfig loads defaults from the environment and then applies flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Source, "source", cfg.Source, "source image path")
	fs.StringVar(&cfg.ResDir, "res", cfg.ResDir, "Android res directory to write mipmap folders into")
	fs.Float64Var(&cfg.Zoom, "zoom", cfg.Zoom, "fraction of the canvas edge occupied by the source")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the config can drive a run.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Source) == "" {
		return errors.New("source path is required")
	}
	if strings.TrimSpace(c.ResDir) == "" {
		return errors.New("res directory is required")
	}
	if math.IsNaN(c.Zoom) || math.IsInf(c.Zoom, 0) || c.Zoom <= 0 || c.Zoom > MaxZoom {
		return fmt.Errorf("zoom must be in (0, %v], got %v", MaxZoom, c.Zoom)
	}
	return nil
}
