// Package config loads elfmap settings from a YAML file.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"loov.dev/elfmap/internal/palette"
)

// Output formats.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

// Config contains settings shared by the command line and the config file.
type Config struct {
	// PaletteSize is the number of colors sampled from the spectrum.
	PaletteSize int `yaml:"palette_size"`
	// Spectrum is either "rainbow" or "hsl".
	Spectrum string `yaml:"spectrum"`
	// Format of written images.
	Format string `yaml:"format"`
	// Scale is the integer upscaling factor for written images.
	Scale int `yaml:"scale"`
	// Workers limits how many files are processed concurrently.
	Workers int `yaml:"workers"`

	// Selectors and Strip apply to every file.
	Selectors []string `yaml:"selectors"`
	Strip     bool     `yaml:"strip"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		PaletteSize: palette.DefaultSize,
		Spectrum:    "rainbow",
		Format:      FormatPNG,
		Scale:       1,
		Workers:     runtime.NumCPU(),
	}
}

// Load reads the file at path over the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %q", path)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults. Unknown fields are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "decode")
	}
	return cfg, cfg.Validate()
}

// Validate checks that the settings are usable.
func (cfg Config) Validate() error {
	if cfg.PaletteSize < 1 {
		return fmt.Errorf("palette size must be positive, got %d", cfg.PaletteSize)
	}
	if _, err := palette.Spectrum(cfg.Spectrum); err != nil {
		return err
	}
	switch cfg.Format {
	case FormatPNG, FormatSVG:
	default:
		return fmt.Errorf("unknown format %q", cfg.Format)
	}
	if cfg.Scale < 1 {
		return fmt.Errorf("scale must be positive, got %d", cfg.Scale)
	}
	if cfg.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", cfg.Workers)
	}
	return nil
}
