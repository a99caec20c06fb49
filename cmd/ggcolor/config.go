package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	ggcolor "github.com/gogpu/gg-color"
)

// Output formats.
const (
	formatText = "text"
	formatHex  = "hex"
	formatRGB  = "rgb"
	formatRGBA = "rgba"
)

// Config holds the settings that may come from a TOML file.
// Command-line flags override every field.
type Config struct {
	Strict    bool   `toml:"strict"`
	Named     bool   `toml:"named"`
	Precision int    `toml:"precision"` // bits dropped per channel, 0 keeps all
	Compare   string `toml:"compare"`
	Format    string `toml:"format"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{Format: formatText}
}

// LoadConfig reads a TOML file on top of DefaultConfig.
// A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path is user supplied on purpose
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports settings the command cannot act on.
func (c Config) Validate() error {
	switch c.Format {
	case formatText, formatHex, formatRGB, formatRGBA:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if c.Precision < 0 || c.Precision > 7 {
		return fmt.Errorf("precision %d: %w", c.Precision, ggcolor.ErrInvalidPrecision)
	}
	return nil
}

// ParseOptions converts the settings into parser options.
func (c Config) ParseOptions() []ggcolor.ParseOption {
	var opts []ggcolor.ParseOption
	if c.Strict {
		opts = append(opts, ggcolor.WithStrict())
	}
	if c.Named {
		opts = append(opts, ggcolor.WithNamedColors())
	}
	return opts
}
