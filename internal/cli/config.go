package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// Precision names the numeric format a row is ranked in.
type Precision string

const (
	FullPrecision Precision = "float32"
	HalfPrecision Precision = "float16"
)

// Format names an output format of the compose command.
type Format string

const (
	TextFormat Format = "text"
	JSONFormat Format = "json"
)

// Config holds the compose defaults read from config.toml.
//
// Example:
//
//	top = 5
//	bottom = 5
//	abs = true
//	precision = "float32"
//	format = "json"
type Config struct {
	Top       int       `toml:"top"`
	Bottom    int       `toml:"bottom"`
	Abs       bool      `toml:"abs"`
	Precision Precision `toml:"precision"`
	Format    Format    `toml:"format"`
}

// DefaultConfig returns the configuration used when no config file exists:
// every contribution, signed, printed as text.
func DefaultConfig() Config {
	return Config{
		Top:       -1,
		Bottom:    0,
		Precision: FullPrecision,
		Format:    TextFormat,
	}
}

// loadConfig reads path on top of DefaultConfig. A missing file is not an
// error unless required is set.
func loadConfig(path string, required bool) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Precision {
	case FullPrecision, HalfPrecision:
	default:
		return fmt.Errorf("unsupported precision: %s", c.Precision)
	}
	switch c.Format {
	case TextFormat, JSONFormat:
	default:
		return fmt.Errorf("unsupported format: %s", c.Format)
	}
	return nil
}
