package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// EnvPath names the environment variable holding the default config path.
const EnvPath = "POKETYPECALC_CONFIG"

type Config struct {
	Chart struct {
		Path string `toml:"path"`
	} `toml:"chart"`
	DB struct {
		Path       string `toml:"path"`
		Generation int    `toml:"generation" validate:"gte=0"`
	} `toml:"database"`
	Log struct {
		Level string `toml:"level" validate:"oneof=trace debug info warn error disabled"`
	} `toml:"log"`
	Search struct {
		Top int `toml:"top" validate:"gte=0"`
	} `toml:"search"`
}

var ErrInvalidConfig = errors.New("invalid configuration")

func Default() *Config {
	var cfg Config
	cfg.Log.Level = "info"
	return &cfg
}

// Read loads path on top of the defaults. An empty path falls back to EnvPath,
// and to the defaults alone when that is unset too.
func Read(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvPath)
	}
	if path != "" {
		_, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
	}

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

var validate = validator.New()

func (cfg *Config) Validate() error {
	err := validate.Struct(cfg)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if cfg.Chart.Path != "" && cfg.DB.Path != "" {
		return fmt.Errorf("%w: chart file and database are mutually exclusive", ErrInvalidConfig)
	}

	return nil
}
