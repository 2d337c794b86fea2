package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	PathEnv     = "TICTACTOE_CONFIG"
	DefaultPath = "./config.yml"
)

type Config struct {
	LogLevel    string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`
	LogFile     string `yaml:"log-file" env:"TICTACTOE_LOG_FILE"`
	NoColor     bool   `yaml:"no-color" env:"TICTACTOE_NO_COLOR"`
	NoClear     bool   `yaml:"no-clear" env:"TICTACTOE_NO_CLEAR"`
	HistoryFile string `yaml:"history-file" env:"TICTACTOE_HISTORY_FILE"`
}

// Path returns the config file location, TICTACTOE_CONFIG or ./config.yml.
func Path() string {
	if path := os.Getenv(PathEnv); path != "" {
		return path
	}

	return DefaultPath
}

// Load reads the yml file at path when it exists, otherwise only the environment.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from env: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if err = validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations, panics on failure.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}
