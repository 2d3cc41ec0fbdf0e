package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/konane/internal/konane"
)

const RandomPlayer = "random"

var ErrUnknownLogLevel = errors.New("unknown log level")

type Config struct {
	LogLevel    string `yaml:"log-level" env:"KONANE_LOG_LEVEL" env-default:"info"`
	LogFormat   string `yaml:"log-format" env:"KONANE_LOG_FORMAT" env-default:"text"`
	FirstPlayer string `yaml:"first-player" env:"KONANE_FIRST" env-default:"random"`
	AutoOpening bool   `yaml:"auto-opening" env:"KONANE_AUTO_OPENING"`
}

// Load - reads the yaml file at path and the environment on top of it.
// A missing file is not an error; the environment and defaults are used instead.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err = cleanenv.ReadConfig(path, config); err != nil {
				return nil, fmt.Errorf("unable to load config file: %w", err)
			}

			return config, nil
		}
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations, panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// FirstTurn - resolves first-player; coin decides "random" and returning true means white.
func (that *Config) FirstTurn(coin func() bool) (konane.Turn, error) {
	if strings.EqualFold(strings.TrimSpace(that.FirstPlayer), RandomPlayer) {
		if coin() {
			return konane.WhiteToMove, nil
		}
		return konane.BlackToMove, nil
	}

	turn, err := konane.ParseTurn(that.FirstPlayer)
	if err != nil {
		return turn, fmt.Errorf("first-player: %w", err)
	}

	return turn, nil
}

func (that *Config) Level() (slog.Level, error) {
	switch strings.ToLower(that.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLogLevel, that.LogLevel)
	}
}
