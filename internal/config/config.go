package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Games    int     `yaml:"games" env:"GAMES" env-default:"0"`
	Engine   Engine  `yaml:"engine"`
	Console  Console `yaml:"console"`
}

type Engine struct {
	Algorithm string `yaml:"algorithm" env:"ENGINE_ALGORITHM" env-default:"alphabeta"`
	Autoplay  bool   `yaml:"autoplay" env:"ENGINE_AUTOPLAY" env-default:"false"`
}

// Console has no env-default on purpose: cleanenv would overwrite an explicit false from the file.
type Console struct {
	Color bool `yaml:"color" env:"CONSOLE_COLOR"`
	Hint  bool `yaml:"hint" env:"CONSOLE_HINT"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the config file and applies environment overrides.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}
