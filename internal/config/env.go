package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envConfig holds the environment overrides. Set values win over the file.
type envConfig struct {
	ConfigPath string `env:"LLM_BATTLE_CONFIG"`
	Database   string `env:"LLM_BATTLE_DB"`
	Address    string `env:"LLM_BATTLE_ADDR"`
	GinMode    string `env:"GIN_MODE"`
}

func (e envConfig) apply(cfg *LoadedConfig) {
	if e.Database != "" {
		cfg.DatabaseDSN = e.Database
	}
	if e.Address != "" {
		cfg.ServerAddress = e.Address
	}
	if e.GinMode != "" {
		cfg.GinMode = e.GinMode
	}
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
