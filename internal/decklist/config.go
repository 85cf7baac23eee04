package decklist

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config carries the environment-derived paths the loaders need.
type Config struct {
	// CardDataPath points at the card database TSV shipped with the
	// LackeyCCG Redemption plugin.
	CardDataPath string `env:"REDSIM_CARD_DATA" envDefault:"carddata.txt"`

	// LogPath overrides the trial log location. Empty when the variable is
	// unset, so callers can tell an explicit override from their default.
	LogPath string `env:"REDSIM_LOG_FILE"`
}

// ConfigFromEnv parses the configuration from the process environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
