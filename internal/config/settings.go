package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

const DefaultRuleWidth = 80

// Settings are the process-wide options read from the environment.
type Settings struct {
	LogLevel  string `env:"ALLOYGRID_LOG_LEVEL"  envDefault:"warn"`
	Theme     string `env:"ALLOYGRID_THEME"      envDefault:"plain"`
	RuleWidth int    `env:"ALLOYGRID_RULE_WIDTH" envDefault:"80"`
}

// LoadSettings reads Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if s.RuleWidth <= 0 {
		s.RuleWidth = DefaultRuleWidth
	}
	return s, nil
}

// Level parses LogLevel as a slog level name.
func (s Settings) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return slog.LevelWarn, fmt.Errorf("ALLOYGRID_LOG_LEVEL: %w", err)
	}
	return lvl, nil
}
