package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings are startup options read from the environment.
type Settings struct {
	Level       string `env:"TRIANGLEJAM_LEVEL"`
	Debug       bool   `env:"TRIANGLEJAM_DEBUG"`
	TuningFile  string `env:"TRIANGLEJAM_TUNING_FILE"`
	WatchTuning bool   `env:"TRIANGLEJAM_WATCH_TUNING"`
	AppName     string `env:"TRIANGLEJAM_APP_NAME" envDefault:"trianglejam"`
	LogMovement bool   `env:"TRIANGLEJAM_LOG_MOVEMENT"`
	DisableSave bool   `env:"TRIANGLEJAM_DISABLE_SAVE"`
}

// ParseEnv decodes environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadSettings reads Settings from the environment and applies them to the
// global configuration.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := ParseEnv(&s); err != nil {
		return s, err
	}
	s.Apply()
	return s, nil
}

// Apply copies the settings into the globals they override.
func (s Settings) Apply() {
	if s.Level != "" {
		C.StartLevel = s.Level
	}
	if s.Debug {
		Debug.ShowColliders = true
		Debug.ShowState = true
	}
	if s.LogMovement {
		Debug.LogMovement = true
	}
	if s.AppName != "" {
		Save.AppName = s.AppName
	}
	if s.DisableSave {
		Save.Enabled = false
	}
}
