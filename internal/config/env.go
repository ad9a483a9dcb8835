package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Settings are process-level options read from the environment.
// They seed the CLI flag defaults; flags still win.
type Settings struct {
	DBPath      string        `env:"COLORJUMP_DB"`
	PrefsApp    string        `env:"COLORJUMP_PREFS_APP" envDefault:"colorjump"`
	ConfigPath  string        `env:"COLORJUMP_CONFIG"`
	Difficulty  string        `env:"COLORJUMP_DIFFICULTY" envDefault:"normal"`
	FPS         int           `env:"COLORJUMP_FPS" envDefault:"60"`
	Seed        int64         `env:"COLORJUMP_SEED" envDefault:"0"`
	LogFile     string        `env:"COLORJUMP_LOG"`
	SSHAddr     string        `env:"COLORJUMP_SSH_ADDR" envDefault:"0.0.0.0:2222"`
	HostKeyPath string        `env:"COLORJUMP_HOST_KEY" envDefault:".ssh/colorjump_ed25519"`
	IdleTimeout time.Duration `env:"COLORJUMP_IDLE_TIMEOUT" envDefault:"30m"`
}

// LoadSettings parses Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("config: parse env: %w", err)
	}
	if _, err := ParsePreset(s.Difficulty); err != nil {
		return Settings{}, fmt.Errorf("config: COLORJUMP_DIFFICULTY: %w", err)
	}
	if s.FPS < 1 || s.FPS > 240 {
		return Settings{}, fmt.Errorf("config: COLORJUMP_FPS must be in [1, 240], got %d", s.FPS)
	}
	return s, nil
}
