package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"
)

// DefaultSaveDelay is how long a pack waits after the last change before
// writing mmc-pack.json.
const DefaultSaveDelay = 5 * time.Second

// Settings represents ~/.mcpack/settings.yaml.
type Settings struct {
	SaveDelay time.Duration `yaml:"save_delay,omitempty"`
	MetaDir   string        `yaml:"meta_dir,omitempty"`
	LogLevel  string        `yaml:"log_level,omitempty"`
}

// Parse parses settings.yaml bytes. Missing fields keep their defaults.
func Parse(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parsing settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("parsing settings: %w", err)
	}
	return s, nil
}

// Validate checks values that YAML decoding cannot.
func (s Settings) Validate() error {
	if s.SaveDelay < 0 {
		return fmt.Errorf("save_delay must not be negative")
	}
	if _, err := parseLevel(s.LogLevel); err != nil {
		return err
	}
	return nil
}

// Marshal serializes settings to YAML bytes.
func Marshal(s Settings) ([]byte, error) {
	return yaml.Marshal(s)
}

// DefaultSettings returns settings with default values.
func DefaultSettings() Settings {
	return Settings{
		SaveDelay: DefaultSaveDelay,
		LogLevel:  "info",
	}
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (s Settings) SlogLevel() slog.Level {
	level, err := parseLevel(s.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(raw) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log_level %q", raw)
	}
}
