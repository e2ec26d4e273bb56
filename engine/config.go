package engine

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

var ErrZeroTimeStretch = errors.New("time stretch must be nonzero")

// ApplicationConfig is everything the process decides before the engine
// boots. Values come from skirmish.toml when present, overridden by flags.
type ApplicationConfig struct {
	Name   string `toml:"name"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`

	Fullscreen    bool `toml:"fullscreen"`
	Resizable     bool `toml:"resizable"`
	Decorations   bool `toml:"decorations"`
	Visible       bool `toml:"visible"`
	TrackDamage   bool `toml:"track_damage"`
	TrackKeyboard bool `toml:"track_keyboard"`
	TrackMouse    bool `toml:"track_mouse"`

	AssetPath string `toml:"asset_path"`

	// LogLevel is the minimum level the process logs at, by name
	// ("debug", "info", "warn", "error", "fatal").
	LogLevel string `toml:"log_level"`

	// TimeStretch is the configured slowdown; the engine multiplies every
	// measured delta by its reciprocal. Must be nonzero.
	TimeStretch float64 `toml:"time_stretch"`

	// Port for the game's net session. Parsed here, consumed by the
	// simulation, never by the loop.
	Port uint16 `toml:"port"`
}

func DefaultConfig() *ApplicationConfig {
	return &ApplicationConfig{
		Name:          "Skirmish",
		Width:         1280,
		Height:        720,
		Resizable:     true,
		Decorations:   true,
		Visible:       true,
		TrackDamage:   true,
		TrackKeyboard: true,
		TrackMouse:    true,
		AssetPath:     "assets",
		LogLevel:      "debug",
		TimeStretch:   1.0,
		Port:          7777,
	}
}

// LoadConfig overlays skirmish.toml (if it exists) on top of the defaults.
// A missing file is not an error; a malformed one is.
func LoadConfig(path string) (*ApplicationConfig, error) {
	cfg := DefaultConfig()
	if err := cfg.LoadFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays the TOML file at path onto cfg, so values already set on
// cfg survive unless the file names them. A missing file leaves cfg
// untouched; a malformed one is an error.
func (cfg *ApplicationConfig) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func (cfg *ApplicationConfig) validate() error {
	if cfg.TimeStretch == 0 {
		return ErrZeroTimeStretch
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("window size %dx%d out of range", cfg.Width, cfg.Height)
	}
	return nil
}
