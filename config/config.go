// Package config loads the TOML settings file and resolves it into the
// key table, theme and audio mix used by the game shell.
//
// Rule constants (board size, scoring, gravity) are not configurable.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/lixenwraith/term-tetris/audio"
	"github.com/lixenwraith/term-tetris/constant"
	"github.com/lixenwraith/term-tetris/input"
	"github.com/lixenwraith/term-tetris/render"
	"github.com/pelletier/go-toml/v2"
)

var (
	ErrUnknownTheme = errors.New("unknown theme")
	ErrUnknownSound = errors.New("unknown sound")
	ErrVolumeRange  = errors.New("volume out of range [0, 1]")
)

// Config mirrors the TOML file layout
type Config struct {
	Display     DisplayConfig     `toml:"display"`
	Audio       AudioConfig       `toml:"audio"`
	Keys        map[string]string `toml:"keys,omitempty"`
	SpecialKeys map[string]string `toml:"special_keys,omitempty"`
}

type DisplayConfig struct {
	Theme string `toml:"theme"`
}

// AudioConfig volumes are linear gains; Volumes is keyed by effect name
type AudioConfig struct {
	Enabled      bool               `toml:"enabled"`
	MasterVolume float64            `toml:"master_volume"`
	Volumes      map[string]float64 `toml:"volumes,omitempty"`
}

// Default returns the built-in settings
func Default() *Config {
	def := audio.DefaultAudioConfig()
	return &Config{
		Display: DisplayConfig{Theme: constant.ThemeClassic},
		Audio: AudioConfig{
			Enabled:      def.Enabled,
			MasterVolume: def.MasterVolume,
		},
	}
}

// Load reads and validates path; a missing file yields defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config read: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML over the defaults and validates the result
// Unknown sections or fields are rejected
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("parse at %d:%d: %w", row, col, err)
		}
		return nil, fmt.Errorf("parse: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate resolves every section once and reports the first failure
func (c *Config) Validate() error {
	if _, err := c.Theme(); err != nil {
		return err
	}
	if _, err := c.AudioSettings(); err != nil {
		return err
	}
	if _, err := c.KeyTable(); err != nil {
		return err
	}
	return nil
}

// Theme resolves the renderer palette
func (c *Config) Theme() (render.Theme, error) {
	theme, ok := render.ThemeByName(c.Display.Theme)
	if !ok {
		return render.Theme{}, fmt.Errorf("[display] %w: %q", ErrUnknownTheme, c.Display.Theme)
	}
	return theme, nil
}

// KeyTable applies [keys] and [special_keys] on top of the default bindings
func (c *Config) KeyTable() (*input.KeyTable, error) {
	return input.BuildKeyTable(input.DefaultKeyTable(), c.Keys, c.SpecialKeys)
}

// AudioSettings resolves the audio section into a mixer config
func (c *Config) AudioSettings() (*audio.AudioConfig, error) {
	out := audio.DefaultAudioConfig()
	out.Enabled = c.Audio.Enabled

	if err := checkVolume("master_volume", c.Audio.MasterVolume); err != nil {
		return nil, err
	}
	out.MasterVolume = c.Audio.MasterVolume

	for name, vol := range c.Audio.Volumes {
		s, ok := audio.SoundByName(name)
		if !ok {
			return nil, fmt.Errorf("[audio.volumes] %w: %q", ErrUnknownSound, name)
		}
		if err := checkVolume(name, vol); err != nil {
			return nil, err
		}
		out.EffectVolumes[s] = vol
	}
	return out, nil
}

func checkVolume(name string, v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("[audio] %s = %v: %w", name, v, ErrVolumeRange)
	}
	return nil
}

// Write saves c as TOML, replacing any existing file
func Write(path string, c *Config) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config write: %w", err)
	}
	return nil
}
