package audio

import (
	"errors"

	"github.com/lixenwraith/term-tetris/constant"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundLock     SoundType = iota // Piece settles
	SoundClear                     // One to three lines cleared
	SoundTetris                    // Four lines cleared
	SoundHold                      // Piece moved to the hold slot
	SoundGameOver                  // Spawn blocked
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundLock:     "lock",
	SoundClear:    "clear",
	SoundTetris:   "tetris",
	SoundHold:     "hold",
	SoundGameOver: "game_over",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// SoundByName resolves a config effect name
func SoundByName(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

// AudioConfig holds volumes and device settings
// Volumes are linear gains in [0, 1]
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes [soundTypeCount]float64
	SampleRate    int
}

// DefaultAudioConfig returns the built-in mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: [soundTypeCount]float64{
			SoundLock:     0.4,
			SoundClear:    0.6,
			SoundTetris:   0.7,
			SoundHold:     0.3,
			SoundGameOver: 0.6,
		},
		SampleRate: constant.AudioSampleRate,
	}
}

// Volume returns the effective gain of an effect
func (c *AudioConfig) Volume(s SoundType) float64 {
	if s < 0 || s >= soundTypeCount {
		return 0
	}
	return c.EffectVolumes[s] * c.MasterVolume
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrDisabled       = errors.New("audio disabled by config")
)
