package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/term-tetris/constant"
	"github.com/lixenwraith/term-tetris/engine"
)

// SoundManager manages all game audio
// Effects are mixed into one streamer owned by the speaker; mute pauses it
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	output      *beep.Ctrl
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager; cfg nil uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	mixer := &beep.Mixer{}
	return &SoundManager{
		cfg:    cfg,
		mixer:  mixer,
		output: &beep.Ctrl{Streamer: mixer},
	}
}

// Initialize opens the audio device
// Failure is non-fatal for the game; the manager stays silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constant.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	sm.output.Paused = sm.muted
	speaker.Play(sm.output)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.output.Paused = true
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// IsInitialized reports whether the device is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// SetMuted silences output and drops queued effects
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.output.Paused = muted
	if muted {
		sm.mixer.Clear()
	}
	speaker.Unlock()
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	muted := !sm.muted
	sm.mu.Unlock()

	sm.SetMuted(muted)
	return muted
}

func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// SetConfig replaces volumes for effects created from now on
// Disabling takes effect on the next Play; enabling at runtime requires a later Initialize
func (sm *SoundManager) SetConfig(cfg *AudioConfig) {
	if cfg == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.cfg = cfg
}

// Config returns the active configuration
func (sm *SoundManager) Config() *AudioConfig {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.cfg
}

// Play queues one effect
func (sm *SoundManager) Play(soundType SoundType, lines int) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.cfg.Enabled {
		return ErrDisabled
	}
	if !sm.initialized {
		return ErrNotInitialized
	}
	if sm.muted {
		return nil
	}

	streamer := GetSoundEffect(soundType, lines, sm.cfg)
	if streamer == nil {
		return fmt.Errorf("play %v: unknown sound", soundType)
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return nil
}

func (sm *SoundManager) PlayLock()           { _ = sm.Play(SoundLock, 0) }
func (sm *SoundManager) PlayClear(lines int) { _ = sm.Play(SoundClear, lines) }
func (sm *SoundManager) PlayTetris()         { _ = sm.Play(SoundTetris, constant.MaxLinesPerLock) }
func (sm *SoundManager) PlayHold()           { _ = sm.Play(SoundHold, 0) }
func (sm *SoundManager) PlayGameOver()       { _ = sm.Play(SoundGameOver, 0) }

// HandleEvents plays the effects for a drained engine event batch
func (sm *SoundManager) HandleEvents(events []engine.Event) {
	for _, cue := range CuesForEvents(events) {
		if err := sm.Play(cue.Sound, cue.Lines); err != nil {
			return
		}
	}
}
