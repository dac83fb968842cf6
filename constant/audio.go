package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond
)

// Lock Sound
const (
	LockSoundDuration = 40 * time.Millisecond
	LockSoundAttack   = 2 * time.Millisecond
	LockSoundRelease  = 30 * time.Millisecond
)

// Line Clear Sound, one note per cleared line
const (
	ClearNoteDuration = 90 * time.Millisecond
	ClearNoteAttack   = 5 * time.Millisecond
	ClearNoteRelease  = 60 * time.Millisecond
)

// Four-line Clear Sound
const (
	TetrisNoteDuration = 120 * time.Millisecond
	TetrisChordRelease = 400 * time.Millisecond
)

// Hold Sound
const (
	HoldSoundDuration = 120 * time.Millisecond
	HoldSoundAttack   = 60 * time.Millisecond
	HoldSoundRelease  = 60 * time.Millisecond
)

// Game Over Sound
const (
	GameOverNoteDuration = 250 * time.Millisecond
	GameOverNoteAttack   = 10 * time.Millisecond
	GameOverNoteRelease  = 200 * time.Millisecond
)
