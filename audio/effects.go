package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/term-tetris/constant"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

// Note frequencies in Hz
const (
	noteA3 = 220.00
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
	noteC6 = 1046.50
	noteE4 = 329.63
	noteC4 = 261.63
	noteA2 = 110.00
)

// clearScale is the arpeggio played for a line clear, one note per line
var clearScale = [constant.MaxLinesPerLock]float64{noteC5, noteE5, noteG5, noteC6}

// gameOverScale descends
var gameOverScale = [...]float64{noteE4, noteC4, noteA3, noteA2}

// oscillator generates raw audio waves for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 1.0 - 4.0*math.Abs(o.phase-0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s over duration; sustain fills whatever attack and release leave
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

// gain returns the envelope level at the current position
func (e *envelope) gain() float64 {
	vol := 1.0
	if e.attackSamples > 0 && e.position < e.attackSamples {
		vol = float64(e.position) / float64(e.attackSamples)
	}
	if e.releaseSamples > 0 {
		if remaining := e.totalSamples - e.position; remaining < e.releaseSamples {
			vol = math.Min(vol, math.Max(0, float64(remaining)/float64(e.releaseSamples)))
		}
	}
	return vol
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := e.gain()
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so 0 volume is made silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is a single enveloped oscillator
func tone(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}

// Sound effect generators

// CreateLockSound generates a short low click when a piece settles
func CreateLockSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	body := tone(noteA2, WaveSquare, constant.LockSoundDuration, constant.LockSoundAttack, constant.LockSoundRelease, rate)
	tick := tone(0, WaveNoise, constant.LockSoundDuration, 0, constant.LockSoundRelease, rate)

	mixed := beep.Mix(newVolume(body, 0.6), newVolume(tick, 0.2))
	return newVolume(mixed, cfg.Volume(SoundLock))
}

// CreateClearSound generates a rising arpeggio with one note per cleared line
func CreateClearSound(cfg *AudioConfig, lines int) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	lines = max(1, min(lines, len(clearScale)))

	notes := make([]beep.Streamer, lines)
	for i := range notes {
		notes[i] = tone(clearScale[i], WaveTriangle, constant.ClearNoteDuration, constant.ClearNoteAttack, constant.ClearNoteRelease, rate)
	}
	return newVolume(beep.Seq(notes...), cfg.Volume(SoundClear))
}

// CreateTetrisSound generates the full arpeggio resolved into a sustained chord
func CreateTetrisSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	run := make([]beep.Streamer, len(clearScale))
	for i, f := range clearScale {
		run[i] = tone(f, WaveSquare, constant.TetrisNoteDuration, constant.ClearNoteAttack, constant.ClearNoteRelease, rate)
	}

	chordNotes := make([]beep.Streamer, 0, 3)
	for _, f := range []float64{noteC5, noteE5, noteG5} {
		chordNotes = append(chordNotes, newVolume(
			tone(f, WaveSine, constant.TetrisChordRelease, constant.ClearNoteAttack, constant.TetrisChordRelease, rate), 0.33))
	}

	sequence := beep.Seq(newVolume(beep.Seq(run...), 0.5), beep.Mix(chordNotes...))
	return newVolume(sequence, cfg.Volume(SoundTetris))
}

// CreateHoldSound generates a soft noise swell
func CreateHoldSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	shaped := tone(0, WaveNoise, constant.HoldSoundDuration, constant.HoldSoundAttack, constant.HoldSoundRelease, rate)
	return newVolume(shaped, cfg.Volume(SoundHold))
}

// CreateGameOverSound generates a slow descending line
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := make([]beep.Streamer, len(gameOverScale))
	for i, f := range gameOverScale {
		notes[i] = tone(f, WaveTriangle, constant.GameOverNoteDuration, constant.GameOverNoteAttack, constant.GameOverNoteRelease, rate)
	}
	return newVolume(beep.Seq(notes...), cfg.Volume(SoundGameOver))
}

// GetSoundEffect returns the streamer for a sound type; lines only applies to SoundClear
func GetSoundEffect(soundType SoundType, lines int, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundLock:
		return CreateLockSound(cfg)
	case SoundClear:
		return CreateClearSound(cfg, lines)
	case SoundTetris:
		return CreateTetrisSound(cfg)
	case SoundHold:
		return CreateHoldSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
