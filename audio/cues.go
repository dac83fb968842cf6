package audio

import (
	"github.com/lixenwraith/term-tetris/constant"
	"github.com/lixenwraith/term-tetris/engine"
)

// Cue is one effect to play in response to engine events
type Cue struct {
	Sound SoundType
	Lines int
}

// CuesForEvents maps a drained engine event batch to effects
// A lock that clears lines plays only the clear; level-ups are silent
func CuesForEvents(events []engine.Event) []Cue {
	var cues []Cue
	for i, ev := range events {
		switch ev.Type {
		case engine.EventLocked:
			if i+1 < len(events) && events[i+1].Type == engine.EventLinesCleared {
				continue
			}
			cues = append(cues, Cue{Sound: SoundLock})
		case engine.EventLinesCleared:
			if ev.Lines >= constant.MaxLinesPerLock {
				cues = append(cues, Cue{Sound: SoundTetris, Lines: int(ev.Lines)})
			} else {
				cues = append(cues, Cue{Sound: SoundClear, Lines: int(ev.Lines)})
			}
		case engine.EventHeld:
			cues = append(cues, Cue{Sound: SoundHold})
		case engine.EventGameOver:
			cues = append(cues, Cue{Sound: SoundGameOver})
		}
	}
	return cues
}
