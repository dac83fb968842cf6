package engine

import "time"

// PausableClock is the game clock handed to Tick
// While paused it reports the instant the pause began, so gravity cannot fire
// and no backlog accumulates; on resume it continues from that instant
type PausableClock struct {
	source TimeProvider

	paused          bool
	pauseStart      time.Time     // source time when the current pause began
	totalPausedTime time.Duration // completed pauses only
}

// NewPausableClock wraps a real time source
func NewPausableClock(source TimeProvider) *PausableClock {
	return &PausableClock{source: source}
}

// Now returns source time minus all time spent paused
func (pc *PausableClock) Now() time.Time {
	if pc.paused {
		return pc.pauseStart.Add(-pc.totalPausedTime)
	}
	return pc.source.Now().Add(-pc.totalPausedTime)
}

// Pause freezes game time; repeated calls are no-ops
func (pc *PausableClock) Pause() {
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.source.Now()
}

// Resume continues game time; repeated calls are no-ops
func (pc *PausableClock) Resume() {
	if !pc.paused {
		return
	}
	pc.totalPausedTime += pc.source.Now().Sub(pc.pauseStart)
	pc.paused = false
	pc.pauseStart = time.Time{}
}

// Toggle flips the pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.paused {
		pc.Resume()
	} else {
		pc.Pause()
	}
	return pc.paused
}

func (pc *PausableClock) IsPaused() bool {
	return pc.paused
}

// TotalPauseDuration includes the pause in progress, if any
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	total := pc.totalPausedTime
	if pc.paused {
		total += pc.source.Now().Sub(pc.pauseStart)
	}
	return total
}
