package engine

import "github.com/lixenwraith/term-tetris/tetromino"

// EventType identifies a notable engine transition
type EventType uint8

const (
	// EventLocked is emitted when the active piece settles into the board
	// Kind is the locked piece
	EventLocked EventType = iota

	// EventLinesCleared follows EventLocked when at least one row completed
	// Lines is the count cleared by this lock, Score the new total
	EventLinesCleared

	// EventLevelUp is emitted when cumulative lines cross a multiple of LinesPerLevel
	// Level is the new level
	EventLevelUp

	// EventHeld is emitted after a successful hold; Kind is the piece moved into the slot
	EventHeld

	// EventGameOver is emitted once, when a spawn collides
	// Score, Level and Lines carry the final totals
	EventGameOver
)

func (t EventType) String() string {
	switch t {
	case EventLocked:
		return "locked"
	case EventLinesCleared:
		return "lines_cleared"
	case EventLevelUp:
		return "level_up"
	case EventHeld:
		return "held"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a record of a transition for audio and logging consumers
// Unused payload fields are zero
type Event struct {
	Type  EventType
	Kind  tetromino.Kind
	Lines uint32
	Level uint32
	Score uint32
}

func (g *Game) emit(ev Event) {
	g.events = append(g.events, ev)
}

// DrainEvents returns the events emitted since the last call and clears the log
// The main loop drains once per iteration; events do not affect game state
func (g *Game) DrainEvents() []Event {
	if len(g.events) == 0 {
		return nil
	}
	out := g.events
	g.events = nil
	return out
}
