package engine

import (
	"github.com/lixenwraith/term-tetris/board"
	"github.com/lixenwraith/term-tetris/constant"
	"github.com/lixenwraith/term-tetris/tetromino"
)

// Snapshot is a read-only copy of everything the renderer draws
// It shares no memory with the Game it was taken from
type Snapshot struct {
	Board      board.Board
	Piece      tetromino.Piece
	PieceCells [constant.PieceCells]tetromino.Cell
	Held       HeldPiece
	HasHeld    bool
	CanHold    bool
	Next       []tetromino.Kind
	Score      uint32
	Level      uint32
	Lines      uint32
	GameOver   bool

	// Paused and Muted are filled in by the caller that owns the clock and audio
	Paused bool
	Muted  bool
}

// Snapshot copies the current state for rendering
func (g *Game) Snapshot() Snapshot {
	held, hasHeld := g.Held()
	return Snapshot{
		Board:      *g.board,
		Piece:      g.piece,
		PieceCells: g.piece.Cells(),
		Held:       held,
		HasHeld:    hasHeld,
		CanHold:    g.canHold,
		Next:       g.supply.Preview(),
		Score:      g.score,
		Level:      g.level,
		Lines:      g.lines,
		GameOver:   g.state == StateGameOver,
	}
}

// HeldName returns the held kind's display name, or "none" when the slot is empty
func (s *Snapshot) HeldName() string {
	if !s.HasHeld {
		return constant.TextNone
	}
	return s.Held.Kind.String()
}

// NextNames returns the display names of the upcoming kinds, nearest first
func (s *Snapshot) NextNames() []string {
	names := make([]string, len(s.Next))
	for i, k := range s.Next {
		names[i] = k.String()
	}
	return names
}
