package engine

import (
	"time"

	"github.com/lixenwraith/term-tetris/board"
	"github.com/lixenwraith/term-tetris/supply"
)

// NewTestGame creates a game on a prepared board with a seeded supply
// This is a test helper; the board is owned by the returned game
func NewTestGame(seed uint64, b *board.Board, now time.Time) *Game {
	if b == nil {
		b = board.New()
	}
	return newGame(supply.NewSeeded(seed), b, now)
}

