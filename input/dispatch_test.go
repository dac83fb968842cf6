package input

import (
	"testing"
	"time"

	"github.com/lixenwraith/term-tetris/board"
	"github.com/lixenwraith/term-tetris/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestDispatchMoves(t *testing.T) {
	g := engine.NewTestGame(1, nil, start)
	x := g.Piece().X

	assert.True(t, Dispatch(g, IntentMoveLeft))
	assert.Equal(t, x-1, g.Piece().X)

	assert.True(t, Dispatch(g, IntentMoveRight))
	assert.True(t, Dispatch(g, IntentMoveRight))
	assert.Equal(t, x+1, g.Piece().X)

	y := g.Piece().Y
	assert.True(t, Dispatch(g, IntentSoftDrop))
	assert.Equal(t, y+1, g.Piece().Y)
}

func TestDispatchRotateAndHold(t *testing.T) {
	g := engine.NewTestGame(2, nil, start)
	require.True(t, Dispatch(g, IntentSoftDrop))
	require.True(t, Dispatch(g, IntentSoftDrop))

	assert.True(t, Dispatch(g, IntentRotateCW))
	assert.Equal(t, 1, g.Piece().Orientation)
	assert.True(t, Dispatch(g, IntentRotateCCW))
	assert.Equal(t, 0, g.Piece().Orientation)

	assert.True(t, Dispatch(g, IntentHold))
	assert.True(t, Dispatch(g, IntentHold))
	assert.False(t, Dispatch(g, IntentHold), "one hold per spawn after a swap")
}

func TestDispatchHardDrop(t *testing.T) {
	g := engine.NewTestGame(3, nil, start)

	assert.True(t, Dispatch(g, IntentHardDrop))
	filled := 0
	for x := 0; x < 10; x++ {
		if g.Cell(x, 19).Filled {
			filled++
		}
	}
	assert.Positive(t, filled)
}

func TestDispatchIgnoresShellIntents(t *testing.T) {
	g := engine.NewTestGame(4, nil, start)
	before := g.Snapshot()

	for _, i := range []Intent{IntentNone, IntentQuit, IntentPause, IntentToggleMute, IntentRestart} {
		assert.False(t, Dispatch(g, i), i.String())
	}
	assert.Equal(t, before, g.Snapshot())
}

func TestDispatchAfterGameOver(t *testing.T) {
	rows := make([]string, 19)
	for i := range rows {
		rows[i] = "#########."
	}
	g := engine.NewTestGame(5, board.FromRows(rows...), start)
	require.True(t, g.GameOver())

	for i := IntentMoveLeft; i <= IntentHardDrop; i++ {
		assert.False(t, Dispatch(g, i), i.String())
	}
}
