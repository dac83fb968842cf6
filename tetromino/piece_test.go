package tetromino

import (
	"testing"

	"github.com/lixenwraith/term-tetris/constant"
	"github.com/stretchr/testify/assert"
)

func TestSpawnPosition(t *testing.T) {
	p := Spawn(KindT)
	assert.Equal(t, 3, p.X)
	assert.Equal(t, 0, p.Y)
	assert.Equal(t, 0, p.Orientation)
	assert.Equal(t, ColorMagenta, p.Color())
}

func TestCellsAddOrigin(t *testing.T) {
	p := Piece{Kind: KindI, Orientation: 0, X: 3, Y: 5}
	want := [constant.PieceCells]Cell{{3, 6}, {4, 6}, {5, 6}, {6, 6}}
	assert.Equal(t, want, p.Cells())

	p.Translate(-1, 2)
	want = [constant.PieceCells]Cell{{2, 8}, {3, 8}, {4, 8}, {5, 8}}
	assert.Equal(t, want, p.Cells())
}

func TestRotationWraps(t *testing.T) {
	p := Spawn(KindL)

	for i := 1; i <= 4; i++ {
		p.RotateCW()
		assert.Equal(t, i%4, p.Orientation)
	}

	p.RotateCCW()
	assert.Equal(t, 3, p.Orientation)
	p.RotateCCW()
	assert.Equal(t, 2, p.Orientation)

	// Rotation does not move the origin
	assert.Equal(t, constant.SpawnColumn, p.X)
	assert.Equal(t, constant.SpawnRow, p.Y)
}

func TestCellsPanicsOnInvalidOrientation(t *testing.T) {
	p := Piece{Kind: KindT, Orientation: 4}
	assert.Panics(t, func() { p.Cells() })
}
