package tetromino

import "github.com/lixenwraith/term-tetris/constant"

// Piece is a positioned, oriented instance of a kind
// X, Y locate the top-left corner of the 4x4 frame on the board
type Piece struct {
	Kind        Kind
	Orientation int
	X, Y        int
}

// Spawn returns a piece of kind k at the spawn position in orientation 0
func Spawn(k Kind) Piece {
	return Piece{
		Kind:        k,
		Orientation: 0,
		X:           constant.SpawnColumn,
		Y:           constant.SpawnRow,
	}
}

// Cells returns the absolute board positions of the piece
func (p Piece) Cells() [constant.PieceCells]Cell {
	layout := p.Kind.Layout(p.Orientation)
	var cells [constant.PieceCells]Cell
	for i, c := range layout {
		cells[i] = Cell{X: p.X + c.X, Y: p.Y + c.Y}
	}
	return cells
}

// RotateCW advances the orientation; bounds are the caller's concern
func (p *Piece) RotateCW() {
	p.Orientation = (p.Orientation + 1) % constant.OrientationCount
}

// RotateCCW retreats the orientation; bounds are the caller's concern
func (p *Piece) RotateCCW() {
	p.Orientation = (p.Orientation + constant.OrientationCount - 1) % constant.OrientationCount
}

// Translate shifts the origin by (dx, dy)
func (p *Piece) Translate(dx, dy int) {
	p.X += dx
	p.Y += dy
}

func (p Piece) Color() Color {
	return p.Kind.Color()
}
