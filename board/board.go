// Package board implements the fixed playfield grid: collision tests, locking and line clears.
package board

import (
	"github.com/lixenwraith/term-tetris/constant"
	"github.com/lixenwraith/term-tetris/tetromino"
)

// Cell is either empty (zero value) or filled with the color of the piece that settled there
type Cell struct {
	Color  tetromino.Color
	Filled bool
}

// FilledCell returns an occupied cell of color c
func FilledCell(c tetromino.Color) Cell {
	return Cell{Color: c, Filled: true}
}

type row [constant.BoardWidth]Cell

// Board is the playfield; the zero value is an empty board
// Rows are indexed top (0) to bottom (BoardHeight-1)
type Board struct {
	rows [constant.BoardHeight]row
}

func New() *Board {
	return &Board{}
}

func (b *Board) Width() int  { return constant.BoardWidth }
func (b *Board) Height() int { return constant.BoardHeight }

// InBounds reports whether (x, y) lies on the playfield
func InBounds(x, y int) bool {
	return x >= 0 && x < constant.BoardWidth && y >= 0 && y < constant.BoardHeight
}

// At returns the cell at (x, y); out-of-bounds reads return an empty cell
func (b *Board) At(x, y int) Cell {
	if !InBounds(x, y) {
		return Cell{}
	}
	return b.rows[y][x]
}

// IsValid reports whether every cell of p is on the board and empty
func (b *Board) IsValid(p tetromino.Piece) bool {
	for _, c := range p.Cells() {
		if !InBounds(c.X, c.Y) {
			return false
		}
		if b.rows[c.Y][c.X].Filled {
			return false
		}
	}
	return true
}

// Lock writes the piece color into its cells, skipping any that fall off the board
func (b *Board) Lock(p tetromino.Piece) {
	cell := FilledCell(p.Color())
	for _, c := range p.Cells() {
		if InBounds(c.X, c.Y) {
			b.rows[c.Y][c.X] = cell
		}
	}
}

// ClearFullLines removes every full row, shifting the rows above down, and returns the count
// The scan runs bottom-up and re-checks an index after a clear, since the row above has moved into it
func (b *Board) ClearFullLines() int {
	cleared := 0
	for y := constant.BoardHeight - 1; y >= 0; {
		if !b.rowFull(y) {
			y--
			continue
		}
		b.removeRow(y)
		cleared++
	}
	return cleared
}

// removeRow shifts rows [0, y) down by one and inserts an empty row at the top
func (b *Board) removeRow(y int) {
	copy(b.rows[1:y+1], b.rows[:y])
	b.rows[0] = row{}
}

func (b *Board) rowFull(y int) bool {
	for _, c := range b.rows[y] {
		if !c.Filled {
			return false
		}
	}
	return true
}

// RowFilled returns the number of occupied cells in row y
func (b *Board) RowFilled(y int) int {
	n := 0
	for _, c := range b.rows[y] {
		if c.Filled {
			n++
		}
	}
	return n
}

// Empty reports whether no cell on the board is occupied
func (b *Board) Empty() bool {
	for y := range b.rows {
		if b.RowFilled(y) > 0 {
			return false
		}
	}
	return true
}
