package board

import (
	"fmt"

	"github.com/lixenwraith/term-tetris/constant"
	"github.com/lixenwraith/term-tetris/tetromino"
)

// FromRows builds a board from text rows for tests and fixtures
// Rows are bottom-aligned: the last row given is the bottom playfield row
// '.' is empty, a kind name ('I', 'T', ...) fills with that kind's color, '#' fills with cyan
func FromRows(rows ...string) *Board {
	if len(rows) > constant.BoardHeight {
		panic(fmt.Sprintf("board: %d rows exceed height %d", len(rows), constant.BoardHeight))
	}

	b := New()
	offset := constant.BoardHeight - len(rows)
	for i, text := range rows {
		runes := []rune(text)
		if len(runes) != constant.BoardWidth {
			panic(fmt.Sprintf("board: row %d has width %d, want %d", i, len(runes), constant.BoardWidth))
		}
		for x, r := range runes {
			switch r {
			case '.':
			case '#':
				b.rows[offset+i][x] = FilledCell(tetromino.ColorCyan)
			default:
				k, ok := tetromino.KindByName(r)
				if !ok {
					panic(fmt.Sprintf("board: unknown cell %q at row %d col %d", r, i, x))
				}
				b.rows[offset+i][x] = FilledCell(k.Color())
			}
		}
	}
	return b
}

// String renders the board in the FromRows format, '#' for any filled cell
func (b *Board) String() string {
	buf := make([]byte, 0, (constant.BoardWidth+1)*constant.BoardHeight)
	for y := range b.rows {
		for _, c := range b.rows[y] {
			if c.Filled {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
