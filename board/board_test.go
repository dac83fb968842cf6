package board

import (
	"strings"
	"testing"

	"github.com/lixenwraith/term-tetris/constant"
	"github.com/lixenwraith/term-tetris/tetromino"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardEmpty(t *testing.T) {
	b := New()
	assert.Equal(t, 10, b.Width())
	assert.Equal(t, 20, b.Height())
	assert.True(t, b.Empty())
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			assert.False(t, b.At(x, y).Filled)
		}
	}
}

func TestIsValidBounds(t *testing.T) {
	b := New()

	tests := []struct {
		name  string
		piece tetromino.Piece
		want  bool
	}{
		{"spawn", tetromino.Spawn(tetromino.KindT), true},
		// I orientation 0 occupies x..x+3 on row y+1
		{"left edge", tetromino.Piece{Kind: tetromino.KindI, X: 0, Y: 0}, true},
		{"past left edge", tetromino.Piece{Kind: tetromino.KindI, X: -1, Y: 0}, false},
		{"right edge", tetromino.Piece{Kind: tetromino.KindI, X: 6, Y: 0}, true},
		{"past right edge", tetromino.Piece{Kind: tetromino.KindI, X: 7, Y: 0}, false},
		{"bottom row", tetromino.Piece{Kind: tetromino.KindI, X: 0, Y: 18}, true},
		{"below bottom", tetromino.Piece{Kind: tetromino.KindI, X: 0, Y: 19}, false},
		// O orientation 0 starts at frame row 0
		{"above top", tetromino.Piece{Kind: tetromino.KindO, X: 0, Y: -1}, false},
		// I orientation 1 uses column x+2, so a negative origin can still be in bounds
		{"negative origin in bounds", tetromino.Piece{Kind: tetromino.KindI, Orientation: 1, X: -2, Y: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.IsValid(tt.piece))
		})
	}
}

func TestIsValidOverlap(t *testing.T) {
	b := FromRows(
		"..........",
		"....T.....",
	)
	// O at (4,17) covers (4,17),(5,17),(4,18),(5,18); (4,19) is filled but (4,18) is not
	o := tetromino.Piece{Kind: tetromino.KindO, X: 4, Y: 17}
	assert.True(t, b.IsValid(o))

	o.Y = 18
	assert.False(t, b.IsValid(o), "any single occupied cell invalidates the piece")

	o.X = 5
	assert.True(t, b.IsValid(o))
}

func TestLockWritesColor(t *testing.T) {
	b := New()
	p := tetromino.Piece{Kind: tetromino.KindS, X: 2, Y: 10}
	b.Lock(p)

	for _, c := range p.Cells() {
		cell := b.At(c.X, c.Y)
		assert.True(t, cell.Filled)
		assert.Equal(t, tetromino.ColorGreen, cell.Color)
	}
	assert.False(t, b.IsValid(p))
}

func TestLockSkipsOutOfBounds(t *testing.T) {
	b := New()
	// I at x=8 row 19 covers columns 8..11; only 8 and 9 are on the board
	b.Lock(tetromino.Piece{Kind: tetromino.KindI, X: 8, Y: 18})
	assert.Equal(t, 2, b.RowFilled(19))
	assert.True(t, b.At(8, 19).Filled)
	assert.True(t, b.At(9, 19).Filled)
}

func TestClearFullLinesEmpty(t *testing.T) {
	b := New()
	before := *b
	assert.Equal(t, 0, b.ClearFullLines())
	assert.Equal(t, before, *b)
}

func TestClearSingleLineShiftsRowsAbove(t *testing.T) {
	b := FromRows(
		"..Z.......",
		".JJ.......",
		"IIIIIIII..",
	)
	// Drop an O into the bottom-right gap to complete the bottom row
	b.Lock(tetromino.Piece{Kind: tetromino.KindO, X: 8, Y: 18})

	require.Equal(t, 1, b.ClearFullLines())

	want := FromRows(
		"..Z.......",
		".JJ.....OO",
	)
	assert.Equal(t, want.String(), b.String())
	assert.Equal(t, 0, b.RowFilled(0))
	assert.Equal(t, tetromino.ColorRed, b.At(2, 18).Color)
	assert.Equal(t, tetromino.ColorBlue, b.At(1, 19).Color)
}

func TestClearAdjacentLines(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want int
		left []string
	}{
		{
			name: "two adjacent",
			rows: []string{
				"T.........",
				"##########",
				"##########",
			},
			want: 2,
			left: []string{"T........."},
		},
		{
			name: "four stacked",
			rows: []string{
				"##########",
				"##########",
				"##########",
				"##########",
			},
			want: 4,
			left: nil,
		},
		{
			name: "split by partial row",
			rows: []string{
				"##########",
				"####.#####",
				"##########",
			},
			want: 2,
			left: []string{"####.#####"},
		},
		{
			name: "none full",
			rows: []string{
				"#########.",
				".#########",
			},
			want: 0,
			left: []string{
				"#########.",
				".#########",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := FromRows(tt.rows...)
			assert.Equal(t, tt.want, b.ClearFullLines())
			assert.Equal(t, FromRows(tt.left...).String(), b.String())
		})
	}
}

func TestClearPreservesRowOrderAbove(t *testing.T) {
	b := FromRows(
		"I.........",
		".O........",
		"##########",
		"..T.......",
		"##########",
	)
	assert.Equal(t, 2, b.ClearFullLines())
	assert.Equal(t, FromRows(
		"I.........",
		".O........",
		"..T.......",
	).String(), b.String())
}

func TestFromRowsRejectsBadInput(t *testing.T) {
	assert.Panics(t, func() { FromRows("...") })
	assert.Panics(t, func() { FromRows("....X.....") })

	tall := make([]string, constant.BoardHeight+1)
	for i := range tall {
		tall[i] = strings.Repeat(".", constant.BoardWidth)
	}
	assert.Panics(t, func() { FromRows(tall...) })
}
