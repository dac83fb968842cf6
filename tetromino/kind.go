package tetromino

import (
	"fmt"

	"github.com/lixenwraith/term-tetris/constant"
)

// Kind identifies one of the seven tetromino shapes
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// Color is the display identity of a kind, mapped to terminal colors by the renderer
type Color uint8

const (
	ColorCyan Color = iota
	ColorYellow
	ColorMagenta
	ColorGreen
	ColorRed
	ColorBlue
	ColorOrange
)

// Cell is an (x, y) offset or board coordinate; y grows downward
type Cell struct {
	X, Y int
}

// Layout is the set of cells of one orientation, relative to the piece origin
type Layout [constant.PieceCells]Cell

// Shape is the immutable catalog record of a kind
type Shape struct {
	Orientations [constant.OrientationCount]Layout
	Color        Color
	Name         rune
}

// catalog is indexed by Kind; entries are never mutated after init
var catalog = [constant.KindCount]Shape{
	KindI: {
		Orientations: [constant.OrientationCount]Layout{
			{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
			{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
			{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
			{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
		},
		Color: ColorCyan,
		Name:  'I',
	},
	KindO: {
		Orientations: [constant.OrientationCount]Layout{
			{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
			{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
			{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
			{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		},
		Color: ColorYellow,
		Name:  'O',
	},
	KindT: {
		Orientations: [constant.OrientationCount]Layout{
			{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
			{{1, 0}, {1, 1}, {1, 2}, {2, 1}},
			{{0, 1}, {1, 1}, {2, 1}, {1, 0}},
			{{0, 1}, {1, 0}, {1, 1}, {1, 2}},
		},
		Color: ColorMagenta,
		Name:  'T',
	},
	KindS: {
		Orientations: [constant.OrientationCount]Layout{
			{{1, 1}, {2, 1}, {0, 2}, {1, 2}},
			{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
			{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
			{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		},
		Color: ColorGreen,
		Name:  'S',
	},
	KindZ: {
		Orientations: [constant.OrientationCount]Layout{
			{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
			{{2, 0}, {2, 1}, {1, 1}, {1, 2}},
			{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
			{{1, 0}, {1, 1}, {0, 1}, {0, 2}},
		},
		Color: ColorRed,
		Name:  'Z',
	},
	KindJ: {
		Orientations: [constant.OrientationCount]Layout{
			{{0, 1}, {0, 2}, {1, 2}, {2, 2}},
			{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
			{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
			{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
		},
		Color: ColorBlue,
		Name:  'J',
	},
	KindL: {
		Orientations: [constant.OrientationCount]Layout{
			{{2, 1}, {0, 2}, {1, 2}, {2, 2}},
			{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
			{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
			{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
		},
		Color: ColorOrange,
		Name:  'L',
	},
}

// Kinds lists every kind in catalog order
func Kinds() [constant.KindCount]Kind {
	return [constant.KindCount]Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}
}

// Shape returns the catalog record; panics on a kind outside the catalog
func (k Kind) Shape() *Shape {
	return &catalog[k]
}

// Layout returns the cell offsets of the given orientation
func (k Kind) Layout(orientation int) Layout {
	return catalog[k].Orientations[orientation]
}

func (k Kind) Color() Color {
	return catalog[k].Color
}

func (k Kind) Name() rune {
	return catalog[k].Name
}

// Valid reports whether k indexes the catalog
func (k Kind) Valid() bool {
	return int(k) < constant.KindCount
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return string(catalog[k].Name)
}

// KindByName resolves a display name back to its kind
func KindByName(name rune) (Kind, bool) {
	for i := range catalog {
		if catalog[i].Name == name {
			return Kind(i), true
		}
	}
	return 0, false
}
