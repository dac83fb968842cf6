package tetromino

import (
	"testing"

	"github.com/lixenwraith/term-tetris/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCatalogLayoutsFitFrame verifies every orientation has four distinct cells inside the 4x4 frame
func TestCatalogLayoutsFitFrame(t *testing.T) {
	for _, k := range Kinds() {
		for o := 0; o < constant.OrientationCount; o++ {
			layout := k.Layout(o)
			seen := make(map[Cell]bool, len(layout))
			for _, c := range layout {
				assert.GreaterOrEqual(t, c.X, 0, "kind %s orientation %d", k, o)
				assert.GreaterOrEqual(t, c.Y, 0, "kind %s orientation %d", k, o)
				assert.Less(t, c.X, 4, "kind %s orientation %d", k, o)
				assert.Less(t, c.Y, 4, "kind %s orientation %d", k, o)
				assert.False(t, seen[c], "kind %s orientation %d repeats cell %v", k, o, c)
				seen[c] = true
			}
		}
	}
}

func TestCatalogIdentitiesDistinct(t *testing.T) {
	names := make(map[rune]Kind)
	colors := make(map[Color]Kind)
	for _, k := range Kinds() {
		_, dupName := names[k.Name()]
		_, dupColor := colors[k.Color()]
		assert.False(t, dupName, "duplicate name %q", k.Name())
		assert.False(t, dupColor, "duplicate color for %s", k)
		names[k.Name()] = k
		colors[k.Color()] = k
	}
	assert.Len(t, names, constant.KindCount)
}

// TestCatalogExactLayouts pins a few orientations so table edits are caught
func TestCatalogExactLayouts(t *testing.T) {
	tests := []struct {
		kind        Kind
		orientation int
		want        Layout
	}{
		{KindI, 0, Layout{{0, 1}, {1, 1}, {2, 1}, {3, 1}}},
		{KindI, 1, Layout{{2, 0}, {2, 1}, {2, 2}, {2, 3}}},
		{KindO, 3, Layout{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
		{KindT, 2, Layout{{0, 1}, {1, 1}, {2, 1}, {1, 0}}},
		{KindS, 0, Layout{{1, 1}, {2, 1}, {0, 2}, {1, 2}}},
		{KindZ, 3, Layout{{1, 0}, {1, 1}, {0, 1}, {0, 2}}},
		{KindJ, 1, Layout{{1, 0}, {2, 0}, {1, 1}, {1, 2}}},
		{KindL, 0, Layout{{2, 1}, {0, 2}, {1, 2}, {2, 2}}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.Layout(tt.orientation), "%s/%d", tt.kind, tt.orientation)
	}
}

func TestKindNames(t *testing.T) {
	want := "IOTSZJL"
	for i, k := range Kinds() {
		assert.Equal(t, rune(want[i]), k.Name())
		assert.Equal(t, string(want[i]), k.String())

		got, ok := KindByName(k.Name())
		require.True(t, ok)
		assert.Equal(t, k, got)
	}

	_, ok := KindByName('X')
	assert.False(t, ok)
	assert.False(t, Kind(constant.KindCount).Valid())
	assert.Equal(t, "Kind(7)", Kind(constant.KindCount).String())
}
