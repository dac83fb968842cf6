package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntentNames(t *testing.T) {
	for i := IntentNone; i <= IntentRestart; i++ {
		got, ok := IntentByName(i.String())
		require.True(t, ok, i.String())
		assert.Equal(t, i, got)
	}

	got, ok := IntentByName("  Hard_Drop ")
	assert.True(t, ok)
	assert.Equal(t, IntentHardDrop, got)

	_, ok = IntentByName("teleport")
	assert.False(t, ok)

	assert.Equal(t, "unknown", Intent(200).String())
}

func TestIntentIsGame(t *testing.T) {
	game := []Intent{IntentMoveLeft, IntentMoveRight, IntentSoftDrop, IntentRotateCW, IntentRotateCCW, IntentHold, IntentHardDrop}
	for _, i := range game {
		assert.True(t, i.IsGame(), i.String())
	}
	for _, i := range []Intent{IntentNone, IntentQuit, IntentPause, IntentToggleMute, IntentRestart} {
		assert.False(t, i.IsGame(), i.String())
	}
}

func TestKeyByName(t *testing.T) {
	tests := map[string]tcell.Key{
		"Left":   tcell.KeyLeft,
		"right":  tcell.KeyRight,
		"ENTER":  tcell.KeyEnter,
		"esc":    tcell.KeyEscape,
		"escape": tcell.KeyEscape,
		"Ctrl-C": tcell.KeyCtrlC,
		"pgdn":   tcell.KeyPgDn,
	}
	for name, want := range tests {
		got, ok := KeyByName(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}

	_, ok := KeyByName("hyperdrive")
	assert.False(t, ok)
}

func TestBuildKeyTable(t *testing.T) {
	base := DefaultKeyTable()

	kt, err := BuildKeyTable(base,
		map[string]string{
			"x":     "rotate_ccw",
			"space": "hold",
			"z":     "none",
		},
		map[string]string{
			"Enter": "hard_drop",
			"Up":    "none",
		},
	)
	require.NoError(t, err)

	assert.Equal(t, IntentRotateCCW, kt.Translate(runeEvent('x')))
	assert.Equal(t, IntentHold, kt.Translate(runeEvent(' ')))
	assert.Equal(t, IntentNone, kt.Translate(runeEvent('z')))
	assert.Equal(t, IntentHardDrop, kt.Translate(keyEvent(tcell.KeyEnter)))
	assert.Equal(t, IntentNone, kt.Translate(keyEvent(tcell.KeyUp)))

	// Untouched defaults survive
	assert.Equal(t, IntentMoveLeft, kt.Translate(keyEvent(tcell.KeyLeft)))
	assert.Equal(t, IntentQuit, kt.Translate(runeEvent('q')))

	// Base table is not modified
	assert.Equal(t, IntentRotateCCW, base.Translate(runeEvent('z')))
	assert.Equal(t, IntentRotateCW, base.Translate(keyEvent(tcell.KeyUp)))
}

func TestBuildKeyTableNilMaps(t *testing.T) {
	kt, err := BuildKeyTable(DefaultKeyTable(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultKeyTable().Runes.Len(), kt.Runes.Len())
}

func TestBuildKeyTableErrors(t *testing.T) {
	tests := []struct {
		name  string
		runes map[string]string
		keys  map[string]string
		want  error
	}{
		{"unknown intent on rune", map[string]string{"x": "teleport"}, nil, ErrUnknownIntent},
		{"multi-char rune key", map[string]string{"xy": "hold"}, nil, ErrUnknownKey},
		{"unknown special key", nil, map[string]string{"Hyper": "hold"}, ErrUnknownKey},
		{"unknown intent on special key", nil, map[string]string{"Left": "warp"}, ErrUnknownIntent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kt, err := BuildKeyTable(DefaultKeyTable(), tt.runes, tt.keys)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, kt)
		})
	}
}
