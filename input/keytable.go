package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/kamstrup/intmap"
)

// KeyTable maps key events to intents
// Printable keys are looked up by rune, everything else by tcell.Key
type KeyTable struct {
	Runes *intmap.Map[rune, Intent]
	Keys  *intmap.Map[tcell.Key, Intent]
}

// NewKeyTable returns an empty table
func NewKeyTable() *KeyTable {
	return &KeyTable{
		Runes: intmap.New[rune, Intent](16),
		Keys:  intmap.New[tcell.Key, Intent](8),
	}
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	kt := NewKeyTable()

	kt.Keys.Put(tcell.KeyLeft, IntentMoveLeft)
	kt.Keys.Put(tcell.KeyRight, IntentMoveRight)
	kt.Keys.Put(tcell.KeyDown, IntentSoftDrop)
	kt.Keys.Put(tcell.KeyUp, IntentRotateCW)
	kt.Keys.Put(tcell.KeyEscape, IntentQuit)
	kt.Keys.Put(tcell.KeyCtrlC, IntentQuit)

	kt.Runes.Put('z', IntentRotateCCW)
	kt.Runes.Put('c', IntentHold)
	kt.Runes.Put(' ', IntentHardDrop)
	kt.Runes.Put('q', IntentQuit)
	kt.Runes.Put('p', IntentPause)
	kt.Runes.Put('m', IntentToggleMute)
	kt.Runes.Put('r', IntentRestart)

	return kt
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		Runes: intmap.New[rune, Intent](kt.Runes.Len()),
		Keys:  intmap.New[tcell.Key, Intent](kt.Keys.Len()),
	}
	kt.Runes.ForEach(func(r rune, i Intent) bool {
		c.Runes.Put(r, i)
		return true
	})
	kt.Keys.ForEach(func(k tcell.Key, i Intent) bool {
		c.Keys.Put(k, i)
		return true
	})
	return c
}

// BindRune binds r to intent; IntentNone removes the binding
func (kt *KeyTable) BindRune(r rune, intent Intent) {
	if intent == IntentNone {
		kt.Runes.Del(r)
		return
	}
	kt.Runes.Put(r, intent)
}

// BindKey binds k to intent; IntentNone removes the binding
func (kt *KeyTable) BindKey(k tcell.Key, intent Intent) {
	if intent == IntentNone {
		kt.Keys.Del(k)
		return
	}
	kt.Keys.Put(k, intent)
}

// Translate resolves a key event to an intent, IntentNone when unbound
// Rune lookups fall back to lower case so Shift or Caps Lock do not disable bindings
func (kt *KeyTable) Translate(ev *tcell.EventKey) Intent {
	if ev == nil {
		return IntentNone
	}

	if ev.Key() != tcell.KeyRune {
		if intent, ok := kt.Keys.Get(ev.Key()); ok {
			return intent
		}
		return IntentNone
	}

	r := ev.Rune()
	if intent, ok := kt.Runes.Get(r); ok {
		return intent
	}
	if lower := unicode.ToLower(r); lower != r {
		if intent, ok := kt.Runes.Get(lower); ok {
			return intent
		}
	}
	return IntentNone
}
