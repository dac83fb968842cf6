package input

import "strings"

// Intent is a semantic action decoupled from the key that produced it
type Intent uint8

const (
	IntentNone Intent = iota

	// Game intents, each mapped to one engine operation
	IntentMoveLeft  // Left arrow
	IntentMoveRight // Right arrow
	IntentSoftDrop  // Down arrow
	IntentRotateCW  // Up arrow
	IntentRotateCCW // z
	IntentHold      // c
	IntentHardDrop  // Space

	// Shell intents, handled by the main loop
	IntentQuit       // q, Esc, Ctrl+C
	IntentPause      // p
	IntentToggleMute // m
	IntentRestart    // r
)

// intentNames are the canonical names used in the [keys] config sections
var intentNames = [...]string{
	IntentNone:       "none",
	IntentMoveLeft:   "move_left",
	IntentMoveRight:  "move_right",
	IntentSoftDrop:   "soft_drop",
	IntentRotateCW:   "rotate_cw",
	IntentRotateCCW:  "rotate_ccw",
	IntentHold:       "hold",
	IntentHardDrop:   "hard_drop",
	IntentQuit:       "quit",
	IntentPause:      "pause",
	IntentToggleMute: "toggle_mute",
	IntentRestart:    "restart",
}

func (i Intent) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}

// IsGame reports whether the intent drives the engine rather than the shell
func (i Intent) IsGame() bool {
	return i >= IntentMoveLeft && i <= IntentHardDrop
}

// IntentByName resolves a config action name, case-insensitive
// "none" resolves to IntentNone and is used to unbind a key
func IntentByName(name string) (Intent, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range intentNames {
		if n == name {
			return Intent(i), true
		}
	}
	return IntentNone, false
}
