package input

import "github.com/lixenwraith/term-tetris/engine"

// Dispatch applies a game intent to g and reports whether the game changed
// Shell intents and IntentNone are ignored and return false
func Dispatch(g *engine.Game, intent Intent) bool {
	switch intent {
	case IntentMoveLeft:
		return g.TryMove(-1, 0)
	case IntentMoveRight:
		return g.TryMove(1, 0)
	case IntentSoftDrop:
		// A blocked soft drop still locks the piece
		if g.GameOver() {
			return false
		}
		g.SoftDrop()
		return true
	case IntentRotateCW:
		return g.TryRotateCW()
	case IntentRotateCCW:
		return g.TryRotateCCW()
	case IntentHold:
		return g.Hold()
	case IntentHardDrop:
		if g.GameOver() {
			return false
		}
		g.HardDrop()
		return true
	default:
		return false
	}
}
