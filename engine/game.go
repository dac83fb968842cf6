// Package engine owns the game state machine: board, active piece, hold slot,
// piece supply, scoring and the gravity timer.
//
// All operations are synchronous and must be called from a single goroutine.
// Failure is expressed as "no state change" and a false/zero return; nothing
// returns an error. Once the game is over every operation is a no-op.
package engine

import (
	"log"
	"time"

	"github.com/lixenwraith/term-tetris/board"
	"github.com/lixenwraith/term-tetris/constant"
	"github.com/lixenwraith/term-tetris/supply"
	"github.com/lixenwraith/term-tetris/tetromino"
)

// State is the engine lifecycle state
type State uint8

const (
	StatePlaying State = iota
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// HeldPiece is the content of the hold slot; it has no position
type HeldPiece struct {
	Kind        tetromino.Kind
	Orientation int
}

// wallKicks are tried in order after a blocked rotation; order is the tie-break
var wallKicks = [...]tetromino.Cell{
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: 2, Y: 0},
	{X: -2, Y: 0},
	{X: 0, Y: -1},
	{X: 1, Y: -1},
	{X: -1, Y: -1},
}

// Game is a single play session
type Game struct {
	board  *board.Board
	piece  tetromino.Piece
	supply *supply.Supply

	held    *HeldPiece
	canHold bool

	score uint32
	level uint32
	lines uint32

	fallInterval time.Duration
	lastTick     time.Time

	state  State
	events []Event
}

// NewGame starts a session on an empty board and spawns the first piece
// now seeds the gravity timer and must come from the same clock later passed to Tick
func NewGame(s *supply.Supply, now time.Time) *Game {
	return newGame(s, board.New(), now)
}

func newGame(s *supply.Supply, b *board.Board, now time.Time) *Game {
	g := &Game{
		board:        b,
		supply:       s,
		fallInterval: FallInterval(0),
		lastTick:     now,
		state:        StatePlaying,
	}
	g.spawnNext()
	return g
}

// TryMove shifts the active piece by (dx, dy) if the result is valid
func (g *Game) TryMove(dx, dy int) bool {
	if g.state != StatePlaying {
		return false
	}

	candidate := g.piece
	candidate.Translate(dx, dy)
	if !g.board.IsValid(candidate) {
		return false
	}
	g.piece = candidate
	return true
}

// TryRotateCW rotates clockwise, applying the first fitting wall kick if needed
func (g *Game) TryRotateCW() bool {
	return g.tryRotate((*tetromino.Piece).RotateCW)
}

// TryRotateCCW rotates counterclockwise, applying the first fitting wall kick if needed
func (g *Game) TryRotateCCW() bool {
	return g.tryRotate((*tetromino.Piece).RotateCCW)
}

func (g *Game) tryRotate(rotate func(*tetromino.Piece)) bool {
	if g.state != StatePlaying {
		return false
	}

	candidate := g.piece
	rotate(&candidate)
	if g.board.IsValid(candidate) {
		g.piece = candidate
		return true
	}

	for _, kick := range wallKicks {
		kicked := candidate
		kicked.Translate(kick.X, kick.Y)
		if g.board.IsValid(kicked) {
			g.piece = kicked
			return true
		}
	}
	return false
}

// SoftDrop moves the piece down one row, locking it when it cannot move
// Returns true if the piece moved
func (g *Game) SoftDrop() bool {
	if g.state != StatePlaying {
		return false
	}
	if g.TryMove(0, 1) {
		return true
	}
	g.LockAndAdvance()
	return false
}

// HardDrop drops the piece as far as it goes and locks it, returning rows travelled
func (g *Game) HardDrop() int {
	if g.state != StatePlaying {
		return 0
	}

	rows := 0
	for g.TryMove(0, 1) {
		rows++
	}
	g.LockAndAdvance()
	return rows
}

// LockAndAdvance settles the active piece, clears lines, scores and spawns the next piece
// Returns the number of lines cleared
func (g *Game) LockAndAdvance() int {
	if g.state != StatePlaying {
		return 0
	}

	g.board.Lock(g.piece)
	g.emit(Event{Type: EventLocked, Kind: g.piece.Kind})

	cleared := g.board.ClearFullLines()
	g.applyLineClear(cleared)

	g.spawnNext()
	return cleared
}

// Hold stashes the active piece or swaps it with the held one
// Only one hold is allowed per spawned piece
func (g *Game) Hold() bool {
	if g.state != StatePlaying || !g.canHold {
		return false
	}

	current := HeldPiece{Kind: g.piece.Kind, Orientation: g.piece.Orientation}

	if g.held == nil {
		g.canHold = false
		g.held = &current
		g.emit(Event{Type: EventHeld, Kind: current.Kind})
		// Spawn re-enables hold for the fresh piece
		g.spawnNext()
		return true
	}

	swapped := tetromino.Spawn(g.held.Kind)
	swapped.Orientation = g.held.Orientation
	// A swap that would overlap the stack is refused; hold stays available
	if !g.board.IsValid(swapped) {
		return false
	}

	g.canHold = false
	g.piece = swapped
	*g.held = current
	g.emit(Event{Type: EventHeld, Kind: current.Kind})
	return true
}

// Tick applies gravity once if at least one fall interval has elapsed since the last gravity step
// Returns true if gravity fired; missed intervals are not caught up
func (g *Game) Tick(now time.Time) bool {
	if g.state != StatePlaying {
		return false
	}
	if now.Sub(g.lastTick) < g.fallInterval {
		return false
	}

	g.lastTick = now
	if !g.TryMove(0, 1) {
		g.LockAndAdvance()
	}
	return true
}

// spawnNext pulls the next kind from the supply and places it at the spawn position
func (g *Game) spawnNext() {
	g.piece = tetromino.Spawn(g.supply.Next())
	g.canHold = true

	if !g.board.IsValid(g.piece) {
		g.state = StateGameOver
		g.emit(Event{Type: EventGameOver, Kind: g.piece.Kind, Score: g.score, Level: g.level, Lines: g.lines})
		log.Printf("game over: score=%d level=%d lines=%d", g.score, g.level, g.lines)
	}
}

// applyLineClear awards points at the pre-clear level, then advances the level
func (g *Game) applyLineClear(n int) {
	if n <= 0 {
		return
	}

	g.score += LineClearScore(n, g.level)
	g.lines += uint32(n)
	g.emit(Event{Type: EventLinesCleared, Lines: uint32(n), Score: g.score})

	if newLevel := g.lines / constant.LinesPerLevel; newLevel > g.level {
		g.level = newLevel
		g.fallInterval = FallInterval(g.level)
		g.emit(Event{Type: EventLevelUp, Level: g.level})
		log.Printf("level up: level=%d interval=%s", g.level, g.fallInterval)
	}
}

// Accessors

func (g *Game) State() State                { return g.state }
func (g *Game) GameOver() bool              { return g.state == StateGameOver }
func (g *Game) Piece() tetromino.Piece      { return g.piece }
func (g *Game) Score() uint32               { return g.score }
func (g *Game) Level() uint32               { return g.level }
func (g *Game) Lines() uint32               { return g.lines }
func (g *Game) CanHold() bool               { return g.canHold }
func (g *Game) FallInterval() time.Duration { return g.fallInterval }
func (g *Game) Preview() []tetromino.Kind   { return g.supply.Preview() }
func (g *Game) LastTick() time.Time         { return g.lastTick }

// Held returns the hold slot content and whether it is occupied
func (g *Game) Held() (HeldPiece, bool) {
	if g.held == nil {
		return HeldPiece{}, false
	}
	return *g.held, true
}

// Cell returns the settled board cell at (x, y)
func (g *Game) Cell(x, y int) board.Cell {
	return g.board.At(x, y)
}

