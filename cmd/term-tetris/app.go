package main

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/term-tetris/audio"
	"github.com/lixenwraith/term-tetris/config"
	"github.com/lixenwraith/term-tetris/constant"
	"github.com/lixenwraith/term-tetris/engine"
	"github.com/lixenwraith/term-tetris/input"
	"github.com/lixenwraith/term-tetris/render"
	"github.com/lixenwraith/term-tetris/supply"
)

// app owns the game session and every shell collaborator
// All methods run on the main loop goroutine
type app struct {
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	sound    *audio.SoundManager
	keys     *input.KeyTable
	clock    *engine.PausableClock
	game     *engine.Game
	seed     uint64

	// gameOverAt is the clock time the current session ended, zero while playing
	gameOverAt time.Time
}

func newApp(screen tcell.Screen, cfg *config.Config, sound *audio.SoundManager, source engine.TimeProvider, seed uint64) *app {
	a := &app{
		screen:   screen,
		renderer: render.NewTerminalRenderer(screen, render.ClassicTheme),
		sound:    sound,
		keys:     input.DefaultKeyTable(),
		clock:    engine.NewPausableClock(source),
		seed:     seed,
	}
	a.applyConfig(cfg)
	a.restart()
	return a
}

func (a *app) newSupply() *supply.Supply {
	if a.seed != 0 {
		return supply.NewSeeded(a.seed)
	}
	return supply.NewRandom()
}

// restart discards the session and starts a fresh game
func (a *app) restart() {
	if a.clock.IsPaused() {
		a.clock.Resume()
	}
	a.game = engine.NewGame(a.newSupply(), a.clock.Now())
	a.gameOverAt = time.Time{}
	log.Printf("new game: seed=%d", a.seed)
}

// applyConfig swaps theme, bindings and volumes; game state is untouched
// Sections that fail to resolve keep their previous value
func (a *app) applyConfig(cfg *config.Config) {
	if theme, err := cfg.Theme(); err == nil {
		a.renderer.SetTheme(theme)
	} else {
		log.Printf("config theme: %v", err)
	}
	if kt, err := cfg.KeyTable(); err == nil {
		a.keys = kt
	} else {
		log.Printf("config keys: %v", err)
	}
	if settings, err := cfg.AudioSettings(); err == nil {
		a.sound.SetConfig(settings)
	} else {
		log.Printf("config audio: %v", err)
	}
}

// handleEvent processes one terminal event; returns false to quit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleIntent(a.keys.Translate(ev))
	case *tcell.EventResize:
		a.screen.Sync()
		a.renderer.Resize()
	}
	return true
}

func (a *app) handleIntent(intent input.Intent) bool {
	switch intent {
	case input.IntentNone:
		return true
	case input.IntentQuit:
		return false
	case input.IntentToggleMute:
		muted := a.sound.ToggleMute()
		log.Printf("audio muted: %v", muted)
		return true
	case input.IntentPause:
		if a.game.GameOver() {
			return true
		}
		paused := a.clock.Toggle()
		log.Printf("paused: %v", paused)
		return true
	case input.IntentRestart:
		if a.game.GameOver() {
			a.restart()
		}
		return true
	}

	if a.clock.IsPaused() {
		return true
	}
	input.Dispatch(a.game, intent)
	a.flushEvents()
	return true
}

// update advances gravity; returns false once the game-over screen has been shown long enough
func (a *app) update() bool {
	now := a.clock.Now()
	if a.game.Tick(now) {
		a.flushEvents()
	}

	if !a.game.GameOver() {
		return true
	}
	if a.gameOverAt.IsZero() {
		a.gameOverAt = now
	}
	return now.Sub(a.gameOverAt) < constant.GameOverExitDelay
}

// flushEvents forwards engine events to audio
func (a *app) flushEvents() {
	events := a.game.DrainEvents()
	if len(events) == 0 {
		return
	}
	a.sound.HandleEvents(events)
}

func (a *app) draw() {
	snap := a.game.Snapshot()
	snap.Paused = a.clock.IsPaused()
	snap.Muted = a.sound.IsMuted()
	a.renderer.RenderFrame(&snap)
}

// run is the main loop: terminal events, config reloads and the frame ticker
func (a *app) run(ctx context.Context, events <-chan tcell.Event, watcher *config.Watcher) {
	ticker := time.NewTicker(constant.FrameUpdateInterval)
	defer ticker.Stop()

	var reloads <-chan *config.Config
	var reloadErrs <-chan error
	if watcher != nil {
		reloads = watcher.Configs()
		reloadErrs = watcher.Errors()
	}

	a.draw()
	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-events:
			if !a.handleEvent(ev) {
				return
			}
			a.draw()

		case cfg := <-reloads:
			a.applyConfig(cfg)
			a.draw()

		case err := <-reloadErrs:
			log.Printf("config reload: %v", err)

		case <-ticker.C:
			if !a.update() {
				return
			}
			a.draw()
		}
	}
}
