package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/term-tetris/audio"
	"github.com/lixenwraith/term-tetris/config"
	"github.com/lixenwraith/term-tetris/constant"
	"github.com/lixenwraith/term-tetris/core"
	"github.com/lixenwraith/term-tetris/engine"
)

var (
	configFlag      = flag.String("config", constant.DefaultConfigPath, "Path to the TOML settings file")
	debugFlag       = flag.Bool("debug", false, "Write a debug log under "+constant.LogDir+"/")
	seedFlag        = flag.Uint64("seed", 0, "Piece supply seed, 0 for random")
	muteFlag        = flag.Bool("mute", false, "Start with audio muted")
	writeConfigFlag = flag.Bool("write-config", false, "Write default settings to -config and exit")
)

func main() {
	flag.Parse()

	if *writeConfigFlag {
		if err := config.Write(*configFlag, config.Default()); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *configFlag)
		return
	}

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v (continuing with defaults)\n", err)
		log.Printf("config load: %v", err)
		cfg = config.Default()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic recovery: the registered screen is restored before the stack is printed
	core.RegisterScreen(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.HideCursor()

	sound := newSoundManager(cfg, *muteFlag)
	defer sound.Cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watcher, err := config.Watch(ctx, *configFlag)
	if err != nil {
		log.Printf("config hot reload disabled: %v", err)
	} else {
		defer watcher.Close()
	}

	events := make(chan tcell.Event, constant.EventChannelSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	a := newApp(screen, cfg, sound, engine.NewMonotonicTimeProvider(), *seedFlag)
	a.run(ctx, events, watcher)

	log.Printf("exit: score=%d level=%d lines=%d", a.game.Score(), a.game.Level(), a.game.Lines())
}

// newSoundManager opens the audio device; failure leaves a silent manager
func newSoundManager(cfg *config.Config, muted bool) *audio.SoundManager {
	settings, err := cfg.AudioSettings()
	if err != nil {
		settings = audio.DefaultAudioConfig()
	}
	sound := audio.NewSoundManager(settings)
	sound.SetMuted(muted)

	if err := sound.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("audio disabled: %v", err)
	}
	return sound
}
