package config

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/lixenwraith/term-tetris/constant"
	"github.com/lixenwraith/term-tetris/core"
)

// Watcher reloads the config file when it changes on disk
// Only the latest config is kept if the consumer falls behind
type Watcher struct {
	path    string
	fw      *fsnotify.Watcher
	configs chan *Config
	errors  chan error
	cancel  context.CancelFunc
	done    chan struct{}
}

// Watch starts watching path until ctx is done or Close is called
// The parent directory is watched so editors that replace the file on save are seen
func Watch(ctx context.Context, path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("config watch %s: %w", filepath.Dir(abs), err)
	}

	ctx, cancel := context.WithCancel(ctx)
	w := &Watcher{
		path:    abs,
		fw:      fw,
		configs: make(chan *Config, 1),
		errors:  make(chan error, 1),
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	core.Go(func() { w.run(ctx) })
	return w, nil
}

// Configs delivers each successfully reloaded config
func (w *Watcher) Configs() <-chan *Config { return w.configs }

// Errors delivers reload and watcher failures; the previous config stays in effect
func (w *Watcher) Errors() <-chan error { return w.errors }

// Close stops the watcher and waits for its goroutine
func (w *Watcher) Close() {
	w.cancel()
	<-w.done
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)
	defer w.fw.Close()

	// Editors emit several events per save; reload once they settle
	debounce := time.NewTimer(constant.ConfigReloadDebounce)
	debounce.Stop()
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			debounce.Stop()
			return

		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			debounce.Reset(constant.ConfigReloadDebounce)
			fire = debounce.C

		case <-fire:
			fire = nil
			cfg, err := Load(w.path)
			if err != nil {
				log.Printf("config reload failed: %v", err)
				w.sendError(err)
				continue
			}
			log.Printf("config reloaded: %s", w.path)
			w.sendConfig(cfg)

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.sendError(fmt.Errorf("config watcher: %w", err))
		}
	}
}

// sendConfig replaces any undelivered config; run is the only sender
func (w *Watcher) sendConfig(cfg *Config) {
	select {
	case <-w.configs:
	default:
	}
	w.configs <- cfg
}

func (w *Watcher) sendError(err error) {
	select {
	case <-w.errors:
	default:
	}
	w.errors <- err
}
