package versa

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/versa-format/go-versa/debug"
	"github.com/versa-format/go-versa/ir"
)

type WatchConfig struct {
	// Debounce is how long to wait after the last event before
	// re-parsing. Editors tend to produce several events per save.
	Debounce time.Duration
}

type WatchOpt func(*WatchConfig)

func WatchDebounce(d time.Duration) WatchOpt {
	return func(c *WatchConfig) { c.Debounce = d }
}

// Watch re-parses the file at path whenever it changes on disk and
// hands the result to onChange, parse errors included. The watch sits
// on the parent directory, so the file may start out absent and appear
// later. Watching stops when ctx is canceled.
func Watch(ctx context.Context, path string, onChange func(*ir.Node, error), options ...WatchOpt) error {
	c := &WatchConfig{Debounce: 100 * time.Millisecond}
	for _, opt := range options {
		opt(c)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return err
	}
	go watchLoop(ctx, w, abs, onChange, c.Debounce)
	return nil
}

func watchLoop(ctx context.Context, w *fsnotify.Watcher, path string, onChange func(*ir.Node, error), debounce time.Duration) {
	defer w.Close()
	var timer *time.Timer
	var timerC <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if debug.Watch() {
				debug.Logf("watch: %s on %s\n", ev.Op, ev.Name)
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
				timerC = timer.C
			} else {
				timer.Reset(debounce)
			}
		case <-timerC:
			timer = nil
			timerC = nil
			onChange(Load(path))
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			onChange(nil, err)
		}
	}
}
