package watch

import (
	"context"
	"os"
	"time"

	"vscode2helix/logger"
)

// Runner performs one conversion of the watched file.
type Runner func(ctx context.Context) error

type fileState struct {
	modTime time.Time
	size    int64
}

func (s fileState) isZero() bool {
	return s.modTime.IsZero() && s.size == 0
}

// Watcher polls a file and calls its Runner whenever the file's modification
// time or size changes.
type Watcher struct {
	path     string
	interval time.Duration
	runner   Runner
	log      *logger.Logger
	last     fileState
}

func New(path string, interval time.Duration, runner Runner, log *logger.Logger) *Watcher {
	if log == nil {
		log = logger.Nop()
	}
	return &Watcher{
		path:     path,
		interval: interval,
		runner:   runner,
		log:      log.WithFields(map[string]any{"watch": path}),
	}
}

// Run converts once, then keeps polling until ctx is done. Failed runs are
// logged and retried on the next change.
func (w *Watcher) Run(ctx context.Context) error {
	w.log.Info("watching for changes")
	w.check(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("stopped watching")
			return nil
		case <-ticker.C:
			w.check(ctx)
		}
	}
}

func (w *Watcher) check(ctx context.Context) {
	info, err := os.Stat(w.path)
	if err != nil {
		// Editors often replace the file on save; it reappears shortly.
		w.log.Debug("stat failed: " + err.Error())
		return
	}

	cur := fileState{modTime: info.ModTime(), size: info.Size()}
	if !changed(w.last, cur) {
		return
	}
	w.last = cur

	if err := w.runner(ctx); err != nil {
		w.log.Error(err, "conversion failed")
	}
}

func changed(prev, cur fileState) bool {
	if prev.isZero() {
		return true
	}
	return !prev.modTime.Equal(cur.modTime) || prev.size != cur.size
}
