package theme

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/quartz"
)

// Watcher reloads a theme file when it changes on disk.
type Watcher struct {
	fs   *fsnotify.Watcher
	path string
	done chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

// Watch starts watching path. Each successful reload is delivered by
// calling post with a function that invokes onChange, so onChange runs
// wherever post schedules it. Reload failures are logged and skipped.
//
// The parent directory is watched, so editors that replace the file by
// renaming keep working.
func Watch(path string, post func(func()), onChange func(Theme)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("theme: watch: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("theme: watch: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("theme: watch %s: %w", path, err)
	}

	w := &Watcher{fs: fw, path: abs, done: make(chan struct{})}
	w.wg.Add(1)
	go w.run(post, onChange)
	return w, nil
}

func (w *Watcher) run(post func(func()), onChange func(Theme)) {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			t, err := Load(w.path)
			if err != nil {
				quartz.Logger().Debug("theme: reload failed", "path", w.path, "err", err)
				continue
			}
			quartz.Logger().Info("theme: reloaded", "path", w.path, "name", t.Name)
			post(func() { onChange(t) })
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			quartz.Logger().Debug("theme: watch error", "err", err)
		}
	}
}

// Close stops watching. Close is idempotent.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
		w.wg.Wait()
	})
	return err
}
