// Package watch reports changes to the data files an engine was built from,
// so a frontend can rebuild its configuration.
package watch

import (
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/npillmayer/schuko/tracing"

	"bangfe/internal/dictionary"
)

// tracer traces with key 'bangfe.watch'
func tracer() tracing.Trace {
	return tracing.Select("bangfe.watch")
}

// Reload is sent once changes have settled. Paths are the files touched
// since the previous Reload, sorted.
type Reload struct {
	Paths []string
}

// DefaultDelay is how long the files must stay quiet before a Reload.
const DefaultDelay = 500 * time.Millisecond

// Watcher watches a fixed set of files through their directories.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	files     map[string]bool
	delay     time.Duration

	reloads chan Reload
	errors  chan error

	done chan struct{}
	wg   sync.WaitGroup
}

// DataPaths lists the files an engine reads from the two directories.
func DataPaths(databaseDir, userDir string) []string {
	var paths []string
	if databaseDir != "" {
		for _, name := range []string{
			dictionary.SQLiteFile,
			dictionary.JSONFile,
			dictionary.WordListFile,
			dictionary.SuffixFile,
			dictionary.AutoCorrectFile,
		} {
			paths = append(paths, filepath.Join(databaseDir, name))
		}
	}
	if userDir != "" {
		paths = append(paths, filepath.Join(userDir, dictionary.AutoCorrectFile))
	}
	return paths
}

// New prepares a watcher for paths. The files need not exist yet, but their
// directories must.
func New(paths []string, delay time.Duration) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if delay <= 0 {
		delay = DefaultDelay
	}
	w := &Watcher{
		fsWatcher: fsWatcher,
		files:     make(map[string]bool, len(paths)),
		delay:     delay,
		reloads:   make(chan Reload, 4),
		errors:    make(chan error, 10),
		done:      make(chan struct{}),
	}
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			fsWatcher.Close()
			return nil, err
		}
		w.files[abs] = true
	}
	return w, nil
}

func (w *Watcher) Reloads() <-chan Reload { return w.reloads }

func (w *Watcher) Errors() <-chan error { return w.errors }

// Start adds the directories and begins the event loop.
func (w *Watcher) Start() error {
	dirs := map[string]bool{}
	for path := range w.files {
		dirs[filepath.Dir(path)] = true
	}
	for dir := range dirs {
		if err := w.fsWatcher.Add(dir); err != nil {
			return err
		}
		tracer().Debugf("watching %s", dir)
	}
	w.wg.Add(1)
	go w.eventLoop()
	return nil
}

// Stop ends the event loop and closes both channels.
func (w *Watcher) Stop() error {
	close(w.done)
	w.wg.Wait()
	close(w.reloads)
	close(w.errors)
	return w.fsWatcher.Close()
}

func (w *Watcher) eventLoop() {
	defer w.wg.Done()

	timer := time.NewTimer(w.delay)
	timer.Stop()
	defer timer.Stop()
	pending := map[string]bool{}

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			name := filepath.Clean(event.Name)
			if !w.files[name] {
				continue
			}
			pending[name] = true
			timer.Reset(w.delay)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			reload := Reload{Paths: make([]string, 0, len(pending))}
			for path := range pending {
				reload.Paths = append(reload.Paths, path)
			}
			sort.Strings(reload.Paths)
			pending = map[string]bool{}
			tracer().Infof("data changed: %v", reload.Paths)
			select {
			case w.reloads <- reload:
			case <-w.done:
				return
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			tracer().Errorf("watch: %v", err)
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}
