package simconfig

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// ScriptWatcher reloads a battle script from disk whenever it changes.
// Successfully parsed scripts are delivered on Scripts; parse failures are
// logged and the previous script stays in effect.
type ScriptWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	Scripts chan *Script
	closeCh chan struct{}
	once    sync.Once
}

// WatchScript starts watching the directory containing path. Editors often
// replace files on save, so the directory is watched rather than the file.
func WatchScript(path string) (*ScriptWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve script path: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	sw := &ScriptWatcher{
		path:    abs,
		watcher: w,
		Scripts: make(chan *Script, 4),
		closeCh: make(chan struct{}),
	}
	go sw.run()
	return sw, nil
}

// Close stops the watcher. It is safe to call more than once.
func (sw *ScriptWatcher) Close() error {
	var err error
	sw.once.Do(func() {
		close(sw.closeCh)
		err = sw.watcher.Close()
	})
	return err
}

func (sw *ScriptWatcher) run() {
	defer close(sw.Scripts)

	// Saves arrive as bursts of events; reload once the burst settles.
	debounce := time.NewTimer(time.Hour)
	debounce.Stop()
	defer debounce.Stop()

	for {
		select {
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != sw.path {
				continue
			}
			debounce.Reset(reloadDebounce)
		case <-debounce.C:
			script, err := LoadScript(sw.path)
			if err != nil {
				log.Printf("Warning: script reload failed: %v", err)
				continue
			}
			select {
			case sw.Scripts <- script:
			case <-sw.closeCh:
				return
			}
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Warning: script watcher: %v", err)
		case <-sw.closeCh:
			return
		}
	}
}
