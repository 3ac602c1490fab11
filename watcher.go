package main

import (
	"log"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// frameWatcher consumes screenshot frames dropped into a directory by the
// recorder and feeds each through the process callback. It is an explicit
// worker goroutine with a cooperative stop channel checked each iteration,
// not a free-running poll loop.
type frameWatcher struct {
	dir     string
	process func(path string)

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

func newFrameWatcher(dir string, process func(path string)) *frameWatcher {
	return &frameWatcher{dir: dir, process: process}
}

// Start begins watching the frame directory. No-op when already running.
func (w *frameWatcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stop != nil {
		return nil
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fsw.Add(w.dir); err != nil {
		fsw.Close()
		return err
	}
	w.stop = make(chan struct{})
	w.done = make(chan struct{})
	go w.loop(fsw, w.stop, w.done)
	log.Printf("frame watcher started on %s", w.dir)
	return nil
}

func (w *frameWatcher) loop(fsw *fsnotify.Watcher, stop, done chan struct{}) {
	defer close(done)
	defer fsw.Close()
	for {
		select {
		case <-stop:
			return
		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
				continue
			}
			ext := strings.ToLower(filepath.Ext(ev.Name))
			if ext != ".png" && ext != ".jpg" && ext != ".jpeg" {
				continue
			}
			w.process(ev.Name)
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			log.Printf("frame watcher error: %v", err)
		}
	}
}

// Stop signals the worker and waits until it has drained.
func (w *frameWatcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stop == nil {
		return
	}
	close(w.stop)
	<-w.done
	w.stop = nil
	w.done = nil
	log.Printf("frame watcher stopped")
}

func (w *frameWatcher) Running() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stop != nil
}
