package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"git.sr.ht/~whereswaldon/timechart/internal/logger"
	"git.sr.ht/~whereswaldon/timechart/internal/tracefile"
)

// traceWatcher re-reads a trace whenever it is written.
type traceWatcher struct {
	path string
}

func newTraceWatcher(path string) (*traceWatcher, error) {
	path = filepath.Clean(path)
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("failed watching %s: %w", path, err)
	}
	return &traceWatcher{path: path}, nil
}

// Traces emits the trace each time the file is rewritten or appended to.
// The directory is watched rather than the file so that editors replacing
// the file are noticed too. The channel is closed once ctx is done.
func (tw *traceWatcher) Traces(ctx context.Context) <-chan *tracefile.Trace {
	out := make(chan *tracefile.Trace, 1)
	go func() {
		defer close(out)
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			logger.Error("failed creating file watcher", "error", err)
			return
		}
		defer watcher.Close()
		if err := watcher.Add(filepath.Dir(tw.path)); err != nil {
			logger.Error("failed watching trace", "path", tw.path, "error", err)
			return
		}
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != tw.path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				tr, err := tw.load()
				if err != nil {
					logger.Warn("could not reload trace", "path", tw.path, "error", err)
					continue
				}
				select {
				case out <- tr:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("file watcher failed", "error", err)
			}
		}
	}()
	return out
}

func (tw *traceWatcher) load() (*tracefile.Trace, error) {
	f, err := os.Open(tw.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return tracefile.ReadGrowing(f)
}
