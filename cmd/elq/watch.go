package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/npillmayer/elq/frame"
)

// watchInterval coalesces bursts of file events; editors tend to fire
// several per save.
const watchInterval = 250 * time.Millisecond

// watchAndAnnotate annotates once, then re-annotates whenever the input
// file changes. Rapid event bursts collapse into one run per interval
// through the frame scheduler.
func watchAndAnnotate(path string, flags *rootFlags) error {
	if err := annotateFile(path, flags); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	// watch the directory: saves that replace the file keep working
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	sched := frame.NewTicker(watchInterval)
	defer sched.Cancel()

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			sched.Request(func() {
				if err := annotateFile(path, flags); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, err)
		}
	}
}
