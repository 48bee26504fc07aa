package ingest

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// settleDelay lets a burst of writes to one file finish before it is parsed.
const settleDelay = 100 * time.Millisecond

// Watch re-parses accepted files under paths whenever they are written or
// created, and passes each new Report to onReport. It blocks until ctx is
// done.
func Watch(
	ctx context.Context,
	logger *zap.Logger,
	engine RecordEngine,
	paths []string,
	onReport func(Report),
) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}
	defer watcher.Close()

	for _, path := range paths {
		if err := addWatchPath(watcher, path); err != nil {
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			handleFileEvent(logger, engine, event, onReport)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if logger != nil {
				logger.Warn("Watcher error", zap.Error(err))
			}
		}
	}
}

func addWatchPath(watcher *fsnotify.Watcher, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("error accessing %s: %w", path, err)
	}
	if !info.IsDir() {
		return watcher.Add(path)
	}

	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(p)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("error adding directory to watcher: %w", err)
	}
	return nil
}

func handleFileEvent(logger *zap.Logger, engine RecordEngine, event fsnotify.Event, onReport func(Report)) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	if !engine.Accepts(event.Name) {
		return
	}

	time.Sleep(settleDelay)
	report, err := engine.Run(event.Name)
	if err != nil {
		if logger != nil {
			logger.Error("Error processing file", zap.String("file", event.Name), zap.Error(err))
		}
		return
	}
	onReport(report)
}
