package server

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDataset reloads the dataset when its file is written, created or
// renamed. The parent directory is watched so that a file replaced by
// rename is picked up. Bursts of events collapse into one reload.
func (s *Server) watchDataset(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	target, err := filepath.Abs(s.cfg.WatchPath)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", s.cfg.WatchPath, err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		s.logger.Error("failed to watch dataset directory", "path", filepath.Dir(target), "error", err)
		// Keep serving without reloads.
		<-ctx.Done()
		return nil
	}
	s.logger.Debug("watching dataset", "path", target)

	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if name, err := filepath.Abs(event.Name); err != nil || name != target {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(s.cfg.WatchDebounce, func() {
				s.logger.Debug("dataset changed, reloading", "file", target)
				if err := s.cfg.Reloader.Reload(ctx); err != nil {
					s.logger.Error("dataset reload failed", "error", err)
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("watcher error", "error", err)
		}
	}
}
