package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Store holds the catalog currently being served.
type Store struct {
	current atomic.Pointer[Catalog]
	logger  *slog.Logger
}

// NewStore wraps an initial catalog.
func NewStore(c *Catalog, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{logger: logger}
	s.current.Store(c)
	return s
}

// Current returns the active catalog.
func (s *Store) Current() *Catalog { return s.current.Load() }

// Replace swaps in a new catalog.
func (s *Store) Replace(c *Catalog) { s.current.Store(c) }

// Reload reads path and swaps it in if it parses and validates. On error
// the previous catalog stays active.
func (s *Store) Reload(path string) error {
	c, err := LoadFile(path)
	if err != nil {
		return err
	}
	s.Replace(c)
	s.logger.Info("catalog reloaded", "path", path, "projects", c.Len())
	return nil
}

// DefaultDebounce is how long Watch waits for writes to settle.
const DefaultDebounce = 200 * time.Millisecond

// Watch reloads path whenever it changes until ctx is done. The parent
// directory is watched so editors that replace the file are handled.
func (s *Store) Watch(ctx context.Context, path string, debounce time.Duration) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	s.logger.Info("watching catalog", "path", abs, "debounce", debounce)

	go func() {
		defer w.Close()

		timer := time.NewTimer(debounce)
		timer.Stop()

		for {
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				timer.Reset(debounce)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				s.logger.Warn("catalog watcher error", "error", err)
			case <-timer.C:
				if err := s.Reload(abs); err != nil {
					s.logger.Error("catalog reload failed, keeping previous", "error", err)
				}
			}
		}
	}()

	return nil
}
