package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/spikeworks/recmeta/validation"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Revalidate metadata documents whenever they change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			w, err := newDocWatcher(args[0], cfg.Watch.DebounceDelay, cfg.Watch.Extensions, slog.Default())
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			defer w.close()

			return w.run(ctx)
		},
	}

	return cmd
}

// docWatcher watches a directory tree and revalidates metadata files
// as they change, with debouncing so editor save bursts produce a
// single validation pass.
type docWatcher struct {
	root       string
	debounce   time.Duration
	extensions []string
	watcher    *fsnotify.Watcher
	logger     *slog.Logger

	pendingMu sync.Mutex
	pending   map[string]struct{}
}

func newDocWatcher(root string, debounce time.Duration, extensions []string, logger *slog.Logger) (*docWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &docWatcher{
		root:       root,
		debounce:   debounce,
		extensions: extensions,
		watcher:    fsw,
		logger:     logger,
		pending:    make(map[string]struct{}),
	}, nil
}

func (w *docWatcher) close() error {
	return w.watcher.Close()
}

// run watches until the context is cancelled.
func (w *docWatcher) run(ctx context.Context) error {
	if err := w.addWatchesRecursive(w.root); err != nil {
		return err
	}

	w.logger.Info("Watching metadata documents",
		slog.String("dir", w.root),
		slog.Duration("debounce", w.debounce))

	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Watcher error", slog.String("error", err.Error()))

		case <-ticker.C:
			w.flushPending()
		}
	}
}

// addWatchesRecursive adds watches to all directories under root,
// skipping hidden ones.
func (w *docWatcher) addWatchesRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		// Skip hidden directories, but never the watch root itself.
		if path != root && strings.HasPrefix(filepath.Base(path), ".") {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn("Failed to watch directory",
				slog.String("path", path),
				slog.String("error", err.Error()))
		} else {
			w.logger.Debug("Watching directory", slog.String("path", path))
		}
		return nil
	})
}

// handleFSEvent accumulates a change for debounced processing.
func (w *docWatcher) handleFSEvent(event fsnotify.Event) {
	path := event.Name

	if !hasExtension(path, w.extensions) {
		// Handle directory creation so new subtrees get watched.
		if event.Has(fsnotify.Create) {
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				if err := w.watcher.Add(path); err != nil {
					w.logger.Warn("Failed to watch new directory",
						slog.String("path", path),
						slog.String("error", err.Error()))
				}
			}
		}
		return
	}

	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		return
	}

	w.pendingMu.Lock()
	w.pending[path] = struct{}{}
	w.pendingMu.Unlock()

	w.logger.Debug("Document change detected",
		slog.String("path", path),
		slog.String("op", event.Op.String()))
}

// flushPending validates each accumulated file and logs the outcome.
func (w *docWatcher) flushPending() {
	w.pendingMu.Lock()
	if len(w.pending) == 0 {
		w.pendingMu.Unlock()
		return
	}
	toProcess := make([]string, 0, len(w.pending))
	for path := range w.pending {
		toProcess = append(toProcess, path)
	}
	w.pending = make(map[string]struct{})
	w.pendingMu.Unlock()

	for _, path := range toProcess {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		file := validateFile(path)
		switch {
		case file.ParseError != "":
			w.logger.Error("Document failed to parse",
				slog.String("path", path),
				slog.String("error", file.ParseError))
		case validation.HasErrors(file.Issues):
			w.logger.Warn("Document has validation errors",
				slog.String("path", path),
				slog.Int("errors", file.Errors()),
				slog.Int("warnings", file.Warnings()))
			for _, issue := range file.Issues {
				w.logger.Warn("Issue",
					slog.String("path", issue.Path),
					slog.String("code", issue.Code),
					slog.String("message", issue.Message))
			}
		default:
			w.logger.Info("Document valid",
				slog.String("path", path),
				slog.Int("warnings", file.Warnings()))
		}
	}
}
