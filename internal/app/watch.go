package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/corey/haikus/internal/ports"
)

// WatchService scans files as they change and reports each haiku the
// first time it is seen. Deduplication goes through the mark store, so
// a haiku stays reported across restarts.
type WatchService struct {
	scan    *Service
	watcher ports.Watcher
	marks   ports.MarkStore
	log     *zap.Logger
}

// NewWatchService wires a scanning service to a watcher and mark store.
func NewWatchService(scan *Service, watcher ports.Watcher, marks ports.MarkStore, log *zap.Logger) *WatchService {
	return &WatchService{
		scan:    scan,
		watcher: watcher,
		marks:   marks,
		log:     log,
	}
}

// Run starts watching root. It returns once the watcher is installed;
// scanning happens on the watcher's goroutine.
func (w *WatchService) Run(root string) error {
	if err := w.watcher.Watch(root, w.onChange); err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}
	w.log.Info("watching for haikus", zap.String("root", root))
	return nil
}

// Stop ends watching.
func (w *WatchService) Stop() error {
	return w.watcher.Stop()
}

func (w *WatchService) onChange(path string) {
	report := w.scan.scanFile(path)
	if report.Err != nil {
		w.log.Warn("scan failed", zap.String("path", path), zap.Error(report.Err))
		return
	}
	for _, sh := range report.Haikus {
		fresh, err := w.marks.Mark(sh.Haiku.Fingerprint())
		if err != nil {
			w.log.Error("mark haiku", zap.String("path", path), zap.Error(err))
			continue
		}
		if !fresh {
			continue
		}
		lines := sh.Haiku.Lines()
		w.log.Info("haiku found",
			zap.String("path", path),
			zap.Float64("score", sh.Score),
			zap.String("line1", lines[0]),
			zap.String("line2", lines[1]),
			zap.String("line3", lines[2]),
		)
	}
}
