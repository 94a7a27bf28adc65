package server

import (
	"context"
	"log/slog"
	"os"
	"time"

	"vectorprime/pkg/catalog"
)

// CatalogReloader polls the catalog file and swaps a new version into the
// analyzer when it changes. A file that fails to load or validate is logged
// and the previous catalog stays in service.
type CatalogReloader struct {
	path     string
	interval time.Duration
	analyzer *Analyzer

	modTime time.Time
	size    int64
}

// NewCatalogReloader watches path for analyzer. The file's current state is
// taken as already loaded.
func NewCatalogReloader(path string, interval time.Duration, analyzer *Analyzer) *CatalogReloader {
	r := &CatalogReloader{path: path, interval: interval, analyzer: analyzer}
	if info, err := os.Stat(path); err == nil {
		r.modTime, r.size = info.ModTime(), info.Size()
	}
	return r
}

// Run checks the file every interval until ctx is canceled.
func (r *CatalogReloader) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.Check()
		}
	}
}

// Check reloads the catalog if the file changed since the last check and
// reports whether a new catalog was installed.
func (r *CatalogReloader) Check() bool {
	info, err := os.Stat(r.path)
	if err != nil {
		// Removing the file keeps the catalog in memory.
		return false
	}
	if info.ModTime().Equal(r.modTime) && info.Size() == r.size {
		return false
	}
	r.modTime, r.size = info.ModTime(), info.Size()

	cat, err := catalog.Load(r.path)
	if err != nil {
		catalogReloadsTotal.WithLabelValues("rejected").Inc()
		slog.Warn("catalog_reload_failed", "path", r.path, "error", err)
		return false
	}
	r.analyzer.SetCatalog(cat)
	catalogReloadsTotal.WithLabelValues("ok").Inc()
	slog.Info("catalog_reloaded", "path", r.path, "items", len(cat.Items))
	return true
}
