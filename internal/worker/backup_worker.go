// Package worker writes timestamped snapshots of the order blob to disk.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"buyurtma/internal/amqp"
	"buyurtma/internal/orders"
)

// BackupWorker reacts to order change events by dumping the current
// collection into a timestamped JSON file, pruning the oldest snapshots
// beyond the configured keep count.
type BackupWorker struct {
	repo *orders.Repository
	dir  string
	keep int
}

func NewBackupWorker(repo *orders.Repository, dir string, keep int) *BackupWorker {
	return &BackupWorker{
		repo: repo,
		dir:  dir,
		keep: keep,
	}
}

// HandleOrderEvent processes a single change event from AMQP.
func (w *BackupWorker) HandleOrderEvent(ctx context.Context, msg *amqp.OrderEventMessage) error {
	slog.InfoContext(ctx, "Processing order event",
		"action", msg.Action,
		"order_id", msg.OrderID,
		"count", msg.Count)

	if _, err := w.WriteSnapshot(ctx); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	return nil
}

// WriteSnapshot re-reads the collection from storage and writes it to a new
// snapshot file. Returns the file path written.
func (w *BackupWorker) WriteSnapshot(ctx context.Context) (string, error) {
	collection, err := w.repo.Load(ctx)
	if err != nil {
		// The repository degrades to an empty collection on load failure.
		// Snapshotting that would overwrite good backups with nothing.
		return "", fmt.Errorf("load orders: %w", err)
	}

	data, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal orders: %w", err)
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	name := fmt.Sprintf("orders-%d.json", time.Now().UnixNano())
	path := filepath.Join(w.dir, name)

	tmp, err := os.CreateTemp(w.dir, "orders-*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("rename snapshot: %w", err)
	}

	slog.InfoContext(ctx, "Snapshot written",
		"path", path,
		"orders", len(collection),
		"bytes", len(data))

	if err := w.prune(ctx); err != nil {
		slog.WarnContext(ctx, "Failed to prune old snapshots", "error", err)
	}

	return path, nil
}

// prune deletes the oldest snapshots beyond the keep count.
func (w *BackupWorker) prune(ctx context.Context) error {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return fmt.Errorf("read backup dir: %w", err)
	}

	var snapshots []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, "orders-") && strings.HasSuffix(name, ".json") {
			snapshots = append(snapshots, name)
		}
	}

	if len(snapshots) <= w.keep {
		return nil
	}

	// Timestamps in the names sort lexicographically within the same digit
	// count, which holds for UnixNano until the year 2262.
	sort.Strings(snapshots)

	stale := snapshots[:len(snapshots)-w.keep]
	for _, name := range stale {
		if err := os.Remove(filepath.Join(w.dir, name)); err != nil {
			slog.WarnContext(ctx, "Failed to remove stale snapshot", "name", name, "error", err)
		}
	}

	slog.InfoContext(ctx, "Pruned stale snapshots", "removed", len(stale), "kept", w.keep)
	return nil
}
