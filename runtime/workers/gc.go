package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// GCWorker reclaims badger value-log space in the background. Badger never
// garbage-collects on its own; without this loop the store grows forever on
// a long-lived channel.
type GCWorker struct {
	db       *badger.DB
	log      *slog.Logger
	interval time.Duration
}

func NewGCWorker(db *badger.DB, log *slog.Logger, interval time.Duration) *GCWorker {
	return &GCWorker{db: db, log: log, interval: interval}
}

func (w *GCWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			// Rewrite one value-log file per tick at most; ErrNoRewrite
			// simply means there was nothing worth reclaiming.
			err := w.db.RunValueLogGC(0.5)
			switch err {
			case nil:
				w.log.Debug("Value log file reclaimed")
			case badger.ErrNoRewrite:
			default:
				w.log.Warn("Value log GC failed", "err", err)
			}
		}
	}
}
