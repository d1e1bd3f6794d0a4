//go:generate go run go.uber.org/mock/mockgen -source=count.go -destination=../mocks/mock_count_repository.go -package=mocks
package repositories

import (
	"charlie/domain"
	"charlie/errors"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

type ICountRepository interface {
	Load(ctx context.Context, channel domain.ChannelID) (Record, error)
	Save(ctx context.Context, channel domain.ChannelID, record Record) error
}

// Record is the durable per-channel document. State and leaderboard are
// replaced together in a single Set so a crash can never split them.
type Record struct {
	State domain.CountState  `json:"state"`
	Board domain.Leaderboard `json:"leaderboard"`
}

type CountRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewCountRepository(db *badger.DB, log *slog.Logger) CountRepository {
	return CountRepository{db: db, log: log}
}

// Key layout: "count:{channel_id}". One key per channel holds the whole game.
func countKey(channel domain.ChannelID) []byte {
	return []byte(fmt.Sprintf("count:%s", channel))
}

// Load returns the stored record for a channel. A channel that never counted
// yields the zero record, not an error. Any storage failure is wrapped in
// ErrStoreUnavailable.
func (r CountRepository) Load(ctx context.Context, channel domain.ChannelID) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}

	var bytes []byte
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(countKey(channel))
		if err != nil {
			return err
		}
		bytes, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		r.log.Debug("No record yet, starting fresh", "channel", channel)
		return Record{}, nil
	}
	if err != nil {
		return Record{}, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}

	var record Record
	if err = json.Unmarshal(bytes, &record); err != nil {
		return Record{}, fmt.Errorf("%w: corrupted record: %v", errors.ErrStoreUnavailable, err)
	}
	return record, nil
}

// Save atomically overwrites the channel record.
func (r CountRepository) Save(ctx context.Context, channel domain.ChannelID, record Record) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}

	bytes, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(countKey(channel), bytes)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	return nil
}
