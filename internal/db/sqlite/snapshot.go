// Package sqlite provides SQLite database operations for oneiro.
package sqlite

import (
	"context"

	"github.com/oneirolab/oneiro/pkg/models"
)

// LoadSnapshot reads the full journal into an immutable snapshot for the
// analytics engine: dreams ordered by ID, logs ordered by date. Both reads
// happen on one connection sequentially; oneiro is single-writer, so the
// pair is consistent.
func LoadSnapshot(ctx context.Context, store *Store) (models.Snapshot, error) {
	dreams, err := NewDreamStore(store).ListDreams(ctx)
	if err != nil {
		return models.Snapshot{}, err
	}
	logs, err := NewLogStore(store).ListLogs(ctx)
	if err != nil {
		return models.Snapshot{}, err
	}
	return models.Snapshot{Dreams: dreams, Logs: logs}, nil
}
