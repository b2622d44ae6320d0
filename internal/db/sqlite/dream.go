// Package sqlite provides SQLite database operations for oneiro.
package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/oneirolab/oneiro/pkg/models"
)

// DreamStore provides dream-record database operations.
type DreamStore struct {
	store *Store
}

// NewDreamStore creates a new dream store.
func NewDreamStore(store *Store) *DreamStore {
	return &DreamStore{store: store}
}

// AddDream stores a new dream and returns its assigned ID. IDs are
// monotonically increasing: one more than the current maximum.
func (s *DreamStore) AddDream(ctx context.Context, d *models.DreamRecord) (int64, error) {
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now()
	}
	d.Tags = models.NormalizeTags(d.Tags)

	const query = `
		INSERT INTO dreams (id, created_at, created_at_epoch, title, content, tags, lucid, dream_sign)
		VALUES ((SELECT COALESCE(MAX(id), 0) + 1 FROM dreams), ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := s.store.ExecContext(ctx, query,
		d.CreatedAt.Format(time.RFC3339), d.CreatedAt.UnixMilli(),
		d.Title, d.Content, marshalStrings(d.Tags),
		boolToInt(d.Lucid), nullString(d.DreamSign),
	)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	d.ID = id
	return id, nil
}

// GetDreamByID retrieves one dream. Returns (nil, nil) when absent.
func (s *DreamStore) GetDreamByID(ctx context.Context, id int64) (*models.DreamRecord, error) {
	const query = selectDreams + ` WHERE id = ?`
	d, err := scanDream(s.store.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return d, err
}

// ListDreams returns all dreams ordered by ID ascending.
func (s *DreamStore) ListDreams(ctx context.Context) ([]models.DreamRecord, error) {
	const query = selectDreams + ` ORDER BY id ASC`
	rows, err := s.store.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDreamRows(rows)
}

// SearchDreams returns dreams whose title, content, or tags contain the
// keyword, case-insensitively, ordered by ID ascending.
func (s *DreamStore) SearchDreams(ctx context.Context, keyword string) ([]models.DreamRecord, error) {
	const query = selectDreams + `
		WHERE title LIKE '%' || ? || '%' COLLATE NOCASE
		   OR content LIKE '%' || ? || '%' COLLATE NOCASE
		   OR tags LIKE '%' || ? || '%' COLLATE NOCASE
		ORDER BY id ASC
	`
	rows, err := s.store.QueryContext(ctx, query, keyword, keyword, keyword)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDreamRows(rows)
}

const selectDreams = `
	SELECT id, created_at, title, content, tags, lucid, dream_sign
	FROM dreams`

// scanDream scans a single dream from a row scanner.
func scanDream(scanner interface{ Scan(...interface{}) error }) (*models.DreamRecord, error) {
	var d models.DreamRecord
	var createdAt, tags string
	var lucid int
	var sign sql.NullString
	if err := scanner.Scan(&d.ID, &createdAt, &d.Title, &d.Content, &tags, &lucid, &sign); err != nil {
		return nil, err
	}
	d.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	d.Tags = unmarshalStrings(tags)
	d.Lucid = lucid != 0
	d.DreamSign = sign.String
	return &d, nil
}

// scanDreamRows scans all dreams from rows.
func scanDreamRows(rows *sql.Rows) ([]models.DreamRecord, error) {
	var dreams []models.DreamRecord
	for rows.Next() {
		d, err := scanDream(rows)
		if err != nil {
			return nil, err
		}
		dreams = append(dreams, *d)
	}
	return dreams, rows.Err()
}

// boolToInt stores booleans as 0/1.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
