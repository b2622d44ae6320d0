// Package sqlite provides SQLite database operations for oneiro.
package sqlite

import (
	"context"

	"github.com/google/uuid"

	"github.com/oneirolab/oneiro/pkg/models"
)

// PracticeStore provides technique-practice database operations.
type PracticeStore struct {
	store *Store
}

// NewPracticeStore creates a new practice store.
func NewPracticeStore(store *Store) *PracticeStore {
	return &PracticeStore{store: store}
}

// RecordPractice stores one practice session. A missing ID gets a fresh uuid.
func (s *PracticeStore) RecordPractice(ctx context.Context, p *models.PracticeRecord) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	const query = `
		INSERT INTO technique_practice (id, technique, date, duration_minutes, outcome, control_level)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := s.store.ExecContext(ctx, query,
		p.ID, p.Technique, p.Date, p.DurationMinutes, string(p.Outcome), p.ControlLevel,
	)
	return err
}

// History returns all practice records ordered by date then ID.
func (s *PracticeStore) History(ctx context.Context) ([]models.PracticeRecord, error) {
	const query = `
		SELECT id, technique, date, duration_minutes, outcome, control_level
		FROM technique_practice
		ORDER BY date ASC, id ASC
	`
	rows, err := s.store.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []models.PracticeRecord
	for rows.Next() {
		var p models.PracticeRecord
		var outcome string
		if err := rows.Scan(&p.ID, &p.Technique, &p.Date, &p.DurationMinutes, &outcome, &p.ControlLevel); err != nil {
			return nil, err
		}
		p.Outcome = models.PracticeOutcome(outcome)
		history = append(history, p)
	}
	return history, rows.Err()
}
