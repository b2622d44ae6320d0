// Package sqlite provides SQLite database operations for oneiro.
package sqlite

import (
	"context"
	"database/sql"

	"github.com/oneirolab/oneiro/pkg/models"
)

// LogStore provides daily-log database operations.
type LogStore struct {
	store *Store
}

// NewLogStore creates a new daily-log store.
func NewLogStore(store *Store) *LogStore {
	return &LogStore{store: store}
}

// UpsertLog stores the log for its date, replacing any existing entry.
// The date is the primary key: one log per calendar day.
func (s *LogStore) UpsertLog(ctx context.Context, l *models.DailyLog) error {
	const query = `
		INSERT INTO daily_logs (date, bedtime, wake_time, quality, wake_feeling, reality_checks, notes, dream_ids)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			bedtime = excluded.bedtime,
			wake_time = excluded.wake_time,
			quality = excluded.quality,
			wake_feeling = excluded.wake_feeling,
			reality_checks = excluded.reality_checks,
			notes = excluded.notes,
			dream_ids = excluded.dream_ids
	`
	_, err := s.store.ExecContext(ctx, query,
		l.Date, l.Bedtime, l.WakeTime, l.Quality,
		nullString(l.WakeFeeling), l.RealityChecks, nullString(l.Notes),
		marshalInt64s(l.DreamIDs),
	)
	return err
}

// GetLogByDate retrieves the log for a date. Returns (nil, nil) when absent.
func (s *LogStore) GetLogByDate(ctx context.Context, date string) (*models.DailyLog, error) {
	const query = selectLogs + ` WHERE date = ?`
	l, err := scanLog(s.store.QueryRowContext(ctx, query, date))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return l, err
}

// ListLogs returns all daily logs ordered by date ascending.
func (s *LogStore) ListLogs(ctx context.Context) ([]models.DailyLog, error) {
	const query = selectLogs + ` ORDER BY date ASC`
	rows, err := s.store.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.DailyLog
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, *l)
	}
	return logs, rows.Err()
}

const selectLogs = `
	SELECT date, bedtime, wake_time, quality, wake_feeling, reality_checks, notes, dream_ids
	FROM daily_logs`

// scanLog scans a single daily log from a row scanner.
func scanLog(scanner interface{ Scan(...interface{}) error }) (*models.DailyLog, error) {
	var l models.DailyLog
	var feeling, notes sql.NullString
	var dreamIDs string
	if err := scanner.Scan(&l.Date, &l.Bedtime, &l.WakeTime, &l.Quality,
		&feeling, &l.RealityChecks, &notes, &dreamIDs); err != nil {
		return nil, err
	}
	l.WakeFeeling = feeling.String
	l.Notes = notes.String
	l.DreamIDs = unmarshalInt64s(dreamIDs)
	return &l, nil
}
