// Package models contains domain models for oneiro.
package models

import (
	"sort"
	"time"
)

// DreamRecord is a single journaled dream. Records are owned by the store;
// the analytics core only ever reads them through a Snapshot.
type DreamRecord struct {
	ID        int64     `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	Title     string    `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	Tags      []string  `db:"tags" json:"tags"`
	Lucid     bool      `db:"lucid" json:"lucid"`
	DreamSign string    `db:"dream_sign" json:"dream_sign,omitempty"`
}

// Day returns the calendar date of the record in YYYY-MM-DD form.
// Grouping and calendar placement key off this value, never the time of day.
func (d *DreamRecord) Day() string {
	return d.CreatedAt.Format(DateLayout)
}

// DateLayout is the canonical calendar-date form used throughout oneiro.
const DateLayout = "2006-01-02"

// ClockLayout is the time-of-day form used for bedtime and wake time.
const ClockLayout = "15:04"

// NormalizeTags deduplicates and sorts a tag list. Empty tags are dropped.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	var out []string
	for _, t := range tags {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Snapshot is an immutable point-in-time copy of the journal handed to the
// analytics engine. The store guarantees ordering: dreams ascending by ID,
// logs ascending by date.
type Snapshot struct {
	Dreams []DreamRecord `json:"dreams"`
	Logs   []DailyLog    `json:"daily_logs"`
}
