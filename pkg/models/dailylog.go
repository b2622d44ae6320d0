// Package models contains domain models for oneiro.
package models

import (
	"fmt"
	"strconv"
	"strings"
)

// DailyLog is one day's sleep and practice record. The store keeps at most
// one log per calendar date.
type DailyLog struct {
	Date          string  `db:"date" json:"date"` // YYYY-MM-DD, unique key
	Bedtime       string  `db:"bedtime" json:"bedtime"`     // HH:MM
	WakeTime      string  `db:"wake_time" json:"wake_time"` // HH:MM, may roll past midnight
	Quality       int     `db:"quality" json:"quality"`     // 1-5
	WakeFeeling   string  `db:"wake_feeling" json:"wake_feeling,omitempty"`
	RealityChecks int     `db:"reality_checks" json:"reality_checks"`
	Notes         string  `db:"notes" json:"notes,omitempty"`
	DreamIDs      []int64 `db:"dream_ids" json:"dream_ids,omitempty"`
}

// MinQuality and MaxQuality bound the sleep-quality rating scale.
const (
	MinQuality = 1
	MaxQuality = 5
)

// ParseClock parses an HH:MM time of day into minutes since midnight.
func ParseClock(s string) (int, error) {
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("clock time %q: want HH:MM", s)
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("clock time %q: bad hour", s)
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock time %q: bad minute", s)
	}
	return hour*60 + minute, nil
}

// SleepHours returns the night's sleep duration in fractional hours.
// Wake times earlier than bedtime are taken to be on the following day,
// so the duration is computed modulo 24h.
func (l *DailyLog) SleepHours() (float64, error) {
	bed, err := ParseClock(l.Bedtime)
	if err != nil {
		return 0, fmt.Errorf("daily log %s: %w", l.Date, err)
	}
	wake, err := ParseClock(l.WakeTime)
	if err != nil {
		return 0, fmt.Errorf("daily log %s: %w", l.Date, err)
	}
	minutes := wake - bed
	if minutes < 0 {
		minutes += 24 * 60
	}
	return float64(minutes) / 60.0, nil
}
