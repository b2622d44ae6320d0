// Package models contains domain models for oneiro.
package models

// PracticeOutcome classifies how a technique practice session ended.
type PracticeOutcome string

const (
	// OutcomeUnattempted means the session was logged but never tried.
	OutcomeUnattempted PracticeOutcome = "unattempted"
	// OutcomeFailed means no lucidity was reached.
	OutcomeFailed PracticeOutcome = "failed"
	// OutcomePartial means brief awareness without control.
	OutcomePartial PracticeOutcome = "partial"
	// OutcomeFull means full lucidity with dream control.
	OutcomeFull PracticeOutcome = "full"
)

// Success reports whether the outcome counts toward the technique's
// success rate. Partial lucidity counts.
func (o PracticeOutcome) Success() bool {
	return o == OutcomePartial || o == OutcomeFull
}

// Technique describes one lucid-dreaming induction technique.
type Technique struct {
	Key         string   `json:"key"` // e.g. "MILD"
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Steps       []string `json:"steps"`
}

// PracticeRecord is one practice session of a technique.
type PracticeRecord struct {
	ID              string          `db:"id" json:"id"` // uuid
	Technique       string          `db:"technique" json:"technique"`
	Date            string          `db:"date" json:"date"` // YYYY-MM-DD
	DurationMinutes int             `db:"duration_minutes" json:"duration_minutes"`
	Outcome         PracticeOutcome `db:"outcome" json:"outcome"`
	ControlLevel    int             `db:"control_level" json:"control_level,omitempty"` // 1-5, full lucidity only
}

// TechniqueStats is the derived effectiveness of one technique.
type TechniqueStats struct {
	Technique     string  `json:"technique"`
	Attempts      int     `json:"attempts"`
	Successes     int     `json:"successes"`
	SuccessRate   float64 `json:"success_rate"` // percent, 0 when no attempts
	LastPracticed string  `json:"last_practiced,omitempty"`
}
