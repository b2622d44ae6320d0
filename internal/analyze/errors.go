// Package analyze derives statistics, correlations, and calendar views from
// a journal snapshot. Every function here is pure: the same snapshot and
// options always produce the same report.
package analyze

import "fmt"

// MalformedInputError reports a snapshot record that violates a journal
// invariant. The whole report fails rather than silently dropping the record.
type MalformedInputError struct {
	Kind    string // which invariant was violated
	DreamID int64  // offending dream, 0 if not dream-related
	Date    string // offending log date, empty if not log-related
	Detail  string
}

func (e *MalformedInputError) Error() string {
	switch {
	case e.DreamID != 0:
		return fmt.Sprintf("malformed input (%s): dream #%d: %s", e.Kind, e.DreamID, e.Detail)
	case e.Date != "":
		return fmt.Sprintf("malformed input (%s): daily log %s: %s", e.Kind, e.Date, e.Detail)
	default:
		return fmt.Sprintf("malformed input (%s): %s", e.Kind, e.Detail)
	}
}

// ConfigError reports invalid report options. It is raised before any
// computation starts; no partial report is returned.
type ConfigError struct {
	Field  string
	Detail string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid option %s: %s", e.Field, e.Detail)
}
