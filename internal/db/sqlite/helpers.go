// Package sqlite provides SQLite database operations for oneiro.
package sqlite

import (
	"database/sql"

	"github.com/goccy/go-json"
)

// nullString converts a string to sql.NullString, treating "" as NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// marshalStrings encodes a string slice as JSON for a TEXT column.
// nil encodes as an empty array.
func marshalStrings(ss []string) string {
	if len(ss) == 0 {
		return "[]"
	}
	data, _ := json.Marshal(ss)
	return string(data)
}

// unmarshalStrings decodes a JSON TEXT column into a string slice.
func unmarshalStrings(data string) []string {
	if data == "" || data == "[]" {
		return nil
	}
	var ss []string
	if err := json.Unmarshal([]byte(data), &ss); err != nil {
		return nil
	}
	return ss
}

// marshalInt64s encodes an int64 slice as JSON for a TEXT column.
func marshalInt64s(ids []int64) string {
	if len(ids) == 0 {
		return "[]"
	}
	data, _ := json.Marshal(ids)
	return string(data)
}

// unmarshalInt64s decodes a JSON TEXT column into an int64 slice.
func unmarshalInt64s(data string) []int64 {
	if data == "" || data == "[]" {
		return nil
	}
	var ids []int64
	if err := json.Unmarshal([]byte(data), &ids); err != nil {
		return nil
	}
	return ids
}
