// Package analyze derives statistics from a journal snapshot.
package analyze

import (
	"github.com/oneirolab/oneiro/pkg/models"
)

// RealityCheckTotals aggregates the per-day reality-check counts. Days with
// no daily log are absent from the data, not zero: they never win the
// least-active slot. Ties on either extreme break toward the earliest date,
// which works out to the first occurrence since logs arrive date-ordered.
func RealityCheckTotals(logs []models.DailyLog) models.RealityCheckStats {
	stats := models.RealityCheckStats{LoggedDays: len(logs)}

	var most, least int
	for _, l := range logs {
		stats.Total += l.RealityChecks
		if stats.MostActiveDay == "" || l.RealityChecks > most {
			stats.MostActiveDay = l.Date
			most = l.RealityChecks
		}
		if stats.LeastActiveDay == "" || l.RealityChecks < least {
			stats.LeastActiveDay = l.Date
			least = l.RealityChecks
		}
	}

	if stats.LoggedDays > 0 {
		stats.AvgPerDay = float64(stats.Total) / float64(stats.LoggedDays)
	}
	return stats
}
