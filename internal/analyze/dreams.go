// Package analyze derives statistics from a journal snapshot.
package analyze

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/oneirolab/oneiro/pkg/models"
)

// DreamStatistics computes totals, the lucid rate, calendar groupings, and
// the dream-sign frequency table over the full dream collection.
func DreamStatistics(dreams []models.DreamRecord) models.DreamStats {
	stats := models.DreamStats{
		ByDay:       make(map[string]int),
		ByWeek:      make(map[string]int),
		ByMonth:     make(map[string]int),
		CommonSigns: []models.SignCount{},
	}

	signCounts := make(map[string]int)
	signFirstSeen := make(map[string]int)
	signIdx := 0

	for _, d := range dreams {
		stats.Total++
		stats.ByDay[d.Day()]++
		stats.ByWeek[isoWeekKey(d.CreatedAt)]++
		stats.ByMonth[d.CreatedAt.Format("2006-01")]++

		if !d.Lucid {
			continue
		}
		stats.Lucid++
		if d.DreamSign != "" {
			if _, ok := signCounts[d.DreamSign]; !ok {
				signFirstSeen[d.DreamSign] = signIdx
				signIdx++
			}
			signCounts[d.DreamSign]++
		}
	}

	if stats.Total > 0 {
		stats.LucidPercent = float64(stats.Lucid) / float64(stats.Total) * 100.0
	}

	for sign, c := range signCounts {
		stats.CommonSigns = append(stats.CommonSigns, models.SignCount{Sign: sign, Count: c})
	}
	sort.Slice(stats.CommonSigns, func(i, j int) bool {
		a, b := stats.CommonSigns[i], stats.CommonSigns[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return signFirstSeen[a.Sign] < signFirstSeen[b.Sign]
	})

	return stats
}

// isoWeekKey groups a timestamp into its ISO-8601 week, e.g. "2024-W03".
func isoWeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// WeeklySummary reports on the seven days ending at now (inclusive).
func WeeklySummary(dreams []models.DreamRecord, now time.Time) models.WeeklyReport {
	cutoff := now.AddDate(0, 0, -7)

	var report models.WeeklyReport
	totalWords := 0
	for _, d := range dreams {
		if d.CreatedAt.Before(cutoff) || d.CreatedAt.After(now) {
			continue
		}
		report.Dreams++
		if d.Lucid {
			report.Lucid++
		}
		totalWords += len(strings.Fields(d.Content))
	}

	report.PerDay = float64(report.Dreams) / 7.0
	if report.Dreams > 0 {
		report.AvgWordLength = models.SomeMetric(float64(totalWords) / float64(report.Dreams))
	}
	return report
}
