// Package analyze derives statistics from a journal snapshot.
package analyze

import (
	"github.com/oneirolab/oneiro/pkg/models"
)

// SleepStatistics computes duration and quality averages over the daily logs
// and the quality-versus-lucidity breakdown against the dream collection.
// Averages over an empty log collection come back as no-data metrics.
//
// The snapshot is assumed validated: clock times parse and quality ratings
// sit inside [1,5].
func SleepStatistics(logs []models.DailyLog, dreams []models.DreamRecord) models.SleepStats {
	stats := models.SleepStats{
		Nights:       len(logs),
		QualityTable: qualityTable(logs, dreams),
	}
	if len(logs) == 0 {
		return stats
	}

	var totalHours, minHours, maxHours float64
	totalQuality := 0
	for i, l := range logs {
		hours, err := l.SleepHours()
		if err != nil {
			// Validated upstream; an unparsable time here is a programmer error.
			continue
		}
		totalHours += hours
		if i == 0 || hours < minHours {
			minHours = hours
		}
		if hours > maxHours {
			maxHours = hours
		}
		totalQuality += l.Quality
	}

	n := float64(len(logs))
	stats.AvgDurationHours = models.SomeMetric(totalHours / n)
	stats.MinDurationHours = models.SomeMetric(minHours)
	stats.MaxDurationHours = models.SomeMetric(maxHours)
	stats.AvgQuality = models.SomeMetric(float64(totalQuality) / n)
	stats.LucidNightAvgQ = lucidNightQuality(logs, dreams)
	return stats
}

// lucidDays returns the set of calendar dates with at least one lucid dream.
func lucidDays(dreams []models.DreamRecord) map[string]bool {
	days := make(map[string]bool)
	for _, d := range dreams {
		if d.Lucid {
			days[d.Day()] = true
		}
	}
	return days
}

// dreamDays returns the set of calendar dates with at least one dream.
func dreamDays(dreams []models.DreamRecord) map[string]bool {
	days := make(map[string]bool)
	for _, d := range dreams {
		days[d.Day()] = true
	}
	return days
}

// qualityTable buckets dream-days by the sleep quality logged for that date
// and reports the lucid dream-day rate per bucket. A date counts only when it
// appears both in the logs and in the dream collection. Buckets that saw no
// dream-days report their rate as no data rather than zero.
func qualityTable(logs []models.DailyLog, dreams []models.DreamRecord) []models.QualityBucket {
	lucid := lucidDays(dreams)
	dreamed := dreamDays(dreams)

	table := make([]models.QualityBucket, models.MaxQuality)
	for i := range table {
		table[i].Quality = i + 1
	}

	for _, l := range logs {
		if !dreamed[l.Date] {
			continue
		}
		b := &table[l.Quality-1]
		b.DreamDays++
		if lucid[l.Date] {
			b.LucidDays++
		}
	}

	for i := range table {
		if table[i].DreamDays > 0 {
			table[i].LucidRate = models.SomeMetric(float64(table[i].LucidDays) / float64(table[i].DreamDays))
		}
	}
	return table
}

// lucidNightQuality averages the sleep quality of nights whose date carried
// a lucid dream. No lucid nights means no data.
func lucidNightQuality(logs []models.DailyLog, dreams []models.DreamRecord) models.Metric {
	lucid := lucidDays(dreams)
	total, n := 0, 0
	for _, l := range logs {
		if lucid[l.Date] {
			total += l.Quality
			n++
		}
	}
	if n == 0 {
		return models.Metric{}
	}
	return models.SomeMetric(float64(total) / float64(n))
}
