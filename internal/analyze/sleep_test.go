// Package analyze derives statistics from a journal snapshot.
package analyze

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/oneirolab/oneiro/pkg/models"
)

// SleepSuite is a test suite for sleep statistics.
type SleepSuite struct {
	suite.Suite
}

func TestSleepSuite(t *testing.T) {
	suite.Run(t, new(SleepSuite))
}

func nightLog(date, bed, wake string, quality int) models.DailyLog {
	return models.DailyLog{Date: date, Bedtime: bed, WakeTime: wake, Quality: quality}
}

// TestSleepStatistics_Averages tests duration and quality averaging.
func (s *SleepSuite) TestSleepStatistics_Averages() {
	logs := []models.DailyLog{
		nightLog("2024-02-01", "23:00", "07:00", 4), // 8h
		nightLog("2024-02-02", "00:00", "06:00", 2), // 6h
	}

	stats := SleepStatistics(logs, nil)
	s.Equal(2, stats.Nights)
	s.True(stats.AvgDurationHours.Valid)
	s.InDelta(7.0, stats.AvgDurationHours.Value, 1e-9)
	s.InDelta(6.0, stats.MinDurationHours.Value, 1e-9)
	s.InDelta(8.0, stats.MaxDurationHours.Value, 1e-9)
	s.InDelta(3.0, stats.AvgQuality.Value, 1e-9)
	s.False(stats.LucidNightAvgQ.Valid)
}

// TestSleepStatistics_Empty tests that empty collections report no data.
func (s *SleepSuite) TestSleepStatistics_Empty() {
	stats := SleepStatistics(nil, nil)
	s.Zero(stats.Nights)
	s.False(stats.AvgDurationHours.Valid)
	s.False(stats.AvgQuality.Valid)
	s.Len(stats.QualityTable, 5)
	for _, b := range stats.QualityTable {
		s.False(b.LucidRate.Valid)
	}
}

// TestSleepStatistics_ReorderInvariant tests that the average does not
// depend on input order.
func (s *SleepSuite) TestSleepStatistics_ReorderInvariant() {
	logs := []models.DailyLog{
		nightLog("2024-02-01", "23:00", "07:00", 4),
		nightLog("2024-02-02", "22:30", "05:30", 3),
		nightLog("2024-02-03", "01:00", "09:30", 5),
	}
	reversed := []models.DailyLog{logs[2], logs[1], logs[0]}

	a := SleepStatistics(logs, nil)
	b := SleepStatistics(reversed, nil)
	s.Equal(a.AvgDurationHours, b.AvgDurationHours)
	s.Equal(a.AvgQuality, b.AvgQuality)
	s.Equal(a.MinDurationHours, b.MinDurationHours)
	s.Equal(a.MaxDurationHours, b.MaxDurationHours)
}

// TestQualityTable tests the quality-vs-lucidity breakdown: dream-days only,
// zero-observation buckets report no data.
func (s *SleepSuite) TestQualityTable() {
	day := func(d int) time.Time { return time.Date(2024, 3, d, 6, 0, 0, 0, time.UTC) }
	dreams := []models.DreamRecord{
		{ID: 1, CreatedAt: day(1), Lucid: true},
		{ID: 2, CreatedAt: day(2), Lucid: false},
		{ID: 3, CreatedAt: day(3), Lucid: false},
	}
	logs := []models.DailyLog{
		nightLog("2024-03-01", "23:00", "07:00", 4), // lucid dream-day
		nightLog("2024-03-02", "23:00", "07:00", 4), // non-lucid dream-day
		nightLog("2024-03-03", "23:00", "07:00", 2), // non-lucid dream-day
		nightLog("2024-03-04", "23:00", "07:00", 5), // no dream that day
	}

	stats := SleepStatistics(logs, dreams)
	table := stats.QualityTable
	s.Len(table, 5)

	// Quality 4 saw two dream-days, one lucid.
	s.Equal(2, table[3].DreamDays)
	s.Equal(1, table[3].LucidDays)
	s.True(table[3].LucidRate.Valid)
	s.InDelta(0.5, table[3].LucidRate.Value, 1e-9)

	// Quality 2 saw one dream-day, none lucid: rate 0, still valid.
	s.Equal(1, table[1].DreamDays)
	s.True(table[1].LucidRate.Valid)
	s.Zero(table[1].LucidRate.Value)

	// Quality 5 had a log but no dream that day: no data, not zero.
	s.Zero(table[4].DreamDays)
	s.False(table[4].LucidRate.Valid)

	// Quality 1 and 3 never appeared.
	s.False(table[0].LucidRate.Valid)
	s.False(table[2].LucidRate.Valid)
}

// TestLucidNightQuality tests the lucid-night quality average.
func (s *SleepSuite) TestLucidNightQuality() {
	day := func(d int) time.Time { return time.Date(2024, 3, d, 6, 0, 0, 0, time.UTC) }
	dreams := []models.DreamRecord{
		{ID: 1, CreatedAt: day(1), Lucid: true},
		{ID: 2, CreatedAt: day(2), Lucid: true},
	}
	logs := []models.DailyLog{
		nightLog("2024-03-01", "23:00", "07:00", 5),
		nightLog("2024-03-02", "23:00", "07:00", 3),
		nightLog("2024-03-03", "23:00", "07:00", 1), // no lucid dream
	}

	stats := SleepStatistics(logs, dreams)
	s.True(stats.LucidNightAvgQ.Valid)
	s.InDelta(4.0, stats.LucidNightAvgQ.Value, 1e-9)
}
