// Package analyze derives statistics from a journal snapshot.
package analyze

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/oneirolab/oneiro/pkg/models"
)

// DreamsSuite is a test suite for dream statistics.
type DreamsSuite struct {
	suite.Suite
}

func TestDreamsSuite(t *testing.T) {
	suite.Run(t, new(DreamsSuite))
}

func dreamOn(id int64, day time.Time, lucid bool, sign string) models.DreamRecord {
	return models.DreamRecord{
		ID:        id,
		CreatedAt: day,
		Content:   "placeholder",
		Lucid:     lucid,
		DreamSign: sign,
	}
}

// TestDreamStatistics_LucidPercent covers the 3+1 dream scenario: one lucid
// dream out of four gives 25%.
func (s *DreamsSuite) TestDreamStatistics_LucidPercent() {
	jan1 := time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC)
	jan2 := time.Date(2024, 1, 2, 7, 0, 0, 0, time.UTC)
	dreams := []models.DreamRecord{
		dreamOn(1, jan1, false, ""),
		dreamOn(2, jan1, true, "hands"),
		dreamOn(3, jan1, false, ""),
		dreamOn(4, jan2, false, ""),
	}

	stats := DreamStatistics(dreams)
	s.Equal(4, stats.Total)
	s.Equal(1, stats.Lucid)
	s.InDelta(25.0, stats.LucidPercent, 1e-9)
	s.Equal(3, stats.ByDay["2024-01-01"])
	s.Equal(1, stats.ByDay["2024-01-02"])
	s.Equal(4, stats.ByWeek["2024-W01"])
	s.Equal(4, stats.ByMonth["2024-01"])
}

// TestDreamStatistics_Empty tests the zero-dream collection.
func (s *DreamsSuite) TestDreamStatistics_Empty() {
	stats := DreamStatistics(nil)
	s.Equal(0, stats.Total)
	s.Zero(stats.LucidPercent)
	s.Empty(stats.ByDay)
	s.Empty(stats.CommonSigns)
}

// TestDreamStatistics_LucidPercentBounds checks the [0,100] property.
func (s *DreamsSuite) TestDreamStatistics_LucidPercentBounds() {
	day := time.Date(2024, 3, 5, 6, 0, 0, 0, time.UTC)
	tests := []struct {
		name   string
		dreams []models.DreamRecord
	}{
		{name: "none lucid", dreams: []models.DreamRecord{dreamOn(1, day, false, "")}},
		{name: "all lucid", dreams: []models.DreamRecord{dreamOn(1, day, true, ""), dreamOn(2, day, true, "")}},
		{name: "mixed", dreams: []models.DreamRecord{dreamOn(1, day, true, ""), dreamOn(2, day, false, "")}},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			stats := DreamStatistics(tt.dreams)
			s.GreaterOrEqual(stats.LucidPercent, 0.0)
			s.LessOrEqual(stats.LucidPercent, 100.0)
		})
	}
}

// TestDreamStatistics_Signs tests the dream-sign ranking: lucid dreams only,
// ties broken by first occurrence.
func (s *DreamsSuite) TestDreamStatistics_Signs() {
	day := time.Date(2024, 2, 10, 6, 0, 0, 0, time.UTC)
	dreams := []models.DreamRecord{
		dreamOn(1, day, true, "hands"),
		dreamOn(2, day, true, "clocks"),
		dreamOn(3, day.AddDate(0, 0, 1), true, "hands"),
		dreamOn(4, day.AddDate(0, 0, 1), true, "mirrors"),
	}

	stats := DreamStatistics(dreams)
	s.Equal([]models.SignCount{
		{Sign: "hands", Count: 2},
		{Sign: "clocks", Count: 1},
		{Sign: "mirrors", Count: 1},
	}, stats.CommonSigns)
}

// TestDreamStatistics_WeekBoundary tests ISO week grouping across a year end.
func (s *DreamsSuite) TestDreamStatistics_WeekBoundary() {
	// 2024-12-30 and 2025-01-02 both fall in ISO week 2025-W01.
	dreams := []models.DreamRecord{
		dreamOn(1, time.Date(2024, 12, 30, 6, 0, 0, 0, time.UTC), false, ""),
		dreamOn(2, time.Date(2025, 1, 2, 6, 0, 0, 0, time.UTC), false, ""),
	}
	stats := DreamStatistics(dreams)
	s.Equal(2, stats.ByWeek["2025-W01"])
	s.Equal(1, stats.ByMonth["2024-12"])
	s.Equal(1, stats.ByMonth["2025-01"])
}

// TestWeeklySummary tests the trailing-week report.
func (s *DreamsSuite) TestWeeklySummary() {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	dreams := []models.DreamRecord{
		{ID: 1, CreatedAt: now.AddDate(0, 0, -1), Lucid: true, Content: "one two three four"},
		{ID: 2, CreatedAt: now.AddDate(0, 0, -3), Content: "five six"},
		{ID: 3, CreatedAt: now.AddDate(0, 0, -20), Content: "too old to count"},
	}

	report := WeeklySummary(dreams, now)
	s.Equal(2, report.Dreams)
	s.Equal(1, report.Lucid)
	s.InDelta(2.0/7.0, report.PerDay, 1e-9)
	s.True(report.AvgWordLength.Valid)
	s.InDelta(3.0, report.AvgWordLength.Value, 1e-9)
}

// TestWeeklySummary_Empty tests the no-dream week.
func (s *DreamsSuite) TestWeeklySummary_Empty() {
	report := WeeklySummary(nil, time.Now())
	s.Zero(report.Dreams)
	s.False(report.AvgWordLength.Valid)
}
