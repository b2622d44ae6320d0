// Package analyze derives statistics from a journal snapshot.
package analyze

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/oneirolab/oneiro/pkg/models"
)

// CalendarSuite is a test suite for the month calendar.
type CalendarSuite struct {
	suite.Suite
}

func TestCalendarSuite(t *testing.T) {
	suite.Run(t, new(CalendarSuite))
}

// TestMonthCalendar_Empty tests that a month with zero dreams tags every day
// "none".
func (s *CalendarSuite) TestMonthCalendar_Empty() {
	cal := MonthCalendar(nil, 2024, 2)
	s.Equal(2024, cal.Year)
	s.Equal(2, cal.Month)
	s.Len(cal.Days, 29) // leap year
	for _, day := range cal.Days {
		s.Equal(models.DayNone, day.Status)
		s.Zero(day.Dreams)
	}
}

// TestMonthCalendar_DayCounts tests month lengths.
func (s *CalendarSuite) TestMonthCalendar_DayCounts() {
	tests := []struct {
		name  string
		year  int
		month int
		days  int
	}{
		{name: "january", year: 2024, month: 1, days: 31},
		{name: "february leap", year: 2024, month: 2, days: 29},
		{name: "february non-leap", year: 2023, month: 2, days: 28},
		{name: "april", year: 2024, month: 4, days: 30},
		{name: "december", year: 2024, month: 12, days: 31},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			cal := MonthCalendar(nil, tt.year, tt.month)
			s.Len(cal.Days, tt.days)
			s.Equal(1, cal.Days[0].Day)
			s.Equal(tt.days, cal.Days[len(cal.Days)-1].Day)
		})
	}
}

// TestMonthCalendar_LucidPrecedence tests tagging: a day with three dreams of
// which one is lucid tags lucid; a day with one non-lucid dream tags dream.
func (s *CalendarSuite) TestMonthCalendar_LucidPrecedence() {
	jan1 := time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC)
	jan2 := time.Date(2024, 1, 2, 7, 0, 0, 0, time.UTC)
	dreams := []models.DreamRecord{
		{ID: 1, CreatedAt: jan1},
		{ID: 2, CreatedAt: jan1, Lucid: true},
		{ID: 3, CreatedAt: jan1},
		{ID: 4, CreatedAt: jan2},
	}

	cal := MonthCalendar(dreams, 2024, 1)
	s.Equal(models.DayLucid, cal.Days[0].Status)
	s.Equal(3, cal.Days[0].Dreams)
	s.Equal(models.DayDream, cal.Days[1].Status)
	s.Equal(1, cal.Days[1].Dreams)
	s.Equal(models.DayNone, cal.Days[2].Status)
}

// TestMonthCalendar_OtherMonthsExcluded tests that dreams outside the target
// month leave its days untouched.
func (s *CalendarSuite) TestMonthCalendar_OtherMonthsExcluded() {
	dreams := []models.DreamRecord{
		{ID: 1, CreatedAt: time.Date(2024, 1, 31, 23, 0, 0, 0, time.UTC), Lucid: true},
		{ID: 2, CreatedAt: time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC)},
	}

	cal := MonthCalendar(dreams, 2024, 2)
	for _, day := range cal.Days {
		s.Equal(models.DayNone, day.Status)
	}
}
