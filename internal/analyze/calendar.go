// Package analyze derives statistics from a journal snapshot.
package analyze

import (
	"time"

	"github.com/oneirolab/oneiro/pkg/models"
)

// MonthCalendar maps the dream collection onto the days of one target month.
// Every day of the month gets a cell; days from neighboring months do not.
// A day with any lucid dream is tagged lucid regardless of how many non-lucid
// dreams share the date.
func MonthCalendar(dreams []models.DreamRecord, year, month int) models.Calendar {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	perDay := make(map[string]int)
	lucidOn := make(map[string]bool)
	for _, d := range dreams {
		day := d.Day()
		perDay[day]++
		if d.Lucid {
			lucidOn[day] = true
		}
	}

	cal := models.Calendar{
		Year:  year,
		Month: month,
		Days:  make([]models.CalendarDay, 0, daysInMonth),
	}
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Format(models.DateLayout)
		cell := models.CalendarDay{
			Day:    day,
			Date:   date,
			Status: models.DayNone,
			Dreams: perDay[date],
		}
		switch {
		case lucidOn[date]:
			cell.Status = models.DayLucid
		case perDay[date] > 0:
			cell.Status = models.DayDream
		}
		cal.Days = append(cal.Days, cell)
	}
	return cal
}
