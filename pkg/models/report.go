// Package models contains domain models for oneiro.
package models

// Metric is a float statistic with an explicit no-data state. Averages over
// empty collections report Valid=false rather than a misleading zero.
type Metric struct {
	Value float64 `json:"value"`
	Valid bool    `json:"valid"`
}

// SomeMetric returns a populated metric.
func SomeMetric(v float64) Metric {
	return Metric{Value: v, Valid: true}
}

// WordCount pairs a normalized word with its occurrence count.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// SignCount pairs a dream sign with the number of lucid dreams reporting it.
type SignCount struct {
	Sign  string `json:"sign"`
	Count int    `json:"count"`
}

// DreamStats holds the dream-collection statistics.
type DreamStats struct {
	Total        int            `json:"total"`
	Lucid        int            `json:"lucid"`
	LucidPercent float64        `json:"lucid_percent"` // 0 when Total is 0
	ByDay        map[string]int `json:"by_day"`        // YYYY-MM-DD
	ByWeek       map[string]int `json:"by_week"`       // ISO year-Www
	ByMonth      map[string]int `json:"by_month"`      // YYYY-MM
	CommonSigns  []SignCount    `json:"common_signs"`
}

// QualityBucket is one row of the sleep-quality correlation table: the lucid
// dream-day rate among dream-days whose log carries this quality rating.
type QualityBucket struct {
	Quality   int    `json:"quality"`
	DreamDays int    `json:"dream_days"`
	LucidDays int    `json:"lucid_days"`
	LucidRate Metric `json:"lucid_rate"` // no data when DreamDays is 0
}

// SleepStats holds the daily-log sleep statistics.
type SleepStats struct {
	Nights           int             `json:"nights"`
	AvgDurationHours Metric          `json:"avg_duration_hours"`
	MinDurationHours Metric          `json:"min_duration_hours"`
	MaxDurationHours Metric          `json:"max_duration_hours"`
	AvgQuality       Metric          `json:"avg_quality"`
	LucidNightAvgQ   Metric          `json:"lucid_night_avg_quality"`
	QualityTable     []QualityBucket `json:"quality_table"` // always 5 rows, quality 1..5
}

// RealityCheckStats holds the reality-check aggregation.
type RealityCheckStats struct {
	Total          int     `json:"total"`
	LoggedDays     int     `json:"logged_days"`
	AvgPerDay      float64 `json:"avg_per_day"`                // 0 when no logged days
	MostActiveDay  string  `json:"most_active_day,omitempty"`  // earliest date wins ties
	LeastActiveDay string  `json:"least_active_day,omitempty"` // among logged days only
}

// DayStatus tags one calendar day on the dream calendar.
type DayStatus string

const (
	// DayNone marks a day with no journaled dream.
	DayNone DayStatus = "none"
	// DayDream marks a day with at least one non-lucid dream and no lucid ones.
	DayDream DayStatus = "dream"
	// DayLucid marks a day with at least one lucid dream.
	DayLucid DayStatus = "lucid"
)

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	Day    int       `json:"day"` // 1-based day of month
	Date   string    `json:"date"`
	Status DayStatus `json:"status"`
	Dreams int       `json:"dreams"`
}

// Calendar is the month grid for one target month. Days covers exactly the
// days of that month; padding for week alignment is the renderer's concern.
type Calendar struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Days  []CalendarDay `json:"days"`
}

// WeeklyReport summarizes the trailing seven days of journaling.
type WeeklyReport struct {
	Dreams        int     `json:"dreams"`
	Lucid         int     `json:"lucid"`
	PerDay        float64 `json:"per_day"`
	AvgWordLength Metric  `json:"avg_word_length"` // mean words per dream
}

// StatisticsReport is the composed analytics result. It is built fresh from
// a Snapshot on every request and never persisted by the core.
type StatisticsReport struct {
	Dreams        DreamStats        `json:"dreams"`
	Sleep         SleepStats        `json:"sleep"`
	RealityChecks RealityCheckStats `json:"reality_checks"`
	TopWords      []WordCount       `json:"top_words"`
	Calendar      Calendar          `json:"calendar"`
	Weekly        WeeklyReport      `json:"weekly"`
}
