// Package analyze derives statistics from a journal snapshot.
package analyze

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/oneirolab/oneiro/pkg/models"
)

// DefaultTopWords bounds the word-frequency ranking when no limit is given.
const DefaultTopWords = 10

// Options configures one report computation.
type Options struct {
	// TopWords bounds the word-frequency ranking. Zero means DefaultTopWords;
	// negative values are rejected.
	TopWords int
	// Year and Month select the calendar target. Zero for both means the
	// month of Now.
	Year  int
	Month int
	// StopWords overrides the built-in stop-word set when non-nil.
	StopWords map[string]bool
	// Now anchors the weekly report; the zero value means time.Now().
	Now time.Time
}

// normalize fills in defaults and validates the options.
func (o Options) normalize() (Options, error) {
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	if o.TopWords == 0 {
		o.TopWords = DefaultTopWords
	}
	if o.TopWords < 0 {
		return o, &ConfigError{Field: "top_words", Detail: "must be positive"}
	}
	if o.Year == 0 && o.Month == 0 {
		o.Year, o.Month = o.Now.Year(), int(o.Now.Month())
	}
	if o.Month < 1 || o.Month > 12 {
		return o, &ConfigError{Field: "month", Detail: fmt.Sprintf("%d is not a calendar month", o.Month)}
	}
	if o.Year < 1 {
		return o, &ConfigError{Field: "year", Detail: fmt.Sprintf("%d is not a calendar year", o.Year)}
	}
	return o, nil
}

// ValidateSnapshot fails fast on any record violating a journal invariant:
// duplicate dream IDs, duplicate log dates, quality outside [1,5], negative
// reality-check counts, unparsable clock times, or a dream sign on a
// non-lucid dream. Silent correction could mislead the user about their own
// data, so the first violation aborts the whole report.
func ValidateSnapshot(snap models.Snapshot) error {
	seenIDs := make(map[int64]bool, len(snap.Dreams))
	for _, d := range snap.Dreams {
		if seenIDs[d.ID] {
			return &MalformedInputError{Kind: "duplicate-id", DreamID: d.ID, Detail: "id appears more than once"}
		}
		seenIDs[d.ID] = true
		if !d.Lucid && d.DreamSign != "" {
			return &MalformedInputError{Kind: "dream-sign", DreamID: d.ID, Detail: "dream sign on a non-lucid dream"}
		}
	}

	seenDates := make(map[string]bool, len(snap.Logs))
	for _, l := range snap.Logs {
		if seenDates[l.Date] {
			return &MalformedInputError{Kind: "duplicate-date", Date: l.Date, Detail: "date appears more than once"}
		}
		seenDates[l.Date] = true
		if l.Quality < models.MinQuality || l.Quality > models.MaxQuality {
			return &MalformedInputError{Kind: "quality-range", Date: l.Date,
				Detail: fmt.Sprintf("quality %d outside [%d,%d]", l.Quality, models.MinQuality, models.MaxQuality)}
		}
		if l.RealityChecks < 0 {
			return &MalformedInputError{Kind: "reality-checks", Date: l.Date,
				Detail: fmt.Sprintf("negative count %d", l.RealityChecks)}
		}
		if _, err := l.SleepHours(); err != nil {
			return &MalformedInputError{Kind: "clock-time", Date: l.Date, Detail: err.Error()}
		}
	}
	return nil
}

// Report assembles the full statistics report from one snapshot. Options are
// validated first, then the snapshot; only then do the calculators run. They
// all observe the same immutable snapshot, so they run concurrently.
func Report(snap models.Snapshot, opts Options) (*models.StatisticsReport, error) {
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	if err := ValidateSnapshot(snap); err != nil {
		return nil, err
	}

	var report models.StatisticsReport
	var g errgroup.Group
	g.Go(func() error {
		report.Dreams = DreamStatistics(snap.Dreams)
		return nil
	})
	g.Go(func() error {
		report.Sleep = SleepStatistics(snap.Logs, snap.Dreams)
		return nil
	})
	g.Go(func() error {
		report.RealityChecks = RealityCheckTotals(snap.Logs)
		return nil
	})
	g.Go(func() error {
		report.TopWords = WordFrequencies(snap.Dreams, opts.StopWords, opts.TopWords)
		return nil
	})
	g.Go(func() error {
		report.Calendar = MonthCalendar(snap.Dreams, opts.Year, opts.Month)
		return nil
	})
	g.Go(func() error {
		report.Weekly = WeeklySummary(snap.Dreams, opts.Now)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &report, nil
}
