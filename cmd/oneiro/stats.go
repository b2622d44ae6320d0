// Package main implements the oneiro CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/oneirolab/oneiro/internal/analyze"
	"github.com/oneirolab/oneiro/internal/config"
	"github.com/oneirolab/oneiro/internal/db/sqlite"
	"github.com/oneirolab/oneiro/pkg/models"
)

var (
	statsTopWords int
	calendarYear  int
	calendarMonth int
	exportPath    string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dream, sleep, and reality-check statistics",
	RunE:  runStats,
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the weekly report",
	RunE:  runReport,
}

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show the dream calendar for a month",
	RunE:  runCalendar,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the journal snapshot and statistics as JSON",
	RunE:  runExport,
}

func init() {
	statsCmd.Flags().IntVar(&statsTopWords, "top-words", 0, "word ranking size (default from settings)")
	calendarCmd.Flags().IntVar(&calendarYear, "year", 0, "target year (default: current)")
	calendarCmd.Flags().IntVar(&calendarMonth, "month", 0, "target month 1-12 (default: current)")
	exportCmd.Flags().StringVar(&exportPath, "out", "", "output file (default: stdout)")
}

// buildReport loads a snapshot and computes the full statistics report.
func buildReport(year, month, topWords int) (*models.StatisticsReport, error) {
	store, err := openStore()
	if err != nil {
		return nil, err
	}
	defer store.Close()

	snap, err := sqlite.LoadSnapshot(context.Background(), store)
	if err != nil {
		return nil, err
	}

	settings := loadSettings()
	if topWords == 0 {
		topWords = settings.TopWords
	}
	stopWords, err := config.LoadStopWords(settings.StopWordsFile)
	if err != nil {
		return nil, fmt.Errorf("stop-word file: %w", err)
	}

	return analyze.Report(snap, analyze.Options{
		TopWords:  topWords,
		Year:      year,
		Month:     month,
		StopWords: stopWords,
	})
}

func runStats(cmd *cobra.Command, args []string) error {
	report, err := buildReport(0, 0, statsTopWords)
	if err != nil {
		return err
	}

	fmt.Println("--- DREAM & SLEEP STATISTICS ---")

	d := report.Dreams
	fmt.Println("\nDREAMS:")
	fmt.Printf("Total dreams recorded: %d\n", d.Total)
	fmt.Printf("Lucid dreams: %d (%.1f%%)\n", d.Lucid, d.LucidPercent)
	if len(d.CommonSigns) > 0 {
		fmt.Println("Most common dream signs:")
		for _, sc := range d.CommonSigns {
			fmt.Printf("  %s (%d)\n", sc.Sign, sc.Count)
		}
	}

	if len(report.TopWords) > 0 {
		fmt.Println("\nMost frequent dream words:")
		for i, wc := range report.TopWords {
			fmt.Printf("%d. %s (%d occurrences)\n", i+1, wc.Word, wc.Count)
		}
	}

	s := report.Sleep
	fmt.Println("\nSLEEP:")
	if s.Nights == 0 {
		fmt.Println("No sleep data recorded yet.")
	} else {
		fmt.Printf("Nights tracked: %d\n", s.Nights)
		fmt.Printf("Average sleep duration: %s hours\n", fmtMetric(s.AvgDurationHours))
		fmt.Printf("Min sleep: %sh, max sleep: %sh\n", fmtMetric(s.MinDurationHours), fmtMetric(s.MaxDurationHours))
		fmt.Printf("Average sleep quality: %s/5\n", fmtMetric(s.AvgQuality))
		fmt.Printf("Average quality on lucid nights: %s/5\n", fmtMetric(s.LucidNightAvgQ))

		fmt.Println("Quality vs lucidity:")
		for _, b := range s.QualityTable {
			if !b.LucidRate.Valid {
				fmt.Printf("  quality %d: no data\n", b.Quality)
				continue
			}
			fmt.Printf("  quality %d: %.0f%% lucid (%d/%d dream-days)\n",
				b.Quality, b.LucidRate.Value*100, b.LucidDays, b.DreamDays)
		}
	}

	rc := report.RealityChecks
	fmt.Println("\nREALITY CHECKS:")
	fmt.Printf("Total recorded: %d\n", rc.Total)
	if rc.LoggedDays > 0 {
		fmt.Printf("Average per logged day: %.1f\n", rc.AvgPerDay)
		fmt.Printf("Most active day: %s, least active: %s\n", rc.MostActiveDay, rc.LeastActiveDay)
	}

	if len(d.ByDay) > 0 {
		fmt.Println("\nDREAM CALENDAR (last 30 logged days):")
		dates := make([]string, 0, len(d.ByDay))
		for date := range d.ByDay {
			dates = append(dates, date)
		}
		sort.Strings(dates)
		if len(dates) > 30 {
			dates = dates[len(dates)-30:]
		}
		for _, date := range dates {
			fmt.Printf("%s: %s %d\n", date, stars(d.ByDay[date]), d.ByDay[date])
		}
	}
	return nil
}

func runReport(cmd *cobra.Command, args []string) error {
	report, err := buildReport(0, 0, 0)
	if err != nil {
		return err
	}

	w := report.Weekly
	fmt.Println("--- Weekly Report ---")
	fmt.Printf("Dreams this week: %d\n", w.Dreams)
	fmt.Printf("Lucid dreams: %d\n", w.Lucid)
	fmt.Printf("Dream frequency: %.1f per day\n", w.PerDay)
	if w.AvgWordLength.Valid {
		fmt.Printf("Average dream length: %.0f words\n", w.AvgWordLength.Value)
	}
	return nil
}

func runCalendar(cmd *cobra.Command, args []string) error {
	report, err := buildReport(calendarYear, calendarMonth, 0)
	if err != nil {
		return err
	}

	cal := report.Calendar
	fmt.Printf("Dream calendar %04d-%02d  (* dream, L lucid)\n", cal.Year, cal.Month)
	for _, day := range cal.Days {
		marker := "."
		switch day.Status {
		case models.DayDream:
			marker = "*"
		case models.DayLucid:
			marker = "L"
		}
		fmt.Printf("%2d %s", day.Day, marker)
		if day.Day%7 == 0 {
			fmt.Println()
		} else {
			fmt.Print("   ")
		}
	}
	fmt.Println()
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	snap, err := sqlite.LoadSnapshot(context.Background(), store)
	if err != nil {
		return err
	}
	report, err := analyze.Report(snap, analyze.Options{TopWords: loadSettings().TopWords})
	if err != nil {
		return err
	}

	out := struct {
		ExportedAt time.Time                `json:"exported_at"`
		Snapshot   models.Snapshot          `json:"snapshot"`
		Report     *models.StatisticsReport `json:"report"`
	}{time.Now(), snap, report}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	if exportPath == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(exportPath, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("Exported to %s\n", exportPath)
	return nil
}

// fmtMetric renders a metric or its no-data marker.
func fmtMetric(m models.Metric) string {
	if !m.Valid {
		return "no data"
	}
	return fmt.Sprintf("%.1f", m.Value)
}

// stars renders a small bar for calendar counts.
func stars(n int) string {
	return strings.Repeat("*", n)
}
