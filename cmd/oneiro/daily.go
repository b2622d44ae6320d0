// Package main implements the oneiro CLI.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/oneirolab/oneiro/internal/db/sqlite"
	"github.com/oneirolab/oneiro/pkg/models"
)

var (
	dailyDate     string
	dailyBedtime  string
	dailyWakeTime string
	dailyQuality  int
	dailyFeeling  string
	dailyChecks   int
	dailyNotes    string
	dailyDreamIDs []int64
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Record or update the daily sleep log",
	Long:  `Record bedtime, wake time, sleep quality, and reality checks for one day. Running it again for the same date replaces the entry.`,
	Example: `  oneiro daily --bedtime 23:00 --wake 07:00 --quality 4 --checks 6
  oneiro daily --date 2026-08-29 --bedtime 00:30 --wake 08:15 --quality 3 --feeling "groggy"`,
	RunE: runDaily,
}

func init() {
	dailyCmd.Flags().StringVar(&dailyDate, "date", "", "log date YYYY-MM-DD (default: today)")
	dailyCmd.Flags().StringVar(&dailyBedtime, "bedtime", "", "bedtime HH:MM (required)")
	dailyCmd.Flags().StringVar(&dailyWakeTime, "wake", "", "wake time HH:MM (required)")
	dailyCmd.Flags().IntVar(&dailyQuality, "quality", 0, "sleep quality 1-5 (required)")
	dailyCmd.Flags().StringVar(&dailyFeeling, "feeling", "", "how you felt on waking")
	dailyCmd.Flags().IntVar(&dailyChecks, "checks", 0, "reality checks performed")
	dailyCmd.Flags().StringVar(&dailyNotes, "notes", "", "additional notes")
	dailyCmd.Flags().Int64SliceVar(&dailyDreamIDs, "dreams", nil, "dream record IDs logged this day")
	dailyCmd.MarkFlagRequired("bedtime")
	dailyCmd.MarkFlagRequired("wake")
	dailyCmd.MarkFlagRequired("quality")
}

func runDaily(cmd *cobra.Command, args []string) error {
	date := dailyDate
	if date == "" {
		date = time.Now().Format(models.DateLayout)
	}
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return fmt.Errorf("bad date %q: want YYYY-MM-DD", date)
	}
	if dailyQuality < models.MinQuality || dailyQuality > models.MaxQuality {
		return fmt.Errorf("quality %d outside [%d,%d]", dailyQuality, models.MinQuality, models.MaxQuality)
	}
	if dailyChecks < 0 {
		return fmt.Errorf("reality checks must not be negative")
	}

	entry := &models.DailyLog{
		Date:          date,
		Bedtime:       dailyBedtime,
		WakeTime:      dailyWakeTime,
		Quality:       dailyQuality,
		WakeFeeling:   dailyFeeling,
		RealityChecks: dailyChecks,
		Notes:         dailyNotes,
		DreamIDs:      dailyDreamIDs,
	}
	if _, err := entry.SleepHours(); err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	logStore := sqlite.NewLogStore(store)
	ctx := context.Background()
	existing, err := logStore.GetLogByDate(ctx, date)
	if err != nil {
		return err
	}
	if err := logStore.UpsertLog(ctx, entry); err != nil {
		return err
	}

	hours, _ := entry.SleepHours()
	if existing != nil {
		fmt.Printf("Daily log for %s updated (%.1fh sleep, quality %d/5)\n", date, hours, entry.Quality)
	} else {
		fmt.Printf("Daily log for %s recorded (%.1fh sleep, quality %d/5)\n", date, hours, entry.Quality)
	}
	return nil
}

var rcCmd = &cobra.Command{
	Use:   "rc",
	Short: "Show a random reality-check prompt",
	RunE: func(cmd *cobra.Command, args []string) error {
		prompts := loadSettings().RealityCheckPrompts
		if len(prompts) == 0 {
			return fmt.Errorf("no reality-check prompts configured")
		}
		fmt.Printf("\nREALITY CHECK: %s\n", prompts[rand.Intn(len(prompts))])
		return nil
	},
}
