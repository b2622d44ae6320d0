// Package main implements the oneiro CLI.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/oneirolab/oneiro/internal/db/sqlite"
	"github.com/oneirolab/oneiro/internal/techniques"
	"github.com/oneirolab/oneiro/pkg/models"
)

var (
	trainDuration int
	trainOutcome  string
	trainControl  int
	trainDate     string
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Lucid-dreaming technique practice",
}

var trainListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the technique catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, t := range techniques.Catalog {
			fmt.Printf("%-5s %s\n", t.Key, t.Name)
		}
		return nil
	},
}

var trainShowCmd = &cobra.Command{
	Use:   "show <technique>",
	Short: "Show a technique's description and steps",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := techniques.Lookup(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("--- %s ---\n%s\n\nSteps:\n", t.Name, t.Description)
		for i, step := range t.Steps {
			fmt.Printf("%d. %s\n", i+1, step)
		}
		return nil
	},
}

var trainLogCmd = &cobra.Command{
	Use:   "log <technique>",
	Short: "Record a practice session",
	Example: `  oneiro train log MILD --minutes 20 --outcome failed
  oneiro train log WBTB --minutes 45 --outcome full --control 4`,
	Args: cobra.ExactArgs(1),
	RunE: runTrainLog,
}

var trainStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show technique effectiveness",
	RunE:  runTrainStats,
}

func init() {
	trainLogCmd.Flags().IntVar(&trainDuration, "minutes", 0, "practice duration in minutes")
	trainLogCmd.Flags().StringVar(&trainOutcome, "outcome", string(models.OutcomeUnattempted),
		"outcome: unattempted, failed, partial, full")
	trainLogCmd.Flags().IntVar(&trainControl, "control", 0, "control level 1-5 (full lucidity only)")
	trainLogCmd.Flags().StringVar(&trainDate, "date", "", "practice date YYYY-MM-DD (default: today)")

	trainCmd.AddCommand(trainListCmd)
	trainCmd.AddCommand(trainShowCmd)
	trainCmd.AddCommand(trainLogCmd)
	trainCmd.AddCommand(trainStatsCmd)
}

func runTrainLog(cmd *cobra.Command, args []string) error {
	tech, err := techniques.Lookup(args[0])
	if err != nil {
		return err
	}

	outcome := models.PracticeOutcome(trainOutcome)
	switch outcome {
	case models.OutcomeUnattempted, models.OutcomeFailed, models.OutcomePartial, models.OutcomeFull:
	default:
		return fmt.Errorf("unknown outcome %q", trainOutcome)
	}
	if outcome == models.OutcomeFull && (trainControl < 1 || trainControl > 5) {
		return fmt.Errorf("--control 1-5 is required for a full-lucidity outcome")
	}
	if outcome != models.OutcomeFull {
		trainControl = 0
	}

	date := trainDate
	if date == "" {
		date = time.Now().Format(models.DateLayout)
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	record := &models.PracticeRecord{
		Technique:       tech.Key,
		Date:            date,
		DurationMinutes: trainDuration,
		Outcome:         outcome,
		ControlLevel:    trainControl,
	}
	if err := sqlite.NewPracticeStore(store).RecordPractice(context.Background(), record); err != nil {
		return err
	}
	fmt.Printf("Practice recorded: %s on %s (%s)\n", tech.Key, date, outcome)
	return nil
}

func runTrainStats(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	history, err := sqlite.NewPracticeStore(store).History(context.Background())
	if err != nil {
		return err
	}
	stats := techniques.Effectiveness(history)
	if len(stats) == 0 {
		fmt.Println("No practice recorded yet.")
		return nil
	}

	fmt.Println("TECHNIQUE EFFECTIVENESS")
	for _, s := range stats {
		fmt.Printf("%-5s %.1f%% success (%d/%d attempts), last practiced %s\n",
			s.Technique, s.SuccessRate, s.Successes, s.Attempts, s.LastPracticed)
		fmt.Printf("      %s\n", techniques.Recommendation(s.SuccessRate))
	}
	if len(stats) > 1 {
		fmt.Printf("\nMost effective: %s (%.1f%%), least effective: %s (%.1f%%)\n",
			stats[0].Technique, stats[0].SuccessRate,
			stats[len(stats)-1].Technique, stats[len(stats)-1].SuccessRate)
	}
	return nil
}
