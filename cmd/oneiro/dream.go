// Package main implements the oneiro CLI.
package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oneirolab/oneiro/internal/db/sqlite"
	"github.com/oneirolab/oneiro/pkg/models"
)

var dreamCmd = &cobra.Command{
	Use:   "dream",
	Short: "Manage dream records",
}

var (
	dreamTitle   string
	dreamContent string
	dreamTags    []string
	dreamLucid   bool
	dreamSign    string
)

var dreamAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a dream record",
	Example: `  oneiro dream add --title "Flying over water" --content "..." --tags flying,water
  oneiro dream add --title "False awakening" --content "..." --lucid --sign "hands looked wrong"`,
	RunE: runDreamAdd,
}

var dreamListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all dream records",
	RunE:  runDreamList,
}

var dreamViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show one dream record in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runDreamView,
}

var dreamSearchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search dreams by title, content, or tag",
	Args:  cobra.ExactArgs(1),
	RunE:  runDreamSearch,
}

func init() {
	dreamAddCmd.Flags().StringVar(&dreamTitle, "title", "", "dream title")
	dreamAddCmd.Flags().StringVar(&dreamContent, "content", "", "dream content")
	dreamAddCmd.Flags().StringSliceVar(&dreamTags, "tags", nil, "comma-separated tags")
	dreamAddCmd.Flags().BoolVar(&dreamLucid, "lucid", false, "mark the dream lucid")
	dreamAddCmd.Flags().StringVar(&dreamSign, "sign", "", "dream sign noticed (lucid dreams only)")

	dreamCmd.AddCommand(dreamAddCmd)
	dreamCmd.AddCommand(dreamListCmd)
	dreamCmd.AddCommand(dreamViewCmd)
	dreamCmd.AddCommand(dreamSearchCmd)
}

func runDreamAdd(cmd *cobra.Command, args []string) error {
	if dreamSign != "" && !dreamLucid {
		return fmt.Errorf("--sign requires --lucid: dream signs belong to lucid dreams")
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	dream := &models.DreamRecord{
		Title:     dreamTitle,
		Content:   dreamContent,
		Tags:      dreamTags,
		Lucid:     dreamLucid,
		DreamSign: dreamSign,
	}
	id, err := sqlite.NewDreamStore(store).AddDream(context.Background(), dream)
	if err != nil {
		return err
	}
	fmt.Printf("Dream #%d added\n", id)
	return nil
}

func runDreamList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	dreams, err := sqlite.NewDreamStore(store).ListDreams(context.Background())
	if err != nil {
		return err
	}
	if len(dreams) == 0 {
		fmt.Println("No dreams recorded yet.")
		return nil
	}

	fmt.Printf("%-5s %-12s %-30s %s\n", "ID", "Date", "Title", "Tags")
	for _, d := range dreams {
		fmt.Printf("%-5d %-12s %-30s %s\n", d.ID, d.Day(), d.Title, strings.Join(d.Tags, ", "))
	}
	return nil
}

func runDreamView(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("bad dream id %q", args[0])
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	d, err := sqlite.NewDreamStore(store).GetDreamByID(context.Background(), id)
	if err != nil {
		return err
	}
	if d == nil {
		return fmt.Errorf("dream #%d not found", id)
	}

	fmt.Printf("--- Dream #%d ---\n", d.ID)
	fmt.Printf("Date:  %s\n", d.Day())
	fmt.Printf("Title: %s\n", d.Title)
	fmt.Printf("Tags:  %s\n", strings.Join(d.Tags, ", "))
	fmt.Printf("\n%s\n", d.Content)
	if d.Lucid {
		fmt.Println("\nLucid: yes")
		if d.DreamSign != "" {
			fmt.Printf("Dream sign: %s\n", d.DreamSign)
		}
	}
	return nil
}

func runDreamSearch(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	dreams, err := sqlite.NewDreamStore(store).SearchDreams(context.Background(), args[0])
	if err != nil {
		return err
	}
	if len(dreams) == 0 {
		fmt.Printf("No dreams found matching %q\n", args[0])
		return nil
	}
	for _, d := range dreams {
		fmt.Printf("#%-4d %s  %s\n", d.ID, d.Day(), d.Title)
	}
	return nil
}
