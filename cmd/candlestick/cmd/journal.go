package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/benwaldner/candlestick/journal"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query recorded pattern matches",
	Long: `Query and display pattern match records from a SQLite journal.

Subcommands:
  match    - Get details of a specific match by ID
  pattern  - List matches for a pattern
  day      - List matches on a specific day

Examples:
  candlestick journal match 01J3ZK...
  candlestick journal pattern bullish-engulfing
  candlestick journal day 2026-08-27`,
}

var journalMatchCmd = &cobra.Command{
	Use:   "match <match-id>",
	Short: "Get details of a specific match",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalMatch,
}

var journalPatternCmd = &cobra.Command{
	Use:   "pattern <name>",
	Short: "List matches for a pattern",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalPattern,
}

var journalDayCmd = &cobra.Command{
	Use:   "day <YYYY-MM-DD>",
	Short: "List matches on a specific day",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalDay,
}

var journalDBPath string

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalMatchCmd)
	journalCmd.AddCommand(journalPatternCmd)
	journalCmd.AddCommand(journalDayCmd)

	journalCmd.PersistentFlags().StringVarP(&journalDBPath, "db", "d", "./matches.sqlite", "path to SQLite match journal")
}

func runJournalMatch(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	rec, err := j.GetMatch(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Match:    %s\n", rec.MatchID)
	fmt.Printf("Source:   %s\n", rec.Source)
	fmt.Printf("Pattern:  %s\n", rec.Pattern)
	fmt.Printf("Index:    %d\n", rec.Index)
	fmt.Printf("Time:     %s\n", rec.Time.Format(time.RFC3339))
	fmt.Printf("OHLC:     %g / %g / %g / %g\n", rec.Open, rec.High, rec.Low, rec.Close)
	return nil
}

func runJournalPattern(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	recs, err := j.ListByPattern(args[0])
	if err != nil {
		return err
	}
	renderMatches(recs)
	return nil
}

func runJournalDay(cmd *cobra.Command, args []string) error {
	day, err := time.ParseInLocation("2006-01-02", args[0], time.Local)
	if err != nil {
		return fmt.Errorf("parse day: %w", err)
	}

	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	recs, err := j.ListByDay(day)
	if err != nil {
		return err
	}
	renderMatches(recs)
	return nil
}

func renderMatches(recs []journal.MatchRecord) {
	if len(recs) == 0 {
		fmt.Println("No matches found")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Match ID", "Source", "Pattern", "Index", "Time", "Close"})
	for _, rec := range recs {
		t.AppendRow(table.Row{
			rec.MatchID, rec.Source, rec.Pattern, rec.Index,
			rec.Time.Format("2006-01-02 15:04"), fmt.Sprintf("%g", rec.Close),
		})
	}
	t.Render()
}
