package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/benwaldner/candlestick/config"
	"github.com/benwaldner/candlestick/id"
	"github.com/benwaldner/candlestick/journal"
	"github.com/benwaldner/candlestick/market"
	"github.com/benwaldner/candlestick/patterns"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan candle data for chart patterns",
	Long: `Scan a CSV candle file for candlestick chart patterns.

The file must have the header time,open,high,low,close[,volume] with
RFC3339 timestamps, rows oldest first. By default every registered
pattern is scanned; use --pattern to narrow the set, and "candlestick
patterns" to list the names.

Examples:
  candlestick scan --file eurusd.csv
  candlestick scan --file eurusd.csv --pattern hammer --pattern bullish-engulfing
  candlestick scan --config scan.yaml
  candlestick scan --file eurusd.csv --journal-db ./matches.sqlite`,
	RunE: runScan,
}

var (
	scanConfigPath string
	scanFile       string
	scanPatterns   []string
	scanJournalDB  string
	scanJournalCSV string
)

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVarP(&scanConfigPath, "config", "c", "", "path to scan config file")
	scanCmd.Flags().StringVarP(&scanFile, "file", "f", "", "path to CSV candle file")
	scanCmd.Flags().StringArrayVarP(&scanPatterns, "pattern", "p", nil, "pattern name to scan for (repeatable; default all)")
	scanCmd.Flags().StringVar(&scanJournalDB, "journal-db", "", "record matches to this SQLite database")
	scanCmd.Flags().StringVar(&scanJournalCSV, "journal-csv", "", "record matches to this CSV file")
}

// scanConfig assembles the effective config: the --config file if
// given, overridden by any explicit flags.
func scanConfig() (*config.Config, error) {
	cfg := config.Default()
	cfg.Journal.Type = "none"

	if scanConfigPath != "" {
		loaded, err := config.LoadFromFile(scanConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if scanFile != "" {
		cfg.Data.File = scanFile
	}
	if len(scanPatterns) > 0 {
		cfg.Scan.Patterns = scanPatterns
	}
	if scanJournalDB != "" {
		cfg.Journal.Type = "sqlite"
		cfg.Journal.DBPath = scanJournalDB
	}
	if scanJournalCSV != "" {
		cfg.Journal.Type = "csv"
		cfg.Journal.MatchesFile = scanJournalCSV
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := scanConfig()
	if err != nil {
		return err
	}

	candles, err := market.LoadCSV(cfg.Data.File)
	if err != nil {
		return fmt.Errorf("load candles: %w", err)
	}

	selected := patterns.All()
	if len(cfg.Scan.Patterns) > 0 {
		selected = selected[:0]
		for _, name := range cfg.Scan.Patterns {
			p, ok := patterns.Lookup(name)
			if !ok {
				return fmt.Errorf("unknown pattern: %s", name)
			}
			selected = append(selected, p)
		}
	}

	source := cfg.Data.Source
	if source == "" {
		source = filepath.Base(cfg.Data.File)
	}

	var j journal.Journal
	switch cfg.Journal.Type {
	case "sqlite":
		j, err = journal.NewSQLite(cfg.Journal.DBPath)
	case "csv":
		j, err = journal.NewCSV(cfg.Journal.MatchesFile)
	}
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	if j != nil {
		defer j.Close()
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Matches: %s (%d candles)", source, len(candles))
	t.AppendHeader(table.Row{"Pattern", "Index", "Time", "Open", "High", "Low", "Close"})

	total := 0
	for _, p := range selected {
		idxs, err := p.ScanIndexes(candles)
		if err != nil {
			return fmt.Errorf("scan %s: %w", cfg.Data.File, err)
		}

		for _, i := range idxs {
			c := candles[i]
			t.AppendRow(table.Row{
				p.Name(), i, c.Time.Format("2006-01-02 15:04"),
				fmt.Sprintf("%g", c.Open), fmt.Sprintf("%g", c.High),
				fmt.Sprintf("%g", c.Low), fmt.Sprintf("%g", c.Close),
			})
			total++

			if j != nil {
				rec := journal.MatchRecord{
					MatchID: id.New(),
					Source:  source,
					Pattern: p.Name(),
					Index:   i,
					Time:    c.Time,
					Open:    c.Open,
					High:    c.High,
					Low:     c.Low,
					Close:   c.Close,
				}
				if err := j.RecordMatch(rec); err != nil {
					return fmt.Errorf("record match: %w", err)
				}
			}
		}
	}

	if total == 0 {
		fmt.Printf("No matches in %s (%d candles)\n", source, len(candles))
		return nil
	}

	t.Render()
	return nil
}
