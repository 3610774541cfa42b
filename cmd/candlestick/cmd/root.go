package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "candlestick",
	Short: "Candlestick chart pattern scanner",
	Long: `Candlestick classifies OHLC price candles into named candlestick
chart patterns (hammer, shooting star, engulfing, harami, kicker, ...).

It provides tools for:
  - Scanning CSV candle data for one or more patterns
  - Listing the registered patterns and their window sizes
  - Journaling matches to SQLite or CSV
  - Querying a SQLite match journal by ID, pattern, or day`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
