package cmd

import (
	"os"

	"github.com/benwaldner/candlestick/patterns"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List the registered chart patterns",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Name", "Window"})
		for _, p := range patterns.All() {
			t.AppendRow(table.Row{p.Name(), p.Window()})
		}
		t.Render()
	},
}

func init() {
	rootCmd.AddCommand(patternsCmd)
}
