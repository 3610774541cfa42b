package main

import (
	"os"

	"github.com/benwaldner/candlestick/cmd/candlestick/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
