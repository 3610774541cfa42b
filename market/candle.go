// Package market holds the candle data model shared by the pattern
// scanners: the OHLC Candle value type, candle validation, and CSV
// ingestion of candle series.
package market

import "time"

// Candle represents OHLC (Open, High, Low, Close) candlestick data for
// one period. It is a plain value: the library never mutates or
// retains candles handed to it.
type Candle struct {
	Time time.Time

	Open  float64
	High  float64
	Low   float64
	Close float64

	Volume float64 // optional
}
