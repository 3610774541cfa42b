// Package journal persists pattern matches found by scans, either to
// SQLite for later querying or to a flat CSV file.
package journal

import "time"

// MatchRecord is one pattern match: which pattern fired, where in the
// scanned sequence, and the matched candle's prices.
type MatchRecord struct {
	MatchID string
	Source  string // instrument or data-file label
	Pattern string
	Index   int // index of the matched candle in the scanned sequence
	Time    time.Time
	Open    float64
	High    float64
	Low     float64
	Close   float64
}

type Journal interface {
	RecordMatch(MatchRecord) error
	Close() error
}
