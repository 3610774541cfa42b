package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSVJournal struct {
	matches *csv.Writer
	f       *os.File
}

func NewCSV(path string) (*CSVJournal, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"match_id", "source", "pattern", "index", "time", "open", "high", "low", "close"}); err != nil {
		return nil, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{matches: w, f: f}, nil
}

func (j *CSVJournal) RecordMatch(m MatchRecord) error {
	j.matches.Write([]string{
		m.MatchID,
		m.Source,
		m.Pattern,
		strconv.Itoa(m.Index),
		m.Time.Format(time.RFC3339),
		f(m.Open),
		f(m.High),
		f(m.Low),
		f(m.Close),
	})
	j.matches.Flush()
	return j.matches.Error()
}

func (j *CSVJournal) Close() error {
	j.matches.Flush()
	if err := j.matches.Error(); err != nil {
		j.f.Close()
		return err
	}
	return j.f.Close()
}

func f(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
