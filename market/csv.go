package market

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

// LoadCSV reads a candle series from a CSV file with the header
//
//	time,open,high,low,close[,volume]
//
// Timestamps are RFC3339 and rows are expected oldest first. Every row
// is validated on load; the first bad row fails the whole load rather
// than being skipped.
func LoadCSV(path string) ([]Candle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: empty file", path)
	}

	header := rows[0]
	if len(header) < 5 || header[0] != "time" {
		return nil, fmt.Errorf("%s: expected header time,open,high,low,close", path)
	}

	candles := make([]Candle, 0, len(rows)-1)
	for i, row := range rows[1:] {
		line := i + 2 // 1-based, after the header
		if len(row) < 5 {
			return nil, fmt.Errorf("%s line %d: expected at least 5 fields, got %d", path, line, len(row))
		}

		ts, err := time.Parse(time.RFC3339, row[0])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, line, err)
		}

		c := Candle{Time: ts}
		for j, dst := range []*float64{&c.Open, &c.High, &c.Low, &c.Close} {
			v, err := strconv.ParseFloat(row[j+1], 64)
			if err != nil {
				return nil, fmt.Errorf("%s line %d: %w", path, line, err)
			}
			*dst = v
		}
		if len(row) > 5 && row[5] != "" {
			v, err := strconv.ParseFloat(row[5], 64)
			if err != nil {
				return nil, fmt.Errorf("%s line %d: %w", path, line, err)
			}
			c.Volume = v
		}

		if err := Validate(&c, fmt.Sprintf("line %d", line)); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		candles = append(candles, c)
	}
	return candles, nil
}
