package journal

import (
	"database/sql"
	"fmt"
	"time"
)

const matchColumns = `match_id, source, pattern, idx, time, open, high, low, close`

// GetMatch returns a single match record by ID.
func (j *SQLite) GetMatch(matchID string) (MatchRecord, error) {
	row := j.db.QueryRow(`
		SELECT `+matchColumns+`
		FROM matches
		WHERE match_id = ?`, matchID)

	var rec MatchRecord
	err := row.Scan(
		&rec.MatchID,
		&rec.Source,
		&rec.Pattern,
		&rec.Index,
		&rec.Time,
		&rec.Open,
		&rec.High,
		&rec.Low,
		&rec.Close,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return MatchRecord{}, fmt.Errorf("match %q not found", matchID)
		}
		return MatchRecord{}, err
	}
	return rec, nil
}

// ListByPattern returns every recorded match for one pattern, oldest
// candle first.
func (j *SQLite) ListByPattern(pattern string) ([]MatchRecord, error) {
	rows, err := j.db.Query(`
		SELECT `+matchColumns+`
		FROM matches
		WHERE pattern = ?
		ORDER BY time ASC`, pattern)
	if err != nil {
		return nil, err
	}
	return collectMatches(rows)
}

// ListBetween returns matches whose candle time is within [start, end).
func (j *SQLite) ListBetween(start, end time.Time) ([]MatchRecord, error) {
	rows, err := j.db.Query(`
		SELECT `+matchColumns+`
		FROM matches
		WHERE time >= ? AND time < ?
		ORDER BY time ASC`, start, end)
	if err != nil {
		return nil, err
	}
	return collectMatches(rows)
}

// ListByDay returns matches whose candle falls on the given calendar
// day in day's location.
func (j *SQLite) ListByDay(day time.Time) ([]MatchRecord, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return j.ListBetween(start, start.AddDate(0, 0, 1))
}

func collectMatches(rows *sql.Rows) ([]MatchRecord, error) {
	defer rows.Close()

	var out []MatchRecord
	for rows.Next() {
		var rec MatchRecord
		if err := rows.Scan(
			&rec.MatchID,
			&rec.Source,
			&rec.Pattern,
			&rec.Index,
			&rec.Time,
			&rec.Open,
			&rec.High,
			&rec.Low,
			&rec.Close,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
