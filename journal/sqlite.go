package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordMatch(m MatchRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO matches
		(match_id, source, pattern, idx, time, open, high, low, close)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.MatchID, m.Source, m.Pattern, m.Index,
		m.Time, m.Open, m.High, m.Low, m.Close,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
