package journal

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	j, err := NewSQLite(path)
	assert.NoError(t, err)

	return j, path
}

func testMatch(pattern string, ts time.Time) MatchRecord {
	return MatchRecord{
		MatchID: "M-" + pattern + "-" + ts.Format("150405"),
		Source:  "eurusd.csv",
		Pattern: pattern,
		Index:   7,
		Time:    ts,
		Open:    10,
		High:    10.5,
		Low:     9.5,
		Close:   10.2,
	}
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	assert.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type='table' AND name='matches'`)
	assert.NoError(t, err)
	defer rows.Close()

	assert.True(t, rows.Next())
	assert.NoError(t, rows.Err())
}

func TestSQLiteRecordAndGetMatch(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	ts := time.Date(2026, 8, 27, 9, 30, 0, 0, time.UTC)
	rec := testMatch("hammer", ts)
	assert.NoError(t, j.RecordMatch(rec))

	got, err := j.GetMatch(rec.MatchID)
	assert.NoError(t, err)
	assert.Equal(t, rec.Pattern, got.Pattern)
	assert.Equal(t, rec.Source, got.Source)
	assert.Equal(t, rec.Index, got.Index)
	assert.Equal(t, rec.Close, got.Close)
	assert.True(t, got.Time.Equal(ts))

	_, err = j.GetMatch("missing-id")
	assert.ErrorContains(t, err, "not found")
}

func TestSQLiteListByPattern(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	base := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)
	assert.NoError(t, j.RecordMatch(testMatch("hammer", base.Add(2*time.Hour))))
	assert.NoError(t, j.RecordMatch(testMatch("hammer", base)))
	assert.NoError(t, j.RecordMatch(testMatch("bullish-engulfing", base.Add(time.Hour))))

	recs, err := j.ListByPattern("hammer")
	assert.NoError(t, err)
	assert.Len(t, recs, 2)
	// oldest first
	assert.True(t, recs[0].Time.Before(recs[1].Time))

	recs, err = j.ListByPattern("shooting-star")
	assert.NoError(t, err)
	assert.Empty(t, recs)
}

func TestSQLiteListByDay(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	day := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, j.RecordMatch(testMatch("hammer", day.Add(9*time.Hour))))
	assert.NoError(t, j.RecordMatch(testMatch("hammer", day.Add(23*time.Hour))))
	assert.NoError(t, j.RecordMatch(testMatch("hammer", day.AddDate(0, 0, 1))))

	recs, err := j.ListByDay(day)
	assert.NoError(t, err)
	assert.Len(t, recs, 2)
}
