package market

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func writeCandleFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "candles.csv")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCSV(t *testing.T) {
	t.Parallel()

	path := writeCandleFile(t, `time,open,high,low,close,volume
2026-01-02T09:00:00Z,10,10.5,9.5,10.2,1200
2026-01-02T09:01:00Z,10.2,10.8,10.1,10.6,900
`)

	candles, err := LoadCSV(path)
	assert.NoError(t, err)
	assert.Len(t, candles, 2)

	assert.Equal(t, time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC), candles[0].Time)
	assert.Equal(t, 10.0, candles[0].Open)
	assert.Equal(t, 10.5, candles[0].High)
	assert.Equal(t, 9.5, candles[0].Low)
	assert.Equal(t, 10.2, candles[0].Close)
	assert.Equal(t, 1200.0, candles[0].Volume)
	assert.Equal(t, 10.6, candles[1].Close)
}

func TestLoadCSVNoVolume(t *testing.T) {
	t.Parallel()

	path := writeCandleFile(t, `time,open,high,low,close
2026-01-02T09:00:00Z,10,10.5,9.5,10.2
`)

	candles, err := LoadCSV(path)
	assert.NoError(t, err)
	assert.Len(t, candles, 1)
	assert.Equal(t, 0.0, candles[0].Volume)
}

func TestLoadCSVBadHeader(t *testing.T) {
	t.Parallel()

	path := writeCandleFile(t, "open,high,low,close\n10,10.5,9.5,10.2\n")

	_, err := LoadCSV(path)
	assert.ErrorContains(t, err, "expected header")
}

func TestLoadCSVInvalidRow(t *testing.T) {
	t.Parallel()

	// second row has high < low; the whole load fails
	path := writeCandleFile(t, `time,open,high,low,close
2026-01-02T09:00:00Z,10,10.5,9.5,10.2
2026-01-02T09:01:00Z,10.2,9.0,10.1,10.6
`)

	candles, err := LoadCSV(path)
	assert.Error(t, err)
	assert.Nil(t, candles)

	var rerr *RangeError
	assert.ErrorAs(t, err, &rerr)
}

func TestLoadCSVBadTimestamp(t *testing.T) {
	t.Parallel()

	path := writeCandleFile(t, `time,open,high,low,close
20260102 090000,10,10.5,9.5,10.2
`)

	_, err := LoadCSV(path)
	assert.ErrorContains(t, err, "line 2")
}

func TestLoadCSVMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
