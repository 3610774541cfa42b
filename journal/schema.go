package journal

const Schema = `
CREATE TABLE IF NOT EXISTS matches (
	match_id TEXT PRIMARY KEY,
	source TEXT NOT NULL,
	pattern TEXT NOT NULL,
	idx INTEGER NOT NULL,
	time DATETIME NOT NULL,
	open REAL NOT NULL,
	high REAL NOT NULL,
	low REAL NOT NULL,
	close REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_matches_pattern ON matches(pattern);
CREATE INDEX IF NOT EXISTS idx_matches_time ON matches(time);
`
