package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS resolutions (
	id            TEXT PRIMARY KEY,
	query         TEXT NOT NULL,
	status        TEXT NOT NULL,
	display_name  TEXT NOT NULL DEFAULT '',
	latitude      REAL NOT NULL DEFAULT 0,
	longitude     REAL NOT NULL DEFAULT 0,
	confidence    REAL NOT NULL DEFAULT 0,
	tier          TEXT NOT NULL DEFAULT '',
	source        TEXT NOT NULL DEFAULT '',
	within_region INTEGER NOT NULL DEFAULT 0,
	duration_ms   INTEGER NOT NULL DEFAULT 0,
	created_at    DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_resolutions_status ON resolutions(status);
CREATE INDEX IF NOT EXISTS idx_resolutions_created_at ON resolutions(created_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveResolution(ctx context.Context, rec Record) (*Record, error) {
	rec.ID = uuid.New().String()
	rec.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO resolutions
		 (id, query, status, display_name, latitude, longitude, confidence, tier, source, within_region, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Query, string(rec.Status), rec.DisplayName,
		rec.Latitude, rec.Longitude, rec.Confidence, rec.Tier, rec.Source,
		rec.WithinRegion, rec.Duration.Milliseconds(), rec.CreatedAt,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert resolution")
	}
	return &rec, nil
}

func (s *SQLiteStore) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, query, status, display_name, latitude, longitude, confidence, tier, source, within_region, duration_ms, created_at
		 FROM resolutions ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: query recent")
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var status string
		var durationMS int64
		if err := rows.Scan(&rec.ID, &rec.Query, &status, &rec.DisplayName,
			&rec.Latitude, &rec.Longitude, &rec.Confidence, &rec.Tier, &rec.Source,
			&rec.WithinRegion, &durationMS, &rec.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan resolution")
		}
		rec.Status = Status(status)
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		out = append(out, rec)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: iterate resolutions")
}
