package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Open opens a DB and ensures schema exists.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = "file:skillcheck.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/skillcheck?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := ensureSchema(ctx, db, driver); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(ctx context.Context, db *sql.DB, driver Driver) error {
	var schema string
	switch driver {
	case DriverSQLite:
		schema = schemaSQLite
	case DriverPostgres:
		schema = schemaPostgres
	}
	_, err := db.ExecContext(ctx, schema)
	return err
}

const schemaSQLite = `
PRAGMA foreign_keys=ON;

CREATE TABLE IF NOT EXISTS customers (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  customer_number TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL DEFAULT '',
  age INTEGER,
  prefecture TEXT NOT NULL DEFAULT '',
  occupation TEXT NOT NULL DEFAULT '',
  nail_technician_experience TEXT NOT NULL DEFAULT '',
  application_date TEXT NOT NULL DEFAULT '',
  google_drive_url TEXT NOT NULL DEFAULT '',
  status TEXT NOT NULL DEFAULT 'new',
  created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS skill_checks (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  customer_id INTEGER NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
  imported_at INTEGER NOT NULL,
  scores_json TEXT NOT NULL DEFAULT '{}',
  care_score REAL,
  color_score REAL,
  art_score REAL,
  time_score REAL,
  total_score REAL,
  total_time TEXT NOT NULL DEFAULT '',
  rank TEXT NOT NULL DEFAULT '',
  counseling_comment TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_skill_checks_customer
  ON skill_checks (customer_id, imported_at DESC);

CREATE TABLE IF NOT EXISTS customer_notes (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  customer_id INTEGER NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
  note_content TEXT NOT NULL,
  created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  username TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL,
  created_at INTEGER NOT NULL
);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS customers (
  id BIGSERIAL PRIMARY KEY,
  customer_number TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL DEFAULT '',
  age INTEGER,
  prefecture TEXT NOT NULL DEFAULT '',
  occupation TEXT NOT NULL DEFAULT '',
  nail_technician_experience TEXT NOT NULL DEFAULT '',
  application_date TEXT NOT NULL DEFAULT '',
  google_drive_url TEXT NOT NULL DEFAULT '',
  status TEXT NOT NULL DEFAULT 'new',
  created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS skill_checks (
  id BIGSERIAL PRIMARY KEY,
  customer_id BIGINT NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
  imported_at BIGINT NOT NULL,
  scores_json TEXT NOT NULL DEFAULT '{}',
  care_score DOUBLE PRECISION,
  color_score DOUBLE PRECISION,
  art_score DOUBLE PRECISION,
  time_score DOUBLE PRECISION,
  total_score DOUBLE PRECISION,
  total_time TEXT NOT NULL DEFAULT '',
  rank TEXT NOT NULL DEFAULT '',
  counseling_comment TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_skill_checks_customer
  ON skill_checks (customer_id, imported_at DESC);

CREATE TABLE IF NOT EXISTS customer_notes (
  id BIGSERIAL PRIMARY KEY,
  customer_id BIGINT NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
  note_content TEXT NOT NULL,
  created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
  id BIGSERIAL PRIMARY KEY,
  username TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL,
  created_at BIGINT NOT NULL
);
`
