// internal/store/sql.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
	DriverMemory   Driver = "memory"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at BIGINT NOT NULL
);
`

// SQLKV stores every collection as one row of the kv table.
type SQLKV struct {
	db     *sql.DB
	driver Driver
}

var _ KV = (*SQLKV)(nil)

// OpenSQL opens a SQLite or Postgres database and ensures the kv table exists.
func OpenSQL(ctx context.Context, driver Driver, dsn string) (*SQLKV, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = "file:k12english.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/k12english?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLKV{db: db, driver: driver}, nil
}

func (s *SQLKV) Close() error {
	return s.db.Close()
}

func (s *SQLKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	q := "SELECT value FROM kv WHERE key = ?"
	if s.driver == DriverPostgres {
		q = "SELECT value FROM kv WHERE key = $1"
	}

	var value string
	err := s.db.QueryRowContext(ctx, q, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value), true, nil
}

func (s *SQLKV) Set(ctx context.Context, key string, value []byte) error {
	q := `INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if s.driver == DriverPostgres {
		q = `INSERT INTO kv (key, value, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	}

	_, err := s.db.ExecContext(ctx, q, key, string(value), time.Now().Unix())
	return err
}
