// FilePath: server/stockkarte/internal/database/database.go
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	nuts "github.com/vaudience/go-nuts"
	_ "modernc.org/sqlite"
)

// DB is an interface that both PostgreSQL and SQLite connections implement
type DB interface {
	Close() error
	Ping(ctx context.Context) error
	GetDB() *sqlx.DB
}

// PostgresDB represents a PostgreSQL database connection
type PostgresDB struct {
	db *sqlx.DB
}

// SQLiteDB represents a SQLite database file (or :memory:)
type SQLiteDB struct {
	db   *sqlx.DB
	path string
}

// Transaction represents a database transaction
type Transaction interface {
	Commit() error
	Rollback() error
	Rebind(query string) string
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// Repository represents common repository operations
type Repository interface {
	BeginTx(ctx context.Context) (Transaction, error)
}

// Open connects to the database selected by cfg.Driver.
func Open(ctx context.Context, cfg config.DatabaseConfig) (DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewPostgresDB(ctx, cfg)
	case config.DriverSQLite:
		return NewSQLiteDB(ctx, cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

// NewPostgresDB creates a new PostgreSQL database connection. Failed
// attempts are retried with exponential backoff up to cfg.ConnectRetries times.
func NewPostgresDB(ctx context.Context, cfg config.DatabaseConfig) (DB, error) {
	pg := cfg.Postgres

	var db *sqlx.DB
	connect := func() error {
		attemptCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
		var err error
		db, err = sqlx.ConnectContext(attemptCtx, "postgres", pg.DSN())
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = time.Duration(cfg.ConnectRetries+1) * cfg.ConnectTimeout
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, uint64(cfg.ConnectRetries)), ctx)
	notify := func(err error, wait time.Duration) {
		nuts.L.Warnf("[PostgresDB] Connect to %s:%d failed, retrying in %s: %v", pg.Host, pg.Port, wait, err)
	}
	if err := backoff.RetryNotify(connect, policy, notify); err != nil {
		return nil, fmt.Errorf("error connecting to PostgreSQL: %w", err)
	}

	nuts.L.Infof("[PostgresDB] Connected to %s:%d/%s", pg.Host, pg.Port, pg.DBName)
	return &PostgresDB{db: db}, nil
}

// NewSQLiteDB opens a SQLite database at path. All access goes through a
// single connection, so ":memory:" behaves as one database.
func NewSQLiteDB(ctx context.Context, path string) (DB, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening SQLite %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to SQLite %s: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("error configuring SQLite %s: %w", path, err)
	}

	nuts.L.Infof("[SQLiteDB] Opened %s", path)
	return &SQLiteDB{db: db, path: path}, nil
}

// Implementation of DB interface for PostgresDB
func (p *PostgresDB) Close() error {
	return p.db.Close()
}

func (p *PostgresDB) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

func (p *PostgresDB) GetDB() *sqlx.DB {
	return p.db
}

// Implementation of DB interface for SQLiteDB
func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

func (s *SQLiteDB) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteDB) GetDB() *sqlx.DB {
	return s.db
}

// Path returns the file the database was opened from.
func (s *SQLiteDB) Path() string {
	return s.path
}
