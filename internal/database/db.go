// Package database provides database connection and initialization functionality.
//
// The service keeps all state in a single in-memory SQLite database. Nothing is
// written to disk: the knowledge graph lives for the lifetime of the process and
// is cleared either by the reset endpoint or by process exit.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// MemoryDSN is the connection string for the shared in-memory database.
// cache=shared keeps all pooled connections pointed at the same database
// instead of each connection getting its own private memory instance.
const MemoryDSN = "file:knowledge?mode=memory&cache=shared"

// DB wraps the database connection
type DB struct {
	conn *sql.DB
	name string // Database name for logging
}

// Config holds database configuration
type Config struct {
	DSN  string // Connection string; defaults to MemoryDSN
	Name string // Friendly name for logging (e.g., "knowledge")
}

// New creates a new database connection
func New(cfg Config) (*DB, error) {
	if cfg.DSN == "" {
		cfg.DSN = MemoryDSN
	}

	connStr := cfg.DSN + "&_pragma=foreign_keys(1)&_pragma=temp_store(MEMORY)"

	conn, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", cfg.Name, err)
	}

	configureConnectionPool(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database %s: %w", cfg.Name, err)
	}

	return &DB{
		conn: conn,
		name: cfg.Name,
	}, nil
}

// configureConnectionPool sets up connection pool limits.
// An in-memory shared-cache database serializes writes internally, so a small
// pool is sufficient; the non-zero idle count keeps the shared memory database
// alive between requests (a shared-cache memory DB is dropped when the last
// connection closes).
func configureConnectionPool(conn *sql.DB) {
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(2)
	conn.SetConnMaxLifetime(0) // Never recycle: recycling the last conn would drop the database
	conn.SetConnMaxIdleTime(0)
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// Name returns the database name for logging
func (db *DB) Name() string {
	return db.name
}

// Exec executes a query without returning rows
func (db *DB) Exec(query string, args ...interface{}) (sql.Result, error) {
	return db.conn.Exec(query, args...)
}

// Query executes a query that returns rows
func (db *DB) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return db.conn.Query(query, args...)
}

// QueryRow executes a query that returns at most one row
func (db *DB) QueryRow(query string, args ...interface{}) *sql.Row {
	return db.conn.QueryRow(query, args...)
}

// HealthCheck performs a health check on the database
func (db *DB) HealthCheck(ctx context.Context) error {
	if err := db.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("ping failed for %s: %w", db.name, err)
	}

	var integrityResult string
	if err := db.conn.QueryRowContext(ctx, "PRAGMA integrity_check").Scan(&integrityResult); err != nil {
		return fmt.Errorf("integrity check query failed for %s: %w", db.name, err)
	}

	if integrityResult != "ok" {
		return fmt.Errorf("integrity check failed for %s: %s", db.name, integrityResult)
	}

	return nil
}
