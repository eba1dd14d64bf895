package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"net/url"
	"strings"

	"github.com/pressly/goose/v3"
	// SQLite driver.
	_ "modernc.org/sqlite"

	"github.com/fr0stylo/listingpay/internal/db/queries"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	driver      = "sqlite"
	defaultPath = "data/listingpay"
)

// Database wraps sqlc queries with the shared connection.
type Database struct {
	*queries.Queries
	db      *sql.DB
	tracker *queryLatencyTracker
}

// New opens the SQLite database at the provided path and applies migrations.
func New(path string, openParams ...string) (*Database, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPath
	}
	conn, err := sql.Open(driver, sqliteDSN(path, openParams...))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect(driver); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(conn, "migrations"); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	tracker := newQueryLatencyTracker()
	return &Database{
		db:      conn,
		Queries: queries.New(newInstrumentedDBTX(conn, tracker)),
		tracker: tracker,
	}, nil
}

func sqliteDSN(path string, openParams ...string) string {
	values := url.Values{}
	values.Add("_pragma", "foreign_keys(ON)")
	values.Add("_pragma", "journal_mode(WAL)")
	values.Add("_pragma", "synchronous(NORMAL)")
	values.Add("_pragma", "busy_timeout(5000)")
	values.Add("_pragma", "temp_store(MEMORY)")

	for _, param := range openParams {
		part := strings.TrimSpace(strings.TrimPrefix(param, "&"))
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		values.Add(strings.TrimSpace(key), strings.TrimSpace(value))
	}

	return fmt.Sprintf("file:%s.sqlite?%s", path, values.Encode())
}

// Ping verifies the connection is usable.
func (c *Database) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// Close closes the underlying database connection.
func (c *Database) Close() error {
	return c.db.Close()
}
