// Package db provides the SQL-backed transform store: connection management,
// embedded migrations and named queries.
//
// SQLite serves single-user and test setups, PostgreSQL shared deployments.
// Both go through sqlx; queries are written with `?` placeholders and
// rebound per driver.
package db

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Pool limits. The store is read-mostly and compiled groups are cached, so a
// small pool is enough.
const (
	maxOpenConns    = 8
	maxIdleConns    = 2
	connMaxIdleTime = 5 * time.Minute
	connMaxLifetime = 30 * time.Minute
)

// Open connects to the database named by dbURL and verifies the connection.
//
//	sqlite://translit.db          relative path
//	sqlite:///var/lib/translit.db absolute path
//	postgres://user@host/db?sslmode=disable
func Open(ctx context.Context, dbURL string) (*sqlx.DB, error) {
	driverName, dataSource, err := dataSourceFor(dbURL)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driverName, dataSource)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxIdleTime(connMaxIdleTime)
	db.SetConnMaxLifetime(connMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// dataSourceFor maps a database URL to a sql driver name and DSN.
func dataSourceFor(dbURL string) (string, string, error) {
	u, err := url.Parse(dbURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid database URL: %w", err)
	}

	switch u.Scheme {
	case "sqlite":
		// sqlite://file.db puts the first path element in Host
		path := u.Host + u.Path
		if path == "" {
			return "", "", fmt.Errorf("invalid database URL: sqlite URL without path")
		}
		return "sqlite3", path, nil
	case "postgres", "postgresql":
		return "postgres", dbURL, nil
	}
	return "", "", fmt.Errorf("unsupported database scheme: %q (expected sqlite or postgres)", u.Scheme)
}
