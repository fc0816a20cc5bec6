// Package postgres opens a PostgreSQL-backed storage.Store.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/mmynk/dongi/internal/storage/sqlstore"
)

// New connects to the database described by connStr and runs migrations.
// connStr is any lib/pq connection string, URL or key=value form.
func New(ctx context.Context, connStr string) (*sqlstore.Store, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store, err := sqlstore.Open(ctx, db, sqlstore.DialectPostgres)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}
