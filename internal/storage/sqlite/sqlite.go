// Package sqlite implements the storage provider on a local SQLite file,
// the default backend. Schema is managed with embedded goose migrations.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/mvaneerd/investment-tracker-backend/internal/storage"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Provider is a storage.Provider backed by a SQLite database file.
type Provider struct {
	db *sql.DB
}

// Open opens the SQLite database at dbPath and applies pending migrations.
// Use ":memory:" for an ephemeral database.
func Open(dbPath string) (*Provider, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &Provider{db: db}, nil
}

// DB exposes the underlying handle, used by test helpers.
func (p *Provider) DB() *sql.DB {
	return p.db
}

// ReadAll returns every row of the table.
func (p *Provider) ReadAll(ctx context.Context, table string) ([]storage.Row, error) {
	if err := storage.ValidateTable(table); err != nil {
		return nil, err
	}
	cols := storage.Columns[table]

	// Table and column names come from the storage whitelist, never from input.
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(cols, ", "), table)
	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	var result []storage.Row
	for rows.Next() {
		values := make([]sql.NullString, len(cols))
		scanArgs := make([]any, len(cols))
		for i := range values {
			scanArgs[i] = &values[i]
		}
		if err := rows.Scan(scanArgs...); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		row := make(storage.Row, len(cols))
		for i, col := range cols {
			row[col] = values[i].String
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s: %w", table, err)
	}

	return result, nil
}

// Append inserts a new row.
func (p *Provider) Append(ctx context.Context, table string, row storage.Row) error {
	if err := storage.ValidateTable(table); err != nil {
		return err
	}
	cols := storage.Columns[table]

	placeholders := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, col := range cols {
		placeholders[i] = "?"
		args[i] = row[col]
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(cols, ", "), strings.Join(placeholders, ", "),
	)
	if _, err := p.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return nil
}

// ReplaceByID overwrites all non-id columns of the row matching id.
func (p *Provider) ReplaceByID(ctx context.Context, table string, id string, row storage.Row) error {
	if err := storage.ValidateTable(table); err != nil {
		return err
	}
	cols := storage.Columns[table]

	assignments := make([]string, 0, len(cols)-1)
	args := make([]any, 0, len(cols))
	for _, col := range cols {
		if col == "id" {
			continue
		}
		assignments = append(assignments, col+" = ?")
		args = append(args, row[col])
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", table, strings.Join(assignments, ", "))
	if _, err := p.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update %s: %w", table, err)
	}
	return nil
}

// DeleteByID removes the row matching id.
func (p *Provider) DeleteByID(ctx context.Context, table string, id string) error {
	if err := storage.ValidateTable(table); err != nil {
		return err
	}
	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", table)
	if _, err := p.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	return nil
}

// Ping checks database connectivity.
func (p *Provider) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// Close closes the database handle.
func (p *Provider) Close() error {
	return p.db.Close()
}
