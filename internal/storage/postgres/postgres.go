// Package postgres implements the storage provider on a hosted PostgreSQL
// service.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/mvaneerd/investment-tracker-backend/internal/storage"
)

// Provider is a storage.Provider backed by a PostgreSQL database.
type Provider struct {
	db         *sql.DB
	sqlBuilder sq.StatementBuilderType
}

// Config holds the connection parameters for the hosted database.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Open connects to the database and ensures the schema exists. Hosted
// databases can be slow to accept connections after a cold start, so the
// initial ping is retried a few times.
func Open(cfg Config) (*Provider, error) {
	connStr := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=require",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	for i := 0; i < 5; i++ {
		err = db.Ping()
		if err == nil {
			break
		}
		log.Printf("Database not ready yet, retrying in 2s...")
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot connect to database after retries: %w", err)
	}

	p := &Provider{
		db:         db,
		sqlBuilder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
	if err := p.ensureSchema(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Provider) ensureSchema() error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS investments (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			date DATE NOT NULL,
			asset_type VARCHAR(10) NOT NULL,
			ticker VARCHAR(20) NOT NULL,
			amount DOUBLE PRECISION NOT NULL,
			quantity DOUBLE PRECISION NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS managed_assets (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			ticker VARCHAR(20) NOT NULL UNIQUE,
			asset_type VARCHAR(10) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS price_log (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			date DATE NOT NULL,
			ticker VARCHAR(20) NOT NULL,
			asset_type VARCHAR(10) NOT NULL,
			price DOUBLE PRECISION NOT NULL
		)`,
	}
	for _, stmt := range schema {
		if _, err := p.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// ReadAll returns every row of the table.
func (p *Provider) ReadAll(ctx context.Context, table string) ([]storage.Row, error) {
	if err := storage.ValidateTable(table); err != nil {
		return nil, err
	}
	cols := storage.Columns[table]

	// Dates come back as text so rows stay uniform across backends.
	selectCols := make([]string, len(cols))
	for i, col := range cols {
		if col == "date" {
			selectCols[i] = "to_char(date, 'YYYY-MM-DD') AS date"
		} else {
			selectCols[i] = col
		}
	}

	query, args, err := p.sqlBuilder.Select(selectCols...).From(table).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select %s: %w", table, err)
	}

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("exec select %s: %w", table, err)
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
			return nil, fmt.Errorf("scan %s row: %w", table, err)
		}
		row := make(storage.Row, len(cols))
		for i, col := range cols {
			row[col] = values[i].String
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", table, err)
	}

	return result, nil
}

// Append inserts a new row.
func (p *Provider) Append(ctx context.Context, table string, row storage.Row) error {
	if err := storage.ValidateTable(table); err != nil {
		return err
	}
	cols := storage.Columns[table]

	values := make([]any, len(cols))
	for i, col := range cols {
		values[i] = row[col]
	}

	query, args, err := p.sqlBuilder.
		Insert(table).
		Columns(cols...).
		Values(values...).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert %s: %w", table, err)
	}

	if _, err := p.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("exec insert %s: %w", table, err)
	}
	return nil
}

// ReplaceByID overwrites all non-id columns of the row matching id.
func (p *Provider) ReplaceByID(ctx context.Context, table string, id string, row storage.Row) error {
	if err := storage.ValidateTable(table); err != nil {
		return err
	}

	update := p.sqlBuilder.Update(table)
	for _, col := range storage.Columns[table] {
		if col == "id" {
			continue
		}
		update = update.Set(col, row[col])
	}

	query, args, err := update.Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build update %s: %w", table, err)
	}

	if _, err := p.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("exec update %s: %w", table, err)
	}
	return nil
}

// DeleteByID removes the row matching id.
func (p *Provider) DeleteByID(ctx context.Context, table string, id string) error {
	if err := storage.ValidateTable(table); err != nil {
		return err
	}

	query, args, err := p.sqlBuilder.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete %s: %w", table, err)
	}

	if _, err := p.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("exec delete %s: %w", table, err)
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
