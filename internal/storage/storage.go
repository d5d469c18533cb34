// Package storage defines the tabular persistence capability the rest of the
// application is written against. The capability set is deliberately small
// (read all rows, append, replace by id, delete by id) so that a relational
// engine and a flat spreadsheet-style store can both implement it. All
// business logic lives above this interface; backends never filter, sort or
// aggregate.
package storage

import (
	"context"
	"fmt"
)

// Table names shared by all backends.
const (
	TableInvestments   = "investments"
	TableManagedAssets = "managed_assets"
	TablePriceLog      = "price_log"
)

// Columns maps each table to its ordered column list. The first column of
// every table is the id. Backends use this both as a schema reference and as
// a whitelist of valid table names.
var Columns = map[string][]string{
	TableInvestments:   {"id", "date", "asset_type", "ticker", "amount", "quantity"},
	TableManagedAssets: {"id", "ticker", "asset_type"},
	TablePriceLog:      {"id", "date", "ticker", "asset_type", "price"},
}

// Row is a single record keyed by column name. All values are strings so that
// backends without typed columns (CSV worksheets) round-trip losslessly;
// repositories own the conversion to and from model types.
type Row map[string]string

// Provider is the persistence capability consumed by the repositories.
// Writes must be visible to the next read within the same process.
type Provider interface {
	// ReadAll returns every row of the table in backend order.
	ReadAll(ctx context.Context, table string) ([]Row, error)

	// Append persists a new row.
	Append(ctx context.Context, table string, row Row) error

	// ReplaceByID overwrites all non-id columns of the row matching id.
	// Replacing a missing id is not an error.
	ReplaceByID(ctx context.Context, table string, id string, row Row) error

	// DeleteByID removes the row matching id. Deleting a missing id is not
	// an error.
	DeleteByID(ctx context.Context, table string, id string) error

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error

	Close() error
}

// ValidateTable returns an error if table is not a known table name.
func ValidateTable(table string) error {
	if _, ok := Columns[table]; !ok {
		return fmt.Errorf("unknown table: %s", table)
	}
	return nil
}
