// Package sheet implements the storage provider on a directory of worksheet
// files, one CSV file per table with a header row. It is the
// spreadsheet-as-database backend: no query engine, just whole-sheet reads
// and rewrites, which is exactly the capability set the provider interface
// demands.
package sheet

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mvaneerd/investment-tracker-backend/internal/storage"
)

// Provider is a storage.Provider backed by CSV worksheet files.
type Provider struct {
	dir string
}

// Open prepares the workbook directory, creating it and any missing
// worksheet files with header rows.
func Open(dir string) (*Provider, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create workbook directory: %w", err)
	}

	p := &Provider{dir: dir}
	for table, cols := range storage.Columns {
		path := p.sheetPath(table)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := writeSheet(path, cols, nil); err != nil {
				return nil, err
			}
		} else if err != nil {
			return nil, fmt.Errorf("failed to stat worksheet %s: %w", table, err)
		}
	}
	return p, nil
}

func (p *Provider) sheetPath(table string) string {
	return filepath.Join(p.dir, table+".csv")
}

// readSheet loads a worksheet as header plus records.
func (p *Provider) readSheet(table string) ([]string, [][]string, error) {
	f, err := os.Open(p.sheetPath(table))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open worksheet %s: %w", table, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read worksheet %s: %w", table, err)
	}
	if len(records) == 0 {
		return storage.Columns[table], nil, nil
	}
	return records[0], records[1:], nil
}

// writeSheet rewrites a worksheet atomically: write a temp file in the same
// directory, then rename over the original.
func writeSheet(path string, header []string, records [][]string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp worksheet: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write worksheet header: %w", err)
	}
	if err := w.WriteAll(records); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write worksheet rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to flush worksheet: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp worksheet: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace worksheet: %w", err)
	}
	return nil
}

// ReadAll returns every row of the table.
func (p *Provider) ReadAll(_ context.Context, table string) ([]storage.Row, error) {
	if err := storage.ValidateTable(table); err != nil {
		return nil, err
	}

	header, records, err := p.readSheet(table)
	if err != nil {
		return nil, err
	}

	var result []storage.Row
	for _, record := range records {
		row := make(storage.Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		result = append(result, row)
	}
	return result, nil
}

// Append persists a new row at the bottom of the worksheet.
func (p *Provider) Append(_ context.Context, table string, row storage.Row) error {
	if err := storage.ValidateTable(table); err != nil {
		return err
	}

	header, records, err := p.readSheet(table)
	if err != nil {
		return err
	}

	records = append(records, recordFromRow(header, row))
	return writeSheet(p.sheetPath(table), header, records)
}

// ReplaceByID overwrites all non-id columns of the row matching id.
func (p *Provider) ReplaceByID(_ context.Context, table string, id string, row storage.Row) error {
	if err := storage.ValidateTable(table); err != nil {
		return err
	}

	header, records, err := p.readSheet(table)
	if err != nil {
		return err
	}

	changed := false
	for i, record := range records {
		if len(record) > 0 && record[0] == id {
			replacement := row
			replacement["id"] = id
			records[i] = recordFromRow(header, replacement)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return writeSheet(p.sheetPath(table), header, records)
}

// DeleteByID removes the row matching id.
func (p *Provider) DeleteByID(_ context.Context, table string, id string) error {
	if err := storage.ValidateTable(table); err != nil {
		return err
	}

	header, records, err := p.readSheet(table)
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, record := range records {
		if len(record) > 0 && record[0] == id {
			continue
		}
		kept = append(kept, record)
	}
	if len(kept) == len(records) {
		return nil
	}
	return writeSheet(p.sheetPath(table), header, kept)
}

// Ping reports whether the workbook directory is accessible.
func (p *Provider) Ping(_ context.Context) error {
	if _, err := os.Stat(p.dir); err != nil {
		return fmt.Errorf("workbook directory unavailable: %w", err)
	}
	return nil
}

// Close is a no-op; worksheets are not kept open between operations.
func (p *Provider) Close() error {
	return nil
}

func recordFromRow(header []string, row storage.Row) []string {
	record := make([]string, len(header))
	for i, col := range header {
		record[i] = row[col]
	}
	return record
}
