package repository

import (
	"context"
	"fmt"

	"github.com/mvaneerd/investment-tracker-backend/internal/model"
	"github.com/mvaneerd/investment-tracker-backend/internal/storage"
)

// PriceLogRepository provides data access methods for the price_log table.
type PriceLogRepository struct {
	store storage.Provider
}

// NewPriceLogRepository creates a new PriceLogRepository with the provided storage backend.
func NewPriceLogRepository(store storage.Provider) *PriceLogRepository {
	return &PriceLogRepository{store: store}
}

// InsertEntry appends an observed quote.
func (r *PriceLogRepository) InsertEntry(ctx context.Context, entry *model.PriceLogEntry) error {
	row := storage.Row{
		"id":         entry.ID,
		"date":       entry.Date,
		"ticker":     entry.Ticker,
		"asset_type": string(entry.AssetType),
		"price":      formatFloat(entry.Price),
	}
	if err := r.store.Append(ctx, storage.TablePriceLog, row); err != nil {
		return fmt.Errorf("failed to insert price log entry: %w", err)
	}
	return nil
}

// GetEntries retrieves all recorded quotes in backend order.
func (r *PriceLogRepository) GetEntries(ctx context.Context) ([]model.PriceLogEntry, error) {
	rows, err := r.store.ReadAll(ctx, storage.TablePriceLog)
	if err != nil {
		return nil, fmt.Errorf("failed to query price log: %w", err)
	}

	entries := make([]model.PriceLogEntry, 0, len(rows))
	for _, row := range rows {
		price, err := parseFloat(row["price"], "price")
		if err != nil {
			return nil, err
		}
		entries = append(entries, model.PriceLogEntry{
			ID:        row["id"],
			Date:      row["date"],
			Ticker:    row["ticker"],
			AssetType: model.AssetType(row["asset_type"]),
			Price:     price,
		})
	}
	return entries, nil
}
