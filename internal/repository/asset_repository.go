package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mvaneerd/investment-tracker-backend/internal/apperrors"
	"github.com/mvaneerd/investment-tracker-backend/internal/model"
	"github.com/mvaneerd/investment-tracker-backend/internal/storage"
)

// AssetRepository provides data access methods for the managed_assets table.
type AssetRepository struct {
	store storage.Provider
}

// NewAssetRepository creates a new AssetRepository with the provided storage backend.
func NewAssetRepository(store storage.Provider) *AssetRepository {
	return &AssetRepository{store: store}
}

// GetAssets retrieves managed assets, optionally filtered by asset type.
// Unfiltered results are sorted by (asset type, ticker); filtered results by
// ticker alone.
func (r *AssetRepository) GetAssets(ctx context.Context, assetType model.AssetType) ([]model.ManagedAsset, error) {
	rows, err := r.store.ReadAll(ctx, storage.TableManagedAssets)
	if err != nil {
		return nil, fmt.Errorf("failed to query managed assets: %w", err)
	}

	assets := make([]model.ManagedAsset, 0, len(rows))
	for _, row := range rows {
		asset := assetFromRow(row)
		if assetType != "" && asset.AssetType != assetType {
			continue
		}
		assets = append(assets, asset)
	}

	sort.SliceStable(assets, func(i, j int) bool {
		if assetType == "" && assets[i].AssetType != assets[j].AssetType {
			return assets[i].AssetType < assets[j].AssetType
		}
		return assets[i].Ticker < assets[j].Ticker
	})

	return assets, nil
}

// InsertAsset persists a new managed asset. Returns ErrDuplicateTicker when
// an asset with the same ticker already exists, compared case-insensitively.
func (r *AssetRepository) InsertAsset(ctx context.Context, asset *model.ManagedAsset) error {
	rows, err := r.store.ReadAll(ctx, storage.TableManagedAssets)
	if err != nil {
		return fmt.Errorf("failed to query managed assets: %w", err)
	}
	for _, row := range rows {
		if strings.EqualFold(row["ticker"], asset.Ticker) {
			return apperrors.ErrDuplicateTicker
		}
	}

	row := storage.Row{
		"id":         asset.ID,
		"ticker":     asset.Ticker,
		"asset_type": string(asset.AssetType),
	}
	if err := r.store.Append(ctx, storage.TableManagedAssets, row); err != nil {
		return fmt.Errorf("failed to insert managed asset: %w", err)
	}
	return nil
}

// DeleteAsset removes the managed asset matching id. Deleting a missing id
// is a no-op.
func (r *AssetRepository) DeleteAsset(ctx context.Context, id string) error {
	if err := r.store.DeleteByID(ctx, storage.TableManagedAssets, id); err != nil {
		return fmt.Errorf("failed to delete managed asset: %w", err)
	}
	return nil
}

func assetFromRow(row storage.Row) model.ManagedAsset {
	return model.ManagedAsset{
		ID:        row["id"],
		Ticker:    row["ticker"],
		AssetType: model.AssetType(row["asset_type"]),
	}
}
