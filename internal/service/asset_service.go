package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/mvaneerd/investment-tracker-backend/internal/apperrors"
	"github.com/mvaneerd/investment-tracker-backend/internal/model"
	"github.com/mvaneerd/investment-tracker-backend/internal/repository"
)

// defaultAssets are seeded when the managed asset list is empty, so a fresh
// installation has a usable ticker dropdown.
var defaultAssets = []model.ManagedAsset{
	{Ticker: "BTC", AssetType: model.AssetTypeCrypto},
	{Ticker: "ETH", AssetType: model.AssetTypeCrypto},
	{Ticker: "BNB", AssetType: model.AssetTypeCrypto},
}

// AssetService handles managed asset business logic operations.
type AssetService struct {
	assetRepo *repository.AssetRepository
}

// NewAssetService creates a new AssetService with the provided repository dependencies.
func NewAssetService(assetRepo *repository.AssetRepository) *AssetService {
	return &AssetService{assetRepo: assetRepo}
}

// ListAssets retrieves managed assets, optionally filtered by asset type.
func (s *AssetService) ListAssets(ctx context.Context, assetType model.AssetType) ([]model.ManagedAsset, error) {
	return s.assetRepo.GetAssets(ctx, assetType)
}

// AddAsset persists a new managed asset with the ticker normalized to
// uppercase. Returns ok == false, not an error, when an asset with the same
// ticker already exists case-insensitively, so callers can show a friendly
// message.
func (s *AssetService) AddAsset(ctx context.Context, ticker string, assetType model.AssetType) (*model.ManagedAsset, bool, error) {
	asset := &model.ManagedAsset{
		ID:        uuid.New().String(),
		Ticker:    strings.ToUpper(strings.TrimSpace(ticker)),
		AssetType: assetType,
	}
	if asset.Ticker == "" {
		return nil, false, apperrors.ErrEmptyTicker
	}

	if err := s.assetRepo.InsertAsset(ctx, asset); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateTicker) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to add managed asset: %w", err)
	}

	return asset, true, nil
}

// DeleteAsset removes the managed asset matching id. Deleting a missing id
// is a silent no-op.
func (s *AssetService) DeleteAsset(ctx context.Context, id string) error {
	if err := s.assetRepo.DeleteAsset(ctx, id); err != nil {
		return fmt.Errorf("failed to delete managed asset: %w", err)
	}
	return nil
}

// EnsureDefaults seeds the default managed assets when the list is empty.
// Called once at startup, after the storage backend is opened.
func (s *AssetService) EnsureDefaults(ctx context.Context) error {
	assets, err := s.assetRepo.GetAssets(ctx, "")
	if err != nil {
		return fmt.Errorf("failed to check managed assets: %w", err)
	}
	if len(assets) > 0 {
		return nil
	}

	for _, seed := range defaultAssets {
		if _, ok, err := s.AddAsset(ctx, seed.Ticker, seed.AssetType); err != nil {
			return err
		} else if !ok {
			// Concurrent seeding is not expected; log and move on.
			log.Printf("Default asset %s already present", seed.Ticker)
		}
	}
	return nil
}
