package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/mvaneerd/investment-tracker-backend/internal/model"
	"github.com/mvaneerd/investment-tracker-backend/internal/quote"
	"github.com/mvaneerd/investment-tracker-backend/internal/repository"
)

// PriceLogService records a daily quote per managed asset. It runs on a cron
// schedule and is purely additive data capture; portfolio statistics never
// read from it.
type PriceLogService struct {
	assetRepo    *repository.AssetRepository
	priceLogRepo *repository.PriceLogRepository
	priceSource  quote.PriceSource
}

// NewPriceLogService creates a new PriceLogService with the provided dependencies.
func NewPriceLogService(
	assetRepo *repository.AssetRepository,
	priceLogRepo *repository.PriceLogRepository,
	priceSource quote.PriceSource,
) *PriceLogService {
	return &PriceLogService{
		assetRepo:    assetRepo,
		priceLogRepo: priceLogRepo,
		priceSource:  priceSource,
	}
}

// RecordDailyQuotes fetches the current price of every managed asset and
// appends one price log entry per asset that has a usable quote. Assets
// without a quote are skipped and logged; one asset's failure never blocks
// the others. Returns the number of entries recorded.
func (s *PriceLogService) RecordDailyQuotes(ctx context.Context) (int, error) {
	assets, err := s.assetRepo.GetAssets(ctx, "")
	if err != nil {
		return 0, err
	}

	today := time.Now().UTC().Format("2006-01-02")
	recorded := 0
	for _, asset := range assets {
		price, ok := s.priceSource.GetCurrentPrice(ctx, asset.Ticker, asset.AssetType)
		if !ok {
			log.Printf("No quote for %s, skipping price log entry", asset.Ticker)
			continue
		}

		entry := &model.PriceLogEntry{
			ID:        uuid.New().String(),
			Date:      today,
			Ticker:    asset.Ticker,
			AssetType: asset.AssetType,
			Price:     price,
		}
		if err := s.priceLogRepo.InsertEntry(ctx, entry); err != nil {
			log.Printf("Failed to record quote for %s: %v", asset.Ticker, err)
			continue
		}
		recorded++
	}

	return recorded, nil
}
