package service

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/mvaneerd/investment-tracker-backend/internal/model"
	"github.com/mvaneerd/investment-tracker-backend/internal/quote"
)

// maxConcurrentQuotes bounds the number of in-flight price lookups per stats
// request.
const maxConcurrentQuotes = 4

// PortfolioService computes portfolio statistics against live prices. It is
// stateless: every call fetches transactions fresh and nothing is cached.
type PortfolioService struct {
	transactionService *TransactionService
	priceSource        quote.PriceSource
}

// NewPortfolioService creates a new PortfolioService with the provided dependencies.
func NewPortfolioService(
	transactionService *TransactionService,
	priceSource quote.PriceSource,
) *PortfolioService {
	return &PortfolioService{
		transactionService: transactionService,
		priceSource:        priceSource,
	}
}

// assetGroup accumulates the transactions of one (ticker, asset type) pair.
type assetGroup struct {
	ticker    string
	assetType model.AssetType
	invested  float64
	quantity  float64
}

// GetPortfolioStats aggregates all transactions into per-ticker lines and
// portfolio totals. Returns nil when there are no transactions, which the
// caller presents as "no data" rather than an empty portfolio.
//
// Transactions are grouped by the (ticker, asset type) pair; the same ticker
// recorded under two asset types forms two independent groups. The price
// oracle is queried once per group, not once per transaction, and lookups
// run concurrently with a bounded group. A failed lookup only degrades its
// own line: the price is reported as unknown and the current value as 0.
func (s *PortfolioService) GetPortfolioStats(ctx context.Context) *model.PortfolioStats {
	transactions := s.transactionService.ListTransactions(ctx)
	if len(transactions) == 0 {
		return nil
	}

	groups := groupTransactions(transactions)

	// One slot per group; each goroutine writes only its own index.
	prices := make([]*float64, len(groups))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentQuotes)
	for i, grp := range groups {
		g.Go(func() error {
			if price, ok := s.priceSource.GetCurrentPrice(gctx, grp.ticker, grp.assetType); ok {
				prices[i] = &price
			}
			return nil
		})
	}
	// Lookups absorb their own failures, so Wait cannot return an error.
	_ = g.Wait()

	stats := &model.PortfolioStats{
		Lines: make([]model.PortfolioLine, len(groups)),
	}
	for i, grp := range groups {
		line := model.PortfolioLine{
			Ticker:       grp.ticker,
			AssetType:    grp.assetType,
			Invested:     grp.invested,
			Quantity:     grp.quantity,
			CurrentPrice: prices[i],
		}
		if line.CurrentPrice != nil {
			line.CurrentValue = line.Quantity * *line.CurrentPrice
		}
		line.ProfitLoss = line.CurrentValue - line.Invested
		if line.Invested > 0 {
			line.ReturnPct = line.ProfitLoss / line.Invested * 100
		}

		stats.Lines[i] = line
		stats.TotalInvested += line.Invested
		stats.TotalCurrentValue += line.CurrentValue
	}

	return stats
}

// groupTransactions sums amounts and quantities per (ticker, asset type)
// pair, returning the groups in a stable (ticker, asset type) order.
func groupTransactions(transactions []model.Transaction) []assetGroup {
	type key struct {
		ticker    string
		assetType model.AssetType
	}

	byKey := make(map[key]*assetGroup)
	for _, t := range transactions {
		k := key{ticker: t.Ticker, assetType: t.AssetType}
		grp, ok := byKey[k]
		if !ok {
			grp = &assetGroup{ticker: t.Ticker, assetType: t.AssetType}
			byKey[k] = grp
		}
		grp.invested += t.Amount
		grp.quantity += t.Quantity
	}

	groups := make([]assetGroup, 0, len(byKey))
	for _, grp := range byKey {
		groups = append(groups, *grp)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].ticker != groups[j].ticker {
			return groups[i].ticker < groups[j].ticker
		}
		return groups[i].assetType < groups[j].assetType
	})

	return groups
}
