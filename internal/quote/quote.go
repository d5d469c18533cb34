// Package quote provides live market price lookups against the Yahoo Finance
// chart API. The aggregator treats every failure here as "price unknown", so
// methods report absence with a boolean rather than an error.
package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/mvaneerd/investment-tracker-backend/internal/model"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// PriceSource is the consumed price oracle contract: a current price for a
// ticker, or ok == false when no usable price is available.
type PriceSource interface {
	GetCurrentPrice(ctx context.Context, ticker string, assetType model.AssetType) (float64, bool)
}

// FinanceClient fetches current prices from the Yahoo Finance chart API.
type FinanceClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewFinanceClient creates a new Yahoo Finance client with default HTTP settings.
func NewFinanceClient() *FinanceClient {
	return &FinanceClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
	}
}

// NewFinanceClientWithBaseURL creates a client against a custom endpoint,
// used by tests to point at a mock server.
func NewFinanceClientWithBaseURL(baseURL string) *FinanceClient {
	c := NewFinanceClient()
	c.baseURL = baseURL
	return c
}

// NormalizeSymbol maps a stored ticker to the symbol the quote API expects.
// Crypto tickers are quoted against USD, so a bare "BTC" becomes "BTC-USD".
func NormalizeSymbol(ticker string, assetType model.AssetType) string {
	if assetType == model.AssetTypeCrypto && !strings.HasSuffix(ticker, "-USD") {
		return ticker + "-USD"
	}
	return ticker
}

// GetCurrentPrice fetches the current price for a ticker.
//
// The fast path is the regular market price from the one-day chart metadata.
// When that is missing or zero the last non-null close of the five-day chart
// is used instead. A zero price is treated the same as no price: the feeds
// report 0 for unknown or stale symbols.
func (c *FinanceClient) GetCurrentPrice(ctx context.Context, ticker string, assetType model.AssetType) (float64, bool) {
	symbol := NormalizeSymbol(ticker, assetType)

	result, err := c.queryChart(ctx, symbol, "1d")
	if err == nil && result.Meta.RegularMarketPrice > 0 {
		return result.Meta.RegularMarketPrice, true
	}
	if err != nil {
		log.Printf("Quote fast path failed for %s: %v", symbol, err)
	}

	result, err = c.queryChart(ctx, symbol, "5d")
	if err != nil {
		log.Printf("Quote fallback failed for %s: %v", symbol, err)
		return 0, false
	}
	if price, ok := lastClose(result); ok {
		return price, true
	}
	return 0, false
}

// lastClose returns the most recent non-null, non-zero close of the series.
func lastClose(result Result) (float64, bool) {
	if len(result.Indicators.Quote) == 0 {
		return 0, false
	}
	closes := result.Indicators.Quote[0].Close
	for i := len(closes) - 1; i >= 0; i-- {
		if closes[i] != nil && *closes[i] > 0 {
			return *closes[i], true
		}
	}
	return 0, false
}

// queryChart executes a chart request for the given symbol and range.
func (c *FinanceClient) queryChart(ctx context.Context, symbol, chartRange string) (Result, error) {
	url := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=%s", c.baseURL, symbol, chartRange)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{}, err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, err
	}

	var response Response
	if err := json.Unmarshal(data, &response); err != nil {
		return Result{}, err
	}

	if response.Chart.Error != nil {
		return Result{}, fmt.Errorf("yahoo error: %s", response.Chart.Error.Description)
	}
	if len(response.Chart.Result) == 0 {
		return Result{}, fmt.Errorf("no results returned for symbol %s", symbol)
	}

	return response.Chart.Result[0], nil
}
