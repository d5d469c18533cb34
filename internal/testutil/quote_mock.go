package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/mvaneerd/investment-tracker-backend/internal/model"
)

// MockPriceSource is a quote.PriceSource returning predefined prices instead
// of calling the live API.
type MockPriceSource struct {
	mu sync.Mutex
	// Prices maps ticker (as stored, without any -USD suffix) to the price
	// to return. Tickers not present report no price.
	Prices map[string]float64
	// Queried records every ticker the source was asked about, in order.
	Queried []string
}

// NewMockPriceSource creates a mock price source with the given prices.
func NewMockPriceSource(prices map[string]float64) *MockPriceSource {
	return &MockPriceSource{Prices: prices}
}

// GetCurrentPrice returns the configured price, or ok == false for unknown
// tickers.
func (m *MockPriceSource) GetCurrentPrice(_ context.Context, ticker string, _ model.AssetType) (float64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Queried = append(m.Queried, ticker)
	price, ok := m.Prices[ticker]
	return price, ok
}

// QueryCount returns how many lookups were made.
func (m *MockPriceSource) QueryCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Queried)
}

// ChartServer is an httptest server mimicking the Yahoo Finance chart API
// for FinanceClient tests.
type ChartServer struct {
	*httptest.Server

	mu sync.Mutex
	// MarketPrices maps symbol (including any -USD suffix) to the regular
	// market price served on the fast path.
	MarketPrices map[string]float64
	// Closes maps symbol to the close series served on the 5d fallback.
	Closes map[string][]*float64
	// Requests records every requested symbol with its range, e.g. "BTC-USD/1d".
	Requests []string
}

// NewChartServer starts a mock chart endpoint. The server is shut down when
// the test completes.
func NewChartServer(t *testing.T) *ChartServer {
	t.Helper()

	s := &ChartServer{
		MarketPrices: make(map[string]float64),
		Closes:       make(map[string][]*float64),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

func (s *ChartServer) handle(w http.ResponseWriter, r *http.Request) {
	symbol := strings.TrimPrefix(r.URL.Path, "/v8/finance/chart/")
	chartRange := r.URL.Query().Get("range")

	s.mu.Lock()
	s.Requests = append(s.Requests, fmt.Sprintf("%s/%s", symbol, chartRange))
	marketPrice, hasMarketPrice := s.MarketPrices[symbol]
	closes, hasCloses := s.Closes[symbol]
	s.mu.Unlock()

	if !hasMarketPrice && !hasCloses {
		s.writeError(w, symbol)
		return
	}

	var price float64
	if chartRange == "1d" && hasMarketPrice {
		price = marketPrice
	}

	body := map[string]any{
		"chart": map[string]any{
			"result": []map[string]any{{
				"meta": map[string]any{
					"symbol":             symbol,
					"currency":           "USD",
					"regularMarketPrice": price,
				},
				"indicators": map[string]any{
					"quote": []map[string]any{{
						"close": closes,
					}},
				},
			}},
			"error": nil,
		},
	}
	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck // Test server - encode failure surfaces as a failed assertion
	json.NewEncoder(w).Encode(body)
}

func (s *ChartServer) writeError(w http.ResponseWriter, symbol string) {
	body := map[string]any{
		"chart": map[string]any{
			"result": nil,
			"error": map[string]any{
				"code":        "Not Found",
				"description": fmt.Sprintf("No data found for symbol %s", symbol),
			},
		},
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	//nolint:errcheck // Test server - encode failure surfaces as a failed assertion
	json.NewEncoder(w).Encode(body)
}

// SymbolRequests returns how many requests were made for the given symbol
// across all ranges.
func (s *ChartServer) SymbolRequests(symbol string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, req := range s.Requests {
		if strings.HasPrefix(req, symbol+"/") {
			count++
		}
	}
	return count
}

// Float64Ptr returns a pointer to v, for building close series with nulls.
func Float64Ptr(v float64) *float64 {
	return &v
}
