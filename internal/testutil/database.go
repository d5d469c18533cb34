package testutil

import (
	"testing"

	"github.com/mvaneerd/investment-tracker-backend/internal/quote"
	"github.com/mvaneerd/investment-tracker-backend/internal/repository"
	"github.com/mvaneerd/investment-tracker-backend/internal/service"
	"github.com/mvaneerd/investment-tracker-backend/internal/storage"
	"github.com/mvaneerd/investment-tracker-backend/internal/storage/sqlite"
)

// SetupTestStore creates an in-memory SQLite storage provider for testing.
// Migrations are applied on open and the provider is closed when the test
// completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    store := testutil.SetupTestStore(t)
//	    // store is ready to use with schema created
//	}
func SetupTestStore(t *testing.T) storage.Provider {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	store, err := sqlite.Open(":memory:")
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}

	t.Cleanup(func() {
		store.Close()
	})

	return store
}

// NewTestTransactionService wires a TransactionService against the given store.
func NewTestTransactionService(t *testing.T, store storage.Provider) *service.TransactionService {
	t.Helper()
	return service.NewTransactionService(repository.NewTransactionRepository(store))
}

// NewTestAssetService wires an AssetService against the given store.
func NewTestAssetService(t *testing.T, store storage.Provider) *service.AssetService {
	t.Helper()
	return service.NewAssetService(repository.NewAssetRepository(store))
}

// NewTestPortfolioService wires a PortfolioService against the given store
// and price source.
func NewTestPortfolioService(t *testing.T, store storage.Provider, priceSource quote.PriceSource) *service.PortfolioService {
	t.Helper()
	return service.NewPortfolioService(NewTestTransactionService(t, store), priceSource)
}
