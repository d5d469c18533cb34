package testutil

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mvaneerd/investment-tracker-backend/internal/model"
	"github.com/mvaneerd/investment-tracker-backend/internal/storage"
)

// TransactionBuilder provides a fluent interface for creating test transactions.
//
// Example usage:
//
//	// Simple creation with defaults
//	tx := testutil.NewTransaction().Build(t, store)
//
//	// Customized transaction
//	tx := testutil.NewTransaction().
//	    WithTicker("BTC", model.AssetTypeCrypto).
//	    WithAmount(100).
//	    WithQuantity(0.01).
//	    Build(t, store)
type TransactionBuilder struct {
	ID        string
	Date      time.Time
	AssetType model.AssetType
	Ticker    string
	Amount    float64
	Quantity  float64
}

// NewTransaction creates a TransactionBuilder with sensible defaults.
func NewTransaction() *TransactionBuilder {
	return &TransactionBuilder{
		ID:        uuid.New().String(),
		Date:      time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		AssetType: model.AssetTypeStock,
		Ticker:    "AAPL",
		Amount:    500,
		Quantity:  2.5,
	}
}

// WithID sets a custom ID.
func (b *TransactionBuilder) WithID(id string) *TransactionBuilder {
	b.ID = id
	return b
}

// WithDate sets a custom date.
func (b *TransactionBuilder) WithDate(date time.Time) *TransactionBuilder {
	b.Date = date
	return b
}

// WithTicker sets the ticker and asset type.
func (b *TransactionBuilder) WithTicker(ticker string, assetType model.AssetType) *TransactionBuilder {
	b.Ticker = ticker
	b.AssetType = assetType
	return b
}

// WithAmount sets the invested amount.
func (b *TransactionBuilder) WithAmount(amount float64) *TransactionBuilder {
	b.Amount = amount
	return b
}

// WithQuantity sets the acquired quantity.
func (b *TransactionBuilder) WithQuantity(quantity float64) *TransactionBuilder {
	b.Quantity = quantity
	return b
}

// Build persists the transaction through the storage provider and returns it.
func (b *TransactionBuilder) Build(t *testing.T, store storage.Provider) model.Transaction {
	t.Helper()

	row := storage.Row{
		"id":         b.ID,
		"date":       b.Date.Format("2006-01-02"),
		"asset_type": string(b.AssetType),
		"ticker":     b.Ticker,
		"amount":     strconv.FormatFloat(b.Amount, 'f', -1, 64),
		"quantity":   strconv.FormatFloat(b.Quantity, 'f', -1, 64),
	}
	if err := store.Append(context.Background(), storage.TableInvestments, row); err != nil {
		t.Fatalf("Failed to insert test transaction: %v", err)
	}

	return model.Transaction{
		ID:        b.ID,
		Date:      b.Date,
		AssetType: b.AssetType,
		Ticker:    b.Ticker,
		Amount:    b.Amount,
		Quantity:  b.Quantity,
	}
}

// AssetBuilder provides a fluent interface for creating test managed assets.
type AssetBuilder struct {
	ID        string
	Ticker    string
	AssetType model.AssetType
}

// NewAsset creates an AssetBuilder with sensible defaults.
func NewAsset() *AssetBuilder {
	return &AssetBuilder{
		ID:        uuid.New().String(),
		Ticker:    "BTC",
		AssetType: model.AssetTypeCrypto,
	}
}

// WithTicker sets the ticker.
func (b *AssetBuilder) WithTicker(ticker string) *AssetBuilder {
	b.Ticker = ticker
	return b
}

// WithAssetType sets the asset type.
func (b *AssetBuilder) WithAssetType(assetType model.AssetType) *AssetBuilder {
	b.AssetType = assetType
	return b
}

// Build persists the managed asset through the storage provider and returns it.
func (b *AssetBuilder) Build(t *testing.T, store storage.Provider) model.ManagedAsset {
	t.Helper()

	row := storage.Row{
		"id":         b.ID,
		"ticker":     b.Ticker,
		"asset_type": string(b.AssetType),
	}
	if err := store.Append(context.Background(), storage.TableManagedAssets, row); err != nil {
		t.Fatalf("Failed to insert test asset: %v", err)
	}

	return model.ManagedAsset{
		ID:        b.ID,
		Ticker:    b.Ticker,
		AssetType: b.AssetType,
	}
}
