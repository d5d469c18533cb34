package model

import "time"

// AssetType classifies a tradable asset.
type AssetType string

// Supported asset types.
const (
	AssetTypeStock  AssetType = "Stock"
	AssetTypeCrypto AssetType = "Crypto"
	AssetTypeETF    AssetType = "ETF"
)

// Transaction represents a single buy transaction: money invested into a
// quantity of an asset on a given calendar date.
type Transaction struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	AssetType AssetType `json:"assetType"`
	Ticker    string    `json:"ticker"`
	Amount    float64   `json:"amount"`
	Quantity  float64   `json:"quantity"`
}
