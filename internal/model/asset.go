package model

// ManagedAsset is a ticker pre-registered for quick selection during
// transaction entry. Tickers are unique case-insensitively.
type ManagedAsset struct {
	ID        string    `json:"id"`
	Ticker    string    `json:"ticker"`
	AssetType AssetType `json:"assetType"`
}

// PriceLogEntry records one observed quote for a managed asset.
type PriceLogEntry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Ticker    string    `json:"ticker"`
	AssetType AssetType `json:"assetType"`
	Price     float64   `json:"price"`
}
