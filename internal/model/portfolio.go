package model

// PortfolioLine is the per-ticker aggregate of one (ticker, asset type) group.
// It is derived on every stats request and never persisted.
type PortfolioLine struct {
	Ticker       string    `json:"ticker"`
	AssetType    AssetType `json:"assetType"`
	Invested     float64   `json:"invested"`
	Quantity     float64   `json:"quantity"`
	CurrentPrice *float64  `json:"currentPrice"` // nil when the live lookup failed
	CurrentValue float64   `json:"currentValue"`
	ProfitLoss   float64   `json:"profitLoss"`
	ReturnPct    float64   `json:"returnPct"`
}

// PortfolioStats aggregates the whole portfolio against live prices.
type PortfolioStats struct {
	TotalInvested     float64         `json:"totalInvested"`
	TotalCurrentValue float64         `json:"totalCurrentValue"`
	Lines             []PortfolioLine `json:"lines"`
}
