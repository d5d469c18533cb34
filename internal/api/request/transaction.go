package request

type CreateTransactionRequest struct {
	Date      string  `json:"date"`
	AssetType string  `json:"assetType"`
	Ticker    string  `json:"ticker"`
	Amount    float64 `json:"amount"`
	Quantity  float64 `json:"quantity"`
}

// UpdateTransactionRequest replaces every mutable field of a transaction;
// partial updates are not supported.
type UpdateTransactionRequest struct {
	Date      string  `json:"date"`
	AssetType string  `json:"assetType"`
	Ticker    string  `json:"ticker"`
	Amount    float64 `json:"amount"`
	Quantity  float64 `json:"quantity"`
}
