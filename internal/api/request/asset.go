package request

type CreateAssetRequest struct {
	Ticker    string `json:"ticker"`
	AssetType string `json:"assetType"`
}
