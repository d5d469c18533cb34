package quote

// Response represents the raw JSON response structure from the Yahoo Finance
// chart API. Close prices are pointers because the API returns null entries
// for halted or partially traded days.
type Response struct {
	Chart struct {
		Result []Result `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// Result is a single chart result: symbol metadata plus the daily quote series.
type Result struct {
	Meta struct {
		Currency           string  `json:"currency"`
		Symbol             string  `json:"symbol"`
		ExchangeName       string  `json:"exchangeName"`
		RegularMarketPrice float64 `json:"regularMarketPrice"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Open   []*float64 `json:"open"`
			Close  []*float64 `json:"close"`
			High   []*float64 `json:"high"`
			Low    []*float64 `json:"low"`
			Volume []*int64   `json:"volume"`
		} `json:"quote"`
	} `json:"indicators"`
}
