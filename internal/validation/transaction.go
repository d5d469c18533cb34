package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/mvaneerd/investment-tracker-backend/internal/api/request"
)

// ValidateCreateTransaction validates a transaction creation request.
//
// Required fields:
//   - date: Must be in YYYY-MM-DD format
//   - assetType: Must be one of: Stock, Crypto, ETF
//   - ticker: Must be non-empty
//   - amount: Must be positive
//   - quantity: Must be positive
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	return validateTransactionFields(req.Date, req.AssetType, req.Ticker, req.Amount, req.Quantity)
}

// ValidateUpdateTransaction validates a transaction update request. Updates
// replace every field, so the constraints match create.
func ValidateUpdateTransaction(req request.UpdateTransactionRequest) error {
	return validateTransactionFields(req.Date, req.AssetType, req.Ticker, req.Amount, req.Quantity)
}

func validateTransactionFields(date, assetType, ticker string, amount, quantity float64) error {
	errors := make(map[string]string)

	if strings.TrimSpace(date) == "" {
		errors["date"] = "date is required"
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		errors["date"] = err.Error()
	}

	if strings.TrimSpace(assetType) == "" {
		errors["assetType"] = "assetType is required"
	} else if !ValidAssetType[assetType] {
		errors["assetType"] = fmt.Sprintf("invalid asset type: %s", assetType)
	}

	if strings.TrimSpace(ticker) == "" {
		errors["ticker"] = "ticker is required"
	}

	if amount <= 0.0 {
		errors["amount"] = "amount must be positive"
	}

	if quantity <= 0.0 {
		errors["quantity"] = "quantity must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
