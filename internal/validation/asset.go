package validation

import (
	"fmt"
	"strings"

	"github.com/mvaneerd/investment-tracker-backend/internal/api/request"
)

// ValidateCreateAsset validates a managed asset creation request.
func ValidateCreateAsset(req request.CreateAssetRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Ticker) == "" {
		errors["ticker"] = "ticker is required"
	}

	if strings.TrimSpace(req.AssetType) == "" {
		errors["assetType"] = "assetType is required"
	} else if !ValidAssetType[req.AssetType] {
		errors["assetType"] = fmt.Sprintf("invalid asset type: %s", req.AssetType)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
