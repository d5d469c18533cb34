package apperrors

import "errors"

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrDuplicateTicker indicates that a managed asset with the same ticker
	// already exists (compared case-insensitively).
	ErrDuplicateTicker = errors.New("ticker already exists")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyTicker indicates that a required ticker symbol is missing.
	ErrEmptyTicker = errors.New("ticker cannot be empty")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data.
var (
	ErrFailedToRetrieveTransactions = errors.New("failed to retrieve transactions")
	ErrFailedToRetrieveAssets       = errors.New("failed to retrieve managed assets")
	ErrFailedToGetPortfolioStats    = errors.New("failed to get portfolio statistics")
)
