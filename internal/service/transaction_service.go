package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mvaneerd/investment-tracker-backend/internal/api/request"
	"github.com/mvaneerd/investment-tracker-backend/internal/model"
	"github.com/mvaneerd/investment-tracker-backend/internal/repository"
	"github.com/mvaneerd/investment-tracker-backend/internal/validation"
)

// TransactionService handles transaction-related business logic operations.
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
}

// NewTransactionService creates a new TransactionService with the provided repository dependencies.
func NewTransactionService(
	transactionRepo *repository.TransactionRepository,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
	}
}

// ListTransactions retrieves all transactions sorted by date descending.
// A storage failure degrades to an empty list so that callers always have a
// usable (if empty) view; the failure is logged, not propagated.
func (s *TransactionService) ListTransactions(ctx context.Context) []model.Transaction {
	transactions, err := s.transactionRepo.GetTransactions(ctx)
	if err != nil {
		log.Printf("Failed to list transactions, returning empty: %v", err)
		return []model.Transaction{}
	}
	return transactions
}

// CreateTransaction validates and persists a new transaction. The ticker is
// normalized to uppercase and the id is freshly generated.
func (s *TransactionService) CreateTransaction(ctx context.Context, req request.CreateTransactionRequest) (*model.Transaction, error) {
	transaction, err := transactionFromRequest(uuid.New().String(), req.Date, req.AssetType, req.Ticker, req.Amount, req.Quantity)
	if err != nil {
		return nil, err
	}

	if err := s.transactionRepo.InsertTransaction(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return transaction, nil
}

// UpdateTransaction replaces all mutable fields of the transaction matching
// id. Updating a missing id is a silent no-op.
func (s *TransactionService) UpdateTransaction(ctx context.Context, id string, req request.UpdateTransactionRequest) (*model.Transaction, error) {
	transaction, err := transactionFromRequest(id, req.Date, req.AssetType, req.Ticker, req.Amount, req.Quantity)
	if err != nil {
		return nil, err
	}

	if err := s.transactionRepo.ReplaceTransaction(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return transaction, nil
}

// DeleteTransaction removes the transaction matching id. Deleting a missing
// id is a silent no-op, so the operation is idempotent.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id string) error {
	if err := s.transactionRepo.DeleteTransaction(ctx, id); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}

// transactionFromRequest builds a validated Transaction. Handlers validate
// requests before they reach the service, but the store must not silently
// accept invalid values either, so the constraints are enforced again here.
func transactionFromRequest(id, date, assetType, ticker string, amount, quantity float64) (*model.Transaction, error) {
	fields := make(map[string]string)

	transactionDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		fields["date"] = err.Error()
	}
	if strings.TrimSpace(ticker) == "" {
		fields["ticker"] = "ticker is required"
	}
	if amount <= 0 {
		fields["amount"] = "amount must be positive"
	}
	if quantity <= 0 {
		fields["quantity"] = "quantity must be positive"
	}
	if len(fields) > 0 {
		return nil, &validation.Error{Fields: fields}
	}

	return &model.Transaction{
		ID:        id,
		Date:      transactionDate,
		AssetType: model.AssetType(assetType),
		Ticker:    strings.ToUpper(strings.TrimSpace(ticker)),
		Amount:    amount,
		Quantity:  quantity,
	}, nil
}
