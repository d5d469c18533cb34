package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/mvaneerd/investment-tracker-backend/internal/model"
	"github.com/mvaneerd/investment-tracker-backend/internal/storage"
)

// TransactionRepository provides data access methods for the investments
// table. It converts between model types and the string rows of the storage
// provider; ordering is applied here so every backend behaves identically.
type TransactionRepository struct {
	store storage.Provider
}

// NewTransactionRepository creates a new TransactionRepository with the provided storage backend.
func NewTransactionRepository(store storage.Provider) *TransactionRepository {
	return &TransactionRepository{store: store}
}

// GetTransactions retrieves all transactions sorted by date in descending order.
func (r *TransactionRepository) GetTransactions(ctx context.Context) ([]model.Transaction, error) {
	rows, err := r.store.ReadAll(ctx, storage.TableInvestments)
	if err != nil {
		return nil, fmt.Errorf("failed to query investments: %w", err)
	}

	transactions := make([]model.Transaction, 0, len(rows))
	for _, row := range rows {
		t, err := transactionFromRow(row)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})

	return transactions, nil
}

// InsertTransaction persists a new transaction.
func (r *TransactionRepository) InsertTransaction(ctx context.Context, t *model.Transaction) error {
	if err := r.store.Append(ctx, storage.TableInvestments, rowFromTransaction(t)); err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// ReplaceTransaction overwrites all mutable fields of the transaction
// matching t.ID. Replacing a missing id is a no-op.
func (r *TransactionRepository) ReplaceTransaction(ctx context.Context, t *model.Transaction) error {
	if err := r.store.ReplaceByID(ctx, storage.TableInvestments, t.ID, rowFromTransaction(t)); err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	return nil
}

// DeleteTransaction removes the transaction matching id. Deleting a missing
// id is a no-op.
func (r *TransactionRepository) DeleteTransaction(ctx context.Context, id string) error {
	if err := r.store.DeleteByID(ctx, storage.TableInvestments, id); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}

func rowFromTransaction(t *model.Transaction) storage.Row {
	return storage.Row{
		"id":         t.ID,
		"date":       FormatDate(t.Date),
		"asset_type": string(t.AssetType),
		"ticker":     t.Ticker,
		"amount":     formatFloat(t.Amount),
		"quantity":   formatFloat(t.Quantity),
	}
}

func transactionFromRow(row storage.Row) (model.Transaction, error) {
	var t model.Transaction
	var err error

	t.ID = row["id"]
	t.AssetType = model.AssetType(row["asset_type"])
	t.Ticker = row["ticker"]

	t.Date, err = ParseDate(row["date"])
	if err != nil {
		return model.Transaction{}, err
	}
	t.Amount, err = parseFloat(row["amount"], "amount")
	if err != nil {
		return model.Transaction{}, err
	}
	t.Quantity, err = parseFloat(row["quantity"], "quantity")
	if err != nil {
		return model.Transaction{}, err
	}

	return t, nil
}
