package validation

import (
	"errors"
	"testing"

	"github.com/mvaneerd/investment-tracker-backend/internal/api/request"
)

func TestValidateCreateTransaction(t *testing.T) {
	valid := request.CreateTransactionRequest{
		Date:      "2024-01-15",
		AssetType: "Crypto",
		Ticker:    "BTC",
		Amount:    100,
		Quantity:  0.01,
	}

	t.Run("accepts a valid request", func(t *testing.T) {
		if err := ValidateCreateTransaction(valid); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	tests := []struct {
		name      string
		mutate    func(r *request.CreateTransactionRequest)
		wantField string
	}{
		{
			name:      "missing date",
			mutate:    func(r *request.CreateTransactionRequest) { r.Date = "" },
			wantField: "date",
		},
		{
			name:      "malformed date",
			mutate:    func(r *request.CreateTransactionRequest) { r.Date = "15-01-2024" },
			wantField: "date",
		},
		{
			name:      "missing asset type",
			mutate:    func(r *request.CreateTransactionRequest) { r.AssetType = "" },
			wantField: "assetType",
		},
		{
			name:      "unknown asset type",
			mutate:    func(r *request.CreateTransactionRequest) { r.AssetType = "Bond" },
			wantField: "assetType",
		},
		{
			name:      "missing ticker",
			mutate:    func(r *request.CreateTransactionRequest) { r.Ticker = "  " },
			wantField: "ticker",
		},
		{
			name:      "zero amount",
			mutate:    func(r *request.CreateTransactionRequest) { r.Amount = 0 },
			wantField: "amount",
		},
		{
			name:      "negative quantity",
			mutate:    func(r *request.CreateTransactionRequest) { r.Quantity = -1 },
			wantField: "quantity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := ValidateCreateTransaction(req)
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}

			var vErr *Error
			if !errors.As(err, &vErr) {
				t.Fatalf("Expected *validation.Error, got %T", err)
			}
			if _, ok := vErr.Fields[tt.wantField]; !ok {
				t.Errorf("Expected error on field %s, got %v", tt.wantField, vErr.Fields)
			}
		})
	}

	t.Run("reports every failing field at once", func(t *testing.T) {
		err := ValidateCreateTransaction(request.CreateTransactionRequest{})
		var vErr *Error
		if !errors.As(err, &vErr) {
			t.Fatalf("Expected *validation.Error, got %T", err)
		}
		for _, field := range []string{"date", "assetType", "ticker", "amount", "quantity"} {
			if _, ok := vErr.Fields[field]; !ok {
				t.Errorf("Expected error on field %s, got %v", field, vErr.Fields)
			}
		}
	})
}
