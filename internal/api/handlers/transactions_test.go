package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/mvaneerd/investment-tracker-backend/internal/model"
	"github.com/mvaneerd/investment-tracker-backend/internal/storage"
	"github.com/mvaneerd/investment-tracker-backend/internal/testutil"
)

func setupTransactionHandler(t *testing.T) (*TransactionHandler, storage.Provider) {
	t.Helper()
	store := testutil.SetupTestStore(t)
	ts := testutil.NewTestTransactionService(t, store)
	return NewTransactionHandler(ts), store
}

func TestTransactionHandler_AllTransactions(t *testing.T) {
	t.Run("returns empty array when no transactions exist", func(t *testing.T) {
		handler, _ := setupTransactionHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/transaction", nil)
		w := httptest.NewRecorder()

		handler.AllTransactions(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response []model.Transaction
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response == nil {
			t.Error("Expected non-nil array, got nil")
		}
		if len(response) != 0 {
			t.Errorf("Expected empty array, got %d transactions", len(response))
		}
	})

	t.Run("returns all transactions sorted by date descending", func(t *testing.T) {
		handler, store := setupTransactionHandler(t)

		tx1 := testutil.NewTransaction().Build(t, store)
		tx2 := testutil.NewTransaction().
			WithTicker("BTC", model.AssetTypeCrypto).
			Build(t, store)

		req := httptest.NewRequest(http.MethodGet, "/api/transaction", nil)
		w := httptest.NewRecorder()

		handler.AllTransactions(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response []model.Transaction
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if len(response) != 2 {
			t.Fatalf("Expected 2 transactions, got %d", len(response))
		}

		found := make(map[string]bool)
		for _, tx := range response {
			found[tx.ID] = true
		}
		if !found[tx1.ID] || !found[tx2.ID] {
			t.Errorf("Expected both transactions in response, got %+v", response)
		}
	})
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("creates a transaction and returns 201", func(t *testing.T) {
		handler, _ := setupTransactionHandler(t)

		body := `{"date":"2024-01-15","assetType":"Crypto","ticker":"btc","amount":100,"quantity":0.01}`
		req := httptest.NewRequest(http.MethodPost, "/api/transaction", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var response model.Transaction
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.ID == "" {
			t.Error("Expected a generated id")
		}
		if response.Ticker != "BTC" {
			t.Errorf("Expected normalized ticker BTC, got %s", response.Ticker)
		}
	})

	t.Run("rejects invalid body with 400", func(t *testing.T) {
		handler, _ := setupTransactionHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/transaction", strings.NewReader("{not json"))
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("rejects non-positive amount with 400", func(t *testing.T) {
		handler, _ := setupTransactionHandler(t)

		body := `{"date":"2024-01-15","assetType":"Stock","ticker":"AAPL","amount":0,"quantity":1}`
		req := httptest.NewRequest(http.MethodPost, "/api/transaction", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("rejects unknown asset type with 400", func(t *testing.T) {
		handler, _ := setupTransactionHandler(t)

		body := `{"date":"2024-01-15","assetType":"Bond","ticker":"X","amount":10,"quantity":1}`
		req := httptest.NewRequest(http.MethodPost, "/api/transaction", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}

// withURLParam attaches a chi route context carrying the uuid parameter,
// the way the router does in production.
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestTransactionHandler_UpdateTransaction(t *testing.T) {
	t.Run("replaces the transaction and returns 200", func(t *testing.T) {
		handler, store := setupTransactionHandler(t)

		tx := testutil.NewTransaction().Build(t, store)

		body := `{"date":"2024-02-01","assetType":"Crypto","ticker":"eth","amount":250,"quantity":0.1}`
		req := httptest.NewRequest(http.MethodPut, "/api/transaction/"+tx.ID, strings.NewReader(body))
		req = withURLParam(req, "uuid", tx.ID)
		w := httptest.NewRecorder()

		handler.UpdateTransaction(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response model.Transaction
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.ID != tx.ID {
			t.Errorf("Expected id %s, got %s", tx.ID, response.ID)
		}
		if response.Ticker != "ETH" {
			t.Errorf("Expected ticker ETH, got %s", response.Ticker)
		}
	})

	t.Run("updating a missing id is not an error", func(t *testing.T) {
		handler, _ := setupTransactionHandler(t)

		missingID := "33333333-3333-3333-3333-333333333333"
		body := `{"date":"2024-02-01","assetType":"Stock","ticker":"AAPL","amount":10,"quantity":1}`
		req := httptest.NewRequest(http.MethodPut, "/api/transaction/"+missingID, strings.NewReader(body))
		req = withURLParam(req, "uuid", missingID)
		w := httptest.NewRecorder()

		handler.UpdateTransaction(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200 for missing id, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	t.Run("deletes and stays successful on repeat", func(t *testing.T) {
		handler, store := setupTransactionHandler(t)

		tx := testutil.NewTransaction().Build(t, store)

		for i := 0; i < 2; i++ {
			req := httptest.NewRequest(http.MethodDelete, "/api/transaction/"+tx.ID, nil)
			req = withURLParam(req, "uuid", tx.ID)
			w := httptest.NewRecorder()

			handler.DeleteTransaction(w, req)

			if w.Code != http.StatusNoContent {
				t.Errorf("Delete attempt %d: expected 204, got %d: %s", i+1, w.Code, w.Body.String())
			}
		}
	})
}
