package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mvaneerd/investment-tracker-backend/internal/model"
	"github.com/mvaneerd/investment-tracker-backend/internal/storage"
	"github.com/mvaneerd/investment-tracker-backend/internal/testutil"
)

func setupAssetHandler(t *testing.T) (*AssetHandler, storage.Provider) {
	t.Helper()
	store := testutil.SetupTestStore(t)
	as := testutil.NewTestAssetService(t, store)
	return NewAssetHandler(as), store
}

func TestAssetHandler_ListAssets(t *testing.T) {
	t.Run("returns all assets", func(t *testing.T) {
		handler, store := setupAssetHandler(t)

		testutil.NewAsset().WithTicker("BTC").WithAssetType(model.AssetTypeCrypto).Build(t, store)
		testutil.NewAsset().WithTicker("AAPL").WithAssetType(model.AssetTypeStock).Build(t, store)

		req := httptest.NewRequest(http.MethodGet, "/api/asset", nil)
		w := httptest.NewRecorder()

		handler.ListAssets(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response []model.ManagedAsset
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if len(response) != 2 {
			t.Errorf("Expected 2 assets, got %d", len(response))
		}
	})

	t.Run("filters by asset type", func(t *testing.T) {
		handler, store := setupAssetHandler(t)

		testutil.NewAsset().WithTicker("BTC").WithAssetType(model.AssetTypeCrypto).Build(t, store)
		testutil.NewAsset().WithTicker("AAPL").WithAssetType(model.AssetTypeStock).Build(t, store)

		req := httptest.NewRequest(http.MethodGet, "/api/asset?type=Crypto", nil)
		w := httptest.NewRecorder()

		handler.ListAssets(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response []model.ManagedAsset
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if len(response) != 1 || response[0].Ticker != "BTC" {
			t.Errorf("Expected only BTC, got %+v", response)
		}
	})

	t.Run("rejects unknown type filter with 400", func(t *testing.T) {
		handler, _ := setupAssetHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/asset?type=Bond", nil)
		w := httptest.NewRecorder()

		handler.ListAssets(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestAssetHandler_CreateAsset(t *testing.T) {
	t.Run("creates an asset and returns 201", func(t *testing.T) {
		handler, _ := setupAssetHandler(t)

		body := `{"ticker":"sol","assetType":"Crypto"}`
		req := httptest.NewRequest(http.MethodPost, "/api/asset", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.CreateAsset(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var response model.ManagedAsset
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.Ticker != "SOL" {
			t.Errorf("Expected normalized ticker SOL, got %s", response.Ticker)
		}
		if response.ID == "" {
			t.Error("Expected a generated id")
		}
	})

	t.Run("duplicate ticker returns 409", func(t *testing.T) {
		handler, store := setupAssetHandler(t)

		testutil.NewAsset().WithTicker("BTC").WithAssetType(model.AssetTypeCrypto).Build(t, store)

		body := `{"ticker":"btc","assetType":"Crypto"}`
		req := httptest.NewRequest(http.MethodPost, "/api/asset", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.CreateAsset(w, req)

		if w.Code != http.StatusConflict {
			t.Errorf("Expected 409, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("rejects missing ticker with 400", func(t *testing.T) {
		handler, _ := setupAssetHandler(t)

		body := `{"ticker":"","assetType":"Crypto"}`
		req := httptest.NewRequest(http.MethodPost, "/api/asset", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.CreateAsset(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestAssetHandler_DeleteAsset(t *testing.T) {
	t.Run("deletes and stays successful on repeat", func(t *testing.T) {
		handler, store := setupAssetHandler(t)

		asset := testutil.NewAsset().WithTicker("BTC").WithAssetType(model.AssetTypeCrypto).Build(t, store)

		for i := 0; i < 2; i++ {
			req := httptest.NewRequest(http.MethodDelete, "/api/asset/"+asset.ID, nil)
			req = withURLParam(req, "uuid", asset.ID)
			w := httptest.NewRecorder()

			handler.DeleteAsset(w, req)

			if w.Code != http.StatusNoContent {
				t.Errorf("Delete attempt %d: expected 204, got %d: %s", i+1, w.Code, w.Body.String())
			}
		}
	})
}
