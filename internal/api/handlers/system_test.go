package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mvaneerd/investment-tracker-backend/internal/service"
	"github.com/mvaneerd/investment-tracker-backend/internal/testutil"
)

func TestSystemHandler_Health(t *testing.T) {
	t.Run("reports healthy when storage is reachable", func(t *testing.T) {
		store := testutil.SetupTestStore(t)
		handler := NewSystemHandler(service.NewSystemService(store))

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		w := httptest.NewRecorder()

		handler.Health(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response HealthResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.Status != "healthy" || response.Storage != "connected" {
			t.Errorf("Unexpected health response: %+v", response)
		}
	})

	t.Run("reports unhealthy when storage is closed", func(t *testing.T) {
		store := testutil.SetupTestStore(t)
		//nolint:errcheck // Closing intentionally to simulate a dead backend
		store.Close()
		handler := NewSystemHandler(service.NewSystemService(store))

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		w := httptest.NewRecorder()

		handler.Health(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("Expected 503, got %d: %s", w.Code, w.Body.String())
		}

		var response HealthResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.Status != "unhealthy" || response.Storage != "disconnected" {
			t.Errorf("Unexpected health response: %+v", response)
		}
		if response.Error == "" {
			t.Error("Expected an error message in the response")
		}
	})
}
