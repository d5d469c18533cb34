package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mvaneerd/investment-tracker-backend/internal/api/request"
	"github.com/mvaneerd/investment-tracker-backend/internal/api/response"
	"github.com/mvaneerd/investment-tracker-backend/internal/apperrors"
	"github.com/mvaneerd/investment-tracker-backend/internal/model"
	"github.com/mvaneerd/investment-tracker-backend/internal/service"
	"github.com/mvaneerd/investment-tracker-backend/internal/validation"
)

// AssetHandler handles HTTP requests for managed asset endpoints.
type AssetHandler struct {
	assetService *service.AssetService
}

// NewAssetHandler creates a new AssetHandler with the provided service dependency.
func NewAssetHandler(assetService *service.AssetService) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
	}
}

// ListAssets handles GET requests to retrieve managed assets, optionally
// filtered by asset type.
//
// Endpoint: GET /api/asset?type=Crypto
// Response: 200 OK with array of ManagedAsset
// Error: 400 Bad Request if the type filter is not a known asset type
// Error: 500 Internal Server Error if retrieval fails
func (h *AssetHandler) ListAssets(w http.ResponseWriter, r *http.Request) {
	assetType := r.URL.Query().Get("type")
	if assetType != "" && !validation.ValidAssetType[assetType] {
		response.RespondError(w, http.StatusBadRequest, "invalid asset type", fmt.Sprintf("unknown type: %s", assetType))
		return
	}

	assets, err := h.assetService.ListAssets(r.Context(), model.AssetType(assetType))
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveAssets.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, assets)
}

// CreateAsset handles POST requests to register a new managed asset.
// A ticker that already exists case-insensitively yields 409 Conflict.
//
// Endpoint: POST /api/asset
// Request Body: CreateAssetRequest (ticker, assetType)
// Response: 201 Created with ManagedAsset
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 409 Conflict if the ticker already exists
// Error: 500 Internal Server Error if creation fails
func (h *AssetHandler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateAssetRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateAsset(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	asset, ok, err := h.assetService.AddAsset(r.Context(), req.Ticker, model.AssetType(req.AssetType))
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to add managed asset", err.Error())
		return
	}
	if !ok {
		response.RespondError(w, http.StatusConflict, apperrors.ErrDuplicateTicker.Error(), fmt.Sprintf("asset %s already exists", req.Ticker))
		return
	}

	response.RespondJSON(w, http.StatusCreated, asset)
}

// DeleteAsset handles DELETE requests to remove a managed asset.
// Deleting an id that does not exist is a no-op.
//
// Endpoint: DELETE /api/asset/{uuid}
// Response: 204 No Content
// Error: 400 Bad Request if the id is invalid (validated by middleware)
// Error: 500 Internal Server Error if the deletion fails
func (h *AssetHandler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "uuid")

	if err := h.assetService.DeleteAsset(r.Context(), assetID); err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to delete managed asset", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
