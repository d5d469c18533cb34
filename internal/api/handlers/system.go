package handlers

import (
	"net/http"

	"github.com/mvaneerd/investment-tracker-backend/internal/api/response"
	"github.com/mvaneerd/investment-tracker-backend/internal/service"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	systemService *service.SystemService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(systemService *service.SystemService) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
	Error   string `json:"error,omitempty"`
}

// Health checks the health of the system and storage connectivity
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.systemService.CheckHealth(r.Context()); err != nil {
		resp := HealthResponse{
			Status:  "unhealthy",
			Storage: "disconnected",
			Error:   err.Error(),
		}
		response.RespondJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	resp := HealthResponse{
		Status:  "healthy",
		Storage: "connected",
	}
	response.RespondJSON(w, http.StatusOK, resp)
}
