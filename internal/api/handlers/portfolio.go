package handlers

import (
	"net/http"

	"github.com/mvaneerd/investment-tracker-backend/internal/api/response"
	"github.com/mvaneerd/investment-tracker-backend/internal/service"
)

// PortfolioHandler handles HTTP requests for portfolio statistics.
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler with the provided service dependency.
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// PortfolioStats handles GET requests for aggregated portfolio statistics.
// With no transactions recorded there is nothing to aggregate and the
// response is 204, which the presentation layer renders as "no data yet".
//
// Endpoint: GET /api/portfolio/stats
// Response: 200 OK with PortfolioStats, or 204 No Content when empty
func (h *PortfolioHandler) PortfolioStats(w http.ResponseWriter, r *http.Request) {
	stats := h.portfolioService.GetPortfolioStats(r.Context())
	if stats == nil {
		response.RespondJSON(w, http.StatusNoContent, nil)
		return
	}

	response.RespondJSON(w, http.StatusOK, stats)
}
