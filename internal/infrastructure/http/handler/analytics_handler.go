package handler

import (
	"log/slog"
	"net/http"

	"github.com/mrops-br/inventory-dashboard-api/internal/app/service"
	"github.com/mrops-br/inventory-dashboard-api/internal/infrastructure/http/response"
)

// AnalyticsHandler serves the derived dashboard and analytics views.
type AnalyticsHandler struct {
	service *service.AnalyticsService
	logger  *slog.Logger
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(service *service.AnalyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		logger:  logger,
	}
}

// Dashboard handles GET /dashboard
func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Dashboard(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, err)
		return
	}

	response.JSON(w, http.StatusOK, stats)
}

// Analytics handles GET /analytics
func (h *AnalyticsHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Analytics(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, err)
		return
	}

	response.JSON(w, http.StatusOK, stats)
}
