package http

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/sipzooppp/orders/internal/adapter/logger"
	"github.com/sipzooppp/orders/internal/interfaces"
)

// AnalyticsHandler serves the sales log tabs: raw order history, the CSV
// export, and the sales summary.
type AnalyticsHandler struct {
	service interfaces.AnalyticsService
	store   interfaces.OrderLogStore
	logger  logger.Logger
}

func NewAnalyticsHandler(service interfaces.AnalyticsService, store interfaces.OrderLogStore, logger logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		store:   store,
		logger:  logger,
	}
}

type SummaryResponse struct {
	TotalOrders    int    `json:"total_orders"`
	GrossRevenue   string `json:"gross_revenue"`
	TotalItemsSold int    `json:"total_items_sold"`
}

// GetSummary handles GET /analytics.
func (h *AnalyticsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
		return
	}

	summary, err := h.service.Summary(r.Context())
	if err != nil {
		h.logger.Error("summary_failed", "Failed to compute sales summary", "", nil, err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, SummaryResponse{
		TotalOrders:    summary.TotalOrders,
		GrossRevenue:   summary.GrossRevenue.StringFixed(2),
		TotalItemsSold: summary.TotalItemsSold,
	})
}

// ListOrders handles GET /orders.
func (h *AnalyticsHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
		return
	}

	records := h.store.All()
	orders := make([]OrderResponse, 0, len(records))
	for _, record := range records {
		orders = append(orders, orderResponse(record))
	}

	respondJSON(w, http.StatusOK, orders)
}

// ExportLog handles GET /orders/export. It serves the persisted file's
// current bytes unchanged.
func (h *AnalyticsHandler) ExportLog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
		return
	}

	data, err := h.store.Export()
	if err != nil {
		h.logger.Error("export_failed", "Failed to export order log", "", nil, err)
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filepath.Base(h.store.Path())))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
