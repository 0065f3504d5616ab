package http

import (
	"encoding/json"
	"net/http"

	"github.com/sariops/sariops/internal/domain"
	"github.com/sariops/sariops/internal/http/middleware"
	"github.com/sariops/sariops/pkg/logger"
)

type OrderHandler struct {
	service      domain.InvoiceService
	logger       logger.Logger
	getJWTSecret func() ([]byte, error)
}

func NewOrderHandler(service domain.InvoiceService, getJWTSecret func() ([]byte, error), logger logger.Logger) *OrderHandler {
	return &OrderHandler{
		service:      service,
		logger:       logger,
		getJWTSecret: getJWTSecret,
	}
}

type invalidateOrdersRequest struct {
	CustomerID string `json:"customer_id"`
}

func (h *OrderHandler) RegisterRoutes(mux *http.ServeMux) {
	authMiddleware := middleware.NewAuthMiddleware(h.getJWTSecret)
	requireAuth := authMiddleware.RequireAuth()

	mux.Handle("/api/orders.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/orders.invalidate", requireAuth(http.HandlerFunc(h.handleInvalidate)))
}

func (h *OrderHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req := &domain.ListOrdersRequest{}
	if err := req.FromURLParams(r.URL.Query()); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	page, err := h.service.FetchOrders(r.Context(), req.CustomerID, req.Filter, req.Page)
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusInternalServerError {
			h.logger.WithField("error", err.Error()).Error("Failed to fetch orders")
			WriteJSONError(w, "Failed to fetch orders", status)
			return
		}
		WriteJSONError(w, err.Error(), status)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func (h *OrderHandler) handleInvalidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req invalidateOrdersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.CustomerID == "" {
		WriteJSONError(w, "Missing customer ID", http.StatusBadRequest)
		return
	}

	h.service.Invalidate(req.CustomerID)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
