package http

import (
	"encoding/json"
	"net/http"

	"github.com/sariops/sariops/internal/domain"
	"github.com/sariops/sariops/internal/http/middleware"
	"github.com/sariops/sariops/pkg/logger"
)

type SyncHandler struct {
	service      domain.SyncService
	logger       logger.Logger
	getJWTSecret func() ([]byte, error)
}

func NewSyncHandler(service domain.SyncService, getJWTSecret func() ([]byte, error), logger logger.Logger) *SyncHandler {
	return &SyncHandler{
		service:      service,
		logger:       logger,
		getJWTSecret: getJWTSecret,
	}
}

type resetSyncRequest struct {
	CustomerID string `json:"customer_id"`
}

func (h *SyncHandler) RegisterRoutes(mux *http.ServeMux) {
	authMiddleware := middleware.NewAuthMiddleware(h.getJWTSecret)
	requireAuth := authMiddleware.RequireAuth()

	mux.Handle("/api/customers.sync", requireAuth(http.HandlerFunc(h.handleSync)))
	mux.Handle("/api/customers.resetSync", requireAuth(http.HandlerFunc(h.handleResetSync)))
}

func (h *SyncHandler) handleSync(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.SyncCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// The sync result is a tagged outcome, not an error: skipped and failed
	// runs still report 200 with the terminal state in the body.
	result := h.service.SyncCustomerToZoho(r.Context(), req.CustomerID, req.IsReturning)

	writeJSON(w, http.StatusOK, result)
}

func (h *SyncHandler) handleResetSync(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req resetSyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.CustomerID == "" {
		WriteJSONError(w, "Missing customer ID", http.StatusBadRequest)
		return
	}

	if err := h.service.ResetSyncStatus(r.Context(), req.CustomerID); err != nil {
		if _, ok := err.(*domain.ErrNotFound); ok {
			WriteJSONError(w, "Customer not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to reset sync status")
		WriteJSONError(w, "Failed to reset sync status", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
