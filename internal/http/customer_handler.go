package http

import (
	"encoding/json"
	"net/http"

	"github.com/sariops/sariops/internal/domain"
	"github.com/sariops/sariops/internal/http/middleware"
	"github.com/sariops/sariops/pkg/logger"
)

type CustomerHandler struct {
	service      domain.CustomerService
	logger       logger.Logger
	getJWTSecret func() ([]byte, error)
}

func NewCustomerHandler(service domain.CustomerService, getJWTSecret func() ([]byte, error), logger logger.Logger) *CustomerHandler {
	return &CustomerHandler{
		service:      service,
		logger:       logger,
		getJWTSecret: getJWTSecret,
	}
}

type updateCustomerRequest struct {
	ID string `json:"id"`
	domain.UpdateCustomerParams
}

func (h *CustomerHandler) RegisterRoutes(mux *http.ServeMux) {
	authMiddleware := middleware.NewAuthMiddleware(h.getJWTSecret)
	requireAuth := authMiddleware.RequireAuth()

	// Registration is the public storefront entry point; the rest is admin.
	mux.HandleFunc("/api/customers.register", h.handleRegister)
	mux.Handle("/api/customers.get", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/customers.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("/api/customers.list", requireAuth(http.HandlerFunc(h.handleList)))
}

func (h *CustomerHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var params domain.RegisterCustomerParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	customer, err := h.service.Register(r.Context(), params)
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusInternalServerError {
			h.logger.WithField("error", err.Error()).Error("Failed to register customer")
			WriteJSONError(w, "Failed to register customer", status)
			return
		}
		WriteJSONError(w, err.Error(), status)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"customer": customer,
	})
}

func (h *CustomerHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		WriteJSONError(w, "Missing customer ID", http.StatusBadRequest)
		return
	}

	customer, err := h.service.Get(r.Context(), id)
	if err != nil {
		if _, ok := err.(*domain.ErrNotFound); ok {
			WriteJSONError(w, "Customer not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to get customer")
		WriteJSONError(w, "Failed to get customer", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"customer": customer,
	})
}

func (h *CustomerHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req updateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ID == "" {
		WriteJSONError(w, "Missing customer ID", http.StatusBadRequest)
		return
	}

	customer, err := h.service.Update(r.Context(), req.ID, req.UpdateCustomerParams)
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusInternalServerError {
			h.logger.WithField("error", err.Error()).Error("Failed to update customer")
			WriteJSONError(w, "Failed to update customer", status)
			return
		}
		WriteJSONError(w, err.Error(), status)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"customer": customer,
	})
}

func (h *CustomerHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req := &domain.ListCustomersRequest{}
	if err := req.FromURLParams(r.URL.Query()); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	customers, total, err := h.service.List(r.Context(), domain.CustomerListFilter{
		SyncStatus: domain.SyncStatus(req.SyncStatus),
		Search:     req.Search,
		Limit:      req.Limit,
		Offset:     req.Offset,
	})
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list customers")
		WriteJSONError(w, "Failed to list customers", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"customers": customers,
		"total":     total,
	})
}
