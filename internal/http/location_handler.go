package http

import (
	"net/http"

	"github.com/sariops/sariops/internal/domain"
	"github.com/sariops/sariops/pkg/logger"
)

// LocationHandler serves the PSGC hierarchy. All routes are public: the
// storefront registration form needs them before any login exists.
type LocationHandler struct {
	service domain.LocationService
	logger  logger.Logger
}

func NewLocationHandler(service domain.LocationService, logger logger.Logger) *LocationHandler {
	return &LocationHandler{
		service: service,
		logger:  logger,
	}
}

func (h *LocationHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/locations.list", h.handleList)
	mux.HandleFunc("/api/locations.search", h.handleSearch)
	mux.HandleFunc("/api/locations.barangays", h.handleBarangays)
}

func (h *LocationHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	locations, err := h.service.GetLocations(r.Context())
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to get locations")
		WriteJSONError(w, "Failed to get locations", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, locations)
}

func (h *LocationHandler) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	locations, err := h.service.SearchLocations(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to search locations")
		WriteJSONError(w, "Failed to search locations", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, locations)
}

func (h *LocationHandler) handleBarangays(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	cityCode := r.URL.Query().Get("city_code")
	if cityCode == "" {
		WriteJSONError(w, "Missing city code", http.StatusBadRequest)
		return
	}

	barangays, err := h.service.GetBarangays(r.Context(), cityCode)
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusInternalServerError {
			h.logger.WithField("error", err.Error()).Error("Failed to get barangays")
			WriteJSONError(w, "Failed to get barangays", status)
			return
		}
		WriteJSONError(w, err.Error(), status)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"barangays": barangays,
	})
}
