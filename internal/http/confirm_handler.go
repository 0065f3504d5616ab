package http

import (
	"errors"
	"net/http"

	"github.com/sariops/sariops/internal/domain"
	"github.com/sariops/sariops/pkg/logger"
)

// ConfirmHandler consumes delivery-confirmation links from outgoing emails.
// Public by design: the recipient follows the link without a session.
type ConfirmHandler struct {
	service domain.NotificationService
	logger  logger.Logger
}

func NewConfirmHandler(service domain.NotificationService, logger logger.Logger) *ConfirmHandler {
	return &ConfirmHandler{
		service: service,
		logger:  logger,
	}
}

func (h *ConfirmHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/confirm", h.handleConfirm)
}

func (h *ConfirmHandler) handleConfirm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tokenValue := r.URL.Query().Get("token")
	if tokenValue == "" {
		WriteJSONError(w, "Missing token", http.StatusBadRequest)
		return
	}

	token, err := h.service.ValidateConfirmationToken(r.Context(), tokenValue)
	if err != nil {
		var tokenInvalid *domain.ErrTokenInvalid
		if errors.As(err, &tokenInvalid) {
			WriteJSONError(w, err.Error(), http.StatusGone)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to validate confirmation token")
		WriteJSONError(w, "Failed to validate confirmation token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"confirmed":   true,
		"customer_id": token.CustomerID,
		"purpose":     token.Purpose,
	})
}
