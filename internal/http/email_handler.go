package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/sariops/sariops/internal/domain"
	"github.com/sariops/sariops/internal/http/middleware"
	"github.com/sariops/sariops/pkg/logger"
)

type EmailHandler struct {
	service      domain.NotificationService
	rateLimiter  domain.RateLimitService
	logRepo      domain.EmailLogRepository
	logger       logger.Logger
	getJWTSecret func() ([]byte, error)
}

func NewEmailHandler(
	service domain.NotificationService,
	rateLimiter domain.RateLimitService,
	logRepo domain.EmailLogRepository,
	getJWTSecret func() ([]byte, error),
	logger logger.Logger,
) *EmailHandler {
	return &EmailHandler{
		service:      service,
		rateLimiter:  rateLimiter,
		logRepo:      logRepo,
		logger:       logger,
		getJWTSecret: getJWTSecret,
	}
}

func (h *EmailHandler) RegisterRoutes(mux *http.ServeMux) {
	authMiddleware := middleware.NewAuthMiddleware(h.getJWTSecret)
	requireAuth := authMiddleware.RequireAuth()

	mux.Handle("/api/emails.send", requireAuth(http.HandlerFunc(h.handleSend)))
	mux.Handle("/api/emails.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/emails.quota", requireAuth(http.HandlerFunc(h.handleQuota)))
	mux.Handle("/api/emails.processScheduled", requireAuth(http.HandlerFunc(h.handleProcessScheduled)))
}

func (h *EmailHandler) handleSend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var params domain.SendTemplateEmailParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// The send result is a tagged outcome: quota refusals and delivery
	// failures report 200 with the error kind in the body.
	result := h.service.SendTemplateEmail(r.Context(), params)

	writeJSON(w, http.StatusOK, result)
}

func (h *EmailHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	offset := 0
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	logs, total, err := h.logRepo.List(r.Context(), limit, offset)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list email logs")
		WriteJSONError(w, "Failed to list email logs", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"logs":  logs,
		"total": total,
	})
}

func (h *EmailHandler) handleQuota(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	result, err := h.rateLimiter.CheckRateLimit(r.Context(), 0)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to check email quota")
		WriteJSONError(w, "Failed to check email quota", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *EmailHandler) handleProcessScheduled(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sent, err := h.service.ProcessScheduledEmails(r.Context(), time.Now().UTC())
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to process scheduled emails")
		WriteJSONError(w, "Failed to process scheduled emails", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sent": sent,
	})
}
