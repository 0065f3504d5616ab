package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sariops/sariops/internal/domain"
)

// WriteJSONError writes a JSON error response with the given message and status code.
// It sets the Content-Type header to application/json and automatically formats
// the response as {"error": "message"}.
func WriteJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// writeJSON writes a JSON response with the given status code and data.
// It sets the Content-Type header to application/json.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusFromError maps domain error types to HTTP status codes. Unknown
// errors map to 500 so internals never leak into responses.
func statusFromError(err error) int {
	var notFound *domain.ErrNotFound
	var tokenInvalid *domain.ErrTokenInvalid
	var notConnected *domain.ErrZohoNotConnected
	var validation domain.ValidationError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &tokenInvalid):
		return http.StatusGone
	case errors.As(err, &notConnected):
		return http.StatusServiceUnavailable
	case errors.As(err, &validation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
