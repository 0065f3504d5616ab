package domain

import (
	"net/http"
)

//go:generate mockgen -destination mocks/mock_http_client.go -package mocks github.com/sariops/sariops/internal/domain HTTPClient

// HTTPClient allows mocking of HTTP requests to external APIs.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// getFirstValue returns the first value for a key in URL query values.
func getFirstValue(values map[string][]string, key string) string {
	if vals, ok := values[key]; ok && len(vals) > 0 {
		return vals[0]
	}
	return ""
}
