package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPMailer_Send(t *testing.T) {
	var captured Message
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(sendResponse{ID: "msg-123"})
	}))
	defer server.Close()

	m := NewHTTPMailer(&Config{APIKey: "re_test", Endpoint: server.URL})

	id, err := m.Send(context.Background(), Message{
		From:    "Sariops <orders@example.com>",
		To:      "maria@example.com",
		Subject: "Order update",
		Text:    "Your order is on the way.",
	})
	require.NoError(t, err)
	assert.Equal(t, "msg-123", id)
	assert.Equal(t, "maria@example.com", captured.To)
	assert.Equal(t, "Order update", captured.Subject)
}

func TestHTTPMailer_Send_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"invalid recipient"}`))
	}))
	defer server.Close()

	m := NewHTTPMailer(&Config{APIKey: "re_test", Endpoint: server.URL})

	_, err := m.Send(context.Background(), Message{To: "not-an-email"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 422")
}

func TestNewHTTPMailer_DefaultEndpoint(t *testing.T) {
	m := NewHTTPMailer(&Config{APIKey: "re_test"})
	assert.Equal(t, defaultEndpoint, m.config.Endpoint)
}

func TestConsoleMailer_Send(t *testing.T) {
	m := NewConsoleMailer()

	id, err := m.Send(context.Background(), Message{To: "maria@example.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}
