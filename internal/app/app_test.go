package app

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sariops/sariops/config"
	"github.com/sariops/sariops/internal/database/schema"
	"github.com/sariops/sariops/pkg/logger"
	"github.com/sariops/sariops/pkg/mailer"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:      config.ServerConfig{Host: "127.0.0.1", Port: 0},
		Auth:        config.AuthConfig{JWTSecret: "test-secret"},
		PSGC:        config.PSGCConfig{Endpoint: "https://psgc.example.com/api"},
		APIEndpoint: "https://shop.example.com",
		LogLevel:    "error",
		Version:     "test",
	}
}

func newInitializedApp(t *testing.T) *App {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	for range schema.TableDefinitions {
		mock.ExpectExec("CREATE").WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectClose()

	a := NewApp(testConfig(),
		WithMockDB(db),
		WithMockMailer(mailer.NewConsoleMailer()),
		WithLogger(logger.NewTestLogger(t)),
	)
	require.NoError(t, a.Initialize())
	return a
}

func TestApp_Initialize(t *testing.T) {
	a := newInitializedApp(t)

	assert.NotNil(t, a.GetDB())
	assert.NotNil(t, a.GetMailer())
	assert.NotNil(t, a.GetMux())
	assert.Equal(t, "test", a.GetConfig().Version)
}

func TestApp_RegistersRoutes(t *testing.T) {
	a := newInitializedApp(t)

	endpoints := []string{
		"/api/customers.register",
		"/api/customers.get",
		"/api/customers.update",
		"/api/customers.list",
		"/api/customers.sync",
		"/api/customers.resetSync",
		"/api/orders.list",
		"/api/orders.invalidate",
		"/api/templates.list",
		"/api/templates.get",
		"/api/templates.create",
		"/api/templates.update",
		"/api/templates.deactivate",
		"/api/emails.send",
		"/api/emails.list",
		"/api/emails.quota",
		"/api/emails.processScheduled",
		"/api/locations.list",
		"/api/locations.search",
		"/api/locations.barangays",
		"/confirm",
		"/health",
	}

	for _, endpoint := range endpoints {
		h, pattern := a.GetMux().Handler(&http.Request{URL: &url.URL{Path: endpoint}, Method: http.MethodGet})
		assert.NotNil(t, h, "expected handler for %s", endpoint)
		assert.Equal(t, endpoint, pattern, "expected exact route for %s", endpoint)
	}
}

func TestApp_InitMailer_ConsoleFallback(t *testing.T) {
	a := NewApp(testConfig(), WithLogger(logger.NewTestLogger(t)))
	require.NoError(t, a.InitMailer())

	_, ok := a.GetMailer().(*mailer.ConsoleMailer)
	assert.True(t, ok)
}

func TestApp_Shutdown(t *testing.T) {
	a := newInitializedApp(t)

	require.NoError(t, a.Shutdown(context.Background()))
}
