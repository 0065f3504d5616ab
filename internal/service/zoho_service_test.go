package service

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sariops/sariops/config"
	"github.com/sariops/sariops/internal/domain"
	"github.com/sariops/sariops/internal/domain/mocks"
	"github.com/sariops/sariops/pkg/logger"
)

func zohoTestConfig() config.ZohoConfig {
	return config.ZohoConfig{
		ClientID:         "client-id",
		ClientSecret:     "client-secret",
		RefreshToken:     "configured-refresh",
		OrganizationID:   "org-1",
		AccountsEndpoint: "https://accounts.zoho.example",
		APIEndpoint:      "https://books.zoho.example/api/v3",
	}
}

func freshZohoToken() *domain.ZohoToken {
	return &domain.ZohoToken{
		AccessToken:  "live-token",
		RefreshToken: "stored-refresh",
		ExpiresAt:    time.Now().UTC().Add(time.Hour),
	}
}

func TestZohoService_SearchContactsByEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokenRepo := mocks.NewMockZohoTokenRepository(ctrl)
	httpClient := mocks.NewMockHTTPClient(ctrl)

	tokenRepo.EXPECT().Get(gomock.Any()).Return(freshZohoToken(), nil)
	httpClient.EXPECT().Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, http.MethodGet, req.Method)
			assert.Equal(t, "/api/v3/contacts", req.URL.Path)
			assert.Equal(t, "maria@example.com", req.URL.Query().Get("email"))
			assert.Equal(t, "org-1", req.URL.Query().Get("organization_id"))
			assert.Equal(t, "Zoho-oauthtoken live-token", req.Header.Get("Authorization"))
			return jsonResponse(http.StatusOK, `{"contacts":[{"contact_id":"123","contact_name":"Maria Santos","email":"maria@example.com","status":"active"}]}`), nil
		})

	svc := NewZohoService(tokenRepo, httpClient, logger.NewTestLogger(t), zohoTestConfig())

	contacts, err := svc.SearchContactsByEmail(context.Background(), "maria@example.com")
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "123", contacts[0].ContactID)
	assert.Equal(t, "Maria Santos", contacts[0].ContactName)
}

func TestZohoService_RefreshesExpiredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokenRepo := mocks.NewMockZohoTokenRepository(ctrl)
	httpClient := mocks.NewMockHTTPClient(ctrl)

	expired := &domain.ZohoToken{
		AccessToken:  "stale-token",
		RefreshToken: "stored-refresh",
		ExpiresAt:    time.Now().UTC().Add(-time.Hour),
	}
	tokenRepo.EXPECT().Get(gomock.Any()).Return(expired, nil)

	httpClient.EXPECT().Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, "https://accounts.zoho.example/oauth/v2/token", req.URL.String())

			body, err := io.ReadAll(req.Body)
			require.NoError(t, err)
			form, err := url.ParseQuery(string(body))
			require.NoError(t, err)
			assert.Equal(t, "stored-refresh", form.Get("refresh_token"))
			assert.Equal(t, "client-id", form.Get("client_id"))
			assert.Equal(t, "refresh_token", form.Get("grant_type"))

			return jsonResponse(http.StatusOK, `{"access_token":"minted-token","expires_in":3600}`), nil
		})
	tokenRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, token *domain.ZohoToken) error {
			assert.Equal(t, "minted-token", token.AccessToken)
			assert.Equal(t, "stored-refresh", token.RefreshToken)
			assert.True(t, token.ExpiresAt.After(time.Now().UTC().Add(50*time.Minute)))
			return nil
		})
	httpClient.EXPECT().Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "Zoho-oauthtoken minted-token", req.Header.Get("Authorization"))
			return jsonResponse(http.StatusOK, `{"contacts":[]}`), nil
		})

	svc := NewZohoService(tokenRepo, httpClient, logger.NewTestLogger(t), zohoTestConfig())

	contacts, err := svc.SearchContactsByEmail(context.Background(), "maria@example.com")
	require.NoError(t, err)
	assert.Empty(t, contacts)
}

func TestZohoService_NoStoredTokenUsesConfiguredRefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokenRepo := mocks.NewMockZohoTokenRepository(ctrl)
	httpClient := mocks.NewMockHTTPClient(ctrl)

	tokenRepo.EXPECT().Get(gomock.Any()).Return(nil, &domain.ErrZohoNotConnected{})
	httpClient.EXPECT().Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			body, err := io.ReadAll(req.Body)
			require.NoError(t, err)
			form, err := url.ParseQuery(string(body))
			require.NoError(t, err)
			assert.Equal(t, "configured-refresh", form.Get("refresh_token"))
			return jsonResponse(http.StatusOK, `{"access_token":"minted-token","expires_in":3600}`), nil
		})
	tokenRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	httpClient.EXPECT().Do(gomock.Any()).
		Return(jsonResponse(http.StatusOK, `{"contacts":[]}`), nil)

	svc := NewZohoService(tokenRepo, httpClient, logger.NewTestLogger(t), zohoTestConfig())

	_, err := svc.SearchContactsByEmail(context.Background(), "maria@example.com")
	require.NoError(t, err)
}

func TestZohoService_RefreshFailureIsNotConnected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("rejected by provider", func(t *testing.T) {
		tokenRepo := mocks.NewMockZohoTokenRepository(ctrl)
		httpClient := mocks.NewMockHTTPClient(ctrl)

		tokenRepo.EXPECT().Get(gomock.Any()).Return(nil, &domain.ErrZohoNotConnected{})
		httpClient.EXPECT().Do(gomock.Any()).
			Return(jsonResponse(http.StatusBadRequest, `{"error":"invalid_code"}`), nil)

		svc := NewZohoService(tokenRepo, httpClient, logger.NewTestLogger(t), zohoTestConfig())

		_, err := svc.SearchContactsByEmail(context.Background(), "maria@example.com")
		require.Error(t, err)
		var notConnected *domain.ErrZohoNotConnected
		assert.True(t, errors.As(err, &notConnected))
	})

	t.Run("transport error", func(t *testing.T) {
		tokenRepo := mocks.NewMockZohoTokenRepository(ctrl)
		httpClient := mocks.NewMockHTTPClient(ctrl)

		tokenRepo.EXPECT().Get(gomock.Any()).Return(nil, &domain.ErrZohoNotConnected{})
		httpClient.EXPECT().Do(gomock.Any()).Return(nil, errors.New("connection refused"))

		svc := NewZohoService(tokenRepo, httpClient, logger.NewTestLogger(t), zohoTestConfig())

		_, err := svc.SearchContactsByEmail(context.Background(), "maria@example.com")
		require.Error(t, err)
		var notConnected *domain.ErrZohoNotConnected
		assert.True(t, errors.As(err, &notConnected))
	})

	t.Run("missing credentials", func(t *testing.T) {
		tokenRepo := mocks.NewMockZohoTokenRepository(ctrl)
		tokenRepo.EXPECT().Get(gomock.Any()).Return(nil, &domain.ErrZohoNotConnected{})

		cfg := zohoTestConfig()
		cfg.ClientID = ""

		svc := NewZohoService(tokenRepo, mocks.NewMockHTTPClient(ctrl), logger.NewTestLogger(t), cfg)

		_, err := svc.SearchContactsByEmail(context.Background(), "maria@example.com")
		require.Error(t, err)
		var notConnected *domain.ErrZohoNotConnected
		assert.True(t, errors.As(err, &notConnected))
	})
}

func TestZohoService_CreateContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokenRepo := mocks.NewMockZohoTokenRepository(ctrl)
	httpClient := mocks.NewMockHTTPClient(ctrl)

	tokenRepo.EXPECT().Get(gomock.Any()).Return(freshZohoToken(), nil)
	httpClient.EXPECT().Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, "/api/v3/contacts", req.URL.Path)

			body, err := io.ReadAll(req.Body)
			require.NoError(t, err)
			assert.Contains(t, string(body), `"contact_name":"Maria Santos"`)
			assert.Contains(t, string(body), `"country":"Philippines"`)

			return jsonResponse(http.StatusCreated, `{"contact":{"contact_id":"456","contact_name":"Maria Santos","email":"maria@example.com"}}`), nil
		})

	svc := NewZohoService(tokenRepo, httpClient, logger.NewTestLogger(t), zohoTestConfig())

	contact, err := svc.CreateContact(context.Background(), &domain.Customer{
		Email:     "maria@example.com",
		FirstName: "Maria",
		LastName:  "Santos",
		Address:   domain.Address{Street: "123 Rizal St", PostalCode: "1000"},
	})
	require.NoError(t, err)
	assert.Equal(t, "456", contact.ContactID)
}

func TestZohoService_ListInvoices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokenRepo := mocks.NewMockZohoTokenRepository(ctrl)
	httpClient := mocks.NewMockHTTPClient(ctrl)

	tokenRepo.EXPECT().Get(gomock.Any()).Return(freshZohoToken(), nil).Times(2)

	// One request per status in the completed set: paid, then void.
	httpClient.EXPECT().Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "/api/v3/invoices", req.URL.Path)
			assert.Equal(t, "contact-1", req.URL.Query().Get("customer_id"))
			assert.Equal(t, "paid", req.URL.Query().Get("status"))
			assert.Equal(t, "2", req.URL.Query().Get("page"))
			assert.Equal(t, "date", req.URL.Query().Get("sort_column"))
			assert.Equal(t, "D", req.URL.Query().Get("sort_order"))
			return jsonResponse(http.StatusOK, `{
				"invoices":[{"invoice_id":"inv-1","invoice_number":"INV-001","status":"paid","date":"2025-05-01","total":1234.50,"balance":0,"currency_symbol":"₱"}],
				"page_context":{"page":2,"has_more_page":true,"total":41}
			}`), nil
		})
	httpClient.EXPECT().Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "void", req.URL.Query().Get("status"))
			return jsonResponse(http.StatusOK, `{
				"invoices":[{"invoice_id":"inv-2","invoice_number":"INV-002","status":"void","date":"2025-04-01","total":"99.90","balance":"0"}],
				"page_context":{"page":2,"has_more_page":false,"total":3}
			}`), nil
		})

	svc := NewZohoService(tokenRepo, httpClient, logger.NewTestLogger(t), zohoTestConfig())

	invoices, hasMore, total, err := svc.ListInvoices(context.Background(), "contact-1", domain.InvoiceFilterCompleted.Statuses(), 2)
	require.NoError(t, err)
	require.Len(t, invoices, 2)
	assert.Equal(t, "inv-1", invoices[0].InvoiceID)
	assert.Equal(t, "1234.5", invoices[0].Total.String())
	// String-typed amounts decode the same as bare numbers.
	assert.Equal(t, "99.9", invoices[1].Total.String())
	assert.True(t, hasMore)
	assert.Equal(t, 44, total)
}

func TestZohoService_APIErrorStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokenRepo := mocks.NewMockZohoTokenRepository(ctrl)
	httpClient := mocks.NewMockHTTPClient(ctrl)

	tokenRepo.EXPECT().Get(gomock.Any()).Return(freshZohoToken(), nil)
	httpClient.EXPECT().Do(gomock.Any()).
		Return(jsonResponse(http.StatusTooManyRequests, `{"message":"rate limited"}`), nil)

	svc := NewZohoService(tokenRepo, httpClient, logger.NewTestLogger(t), zohoTestConfig())

	_, err := svc.SearchContactsByName(context.Background(), "Maria")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}
