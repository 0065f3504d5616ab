package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sariops/sariops/config"
	"github.com/sariops/sariops/internal/domain"
	"github.com/sariops/sariops/pkg/logger"
)

// tokenRefreshWindow is how close to expiry the access token may get before
// it is refreshed ahead of an API call.
const tokenRefreshWindow = time.Minute

// ZohoService implements domain.ZohoClient against the Zoho Books REST API.
// It owns the OAuth token lifecycle: every call goes through ensureAccessToken,
// which refreshes and persists the token when it is near or past expiry.
type ZohoService struct {
	tokenRepo  domain.ZohoTokenRepository
	httpClient domain.HTTPClient
	logger     logger.Logger
	cfg        config.ZohoConfig
}

// NewZohoService creates a new Zoho Books API client.
func NewZohoService(
	tokenRepo domain.ZohoTokenRepository,
	httpClient domain.HTTPClient,
	logger logger.Logger,
	cfg config.ZohoConfig,
) *ZohoService {
	return &ZohoService{
		tokenRepo:  tokenRepo,
		httpClient: httpClient,
		logger:     logger,
		cfg:        cfg,
	}
}

type refreshResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	Error       string `json:"error,omitempty"`
}

// ensureAccessToken returns a usable access token, refreshing and persisting
// it first when needed. Refresh failures surface as ErrZohoNotConnected so
// request paths can report "not connected" instead of a deep transport error.
func (s *ZohoService) ensureAccessToken(ctx context.Context) (string, error) {
	token, err := s.tokenRepo.Get(ctx)
	if err != nil {
		if _, ok := err.(*domain.ErrZohoNotConnected); !ok {
			return "", fmt.Errorf("failed to load zoho token: %w", err)
		}
		// No token stored yet; mint one from the configured refresh token.
		token = &domain.ZohoToken{RefreshToken: s.cfg.RefreshToken}
	}

	if !token.NeedsRefresh(time.Now().UTC(), tokenRefreshWindow) {
		return token.AccessToken, nil
	}

	return s.refreshAccessToken(ctx, token)
}

func (s *ZohoService) refreshAccessToken(ctx context.Context, token *domain.ZohoToken) (string, error) {
	if s.cfg.ClientID == "" || s.cfg.ClientSecret == "" {
		return "", &domain.ErrZohoNotConnected{Reason: "missing client credentials"}
	}

	refreshToken := token.RefreshToken
	if refreshToken == "" {
		refreshToken = s.cfg.RefreshToken
	}
	if refreshToken == "" {
		return "", &domain.ErrZohoNotConnected{Reason: "missing refresh token"}
	}

	form := url.Values{}
	form.Set("refresh_token", refreshToken)
	form.Set("client_id", s.cfg.ClientID)
	form.Set("client_secret", s.cfg.ClientSecret)
	form.Set("grant_type", "refresh_token")

	endpoint := strings.TrimSuffix(s.cfg.AccountsEndpoint, "/") + "/oauth/v2/token"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token refresh request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", &domain.ErrZohoNotConnected{Reason: fmt.Sprintf("token refresh failed: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", &domain.ErrZohoNotConnected{
			Reason: fmt.Sprintf("token refresh returned status %d: %s", resp.StatusCode, string(body)),
		}
	}

	var result refreshResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", &domain.ErrZohoNotConnected{Reason: fmt.Sprintf("invalid token refresh response: %v", err)}
	}
	if result.Error != "" || result.AccessToken == "" {
		return "", &domain.ErrZohoNotConnected{Reason: fmt.Sprintf("token refresh rejected: %s", result.Error)}
	}

	token.AccessToken = result.AccessToken
	token.RefreshToken = refreshToken
	token.ExpiresAt = time.Now().UTC().Add(time.Duration(result.ExpiresIn) * time.Second)

	if err := s.tokenRepo.Save(ctx, token); err != nil {
		return "", fmt.Errorf("failed to persist refreshed zoho token: %w", err)
	}

	s.logger.WithField("expires_at", token.ExpiresAt).Debug("Refreshed Zoho access token")

	return token.AccessToken, nil
}

// doRequest performs an authenticated Books API call and decodes the JSON
// response into out.
func (s *ZohoService) doRequest(ctx context.Context, method, path string, query url.Values, payload interface{}, out interface{}) error {
	accessToken, err := s.ensureAccessToken(ctx)
	if err != nil {
		return err
	}

	if query == nil {
		query = url.Values{}
	}
	query.Set("organization_id", s.cfg.OrganizationID)

	endpoint := strings.TrimSuffix(s.cfg.APIEndpoint, "/") + path + "?" + query.Encode()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request payload: %w", err)
		}
		body = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Zoho-oauthtoken "+accessToken)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("zoho API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("zoho API returned status %d: %s", resp.StatusCode, string(data))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode zoho API response: %w", err)
		}
	}

	return nil
}

type zohoContactPayload struct {
	ContactID   string `json:"contact_id"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Status      string `json:"status"`
}

func (p *zohoContactPayload) toDomain() *domain.ZohoContact {
	return &domain.ZohoContact{
		ContactID:   p.ContactID,
		ContactName: p.ContactName,
		Email:       p.Email,
		Status:      p.Status,
	}
}

type contactListResponse struct {
	Contacts []*zohoContactPayload `json:"contacts"`
}

// SearchContactsByEmail returns contacts whose email matches exactly.
func (s *ZohoService) SearchContactsByEmail(ctx context.Context, email string) ([]*domain.ZohoContact, error) {
	query := url.Values{}
	query.Set("email", email)

	var result contactListResponse
	if err := s.doRequest(ctx, http.MethodGet, "/contacts", query, nil, &result); err != nil {
		return nil, err
	}

	contacts := make([]*domain.ZohoContact, 0, len(result.Contacts))
	for _, c := range result.Contacts {
		contacts = append(contacts, c.toDomain())
	}
	return contacts, nil
}

// SearchContactsByName returns contacts whose display name contains the query.
func (s *ZohoService) SearchContactsByName(ctx context.Context, name string) ([]*domain.ZohoContact, error) {
	query := url.Values{}
	query.Set("contact_name_contains", name)

	var result contactListResponse
	if err := s.doRequest(ctx, http.MethodGet, "/contacts", query, nil, &result); err != nil {
		return nil, err
	}

	contacts := make([]*domain.ZohoContact, 0, len(result.Contacts))
	for _, c := range result.Contacts {
		contacts = append(contacts, c.toDomain())
	}
	return contacts, nil
}

type createContactRequest struct {
	ContactName    string                 `json:"contact_name"`
	Email          string                 `json:"email,omitempty"`
	Phone          string                 `json:"phone,omitempty"`
	BillingAddress *contactAddressPayload `json:"billing_address,omitempty"`
}

type contactAddressPayload struct {
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	Zip     string `json:"zip,omitempty"`
	Country string `json:"country,omitempty"`
}

type createContactResponse struct {
	Contact *zohoContactPayload `json:"contact"`
}

// CreateContact creates a Books contact from the customer profile. Address
// fields are best effort: the profile address is optional.
func (s *ZohoService) CreateContact(ctx context.Context, customer *domain.Customer) (*domain.ZohoContact, error) {
	payload := &createContactRequest{
		ContactName: customer.FullName(),
		Email:       customer.Email,
		Phone:       customer.Phone,
	}

	if customer.Address.Street != "" || customer.Address.PostalCode != "" {
		payload.BillingAddress = &contactAddressPayload{
			Address: customer.Address.Street,
			Zip:     customer.Address.PostalCode,
			Country: "Philippines",
		}
	}

	var result createContactResponse
	if err := s.doRequest(ctx, http.MethodPost, "/contacts", nil, payload, &result); err != nil {
		return nil, err
	}
	if result.Contact == nil {
		return nil, fmt.Errorf("zoho API returned no contact")
	}

	return result.Contact.toDomain(), nil
}

type invoicePayload struct {
	InvoiceID      string          `json:"invoice_id"`
	InvoiceNumber  string          `json:"invoice_number"`
	Status         string          `json:"status"`
	Date           string          `json:"date"`
	Total          json.RawMessage `json:"total"`
	Balance        json.RawMessage `json:"balance"`
	CurrencySymbol string          `json:"currency_symbol"`
}

type invoiceListResponse struct {
	Invoices    []*invoicePayload `json:"invoices"`
	PageContext struct {
		Page        int  `json:"page"`
		HasMorePage bool `json:"has_more_page"`
		Total       int  `json:"total"`
	} `json:"page_context"`
}

// ListInvoices pages through a contact's invoices, one request per status in
// the set. Results are concatenated; has_more is true when any status has
// another page.
func (s *ZohoService) ListInvoices(ctx context.Context, contactID string, statuses []string, page int) ([]*domain.Invoice, bool, int, error) {
	var invoices []*domain.Invoice
	hasMore := false
	total := 0

	for _, status := range statuses {
		query := url.Values{}
		query.Set("customer_id", contactID)
		query.Set("status", status)
		query.Set("page", fmt.Sprintf("%d", page))
		query.Set("sort_column", "date")
		query.Set("sort_order", "D")

		var result invoiceListResponse
		if err := s.doRequest(ctx, http.MethodGet, "/invoices", query, nil, &result); err != nil {
			return nil, false, 0, err
		}

		for _, p := range result.Invoices {
			invoice, err := p.toDomain()
			if err != nil {
				return nil, false, 0, err
			}
			invoices = append(invoices, invoice)
		}

		hasMore = hasMore || result.PageContext.HasMorePage
		total += result.PageContext.Total
	}

	return invoices, hasMore, total, nil
}

func (p *invoicePayload) toDomain() (*domain.Invoice, error) {
	total, err := parseAmount(p.Total)
	if err != nil {
		return nil, fmt.Errorf("invalid invoice total for %s: %w", p.InvoiceID, err)
	}
	balance, err := parseAmount(p.Balance)
	if err != nil {
		return nil, fmt.Errorf("invalid invoice balance for %s: %w", p.InvoiceID, err)
	}

	return &domain.Invoice{
		InvoiceID:      p.InvoiceID,
		InvoiceNumber:  p.InvoiceNumber,
		Status:         p.Status,
		Date:           p.Date,
		Total:          total,
		Balance:        balance,
		CurrencySymbol: p.CurrencySymbol,
	}, nil
}

// parseAmount accepts both bare numbers and quoted strings, which the
// accounting API mixes depending on the endpoint.
func parseAmount(raw json.RawMessage) (decimal.Decimal, error) {
	if len(raw) == 0 {
		return decimal.Zero, nil
	}
	var d decimal.Decimal
	if err := json.Unmarshal(raw, &d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}
