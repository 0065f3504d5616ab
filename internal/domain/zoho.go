package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination mocks/mock_zoho_client.go -package mocks github.com/sariops/sariops/internal/domain ZohoClient
//go:generate mockgen -destination mocks/mock_zoho_token_repository.go -package mocks github.com/sariops/sariops/internal/domain ZohoTokenRepository
//go:generate mockgen -destination mocks/mock_contact_matcher.go -package mocks github.com/sariops/sariops/internal/domain ContactMatcher
//go:generate mockgen -destination mocks/mock_sync_service.go -package mocks github.com/sariops/sariops/internal/domain SyncService
//go:generate mockgen -destination mocks/mock_invoice_service.go -package mocks github.com/sariops/sariops/internal/domain InvoiceService

// ZohoToken is the single persisted OAuth token pair for the connected
// accounting account.
type ZohoToken struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NeedsRefresh reports whether the access token is within the refresh
// window of its expiry.
func (t *ZohoToken) NeedsRefresh(now time.Time, window time.Duration) bool {
	return t.AccessToken == "" || !now.Add(window).Before(t.ExpiresAt)
}

// ZohoTokenRepository persists the OAuth token row.
type ZohoTokenRepository interface {
	Get(ctx context.Context) (*ZohoToken, error)
	Save(ctx context.Context, token *ZohoToken) error
}

// ZohoContact is a contact record owned by the accounting system.
type ZohoContact struct {
	ContactID   string `json:"contact_id"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Status      string `json:"status"`
}

// MatchType classifies a contact matching outcome.
type MatchType string

const (
	// MatchTypeEmail means exactly one contact matched by email.
	MatchTypeEmail MatchType = "email"
	// MatchTypeName means exactly one contact matched by name.
	MatchTypeName MatchType = "name"
	// MatchTypeAmbiguous means more than one candidate matched at either
	// stage; the caller must not auto-link.
	MatchTypeAmbiguous MatchType = "ambiguous"
	// MatchTypeNone means no contact matched at all.
	MatchTypeNone MatchType = "none"
)

// ContactMatch is the result of a matching run. A transport or auth failure
// is reported through Error so callers can degrade gracefully.
type ContactMatch struct {
	MatchType  MatchType      `json:"match_type"`
	Contact    *ZohoContact   `json:"contact,omitempty"`
	AllMatches []*ZohoContact `json:"all_matches,omitempty"`
	Error      error          `json:"-"`
}

// ContactMatcher classifies customers against the accounting contact list.
type ContactMatcher interface {
	FindMatchingContact(ctx context.Context, email, name string) *ContactMatch
}

// InvoiceFilter selects one of the two invoice cache partitions.
type InvoiceFilter string

const (
	InvoiceFilterRecent    InvoiceFilter = "recent"
	InvoiceFilterCompleted InvoiceFilter = "completed"
)

// recentStatuses and completedStatuses are the fixed status sets the two
// filters map to. Membership, not invoice dates, decides the bucket.
var (
	recentStatuses    = []string{"sent", "overdue", "partially_paid", "unpaid", "viewed"}
	completedStatuses = []string{"paid", "void"}
)

// Statuses returns the accounting-API status set for the filter.
func (f InvoiceFilter) Statuses() []string {
	if f == InvoiceFilterCompleted {
		return completedStatuses
	}
	return recentStatuses
}

// Valid reports whether the filter is a known partition.
func (f InvoiceFilter) Valid() bool {
	return f == InvoiceFilterRecent || f == InvoiceFilterCompleted
}

// Invoice is an accounting invoice shaped for order display.
type Invoice struct {
	InvoiceID      string          `json:"invoice_id"`
	InvoiceNumber  string          `json:"invoice_number"`
	Status         string          `json:"status"`
	Date           string          `json:"date"`
	Total          decimal.Decimal `json:"total"`
	Balance        decimal.Decimal `json:"balance"`
	CurrencySymbol string          `json:"currency_symbol"`
}

// OrderPage is one cached page of a customer's invoices.
type OrderPage struct {
	Orders   []*Invoice `json:"orders"`
	HasMore  bool       `json:"has_more"`
	Total    int        `json:"total"`
	CachedAt time.Time  `json:"cached_at"`
}

// ZohoClient is the REST surface of the accounting API used by this system.
type ZohoClient interface {
	// SearchContactsByEmail returns contacts whose email matches exactly.
	SearchContactsByEmail(ctx context.Context, email string) ([]*ZohoContact, error)
	// SearchContactsByName returns contacts whose name contains the query.
	SearchContactsByName(ctx context.Context, name string) ([]*ZohoContact, error)
	// CreateContact creates a contact from the customer profile.
	CreateContact(ctx context.Context, customer *Customer) (*ZohoContact, error)
	// ListInvoices pages through invoices with the given status set.
	ListInvoices(ctx context.Context, contactID string, statuses []string, page int) ([]*Invoice, bool, int, error)
}

// SyncResult is the tagged outcome of a customer sync run.
type SyncResult struct {
	Success   bool       `json:"success"`
	Status    SyncStatus `json:"status"`
	ErrorKind ErrorKind  `json:"error_kind,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// SyncService drives the customer→contact synchronization state machine.
type SyncService interface {
	SyncCustomerToZoho(ctx context.Context, customerID string, isReturning bool) *SyncResult
	ResetSyncStatus(ctx context.Context, customerID string) error
}

// InvoiceService serves cached invoice pages.
type InvoiceService interface {
	FetchOrders(ctx context.Context, contactID string, filter InvoiceFilter, page int) (*OrderPage, error)
	Invalidate(contactID string)
}

// SyncCustomerRequest represents a request to sync one customer.
type SyncCustomerRequest struct {
	CustomerID  string `json:"customer_id"`
	IsReturning bool   `json:"is_returning"`
}

// Validate validates the sync request.
func (req *SyncCustomerRequest) Validate() error {
	if req.CustomerID == "" {
		return NewValidationError("customer_id is required")
	}
	return nil
}

// ListOrdersRequest represents a request to list a customer's orders.
type ListOrdersRequest struct {
	CustomerID string        `json:"customer_id"`
	Filter     InvoiceFilter `json:"filter"`
	Page       int           `json:"page"`
}

// FromURLParams populates the request from URL query parameters.
func (req *ListOrdersRequest) FromURLParams(values map[string][]string) error {
	req.CustomerID = getFirstValue(values, "customer_id")
	if req.CustomerID == "" {
		return NewValidationError("customer_id is required")
	}

	req.Filter = InvoiceFilter(getFirstValue(values, "filter"))
	if req.Filter == "" {
		req.Filter = InvoiceFilterRecent
	}
	if !req.Filter.Valid() {
		return NewValidationError("filter must be recent or completed")
	}

	req.Page = 1
	if pageStr := getFirstValue(values, "page"); pageStr != "" {
		if page, err := atoiPositive(pageStr); err == nil {
			req.Page = page
		} else {
			return NewValidationError("page must be a positive integer")
		}
	}

	return nil
}

func atoiPositive(s string) (int, error) {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, NewValidationError("not a number")
		}
		n = n*10 + int(r-'0')
	}
	if n <= 0 {
		return 0, NewValidationError("not positive")
	}
	return n, nil
}
