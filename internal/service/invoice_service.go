package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/sariops/sariops/internal/domain"
	"github.com/sariops/sariops/pkg/cache"
	"github.com/sariops/sariops/pkg/logger"
)

// invoiceCacheTTL is how long one cached invoice page stays fresh.
const invoiceCacheTTL = 5 * time.Minute

// pesoSymbol is used when the accounting system omits a currency symbol.
const pesoSymbol = "₱"

// InvoiceService serves invoice pages from an injected in-memory cache.
// The recent and completed partitions are cached independently so switching
// between them does not refetch already-loaded pages.
type InvoiceService struct {
	zohoClient domain.ZohoClient
	cache      cache.Cache
	logger     logger.Logger
}

// NewInvoiceService creates a new invoice cache service.
func NewInvoiceService(zohoClient domain.ZohoClient, cache cache.Cache, logger logger.Logger) *InvoiceService {
	return &InvoiceService{
		zohoClient: zohoClient,
		cache:      cache,
		logger:     logger,
	}
}

func invoiceCacheKey(contactID string, filter domain.InvoiceFilter, page int) string {
	return fmt.Sprintf("orders:%s:%s:%d", contactID, filter, page)
}

// FetchOrders returns one page of the contact's invoices, from cache when
// fresh. The filter maps to a fixed invoice-status set, not a date heuristic.
func (s *InvoiceService) FetchOrders(ctx context.Context, contactID string, filter domain.InvoiceFilter, page int) (*domain.OrderPage, error) {
	if contactID == "" {
		return nil, domain.NewValidationError("contact id is required")
	}
	if !filter.Valid() {
		return nil, domain.NewValidationError("filter must be recent or completed")
	}
	if page < 1 {
		page = 1
	}

	value, err := s.cache.GetOrSet(invoiceCacheKey(contactID, filter, page), invoiceCacheTTL, func() (interface{}, error) {
		invoices, hasMore, total, err := s.zohoClient.ListInvoices(ctx, contactID, filter.Statuses(), page)
		if err != nil {
			return nil, err
		}

		// Missing symbols default to the peso glyph before the page is cached.
		for _, invoice := range invoices {
			if invoice.CurrencySymbol == "" {
				invoice.CurrencySymbol = pesoSymbol
			}
		}

		return &domain.OrderPage{
			Orders:   invoices,
			HasMore:  hasMore,
			Total:    total,
			CachedAt: time.Now().UTC(),
		}, nil
	})
	if err != nil {
		return nil, err
	}

	orderPage, ok := value.(*domain.OrderPage)
	if !ok {
		return nil, fmt.Errorf("unexpected cache entry type %T", value)
	}

	return orderPage, nil
}

// Invalidate drops every cached page and filter partition for one contact.
func (s *InvoiceService) Invalidate(contactID string) {
	s.cache.DeletePrefix("orders:" + contactID + ":")
}

// FormatAmount renders a two-decimal fixed-point amount with thousands
// grouping, prefixed by the given currency symbol (peso when empty).
func FormatAmount(amount decimal.Decimal, symbol string) string {
	if symbol == "" {
		symbol = pesoSymbol
	}

	value, _ := amount.Float64()
	p := message.NewPrinter(language.English)
	return symbol + p.Sprint(number.Decimal(value,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// RelativeAge renders "updated N minutes ago" style text from a cache
// timestamp. Minutes are integer-floored, never rounded.
func RelativeAge(cachedAt, now time.Time) string {
	elapsed := now.Sub(cachedAt)
	if elapsed < time.Minute {
		return "just now"
	}

	minutes := int(elapsed.Minutes())
	if minutes < 60 {
		if minutes == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", minutes)
	}

	hours := minutes / 60
	if hours < 24 {
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	}

	days := hours / 24
	if days == 1 {
		return "1 day ago"
	}
	return fmt.Sprintf("%d days ago", days)
}
