package domain

import (
	"context"
	"strconv"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_customer_repository.go -package mocks github.com/sariops/sariops/internal/domain CustomerRepository
//go:generate mockgen -destination mocks/mock_customer_service.go -package mocks github.com/sariops/sariops/internal/domain CustomerService

// SyncStatus is the accounting-sync state of a customer.
type SyncStatus string

const (
	// SyncStatusPending means the customer has never been synced.
	SyncStatusPending SyncStatus = "pending"
	// SyncStatusSyncing marks an in-flight sync. It is claimed with a
	// conditional update so concurrent syncs for one customer exclude
	// each other.
	SyncStatusSyncing SyncStatus = "syncing"
	// SyncStatusSynced means the customer is linked to a Zoho contact.
	SyncStatusSynced SyncStatus = "synced"
	// SyncStatusFailed means the last sync attempt errored.
	SyncStatusFailed SyncStatus = "failed"
	// SyncStatusSkipped means the sync needs human review (ambiguous match)
	// and is never auto-resolved.
	SyncStatusSkipped SyncStatus = "skipped"
)

// DeliveryPreference is how the customer wants orders handed over.
type DeliveryPreference string

const (
	DeliveryPreferencePickup   DeliveryPreference = "pickup"
	DeliveryPreferenceDelivery DeliveryPreference = "delivery"
)

// Address is the optional delivery address of a customer. Fields reference
// PSGC codes where available.
type Address struct {
	RegionCode   string `json:"region_code,omitempty"`
	ProvinceCode string `json:"province_code,omitempty"`
	CityCode     string `json:"city_code,omitempty"`
	BarangayCode string `json:"barangay_code,omitempty"`
	Street       string `json:"street,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
}

// Customer is a registered shop customer. Sync fields are mutated only by
// the sync service; ZohoContactID is non-nil only when ZohoSyncStatus is
// synced.
type Customer struct {
	ID                 string             `json:"id"`
	Email              string             `json:"email"`
	FirstName          string             `json:"first_name"`
	LastName           string             `json:"last_name"`
	Phone              string             `json:"phone,omitempty"`
	Address            Address            `json:"address"`
	DeliveryPreference DeliveryPreference `json:"delivery_preference"`
	IsReturning        bool               `json:"is_returning"`

	ZohoContactID    *string    `json:"zoho_contact_id,omitempty"`
	ZohoSyncStatus   SyncStatus `json:"zoho_sync_status"`
	ZohoSyncError    *string    `json:"zoho_sync_error,omitempty"`
	ZohoSyncAttempts int        `json:"zoho_sync_attempts"`
	ZohoLastSyncAt   *time.Time `json:"zoho_last_sync_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName returns "First Last" for display and contact creation.
func (c *Customer) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// Validate checks the customer fields that must hold before persistence.
func (c *Customer) Validate() error {
	if c.Email == "" {
		return NewValidationError("email is required")
	}
	if !govalidator.IsEmail(c.Email) {
		return NewValidationError("email is invalid")
	}
	if c.FirstName == "" && c.LastName == "" {
		return NewValidationError("a first or last name is required")
	}
	switch c.DeliveryPreference {
	case DeliveryPreferencePickup, DeliveryPreferenceDelivery:
	default:
		return NewValidationError("delivery_preference must be pickup or delivery")
	}
	return nil
}

// CustomerListFilter narrows List queries.
type CustomerListFilter struct {
	SyncStatus SyncStatus
	Search     string
	Limit      int
	Offset     int
}

// CustomerRepository defines methods for customer persistence.
type CustomerRepository interface {
	Create(ctx context.Context, customer *Customer) error
	GetByID(ctx context.Context, id string) (*Customer, error)
	GetByEmail(ctx context.Context, email string) (*Customer, error)
	Update(ctx context.Context, customer *Customer) error
	List(ctx context.Context, filter CustomerListFilter) ([]*Customer, int, error)

	// MarkSyncing claims the customer for a sync run with a conditional
	// update. It returns false when another sync already holds the row.
	MarkSyncing(ctx context.Context, id string) (bool, error)

	// FinishSync records the terminal state of a sync run. Attempts and the
	// last-sync timestamp are stamped unconditionally; the contact id is
	// persisted only for the synced status.
	FinishSync(ctx context.Context, id string, status SyncStatus, contactID *string, syncErr *string) error

	// ResetSyncStatus clears status, error and attempts back to pending.
	ResetSyncStatus(ctx context.Context, id string) error
}

// CustomerService defines customer profile operations used by handlers.
type CustomerService interface {
	Register(ctx context.Context, params RegisterCustomerParams) (*Customer, error)
	Get(ctx context.Context, id string) (*Customer, error)
	Update(ctx context.Context, id string, params UpdateCustomerParams) (*Customer, error)
	List(ctx context.Context, filter CustomerListFilter) ([]*Customer, int, error)
}

// RegisterCustomerParams contains the parameters for registering a customer.
type RegisterCustomerParams struct {
	Email              string             `json:"email"`
	FirstName          string             `json:"first_name"`
	LastName           string             `json:"last_name"`
	Phone              string             `json:"phone,omitempty"`
	Address            Address            `json:"address"`
	DeliveryPreference DeliveryPreference `json:"delivery_preference"`
	IsReturning        bool               `json:"is_returning"`
}

// UpdateCustomerParams contains the mutable profile fields.
type UpdateCustomerParams struct {
	FirstName          string              `json:"first_name,omitempty"`
	LastName           string              `json:"last_name,omitempty"`
	Phone              string              `json:"phone,omitempty"`
	Address            *Address            `json:"address,omitempty"`
	DeliveryPreference *DeliveryPreference `json:"delivery_preference,omitempty"`
}

// ListCustomersRequest represents a request to list customers.
type ListCustomersRequest struct {
	SyncStatus string `json:"sync_status,omitempty"`
	Search     string `json:"search,omitempty"`
	Limit      int    `json:"limit,omitempty"`
	Offset     int    `json:"offset,omitempty"`
}

// FromURLParams populates the request from URL query parameters.
func (req *ListCustomersRequest) FromURLParams(values map[string][]string) error {
	req.SyncStatus = getFirstValue(values, "sync_status")
	req.Search = getFirstValue(values, "search")

	if limitStr := getFirstValue(values, "limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			req.Limit = limit
		}
	}

	if offsetStr := getFirstValue(values, "offset"); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil {
			req.Offset = offset
		}
	}

	switch SyncStatus(req.SyncStatus) {
	case "", SyncStatusPending, SyncStatusSyncing, SyncStatusSynced, SyncStatusFailed, SyncStatusSkipped:
	default:
		return NewValidationError("sync_status is invalid")
	}

	return nil
}
