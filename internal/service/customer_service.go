package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sariops/sariops/internal/domain"
	"github.com/sariops/sariops/pkg/logger"
)

// CustomerService implements profile CRUD. Sync fields are never touched
// here; they belong to the sync orchestrator.
type CustomerService struct {
	repo   domain.CustomerRepository
	logger logger.Logger
}

// NewCustomerService creates a new customer service.
func NewCustomerService(repo domain.CustomerRepository, logger logger.Logger) *CustomerService {
	return &CustomerService{
		repo:   repo,
		logger: logger,
	}
}

// Register creates a customer in the pending sync state.
func (s *CustomerService) Register(ctx context.Context, params domain.RegisterCustomerParams) (*domain.Customer, error) {
	customer := &domain.Customer{
		ID:                 uuid.NewString(),
		Email:              params.Email,
		FirstName:          params.FirstName,
		LastName:           params.LastName,
		Phone:              params.Phone,
		Address:            params.Address,
		DeliveryPreference: params.DeliveryPreference,
		IsReturning:        params.IsReturning,
		ZohoSyncStatus:     domain.SyncStatusPending,
	}
	if customer.DeliveryPreference == "" {
		customer.DeliveryPreference = domain.DeliveryPreferencePickup
	}

	if err := customer.Validate(); err != nil {
		return nil, err
	}

	if existing, err := s.repo.GetByEmail(ctx, params.Email); err == nil && existing != nil {
		return nil, domain.NewValidationError("a customer with this email already exists")
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, err
	}

	s.logger.WithField("customer_id", customer.ID).Info("Registered customer")

	return customer, nil
}

// Get returns one customer by id.
func (s *CustomerService) Get(ctx context.Context, id string) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies the given profile fields and persists the result. Zero
// values leave the existing field untouched.
func (s *CustomerService) Update(ctx context.Context, id string, params domain.UpdateCustomerParams) (*domain.Customer, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.FirstName != "" {
		customer.FirstName = params.FirstName
	}
	if params.LastName != "" {
		customer.LastName = params.LastName
	}
	if params.Phone != "" {
		customer.Phone = params.Phone
	}
	if params.Address != nil {
		customer.Address = *params.Address
	}
	if params.DeliveryPreference != nil {
		customer.DeliveryPreference = *params.DeliveryPreference
	}
	customer.UpdatedAt = time.Now().UTC()

	if err := customer.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// List returns a page of customers plus the unpaged total.
func (s *CustomerService) List(ctx context.Context, filter domain.CustomerListFilter) ([]*domain.Customer, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	return s.repo.List(ctx, filter)
}
