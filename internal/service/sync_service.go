package service

import (
	"context"
	"fmt"

	"github.com/sariops/sariops/internal/domain"
	"github.com/sariops/sariops/pkg/logger"
)

// SyncService drives the customer→contact synchronization state machine:
// pending → syncing → {synced, failed, skipped}. The syncing claim is a
// database conditional update, so two concurrent syncs for one customer
// exclude each other instead of racing past an advisory marker.
type SyncService struct {
	customerRepo domain.CustomerRepository
	matcher      domain.ContactMatcher
	zohoClient   domain.ZohoClient
	logger       logger.Logger
}

// NewSyncService creates a new sync orchestrator.
func NewSyncService(
	customerRepo domain.CustomerRepository,
	matcher domain.ContactMatcher,
	zohoClient domain.ZohoClient,
	logger logger.Logger,
) *SyncService {
	return &SyncService{
		customerRepo: customerRepo,
		matcher:      matcher,
		zohoClient:   zohoClient,
		logger:       logger,
	}
}

// SyncCustomerToZoho links one customer to an accounting contact. New
// customers get a contact created from their profile; returning customers go
// through the matching engine. Every run that claims the row increments the
// attempt counter and stamps the last-sync time, whatever the outcome.
func (s *SyncService) SyncCustomerToZoho(ctx context.Context, customerID string, isReturning bool) *domain.SyncResult {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		if _, ok := err.(*domain.ErrNotFound); ok {
			return &domain.SyncResult{
				Success:   false,
				Status:    domain.SyncStatusFailed,
				ErrorKind: domain.ErrorKindNotFound,
				Error:     err.Error(),
			}
		}
		return &domain.SyncResult{
			Success:   false,
			Status:    domain.SyncStatusFailed,
			ErrorKind: domain.ErrorKindExternalAPI,
			Error:     err.Error(),
		}
	}

	claimed, err := s.customerRepo.MarkSyncing(ctx, customerID)
	if err != nil {
		return &domain.SyncResult{
			Success:   false,
			Status:    domain.SyncStatusFailed,
			ErrorKind: domain.ErrorKindExternalAPI,
			Error:     err.Error(),
		}
	}
	if !claimed {
		return &domain.SyncResult{
			Success:   false,
			Status:    domain.SyncStatusSyncing,
			ErrorKind: domain.ErrorKindStateConflict,
			Error:     "a sync for this customer is already in progress",
		}
	}

	if isReturning {
		return s.syncReturning(ctx, customer)
	}
	return s.syncNew(ctx, customer)
}

// syncNew creates a contact from the customer profile. Address fields are
// best effort since the profile address is optional.
func (s *SyncService) syncNew(ctx context.Context, customer *domain.Customer) *domain.SyncResult {
	contact, err := s.zohoClient.CreateContact(ctx, customer)
	if err != nil {
		return s.finishFailed(ctx, customer.ID, domain.ErrorKindExternalAPI, err.Error())
	}

	s.logger.WithFields(map[string]interface{}{
		"customer_id": customer.ID,
		"contact_id":  contact.ContactID,
	}).Info("Created accounting contact for customer")

	return s.finishSynced(ctx, customer, contact)
}

// syncReturning classifies the customer against the existing contact list.
func (s *SyncService) syncReturning(ctx context.Context, customer *domain.Customer) *domain.SyncResult {
	match := s.matcher.FindMatchingContact(ctx, customer.Email, customer.FullName())

	if match.Error != nil {
		return s.finishFailed(ctx, customer.ID, domain.ErrorKindExternalAPI, match.Error.Error())
	}

	switch match.MatchType {
	case domain.MatchTypeEmail, domain.MatchTypeName:
		return s.finishSynced(ctx, customer, match.Contact)

	case domain.MatchTypeAmbiguous:
		msg := fmt.Sprintf("Multiple matches found (%d). Manual review required before linking.", len(match.AllMatches))
		errMsg := msg
		if err := s.customerRepo.FinishSync(ctx, customer.ID, domain.SyncStatusSkipped, nil, &errMsg); err != nil {
			s.logger.WithField("customer_id", customer.ID).Error("Failed to record skipped sync: " + err.Error())
		}
		return &domain.SyncResult{
			Success:   false,
			Status:    domain.SyncStatusSkipped,
			ErrorKind: domain.ErrorKindStateConflict,
			Error:     msg,
		}

	default:
		return s.finishFailed(ctx, customer.ID, domain.ErrorKindNotFound, "no matching contact found")
	}
}

// finishSynced resolves the contact id with a follow-up email search and
// records the terminal synced state. The extra lookup re-reads what the
// accounting system actually stored; when it is not conclusive the contact
// already in hand is used.
func (s *SyncService) finishSynced(ctx context.Context, customer *domain.Customer, contact *domain.ZohoContact) *domain.SyncResult {
	contactID := contact.ContactID
	if contacts, err := s.zohoClient.SearchContactsByEmail(ctx, customer.Email); err == nil && len(contacts) == 1 {
		contactID = contacts[0].ContactID
	}

	if err := s.customerRepo.FinishSync(ctx, customer.ID, domain.SyncStatusSynced, &contactID, nil); err != nil {
		return &domain.SyncResult{
			Success:   false,
			Status:    domain.SyncStatusFailed,
			ErrorKind: domain.ErrorKindExternalAPI,
			Error:     err.Error(),
		}
	}

	return &domain.SyncResult{Success: true, Status: domain.SyncStatusSynced}
}

func (s *SyncService) finishFailed(ctx context.Context, customerID string, kind domain.ErrorKind, msg string) *domain.SyncResult {
	errMsg := msg
	if err := s.customerRepo.FinishSync(ctx, customerID, domain.SyncStatusFailed, nil, &errMsg); err != nil {
		s.logger.WithField("customer_id", customerID).Error("Failed to record failed sync: " + err.Error())
	}

	return &domain.SyncResult{
		Success:   false,
		Status:    domain.SyncStatusFailed,
		ErrorKind: kind,
		Error:     msg,
	}
}

// ResetSyncStatus is the admin-invoked escape hatch: it clears status, error
// and attempts back to pending. There is no automatic retry.
func (s *SyncService) ResetSyncStatus(ctx context.Context, customerID string) error {
	return s.customerRepo.ResetSyncStatus(ctx, customerID)
}
