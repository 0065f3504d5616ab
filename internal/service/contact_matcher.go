package service

import (
	"context"

	"github.com/sariops/sariops/internal/domain"
	"github.com/sariops/sariops/pkg/logger"
)

// ContactMatcherService classifies a customer against the accounting contact
// list. Email search runs first; name search only when email yields nothing.
// It is read-only against the external system.
type ContactMatcherService struct {
	zohoClient domain.ZohoClient
	logger     logger.Logger
}

// NewContactMatcherService creates a new contact matcher.
func NewContactMatcherService(zohoClient domain.ZohoClient, logger logger.Logger) *ContactMatcherService {
	return &ContactMatcherService{
		zohoClient: zohoClient,
		logger:     logger,
	}
}

// FindMatchingContact classifies the matching outcome. A transport or auth
// failure is reported through the Error field instead of a panic or a bare
// error return so callers can degrade gracefully.
func (s *ContactMatcherService) FindMatchingContact(ctx context.Context, email, name string) *domain.ContactMatch {
	contacts, err := s.zohoClient.SearchContactsByEmail(ctx, email)
	if err != nil {
		s.logger.WithField("email", email).Error("Contact search by email failed: " + err.Error())
		return &domain.ContactMatch{MatchType: domain.MatchTypeNone, Error: err}
	}

	switch {
	case len(contacts) == 1:
		return &domain.ContactMatch{MatchType: domain.MatchTypeEmail, Contact: contacts[0]}
	case len(contacts) > 1:
		return &domain.ContactMatch{MatchType: domain.MatchTypeAmbiguous, AllMatches: contacts}
	}

	if name == "" {
		return &domain.ContactMatch{MatchType: domain.MatchTypeNone}
	}

	contacts, err = s.zohoClient.SearchContactsByName(ctx, name)
	if err != nil {
		s.logger.WithField("name", name).Error("Contact search by name failed: " + err.Error())
		return &domain.ContactMatch{MatchType: domain.MatchTypeNone, Error: err}
	}

	switch {
	case len(contacts) == 1:
		return &domain.ContactMatch{MatchType: domain.MatchTypeName, Contact: contacts[0]}
	case len(contacts) > 1:
		return &domain.ContactMatch{MatchType: domain.MatchTypeAmbiguous, AllMatches: contacts}
	}

	return &domain.ContactMatch{MatchType: domain.MatchTypeNone}
}
