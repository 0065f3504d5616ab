package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sariops/sariops/internal/domain"
	"github.com/sariops/sariops/internal/domain/mocks"
	"github.com/sariops/sariops/pkg/logger"
)

func TestContactMatcher_FindMatchingContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	contact := &domain.ZohoContact{ContactID: "123", ContactName: "Maria Santos", Email: "maria@example.com"}

	t.Run("single email hit", func(t *testing.T) {
		zohoClient := mocks.NewMockZohoClient(ctrl)
		zohoClient.EXPECT().
			SearchContactsByEmail(gomock.Any(), "maria@example.com").
			Return([]*domain.ZohoContact{contact}, nil)

		matcher := NewContactMatcherService(zohoClient, logger.NewTestLogger(t))
		match := matcher.FindMatchingContact(ctx, "maria@example.com", "Maria Santos")

		assert.Equal(t, domain.MatchTypeEmail, match.MatchType)
		require.NotNil(t, match.Contact)
		assert.Equal(t, "123", match.Contact.ContactID)
		assert.NoError(t, match.Error)
	})

	t.Run("multiple email hits are ambiguous", func(t *testing.T) {
		zohoClient := mocks.NewMockZohoClient(ctrl)
		zohoClient.EXPECT().
			SearchContactsByEmail(gomock.Any(), "maria@example.com").
			Return([]*domain.ZohoContact{contact, contact, contact}, nil)

		matcher := NewContactMatcherService(zohoClient, logger.NewTestLogger(t))
		match := matcher.FindMatchingContact(ctx, "maria@example.com", "Maria Santos")

		assert.Equal(t, domain.MatchTypeAmbiguous, match.MatchType)
		assert.Nil(t, match.Contact)
		assert.Len(t, match.AllMatches, 3)
	})

	t.Run("name match after empty email search", func(t *testing.T) {
		zohoClient := mocks.NewMockZohoClient(ctrl)
		zohoClient.EXPECT().
			SearchContactsByEmail(gomock.Any(), "maria@example.com").
			Return(nil, nil)
		zohoClient.EXPECT().
			SearchContactsByName(gomock.Any(), "Maria Santos").
			Return([]*domain.ZohoContact{contact}, nil)

		matcher := NewContactMatcherService(zohoClient, logger.NewTestLogger(t))
		match := matcher.FindMatchingContact(ctx, "maria@example.com", "Maria Santos")

		assert.Equal(t, domain.MatchTypeName, match.MatchType)
		require.NotNil(t, match.Contact)
		assert.Equal(t, "123", match.Contact.ContactID)
	})

	t.Run("multiple name hits are ambiguous", func(t *testing.T) {
		zohoClient := mocks.NewMockZohoClient(ctrl)
		zohoClient.EXPECT().
			SearchContactsByEmail(gomock.Any(), "maria@example.com").
			Return(nil, nil)
		zohoClient.EXPECT().
			SearchContactsByName(gomock.Any(), "Maria Santos").
			Return([]*domain.ZohoContact{contact, contact}, nil)

		matcher := NewContactMatcherService(zohoClient, logger.NewTestLogger(t))
		match := matcher.FindMatchingContact(ctx, "maria@example.com", "Maria Santos")

		assert.Equal(t, domain.MatchTypeAmbiguous, match.MatchType)
		assert.Len(t, match.AllMatches, 2)
	})

	t.Run("no hits at all", func(t *testing.T) {
		zohoClient := mocks.NewMockZohoClient(ctrl)
		zohoClient.EXPECT().
			SearchContactsByEmail(gomock.Any(), "maria@example.com").
			Return(nil, nil)
		zohoClient.EXPECT().
			SearchContactsByName(gomock.Any(), "Maria Santos").
			Return(nil, nil)

		matcher := NewContactMatcherService(zohoClient, logger.NewTestLogger(t))
		match := matcher.FindMatchingContact(ctx, "maria@example.com", "Maria Santos")

		assert.Equal(t, domain.MatchTypeNone, match.MatchType)
		assert.NoError(t, match.Error)
	})

	t.Run("empty name skips name search", func(t *testing.T) {
		zohoClient := mocks.NewMockZohoClient(ctrl)
		zohoClient.EXPECT().
			SearchContactsByEmail(gomock.Any(), "maria@example.com").
			Return(nil, nil)

		matcher := NewContactMatcherService(zohoClient, logger.NewTestLogger(t))
		match := matcher.FindMatchingContact(ctx, "maria@example.com", "")

		assert.Equal(t, domain.MatchTypeNone, match.MatchType)
	})

	t.Run("transport failure surfaces as error field", func(t *testing.T) {
		zohoClient := mocks.NewMockZohoClient(ctrl)
		zohoClient.EXPECT().
			SearchContactsByEmail(gomock.Any(), "maria@example.com").
			Return(nil, errors.New("connection refused"))

		matcher := NewContactMatcherService(zohoClient, logger.NewTestLogger(t))
		match := matcher.FindMatchingContact(ctx, "maria@example.com", "Maria Santos")

		assert.Equal(t, domain.MatchTypeNone, match.MatchType)
		assert.Error(t, match.Error)
	})
}
