package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_confirmation_token_repository.go -package mocks github.com/sariops/sariops/internal/domain ConfirmationTokenRepository

// ConfirmationTokenTTL is how long a delivery-confirmation link stays valid.
const ConfirmationTokenTTL = 30 * 24 * time.Hour

// TokenPurpose scopes what a confirmation token authorizes.
type TokenPurpose string

const (
	// TokenPurposeDeliveryConfirm links a customer to a delivery-confirmation action.
	TokenPurposeDeliveryConfirm TokenPurpose = "delivery_confirm"
)

// ConfirmationToken is a single-use, time-limited token. UsedAt is set at
// most once; expired or used tokens are rejected.
type ConfirmationToken struct {
	ID         string       `json:"id"`
	Token      string       `json:"token"`
	CustomerID string       `json:"customer_id"`
	Purpose    TokenPurpose `json:"purpose"`
	ExpiresAt  time.Time    `json:"expires_at"`
	UsedAt     *time.Time   `json:"used_at,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}

// Usable reports why a token cannot be consumed, or nil when it can.
func (t *ConfirmationToken) Usable(now time.Time) error {
	if t.UsedAt != nil {
		return &ErrTokenInvalid{Reason: "already used"}
	}
	if now.After(t.ExpiresAt) {
		return &ErrTokenInvalid{Reason: "expired"}
	}
	return nil
}

// ConfirmationTokenRepository defines methods for token persistence.
type ConfirmationTokenRepository interface {
	Create(ctx context.Context, token *ConfirmationToken) error
	GetByToken(ctx context.Context, token string) (*ConfirmationToken, error)

	// MarkUsed stamps used_at with a conditional update so a token is
	// consumed at most once even under concurrent validation.
	MarkUsed(ctx context.Context, id string, usedAt time.Time) (bool, error)
}
