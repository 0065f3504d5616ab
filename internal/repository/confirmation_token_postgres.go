package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sariops/sariops/internal/domain"
)

// ConfirmationTokenRepository implements domain.ConfirmationTokenRepository
type ConfirmationTokenRepository struct {
	db *sql.DB
}

// NewConfirmationTokenRepository creates a new instance of the repository
func NewConfirmationTokenRepository(db *sql.DB) *ConfirmationTokenRepository {
	return &ConfirmationTokenRepository{db: db}
}

// Create adds a new confirmation token
func (r *ConfirmationTokenRepository) Create(ctx context.Context, token *domain.ConfirmationToken) error {
	token.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO confirmation_tokens (
			id, token, customer_id, purpose, expires_at, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		token.ID,
		token.Token,
		token.CustomerID,
		token.Purpose,
		token.ExpiresAt,
		token.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create confirmation token: %w", err)
	}

	return nil
}

// GetByToken retrieves a token by its opaque value
func (r *ConfirmationTokenRepository) GetByToken(ctx context.Context, tokenValue string) (*domain.ConfirmationToken, error) {
	query := `
		SELECT id, token, customer_id, purpose, expires_at, used_at, created_at
		FROM confirmation_tokens
		WHERE token = $1
	`

	var token domain.ConfirmationToken
	err := r.db.QueryRowContext(ctx, query, tokenValue).Scan(
		&token.ID,
		&token.Token,
		&token.CustomerID,
		&token.Purpose,
		&token.ExpiresAt,
		&token.UsedAt,
		&token.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.ErrTokenInvalid{Reason: "not found"}
		}
		return nil, fmt.Errorf("failed to get confirmation token: %w", err)
	}

	return &token, nil
}

// MarkUsed stamps used_at exactly once. The used_at IS NULL guard makes a
// second concurrent validation lose and report false.
func (r *ConfirmationTokenRepository) MarkUsed(ctx context.Context, id string, usedAt time.Time) (bool, error) {
	query := `
		UPDATE confirmation_tokens
		SET used_at = $1
		WHERE id = $2 AND used_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, usedAt, id)
	if err != nil {
		return false, fmt.Errorf("failed to mark confirmation token used: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}
