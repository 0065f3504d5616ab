package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sariops/sariops/internal/domain"
)

// zohoTokenRowID pins the single token row for the one connected account.
const zohoTokenRowID = 1

// ZohoTokenRepository implements domain.ZohoTokenRepository
type ZohoTokenRepository struct {
	db *sql.DB
}

// NewZohoTokenRepository creates a new instance of the repository
func NewZohoTokenRepository(db *sql.DB) *ZohoTokenRepository {
	return &ZohoTokenRepository{db: db}
}

// Get retrieves the persisted OAuth token. A missing row means the
// integration has never been connected.
func (r *ZohoTokenRepository) Get(ctx context.Context) (*domain.ZohoToken, error) {
	var token domain.ZohoToken
	err := r.db.QueryRowContext(ctx,
		"SELECT access_token, refresh_token, expires_at, updated_at FROM zoho_tokens WHERE id = $1",
		zohoTokenRowID,
	).Scan(&token.AccessToken, &token.RefreshToken, &token.ExpiresAt, &token.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.ErrZohoNotConnected{Reason: "no token stored"}
		}
		return nil, err
	}

	return &token, nil
}

// Save upserts the single token row
func (r *ZohoTokenRepository) Save(ctx context.Context, token *domain.ZohoToken) error {
	token.UpdatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO zoho_tokens (id, access_token, refresh_token, expires_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id)
		DO UPDATE SET
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			expires_at = EXCLUDED.expires_at,
			updated_at = EXCLUDED.updated_at
	`, zohoTokenRowID, token.AccessToken, token.RefreshToken, token.ExpiresAt, token.UpdatedAt)

	return err
}
