package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/sariops/sariops/internal/domain"
)

// EmailTemplateRepository implements domain.EmailTemplateRepository
type EmailTemplateRepository struct {
	db *sql.DB
}

// NewEmailTemplateRepository creates a new instance of the repository
func NewEmailTemplateRepository(db *sql.DB) *EmailTemplateRepository {
	return &EmailTemplateRepository{db: db}
}

// Create adds a new email template
func (r *EmailTemplateRepository) Create(ctx context.Context, template *domain.EmailTemplate) error {
	now := time.Now().UTC()
	template.CreatedAt = now
	template.UpdatedAt = now

	query := `
		INSERT INTO email_templates (
			id, name, subject, body, variables, is_active, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		template.ID,
		template.Name,
		template.Subject,
		template.Body,
		pq.Array(template.Variables),
		template.IsActive,
		template.CreatedAt,
		template.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create email template: %w", err)
	}

	return nil
}

// GetByID retrieves a template by ID
func (r *EmailTemplateRepository) GetByID(ctx context.Context, id string) (*domain.EmailTemplate, error) {
	query := `
		SELECT id, name, subject, body, variables, is_active, created_at, updated_at
		FROM email_templates
		WHERE id = $1
	`

	var template domain.EmailTemplate
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&template.ID,
		&template.Name,
		&template.Subject,
		&template.Body,
		pq.Array(&template.Variables),
		&template.IsActive,
		&template.CreatedAt,
		&template.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewErrTemplateNotFound(id)
		}
		return nil, fmt.Errorf("failed to get email template: %w", err)
	}

	return &template, nil
}

// List retrieves templates, optionally only active ones
func (r *EmailTemplateRepository) List(ctx context.Context, activeOnly bool) ([]*domain.EmailTemplate, error) {
	query := `
		SELECT id, name, subject, body, variables, is_active, created_at, updated_at
		FROM email_templates
	`
	if activeOnly {
		query += " WHERE is_active = TRUE"
	}
	query += " ORDER BY name"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list email templates: %w", err)
	}
	defer rows.Close()

	var templates []*domain.EmailTemplate
	for rows.Next() {
		var template domain.EmailTemplate
		err := rows.Scan(
			&template.ID,
			&template.Name,
			&template.Subject,
			&template.Body,
			pq.Array(&template.Variables),
			&template.IsActive,
			&template.CreatedAt,
			&template.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan email template: %w", err)
		}
		templates = append(templates, &template)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating email template rows: %w", err)
	}

	return templates, nil
}

// Update updates an existing template
func (r *EmailTemplateRepository) Update(ctx context.Context, template *domain.EmailTemplate) error {
	template.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE email_templates
		SET name = $1,
			subject = $2,
			body = $3,
			variables = $4,
			updated_at = $5
		WHERE id = $6
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		template.Name,
		template.Subject,
		template.Body,
		pq.Array(template.Variables),
		template.UpdatedAt,
		template.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update email template: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return domain.NewErrTemplateNotFound(template.ID)
	}

	return nil
}

// Deactivate flips a template inactive. Soft only: historical logs keep
// their template reference.
func (r *EmailTemplateRepository) Deactivate(ctx context.Context, id string) error {
	query := `
		UPDATE email_templates
		SET is_active = FALSE, updated_at = $1
		WHERE id = $2 AND is_active = TRUE
	`

	result, err := r.db.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to deactivate email template: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return domain.NewErrTemplateNotFound(id)
	}

	return nil
}
