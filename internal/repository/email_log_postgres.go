package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/sariops/sariops/internal/domain"
)

const emailLogColumns = `id, customer_id, template_id, recipient, subject, status,
		scheduled_for, sent_at, error_message, provider_id, created_at`

// EmailLogRepository implements domain.EmailLogRepository
type EmailLogRepository struct {
	db *sql.DB
}

// NewEmailLogRepository creates a new instance of the repository
func NewEmailLogRepository(db *sql.DB) *EmailLogRepository {
	return &EmailLogRepository{db: db}
}

// Create adds a new email log row
func (r *EmailLogRepository) Create(ctx context.Context, log *domain.EmailLog) error {
	log.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO email_logs (
			id, customer_id, template_id, recipient, subject, status,
			scheduled_for, sent_at, error_message, provider_id, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		log.ID,
		log.CustomerID,
		log.TemplateID,
		log.Recipient,
		log.Subject,
		log.Status,
		log.ScheduledFor,
		log.SentAt,
		log.ErrorMessage,
		log.ProviderID,
		log.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create email log: %w", err)
	}

	return nil
}

func scanEmailLog(row interface{ Scan(...interface{}) error }) (*domain.EmailLog, error) {
	var log domain.EmailLog
	err := row.Scan(
		&log.ID,
		&log.CustomerID,
		&log.TemplateID,
		&log.Recipient,
		&log.Subject,
		&log.Status,
		&log.ScheduledFor,
		&log.SentAt,
		&log.ErrorMessage,
		&log.ProviderID,
		&log.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// GetByID retrieves an email log by ID
func (r *EmailLogRepository) GetByID(ctx context.Context, id string) (*domain.EmailLog, error) {
	query := `SELECT ` + emailLogColumns + ` FROM email_logs WHERE id = $1`

	log, err := scanEmailLog(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewErrEmailLogNotFound(id)
		}
		return nil, fmt.Errorf("failed to get email log: %w", err)
	}

	return log, nil
}

// List retrieves email logs newest first
func (r *EmailLogRepository) List(ctx context.Context, limit, offset int) ([]*domain.EmailLog, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM email_logs`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count email logs: %w", err)
	}

	query := `SELECT ` + emailLogColumns + ` FROM email_logs ORDER BY created_at DESC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list email logs: %w", err)
	}
	defer rows.Close()

	var logs []*domain.EmailLog
	for rows.Next() {
		log, err := scanEmailLog(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan email log: %w", err)
		}
		logs = append(logs, log)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating email log rows: %w", err)
	}

	return logs, total, nil
}

// MarkSent resolves a pending or scheduled log to sent. The status guard in
// the WHERE clause keeps the state machine from moving backward.
func (r *EmailLogRepository) MarkSent(ctx context.Context, id string, sentAt time.Time, providerID string) error {
	query := `
		UPDATE email_logs
		SET status = $1, sent_at = $2, provider_id = $3
		WHERE id = $4 AND status IN ($5, $6)
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		domain.EmailLogStatusSent,
		sentAt,
		providerID,
		id,
		domain.EmailLogStatusPending,
		domain.EmailLogStatusScheduled,
	)
	if err != nil {
		return fmt.Errorf("failed to mark email log sent: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return domain.NewErrEmailLogNotFound(id)
	}

	return nil
}

// MarkFailed resolves a pending or scheduled log to failed.
func (r *EmailLogRepository) MarkFailed(ctx context.Context, id string, errMsg string) error {
	query := `
		UPDATE email_logs
		SET status = $1, error_message = $2
		WHERE id = $3 AND status IN ($4, $5)
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		domain.EmailLogStatusFailed,
		errMsg,
		id,
		domain.EmailLogStatusPending,
		domain.EmailLogStatusScheduled,
	)
	if err != nil {
		return fmt.Errorf("failed to mark email log failed: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return domain.NewErrEmailLogNotFound(id)
	}

	return nil
}

// CountSince counts logs created at or after the boundary with any of the
// given statuses.
func (r *EmailLogRepository) CountSince(ctx context.Context, since time.Time, statuses []domain.EmailLogStatus) (int, error) {
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}

	query, args, err := psql.
		Select("COUNT(*)").
		From("email_logs").
		Where(sq.GtOrEq{"created_at": since}).
		Where(sq.Eq{"status": values}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count email logs: %w", err)
	}

	return count, nil
}

// ListDueScheduled returns scheduled logs whose due time has passed,
// oldest first.
func (r *EmailLogRepository) ListDueScheduled(ctx context.Context, now time.Time) ([]*domain.EmailLog, error) {
	query := `SELECT ` + emailLogColumns + `
		FROM email_logs
		WHERE status = $1 AND scheduled_for <= $2
		ORDER BY scheduled_for ASC`

	rows, err := r.db.QueryContext(ctx, query, domain.EmailLogStatusScheduled, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list due scheduled emails: %w", err)
	}
	defer rows.Close()

	var logs []*domain.EmailLog
	for rows.Next() {
		log, err := scanEmailLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan email log: %w", err)
		}
		logs = append(logs, log)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating email log rows: %w", err)
	}

	return logs, nil
}
