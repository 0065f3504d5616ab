package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_email_log_repository.go -package mocks github.com/sariops/sariops/internal/domain EmailLogRepository
//go:generate mockgen -destination mocks/mock_notification_service.go -package mocks github.com/sariops/sariops/internal/domain NotificationService
//go:generate mockgen -destination mocks/mock_rate_limit_service.go -package mocks github.com/sariops/sariops/internal/domain RateLimitService

// EmailLogStatus is the delivery state of one send attempt.
type EmailLogStatus string

const (
	// EmailLogStatusPending is an immediate send that has not completed yet.
	EmailLogStatusPending EmailLogStatus = "pending"
	// EmailLogStatusScheduled is a send deferred until its due time.
	EmailLogStatusScheduled EmailLogStatus = "scheduled"
	EmailLogStatusSent      EmailLogStatus = "sent"
	EmailLogStatusFailed    EmailLogStatus = "failed"
)

// CanTransition reports whether a log status may move to next. The state
// machine never moves backward: pending and scheduled each resolve to sent
// or failed, and sent/failed are terminal.
func (s EmailLogStatus) CanTransition(next EmailLogStatus) bool {
	switch s {
	case EmailLogStatusPending, EmailLogStatusScheduled:
		return next == EmailLogStatusSent || next == EmailLogStatusFailed
	default:
		return false
	}
}

// EmailLog is the immutable audit record of a single send attempt.
type EmailLog struct {
	ID           string         `json:"id"`
	CustomerID   string         `json:"customer_id"`
	TemplateID   string         `json:"template_id"`
	Recipient    string         `json:"recipient"`
	Subject      string         `json:"subject"`
	Status       EmailLogStatus `json:"status"`
	ScheduledFor *time.Time     `json:"scheduled_for,omitempty"`
	SentAt       *time.Time     `json:"sent_at,omitempty"`
	ErrorMessage *string        `json:"error_message,omitempty"`
	ProviderID   *string        `json:"provider_id,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// Due reports whether a scheduled log should be sent now.
func (l *EmailLog) Due(now time.Time) bool {
	return l.Status == EmailLogStatusScheduled && l.ScheduledFor != nil && !l.ScheduledFor.After(now)
}

// EmailLogRepository defines methods for send-log persistence.
type EmailLogRepository interface {
	Create(ctx context.Context, log *EmailLog) error
	GetByID(ctx context.Context, id string) (*EmailLog, error)
	List(ctx context.Context, limit, offset int) ([]*EmailLog, int, error)

	// MarkSent resolves a pending/scheduled log to sent.
	MarkSent(ctx context.Context, id string, sentAt time.Time, providerID string) error

	// MarkFailed resolves a pending/scheduled log to failed. The failure is
	// terminal until an operator intervenes.
	MarkFailed(ctx context.Context, id string, errMsg string) error

	// CountSince counts logs created at or after the boundary with any of
	// the given statuses. Drives the daily quota.
	CountSince(ctx context.Context, since time.Time, statuses []EmailLogStatus) (int, error)

	// ListDueScheduled returns scheduled logs whose due time has passed.
	ListDueScheduled(ctx context.Context, now time.Time) ([]*EmailLog, error)
}

// RateLimitResult reports whether a batch of n sends fits today's quota.
// Admission is all-or-nothing.
type RateLimitResult struct {
	Allowed   bool `json:"allowed"`
	Remaining int  `json:"remaining"`
	Limit     int  `json:"limit"`
}

// RateLimitService enforces the daily outbound-email quota.
type RateLimitService interface {
	CheckRateLimit(ctx context.Context, n int) (*RateLimitResult, error)
}

// SendResult is the tagged outcome of a template send.
type SendResult struct {
	Success   bool      `json:"success"`
	LogID     string    `json:"log_id,omitempty"`
	ErrorKind ErrorKind `json:"error_kind,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// SendTemplateEmailParams describes one template send.
type SendTemplateEmailParams struct {
	CustomerID   string     `json:"customer_id"`
	TemplateID   string     `json:"template_id"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
}

// Validate validates the send parameters.
func (p *SendTemplateEmailParams) Validate() error {
	if p.CustomerID == "" {
		return NewValidationError("customer_id is required")
	}
	if p.TemplateID == "" {
		return NewValidationError("template_id is required")
	}
	return nil
}

// NotificationService renders and dispatches template emails.
type NotificationService interface {
	SendTemplateEmail(ctx context.Context, params SendTemplateEmailParams) *SendResult

	// ProcessScheduledEmails sends every scheduled log whose due time has
	// passed. The periodic trigger is an external collaborator (cron).
	ProcessScheduledEmails(ctx context.Context, now time.Time) (int, error)

	// ValidateConfirmationToken consumes a single-use token. A second call
	// with the same token fails with "already used".
	ValidateConfirmationToken(ctx context.Context, token string) (*ConfirmationToken, error)
}
