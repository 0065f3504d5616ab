package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sariops/sariops/internal/domain"
	"github.com/sariops/sariops/pkg/crypto"
	"github.com/sariops/sariops/pkg/logger"
	"github.com/sariops/sariops/pkg/mailer"
)

// confirmationTokenBytes is the entropy of a confirmation token value.
const confirmationTokenBytes = 32

// NotificationService renders template emails, writes the send log and
// dispatches through the email API. A send failure is terminal on the log
// row until an operator intervenes; nothing retries automatically.
type NotificationService struct {
	customerRepo domain.CustomerRepository
	templateRepo domain.EmailTemplateRepository
	logRepo      domain.EmailLogRepository
	tokenRepo    domain.ConfirmationTokenRepository
	rateLimiter  domain.RateLimitService
	mailer       mailer.Mailer
	logger       logger.Logger

	publicURL string
	fromEmail string
	fromName  string
}

// NewNotificationService creates a new notification dispatcher. publicURL is
// the externally reachable base URL used for links embedded in emails.
func NewNotificationService(
	customerRepo domain.CustomerRepository,
	templateRepo domain.EmailTemplateRepository,
	logRepo domain.EmailLogRepository,
	tokenRepo domain.ConfirmationTokenRepository,
	rateLimiter domain.RateLimitService,
	mailer mailer.Mailer,
	logger logger.Logger,
	publicURL, fromEmail, fromName string,
) *NotificationService {
	return &NotificationService{
		customerRepo: customerRepo,
		templateRepo: templateRepo,
		logRepo:      logRepo,
		tokenRepo:    tokenRepo,
		rateLimiter:  rateLimiter,
		mailer:       mailer,
		logger:       logger,
		publicURL:    strings.TrimSuffix(publicURL, "/"),
		fromEmail:    fromEmail,
		fromName:     fromName,
	}
}

// SendTemplateEmail renders the template for the customer and either sends
// immediately or records a scheduled row for the sweep to pick up.
func (s *NotificationService) SendTemplateEmail(ctx context.Context, params domain.SendTemplateEmailParams) *domain.SendResult {
	if err := params.Validate(); err != nil {
		return &domain.SendResult{ErrorKind: domain.ErrorKindValidation, Error: err.Error()}
	}

	customer, err := s.customerRepo.GetByID(ctx, params.CustomerID)
	if err != nil {
		return sendResultFromError(err)
	}

	template, err := s.templateRepo.GetByID(ctx, params.TemplateID)
	if err != nil {
		return sendResultFromError(err)
	}
	if !template.IsActive {
		return &domain.SendResult{
			ErrorKind: domain.ErrorKindStateConflict,
			Error:     fmt.Sprintf("template %s is inactive", template.ID),
		}
	}

	quota, err := s.rateLimiter.CheckRateLimit(ctx, 1)
	if err != nil {
		return &domain.SendResult{ErrorKind: domain.ErrorKindExternalAPI, Error: err.Error()}
	}
	if !quota.Allowed {
		return &domain.SendResult{
			ErrorKind: domain.ErrorKindStateConflict,
			Error:     fmt.Sprintf("daily email limit reached (%d/%d)", quota.Limit-quota.Remaining, quota.Limit),
		}
	}

	subject, body, err := s.render(ctx, customer, template)
	if err != nil {
		return &domain.SendResult{ErrorKind: domain.ErrorKindExternalAPI, Error: err.Error()}
	}

	log := &domain.EmailLog{
		ID:         uuid.NewString(),
		CustomerID: customer.ID,
		TemplateID: template.ID,
		Recipient:  customer.Email,
		Subject:    subject,
		Status:     domain.EmailLogStatusPending,
	}
	if params.ScheduledFor != nil {
		log.Status = domain.EmailLogStatusScheduled
		log.ScheduledFor = params.ScheduledFor
	}

	if err := s.logRepo.Create(ctx, log); err != nil {
		return &domain.SendResult{ErrorKind: domain.ErrorKindExternalAPI, Error: err.Error()}
	}

	if log.Status == domain.EmailLogStatusScheduled {
		s.logger.WithFields(map[string]interface{}{
			"log_id":        log.ID,
			"scheduled_for": log.ScheduledFor,
		}).Info("Scheduled template email")
		return &domain.SendResult{Success: true, LogID: log.ID}
	}

	if err := s.deliver(ctx, log.ID, customer.Email, subject, body); err != nil {
		return &domain.SendResult{
			LogID:     log.ID,
			ErrorKind: domain.ErrorKindExternalAPI,
			Error:     err.Error(),
		}
	}

	return &domain.SendResult{Success: true, LogID: log.ID}
}

// ProcessScheduledEmails sends every scheduled log whose due time has
// passed and returns how many were delivered. It is a pure sweep: the
// periodic trigger lives outside this service.
func (s *NotificationService) ProcessScheduledEmails(ctx context.Context, now time.Time) (int, error) {
	due, err := s.logRepo.ListDueScheduled(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to load due scheduled emails: %w", err)
	}

	sent := 0
	for _, log := range due {
		customer, err := s.customerRepo.GetByID(ctx, log.CustomerID)
		if err != nil {
			s.failLog(ctx, log.ID, fmt.Sprintf("customer lookup failed: %v", err))
			continue
		}

		template, err := s.templateRepo.GetByID(ctx, log.TemplateID)
		if err != nil {
			s.failLog(ctx, log.ID, fmt.Sprintf("template lookup failed: %v", err))
			continue
		}

		subject, body, err := s.render(ctx, customer, template)
		if err != nil {
			s.failLog(ctx, log.ID, fmt.Sprintf("render failed: %v", err))
			continue
		}

		if err := s.deliver(ctx, log.ID, customer.Email, subject, body); err != nil {
			continue
		}
		sent++
	}

	if len(due) > 0 {
		s.logger.WithFields(map[string]interface{}{
			"due":  len(due),
			"sent": sent,
		}).Info("Processed scheduled emails")
	}

	return sent, nil
}

// render mints a fresh confirmation token for the customer and substitutes
// the variable map into the template. Unknown placeholders stay verbatim.
func (s *NotificationService) render(ctx context.Context, customer *domain.Customer, template *domain.EmailTemplate) (subject, body string, err error) {
	tokenValue, err := crypto.GenerateSecureToken(confirmationTokenBytes)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate confirmation token: %w", err)
	}

	token := &domain.ConfirmationToken{
		ID:         uuid.NewString(),
		Token:      tokenValue,
		CustomerID: customer.ID,
		Purpose:    domain.TokenPurposeDeliveryConfirm,
		ExpiresAt:  time.Now().UTC().Add(domain.ConfirmationTokenTTL),
	}
	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return "", "", fmt.Errorf("failed to store confirmation token: %w", err)
	}

	vars := map[string]string{
		"first_name":          customer.FirstName,
		"last_name":           customer.LastName,
		"email":               customer.Email,
		"update_profile_link": fmt.Sprintf("%s/profile/%s", s.publicURL, customer.ID),
		"confirm_button":      fmt.Sprintf("%s/confirm?token=%s", s.publicURL, tokenValue),
	}

	subject, body = template.Render(vars)
	return subject, body, nil
}

// deliver sends the rendered message and resolves the log row to sent or
// failed.
func (s *NotificationService) deliver(ctx context.Context, logID, to, subject, body string) error {
	from := s.fromEmail
	if s.fromName != "" {
		from = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	providerID, err := s.mailer.Send(ctx, mailer.Message{
		From:    from,
		To:      to,
		Subject: subject,
		Text:    body,
	})
	if err != nil {
		s.failLog(ctx, logID, err.Error())
		return err
	}

	if err := s.logRepo.MarkSent(ctx, logID, time.Now().UTC(), providerID); err != nil {
		s.logger.WithField("log_id", logID).Error("Failed to mark email log sent: " + err.Error())
		return err
	}

	return nil
}

// ValidateConfirmationToken consumes a single-use token. The used_at stamp
// is a conditional update, so of two concurrent validations exactly one
// succeeds.
func (s *NotificationService) ValidateConfirmationToken(ctx context.Context, tokenValue string) (*domain.ConfirmationToken, error) {
	token, err := s.tokenRepo.GetByToken(ctx, tokenValue)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := token.Usable(now); err != nil {
		return nil, err
	}

	used, err := s.tokenRepo.MarkUsed(ctx, token.ID, now)
	if err != nil {
		return nil, err
	}
	if !used {
		return nil, &domain.ErrTokenInvalid{Reason: "already used"}
	}

	token.UsedAt = &now
	return token, nil
}

func (s *NotificationService) failLog(ctx context.Context, logID, msg string) {
	if err := s.logRepo.MarkFailed(ctx, logID, msg); err != nil {
		s.logger.WithField("log_id", logID).Error("Failed to mark email log failed: " + err.Error())
	}
}

// sendResultFromError maps repository errors onto the tagged result.
func sendResultFromError(err error) *domain.SendResult {
	if _, ok := err.(*domain.ErrNotFound); ok {
		return &domain.SendResult{ErrorKind: domain.ErrorKindNotFound, Error: err.Error()}
	}
	return &domain.SendResult{ErrorKind: domain.ErrorKindExternalAPI, Error: err.Error()}
}
