package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sariops/sariops/internal/domain"
	"github.com/sariops/sariops/pkg/logger"
)

// DailyEmailLimit is the fixed outbound-email quota per UTC day.
const DailyEmailLimit = 100

// quotaStatuses are the log statuses that consume quota. Scheduled rows
// count so the quota cannot be evaded by scheduling sends for later.
var quotaStatuses = []domain.EmailLogStatus{
	domain.EmailLogStatusSent,
	domain.EmailLogStatusPending,
	domain.EmailLogStatusScheduled,
}

// RateLimitService enforces the daily email quota against the send log.
// The window is midnight UTC to midnight UTC, deterministic across server
// regions, and admission is all-or-nothing for a batch.
type RateLimitService struct {
	logRepo domain.EmailLogRepository
	logger  logger.Logger
	limit   int
}

// NewRateLimitService creates a new rate limit service with the default
// daily limit.
func NewRateLimitService(logRepo domain.EmailLogRepository, logger logger.Logger) *RateLimitService {
	return &RateLimitService{
		logRepo: logRepo,
		logger:  logger,
		limit:   DailyEmailLimit,
	}
}

// CheckRateLimit reports whether n more sends fit today's quota.
func (s *RateLimitService) CheckRateLimit(ctx context.Context, n int) (*domain.RateLimitResult, error) {
	if n < 0 {
		return nil, domain.NewValidationError("batch size must not be negative")
	}

	now := time.Now().UTC()
	boundary := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	count, err := s.logRepo.CountSince(ctx, boundary, quotaStatuses)
	if err != nil {
		return nil, fmt.Errorf("failed to count today's sends: %w", err)
	}

	remaining := s.limit - count
	if remaining < 0 {
		remaining = 0
	}

	return &domain.RateLimitResult{
		Allowed:   count+n <= s.limit,
		Remaining: remaining,
		Limit:     s.limit,
	}, nil
}
