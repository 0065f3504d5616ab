package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEmailLogStatus_CanTransition(t *testing.T) {
	tests := []struct {
		from    EmailLogStatus
		to      EmailLogStatus
		allowed bool
	}{
		{EmailLogStatusPending, EmailLogStatusSent, true},
		{EmailLogStatusPending, EmailLogStatusFailed, true},
		{EmailLogStatusScheduled, EmailLogStatusSent, true},
		{EmailLogStatusScheduled, EmailLogStatusFailed, true},
		{EmailLogStatusPending, EmailLogStatusScheduled, false},
		{EmailLogStatusScheduled, EmailLogStatusPending, false},
		{EmailLogStatusSent, EmailLogStatusFailed, false},
		{EmailLogStatusSent, EmailLogStatusPending, false},
		{EmailLogStatusFailed, EmailLogStatusSent, false},
		{EmailLogStatusFailed, EmailLogStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransition(tt.to))
		})
	}
}

func TestEmailLog_Due(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	t.Run("scheduled and past due time", func(t *testing.T) {
		log := EmailLog{Status: EmailLogStatusScheduled, ScheduledFor: &past}
		assert.True(t, log.Due(now))
	})

	t.Run("scheduled exactly at due time", func(t *testing.T) {
		log := EmailLog{Status: EmailLogStatusScheduled, ScheduledFor: &now}
		assert.True(t, log.Due(now))
	})

	t.Run("scheduled in the future", func(t *testing.T) {
		log := EmailLog{Status: EmailLogStatusScheduled, ScheduledFor: &future}
		assert.False(t, log.Due(now))
	})

	t.Run("pending is never due", func(t *testing.T) {
		log := EmailLog{Status: EmailLogStatusPending, ScheduledFor: &past}
		assert.False(t, log.Due(now))
	})

	t.Run("scheduled without due time", func(t *testing.T) {
		log := EmailLog{Status: EmailLogStatusScheduled}
		assert.False(t, log.Due(now))
	})
}
