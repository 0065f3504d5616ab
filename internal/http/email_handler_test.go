package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sariops/sariops/internal/domain"
	"github.com/sariops/sariops/internal/domain/mocks"
	"github.com/sariops/sariops/pkg/logger"
)

type emailHandlerFixture struct {
	service     *mocks.MockNotificationService
	rateLimiter *mocks.MockRateLimitService
	logRepo     *mocks.MockEmailLogRepository
	handler     *EmailHandler
}

func newEmailHandlerFixture(t *testing.T, ctrl *gomock.Controller) *emailHandlerFixture {
	f := &emailHandlerFixture{
		service:     mocks.NewMockNotificationService(ctrl),
		rateLimiter: mocks.NewMockRateLimitService(ctrl),
		logRepo:     mocks.NewMockEmailLogRepository(ctrl),
	}
	f.handler = NewEmailHandler(f.service, f.rateLimiter, f.logRepo, testJWTSecret, logger.NewTestLogger(t))
	return f
}

func TestEmailHandler_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newEmailHandlerFixture(t, ctrl)
	f.service.EXPECT().
		SendTemplateEmail(gomock.Any(), domain.SendTemplateEmailParams{
			CustomerID: "cust-1",
			TemplateID: "tpl-1",
		}).
		Return(&domain.SendResult{Success: true, LogID: "log-1"})

	body, _ := json.Marshal(map[string]interface{}{"customer_id": "cust-1", "template_id": "tpl-1"})
	req := httptest.NewRequest(http.MethodPost, "/api/emails.send", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	f.handler.handleSend(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var result domain.SendResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.True(t, result.Success)
	assert.Equal(t, "log-1", result.LogID)
}

func TestEmailHandler_Send_QuotaRefusalIsStill200(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newEmailHandlerFixture(t, ctrl)
	f.service.EXPECT().
		SendTemplateEmail(gomock.Any(), gomock.Any()).
		Return(&domain.SendResult{
			Success:   false,
			ErrorKind: domain.ErrorKindStateConflict,
			Error:     "daily email limit reached (100/100)",
		})

	body, _ := json.Marshal(map[string]interface{}{"customer_id": "cust-1", "template_id": "tpl-1"})
	req := httptest.NewRequest(http.MethodPost, "/api/emails.send", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	f.handler.handleSend(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "daily email limit reached")
}

func TestEmailHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newEmailHandlerFixture(t, ctrl)
	f.logRepo.EXPECT().
		List(gomock.Any(), 10, 20).
		Return([]*domain.EmailLog{{ID: "log-1", Status: domain.EmailLogStatusSent}}, 31, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/emails.list?limit=10&offset=20", nil)
	rec := httptest.NewRecorder()

	f.handler.handleList(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Logs  []*domain.EmailLog `json:"logs"`
		Total int                `json:"total"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Logs, 1)
	assert.Equal(t, 31, resp.Total)
}

func TestEmailHandler_Quota(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newEmailHandlerFixture(t, ctrl)
	f.rateLimiter.EXPECT().
		CheckRateLimit(gomock.Any(), 0).
		Return(&domain.RateLimitResult{Allowed: true, Remaining: 58, Limit: 100}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/emails.quota", nil)
	rec := httptest.NewRecorder()

	f.handler.handleQuota(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var result domain.RateLimitResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.Equal(t, 58, result.Remaining)
}

func TestEmailHandler_ProcessScheduled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newEmailHandlerFixture(t, ctrl)
	f.service.EXPECT().
		ProcessScheduledEmails(gomock.Any(), gomock.Any()).
		Return(3, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/emails.processScheduled", nil)
	rec := httptest.NewRecorder()

	f.handler.handleProcessScheduled(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Sent int `json:"sent"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 3, resp.Sent)
}

func TestEmailHandler_Send_MethodNotAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newEmailHandlerFixture(t, ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/emails.send", nil)
	rec := httptest.NewRecorder()

	f.handler.handleSend(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
