package http

import (
	"bytes"
	"context"
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

func testJWTSecret() ([]byte, error) {
	return []byte("test-secret"), nil
}

func TestCustomerHandler_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockCustomerService(ctrl)
	mockService.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params domain.RegisterCustomerParams) (*domain.Customer, error) {
			assert.Equal(t, "maria@example.com", params.Email)
			return &domain.Customer{
				ID:             "cust-1",
				Email:          params.Email,
				FirstName:      params.FirstName,
				ZohoSyncStatus: domain.SyncStatusPending,
			}, nil
		})

	handler := NewCustomerHandler(mockService, testJWTSecret, logger.NewTestLogger(t))

	body, _ := json.Marshal(map[string]interface{}{
		"email":      "maria@example.com",
		"first_name": "Maria",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/customers.register", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.handleRegister(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Customer domain.Customer `json:"customer"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "cust-1", resp.Customer.ID)
	assert.Equal(t, domain.SyncStatusPending, resp.Customer.ZohoSyncStatus)
}

func TestCustomerHandler_Register_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockCustomerService(ctrl)
	mockService.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, domain.NewValidationError("a customer with this email already exists"))

	handler := NewCustomerHandler(mockService, testJWTSecret, logger.NewTestLogger(t))

	body, _ := json.Marshal(map[string]interface{}{"email": "maria@example.com", "first_name": "Maria"})
	req := httptest.NewRequest(http.MethodPost, "/api/customers.register", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.handleRegister(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "already exists")
}

func TestCustomerHandler_Register_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewCustomerHandler(mocks.NewMockCustomerService(ctrl), testJWTSecret, logger.NewTestLogger(t))

	req := httptest.NewRequest(http.MethodPost, "/api/customers.register", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()

	handler.handleRegister(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCustomerHandler_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockCustomerService(ctrl)
	mockService.EXPECT().
		Get(gomock.Any(), "missing").
		Return(nil, domain.NewErrCustomerNotFound("missing"))

	handler := NewCustomerHandler(mockService, testJWTSecret, logger.NewTestLogger(t))

	req := httptest.NewRequest(http.MethodGet, "/api/customers.get?id=missing", nil)
	rec := httptest.NewRecorder()

	handler.handleGet(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCustomerHandler_Get_MissingID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewCustomerHandler(mocks.NewMockCustomerService(ctrl), testJWTSecret, logger.NewTestLogger(t))

	req := httptest.NewRequest(http.MethodGet, "/api/customers.get", nil)
	rec := httptest.NewRecorder()

	handler.handleGet(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCustomerHandler_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockCustomerService(ctrl)
	mockService.EXPECT().
		Update(gomock.Any(), "cust-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, params domain.UpdateCustomerParams) (*domain.Customer, error) {
			assert.Equal(t, "Maria Clara", params.FirstName)
			return &domain.Customer{ID: "cust-1", FirstName: params.FirstName}, nil
		})

	handler := NewCustomerHandler(mockService, testJWTSecret, logger.NewTestLogger(t))

	body, _ := json.Marshal(map[string]interface{}{"id": "cust-1", "first_name": "Maria Clara"})
	req := httptest.NewRequest(http.MethodPost, "/api/customers.update", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.handleUpdate(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCustomerHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockCustomerService(ctrl)
	mockService.EXPECT().
		List(gomock.Any(), domain.CustomerListFilter{SyncStatus: domain.SyncStatusFailed, Limit: 10}).
		Return([]*domain.Customer{{ID: "cust-1"}}, 1, nil)

	handler := NewCustomerHandler(mockService, testJWTSecret, logger.NewTestLogger(t))

	req := httptest.NewRequest(http.MethodGet, "/api/customers.list?sync_status=failed&limit=10", nil)
	rec := httptest.NewRecorder()

	handler.handleList(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Customers []*domain.Customer `json:"customers"`
		Total     int                `json:"total"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Customers, 1)
	assert.Equal(t, 1, resp.Total)
}

func TestCustomerHandler_List_InvalidSyncStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewCustomerHandler(mocks.NewMockCustomerService(ctrl), testJWTSecret, logger.NewTestLogger(t))

	req := httptest.NewRequest(http.MethodGet, "/api/customers.list?sync_status=bogus", nil)
	rec := httptest.NewRecorder()

	handler.handleList(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCustomerHandler_MethodNotAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewCustomerHandler(mocks.NewMockCustomerService(ctrl), testJWTSecret, logger.NewTestLogger(t))

	req := httptest.NewRequest(http.MethodGet, "/api/customers.register", nil)
	rec := httptest.NewRecorder()

	handler.handleRegister(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
