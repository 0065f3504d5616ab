package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sariops/sariops/internal/domain"
	"github.com/sariops/sariops/internal/repository/testutil"
)

func customerRows(c *domain.Customer) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "email", "first_name", "last_name", "phone",
		"region_code", "province_code", "city_code", "barangay_code", "street", "postal_code",
		"delivery_preference", "is_returning",
		"zoho_contact_id", "zoho_sync_status", "zoho_sync_error", "zoho_sync_attempts", "zoho_last_sync_at",
		"created_at", "updated_at",
	}).AddRow(
		c.ID, c.Email, c.FirstName, c.LastName, c.Phone,
		c.Address.RegionCode, c.Address.ProvinceCode, c.Address.CityCode, c.Address.BarangayCode,
		c.Address.Street, c.Address.PostalCode,
		c.DeliveryPreference, c.IsReturning,
		c.ZohoContactID, c.ZohoSyncStatus, c.ZohoSyncError, c.ZohoSyncAttempts, c.ZohoLastSyncAt,
		c.CreatedAt, c.UpdatedAt,
	)
}

func testCustomer() *domain.Customer {
	return &domain.Customer{
		ID:                 "cust-1",
		Email:              "maria@example.com",
		FirstName:          "Maria",
		LastName:           "Santos",
		DeliveryPreference: domain.DeliveryPreferenceDelivery,
		ZohoSyncStatus:     domain.SyncStatusPending,
		CreatedAt:          time.Now().UTC(),
		UpdatedAt:          time.Now().UTC(),
	}
}

func TestCustomerRepository_Create(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewCustomerRepository(db)
	customer := testCustomer()

	mock.ExpectExec(`INSERT INTO customers`).
		WithArgs(
			customer.ID, customer.Email, customer.FirstName, customer.LastName, customer.Phone,
			"", "", "", "", "", "",
			customer.DeliveryPreference, customer.IsReturning, customer.ZohoSyncStatus,
			sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), customer)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_GetByID(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewCustomerRepository(db)
	customer := testCustomer()

	mock.ExpectQuery(`SELECT .* FROM customers WHERE id = \$1`).
		WithArgs(customer.ID).
		WillReturnRows(customerRows(customer))

	got, err := repo.GetByID(context.Background(), customer.ID)
	require.NoError(t, err)
	assert.Equal(t, customer.Email, got.Email)
	assert.Equal(t, domain.SyncStatusPending, got.ZohoSyncStatus)

	mock.ExpectQuery(`SELECT .* FROM customers WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetByID(context.Background(), "missing")
	require.Error(t, err)
	assert.IsType(t, &domain.ErrNotFound{}, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_MarkSyncing(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewCustomerRepository(db)

	// First claim wins.
	mock.ExpectExec(`UPDATE customers SET zoho_sync_status = \$1, updated_at = \$2 WHERE id = \$3 AND zoho_sync_status <> \$1`).
		WithArgs(domain.SyncStatusSyncing, sqlmock.AnyArg(), "cust-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	claimed, err := repo.MarkSyncing(context.Background(), "cust-1")
	require.NoError(t, err)
	assert.True(t, claimed)

	// Concurrent claim loses: row already syncing.
	mock.ExpectExec(`UPDATE customers SET zoho_sync_status = \$1, updated_at = \$2 WHERE id = \$3 AND zoho_sync_status <> \$1`).
		WithArgs(domain.SyncStatusSyncing, sqlmock.AnyArg(), "cust-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	claimed, err = repo.MarkSyncing(context.Background(), "cust-1")
	require.NoError(t, err)
	assert.False(t, claimed)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_FinishSync(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewCustomerRepository(db)
	contactID := "zoho-123"
	errMsg := "boom"

	t.Run("synced persists contact id", func(t *testing.T) {
		mock.ExpectExec(`UPDATE customers`).
			WithArgs(domain.SyncStatusSynced, &contactID, nil, sqlmock.AnyArg(), "cust-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.FinishSync(context.Background(), "cust-1", domain.SyncStatusSynced, &contactID, nil)
		require.NoError(t, err)
	})

	t.Run("failed drops contact id even when given", func(t *testing.T) {
		mock.ExpectExec(`UPDATE customers`).
			WithArgs(domain.SyncStatusFailed, nil, &errMsg, sqlmock.AnyArg(), "cust-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.FinishSync(context.Background(), "cust-1", domain.SyncStatusFailed, &contactID, &errMsg)
		require.NoError(t, err)
	})

	t.Run("unknown customer", func(t *testing.T) {
		mock.ExpectExec(`UPDATE customers`).
			WithArgs(domain.SyncStatusFailed, nil, &errMsg, sqlmock.AnyArg(), "missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.FinishSync(context.Background(), "missing", domain.SyncStatusFailed, nil, &errMsg)
		require.Error(t, err)
		assert.IsType(t, &domain.ErrNotFound{}, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_ResetSyncStatus(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewCustomerRepository(db)

	mock.ExpectExec(`UPDATE customers`).
		WithArgs(domain.SyncStatusPending, sqlmock.AnyArg(), "cust-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.ResetSyncStatus(context.Background(), "cust-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_List(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewCustomerRepository(db)
	customer := testCustomer()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM customers`).
		WithArgs(string(domain.SyncStatusPending)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(`SELECT .* FROM customers .* ORDER BY created_at DESC`).
		WithArgs(string(domain.SyncStatusPending)).
		WillReturnRows(customerRows(customer))

	customers, total, err := repo.List(context.Background(), domain.CustomerListFilter{
		SyncStatus: domain.SyncStatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, customers, 1)
	assert.Equal(t, customer.ID, customers[0].ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}
