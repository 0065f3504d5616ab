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

// psql is a Squirrel StatementBuilder configured for PostgreSQL
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const customerColumns = `id, email, first_name, last_name, phone,
		region_code, province_code, city_code, barangay_code, street, postal_code,
		delivery_preference, is_returning,
		zoho_contact_id, zoho_sync_status, zoho_sync_error, zoho_sync_attempts, zoho_last_sync_at,
		created_at, updated_at`

// CustomerRepository implements domain.CustomerRepository
type CustomerRepository struct {
	db *sql.DB
}

// NewCustomerRepository creates a new instance of the repository
func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create adds a new customer
func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	now := time.Now().UTC()
	customer.CreatedAt = now
	customer.UpdatedAt = now
	if customer.ZohoSyncStatus == "" {
		customer.ZohoSyncStatus = domain.SyncStatusPending
	}

	query := `
		INSERT INTO customers (
			id, email, first_name, last_name, phone,
			region_code, province_code, city_code, barangay_code, street, postal_code,
			delivery_preference, is_returning, zoho_sync_status,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
		)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		customer.ID,
		customer.Email,
		customer.FirstName,
		customer.LastName,
		customer.Phone,
		customer.Address.RegionCode,
		customer.Address.ProvinceCode,
		customer.Address.CityCode,
		customer.Address.BarangayCode,
		customer.Address.Street,
		customer.Address.PostalCode,
		customer.DeliveryPreference,
		customer.IsReturning,
		customer.ZohoSyncStatus,
		customer.CreatedAt,
		customer.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

func scanCustomer(row interface{ Scan(...interface{}) error }) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(
		&c.ID,
		&c.Email,
		&c.FirstName,
		&c.LastName,
		&c.Phone,
		&c.Address.RegionCode,
		&c.Address.ProvinceCode,
		&c.Address.CityCode,
		&c.Address.BarangayCode,
		&c.Address.Street,
		&c.Address.PostalCode,
		&c.DeliveryPreference,
		&c.IsReturning,
		&c.ZohoContactID,
		&c.ZohoSyncStatus,
		&c.ZohoSyncError,
		&c.ZohoSyncAttempts,
		&c.ZohoLastSyncAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByID retrieves a customer by ID
func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

	customer, err := scanCustomer(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewErrCustomerNotFound(id)
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return customer, nil
}

// GetByEmail retrieves a customer by email
func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE email = $1`

	customer, err := scanCustomer(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewErrCustomerNotFound(email)
		}
		return nil, fmt.Errorf("failed to get customer by email: %w", err)
	}

	return customer, nil
}

// Update updates the profile fields of an existing customer. Sync fields are
// only touched through MarkSyncing/FinishSync/ResetSyncStatus.
func (r *CustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	customer.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE customers
		SET first_name = $1,
			last_name = $2,
			phone = $3,
			region_code = $4,
			province_code = $5,
			city_code = $6,
			barangay_code = $7,
			street = $8,
			postal_code = $9,
			delivery_preference = $10,
			updated_at = $11
		WHERE id = $12
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		customer.FirstName,
		customer.LastName,
		customer.Phone,
		customer.Address.RegionCode,
		customer.Address.ProvinceCode,
		customer.Address.CityCode,
		customer.Address.BarangayCode,
		customer.Address.Street,
		customer.Address.PostalCode,
		customer.DeliveryPreference,
		customer.UpdatedAt,
		customer.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return domain.NewErrCustomerNotFound(customer.ID)
	}

	return nil
}

// List retrieves customers matching the filter
func (r *CustomerRepository) List(ctx context.Context, filter domain.CustomerListFilter) ([]*domain.Customer, int, error) {
	conditions := sq.And{}
	if filter.SyncStatus != "" {
		conditions = append(conditions, sq.Eq{"zoho_sync_status": filter.SyncStatus})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		conditions = append(conditions, sq.Or{
			sq.ILike{"email": pattern},
			sq.ILike{"first_name": pattern},
			sq.ILike{"last_name": pattern},
		})
	}

	countBuilder := psql.Select("COUNT(*)").From("customers")
	if len(conditions) > 0 {
		countBuilder = countBuilder.Where(conditions)
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	selectBuilder := psql.
		Select(customerColumns).
		From("customers").
		OrderBy("created_at DESC")
	if len(conditions) > 0 {
		selectBuilder = selectBuilder.Where(conditions)
	}
	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var customers []*domain.Customer
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, customer)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating customer rows: %w", err)
	}

	return customers, total, nil
}

// MarkSyncing claims the customer row for a sync run. The conditional update
// is the mutual exclusion: a second concurrent sync sees zero rows affected.
func (r *CustomerRepository) MarkSyncing(ctx context.Context, id string) (bool, error) {
	query := `
		UPDATE customers
		SET zoho_sync_status = $1, updated_at = $2
		WHERE id = $3 AND zoho_sync_status <> $1
	`

	result, err := r.db.ExecContext(ctx, query, domain.SyncStatusSyncing, time.Now().UTC(), id)
	if err != nil {
		return false, fmt.Errorf("failed to mark customer syncing: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// FinishSync records the terminal state of a sync run. Attempts and
// zoho_last_sync_at are stamped whatever the outcome; the contact id is
// persisted only when the status is synced, which keeps the
// synced ⇔ contact-id invariant in one place.
func (r *CustomerRepository) FinishSync(ctx context.Context, id string, status domain.SyncStatus, contactID *string, syncErr *string) error {
	if status != domain.SyncStatusSynced {
		contactID = nil
	}

	now := time.Now().UTC()
	query := `
		UPDATE customers
		SET zoho_sync_status = $1,
			zoho_contact_id = $2,
			zoho_sync_error = $3,
			zoho_sync_attempts = zoho_sync_attempts + 1,
			zoho_last_sync_at = $4,
			updated_at = $4
		WHERE id = $5
	`

	result, err := r.db.ExecContext(ctx, query, status, contactID, syncErr, now, id)
	if err != nil {
		return fmt.Errorf("failed to finish sync: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return domain.NewErrCustomerNotFound(id)
	}

	return nil
}

// ResetSyncStatus clears sync state back to pending. Admin-invoked; there is
// no automatic retry.
func (r *CustomerRepository) ResetSyncStatus(ctx context.Context, id string) error {
	query := `
		UPDATE customers
		SET zoho_sync_status = $1,
			zoho_contact_id = NULL,
			zoho_sync_error = NULL,
			zoho_sync_attempts = 0,
			updated_at = $2
		WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query, domain.SyncStatusPending, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to reset sync status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return domain.NewErrCustomerNotFound(id)
	}

	return nil
}
