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

func TestEmailTemplateRepository_Create(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewEmailTemplateRepository(db)
	template := &domain.EmailTemplate{
		ID:        "tmpl-1",
		Name:      "welcome",
		Subject:   "Hello {{first_name}}",
		Body:      "Body for {{first_name}}",
		Variables: []string{"first_name"},
		IsActive:  true,
	}

	mock.ExpectExec(`INSERT INTO email_templates`).
		WithArgs(
			template.ID, template.Name, template.Subject, template.Body,
			sqlmock.AnyArg(), template.IsActive, sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), template)
	require.NoError(t, err)
	assert.False(t, template.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmailTemplateRepository_GetByID(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewEmailTemplateRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "name", "subject", "body", "variables", "is_active", "created_at", "updated_at",
	}).AddRow(
		"tmpl-1", "welcome", "Hello {{first_name}}", "Body",
		[]byte("{first_name,last_name}"), true,
		time.Now().UTC(), time.Now().UTC(),
	)

	mock.ExpectQuery(`SELECT .* FROM email_templates WHERE id = \$1`).
		WithArgs("tmpl-1").
		WillReturnRows(rows)

	template, err := repo.GetByID(context.Background(), "tmpl-1")
	require.NoError(t, err)
	assert.Equal(t, "welcome", template.Name)
	assert.Equal(t, []string{"first_name", "last_name"}, template.Variables)

	mock.ExpectQuery(`SELECT .* FROM email_templates WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetByID(context.Background(), "missing")
	require.Error(t, err)
	assert.IsType(t, &domain.ErrNotFound{}, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmailTemplateRepository_List(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewEmailTemplateRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "name", "subject", "body", "variables", "is_active", "created_at", "updated_at",
	}).AddRow(
		"tmpl-1", "welcome", "Hi", "Body",
		[]byte("{first_name}"), true,
		time.Now().UTC(), time.Now().UTC(),
	)

	mock.ExpectQuery(`SELECT .* FROM email_templates\s+WHERE is_active = TRUE ORDER BY name`).
		WillReturnRows(rows)

	templates, err := repo.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "tmpl-1", templates[0].ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmailTemplateRepository_Deactivate(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewEmailTemplateRepository(db)

	mock.ExpectExec(`UPDATE email_templates\s+SET is_active = FALSE`).
		WithArgs(sqlmock.AnyArg(), "tmpl-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Deactivate(context.Background(), "tmpl-1"))

	// Already inactive or missing reports not found.
	mock.ExpectExec(`UPDATE email_templates\s+SET is_active = FALSE`).
		WithArgs(sqlmock.AnyArg(), "tmpl-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Deactivate(context.Background(), "tmpl-1")
	require.Error(t, err)
	assert.IsType(t, &domain.ErrNotFound{}, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
