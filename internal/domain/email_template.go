package domain

import (
	"context"
	"strings"
	"time"
)

//go:generate mockgen -destination mocks/mock_email_template_repository.go -package mocks github.com/sariops/sariops/internal/domain EmailTemplateRepository

// EmailTemplate is a named plain-text template. Subject and body may contain
// {{variable}} placeholders. Deactivation is soft so historical logs keep a
// valid template reference.
type EmailTemplate struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Variables []string  `json:"variables"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks the template fields that must hold before persistence.
func (t *EmailTemplate) Validate() error {
	if t.Name == "" {
		return NewValidationError("name is required")
	}
	if t.Subject == "" {
		return NewValidationError("subject is required")
	}
	if t.Body == "" {
		return NewValidationError("body is required")
	}
	return nil
}

// Render substitutes {{key}} placeholders in the subject and body with the
// given variables. Unknown placeholders are left verbatim; bodies are plain
// text so no escaping is applied. Rendering with no matching placeholder is
// the identity.
func (t *EmailTemplate) Render(vars map[string]string) (subject, body string) {
	subject = Substitute(t.Subject, vars)
	body = Substitute(t.Body, vars)
	return subject, body
}

// Substitute performs global {{key}} replacement on the input.
func Substitute(text string, vars map[string]string) string {
	for key, value := range vars {
		text = strings.ReplaceAll(text, "{{"+key+"}}", value)
	}
	return text
}

// EmailTemplateRepository defines methods for template persistence.
type EmailTemplateRepository interface {
	Create(ctx context.Context, template *EmailTemplate) error
	GetByID(ctx context.Context, id string) (*EmailTemplate, error)
	List(ctx context.Context, activeOnly bool) ([]*EmailTemplate, error)
	Update(ctx context.Context, template *EmailTemplate) error

	// Deactivate flips is_active off. Templates are never hard-deleted.
	Deactivate(ctx context.Context, id string) error
}

// CreateTemplateRequest represents a request to create a template.
type CreateTemplateRequest struct {
	Name      string   `json:"name"`
	Subject   string   `json:"subject"`
	Body      string   `json:"body"`
	Variables []string `json:"variables,omitempty"`
}

// Validate validates the create request.
func (req *CreateTemplateRequest) Validate() error {
	if req.Name == "" {
		return NewValidationError("name is required")
	}
	if req.Subject == "" {
		return NewValidationError("subject is required")
	}
	if req.Body == "" {
		return NewValidationError("body is required")
	}
	return nil
}
