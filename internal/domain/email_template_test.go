package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailTemplate_Validate(t *testing.T) {
	tests := []struct {
		name     string
		template EmailTemplate
		wantErr  string
	}{
		{
			name:     "valid template",
			template: EmailTemplate{Name: "welcome", Subject: "Hi {{first_name}}", Body: "Hello"},
		},
		{
			name:     "missing name",
			template: EmailTemplate{Subject: "Hi", Body: "Hello"},
			wantErr:  "name is required",
		},
		{
			name:     "missing subject",
			template: EmailTemplate{Name: "welcome", Body: "Hello"},
			wantErr:  "subject is required",
		},
		{
			name:     "missing body",
			template: EmailTemplate{Name: "welcome", Subject: "Hi"},
			wantErr:  "body is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.template.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestSubstitute(t *testing.T) {
	vars := map[string]string{
		"first_name": "Maria",
		"last_name":  "Santos",
	}

	t.Run("replaces all occurrences", func(t *testing.T) {
		got := Substitute("Hi {{first_name}}, yes {{first_name}} {{last_name}}", vars)
		assert.Equal(t, "Hi Maria, yes Maria Santos", got)
	})

	t.Run("unknown keys left verbatim", func(t *testing.T) {
		got := Substitute("Hi {{first_name}}, track at {{tracking_link}}", vars)
		assert.Equal(t, "Hi Maria, track at {{tracking_link}}", got)
	})

	t.Run("idempotent when nothing matches", func(t *testing.T) {
		body := "No placeholders here, not even {{unknown}}"
		assert.Equal(t, body, Substitute(body, vars))
	})

	t.Run("empty vars is identity", func(t *testing.T) {
		body := "Hi {{first_name}}"
		assert.Equal(t, body, Substitute(body, map[string]string{}))
	})
}

func TestEmailTemplate_Render(t *testing.T) {
	template := EmailTemplate{
		Name:    "delivery",
		Subject: "Order for {{first_name}}",
		Body:    "Hi {{first_name}}, confirm here: {{confirm_button}}",
	}

	subject, body := template.Render(map[string]string{
		"first_name":     "Jose",
		"confirm_button": "https://shop.example.com/confirm?token=abc",
	})

	assert.Equal(t, "Order for Jose", subject)
	assert.Equal(t, "Hi Jose, confirm here: https://shop.example.com/confirm?token=abc", body)
}
