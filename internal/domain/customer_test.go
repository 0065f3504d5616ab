package domain

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomer_Validate(t *testing.T) {
	valid := Customer{
		Email:              "maria@example.com",
		FirstName:          "Maria",
		LastName:           "Santos",
		DeliveryPreference: DeliveryPreferenceDelivery,
	}

	t.Run("valid customer", func(t *testing.T) {
		c := valid
		assert.NoError(t, c.Validate())
	})

	t.Run("missing email", func(t *testing.T) {
		c := valid
		c.Email = ""
		require.Error(t, c.Validate())
	})

	t.Run("malformed email", func(t *testing.T) {
		c := valid
		c.Email = "not-an-email"
		require.Error(t, c.Validate())
	})

	t.Run("missing both names", func(t *testing.T) {
		c := valid
		c.FirstName = ""
		c.LastName = ""
		require.Error(t, c.Validate())
	})

	t.Run("last name alone is enough", func(t *testing.T) {
		c := valid
		c.FirstName = ""
		assert.NoError(t, c.Validate())
	})

	t.Run("unknown delivery preference", func(t *testing.T) {
		c := valid
		c.DeliveryPreference = "carrier-pigeon"
		require.Error(t, c.Validate())
	})
}

func TestCustomer_FullName(t *testing.T) {
	tests := []struct {
		first, last, want string
	}{
		{"Maria", "Santos", "Maria Santos"},
		{"Maria", "", "Maria"},
		{"", "Santos", "Santos"},
	}

	for _, tt := range tests {
		c := Customer{FirstName: tt.first, LastName: tt.last}
		assert.Equal(t, tt.want, c.FullName())
	}
}

func TestListCustomersRequest_FromURLParams(t *testing.T) {
	t.Run("parses filters", func(t *testing.T) {
		values := url.Values{}
		values.Set("sync_status", "failed")
		values.Set("search", "santos")
		values.Set("limit", "25")
		values.Set("offset", "50")

		var req ListCustomersRequest
		require.NoError(t, req.FromURLParams(values))
		assert.Equal(t, "failed", req.SyncStatus)
		assert.Equal(t, "santos", req.Search)
		assert.Equal(t, 25, req.Limit)
		assert.Equal(t, 50, req.Offset)
	})

	t.Run("rejects unknown sync status", func(t *testing.T) {
		values := url.Values{}
		values.Set("sync_status", "bogus")

		var req ListCustomersRequest
		require.Error(t, req.FromURLParams(values))
	})

	t.Run("empty query is fine", func(t *testing.T) {
		var req ListCustomersRequest
		require.NoError(t, req.FromURLParams(url.Values{}))
	})
}
