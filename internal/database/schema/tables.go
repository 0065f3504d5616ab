package schema

// TableNames lists every table in creation order. CleanDatabase drops them
// in reverse.
var TableNames = []string{
	"customers",
	"email_templates",
	"email_logs",
	"confirmation_tokens",
	"zoho_tokens",
	"kv_cache",
}

// TableDefinitions contains the CREATE TABLE statements, in dependency order.
var TableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id UUID PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		first_name VARCHAR(255) NOT NULL DEFAULT '',
		last_name VARCHAR(255) NOT NULL DEFAULT '',
		phone VARCHAR(50) NOT NULL DEFAULT '',
		region_code VARCHAR(20) NOT NULL DEFAULT '',
		province_code VARCHAR(20) NOT NULL DEFAULT '',
		city_code VARCHAR(20) NOT NULL DEFAULT '',
		barangay_code VARCHAR(20) NOT NULL DEFAULT '',
		street VARCHAR(255) NOT NULL DEFAULT '',
		postal_code VARCHAR(20) NOT NULL DEFAULT '',
		delivery_preference VARCHAR(20) NOT NULL DEFAULT 'pickup',
		is_returning BOOLEAN NOT NULL DEFAULT FALSE,
		zoho_contact_id VARCHAR(64),
		zoho_sync_status VARCHAR(20) NOT NULL DEFAULT 'pending',
		zoho_sync_error TEXT,
		zoho_sync_attempts INTEGER NOT NULL DEFAULT 0,
		zoho_last_sync_at TIMESTAMP,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS email_templates (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		subject TEXT NOT NULL,
		body TEXT NOT NULL,
		variables TEXT[] NOT NULL DEFAULT '{}',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS email_logs (
		id UUID PRIMARY KEY,
		customer_id UUID NOT NULL REFERENCES customers(id),
		template_id UUID NOT NULL REFERENCES email_templates(id),
		recipient VARCHAR(255) NOT NULL,
		subject TEXT NOT NULL,
		status VARCHAR(20) NOT NULL,
		scheduled_for TIMESTAMP,
		sent_at TIMESTAMP,
		error_message TEXT,
		provider_id VARCHAR(255),
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS confirmation_tokens (
		id UUID PRIMARY KEY,
		token VARCHAR(128) NOT NULL UNIQUE,
		customer_id UUID NOT NULL REFERENCES customers(id),
		purpose VARCHAR(50) NOT NULL,
		expires_at TIMESTAMP NOT NULL,
		used_at TIMESTAMP,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS zoho_tokens (
		id INTEGER PRIMARY KEY,
		access_token TEXT NOT NULL,
		refresh_token TEXT NOT NULL,
		expires_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS kv_cache (
		key VARCHAR(255) PRIMARY KEY,
		value BYTEA NOT NULL,
		cached_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_customers_sync_status ON customers(zoho_sync_status)`,
	`CREATE INDEX IF NOT EXISTS idx_email_logs_status ON email_logs(status)`,
	`CREATE INDEX IF NOT EXISTS idx_email_logs_created_at ON email_logs(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_email_logs_scheduled_for ON email_logs(scheduled_for) WHERE status = 'scheduled'`,
	`CREATE INDEX IF NOT EXISTS idx_confirmation_tokens_token ON confirmation_tokens(token)`,
}
