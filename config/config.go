package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const VERSION = "1.4"

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Auth        AuthConfig
	Zoho        ZohoConfig
	Email       EmailConfig
	PSGC        PSGCConfig
	Environment string
	// APIEndpoint is the public base URL used to build links embedded in
	// outgoing emails (profile update and delivery confirmation).
	APIEndpoint string
	LogLevel    string
	Version     string
}

type ServerConfig struct {
	Port int
	Host string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type AuthConfig struct {
	// JWTSecret signs admin session tokens.
	JWTSecret string
}

type ZohoConfig struct {
	ClientID         string
	ClientSecret     string
	RefreshToken     string
	OrganizationID   string
	AccountsEndpoint string // OAuth token endpoint
	APIEndpoint      string // Zoho Books REST endpoint
}

type EmailConfig struct {
	APIKey    string
	Endpoint  string
	FromEmail string
	FromName  string
}

type PSGCConfig struct {
	Endpoint string
}

// ZohoConfigured reports whether the accounting integration has credentials.
// When false the integration surfaces as "not configured" instead of failing.
func (c *Config) ZohoConfigured() bool {
	return c.Zoho.ClientID != "" && c.Zoho.ClientSecret != "" && c.Zoho.RefreshToken != ""
}

// EmailConfigured reports whether outbound email is enabled.
func (c *Config) EmailConfigured() bool {
	return c.Email.APIKey != ""
}

// LoadOptions contains options for loading configuration
type LoadOptions struct {
	EnvFile string // Optional environment file to load (e.g., ".env", ".env.test")
}

// Load loads the configuration with default options
func Load() (*Config, error) {
	// Try to load .env file but don't require it
	return LoadWithOptions(LoadOptions{EnvFile: ".env"})
}

// LoadWithOptions loads the configuration with the specified options
func LoadWithOptions(opts LoadOptions) (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "sariops")
	v.SetDefault("DB_SSLMODE", "require")
	v.SetDefault("ENVIRONMENT", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("VERSION", VERSION)

	v.SetDefault("ZOHO_ACCOUNTS_ENDPOINT", "https://accounts.zoho.com")
	v.SetDefault("ZOHO_API_ENDPOINT", "https://www.zohoapis.com/books/v3")

	v.SetDefault("EMAIL_ENDPOINT", "https://api.resend.com/emails")
	v.SetDefault("EMAIL_FROM_NAME", "Sariops")

	v.SetDefault("PSGC_ENDPOINT", "https://psgc.gitlab.io/api")

	// Load environment file if specified
	if opts.EnvFile != "" {
		v.SetConfigName(opts.EnvFile)
		v.SetConfigType("env")

		currentPath, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("error getting current directory: %w", err)
		}

		v.AddConfigPath(currentPath)

		if err := v.ReadInConfig(); err != nil {
			// It's okay if config file doesn't exist
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	// Read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	jwtSecret := v.GetString("AUTH_JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("AUTH_JWT_SECRET is required")
	}

	config := &Config{
		Server: ServerConfig{
			Port: v.GetInt("SERVER_PORT"),
			Host: v.GetString("SERVER_HOST"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Auth: AuthConfig{
			JWTSecret: jwtSecret,
		},
		Zoho: ZohoConfig{
			ClientID:         v.GetString("ZOHO_CLIENT_ID"),
			ClientSecret:     v.GetString("ZOHO_CLIENT_SECRET"),
			RefreshToken:     v.GetString("ZOHO_REFRESH_TOKEN"),
			OrganizationID:   v.GetString("ZOHO_ORGANIZATION_ID"),
			AccountsEndpoint: v.GetString("ZOHO_ACCOUNTS_ENDPOINT"),
			APIEndpoint:      v.GetString("ZOHO_API_ENDPOINT"),
		},
		Email: EmailConfig{
			APIKey:    v.GetString("EMAIL_API_KEY"),
			Endpoint:  v.GetString("EMAIL_ENDPOINT"),
			FromEmail: v.GetString("EMAIL_FROM_EMAIL"),
			FromName:  v.GetString("EMAIL_FROM_NAME"),
		},
		PSGC: PSGCConfig{
			Endpoint: v.GetString("PSGC_ENDPOINT"),
		},
		Environment: v.GetString("ENVIRONMENT"),
		APIEndpoint: v.GetString("API_ENDPOINT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		Version:     v.GetString("VERSION"),
	}

	return config, nil
}
