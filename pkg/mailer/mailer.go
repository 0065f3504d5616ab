package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

//go:generate mockgen -destination=../mocks/mock_mailer.go -package=pkgmocks github.com/sariops/sariops/pkg/mailer Mailer

// Message is a single plain-text email.
type Message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

// Mailer is the interface for the outbound email API.
type Mailer interface {
	// Send delivers the message and returns the provider message id.
	Send(ctx context.Context, msg Message) (string, error)
}

const defaultEndpoint = "https://api.resend.com/emails"

// Config holds the configuration for the HTTP mailer.
type Config struct {
	APIKey   string
	Endpoint string // defaults to the Resend API when empty
}

// HTTPMailer sends mail through the Resend-style REST API.
type HTTPMailer struct {
	config *Config
	client *http.Client
}

// NewHTTPMailer creates a mailer backed by the HTTP email API.
func NewHTTPMailer(config *Config) *HTTPMailer {
	if config.Endpoint == "" {
		config.Endpoint = defaultEndpoint
	}
	return &HTTPMailer{
		config: config,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type sendResponse struct {
	ID    string `json:"id"`
	Error string `json:"error,omitempty"`
}

// Send delivers the message and returns the provider message id.
func (m *HTTPMailer) Send(ctx context.Context, msg Message) (string, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.config.Endpoint, bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create send request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.config.APIKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("email API returned status %d: %s", resp.StatusCode, string(body))
	}

	var result sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode send response: %w", err)
	}
	if result.Error != "" {
		return "", fmt.Errorf("email API error: %s", result.Error)
	}

	return result.ID, nil
}

// ConsoleMailer logs emails instead of sending them. It is used when no
// email API key is configured so that sends degrade to a no-op.
type ConsoleMailer struct{}

// NewConsoleMailer creates a console mailer for development.
func NewConsoleMailer() *ConsoleMailer {
	return &ConsoleMailer{}
}

// Send prints the message to stdout and returns a fake id.
func (m *ConsoleMailer) Send(ctx context.Context, msg Message) (string, error) {
	fmt.Println("==============================================================")
	fmt.Println("                        OUTBOUND EMAIL                        ")
	fmt.Println("==============================================================")
	fmt.Printf("From: %s\n", msg.From)
	fmt.Printf("To: %s\n", msg.To)
	fmt.Printf("Subject: %s\n\n", msg.Subject)
	fmt.Println(msg.Text)
	fmt.Println("==============================================================")

	return "console-" + fmt.Sprintf("%d", time.Now().UnixNano()), nil
}
