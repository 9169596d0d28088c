package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ResendGateway implements email sending via the Resend HTTP API
type ResendGateway struct {
	apiURL string
	apiKey string
	client *http.Client
}

// ResendConfig holds configuration for the Resend gateway
type ResendConfig struct {
	APIURL string // defaults to https://api.resend.com
	APIKey string
}

// NewResendGateway creates a new Resend gateway client
func NewResendGateway(config ResendConfig) *ResendGateway {
	apiURL := config.APIURL
	if apiURL == "" {
		apiURL = "https://api.resend.com"
	}

	return &ResendGateway{
		apiURL: apiURL,
		apiKey: config.APIKey,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// sendRequest represents the Resend send-email request structure
type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// sendResponse represents the Resend send-email response structure
type sendResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"` // set on errors
}

// Send delivers a single email through the Resend API and returns the
// provider's message id.
func (g *ResendGateway) Send(msg Message) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("resend API key is not configured")
	}

	payload := sendRequest{
		From:    msg.From,
		To:      msg.To,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal send request: %w", err)
	}

	url := fmt.Sprintf("%s/emails", g.apiURL)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create send request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", g.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send email request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read send response: %w", err)
	}

	var sendResp sendResponse
	if err := json.Unmarshal(body, &sendResp); err != nil {
		return "", fmt.Errorf("failed to parse send response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("email sending failed (status %d): %s", resp.StatusCode, sendResp.Message)
	}

	return sendResp.ID, nil
}

// Name returns the name of this gateway
func (g *ResendGateway) Name() string {
	return "Resend API Gateway"
}
