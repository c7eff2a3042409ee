// Package gateway provides a client for the outbound messaging gateway
// webhook.
//
// The gateway owns the actual WhatsApp session; this service only posts
// {to, text, reminder_id} payloads to its webhook URL and treats the call as
// fire-and-forget.
package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Client represents a messaging gateway client used to deliver reminders.
type Client struct {
	webhookURL string
	client     *http.Client
}

// NewClient creates a new gateway Client posting to the given webhook URL.
func NewClient(webhookURL string) *Client {
	return &Client{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// sendRequest represents the payload for the gateway webhook.
type sendRequest struct {
	To         string    `json:"to"`
	Text       string    `json:"text"`
	ReminderID uuid.UUID `json:"reminder_id"`
}

// Send posts a reminder message to the gateway webhook.
//
// It returns an error if the request fails or the gateway responds with a
// non-2xx status.
func (c *Client) Send(to, text string, reminderID uuid.UUID) error {
	body, err := json.Marshal(sendRequest{
		To:         to,
		Text:       text,
		ReminderID: reminderID,
	})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	resp, err := c.client.Post(c.webhookURL, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("gateway error: %s", resp.Status)
	}

	return nil
}
