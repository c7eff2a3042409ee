// Package nlu calls the natural-language understanding backend to extract a
// structured reminder request from a free-form message and to generate
// conversational replies.
//
// The backend is a best-effort collaborator: every field of an extraction
// may be wrong or absent, and callers must treat its output as hints, never
// as validated input.
package nlu

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.openai.com/v1"

// Intent classifies what the sender asked for.
const (
	IntentCreate  = "create"
	IntentCancel  = "cancel"
	IntentUnknown = "unknown"
)

// Extraction is the structured best-effort guess for one inbound message.
// DueAtLocal, when present, is a datetime in the source timezone.
type Extraction struct {
	Intent             string   `json:"intent"`
	Title              string   `json:"title,omitempty"`
	TimeText           string   `json:"time_text,omitempty"`
	DueAtLocal         string   `json:"due_at_local,omitempty"`
	Repeat             string   `json:"repeat,omitempty"`
	RepeatInterval     int      `json:"repeat_interval,omitempty"`
	RepeatUnit         string   `json:"repeat_unit,omitempty"`
	RecipientPhone     string   `json:"recipient_phone,omitempty"`
	RecipientUsernames []string `json:"recipient_usernames,omitempty"`
	FormattedMessage   string   `json:"formatted_message,omitempty"`
}

// Client talks to an OpenAI-compatible chat completions endpoint.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewClient creates an NLU client. An empty baseURL falls back to the
// OpenAI API.
func NewClient(apiKey, model, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat json.RawMessage `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// extractionSchema is the structured-output schema the backend must follow.
var extractionSchema = json.RawMessage(`{
	"type": "json_schema",
	"json_schema": {
		"name": "reminder_extraction",
		"schema": {
			"type": "object",
			"properties": {
				"intent": {"enum": ["create", "confirm", "cancel", "reschedule", "snooze", "invite", "unknown"]},
				"title": {"type": "string"},
				"time_text": {"type": "string"},
				"due_at_local": {"type": "string", "format": "date-time"},
				"repeat": {"enum": ["none", "daily", "weekly", "monthly", "custom"]},
				"repeat_interval": {"type": "integer"},
				"repeat_unit": {"enum": ["minutes", "hours", "days"]},
				"recipient_phone": {"type": "string"},
				"recipient_usernames": {"type": "array", "items": {"type": "string"}},
				"formatted_message": {"type": "string"}
			},
			"required": ["intent"]
		}
	}
}`)

const extractSystemMsg = `You are a WhatsApp reminder assistant. Emit JSON following the schema. Input timezone: Asia/Jakarta (WIB).`

// Extract asks the backend for a structured guess about the message.
func (c *Client) Extract(ctx context.Context, message string) (Extraction, error) {
	content, err := c.complete(ctx, chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: extractSystemMsg},
			{Role: "user", Content: fmt.Sprintf("Message: %q", message)},
		},
		ResponseFormat: extractionSchema,
	})
	if err != nil {
		return Extraction{}, err
	}

	var ex Extraction
	if err := json.Unmarshal([]byte(content), &ex); err != nil {
		return Extraction{}, fmt.Errorf("decode extraction: %w", err)
	}

	if ex.Intent == "" {
		ex.Intent = IntentUnknown
	}

	return ex, nil
}

// GenerateReply produces a natural confirmation for the given mode and
// variables.
func (c *Client) GenerateReply(ctx context.Context, mode string, vars map[string]interface{}) (string, error) {
	payload, err := json.Marshal(map[string]interface{}{"mode": mode, "vars": vars})
	if err != nil {
		return "", fmt.Errorf("marshal reply vars: %w", err)
	}

	return c.complete(ctx, chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: "Reply casually and naturally. No rigid templates."},
			{Role: "user", Content: string(payload)},
		},
	})
}

func (c *Client) complete(ctx context.Context, reqBody chatRequest) (string, error) {
	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("nlu API error: %s", resp.Status)
	}

	var cr chatResponse
	if err := json.Unmarshal(raw, &cr); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if cr.Error != nil {
		return "", fmt.Errorf("nlu API error: %s", cr.Error.Message)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("nlu API returned no choices")
	}

	return cr.Choices[0].Message.Content, nil
}
