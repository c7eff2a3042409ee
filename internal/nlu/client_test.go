package nlu

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatServer(t *testing.T, content string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestClient_Extract(t *testing.T) {
	srv := chatServer(t, `{
		"intent": "create",
		"title": "Minum obat",
		"time_text": "10 menit",
		"recipient_usernames": ["budi"]
	}`)
	defer srv.Close()

	c := NewClient("test-key", "gpt-4o-mini", srv.URL)

	ex, err := c.Extract(context.Background(), "ingatkan budi minum obat 10 menit")
	require.NoError(t, err)
	assert.Equal(t, IntentCreate, ex.Intent)
	assert.Equal(t, "Minum obat", ex.Title)
	assert.Equal(t, "10 menit", ex.TimeText)
	assert.Equal(t, []string{"budi"}, ex.RecipientUsernames)
}

func TestClient_Extract_EmptyIntentDefaultsToUnknown(t *testing.T) {
	srv := chatServer(t, `{}`)
	defer srv.Close()

	c := NewClient("test-key", "gpt-4o-mini", srv.URL)

	ex, err := c.Extract(context.Background(), "??")
	require.NoError(t, err)
	assert.Equal(t, IntentUnknown, ex.Intent)
}

func TestClient_Extract_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient("test-key", "gpt-4o-mini", srv.URL)

	_, err := c.Extract(context.Background(), "anything")
	require.Error(t, err)
}

func TestClient_GenerateReply(t *testing.T) {
	srv := chatServer(t, "Siap! Reminder sudah diset ✅")
	defer srv.Close()

	c := NewClient("test-key", "gpt-4o-mini", srv.URL)

	reply, err := c.GenerateReply(context.Background(), "confirm", map[string]interface{}{"title": "Minum obat"})
	require.NoError(t, err)
	assert.Equal(t, "Siap! Reminder sudah diset ✅", reply)
}
