package email

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBrevoSenderSendsExpectedPayload(t *testing.T) {
	var gotAPIKey string
	var gotPayload map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("api-key")
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &gotPayload))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	sender := &BrevoSender{
		APIKey:      "test-key",
		SenderEmail: "no-reply@travelbuddy.app",
		Client:      &http.Client{Timeout: time.Second},
		BaseURL:     server.URL,
	}

	require.NoError(t, sender.SendVerificationEmail("alice@example.com", "123456"))
	require.Equal(t, "test-key", gotAPIKey)

	to := gotPayload["to"].([]interface{})[0].(map[string]interface{})
	require.Equal(t, "alice@example.com", to["email"])
	require.Contains(t, gotPayload["htmlContent"], "123456")
	require.Contains(t, gotPayload["subject"], "Verify")
}

func TestBrevoSenderPropagatesAPIErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	sender := &BrevoSender{
		APIKey:      "bad-key",
		SenderEmail: "no-reply@travelbuddy.app",
		Client:      &http.Client{Timeout: time.Second},
		BaseURL:     server.URL,
	}

	require.Error(t, sender.SendPasswordResetEmail("alice@example.com", "123456"))
}
