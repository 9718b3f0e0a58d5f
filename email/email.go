package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

// Sender delivers account emails. The transactional-email provider lives
// entirely behind this interface so it can be swapped without touching the
// controllers.
type Sender interface {
	SendVerificationEmail(to, code string) error
	SendPasswordResetEmail(to, code string) error
}

// NewSenderFromEnv returns a Brevo-backed sender when BREVO_API_KEY is set,
// otherwise a sender that only logs. Keeps local development working without
// provider credentials.
func NewSenderFromEnv() Sender {
	apiKey := os.Getenv("BREVO_API_KEY")
	if apiKey == "" {
		log.Println("BREVO_API_KEY not set, emails will be logged instead of sent")
		return &LogSender{}
	}

	sender := os.Getenv("SENDER_EMAIL")
	if sender == "" {
		sender = "no-reply@travelbuddy.app"
	}

	return &BrevoSender{
		APIKey:      apiKey,
		SenderEmail: sender,
		Client:      &http.Client{Timeout: 10 * time.Second},
	}
}

// BrevoSender sends mail through the Brevo transactional email HTTP API.
type BrevoSender struct {
	APIKey      string
	SenderEmail string
	Client      *http.Client

	// BaseURL overrides the Brevo endpoint, used by tests.
	BaseURL string
}

const brevoEndpoint = "https://api.brevo.com/v3/smtp/email"

func (s *BrevoSender) SendVerificationEmail(to, code string) error {
	subject := "Verify your Travel Buddy account"
	html := fmt.Sprintf("<html><body><p>Welcome to Travel Buddy! Your verification code is <b>%s</b>.</p></body></html>", code)
	return s.send(to, subject, html)
}

func (s *BrevoSender) SendPasswordResetEmail(to, code string) error {
	subject := "Reset your Travel Buddy password"
	html := fmt.Sprintf("<html><body><p>Your password reset code is <b>%s</b>. If you did not request this, ignore this email.</p></body></html>", code)
	return s.send(to, subject, html)
}

func (s *BrevoSender) send(to, subject, html string) error {
	payload := map[string]interface{}{
		"sender":      map[string]string{"name": "Travel Buddy", "email": s.SenderEmail},
		"to":          []map[string]string{{"email": to}},
		"subject":     subject,
		"htmlContent": html,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := s.BaseURL
	if url == "" {
		url = brevoEndpoint
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", s.APIKey)

	resp, err := s.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("brevo returned status %d", resp.StatusCode)
	}

	return nil
}

// LogSender writes emails to the log instead of delivering them.
type LogSender struct{}

func (s *LogSender) SendVerificationEmail(to, code string) error {
	log.Printf("verification email for %s: code %s", to, code)
	return nil
}

func (s *LogSender) SendPasswordResetEmail(to, code string) error {
	log.Printf("password reset email for %s: code %s", to, code)
	return nil
}
