package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/smtp"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrRelay marks a failure to hand a message to the email relay.
var ErrRelay = errors.New("contact relay failed")

// Message is a stored submission on its way to the relay.
type Message struct {
	ID         string
	Submission Submission
	ReceivedAt time.Time
}

// Relay delivers a contact message to the site owner.
type Relay interface {
	Deliver(ctx context.Context, m Message) error
}

// DefaultFormSubmitEndpoint is the AJAX endpoint of the FormSubmit relay.
const DefaultFormSubmitEndpoint = "https://formsubmit.co/ajax/"

// FormSubmitRelay posts messages to the FormSubmit email relay.
type FormSubmitRelay struct {
	Endpoint string
	To       string
	Client   *http.Client
}

type formSubmitPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Subject  string `json:"_subject"`
	Message  string `json:"message"`
	Template string `json:"_template"`
	Captcha  string `json:"_captcha"`
}

type formSubmitResponse struct {
	Success any    `json:"success"`
	Message string `json:"message"`
}

// Deliver implements Relay.
func (r FormSubmitRelay) Deliver(ctx context.Context, m Message) error {
	if r.To == "" {
		return fmt.Errorf("%w: no recipient configured", ErrRelay)
	}
	endpoint := r.Endpoint
	if endpoint == "" {
		endpoint = DefaultFormSubmitEndpoint
	}
	client := r.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	body, err := json.Marshal(formSubmitPayload{
		Name:     m.Submission.Name,
		Email:    m.Submission.Email,
		Subject:  "Portfolio Contact: " + m.Submission.Subject,
		Message:  m.Submission.Message,
		Template: "table",
		Captcha:  "false",
	})
	if err != nil {
		return fmt.Errorf("%w: encode payload: %v", ErrRelay, err)
	}

	url := strings.TrimSuffix(endpoint, "/") + "/" + r.To
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: build request: %v", ErrRelay, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRelay, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrRelay, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d: %s", ErrRelay, resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	var out formSubmitResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrRelay, err)
	}
	if fmt.Sprint(out.Success) != "true" {
		return fmt.Errorf("%w: %s", ErrRelay, out.Message)
	}
	return nil
}

// SMTPRelay sends messages through an SMTP server with plain auth.
type SMTPRelay struct {
	Host string
	Port string
	User string
	Pass string
	To   string

	// send defaults to smtp.SendMail.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// Deliver implements Relay. net/smtp has no context support, so ctx is only
// checked before dialing.
func (r SMTPRelay) Deliver(ctx context.Context, m Message) error {
	if r.User == "" || r.Pass == "" {
		return fmt.Errorf("%w: SMTP credentials not configured", ErrRelay)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRelay, err)
	}
	to := r.To
	if to == "" {
		to = r.User
	}

	send := r.send
	if send == nil {
		send = smtp.SendMail
	}
	auth := smtp.PlainAuth("", r.User, r.Pass, r.Host)
	if err := send(r.Host+":"+r.Port, auth, r.User, []string{to}, composeMail(r.User, to, m)); err != nil {
		return fmt.Errorf("%w: %v", ErrRelay, err)
	}
	return nil
}

func composeMail(from, to string, m Message) []byte {
	s := m.Submission
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Subject: %s
Message:
%s

---
Sent from your portfolio contact form
`, s.Name, s.Email, s.Subject, s.Message)

	header := func(v string) string {
		return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
	}
	return []byte("To: " + to + "\r\n" +
		"Subject: " + header("Portfolio Contact: "+s.Subject) + "\r\n" +
		"From: " + from + "\r\n" +
		"Reply-To: " + header(s.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

// LogRelay writes messages to the logger instead of sending them.
type LogRelay struct {
	Log *zap.Logger
}

// Deliver implements Relay.
func (r LogRelay) Deliver(_ context.Context, m Message) error {
	log := r.Log
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("contact message",
		zap.String("id", m.ID),
		zap.String("name", m.Submission.Name),
		zap.String("email", m.Submission.Email),
		zap.String("subject", m.Submission.Subject),
		zap.Int("message_len", len(m.Submission.Message)),
	)
	return nil
}
