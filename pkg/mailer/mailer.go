package mailer

import (
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
)

//go:generate mockgen -destination=../../internal/domain/mocks/mock_mailer.go -package=mocks github.com/converso/converso/pkg/mailer Mailer

// Mailer is the interface for sending notification emails
type Mailer interface {
	// SendOverdueFollowupAlert notifies an org owner about an overdue follow-up
	SendOverdueFollowupAlert(email, orgName, leadTitle string, dueAt time.Time, leadURL string) error
}

// Config holds the configuration for the mailer
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
}

// SMTPMailer implements the Mailer interface using SMTP
type SMTPMailer struct {
	config   *Config
	testMode bool
}

// NewSMTPMailer creates a new SMTP mailer
func NewSMTPMailer(config *Config) *SMTPMailer {
	return &SMTPMailer{
		config:   config,
		testMode: false,
	}
}

// NewTestSMTPMailer creates a new SMTP mailer in test mode (won't connect to SMTP server)
func NewTestSMTPMailer(config *Config) *SMTPMailer {
	return &SMTPMailer{
		config:   config,
		testMode: true,
	}
}

// SendOverdueFollowupAlert notifies an org owner about an overdue follow-up
func (m *SMTPMailer) SendOverdueFollowupAlert(email, orgName, leadTitle string, dueAt time.Time, leadURL string) error {
	msg := mail.NewMsg(mail.WithNoDefaultUserAgent())

	if err := msg.FromFormat(m.config.FromName, m.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set email from address: %w", err)
	}

	if err := msg.To(email); err != nil {
		return fmt.Errorf("failed to set email recipient: %w", err)
	}

	msg.Subject(fmt.Sprintf("Overdue follow-up: %s", leadTitle))

	body := fmt.Sprintf(`You have an overdue follow-up!

Lead: %s
Due date: %s
Organization: %s

Please follow up with this lead as soon as possible.

View lead: %s
`, leadTitle, dueAt.Format(time.RFC1123), orgName, leadURL)

	msg.SetBodyString(mail.TypeTextPlain, body)

	if m.testMode {
		return nil
	}

	client, err := mail.NewClient(
		m.config.SMTPHost,
		mail.WithPort(m.config.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.config.SMTPUsername),
		mail.WithPassword(m.config.SMTPPassword),
	)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
