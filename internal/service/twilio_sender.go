package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/converso/converso/config"
	"github.com/converso/converso/internal/domain"
	"github.com/converso/converso/pkg/logger"
)

const twilioAPIBase = "https://api.twilio.com/2010-04-01"

// TwilioSender implements domain.MessageSender over the Twilio REST API.
// Credentials come from the org's chat account when registered, falling
// back to the instance-wide config.
type TwilioSender struct {
	chatAccountRepo domain.ChatAccountRepository
	cfg             config.TwilioConfig
	httpClient      *http.Client
	logger          logger.Logger
}

// NewTwilioSender creates a new TwilioSender
func NewTwilioSender(chatAccountRepo domain.ChatAccountRepository, cfg config.TwilioConfig, log logger.Logger) *TwilioSender {
	return &TwilioSender{
		chatAccountRepo: chatAccountRepo,
		cfg:             cfg,
		httpClient:      &http.Client{Timeout: 30 * time.Second},
		logger:          log,
	}
}

// SendMessage delivers one WhatsApp message and returns the provider's
// message SID
func (s *TwilioSender) SendMessage(ctx context.Context, orgID, to, text string) (string, error) {
	accountSID, authToken, from, err := s.credentials(ctx, orgID)
	if err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("To", whatsAppAddress(to))
	form.Set("From", whatsAppAddress(from))
	form.Set("Body", text)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", twilioAPIBase, accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build twilio request: %w", err)
	}
	req.SetBasicAuth(accountSID, authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", &domain.ProviderError{Provider: "twilio", Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &domain.ProviderError{Provider: "twilio", Message: "failed to read response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := gjson.GetBytes(body, "message").String()
		if message == "" {
			message = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		}
		return "", &domain.ProviderError{Provider: "twilio", Message: message}
	}

	sid := gjson.GetBytes(body, "sid").String()
	s.logger.WithFields(map[string]interface{}{
		"org_id": orgID,
		"sid":    sid,
	}).Debug("Twilio message accepted")
	return sid, nil
}

func (s *TwilioSender) credentials(ctx context.Context, orgID string) (accountSID, authToken, from string, err error) {
	account, err := s.chatAccountRepo.GetActiveByOrg(ctx, orgID, domain.ChatProviderTwilioWhatsApp)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to load chat account: %w", err)
	}

	accountSID = s.cfg.AccountSID
	authToken = s.cfg.AuthToken
	from = s.cfg.WhatsAppFrom
	if account != nil {
		if account.AccountSID != "" {
			accountSID = account.AccountSID
		}
		if account.AuthToken != "" {
			authToken = account.AuthToken
		}
		if account.ExternalPhoneID != "" {
			from = account.ExternalPhoneID
		}
	}

	if accountSID == "" || authToken == "" || from == "" {
		return "", "", "", &domain.ProviderError{Provider: "twilio", Message: "credentials not configured"}
	}
	return accountSID, authToken, from, nil
}

// whatsAppAddress ensures the whatsapp: channel prefix Twilio expects
func whatsAppAddress(number string) string {
	if strings.HasPrefix(number, "whatsapp:") {
		return number
	}
	return "whatsapp:" + number
}
