package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/converso/converso/config"
	"github.com/converso/converso/internal/domain"
	"github.com/converso/converso/internal/domain/mocks"
	"github.com/converso/converso/pkg/crypto"
	"github.com/converso/converso/pkg/logger"
)

const (
	testAPIEndpoint = "https://api.converso.test"
	testAuthToken   = "twilio-auth-token"
)

func newTestWebhookHandler(t *testing.T, ctrl *gomock.Controller, defaultOrgID string) (*WebhookHandler, *mocks.MockMessagingService) {
	service := mocks.NewMockMessagingService(ctrl)
	handler := NewWebhookHandler(
		service,
		config.TwilioConfig{AuthToken: testAuthToken, DefaultOrgID: defaultOrgID},
		testAPIEndpoint,
		logger.NewMockLogger(t),
	)
	return handler, service
}

func signedTwilioRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	signature := crypto.ComputeTwilioSignature(testAuthToken, testAPIEndpoint+path, form)
	req.Header.Set("X-Twilio-Signature", signature)
	return req
}

func TestWebhookHandler_Twilio_InvalidSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, _ := newTestWebhookHandler(t, ctrl, "")

	form := url.Values{}
	form.Set("From", "whatsapp:+15551234567")
	form.Set("Body", "hi")

	req := httptest.NewRequest(http.MethodPost, "/api/webhooks.twilio", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Twilio-Signature", "forged")
	rec := httptest.NewRecorder()

	handler.handleTwilio(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid signature")
}

func TestWebhookHandler_Twilio_ResolvesOrgAndEnqueues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, service := newTestWebhookHandler(t, ctrl, "")

	form := url.Values{}
	form.Set("From", "whatsapp:+15551234567")
	form.Set("To", "whatsapp:+15550001111")
	form.Set("Body", "hi, I need a quote")

	service.EXPECT().
		ResolveOrgFromDestination(gomock.Any(), "whatsapp:+15550001111").
		Return("org-1", nil)
	service.EXPECT().
		Webhook(gomock.Any(), "org-1", gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, payload []byte) error {
			assert.Contains(t, string(payload), "whatsapp:+15551234567")
			assert.Contains(t, string(payload), "hi, I need a quote")
			return nil
		})

	rec := httptest.NewRecorder()
	handler.handleTwilio(rec, signedTwilioRequest("/api/webhooks.twilio", form))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok": true}`, rec.Body.String())
}

func TestWebhookHandler_Twilio_UnknownDestinationFallsBackToDefaultOrg(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, service := newTestWebhookHandler(t, ctrl, "org-default")

	form := url.Values{}
	form.Set("From", "whatsapp:+15551234567")
	form.Set("To", "whatsapp:+15559999999")
	form.Set("Body", "hello")

	service.EXPECT().
		ResolveOrgFromDestination(gomock.Any(), "whatsapp:+15559999999").
		Return("", nil)
	service.EXPECT().
		Webhook(gomock.Any(), "org-default", gomock.Any()).
		Return(nil)

	rec := httptest.NewRecorder()
	handler.handleTwilio(rec, signedTwilioRequest("/api/webhooks.twilio", form))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebhookHandler_Twilio_UnknownDestinationNoDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, service := newTestWebhookHandler(t, ctrl, "")

	form := url.Values{}
	form.Set("From", "whatsapp:+15551234567")
	form.Set("To", "whatsapp:+15559999999")
	form.Set("Body", "hello")

	service.EXPECT().
		ResolveOrgFromDestination(gomock.Any(), "whatsapp:+15559999999").
		Return("", nil)

	rec := httptest.NewRecorder()
	handler.handleTwilio(rec, signedTwilioRequest("/api/webhooks.twilio", form))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown destination")
}

func TestWebhookHandler_Twilio_MalformedPayloadIs400(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, service := newTestWebhookHandler(t, ctrl, "")

	// Signed and resolvable, but the body text is missing
	form := url.Values{}
	form.Set("From", "whatsapp:+15551234567")
	form.Set("To", "whatsapp:+15550001111")

	service.EXPECT().
		ResolveOrgFromDestination(gomock.Any(), "whatsapp:+15550001111").
		Return("org-1", nil)
	service.EXPECT().
		Webhook(gomock.Any(), "org-1", gomock.Any()).
		Return(domain.NewValidationError("missing required fields: handle or text"))

	rec := httptest.NewRecorder()
	handler.handleTwilio(rec, signedTwilioRequest("/api/webhooks.twilio", form))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWebhookHandler_Inbound_OrgFromBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, service := newTestWebhookHandler(t, ctrl, "")

	body := `{"orgId": "org-1", "handle": "whatsapp:+15551234567", "text": "hi"}`
	service.EXPECT().
		Webhook(gomock.Any(), "org-1", []byte(body)).
		Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/webhooks.inbound", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.handleInbound(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok": true}`, rec.Body.String())
}

func TestWebhookHandler_Inbound_MissingOrg(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, _ := newTestWebhookHandler(t, ctrl, "")

	req := httptest.NewRequest(http.MethodPost, "/api/webhooks.inbound", strings.NewReader(`{"text": "hi"}`))
	rec := httptest.NewRecorder()
	handler.handleInbound(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing orgId")
}

func TestWebhookHandler_Twilio_MethodNotAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, _ := newTestWebhookHandler(t, ctrl, "")

	req := httptest.NewRequest(http.MethodGet, "/api/webhooks.twilio", nil)
	rec := httptest.NewRecorder()
	handler.handleTwilio(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
