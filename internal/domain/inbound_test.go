package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInboundMessageTwilioShape(t *testing.T) {
	receivedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	payload := []byte(`{"From":"whatsapp:+15551234567","Body":"hello","Timestamp":"1748779200"}`)

	msg, err := ParseInboundMessage(payload, receivedAt)
	require.NoError(t, err)
	assert.Equal(t, "whatsapp:+15551234567", msg.Handle)
	assert.Equal(t, "hello", msg.Text)
	assert.Equal(t, time.Unix(1748779200, 0).UTC(), msg.SentAt)
}

func TestParseInboundMessageEpochNumber(t *testing.T) {
	payload := []byte(`{"From":"+1555","Body":"hi","Timestamp":1748779200}`)
	msg, err := ParseInboundMessage(payload, time.Now())
	require.NoError(t, err)
	assert.Equal(t, time.Unix(1748779200, 0).UTC(), msg.SentAt)
}

func TestParseInboundMessageISODate(t *testing.T) {
	payload := []byte(`{"handle":"+1555","text":"hi","DateSent":"2025-06-01T10:30:00Z"}`)
	msg, err := ParseInboundMessage(payload, time.Now())
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC), msg.SentAt)
}

func TestParseInboundMessageGenericAliases(t *testing.T) {
	payload := []byte(`{"phone":"+1555","message":"ping","sentAt":"2025-06-01T10:30:00Z"}`)
	msg, err := ParseInboundMessage(payload, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "+1555", msg.Handle)
	assert.Equal(t, "ping", msg.Text)
}

func TestParseInboundMessageNoTimestampUsesReceiptTime(t *testing.T) {
	receivedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	payload := []byte(`{"From":"+1555","Body":"hi"}`)
	msg, err := ParseInboundMessage(payload, receivedAt)
	require.NoError(t, err)
	assert.Equal(t, receivedAt, msg.SentAt)
}

func TestParseInboundMessageMissingFields(t *testing.T) {
	_, err := ParseInboundMessage([]byte(`{"Body":"hi"}`), time.Now())
	require.Error(t, err)
	assert.IsType(t, ValidationError{}, err)

	_, err = ParseInboundMessage([]byte(`{"From":"+1555"}`), time.Now())
	require.Error(t, err)
	assert.IsType(t, ValidationError{}, err)

	_, err = ParseInboundMessage([]byte(`{}`), time.Now())
	require.Error(t, err)
}
