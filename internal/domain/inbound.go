package domain

import (
	"strconv"
	"time"

	"github.com/tidwall/gjson"
)

// Topic for inbound message jobs
const TopicInboundMessages = "inbound-messages"

// InboundMessageJob is the queue payload produced by the webhook fast path
type InboundMessageJob struct {
	OrgID      string `json:"orgId"`
	Payload    []byte `json:"payload"`
	ReceivedAt int64  `json:"receivedAt"` // epoch millis
}

// InboundMessage is the canonical form of a provider webhook payload
type InboundMessage struct {
	Handle string
	Text   string
	SentAt time.Time
}

// ParseInboundMessage normalizes a provider-shaped JSON payload. The
// sender handle comes from From/handle/phone and the body from
// Body/text/message (Twilio field names first, generic aliases after).
// The timestamp is epoch seconds in Timestamp (string or number), an ISO
// datetime in DateSent or sentAt, or absent, in which case receivedAt is
// used. Missing handle or text is a ValidationError: the job is rejected
// before any state is touched.
func ParseInboundMessage(payload []byte, receivedAt time.Time) (*InboundMessage, error) {
	body := gjson.ParseBytes(payload)

	handle := firstString(body, "From", "handle", "phone")
	text := firstString(body, "Body", "text", "message")

	if handle == "" || text == "" {
		return nil, NewValidationError("missing required fields: handle or text")
	}

	return &InboundMessage{
		Handle: handle,
		Text:   text,
		SentAt: parseSentAt(body, receivedAt),
	}, nil
}

func firstString(body gjson.Result, keys ...string) string {
	for _, key := range keys {
		if v := body.Get(key); v.Exists() && v.String() != "" {
			return v.String()
		}
	}
	return ""
}

func parseSentAt(body gjson.Result, receivedAt time.Time) time.Time {
	// Twilio sends Timestamp as Unix seconds, string or number
	if v := body.Get("Timestamp"); v.Exists() {
		if secs, err := strconv.ParseInt(v.String(), 10, 64); err == nil && secs > 0 {
			return time.Unix(secs, 0).UTC()
		}
	}

	for _, key := range []string{"DateSent", "sentAt"} {
		v := body.Get(key)
		if !v.Exists() || v.String() == "" {
			continue
		}
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
			if ts, err := time.Parse(layout, v.String()); err == nil {
				return ts.UTC()
			}
		}
	}

	return receivedAt.UTC()
}
