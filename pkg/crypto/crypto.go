package crypto

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/url"
	"sort"
)

func ComputeHMAC256(toSign []byte, secretKey string) string {
	h := hmac.New(sha256.New, []byte(secretKey))
	h.Write(toSign)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// VerifyHMAC256 compares the provided signature against the computed one
// in constant time.
func VerifyHMAC256(secretKey string, toSign []byte, providedSign string) bool {
	signed := ComputeHMAC256(toSign, secretKey)
	return hmac.Equal([]byte(signed), []byte(providedSign))
}

// ComputeTwilioSignature implements Twilio's request signing scheme:
// the full request URL is concatenated with each POST parameter name and
// value, parameters sorted alphabetically by name, and the result is
// HMAC-SHA1 signed with the account auth token, base64 encoded.
func ComputeTwilioSignature(authToken, requestURL string, params url.Values) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	data := requestURL
	for _, k := range keys {
		// Twilio signs the first value of each parameter
		data += k + params.Get(k)
	}

	h := hmac.New(sha1.New, []byte(authToken))
	h.Write([]byte(data))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// VerifyTwilioSignature validates the X-Twilio-Signature header of an
// inbound webhook request.
func VerifyTwilioSignature(authToken, requestURL string, params url.Values, providedSign string) bool {
	expected := ComputeTwilioSignature(authToken, requestURL, params)
	return hmac.Equal([]byte(expected), []byte(providedSign))
}
