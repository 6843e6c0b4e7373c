// Package signature validates the X-Line-Signature header sent with LINE webhook requests.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// HeaderName is the request header carrying the webhook signature.
const HeaderName = "x-line-signature"

// Sign returns the base64 encoded HMAC-SHA256 of body keyed by channelSecret.
func Sign(body []byte, channelSecret string) string {
	mac := hmac.New(sha256.New, []byte(channelSecret))
	_, _ = mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Verify reports whether signature matches the digest of the raw request body.
// The raw bytes are hashed as received; re-encoding the parsed JSON would change key order and whitespace.
func Verify(body []byte, signature, channelSecret string) bool {
	if signature == "" || channelSecret == "" {
		return false
	}
	expected := Sign(body, channelSecret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
