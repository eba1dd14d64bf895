package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// SignatureHeader carries the hex HMAC-SHA256 of the raw webhook body.
const SignatureHeader = "X-Razorpay-Signature"

// EventIDHeader is the optional delivery id Razorpay sends with each webhook.
const EventIDHeader = "X-Razorpay-Event-Id"

// VerifySignature reports whether signature is the HMAC-SHA256 of body under
// secret. An empty secret or signature never verifies.
func VerifySignature(body []byte, signature, secret string) bool {
	signature = strings.ToLower(strings.TrimSpace(signature))
	if signature == "" || secret == "" {
		return false
	}
	expected := Sign(body, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// Sign returns the lowercase hex signature Razorpay would send for body.
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
