package notifier

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignatureHeader carries the HMAC of the request body when a signing
// secret is configured. Receivers recompute it with the shared secret.
const SignatureHeader = "X-Ledger-Signature"

const signaturePrefix = "sha256="

// Option configures a Client.
type Option func(*Client)

// WithSigningSecret signs every event body with HMAC-SHA256 under secret.
// An empty secret leaves events unsigned.
func WithSigningSecret(secret string) Option {
	return func(c *Client) {
		if secret != "" {
			c.secret = []byte(secret)
		}
	}
}

// Sign returns the SignatureHeader value for body under secret.
func Sign(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether signature is the SignatureHeader value for body
// under secret.
func Verify(secret, body []byte, signature string) bool {
	return hmac.Equal([]byte(Sign(secret, body)), []byte(signature))
}
