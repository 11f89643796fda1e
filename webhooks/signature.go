package webhooks

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// SignatureVerifier checks webhook signatures against a shared secret.
type SignatureVerifier struct {
	secret []byte
}

func NewSignatureVerifier(secret string) *SignatureVerifier {
	return &SignatureVerifier{secret: []byte(secret)}
}

// Sign returns the lowercase hex HMAC-SHA256 of payload.
func (v *SignatureVerifier) Sign(payload []byte) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether signature matches the payload. The comparison runs in
// constant time; an empty signature never matches.
func (v *SignatureVerifier) Verify(payload []byte, signature string) bool {
	if v == nil || signature == "" {
		return false
	}
	expected := v.Sign(payload)
	return subtle.ConstantTimeCompare([]byte(signature), []byte(expected)) == 1
}
