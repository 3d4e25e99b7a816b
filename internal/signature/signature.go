package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

var (
	// ErrMissingSecret means the server has no shared secret configured.
	// This is a server misconfiguration, distinct from a client auth failure.
	ErrMissingSecret = errors.New("webhook secret not configured")

	ErrMissingSignature = errors.New("missing signature header")
	ErrMismatch         = errors.New("signature mismatch")
)

// Sign computes the hex-encoded HMAC-SHA256 of body under secret.
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks a signature header against the raw, unparsed request body.
// Verification must run before any JSON parsing: re-serialized JSON is not
// bit-identical to the original bytes.
func Verify(body []byte, secret, provided string) error {
	if secret == "" {
		return ErrMissingSecret
	}
	if provided == "" {
		return ErrMissingSignature
	}

	expected := Sign(body, secret)
	if !hmac.Equal([]byte(provided), []byte(expected)) {
		return ErrMismatch
	}
	return nil
}
