package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignPayload returns the hex-encoded HMAC-SHA256 signature of payload.
func SignPayload(secret, payload []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)

	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks a webhook payload against its hex-encoded signature
// in constant time.
func VerifySignature(secret, payload []byte, signature string) bool {
	want, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)

	return hmac.Equal(mac.Sum(nil), want)
}
