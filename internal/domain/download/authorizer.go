package download

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// SessionKey is the session entry holding the download-authorization token.
const SessionKey = "download_token"

// MintToken returns a fresh 128-bit token as 32 hex characters. One token
// is minted per successful confirmation and bound to the caller's session;
// it gates every subsequent file download for that session.
func MintToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("mint download token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// CheckToken compares the session's stored token with the presented one.
// An empty stored token (no redemption happened in this session) or any
// mismatch fails. The token does not re-verify publish state or remaining
// uses; a session that redeemed once stays authorized for its lifetime.
func CheckToken(stored, presented string) bool {
	if stored == "" || presented == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) == 1
}
