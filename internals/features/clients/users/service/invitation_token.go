// service/invitation_token.go
package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// InvitationTTL is how long a freshly (re)generated invitation stays valid.
const InvitationTTL = 7 * 24 * time.Hour

// NewInvitationToken generates a raw invite token plus its bcrypt hash.
// Only the hash is stored; the raw value goes into the invite email.
func NewInvitationToken() (raw string, hash string, err error) {
	buf := make([]byte, 32)
	if _, err = rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("token entropy: %w", err)
	}
	raw = hex.EncodeToString(buf)

	h, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", "", fmt.Errorf("token hash: %w", err)
	}
	return raw, string(h), nil
}

// VerifyInvitationToken checks a presented raw token against the stored hash.
func VerifyInvitationToken(hash, raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}
