// Package passcode generates scannable pass codes and their integrity tokens.
package passcode

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base32"
	"encoding/hex"
	"fmt"
	"time"

	"courtpass/internal/pkg/errs"

	"github.com/google/uuid"
)

// 20 random bytes = 160 bits of entropy, 32 chars after base32.
const codeBytes = 20

var codeEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// NewCode returns an unguessable, globally unique code safe for any
// 1-D/2-D barcode symbology (uppercase alphanumerics only).
func NewCode() (string, error) {
	buf := make([]byte, codeBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errs.Wrap(err, "failed to generate pass code")
	}
	return codeEncoding.EncodeToString(buf), nil
}

// Signer derives integrity tokens binding a code to its reservation and
// issue time, so tampering is detectable without a store lookup.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

func (s *Signer) IntegrityToken(code string, reservationID uuid.UUID, issuedAt time.Time) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%s|%s|%d", code, reservationID, issuedAt.Unix())
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *Signer) Verify(token, code string, reservationID uuid.UUID, issuedAt time.Time) bool {
	expected := s.IntegrityToken(code, reservationID, issuedAt)
	return subtle.ConstantTimeCompare([]byte(token), []byte(expected)) == 1
}
