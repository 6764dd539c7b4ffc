package analytics

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// NewToken returns 32 random bytes, hex encoded.
func NewToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Hasher turns client IPs into stable, salted identifiers.
type Hasher struct {
	salt string
}

// NewHasher creates a hasher with the given salt. A process-lifetime random
// salt means identifiers cannot be linked across restarts.
func NewHasher(salt string) *Hasher {
	return &Hasher{salt: salt}
}

// Hash returns a truncated sha256 of ip and the salt.
func (h *Hasher) Hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// untrackedPrefixes are paths never recorded as visits.
var untrackedPrefixes = []string{
	"/static/",
	"/screenshots/",
	"/admin/",
	"/api/",
	"/go/",
	"/metrics",
	"/favicon",
	"/privacy",
}

// ShouldTrack reports whether a request for path should be recorded.
// Requests carrying "DNT: 1" are never recorded.
func ShouldTrack(path, dnt string) bool {
	if dnt == "1" {
		return false
	}
	for _, p := range untrackedPrefixes {
		if strings.HasPrefix(path, p) {
			return false
		}
	}
	return true
}
