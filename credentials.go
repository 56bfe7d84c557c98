package investmind

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the hex-encoded SHA-256 digest of the password's
// UTF-8 bytes. The digest is unsalted and single-round; that weakness is
// inherited from the stored document format and kept for compatibility
// with existing stores.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword reports whether the supplied password hashes to the
// stored digest. It never fails: a non-matching password simply yields
// false.
func VerifyPassword(digest, password string) bool {
	return HashPassword(password) == digest
}
