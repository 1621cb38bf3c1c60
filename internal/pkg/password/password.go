package password

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest hashes a plaintext secret with SHA256 and returns the lowercase
// hex form. Stored credentials are always this 64-character digest.
func Digest(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// IsDigest reports whether s already looks like a stored digest
// (64 lowercase hex characters), so callers can accept either a plaintext
// secret or a precomputed digest.
func IsDigest(s string) bool {
	if len(s) != 64 {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}

// Verify compares a plaintext secret against a stored digest.
func Verify(secret, digest string) bool {
	return digest != "" && Digest(secret) == digest
}
