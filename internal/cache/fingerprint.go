package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint computes the content-addressing key for résumé text: the SHA256
// hex digest of the exact input bytes. Identical text always yields an
// identical fingerprint regardless of call time or process.
func Fingerprint(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
