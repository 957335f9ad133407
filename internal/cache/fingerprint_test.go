package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	// Known SHA256 vector.
	assert.Equal(t,
		"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		Fingerprint("hello"))

	// Content addressing: same text, same key; different text, different key.
	assert.Equal(t, Fingerprint("resume text"), Fingerprint("resume text"))
	assert.NotEqual(t, Fingerprint("resume text"), Fingerprint("resume text "))

	// Empty input still fingerprints.
	assert.Len(t, Fingerprint(""), 64)
}
