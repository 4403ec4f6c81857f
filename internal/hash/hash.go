// Package hash provides value digests for machine-readable reports.
//
// Displayed values are truncated, so two long values can look identical on
// screen while differing further in. JSON and YAML reports carry a short
// SHA-256 digest of each value's canonical encoding to tell them apart.
package hash

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/danieljhkim/dupekeys/internal/value"
)

// DigestLength is the number of hex characters kept from a digest.
const DigestLength = 16

// Hasher computes value digests.
type Hasher interface {
	// HashValue returns a digest of v. Equal values share a digest.
	HashValue(v value.Value) string
}

// SHA256Hasher implements Hasher using SHA-256.
type SHA256Hasher struct{}

// NewSHA256Hasher creates a new SHA256Hasher.
func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{}
}

// HashValue returns the first DigestLength hex characters of the SHA-256 of
// v's canonical encoding.
func (h *SHA256Hasher) HashValue(v value.Value) string {
	sum := sha256.Sum256(v.Canonical())
	return hex.EncodeToString(sum[:])[:DigestLength]
}

// FakeHasher implements Hasher with deterministic hashes for testing.
type FakeHasher struct {
	hashes map[string]string
}

// NewFakeHasher creates a new FakeHasher.
func NewFakeHasher() *FakeHasher {
	return &FakeHasher{
		hashes: make(map[string]string),
	}
}

// SetHash sets the hash returned for values rendering as s.
func (h *FakeHasher) SetHash(s, hash string) {
	h.hashes[s] = hash
}

// HashValue returns the predetermined hash for v.
func (h *FakeHasher) HashValue(v value.Value) string {
	if hash, ok := h.hashes[v.String()]; ok {
		return hash
	}
	return "fakehash"
}
