package security

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMalformedDigest is returned by Verify when the stored digest is not a
// valid bcrypt hash at all (as opposed to a plain mismatch).
var ErrMalformedDigest = errors.New("malformed password digest")

// PasswordHasher wraps bcrypt with a configurable work factor. Each Hash call
// draws a fresh salt, so two hashes of the same password never match.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("security.Hash: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the digest. A mismatch is
// (false, nil); an error is returned only when the digest itself is broken.
func (h *PasswordHasher) Verify(plaintext, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("%w: %v", ErrMalformedDigest, err)
}
