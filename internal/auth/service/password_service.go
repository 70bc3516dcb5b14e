// Package service provides authentication services: Argon2id password hashing
// and signed credential token management.
package service

import (
	"github.com/allisson/go-pwdhash"
)

// passwordService implements PasswordService using Argon2id via go-pwdhash.
// The library embeds a random salt in every digest and performs a
// constant-time comparison on verification.
type passwordService struct {
	hasher *pwdhash.PasswordHasher
}

// NewPasswordService creates a PasswordService using the interactive Argon2id
// policy, a balance suited to request-path login verification.
func NewPasswordService() PasswordService {
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	if err != nil {
		// Only reachable with an invalid policy constant
		panic(err)
	}

	return &passwordService{hasher: hasher}
}

// Hash produces an Argon2id digest with an embedded per-call random salt.
func (s *passwordService) Hash(plaintext string) (string, error) {
	return s.hasher.Hash([]byte(plaintext))
}

// Verify recomputes the digest using the embedded salt and compares in constant time.
func (s *passwordService) Verify(plaintext string, digest string) bool {
	ok, err := s.hasher.Verify([]byte(plaintext), digest)
	if err != nil {
		return false
	}
	return ok
}
