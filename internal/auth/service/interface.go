package service

import "time"

// PasswordService hashes and verifies stored credentials.
// Implementations must embed a per-call random salt in the digest and use a
// constant-time comparison during verification so timing does not correlate
// with how many leading bytes match.
type PasswordService interface {
	// Hash produces a one-way digest of the plaintext with an embedded random salt.
	Hash(plaintext string) (string, error)

	// Verify recomputes the digest using the embedded salt and compares in
	// constant time. Returns false for any error or mismatch.
	Verify(plaintext string, digest string) bool
}

// TokenService issues and verifies signed, time-limited credential tokens.
// Tokens are stateless: nothing is stored server-side and a token is
// invalidated only by its expiry instant.
type TokenService interface {
	// Issue builds a claim set {sub: subject, exp: now + ttl}, signs it with
	// the server-held secret and returns the encoded token plus its expiry.
	// A non-positive ttl selects the configured default.
	Issue(subject string, ttl time.Duration) (token string, expiresAt time.Time, err error)

	// Verify decodes the token, validates signature and expiry and returns the
	// subject. All failures satisfy errors.Is(err, apperrors.ErrUnauthorized);
	// the specific cause is distinguishable for logging and tests only.
	Verify(token string) (subject string, err error)
}
