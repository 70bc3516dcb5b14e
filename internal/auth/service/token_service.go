package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	authDomain "github.com/munchly/munchly/internal/auth/domain"
	apperrors "github.com/munchly/munchly/internal/errors"
)

// tokenService implements TokenService with HMAC-SHA256 signed JWTs.
// The signing secret is process-wide, supplied once at construction and
// never mutated afterwards.
type tokenService struct {
	secret     []byte
	defaultTTL time.Duration
	now        func() time.Time
}

// NewTokenService creates a TokenService signing with the given symmetric
// secret. defaultTTL is used whenever Issue receives a non-positive ttl.
func NewTokenService(secret []byte, defaultTTL time.Duration) TokenService {
	return &tokenService{
		secret:     secret,
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

// Issue builds and signs the claim set {sub, exp, iat}.
func (s *tokenService) Issue(subject string, ttl time.Duration) (string, time.Time, error) {
	if subject == "" {
		return "", time.Time{}, authDomain.ErrMissingSubject
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	issuedAt := s.now().UTC()
	expiresAt := issuedAt.Add(ttl)

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, apperrors.Wrap(err, "failed to sign token")
	}

	return token, expiresAt, nil
}

// Verify decodes the token, checks the HMAC and the expiry instant, and
// extracts the subject. The signing method is pinned to HS256 so a token
// claiming another algorithm is rejected as malformed.
func (s *tokenService) Verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	parsed, err := jwt.ParseWithClaims(
		token,
		claims,
		func(t *jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", authDomain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", authDomain.ErrBadSignature
		default:
			return "", authDomain.ErrMalformedToken
		}
	}

	if !parsed.Valid {
		return "", authDomain.ErrMalformedToken
	}

	if claims.Subject == "" {
		return "", authDomain.ErrMissingSubject
	}

	return claims.Subject, nil
}
