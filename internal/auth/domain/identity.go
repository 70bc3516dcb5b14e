// Package domain defines the core authentication entities and error taxonomy.
package domain

import (
	apperrors "github.com/munchly/munchly/internal/errors"
)

// Role is the privilege level attached to an identity.
type Role string

const (
	// RoleUser is the ordinary, non-privileged role assigned at registration.
	RoleUser Role = "user"

	// RoleAdmin is the privileged role required for catalog and order administration.
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Identity is the resolved subject of a verified credential token.
// It lives in the request context for the duration of a single request
// and is discarded when the request completes.
type Identity struct {
	// ID is the subject reference: the hex form of the stored document id.
	ID    string
	Name  string
	Email string
	Role  Role
}

// IsAdmin reports whether the identity holds the privileged role.
func (i *Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Credential verification failures. Each failure keeps its own identity for
// logging and tests, but every one of them satisfies
// errors.Is(err, apperrors.ErrUnauthorized): callers only ever see a generic
// 401, never which check failed.
var (
	// ErrMalformedToken indicates the token could not be decoded at all.
	ErrMalformedToken = apperrors.Wrap(apperrors.ErrUnauthorized, "malformed token")

	// ErrBadSignature indicates the token signature does not verify under the
	// server's signing secret.
	ErrBadSignature = apperrors.Wrap(apperrors.ErrUnauthorized, "bad token signature")

	// ErrTokenExpired indicates the token's expiry instant has passed.
	ErrTokenExpired = apperrors.Wrap(apperrors.ErrUnauthorized, "token expired")

	// ErrMissingSubject indicates the claim set carries no subject reference.
	ErrMissingSubject = apperrors.Wrap(apperrors.ErrUnauthorized, "token missing subject")

	// ErrUnknownSubject indicates the subject does not resolve to a stored identity.
	ErrUnknownSubject = apperrors.Wrap(apperrors.ErrUnauthorized, "unknown subject")

	// ErrInvalidCredentials indicates a failed username/password login attempt.
	// Covers both unknown users and wrong passwords to prevent enumeration.
	ErrInvalidCredentials = apperrors.Wrap(apperrors.ErrUnauthorized, "invalid credentials")
)
