// Package usecase defines business logic interfaces for authentication operations.
package usecase

import (
	"context"

	authDomain "github.com/munchly/munchly/internal/auth/domain"
)

// IdentityResolver resolves a verified token subject to a stored identity.
// The user module provides the implementation backed by the identity store.
type IdentityResolver interface {
	// ResolveIdentity retrieves the identity for a subject reference.
	// Returns ErrNotFound when the subject does not resolve to a stored record.
	ResolveIdentity(ctx context.Context, subject string) (*authDomain.Identity, error)
}

// AuthUseCase defines the per-request authentication operation: turning a
// presented bearer token into a resolved identity.
type AuthUseCase interface {
	// Authenticate verifies the token and resolves its subject to an identity.
	//
	// Security Notes:
	//   - All verification failures satisfy errors.Is(err, apperrors.ErrUnauthorized)
	//   - A subject that no longer resolves to a stored identity is reported as
	//     ErrUnknownSubject, never as a not-found condition, so callers cannot
	//     probe which accounts exist
	Authenticate(ctx context.Context, token string) (*authDomain.Identity, error)
}
