package usecase

import (
	"context"
	"errors"

	authDomain "github.com/munchly/munchly/internal/auth/domain"
	authService "github.com/munchly/munchly/internal/auth/service"
	apperrors "github.com/munchly/munchly/internal/errors"
)

// authUseCase implements AuthUseCase on top of the token service and an
// identity resolver.
type authUseCase struct {
	tokenService authService.TokenService
	resolver     IdentityResolver
}

// Authenticate verifies the presented token and resolves its subject.
//
// This method:
// 1. Verifies the token signature and expiry and extracts the subject
// 2. Resolves the subject against the identity store
// 3. Returns the resolved identity for the request context
func (a *authUseCase) Authenticate(ctx context.Context, token string) (*authDomain.Identity, error) {
	subject, err := a.tokenService.Verify(token)
	if err != nil {
		return nil, err
	}

	identity, err := a.resolver.ResolveIdentity(ctx, subject)
	if err != nil {
		// A valid token whose subject no longer exists gets the generic
		// unauthorized answer, not a not-found one
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, authDomain.ErrUnknownSubject
		}
		return nil, err
	}

	return identity, nil
}

// NewAuthUseCase creates a new AuthUseCase with the provided dependencies.
func NewAuthUseCase(tokenService authService.TokenService, resolver IdentityResolver) AuthUseCase {
	return &authUseCase{
		tokenService: tokenService,
		resolver:     resolver,
	}
}
