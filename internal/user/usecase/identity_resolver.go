package usecase

import (
	"context"

	authDomain "github.com/munchly/munchly/internal/auth/domain"
	authUseCase "github.com/munchly/munchly/internal/auth/usecase"
)

// identityResolver adapts the user repository to the authentication module's
// IdentityResolver so verified token subjects resolve against the identity store.
type identityResolver struct {
	userRepo UserRepository
}

// ResolveIdentity looks up the subject in the identity store.
func (r *identityResolver) ResolveIdentity(ctx context.Context, subject string) (*authDomain.Identity, error) {
	user, err := r.userRepo.Get(ctx, subject)
	if err != nil {
		return nil, err
	}
	return user.Identity(), nil
}

// NewIdentityResolver creates an IdentityResolver backed by the user repository.
func NewIdentityResolver(userRepo UserRepository) authUseCase.IdentityResolver {
	return &identityResolver{userRepo: userRepo}
}
