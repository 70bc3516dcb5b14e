// Package usecase implements business logic orchestration for account operations.
package usecase

import (
	"context"
	"errors"
	"time"

	authDomain "github.com/munchly/munchly/internal/auth/domain"
	authService "github.com/munchly/munchly/internal/auth/service"
	apperrors "github.com/munchly/munchly/internal/errors"
	userDomain "github.com/munchly/munchly/internal/user/domain"
)

// userUseCase implements UserUseCase for managing accounts.
type userUseCase struct {
	userRepo        UserRepository
	passwordService authService.PasswordService
	tokenService    authService.TokenService
}

// Register creates a new account.
//
// Security Notes:
//   - The plaintext password is hashed with Argon2id before it ever reaches
//     the repository; the plaintext is not retained
//   - Every registration gets the ordinary role; privileged accounts are
//     promoted out of band
func (u *userUseCase) Register(
	ctx context.Context,
	input *userDomain.RegisterInput,
) (*userDomain.User, error) {
	digest, err := u.passwordService.Hash(input.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash password")
	}

	now := time.Now().UTC()
	user := &userDomain.User{
		Name:      input.Name,
		Email:     input.Email,
		Password:  digest,
		Role:      authDomain.RoleUser,
		CartData:  map[string]int{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and issues an access token.
//
// Security Notes:
//   - Returns ErrInvalidCredentials for both unknown emails and wrong
//     passwords to prevent user enumeration
//   - Password comparison is constant-time inside the password service
func (u *userUseCase) Login(ctx context.Context, email, password string) (*userDomain.LoginOutput, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.passwordService.Verify(password, user.Password) {
		return nil, authDomain.ErrInvalidCredentials
	}

	// Zero ttl selects the configured default expiration
	token, expiresAt, err := u.tokenService.Issue(user.ID.Hex(), 0)
	if err != nil {
		return nil, err
	}

	return &userDomain.LoginOutput{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
		Role:        user.Role,
	}, nil
}

// Get retrieves an account by its hex id.
func (u *userUseCase) Get(ctx context.Context, id string) (*userDomain.User, error) {
	return u.userRepo.Get(ctx, id)
}

// List retrieves accounts with pagination.
func (u *userUseCase) List(ctx context.Context, offset, limit int) ([]*userDomain.User, error) {
	return u.userRepo.List(ctx, offset, limit)
}

// Update modifies an existing account. A non-empty password is re-hashed;
// an empty one keeps the stored digest.
func (u *userUseCase) Update(
	ctx context.Context,
	id string,
	input *userDomain.UpdateInput,
) (*userDomain.User, error) {
	user, err := u.userRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = input.Name
	user.Email = input.Email
	if input.Password != "" {
		digest, err := u.passwordService.Hash(input.Password)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to hash password")
		}
		user.Password = digest
	}
	user.UpdatedAt = time.Now().UTC()

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Delete removes an account.
func (u *userUseCase) Delete(ctx context.Context, id string) error {
	return u.userRepo.Delete(ctx, id)
}

// NewUserUseCase creates a new UserUseCase with the provided dependencies.
func NewUserUseCase(
	userRepo UserRepository,
	passwordService authService.PasswordService,
	tokenService authService.TokenService,
) UserUseCase {
	return &userUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}
