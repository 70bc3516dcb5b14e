package app

import (
	"fmt"

	authService "github.com/munchly/munchly/internal/auth/service"
	authUseCase "github.com/munchly/munchly/internal/auth/usecase"
	userUseCase "github.com/munchly/munchly/internal/user/usecase"
)

// PasswordService returns the password hashing service.
func (c *Container) PasswordService() authService.PasswordService {
	_ = c.once("passwordService", func() error {
		c.passwordService = authService.NewPasswordService()
		return nil
	})
	return c.passwordService
}

// TokenService returns the credential token service.
func (c *Container) TokenService() (authService.TokenService, error) {
	err := c.once("tokenService", func() error {
		if c.config.AuthTokenSecret == "" {
			return fmt.Errorf("AUTH_TOKEN_SECRET is not configured")
		}

		c.tokenService = authService.NewTokenService(
			[]byte(c.config.AuthTokenSecret),
			c.config.AuthTokenExpiration,
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.tokenService, nil
}

// AuthUseCase returns the authentication use case backed by the identity store.
func (c *Container) AuthUseCase() (authUseCase.AuthUseCase, error) {
	err := c.once("authUseCase", func() error {
		tokenService, err := c.TokenService()
		if err != nil {
			return err
		}

		userRepo, err := c.UserRepository()
		if err != nil {
			return err
		}

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return err
		}

		resolver := userUseCase.NewIdentityResolver(userRepo)
		c.authUC = authUseCase.NewAuthUseCaseWithMetrics(
			authUseCase.NewAuthUseCase(tokenService, resolver),
			businessMetrics,
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.authUC, nil
}
