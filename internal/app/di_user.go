package app

import (
	userHTTP "github.com/munchly/munchly/internal/user/http"
	userRepository "github.com/munchly/munchly/internal/user/repository"
	userUseCase "github.com/munchly/munchly/internal/user/usecase"
)

// UserRepository returns the identity store repository.
func (c *Container) UserRepository() (userUseCase.UserRepository, error) {
	err := c.once("userRepo", func() error {
		db, err := c.Mongo()
		if err != nil {
			return err
		}
		c.userRepo = userRepository.NewMongoUserRepository(db)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.userRepo, nil
}

// UserUseCase returns the account management use case.
func (c *Container) UserUseCase() (userUseCase.UserUseCase, error) {
	err := c.once("userUseCase", func() error {
		userRepo, err := c.UserRepository()
		if err != nil {
			return err
		}

		tokenService, err := c.TokenService()
		if err != nil {
			return err
		}

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return err
		}

		c.userUC = userUseCase.NewUserUseCaseWithMetrics(
			userUseCase.NewUserUseCase(userRepo, c.PasswordService(), tokenService),
			businessMetrics,
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.userUC, nil
}

// UserHandler returns the account management HTTP handler.
func (c *Container) UserHandler() (*userHTTP.UserHandler, error) {
	err := c.once("userHandler", func() error {
		userUC, err := c.UserUseCase()
		if err != nil {
			return err
		}
		c.userHandler = userHTTP.NewUserHandler(userUC, c.Logger())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.userHandler, nil
}
