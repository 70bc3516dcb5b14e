package app

import (
	"fmt"

	blogHTTP "github.com/munchly/munchly/internal/blog/http"
	blogRepository "github.com/munchly/munchly/internal/blog/repository"
	blogUseCase "github.com/munchly/munchly/internal/blog/usecase"
)

// PostRepository returns the blog post repository for the configured driver.
func (c *Container) PostRepository() (blogUseCase.PostRepository, error) {
	err := c.once("postRepo", func() error {
		db, err := c.DB()
		if err != nil {
			return err
		}

		switch c.config.DBDriver {
		case "mysql":
			c.postRepo = blogRepository.NewMySQLPostRepository(db)
		case "postgres":
			c.postRepo = blogRepository.NewPostgreSQLPostRepository(db)
		default:
			return fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.postRepo, nil
}

// PostUseCase returns the blog post use case.
func (c *Container) PostUseCase() (blogUseCase.PostUseCase, error) {
	err := c.once("postUseCase", func() error {
		postRepo, err := c.PostRepository()
		if err != nil {
			return err
		}

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return err
		}

		c.postUC = blogUseCase.NewPostUseCaseWithMetrics(
			blogUseCase.NewPostUseCase(postRepo),
			businessMetrics,
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.postUC, nil
}

// PostHandler returns the blog post HTTP handler.
func (c *Container) PostHandler() (*blogHTTP.PostHandler, error) {
	err := c.once("postHandler", func() error {
		postUC, err := c.PostUseCase()
		if err != nil {
			return err
		}
		c.postHandler = blogHTTP.NewPostHandler(postUC, c.Logger())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.postHandler, nil
}

// FileHandler returns the protected file upload/download handler.
func (c *Container) FileHandler() (*blogHTTP.FileHandler, error) {
	err := c.once("fileHandler", func() error {
		bucket, err := c.Bucket()
		if err != nil {
			return err
		}
		c.fileHandler = blogHTTP.NewFileHandler(bucket, c.Logger())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.fileHandler, nil
}
