package usecase

import (
	"context"
	"time"

	"github.com/munchly/munchly/internal/metrics"
	userDomain "github.com/munchly/munchly/internal/user/domain"
)

// userUseCaseWithMetrics decorates UserUseCase with metrics instrumentation.
type userUseCaseWithMetrics struct {
	next    UserUseCase
	metrics metrics.BusinessMetrics
}

// NewUserUseCaseWithMetrics wraps a UserUseCase with metrics recording.
func NewUserUseCaseWithMetrics(useCase UserUseCase, m metrics.BusinessMetrics) UserUseCase {
	return &userUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (u *userUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "user", operation, status)
	u.metrics.RecordDuration(ctx, "user", operation, time.Since(start), status)
}

// Register records metrics for account creation operations.
func (u *userUseCaseWithMetrics) Register(
	ctx context.Context,
	input *userDomain.RegisterInput,
) (*userDomain.User, error) {
	start := time.Now()
	user, err := u.next.Register(ctx, input)
	u.record(ctx, "register", start, err)
	return user, err
}

// Login records metrics for credential exchange operations.
func (u *userUseCaseWithMetrics) Login(
	ctx context.Context,
	email, password string,
) (*userDomain.LoginOutput, error) {
	start := time.Now()
	output, err := u.next.Login(ctx, email, password)
	u.record(ctx, "login", start, err)
	return output, err
}

// Get records metrics for account retrieval operations.
func (u *userUseCaseWithMetrics) Get(ctx context.Context, id string) (*userDomain.User, error) {
	start := time.Now()
	user, err := u.next.Get(ctx, id)
	u.record(ctx, "get", start, err)
	return user, err
}

// List records metrics for account list operations.
func (u *userUseCaseWithMetrics) List(ctx context.Context, offset, limit int) ([]*userDomain.User, error) {
	start := time.Now()
	users, err := u.next.List(ctx, offset, limit)
	u.record(ctx, "list", start, err)
	return users, err
}

// Update records metrics for account update operations.
func (u *userUseCaseWithMetrics) Update(
	ctx context.Context,
	id string,
	input *userDomain.UpdateInput,
) (*userDomain.User, error) {
	start := time.Now()
	user, err := u.next.Update(ctx, id, input)
	u.record(ctx, "update", start, err)
	return user, err
}

// Delete records metrics for account deletion operations.
func (u *userUseCaseWithMetrics) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := u.next.Delete(ctx, id)
	u.record(ctx, "delete", start, err)
	return err
}
