package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"taskapp/internal/core/domain"
	"taskapp/internal/core/port"
	"taskapp/internal/core/telemetry"
)

type UserService struct {
	users   port.UserRepository
	tasks   port.TaskRepository
	metrics *telemetry.AppMetrics
}

func NewUserService(users port.UserRepository, tasks port.TaskRepository, metrics *telemetry.AppMetrics) *UserService {
	if metrics == nil {
		metrics = telemetry.NewNoOpMetrics()
	}

	return &UserService{
		users:   users,
		tasks:   tasks,
		metrics: metrics,
	}
}

func (s *UserService) Register(ctx context.Context, email string) (domain.User, error) {
	if !domain.IsValidEmail(email) {
		return domain.User{}, fmt.Errorf("%w: invalid email address", domain.ErrInvalidInput)
	}

	_, err := s.users.GetByEmail(ctx, email)

	if err == nil {
		return domain.User{}, fmt.Errorf("%w: user already exists", domain.ErrConflict)
	}

	if !errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, err
	}

	newUser := domain.User{
		UUID:      uuid.New(),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	// The unique index on email is the backstop for the race between the
	// lookup above and this insert; the repository reports it as ErrConflict.
	saved, err := s.users.Create(ctx, newUser)

	if err != nil {
		slog.Error("Error creating user", "error", err, "email", email)
		return domain.User{}, err
	}

	s.metrics.RecordUserOperation("create")

	return saved, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)

	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, fmt.Errorf("%w: user not found", domain.ErrNotFound)
		}

		return domain.User{}, err
	}

	return user, nil
}

// GetProfileByEmail returns the restricted projection of the user record.
func (s *UserService) GetProfileByEmail(ctx context.Context, email string) (domain.Profile, error) {
	user, err := s.GetByEmail(ctx, email)

	if err != nil {
		return domain.Profile{}, err
	}

	return user.Profile(), nil
}

// ListWithTasks returns every user, each eager-loaded with its tasks.
func (s *UserService) ListWithTasks(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.GetAll(ctx)

	if err != nil {
		return nil, err
	}

	for i := range users {
		tasks, err := s.tasks.GetAllByUser(ctx, users[i].UUID.String())

		if err != nil {
			return nil, err
		}

		users[i].Tasks = tasks
	}

	return users, nil
}

// Reset drops every user. Failures never reach the caller: bulk reset is a
// best-effort maintenance action, so store errors are logged and counted only.
func (s *UserService) Reset(ctx context.Context) {
	count, err := s.users.DeleteAll(ctx)

	if err != nil {
		slog.Error("An error occurred while resetting user data", "error", err)
		s.metrics.RecordReset("users", "error")
		return
	}

	slog.Info("User data reset", "deleted", count)
	s.metrics.RecordReset("users", "ok")
}
