package port

import (
	"context"

	"taskapp/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByUUID(ctx context.Context, uid string) (domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type UserService interface {
	Register(ctx context.Context, email string) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetProfileByEmail(ctx context.Context, email string) (domain.Profile, error)
	ListWithTasks(ctx context.Context) ([]domain.User, error)
	Reset(ctx context.Context)
}
