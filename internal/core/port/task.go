package port

import (
	"context"

	"taskapp/internal/core/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task domain.Task) (domain.Task, error)
	GetFirstByName(ctx context.Context, name string) (domain.Task, error)
	GetAllByUser(ctx context.Context, userUUID string) ([]domain.Task, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type TaskService interface {
	Create(ctx context.Context, name, userID, priority string) (domain.Task, error)
	GetByName(ctx context.Context, name string) (domain.Task, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Task, error)
	Reset(ctx context.Context)
}
