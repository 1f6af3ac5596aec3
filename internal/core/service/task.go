package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskapp/internal/core/domain"
	"taskapp/internal/core/port"
	"taskapp/internal/core/telemetry"
)

type TaskService struct {
	tasks   port.TaskRepository
	users   port.UserRepository
	metrics *telemetry.AppMetrics
}

func NewTaskService(tasks port.TaskRepository, users port.UserRepository, metrics *telemetry.AppMetrics) *TaskService {
	if metrics == nil {
		metrics = telemetry.NewNoOpMetrics()
	}

	return &TaskService{
		tasks:   tasks,
		users:   users,
		metrics: metrics,
	}
}

// Create validates and persists a task. Priority arrives loosely typed from
// the request payload and is coerced before any other check runs.
func (s *TaskService) Create(ctx context.Context, name, userID, priority string) (domain.Task, error) {
	priorityNumber, err := convertPriority(priority)

	if err != nil {
		return domain.Task{}, err
	}

	if name == "" || userID == "" {
		return domain.Task{}, fmt.Errorf("%w: name and userId are required", domain.ErrInvalidInput)
	}

	if !domain.IsValidUserID(userID) {
		return domain.Task{}, fmt.Errorf("%w: invalid user ID", domain.ErrInvalidFormat)
	}

	if _, err := s.users.GetByUUID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Task{}, fmt.Errorf("%w: user not found", domain.ErrNotFound)
		}

		return domain.Task{}, err
	}

	newTask := domain.Task{
		UUID:      uuid.New(),
		Name:      name,
		UserUUID:  uuid.MustParse(userID),
		Priority:  priorityNumber,
		CreatedAt: time.Now().UTC(),
	}

	saved, err := s.tasks.Create(ctx, newTask)

	if err != nil {
		slog.Error("Error creating task", "error", err, "name", name)
		return domain.Task{}, err
	}

	s.metrics.RecordTaskOperation("create")

	return saved, nil
}

// GetByName returns the first task with the given name in insertion order.
// Names are not unique; repeated calls against an unchanged store return the
// same task.
func (s *TaskService) GetByName(ctx context.Context, name string) (domain.Task, error) {
	task, err := s.tasks.GetFirstByName(ctx, name)

	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Task{}, fmt.Errorf("%w: task not found", domain.ErrNotFound)
		}

		return domain.Task{}, err
	}

	return task, nil
}

func (s *TaskService) ListByUser(ctx context.Context, userID string) ([]domain.Task, error) {
	if !domain.IsValidUserID(userID) {
		return nil, fmt.Errorf("%w: invalid user ID", domain.ErrInvalidFormat)
	}

	if _, err := s.users.GetByUUID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found", domain.ErrNotFound)
		}

		return nil, err
	}

	return s.tasks.GetAllByUser(ctx, userID)
}

// Reset drops every task with the same swallow-and-log contract as the user
// reset.
func (s *TaskService) Reset(ctx context.Context) {
	count, err := s.tasks.DeleteAll(ctx)

	if err != nil {
		slog.Error("An error occurred while resetting task data", "error", err)
		s.metrics.RecordReset("tasks", "error")
		return
	}

	slog.Info("Task data reset", "deleted", count)
	s.metrics.RecordReset("tasks", "ok")
}

func convertPriority(priority string) (int, error) {
	parsed, err := strconv.Atoi(strings.TrimSpace(priority))

	if err != nil || parsed <= 0 {
		return 0, fmt.Errorf("%w: invalid priority format", domain.ErrInvalidInput)
	}

	return parsed, nil
}
