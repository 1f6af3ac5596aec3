// Package memory provides a substitutable in-memory persistence gateway.
// It honors the same contract as the SQL gateways, including the unique
// email constraint and deterministic insertion order, so the core services
// can run against it in tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/patrickmn/go-cache"

	"taskapp/internal/core/domain"
	"taskapp/internal/core/port"
)

type Store struct {
	mu        sync.RWMutex
	users     *cache.Cache
	tasks     *cache.Cache
	userOrder []string
	taskOrder []string
}

func NewStore() *Store {
	return &Store{
		users: cache.New(cache.NoExpiration, 0),
		tasks: cache.New(cache.NoExpiration, 0),
	}
}

func (s *Store) Users() port.UserRepository {
	return &userRepository{store: s}
}

func (s *Store) Tasks() port.TaskRepository {
	return &taskRepository{store: s}
}

type userRepository struct {
	store *Store
}

func (r *userRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	s := r.store

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.userOrder {
		if existing, found := s.users.Get(id); found && existing.(domain.User).Email == user.Email {
			return domain.User{}, fmt.Errorf("%w: email %s", domain.ErrConflict, user.Email)
		}
	}

	id := user.UUID.String()
	s.users.Set(id, user, cache.NoExpiration)
	s.userOrder = append(s.userOrder, id)

	return user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	s := r.store

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.userOrder {
		if existing, found := s.users.Get(id); found && existing.(domain.User).Email == email {
			return existing.(domain.User), nil
		}
	}

	return domain.User{}, fmt.Errorf("%w: email %s", domain.ErrNotFound, email)
}

func (r *userRepository) GetByUUID(ctx context.Context, uid string) (domain.User, error) {
	s := r.store

	s.mu.RLock()
	defer s.mu.RUnlock()

	if existing, found := s.users.Get(uid); found {
		return existing.(domain.User), nil
	}

	return domain.User{}, fmt.Errorf("%w: user %s", domain.ErrNotFound, uid)
}

func (r *userRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	s := r.store

	s.mu.RLock()
	defer s.mu.RUnlock()

	data := []domain.User{}

	for _, id := range s.userOrder {
		if existing, found := s.users.Get(id); found {
			data = append(data, existing.(domain.User))
		}
	}

	return data, nil
}

func (r *userRepository) DeleteAll(ctx context.Context) (int64, error) {
	s := r.store

	s.mu.Lock()
	defer s.mu.Unlock()

	count := int64(len(s.userOrder))

	s.users.Flush()
	s.userOrder = nil

	return count, nil
}

type taskRepository struct {
	store *Store
}

func (r *taskRepository) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	s := r.store

	s.mu.Lock()
	defer s.mu.Unlock()

	id := task.UUID.String()
	s.tasks.Set(id, task, cache.NoExpiration)
	s.taskOrder = append(s.taskOrder, id)

	return task, nil
}

func (r *taskRepository) GetFirstByName(ctx context.Context, name string) (domain.Task, error) {
	s := r.store

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.taskOrder {
		if existing, found := s.tasks.Get(id); found && existing.(domain.Task).Name == name {
			return existing.(domain.Task), nil
		}
	}

	return domain.Task{}, fmt.Errorf("%w: task %s", domain.ErrNotFound, name)
}

func (r *taskRepository) GetAllByUser(ctx context.Context, userUUID string) ([]domain.Task, error) {
	s := r.store

	s.mu.RLock()
	defer s.mu.RUnlock()

	data := []domain.Task{}

	for _, id := range s.taskOrder {
		if existing, found := s.tasks.Get(id); found && existing.(domain.Task).UserUUID.String() == userUUID {
			data = append(data, existing.(domain.Task))
		}
	}

	return data, nil
}

func (r *taskRepository) DeleteAll(ctx context.Context) (int64, error) {
	s := r.store

	s.mu.Lock()
	defer s.mu.Unlock()

	count := int64(len(s.taskOrder))

	s.tasks.Flush()
	s.taskOrder = nil

	return count, nil
}
