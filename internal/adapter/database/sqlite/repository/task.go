package repository

import (
	"context"
	"log/slog"

	sq "github.com/Masterminds/squirrel"

	"taskapp/internal/adapter/database/sqlite"
	"taskapp/internal/core/domain"
	"taskapp/internal/core/port"
)

type TaskRepository struct {
	db *sqlite.DB
}

func NewTaskRepository(db *sqlite.DB) port.TaskRepository {
	return &TaskRepository{db: db}
}

func (tr *TaskRepository) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	query := tr.db.QueryBuilder.Insert("tasks").
		Columns("id", "name", "user_id", "priority", "created_at").
		Values(task.UUID.String(), task.Name, task.UserUUID.String(), task.Priority, task.CreatedAt)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Task{}, err
	}

	if _, err := tr.db.ExecContext(ctx, stmt, args...); err != nil {
		slog.Error("Error creating task", "error", err)
		return domain.Task{}, sqlite.MapError(err)
	}

	return task, nil
}

// GetFirstByName orders by insertion so repeated calls against an unchanged
// store return the same row.
func (tr *TaskRepository) GetFirstByName(ctx context.Context, name string) (domain.Task, error) {
	query := tr.db.QueryBuilder.Select("id", "name", "user_id", "priority", "created_at").
		From("tasks").
		Where(sq.Eq{"name": name}).
		OrderBy("created_at", "id").
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Task{}, err
	}

	var data domain.Task

	err = tr.db.QueryRowContext(ctx, stmt, args...).Scan(&data.UUID, &data.Name, &data.UserUUID, &data.Priority, &data.CreatedAt)

	if err != nil {
		return domain.Task{}, sqlite.MapError(err)
	}

	return data, nil
}

func (tr *TaskRepository) GetAllByUser(ctx context.Context, userUUID string) ([]domain.Task, error) {
	query := tr.db.QueryBuilder.Select("id", "name", "user_id", "priority", "created_at").
		From("tasks").
		Where(sq.Eq{"user_id": userUUID}).
		OrderBy("created_at", "id")

	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := tr.db.QueryContext(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error fetching tasks", "error", err)
		return nil, sqlite.MapError(err)
	}

	defer rows.Close()

	data := []domain.Task{}

	for rows.Next() {
		var task domain.Task

		if err := rows.Scan(&task.UUID, &task.Name, &task.UserUUID, &task.Priority, &task.CreatedAt); err != nil {
			return nil, err
		}

		data = append(data, task)
	}

	return data, rows.Err()
}

func (tr *TaskRepository) DeleteAll(ctx context.Context) (int64, error) {
	stmt, args, err := tr.db.QueryBuilder.Delete("tasks").ToSql()

	if err != nil {
		return 0, err
	}

	res, err := tr.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		return 0, sqlite.MapError(err)
	}

	return res.RowsAffected()
}
