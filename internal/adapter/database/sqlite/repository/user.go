package repository

import (
	"context"
	"log/slog"

	sq "github.com/Masterminds/squirrel"

	"taskapp/internal/adapter/database/sqlite"
	"taskapp/internal/core/domain"
	"taskapp/internal/core/port"
)

type UserRepository struct {
	db *sqlite.DB
}

func NewUserRepository(db *sqlite.DB) port.UserRepository {
	return &UserRepository{db: db}
}

func (ur *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	query := ur.db.QueryBuilder.Insert("users").
		Columns("id", "email", "created_at").
		Values(user.UUID.String(), user.Email, user.CreatedAt)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	if _, err := ur.db.ExecContext(ctx, stmt, args...); err != nil {
		slog.Error("Error creating user", "error", err)
		return domain.User{}, sqlite.MapError(err)
	}

	return user, nil
}

func (ur *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	query := ur.db.QueryBuilder.Select("id", "email", "created_at").
		From("users").
		Where(sq.Eq{"email": email}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	var data domain.User

	err = ur.db.QueryRowContext(ctx, stmt, args...).Scan(&data.UUID, &data.Email, &data.CreatedAt)

	if err != nil {
		return domain.User{}, sqlite.MapError(err)
	}

	return data, nil
}

func (ur *UserRepository) GetByUUID(ctx context.Context, uid string) (domain.User, error) {
	query := ur.db.QueryBuilder.Select("id", "email", "created_at").
		From("users").
		Where(sq.Eq{"id": uid}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	var data domain.User

	err = ur.db.QueryRowContext(ctx, stmt, args...).Scan(&data.UUID, &data.Email, &data.CreatedAt)

	if err != nil {
		return domain.User{}, sqlite.MapError(err)
	}

	return data, nil
}

func (ur *UserRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	query := ur.db.QueryBuilder.Select("id", "email", "created_at").
		From("users").
		OrderBy("created_at", "id")

	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := ur.db.QueryContext(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error fetching users", "error", err)
		return nil, sqlite.MapError(err)
	}

	defer rows.Close()

	data := []domain.User{}

	for rows.Next() {
		var user domain.User

		if err := rows.Scan(&user.UUID, &user.Email, &user.CreatedAt); err != nil {
			return nil, err
		}

		data = append(data, user)
	}

	return data, rows.Err()
}

func (ur *UserRepository) DeleteAll(ctx context.Context) (int64, error) {
	stmt, args, err := ur.db.QueryBuilder.Delete("users").ToSql()

	if err != nil {
		return 0, err
	}

	res, err := ur.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		return 0, sqlite.MapError(err)
	}

	return res.RowsAffected()
}
