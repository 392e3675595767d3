package repository

import (
	"context"
	"fmt"

	"course-recommender/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

type UserRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewUserRepository(db *pgxpool.Pool, logger *zap.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

func buildUpsertUser(user *models.User) (string, []any, error) {
	return squirrel.Insert(`"user"`).
		Columns("id", "first_name", "last_name", "email", "password").
		Values(user.ID, user.FirstName, user.LastName, user.Email, user.Password).
		Suffix("ON CONFLICT (email) DO UPDATE SET first_name = EXCLUDED.first_name, last_name = EXCLUDED.last_name " +
			"RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// Upsert creates the account or refreshes its name. The stored id wins over
// user.ID when the email already exists, and is written back into user.
func (r *UserRepository) Upsert(ctx context.Context, user *models.User) error {
	sql, args, err := buildUpsertUser(user)
	if err != nil {
		return err
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return fmt.Errorf("failed to upsert user %s: %w", user.Email, err)
	}
	return nil
}
