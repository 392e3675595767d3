package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"course-recommender/internal/models"
	"course-recommender/internal/roadmap"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

type LearningPathRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewLearningPathRepository(db *pgxpool.Pool, logger *zap.Logger) *LearningPathRepository {
	return &LearningPathRepository{
		db:     db,
		logger: logger,
	}
}

// CreateWithItems stores the path and its items in one transaction and fills
// the generated ids and timestamps.
func (r *LearningPathRepository) CreateWithItems(ctx context.Context, path *models.LearningPath, items []*models.LearningPathItem) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	sql, args, err := squirrel.Insert("learning_path").
		Columns("user_id", "recommendation_id", "name", "metadata").
		Values(path.UserID, path.RecommendationID, path.Name, path.Metadata).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}
	if err := tx.QueryRow(ctx, sql, args...).Scan(&path.ID, &path.CreatedAt, &path.UpdatedAt); err != nil {
		return fmt.Errorf("failed to insert learning path: %w", err)
	}

	if len(items) > 0 {
		builder := squirrel.Insert("learning_path_item").
			Columns("path_id", "course_id", "stage", "order_index", "note").
			PlaceholderFormat(squirrel.Dollar)
		for _, item := range items {
			item.PathID = path.ID
			builder = builder.Values(item.PathID, item.CourseID, string(item.Stage), item.OrderIndex, item.Note)
		}

		sql, args, err = builder.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("failed to insert learning path items: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit learning path: %w", err)
	}

	r.logger.Debug("Learning path stored",
		zap.Int64("path_id", path.ID),
		zap.Int("items", len(items)),
	)
	return nil
}

var pathColumns = []string{"id", "user_id", "recommendation_id", "name", "metadata", "created_at", "updated_at"}

func scanPath(row pgx.Row) (*models.LearningPath, error) {
	var path models.LearningPath
	var metadata []byte
	if err := row.Scan(
		&path.ID, &path.UserID, &path.RecommendationID, &path.Name, &metadata, &path.CreatedAt, &path.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(metadata) > 0 {
		// metadata is a convenience snapshot; a malformed one is not fatal
		_ = json.Unmarshal(metadata, &path.Metadata)
	}
	path.Items = []*models.LearningPathItem{}
	return &path, nil
}

func (r *LearningPathRepository) GetByID(ctx context.Context, id int64) (*models.LearningPath, error) {
	sql, args, err := squirrel.Select(pathColumns...).
		From("learning_path").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	path, err := scanPath(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := r.loadItems(ctx, []*models.LearningPath{path}); err != nil {
		return nil, err
	}
	return path, nil
}

// ListByUser returns the user's paths, most recently updated first, with items.
func (r *LearningPathRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.LearningPath, error) {
	sql, args, err := squirrel.Select(pathColumns...).
		From("learning_path").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("updated_at DESC", "id DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	paths := []*models.LearningPath{}
	for rows.Next() {
		path, err := scanPath(rows)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	if err := r.loadItems(ctx, paths); err != nil {
		return nil, err
	}
	return paths, nil
}

func buildPathItemsQuery(pathIDs []int64) (string, []any, error) {
	columns := append([]string{
		"li.id", "li.path_id", "li.course_id", "li.stage", "li.order_index", "li.note",
	}, courseColumns...)

	return joinCourse(squirrel.Select(columns...).From("learning_path_item li"), "li.course_id").
		Where(squirrel.Eq{"li.path_id": pathIDs}).
		OrderBy("li.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *LearningPathRepository) loadItems(ctx context.Context, paths []*models.LearningPath) error {
	if len(paths) == 0 {
		return nil
	}

	byID := make(map[int64]*models.LearningPath, len(paths))
	ids := make([]int64, 0, len(paths))
	for _, p := range paths {
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}

	sql, args, err := buildPathItemsQuery(ids)
	if err != nil {
		return err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var item models.LearningPathItem
		var stage string
		var row courseRow

		dest := append([]any{
			&item.ID, &item.PathID, &item.CourseID, &stage, &item.OrderIndex, &item.Note,
		}, row.dest()...)
		if err := rows.Scan(dest...); err != nil {
			return err
		}

		item.Stage = roadmap.ParseStage(stage)
		item.Course = row.course()
		if item.Course != nil {
			courses = append(courses, item.Course)
		}
		if p, ok := byID[item.PathID]; ok {
			p.Items = append(p.Items, &item)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}
	rows.Close()

	if err := attachTags(ctx, r.db, courses); err != nil {
		return fmt.Errorf("failed to load course tags: %w", err)
	}
	return nil
}
