package repository

import (
	"context"
	"errors"
	"fmt"

	"course-recommender/internal/models"
	"course-recommender/internal/roadmap"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

type RecommendationRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewRecommendationRepository(db *pgxpool.Pool, logger *zap.Logger) *RecommendationRepository {
	return &RecommendationRepository{
		db:     db,
		logger: logger,
	}
}

// CreateWithLinks stores the recommendation and all of its course links in one
// transaction. rec.ID and rec.CreatedAt are filled from the database.
func (r *RecommendationRepository) CreateWithLinks(ctx context.Context, rec *models.Recommendation, links []*models.RecommendationCourse) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	sql, args, err := buildInsertRecommendation(rec)
	if err != nil {
		return err
	}
	if err := tx.QueryRow(ctx, sql, args...).Scan(&rec.ID, &rec.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert recommendation: %w", err)
	}

	if len(links) > 0 {
		for _, link := range links {
			link.RecommendationID = rec.ID
		}

		sql, args, err = buildInsertLinks(links)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("failed to insert recommendation courses: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit recommendation: %w", err)
	}

	r.logger.Debug("Recommendation stored",
		zap.Int64("recommendation_id", rec.ID),
		zap.Int("links", len(links)),
	)
	return nil
}

func buildInsertRecommendation(rec *models.Recommendation) (string, []any, error) {
	return squirrel.Insert("ai_recommendation").
		Columns("user_id", "goal_text", "input_json", "output_json").
		Values(rec.UserID, rec.GoalText, rec.Input, rec.Output).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildInsertLinks(links []*models.RecommendationCourse) (string, []any, error) {
	builder := squirrel.Insert("ai_recommendation_course").
		Columns("recommendation_id", "course_id", "stage", "matched_topics", "rationale").
		PlaceholderFormat(squirrel.Dollar)

	for _, link := range links {
		topics := link.MatchedTopics
		if topics == nil {
			topics = []string{}
		}
		builder = builder.Values(link.RecommendationID, link.CourseID, string(link.Stage), topics, link.Rationale)
	}

	return builder.ToSql()
}

func (r *RecommendationRepository) GetByID(ctx context.Context, id int64) (*models.Recommendation, error) {
	query := squirrel.Select("id", "user_id", "goal_text", "input_json", "output_json", "created_at").
		From("ai_recommendation").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var rec models.Recommendation
	var output []byte
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&rec.ID, &rec.UserID, &rec.GoalText, &rec.Input, &output, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// stored snapshots are canonical already; parsing again restores empty sections
	rec.Output = roadmap.Parse(string(output))
	if rec.Input.Preferences == nil {
		rec.Input.Preferences = []string{}
	}

	return &rec, nil
}

// UpdateInput replaces the input snapshot, used to fold the saved flag in.
func (r *RecommendationRepository) UpdateInput(ctx context.Context, id int64, input models.InputSnapshot) error {
	query := squirrel.Update("ai_recommendation").
		Set("input_json", input).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func buildListLinksQuery(recommendationID int64) (string, []any, error) {
	columns := append([]string{
		"l.id", "l.recommendation_id", "l.course_id", "l.stage", "l.matched_topics", "l.rationale",
	}, courseColumns...)

	query := joinCourse(squirrel.Select(columns...).From("ai_recommendation_course l"), "l.course_id").
		Where(squirrel.Eq{"l.recommendation_id": recommendationID}).
		OrderBy("l.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	return query.ToSql()
}

// ListLinks reloads every link of a recommendation, placeholders included,
// with the linked course, its instructor, category and tags.
func (r *RecommendationRepository) ListLinks(ctx context.Context, recommendationID int64) ([]*models.RecommendationCourse, error) {
	sql, args, err := buildListLinksQuery(recommendationID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := []*models.RecommendationCourse{}
	var courses []*models.Course
	for rows.Next() {
		var link models.RecommendationCourse
		var stage string
		var rationale *string
		var row courseRow

		dest := append([]any{
			&link.ID, &link.RecommendationID, &link.CourseID, &stage, &link.MatchedTopics, &rationale,
		}, row.dest()...)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}

		link.Stage = roadmap.ParseStage(stage)
		link.Rationale = deref(rationale)
		link.Course = row.course()
		if link.Course != nil {
			courses = append(courses, link.Course)
		}
		links = append(links, &link)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	if err := attachTags(ctx, r.db, courses); err != nil {
		return nil, fmt.Errorf("failed to load course tags: %w", err)
	}

	return links, nil
}
