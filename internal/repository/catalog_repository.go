package repository

import (
	"context"
	"fmt"
	"strings"

	"course-recommender/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

type CatalogRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCatalogRepository(db *pgxpool.Pool, logger *zap.Logger) *CatalogRepository {
	return &CatalogRepository{
		db:     db,
		logger: logger,
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// buildCourseSearchQuery matches published, approved courses where any keyword
// is a case-insensitive substring of the title, description or a tag name.
func buildCourseSearchQuery(keywords []string) (string, []any, error) {
	match := squirrel.Or{}
	for _, kw := range keywords {
		pattern := "%" + escapeLike(kw) + "%"
		match = append(match,
			squirrel.ILike{"c.title": pattern},
			squirrel.ILike{"c.description": pattern},
			squirrel.ILike{"t.name": pattern},
		)
	}

	return squirrel.Select("c.id").
		Distinct().
		From("course c").
		LeftJoin("course_tag ct ON ct.course_id = c.id").
		LeftJoin("tag t ON t.id = ct.tag_id").
		Where(squirrel.Eq{
			"c.status":          string(models.CourseStatusPublished),
			"c.approval_status": string(models.ApprovalStatusApproved),
		}).
		Where(match).
		OrderBy("c.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *CatalogRepository) SearchCourseIDs(ctx context.Context, keywords []string) ([]int64, error) {
	if len(keywords) == 0 {
		return nil, nil
	}

	sql, args, err := buildCourseSearchQuery(keywords)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search courses: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// CatalogSeed is a development catalog fixture. Courses reference instructors
// by email and tags by name.
type CatalogSeed struct {
	Categories []models.Category
	Tags       []models.Tag
	Courses    []SeedCourse
}

type SeedCourse struct {
	Course          models.Course
	InstructorEmail string
	CategoryID      int64
	TagIDs          []int64
}

// Seed inserts the fixture in one transaction. Rows that already exist are
// left untouched, so seeding is repeatable.
func (r *CatalogRepository) Seed(ctx context.Context, seed *CatalogSeed) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var statements []squirrel.Sqlizer

	if len(seed.Categories) > 0 {
		categories := squirrel.Insert("course_category").Columns("id", "name")
		for _, c := range seed.Categories {
			categories = categories.Values(c.ID, c.Name)
		}
		statements = append(statements, categories.Suffix("ON CONFLICT (id) DO NOTHING"))
	}

	if len(seed.Tags) > 0 {
		tags := squirrel.Insert("tag").Columns("id", "name")
		for _, t := range seed.Tags {
			tags = tags.Values(t.ID, t.Name)
		}
		statements = append(statements, tags.Suffix("ON CONFLICT (id) DO NOTHING"))
	}

	for _, sc := range seed.Courses {
		c := sc.Course
		statements = append(statements, squirrel.Insert("course").
			Columns("id", "title", "description", "thumbnail_url", "price", "original_price",
				"duration_hours", "total_enrolled", "rating", "rating_count", "level", "status",
				"approval_status", "instructor_id", "category_id").
			Select(squirrel.Select().
				Column("?::bigint", c.ID).
				Column("?", c.Title).
				Column("?", c.Description).
				Column("?", c.ThumbnailURL).
				Column("?::numeric", c.Price).
				Column("?::numeric", c.OriginalPrice).
				Column("?::int", c.DurationHours).
				Column("?::int", c.TotalEnrolled).
				Column("?::numeric", c.Rating).
				Column("?::int", c.RatingCount).
				Column("?", string(c.Level)).
				Column("?", string(c.Status)).
				Column("?", string(c.ApprovalStatus)).
				Column("u.id").
				Column("?::bigint", sc.CategoryID).
				From(`"user" u`).
				Where(squirrel.Eq{"u.email": sc.InstructorEmail})).
			Suffix("ON CONFLICT (id) DO NOTHING"))

		if len(sc.TagIDs) > 0 {
			courseTags := squirrel.Insert("course_tag").Columns("course_id", "tag_id")
			for _, tagID := range sc.TagIDs {
				courseTags = courseTags.Values(c.ID, tagID)
			}
			statements = append(statements, courseTags.Suffix("ON CONFLICT DO NOTHING"))
		}
	}

	// explicit ids bypass the sequences
	statements = append(statements,
		squirrel.Expr("SELECT setval(pg_get_serial_sequence('course_category', 'id'), COALESCE(MAX(id), 1)) FROM course_category"),
		squirrel.Expr("SELECT setval(pg_get_serial_sequence('tag', 'id'), COALESCE(MAX(id), 1)) FROM tag"),
		squirrel.Expr("SELECT setval(pg_get_serial_sequence('course', 'id'), COALESCE(MAX(id), 1)) FROM course"),
	)

	for _, stmt := range statements {
		sql, args, err := stmt.ToSql()
		if err != nil {
			return err
		}
		sql, err = squirrel.Dollar.ReplacePlaceholders(sql)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit catalog seed: %w", err)
	}

	r.logger.Info("Catalog seeded",
		zap.Int("categories", len(seed.Categories)),
		zap.Int("tags", len(seed.Tags)),
		zap.Int("courses", len(seed.Courses)),
	)
	return nil
}
