package repository

import (
	"context"
	"errors"
	"time"

	"course-recommender/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/Masterminds/squirrel"
)

var ErrNotFound = errors.New("record not found")

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// courseColumns selects a LEFT JOINed course with its instructor and category.
// Every column may be NULL when the joined course is missing.
var courseColumns = []string{
	"c.id", "c.title", "c.description", "c.thumbnail_url",
	"c.price::float8", "c.original_price::float8", "c.duration_hours", "c.total_enrolled",
	"c.rating::float8", "c.rating_count", "c.level", "c.status", "c.approval_status",
	"c.created_at", "c.updated_at",
	"i.id", "i.first_name", "i.last_name", "i.email",
	"cat.id", "cat.name",
}

func joinCourse(builder squirrel.SelectBuilder, courseRef string) squirrel.SelectBuilder {
	return builder.
		LeftJoin("course c ON c.id = " + courseRef).
		LeftJoin(`"user" i ON i.id = c.instructor_id`).
		LeftJoin("course_category cat ON cat.id = c.category_id")
}

type courseRow struct {
	ID             *int64
	Title          *string
	Description    *string
	ThumbnailURL   *string
	Price          *float64
	OriginalPrice  *float64
	DurationHours  *int
	TotalEnrolled  *int
	Rating         *float64
	RatingCount    *int
	Level          *string
	Status         *string
	ApprovalStatus *string
	CreatedAt      *time.Time
	UpdatedAt      *time.Time

	InstructorID        *uuid.UUID
	InstructorFirstName *string
	InstructorLastName  *string
	InstructorEmail     *string

	CategoryID   *int64
	CategoryName *string
}

func (r *courseRow) dest() []any {
	return []any{
		&r.ID, &r.Title, &r.Description, &r.ThumbnailURL,
		&r.Price, &r.OriginalPrice, &r.DurationHours, &r.TotalEnrolled,
		&r.Rating, &r.RatingCount, &r.Level, &r.Status, &r.ApprovalStatus,
		&r.CreatedAt, &r.UpdatedAt,
		&r.InstructorID, &r.InstructorFirstName, &r.InstructorLastName, &r.InstructorEmail,
		&r.CategoryID, &r.CategoryName,
	}
}

// course returns nil when the join found no course.
func (r *courseRow) course() *models.Course {
	if r.ID == nil {
		return nil
	}

	c := &models.Course{
		ID:             *r.ID,
		Title:          deref(r.Title),
		Description:    r.Description,
		ThumbnailURL:   r.ThumbnailURL,
		Price:          deref(r.Price),
		OriginalPrice:  deref(r.OriginalPrice),
		DurationHours:  deref(r.DurationHours),
		TotalEnrolled:  deref(r.TotalEnrolled),
		Rating:         deref(r.Rating),
		RatingCount:    deref(r.RatingCount),
		Level:          models.CourseLevel(deref(r.Level)),
		Status:         models.CourseStatus(deref(r.Status)),
		ApprovalStatus: models.ApprovalStatus(deref(r.ApprovalStatus)),
		CreatedAt:      deref(r.CreatedAt),
		UpdatedAt:      deref(r.UpdatedAt),
		Tags:           []models.Tag{},
	}

	if r.InstructorID != nil {
		c.Instructor = &models.User{
			ID:        *r.InstructorID,
			FirstName: deref(r.InstructorFirstName),
			LastName:  deref(r.InstructorLastName),
			Email:     deref(r.InstructorEmail),
		}
	}
	if r.CategoryID != nil {
		c.Category = &models.Category{ID: *r.CategoryID, Name: deref(r.CategoryName)}
	}

	return c
}

// attachTags loads tags for every distinct course in courses with one query.
func attachTags(ctx context.Context, q querier, courses []*models.Course) error {
	byID := make(map[int64][]*models.Course)
	ids := make([]int64, 0, len(courses))
	for _, c := range courses {
		if c == nil {
			continue
		}
		if _, ok := byID[c.ID]; !ok {
			ids = append(ids, c.ID)
		}
		byID[c.ID] = append(byID[c.ID], c)
	}
	if len(ids) == 0 {
		return nil
	}

	query := squirrel.Select("ct.course_id", "t.id", "t.name").
		From("course_tag ct").
		Join("tag t ON t.id = ct.tag_id").
		Where(squirrel.Eq{"ct.course_id": ids}).
		OrderBy("ct.course_id ASC", "t.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var courseID int64
		var tag models.Tag
		if err := rows.Scan(&courseID, &tag.ID, &tag.Name); err != nil {
			return err
		}
		for _, c := range byID[courseID] {
			c.Tags = append(c.Tags, tag)
		}
	}

	return rows.Err()
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
