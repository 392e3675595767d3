package repository

import (
	"testing"
	"time"

	"course-recommender/internal/models"
	"course-recommender/internal/roadmap"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "html", escapeLike("html"))
	assert.Equal(t, `50\%\_off`, escapeLike("50%_off"))
	assert.Equal(t, `c\\d`, escapeLike(`c\d`))
}

func TestBuildCourseSearchQuery(t *testing.T) {
	sql, args, err := buildCourseSearchQuery([]string{"html", "50%_off"})
	require.NoError(t, err)

	assert.Contains(t, sql, "SELECT DISTINCT c.id FROM course c")
	assert.Contains(t, sql, "LEFT JOIN course_tag ct ON ct.course_id = c.id")
	assert.Contains(t, sql, "LEFT JOIN tag t ON t.id = ct.tag_id")
	assert.Contains(t, sql, "c.approval_status = $1 AND c.status = $2")
	assert.Contains(t, sql, "(c.title ILIKE $3 OR c.description ILIKE $4 OR t.name ILIKE $5 OR c.title ILIKE $6")
	assert.Contains(t, sql, "ORDER BY c.id ASC")

	assert.Equal(t, []any{
		"APPROVED", "PUBLISHED",
		"%html%", "%html%", "%html%",
		`%50\%\_off%`, `%50\%\_off%`, `%50\%\_off%`,
	}, args)
}

func TestBuildInsertRecommendation(t *testing.T) {
	rec := &models.Recommendation{
		UserID:   uuid.New(),
		GoalText: "Become a web developer",
		Output:   roadmap.Empty(),
	}

	sql, args, err := buildInsertRecommendation(rec)
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO ai_recommendation (user_id,goal_text,input_json,output_json) VALUES ($1,$2,$3,$4) RETURNING id, created_at", sql)
	require.Len(t, args, 4)
	assert.Equal(t, rec.UserID, args[0])
	assert.Equal(t, roadmap.Empty(), args[3])
}

func TestBuildInsertLinks(t *testing.T) {
	courseID := int64(7)
	links := []*models.RecommendationCourse{
		{RecommendationID: 3, CourseID: &courseID, Stage: roadmap.StageFoundation, MatchedTopics: []string{"HTML"}, Rationale: "Matched topics: HTML"},
		{RecommendationID: 3, Stage: roadmap.StageAdvanced, Rationale: "No matching course found for Rust"},
	}

	sql, args, err := buildInsertLinks(links)
	require.NoError(t, err)

	assert.Contains(t, sql, "INSERT INTO ai_recommendation_course (recommendation_id,course_id,stage,matched_topics,rationale)")
	assert.Contains(t, sql, "VALUES ($1,$2,$3,$4,$5),($6,$7,$8,$9,$10)")
	require.Len(t, args, 10)
	assert.Equal(t, "FOUNDATION", args[2])
	assert.Equal(t, []string{"HTML"}, args[3])
	assert.Nil(t, args[6])
	assert.Equal(t, []string{}, args[8], "placeholders store an empty topic list")
}

func TestBuildListLinksQuery(t *testing.T) {
	sql, args, err := buildListLinksQuery(42)
	require.NoError(t, err)

	assert.Contains(t, sql, "FROM ai_recommendation_course l")
	assert.Contains(t, sql, "LEFT JOIN course c ON c.id = l.course_id")
	assert.Contains(t, sql, `LEFT JOIN "user" i ON i.id = c.instructor_id`)
	assert.Contains(t, sql, "LEFT JOIN course_category cat ON cat.id = c.category_id")
	assert.Contains(t, sql, "c.price::float8")
	assert.Contains(t, sql, "WHERE l.recommendation_id = $1")
	assert.Contains(t, sql, "ORDER BY l.id ASC")
	assert.Equal(t, []any{int64(42)}, args)
}

func TestBuildPathItemsQuery(t *testing.T) {
	sql, args, err := buildPathItemsQuery([]int64{1, 2})
	require.NoError(t, err)

	assert.Contains(t, sql, "FROM learning_path_item li")
	assert.Contains(t, sql, "LEFT JOIN course c ON c.id = li.course_id")
	assert.Contains(t, sql, "li.path_id IN ($1,$2)")
	assert.Contains(t, sql, "ORDER BY li.id ASC")
	assert.Equal(t, []any{int64(1), int64(2)}, args)
}

func TestBuildUpsertUser(t *testing.T) {
	sql, _, err := buildUpsertUser(&models.User{ID: uuid.New(), Email: "ada@example.com"})
	require.NoError(t, err)

	assert.Contains(t, sql, `INSERT INTO "user" (id,first_name,last_name,email,password)`)
	assert.Contains(t, sql, "ON CONFLICT (email) DO UPDATE")
	assert.Contains(t, sql, "RETURNING id, created_at, updated_at")
}

func TestCourseRow(t *testing.T) {
	var empty courseRow
	assert.Nil(t, empty.course())

	id := int64(5)
	title := "HTML5 Basics"
	level := "BEGINNER"
	instructorID := uuid.New()
	first := "Ada"
	categoryID := int64(2)
	category := "Web"
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	row := courseRow{
		ID:                  &id,
		Title:               &title,
		Level:               &level,
		CreatedAt:           &created,
		InstructorID:        &instructorID,
		InstructorFirstName: &first,
		CategoryID:          &categoryID,
		CategoryName:        &category,
	}

	c := row.course()
	require.NotNil(t, c)
	assert.Equal(t, id, c.ID)
	assert.Equal(t, title, c.Title)
	assert.Nil(t, c.Description)
	assert.Equal(t, models.CourseLevelBeginner, c.Level)
	assert.Equal(t, created, c.CreatedAt)
	assert.Equal(t, 0.0, c.Price)
	require.NotNil(t, c.Instructor)
	assert.Equal(t, "Ada", c.Instructor.FirstName)
	assert.Equal(t, &models.Category{ID: 2, Name: "Web"}, c.Category)
	assert.NotNil(t, c.Tags)
	assert.Len(t, row.dest(), len(courseColumns))
}
