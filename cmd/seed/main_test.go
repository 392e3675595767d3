package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"course-recommender/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFixture(t *testing.T) {
	fixture, err := loadFixture("catalog.yaml")
	require.NoError(t, err)

	require.NotEmpty(t, fixture.Users)
	require.NotEmpty(t, fixture.Courses)

	learners := 0
	for _, u := range fixture.Users {
		if u.Learner {
			learners++
		}
	}
	assert.Equal(t, 1, learners)

	seed := fixture.catalogSeed()
	assert.Len(t, seed.Categories, len(fixture.Categories))
	assert.Len(t, seed.Tags, len(fixture.Tags))
	require.Len(t, seed.Courses, len(fixture.Courses))

	first := seed.Courses[0]
	assert.Equal(t, "HTML5 Basics", first.Course.Title)
	assert.Equal(t, models.CourseStatusPublished, first.Course.Status)
	assert.Equal(t, models.ApprovalStatusApproved, first.Course.ApprovalStatus)
	require.NotNil(t, first.Course.Description)
	assert.Nil(t, first.Course.ThumbnailURL)
	assert.Equal(t, []int64{1}, first.TagIDs)

	draft := seed.Courses[len(seed.Courses)-1]
	assert.Equal(t, models.CourseStatusDraft, draft.Course.Status)
	assert.Equal(t, models.ApprovalStatusPending, draft.Course.ApprovalStatus)
}

func TestCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cacheFile := filepath.Join(dir, "cache.json")

	cache, err := loadCache(cacheFile)
	require.NoError(t, err)
	assert.Empty(t, cache.SeededFiles)

	cache.SeededFiles["catalog.yaml"] = SeededFile{FilePath: "catalog.yaml", FileHash: "abc", SeededAt: time.Now().UTC()}
	require.NoError(t, saveCache(cacheFile, cache))

	loaded, err := loadCache(cacheFile)
	require.NoError(t, err)
	assert.Equal(t, "abc", loaded.SeededFiles["catalog.yaml"].FileHash)
}

func TestCalculateFileHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	hash, err := calculateFileHash(path)
	require.NoError(t, err)
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", hash)

	_, err = calculateFileHash(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

type recordingExecer struct {
	statements []string
	err        error
}

func (e *recordingExecer) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	e.statements = append(e.statements, sql)
	return pgconn.CommandTag{}, e.err
}

func TestApplySchema(t *testing.T) {
	db := &recordingExecer{}
	require.NoError(t, applySchema(context.Background(), db, filepath.Join("..", "..", "migrations", "001_init.sql")))
	require.Len(t, db.statements, 1)
	assert.Contains(t, db.statements[0], "CREATE TABLE IF NOT EXISTS ai_recommendation_course")
	assert.Contains(t, db.statements[0], "CREATE TABLE IF NOT EXISTS learning_path_item")

	assert.Error(t, applySchema(context.Background(), db, filepath.Join(t.TempDir(), "missing.sql")))

	empty := filepath.Join(t.TempDir(), "empty.sql")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	assert.Error(t, applySchema(context.Background(), db, empty))

	failing := &recordingExecer{err: errors.New("permission denied")}
	err := applySchema(context.Background(), failing, filepath.Join("..", "..", "migrations", "001_init.sql"))
	assert.ErrorContains(t, err, "permission denied")
}
