package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"course-recommender/internal/models"
	"course-recommender/internal/repository"

	"github.com/google/uuid"
)

type fakeModel struct {
	mu       sync.Mutex
	answer   string
	err      error
	requests []ChatRequest
}

func (m *fakeModel) Complete(ctx context.Context, req ChatRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
	if m.err != nil {
		return "", m.err
	}
	return m.answer, nil
}

func (m *fakeModel) Close() error { return nil }

func (m *fakeModel) lastRequest() ChatRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests[len(m.requests)-1]
}

// fakeCatalog answers keyword searches against course titles and tag names.
type fakeCatalog struct {
	courses map[int64]*models.Course
}

func (c *fakeCatalog) SearchCourseIDs(ctx context.Context, keywords []string) ([]int64, error) {
	var ids []int64
	for id := int64(1); id <= int64(len(c.courses)); id++ {
		course := c.courses[id]
		text := strings.ToLower(course.Title)
		for _, tag := range course.Tags {
			text += " " + strings.ToLower(tag.Name)
		}
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				ids = append(ids, id)
				break
			}
		}
	}
	return ids, nil
}

type fakeRecommendationStore struct {
	mu      sync.Mutex
	catalog *fakeCatalog
	recs    map[int64]*models.Recommendation
	links   map[int64][]*models.RecommendationCourse
	nextID  int64
}

func newFakeRecommendationStore(catalog *fakeCatalog) *fakeRecommendationStore {
	return &fakeRecommendationStore{
		catalog: catalog,
		recs:    make(map[int64]*models.Recommendation),
		links:   make(map[int64][]*models.RecommendationCourse),
	}
}

func (s *fakeRecommendationStore) CreateWithLinks(ctx context.Context, rec *models.Recommendation, links []*models.RecommendationCourse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	rec.ID = s.nextID
	rec.CreatedAt = time.Now()

	stored := *rec
	s.recs[rec.ID] = &stored
	for i, link := range links {
		l := *link
		l.ID = int64(i + 1)
		l.RecommendationID = rec.ID
		s.links[rec.ID] = append(s.links[rec.ID], &l)
	}
	return nil
}

func (s *fakeRecommendationStore) GetByID(ctx context.Context, id int64) (*models.Recommendation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.recs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *rec
	return &copied, nil
}

func (s *fakeRecommendationStore) UpdateInput(ctx context.Context, id int64, input models.InputSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.recs[id]
	if !ok {
		return repository.ErrNotFound
	}
	rec.Input = input
	return nil
}

func (s *fakeRecommendationStore) ListLinks(ctx context.Context, recommendationID int64) ([]*models.RecommendationCourse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.RecommendationCourse
	for _, link := range s.links[recommendationID] {
		l := *link
		if l.CourseID != nil && s.catalog != nil {
			l.Course = s.catalog.courses[*l.CourseID]
		}
		out = append(out, &l)
	}
	return out, nil
}

type fakePathStore struct {
	mu     sync.Mutex
	recs   *fakeRecommendationStore
	paths  map[int64]*models.LearningPath
	nextID int64
}

func newFakePathStore(recs *fakeRecommendationStore) *fakePathStore {
	return &fakePathStore{recs: recs, paths: make(map[int64]*models.LearningPath)}
}

func (s *fakePathStore) CreateWithItems(ctx context.Context, path *models.LearningPath, items []*models.LearningPathItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	path.ID = s.nextID
	path.CreatedAt = time.Date(2024, 3, 1, 10, 0, 0, int(s.nextID), time.UTC)
	path.UpdatedAt = path.CreatedAt

	stored := *path
	stored.Items = nil
	for i, item := range items {
		it := *item
		it.ID = int64(i + 1)
		it.PathID = path.ID
		if it.CourseID != nil && s.recs.catalog != nil {
			it.Course = s.recs.catalog.courses[*it.CourseID]
		}
		stored.Items = append(stored.Items, &it)
	}
	s.paths[path.ID] = &stored
	return nil
}

func (s *fakePathStore) GetByID(ctx context.Context, id int64) (*models.LearningPath, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, ok := s.paths[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return path, nil
}

func (s *fakePathStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.LearningPath, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.LearningPath
	for id := s.nextID; id >= 1; id-- {
		if p, ok := s.paths[id]; ok && p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func publishedCourse(id int64, title string, tags ...string) *models.Course {
	course := &models.Course{
		ID:             id,
		Title:          title,
		Level:          models.CourseLevelBeginner,
		Status:         models.CourseStatusPublished,
		ApprovalStatus: models.ApprovalStatusApproved,
		Tags:           []models.Tag{},
	}
	for i, tag := range tags {
		course.Tags = append(course.Tags, models.Tag{ID: int64(i + 1), Name: tag})
	}
	return course
}
