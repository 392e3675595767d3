package service

import (
	"context"
	"time"

	"course-recommender/internal/models"

	"github.com/google/uuid"
)

// Request contexts coming from fiber carry no deadline, so every persistence
// call gets its own.

func storeContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

type timedRecommendationStore struct {
	next    RecommendationStore
	timeout time.Duration
}

func withRecommendationTimeout(store RecommendationStore, timeout time.Duration) RecommendationStore {
	if timeout <= 0 {
		return store
	}
	return &timedRecommendationStore{next: store, timeout: timeout}
}

func (s *timedRecommendationStore) CreateWithLinks(ctx context.Context, rec *models.Recommendation, links []*models.RecommendationCourse) error {
	ctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()
	return s.next.CreateWithLinks(ctx, rec, links)
}

func (s *timedRecommendationStore) GetByID(ctx context.Context, id int64) (*models.Recommendation, error) {
	ctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()
	return s.next.GetByID(ctx, id)
}

func (s *timedRecommendationStore) UpdateInput(ctx context.Context, id int64, input models.InputSnapshot) error {
	ctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()
	return s.next.UpdateInput(ctx, id, input)
}

func (s *timedRecommendationStore) ListLinks(ctx context.Context, recommendationID int64) ([]*models.RecommendationCourse, error) {
	ctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()
	return s.next.ListLinks(ctx, recommendationID)
}

type timedLearningPathStore struct {
	next    LearningPathStore
	timeout time.Duration
}

func withLearningPathTimeout(store LearningPathStore, timeout time.Duration) LearningPathStore {
	if timeout <= 0 {
		return store
	}
	return &timedLearningPathStore{next: store, timeout: timeout}
}

func (s *timedLearningPathStore) CreateWithItems(ctx context.Context, path *models.LearningPath, items []*models.LearningPathItem) error {
	ctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()
	return s.next.CreateWithItems(ctx, path, items)
}

func (s *timedLearningPathStore) GetByID(ctx context.Context, id int64) (*models.LearningPath, error) {
	ctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()
	return s.next.GetByID(ctx, id)
}

func (s *timedLearningPathStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.LearningPath, error) {
	ctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()
	return s.next.ListByUser(ctx, userID)
}
