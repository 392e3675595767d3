package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"course-recommender/internal/dto"
	"course-recommender/internal/models"
	"course-recommender/internal/roadmap"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxPathNameLength = 255

type LearningPathStore interface {
	CreateWithItems(ctx context.Context, path *models.LearningPath, items []*models.LearningPathItem) error
	GetByID(ctx context.Context, id int64) (*models.LearningPath, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.LearningPath, error)
}

type LearningPathService struct {
	recs   RecommendationStore
	paths  LearningPathStore
	logger *zap.Logger
}

func NewLearningPathService(recs RecommendationStore, paths LearningPathStore, storeTimeout time.Duration, logger *zap.Logger) *LearningPathService {
	return &LearningPathService{
		recs:   withRecommendationTimeout(recs, storeTimeout),
		paths:  withLearningPathTimeout(paths, storeTimeout),
		logger: logger,
	}
}

type SavePathInput struct {
	UserID            uuid.UUID
	RecommendationID  int64
	Name              string
	SelectedCourseIDs []int64
}

// SavePath derives a learning path from the matched courses of an owned
// recommendation, optionally restricted to SelectedCourseIDs.
func (s *LearningPathService) SavePath(ctx context.Context, in SavePathInput) (*dto.LearningPathResponse, error) {
	rec, err := loadOwnedRecommendation(ctx, s.recs, in.UserID, in.RecommendationID)
	if err != nil {
		return nil, err
	}

	links, err := s.recs.ListLinks(ctx, rec.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recommendation courses: %w", err)
	}

	items := planPathItems(links, in.SelectedCourseIDs)

	recID := rec.ID
	path := &models.LearningPath{
		UserID:           in.UserID,
		RecommendationID: &recID,
		Name:             pathName(in.Name, rec.ID),
		Metadata: models.PathMetadata{
			GoalText:                  rec.GoalText,
			Input:                     rec.Input,
			CreatedFromRecommendation: rec.ID,
		},
	}

	if err := s.paths.CreateWithItems(ctx, path, items); err != nil {
		s.logger.Error("Failed to store learning path", zap.Int64("recommendation_id", rec.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to store learning path: %w", err)
	}

	saved, err := s.paths.GetByID(ctx, path.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload learning path: %w", err)
	}

	s.logger.Info("Learning path saved",
		zap.Int64("path_id", saved.ID),
		zap.Int64("recommendation_id", rec.ID),
		zap.Int("items", len(items)),
	)

	resp := newLearningPathResponse(saved)
	return &resp, nil
}

// ListPaths returns the user's paths, most recently updated first.
func (s *LearningPathService) ListPaths(ctx context.Context, userID uuid.UUID) ([]dto.LearningPathResponse, error) {
	paths, err := s.paths.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list learning paths: %w", err)
	}

	resp := make([]dto.LearningPathResponse, 0, len(paths))
	for _, p := range paths {
		resp = append(resp, newLearningPathResponse(p))
	}
	return resp, nil
}

// planPathItems drops placeholders, applies the optional selection, orders by
// stage priority then course id and numbers items from 1 within each stage.
func planPathItems(links []*models.RecommendationCourse, selected []int64) []*models.LearningPathItem {
	var keep map[int64]struct{}
	if len(selected) > 0 {
		keep = make(map[int64]struct{}, len(selected))
		for _, id := range selected {
			keep[id] = struct{}{}
		}
	}

	candidates := make([]*models.RecommendationCourse, 0, len(links))
	for _, link := range links {
		if link.IsPlaceholder() {
			continue
		}
		if keep != nil {
			if _, ok := keep[*link.CourseID]; !ok {
				continue
			}
		}
		candidates = append(candidates, link)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		pi, pj := candidates[i].Stage.Priority(), candidates[j].Stage.Priority()
		if pi != pj {
			return pi < pj
		}
		return *candidates[i].CourseID < *candidates[j].CourseID
	})

	order := make(map[roadmap.Stage]int)
	items := make([]*models.LearningPathItem, 0, len(candidates))
	for _, link := range candidates {
		stage := roadmap.ParseStage(string(link.Stage))
		order[stage]++

		courseID := *link.CourseID
		item := &models.LearningPathItem{
			CourseID:   &courseID,
			Stage:      stage,
			OrderIndex: order[stage],
		}
		if link.Rationale != "" {
			note := link.Rationale
			item.Note = &note
		}
		items = append(items, item)
	}

	return items
}

func pathName(name string, recommendationID int64) string {
	name = sanitizeUTF8(strings.TrimSpace(name))
	if name == "" {
		return fmt.Sprintf("Learning path from recommendation #%d", recommendationID)
	}
	if utf8.RuneCountInString(name) > maxPathNameLength {
		name = string([]rune(name)[:maxPathNameLength])
	}
	return name
}
