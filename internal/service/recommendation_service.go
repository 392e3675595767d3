package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"course-recommender/internal/dto"
	"course-recommender/internal/matching"
	"course-recommender/internal/models"
	"course-recommender/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrRecommendationNotFound = errors.New("recommendation not found")
	ErrInvalidInput           = errors.New("invalid input")
	ErrModelUnavailable       = errors.New("model unavailable")
)

// RecommendationStore persists recommendations and their course links.
type RecommendationStore interface {
	CreateWithLinks(ctx context.Context, rec *models.Recommendation, links []*models.RecommendationCourse) error
	GetByID(ctx context.Context, id int64) (*models.Recommendation, error)
	UpdateInput(ctx context.Context, id int64, input models.InputSnapshot) error
	ListLinks(ctx context.Context, recommendationID int64) ([]*models.RecommendationCourse, error)
}

type RecommendationService struct {
	llm             *LLMService
	matcher         *matching.Matcher
	store           RecommendationStore
	perStage        int
	clarifyMaxWords int
	logger          *zap.Logger
}

func NewRecommendationService(
	llm *LLMService,
	matcher *matching.Matcher,
	store RecommendationStore,
	perStage int,
	clarifyMaxWords int,
	storeTimeout time.Duration,
	logger *zap.Logger,
) *RecommendationService {
	return &RecommendationService{
		llm:             llm,
		matcher:         matcher,
		store:           withRecommendationTimeout(store, storeTimeout),
		perStage:        matching.StageLimit(perStage),
		clarifyMaxWords: clarifyMaxWords,
		logger:          logger,
	}
}

type GenerateInput struct {
	UserID       uuid.UUID
	Goal         string
	CurrentLevel string
	Preferences  []string
	Verbosity    string
	GuidanceMode string
}

// Generate asks the model for a roadmap, matches its topics against the
// catalog, stores the recommendation with its links and returns the
// per-stage presentation built from the stored rows.
func (s *RecommendationService) Generate(ctx context.Context, in GenerateInput) (*dto.RecommendationResponse, error) {
	goal := sanitizeUTF8(strings.TrimSpace(in.Goal))
	if goal == "" {
		return nil, fmt.Errorf("%w: goal is required", ErrInvalidInput)
	}

	preferences := SplitPreferences(in.Preferences)
	for i := range preferences {
		preferences[i] = sanitizeUTF8(preferences[i])
	}

	req := RoadmapRequest{
		Goal:         goal,
		CurrentLevel: sanitizeUTF8(strings.TrimSpace(in.CurrentLevel)),
		Preferences:  preferences,
		Verbosity:    ParseVerbosity(in.Verbosity),
		GuidanceMode: ParseGuidanceMode(in.GuidanceMode),
	}

	output := s.llm.GenerateRoadmap(ctx, req)

	matches, err := s.matcher.Match(ctx, output.Roadmap)
	if err != nil {
		s.logger.Error("Failed to match roadmap topics", zap.Error(err))
		return nil, fmt.Errorf("failed to match courses: %w", err)
	}

	ranking := matching.Rank(matches, s.perStage)

	rec := &models.Recommendation{
		UserID:   in.UserID,
		GoalText: goal,
		Input: models.InputSnapshot{
			CurrentLevel: req.CurrentLevel,
			Preferences:  req.Preferences,
			Verbosity:    string(req.Verbosity),
			GuidanceMode: string(req.GuidanceMode),
		},
		Output: output,
	}

	if err := s.store.CreateWithLinks(ctx, rec, ranking.Links()); err != nil {
		s.logger.Error("Failed to store recommendation", zap.Error(err))
		return nil, fmt.Errorf("failed to store recommendation: %w", err)
	}

	s.logger.Info("Recommendation generated",
		zap.Int64("recommendation_id", rec.ID),
		zap.String("user_id", in.UserID.String()),
		zap.Int("topics", len(matches)),
		zap.Int("placeholders", len(ranking.Placeholders)),
	)

	return s.present(ctx, rec)
}

// Get rebuilds the presentation of a stored recommendation.
func (s *RecommendationService) Get(ctx context.Context, userID uuid.UUID, id int64) (*dto.RecommendationResponse, error) {
	rec, err := loadOwnedRecommendation(ctx, s.store, userID, id)
	if err != nil {
		return nil, err
	}
	return s.present(ctx, rec)
}

func (s *RecommendationService) present(ctx context.Context, rec *models.Recommendation) (*dto.RecommendationResponse, error) {
	links, err := s.store.ListLinks(ctx, rec.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recommendation courses: %w", err)
	}

	presentation := matching.Assemble(links, rec.Output.TopicCounts(), s.perStage)
	return newRecommendationResponse(rec, presentation), nil
}

// Save folds the saved flag into the stored input snapshot.
func (s *RecommendationService) Save(ctx context.Context, userID uuid.UUID, id int64, saved bool) (*dto.SaveRecommendationResponse, error) {
	rec, err := loadOwnedRecommendation(ctx, s.store, userID, id)
	if err != nil {
		return nil, err
	}

	input := rec.Input
	input.Saved = &saved
	if err := s.store.UpdateInput(ctx, rec.ID, input); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecommendationNotFound
		}
		return nil, fmt.Errorf("failed to update recommendation: %w", err)
	}

	return &dto.SaveRecommendationResponse{ID: rec.ID, Saved: saved}, nil
}

func (s *RecommendationService) FollowUp(ctx context.Context, userID uuid.UUID, id int64, question string) (*dto.FollowUpResponse, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: question is required", ErrInvalidInput)
	}

	rec, err := loadOwnedRecommendation(ctx, s.store, userID, id)
	if err != nil {
		return nil, err
	}

	prompt := BuildFollowUpPrompt(FollowUpContext{
		Goal:   rec.GoalText,
		Input:  rec.Input,
		Output: rec.Output,
	}, question)

	answer, err := s.llm.Ask(ctx, followUpSystemInstruction, prompt)
	if err != nil {
		s.logger.Warn("Follow-up answer failed", zap.Int64("recommendation_id", id), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	return &dto.FollowUpResponse{ID: rec.ID, Question: question, Answer: answer}, nil
}

// Clarify answers a free-form question without any stored recommendation.
// userID is nil for guest callers; extra is optional caller context.
func (s *RecommendationService) Clarify(ctx context.Context, userID *uuid.UUID, question string, extra map[string]any) (*dto.ClarifyResponse, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: question is required", ErrInvalidInput)
	}

	caller := ""
	if userID != nil {
		caller = userID.String()
	}

	answer, err := s.llm.Ask(ctx, clarifySystemInstruction, BuildClarifyPrompt(caller, question, extra, s.clarifyMaxWords))
	if err != nil {
		s.logger.Warn("Clarify answer failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	return &dto.ClarifyResponse{Question: question, Answer: truncateWords(answer, s.clarifyMaxWords)}, nil
}

// loadOwnedRecommendation reports a recommendation owned by someone else as
// not found.
func loadOwnedRecommendation(ctx context.Context, store RecommendationStore, userID uuid.UUID, id int64) (*models.Recommendation, error) {
	rec, err := store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecommendationNotFound
		}
		return nil, fmt.Errorf("failed to load recommendation: %w", err)
	}

	if rec.UserID != userID {
		return nil, ErrRecommendationNotFound
	}
	return rec, nil
}
