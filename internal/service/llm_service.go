package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"course-recommender/internal/roadmap"
	"course-recommender/pkg/config"

	"go.uber.org/zap"
)

// ChatRequest is a single system+user exchange. JSON asks the provider for a
// JSON object response when it supports one.
type ChatRequest struct {
	System string
	User   string
	JSON   bool
}

// ChatModel is a generative text model. Implementations must be safe for
// concurrent use.
type ChatModel interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
	Close() error
}

// NewChatModel builds the provider selected by cfg.Provider.
func NewChatModel(ctx context.Context, cfg *config.LLMConfig, logger *zap.Logger) (ChatModel, error) {
	switch cfg.Provider {
	case config.ProviderGigaChat, "":
		return NewGigaChatModel(ctx, &cfg.GigaChat, cfg.Temperature, logger)
	case config.ProviderOpenAI:
		return NewOpenAIModel(&cfg.OpenAI, cfg.Temperature, logger)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}

type LLMService struct {
	model   ChatModel
	timeout time.Duration
	logger  *zap.Logger
}

func NewLLMService(model ChatModel, timeout time.Duration, logger *zap.Logger) *LLMService {
	return &LLMService{
		model:   model,
		timeout: timeout,
		logger:  logger,
	}
}

// GenerateRoadmap never fails. A model error, a timeout or an unusable answer
// all yield an empty roadmap.
func (s *LLMService) GenerateRoadmap(ctx context.Context, req RoadmapRequest) roadmap.Output {
	content, err := s.complete(ctx, ChatRequest{
		System: roadmapSystemInstruction,
		User:   BuildRoadmapPrompt(req),
		JSON:   true,
	})
	if err != nil {
		s.logger.Warn("Roadmap generation failed, continuing with an empty roadmap", zap.Error(err))
		return roadmap.Empty()
	}

	out := roadmap.Parse(content)
	if len(out.Roadmap) == 0 {
		s.logger.Warn("Model answer contained no usable roadmap", zap.Int("content_length", len(content)))
	}

	s.logger.Info("Roadmap generated",
		zap.Int("stages", len(out.Roadmap)),
		zap.Int("concepts", len(out.Concepts)),
		zap.Int("careers", len(out.Careers)),
	)
	return out
}

// Ask returns the raw text answer for a conversational exchange.
func (s *LLMService) Ask(ctx context.Context, system, user string) (string, error) {
	return s.complete(ctx, ChatRequest{System: system, User: user})
}

func (s *LLMService) complete(ctx context.Context, req ChatRequest) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	content, err := s.model.Complete(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}
	return strings.TrimSpace(content), nil
}

func (s *LLMService) Close() error {
	if s.model != nil {
		return s.model.Close()
	}
	return nil
}
