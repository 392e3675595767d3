package service

import (
	"context"
	"fmt"

	"course-recommender/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

type GigaChatModel struct {
	client      *gigago.Client
	modelName   string
	temperature float64
	logger      *zap.Logger
}

func NewGigaChatModel(ctx context.Context, cfg *config.GigaChatConfig, temperature float64, logger *zap.Logger) (*GigaChatModel, error) {
	// Build client options
	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}

	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	logger.Info("Using GigaChat model", zap.String("model", cfg.Model))

	return &GigaChatModel{
		client:      client,
		modelName:   cfg.Model,
		temperature: temperature,
		logger:      logger,
	}, nil
}

// Complete configures its own GenerativeModel per call; only the client is shared.
func (m *GigaChatModel) Complete(ctx context.Context, req ChatRequest) (string, error) {
	model := m.client.GenerativeModel(m.modelName)
	model.SystemInstruction = req.System
	setFloat(&model.Temperature, m.temperature)

	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: req.User},
	}

	resp, err := model.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("gigachat: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from LLM")
	}

	return resp.Choices[0].Message.Content, nil
}

func (m *GigaChatModel) Close() error {
	if m.client != nil {
		m.client.Close()
	}
	return nil
}

func setFloat[T ~float32 | ~float64](dst *T, v float64) {
	*dst = T(v)
}
