package service

import (
	"context"
	"errors"
	"fmt"

	"course-recommender/pkg/config"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

type OpenAIModel struct {
	client      *openai.Client
	modelName   string
	temperature float32
	logger      *zap.Logger
}

func NewOpenAIModel(cfg *config.OpenAIConfig, temperature float64, logger *zap.Logger) (*OpenAIModel, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("OPENAI_API_KEY is required for the openai provider")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	logger.Info("Using OpenAI model", zap.String("model", cfg.Model))

	return &OpenAIModel{
		client:      openai.NewClientWithConfig(clientConfig),
		modelName:   cfg.Model,
		temperature: float32(temperature),
		logger:      logger,
	}, nil
}

func (m *OpenAIModel) Complete(ctx context.Context, req ChatRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: req.System})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: req.User})

	request := openai.ChatCompletionRequest{
		Model:       m.modelName,
		Messages:    messages,
		Temperature: m.temperature,
	}
	if req.JSON {
		request.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := m.client.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from LLM")
	}

	return resp.Choices[0].Message.Content, nil
}

func (m *OpenAIModel) Close() error {
	return nil
}
