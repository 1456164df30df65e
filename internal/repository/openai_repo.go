package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"stockwise/config"
	"stockwise/internal/dto"
	"stockwise/pkg/logger"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

var ErrEmptyCompletion = errors.New("completion returned no choices")

type openAIRepository struct {
	client      *openai.Client
	model       string
	temperature float32
	logger      *logger.Logger
}

func NewOpenAIRepository(cfg *config.Config, log *logger.Logger) CompletionRepository {
	clientCfg := openai.DefaultConfig(cfg.LLM.APIKey)
	if cfg.LLM.BaseURL != "" {
		clientCfg.BaseURL = cfg.LLM.BaseURL
	}
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.LLM.Timeout}

	return &openAIRepository{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.LLM.Model,
		temperature: cfg.LLM.Temperature,
		logger:      log,
	}
}

func (r *openAIRepository) Complete(ctx context.Context, messages []dto.ChatMessage) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       r.model,
		Temperature: r.temperature,
		Messages:    toOpenAIMessages(messages),
	}

	resp, err := r.client.CreateChatCompletion(ctx, req)
	if err != nil {
		fields := []zap.Field{logger.ErrorField(err), logger.StringField("model", r.model)}
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			fields = append(fields, logger.IntField("status_code", apiErr.HTTPStatusCode))
		}
		r.logger.ErrorContext(ctx, "openai chat completion failed", fields...)
		return "", fmt.Errorf("openai chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

func toOpenAIMessages(messages []dto.ChatMessage) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		role := openai.ChatMessageRoleUser
		switch m.Role {
		case dto.RoleSystem:
			role = openai.ChatMessageRoleSystem
		case dto.RoleAssistant:
			role = openai.ChatMessageRoleAssistant
		}
		out = append(out, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	return out
}
