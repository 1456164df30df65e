package repository

import (
	"context"
	"fmt"
	"net/http"

	"stockwise/config"
	"stockwise/internal/dto"
	"stockwise/pkg/logger"
	"stockwise/pkg/utils"

	"google.golang.org/genai"
)

// geminiAIRepository is a CompletionRepository backed by the Google Gemini API.
type geminiAIRepository struct {
	genAiClient *genai.Client
	model       string
	temperature float32
	logger      *logger.Logger
}

// NewGeminiAIRepository creates a new instance of geminiAIRepository.
func NewGeminiAIRepository(cfg *config.Config, log *logger.Logger) (CompletionRepository, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:     cfg.LLM.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: cfg.LLM.Timeout},
	}
	if cfg.LLM.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = cfg.LLM.BaseURL
	}

	genAiClient, err := genai.NewClient(context.Background(), clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiAIRepository{
		genAiClient: genAiClient,
		model:       cfg.LLM.Model,
		temperature: cfg.LLM.Temperature,
		logger:      log,
	}, nil
}

func (r *geminiAIRepository) Complete(ctx context.Context, messages []dto.ChatMessage) (string, error) {
	systemInstruction, contents := toGeminiContents(messages)

	resp, err := r.genAiClient.Models.GenerateContent(ctx, r.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: systemInstruction,
		Temperature:       utils.ToPointer(r.temperature),
	})
	if err != nil {
		r.logger.ErrorContext(ctx, "gemini generate content failed",
			logger.ErrorField(err),
			logger.StringField("model", r.model))
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}

// toGeminiContents maps the leading system message to the system instruction.
// Gemini has no system role inside contents, so any later system message is
// sent as a user turn at the same position. Gemini rejects an empty contents
// list, so a conversation holding only the system message sends it as the
// single user turn instead.
func toGeminiContents(messages []dto.ChatMessage) (*genai.Content, []*genai.Content) {
	var systemInstruction *genai.Content
	if len(messages) > 0 && messages[0].Role == dto.RoleSystem {
		systemInstruction = genai.NewContentFromText(messages[0].Content, genai.RoleUser)
		messages = messages[1:]
	}

	contents := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		role := genai.Role(genai.RoleUser)
		if m.Role == dto.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Content, role))
	}

	if len(contents) == 0 && systemInstruction != nil {
		return nil, []*genai.Content{systemInstruction}
	}
	return systemInstruction, contents
}
