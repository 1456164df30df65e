package repository

import (
	"context"
	"fmt"

	"stockwise/config"
	"stockwise/internal/dto"
	"stockwise/pkg/cache"
	"stockwise/pkg/logger"
)

// QuoteRepository looks up a live quote for a ticker symbol.
type QuoteRepository interface {
	GetQuote(ctx context.Context, symbol string) (*dto.Quote, error)
}

// CompletionRepository sends an assembled conversation to a language model
// and returns the assistant reply text.
type CompletionRepository interface {
	Complete(ctx context.Context, messages []dto.ChatMessage) (string, error)
}

type Repository struct {
	QuoteRepo      QuoteRepository
	CompletionRepo CompletionRepository
	SessionRepo    QuestionnaireSessionRepository
}

func NewRepository(cfg *config.Config, inmemoryCache cache.Cache, log *logger.Logger) (*Repository, error) {
	quoteRepo, err := NewQuoteRepository(cfg, log)
	if err != nil {
		return nil, err
	}

	completionRepo, err := NewCompletionRepository(cfg, log)
	if err != nil {
		return nil, err
	}

	return &Repository{
		QuoteRepo:      quoteRepo,
		CompletionRepo: completionRepo,
		SessionRepo:    NewQuestionnaireSessionRepository(inmemoryCache, cfg.Cache.DefaultExpiration),
	}, nil
}

func NewQuoteRepository(cfg *config.Config, log *logger.Logger) (QuoteRepository, error) {
	switch cfg.Quote.Provider {
	case config.QuoteProviderYahoo:
		return NewYahooFinanceRepository(cfg, log), nil
	case config.QuoteProviderFinanceGo:
		return NewFinanceGoRepository(log), nil
	default:
		return nil, fmt.Errorf("unsupported quote provider: %q", cfg.Quote.Provider)
	}
}

func NewCompletionRepository(cfg *config.Config, log *logger.Logger) (CompletionRepository, error) {
	switch cfg.LLM.Provider {
	case config.LLMProviderOpenAI:
		return NewOpenAIRepository(cfg, log), nil
	case config.LLMProviderGemini:
		return NewGeminiAIRepository(cfg, log)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %q", cfg.LLM.Provider)
	}
}
