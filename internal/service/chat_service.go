package service

import (
	"context"
	"fmt"

	"stockwise/internal/dto"
	"stockwise/internal/prompt"
	"stockwise/internal/repository"
	"stockwise/internal/ticker"
	"stockwise/pkg/logger"
)

// ChatService answers one conversation turn.
type ChatService interface {
	Reply(ctx context.Context, req dto.ConversationRequest) (string, error)
}

type chatService struct {
	log            *logger.Logger
	quoteRepo      repository.QuoteRepository
	completionRepo repository.CompletionRepository
}

func NewChatService(
	log *logger.Logger,
	quoteRepo repository.QuoteRepository,
	completionRepo repository.CompletionRepository,
) ChatService {
	return &chatService{
		log:            log,
		quoteRepo:      quoteRepo,
		completionRepo: completionRepo,
	}
}

// Reply looks for a ticker in the latest user turn, enriches the
// conversation with a live quote when one is found and forwards it to the
// completion API. Quote failures degrade to a placeholder note; completion
// failures are returned.
func (s *chatService) Reply(ctx context.Context, req dto.ConversationRequest) (string, error) {
	enrichment := ""
	if symbol, ok := ticker.Extract(ticker.LatestUserTurn(req.Messages)); ok {
		enrichment = s.quoteEnrichment(ctx, symbol)
	}

	messages := prompt.Assemble(req.Messages, prompt.BaseInstruction(req.RiskProfile), enrichment)

	s.log.DebugContext(ctx, "sending conversation to completion api",
		logger.IntField("messages", len(messages)),
		logger.Field("enriched", enrichment != ""),
	)

	reply, err := s.completionRepo.Complete(ctx, messages)
	if err != nil {
		s.log.ErrorContext(ctx, "completion failed", logger.ErrorField(err))
		return "", fmt.Errorf("complete conversation: %w", err)
	}
	return reply, nil
}

func (s *chatService) quoteEnrichment(ctx context.Context, symbol string) string {
	quote, err := s.quoteRepo.GetQuote(ctx, symbol)
	if err != nil {
		s.log.WarnContext(ctx, "quote lookup failed",
			logger.StringField("symbol", symbol),
			logger.ErrorField(err))
		return prompt.QuoteUnavailable(symbol)
	}
	return prompt.FormatQuote(*quote)
}
