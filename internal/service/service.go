package service

import (
	"stockwise/internal/repository"
	"stockwise/pkg/logger"
)

type Service struct {
	ChatService ChatService
	RiskService RiskService
}

func NewService(
	log *logger.Logger,
	repo *repository.Repository,
	listeners ...CompletionListener,
) *Service {
	return &Service{
		ChatService: NewChatService(log, repo.QuoteRepo, repo.CompletionRepo),
		RiskService: NewRiskService(log, repo.SessionRepo, listeners...),
	}
}
