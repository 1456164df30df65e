package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"stockwise/internal/repository"
	"stockwise/internal/risk"
	"stockwise/pkg/logger"
)

var ErrIncompleteAnswers = errors.New("answers are incomplete")

// AnswersError lists the questions that block scoring.
type AnswersError struct {
	Missing []string `json:"missing,omitempty"`
	Invalid []string `json:"invalid,omitempty"`
}

func (e *AnswersError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid: "+strings.Join(e.Invalid, ", "))
	}
	return fmt.Sprintf("%s (%s)", ErrIncompleteAnswers, strings.Join(parts, "; "))
}

func (e *AnswersError) Unwrap() error { return ErrIncompleteAnswers }

// CompletionListener receives every questionnaire session that completes.
type CompletionListener func(sessionID string, result risk.Result)

type RiskService interface {
	Questions() []risk.Question
	Profiles() []risk.ProfileData
	Assess(ctx context.Context, answers risk.AnswerSet) (*risk.Result, error)

	StartSession(ctx context.Context) (string, risk.State)
	Session(ctx context.Context, id string) (risk.State, error)
	Answer(ctx context.Context, id, value string) (risk.State, error)
	Next(ctx context.Context, id string) (risk.State, error)
	Back(ctx context.Context, id string) (risk.State, error)
	Reset(ctx context.Context, id string) (risk.State, error)
	EndSession(ctx context.Context, id string) error
}

type riskService struct {
	log         *logger.Logger
	sessionRepo repository.QuestionnaireSessionRepository
	listeners   []CompletionListener
}

func NewRiskService(log *logger.Logger, sessionRepo repository.QuestionnaireSessionRepository, listeners ...CompletionListener) RiskService {
	return &riskService{
		log:         log,
		sessionRepo: sessionRepo,
		listeners:   listeners,
	}
}

func (s *riskService) Questions() []risk.Question {
	return risk.Questions
}

func (s *riskService) Profiles() []risk.ProfileData {
	out := make([]risk.ProfileData, 0, len(risk.ProfileOrder))
	for _, p := range risk.ProfileOrder {
		out = append(out, risk.DataFor(p))
	}
	return out
}

// Assess scores a full answer set. Partial or unknown answers are rejected
// here so the scorer only ever sees complete sets.
func (s *riskService) Assess(ctx context.Context, answers risk.AnswerSet) (*risk.Result, error) {
	missing, invalid := risk.Missing(answers), risk.Invalid(answers)
	if len(missing) > 0 || len(invalid) > 0 {
		return nil, &AnswersError{Missing: missing, Invalid: invalid}
	}

	result := risk.Assess(answers)
	s.log.InfoContext(ctx, "risk assessment scored",
		logger.IntField("score", result.Score),
		logger.StringField("profile", string(result.Profile)))
	return &result, nil
}

func (s *riskService) StartSession(ctx context.Context) (string, risk.State) {
	id, q := s.sessionRepo.Create(s.notify)
	s.log.DebugContext(ctx, "questionnaire session started", logger.StringField("session_id", id))
	return id, q.Snapshot()
}

func (s *riskService) notify(id string, result risk.Result) {
	s.log.Info("questionnaire completed",
		logger.StringField("session_id", id),
		logger.IntField("score", result.Score),
		logger.StringField("profile", string(result.Profile)))
	for _, l := range s.listeners {
		l(id, result)
	}
}

func (s *riskService) Session(ctx context.Context, id string) (risk.State, error) {
	q, err := s.sessionRepo.Get(id)
	if err != nil {
		return risk.State{}, err
	}
	return q.Snapshot(), nil
}

func (s *riskService) Answer(ctx context.Context, id, value string) (risk.State, error) {
	q, err := s.sessionRepo.Get(id)
	if err != nil {
		return risk.State{}, err
	}
	return q.Answer(value)
}

func (s *riskService) Next(ctx context.Context, id string) (risk.State, error) {
	q, err := s.sessionRepo.Get(id)
	if err != nil {
		return risk.State{}, err
	}
	return q.Next()
}

func (s *riskService) Back(ctx context.Context, id string) (risk.State, error) {
	q, err := s.sessionRepo.Get(id)
	if err != nil {
		return risk.State{}, err
	}
	return q.Back()
}

func (s *riskService) Reset(ctx context.Context, id string) (risk.State, error) {
	q, err := s.sessionRepo.Get(id)
	if err != nil {
		return risk.State{}, err
	}
	return q.Reset(), nil
}

// EndSession discards a session before its TTL runs out.
func (s *riskService) EndSession(ctx context.Context, id string) error {
	if _, err := s.sessionRepo.Get(id); err != nil {
		return err
	}
	s.sessionRepo.Delete(id)
	s.log.DebugContext(ctx, "questionnaire session ended", logger.StringField("session_id", id))
	return nil
}
