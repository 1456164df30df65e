package repository

import (
	"errors"
	"fmt"
	"time"

	"stockwise/internal/risk"
	"stockwise/pkg/cache"
	"stockwise/pkg/common"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("questionnaire session not found")

// QuestionnaireSessionRepository keeps in-progress questionnaires in memory.
// Sessions expire after the configured TTL of inactivity.
type QuestionnaireSessionRepository interface {
	Create(onCompleted func(id string, result risk.Result)) (string, *risk.Questionnaire)
	Get(id string) (*risk.Questionnaire, error)
	Delete(id string)
}

type questionnaireSessionRepository struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewQuestionnaireSessionRepository(c cache.Cache, ttl time.Duration) QuestionnaireSessionRepository {
	return &questionnaireSessionRepository{cache: c, ttl: ttl}
}

func (r *questionnaireSessionRepository) Create(onCompleted func(id string, result risk.Result)) (string, *risk.Questionnaire) {
	id := uuid.NewString()

	var notify func(risk.Result)
	if onCompleted != nil {
		notify = func(result risk.Result) { onCompleted(id, result) }
	}

	q := risk.NewQuestionnaire(notify)
	r.cache.Set(fmt.Sprintf(common.KEY_QUESTIONNAIRE_SESSION, id), q, r.ttl)
	return id, q
}

// Get returns the session and extends its lifetime.
func (r *questionnaireSessionRepository) Get(id string) (*risk.Questionnaire, error) {
	key := fmt.Sprintf(common.KEY_QUESTIONNAIRE_SESSION, id)
	q, ok := cache.GetFromCache[*risk.Questionnaire](r.cache, key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	r.cache.Set(key, q, r.ttl)
	return q, nil
}

func (r *questionnaireSessionRepository) Delete(id string) {
	r.cache.Delete(fmt.Sprintf(common.KEY_QUESTIONNAIRE_SESSION, id))
}
