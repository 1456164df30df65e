package repository

import (
	"testing"
	"time"

	"stockwise/internal/risk"
	"stockwise/pkg/cache"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionnaireSessionRepository(t *testing.T) {
	repo := NewQuestionnaireSessionRepository(cache.NewCache(time.Minute, time.Minute), time.Minute)

	var completedID string
	id, q := repo.Create(func(id string, _ risk.Result) { completedID = id })
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	got, err := repo.Get(id)
	require.NoError(t, err)
	assert.Same(t, q, got)

	for _, v := range []string{"some", "wait", "balanced", "medium", "maybe"} {
		_, err := got.Answer(v)
		require.NoError(t, err)
		_, err = got.Next()
		require.NoError(t, err)
	}
	assert.Equal(t, id, completedID)

	repo.Delete(id)
	_, err = repo.Get(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestQuestionnaireSessionRepository_Expiry(t *testing.T) {
	repo := NewQuestionnaireSessionRepository(cache.NewCache(time.Minute, time.Minute), 5*time.Millisecond)
	id, _ := repo.Create(nil)

	time.Sleep(20 * time.Millisecond)
	_, err := repo.Get(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
