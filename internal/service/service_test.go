package service_test

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/englishk12/backend/internal/domain/question"
	"github.com/englishk12/backend/internal/store"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(store.NewMemoryKV())
}

func fixedClock() time.Time {
	return time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
}

func seededRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// wrongOption returns an option of q that is not the correct answer.
func wrongOption(t *testing.T, q question.Question) string {
	t.Helper()
	for _, o := range q.Options {
		if o != q.CorrectAnswer {
			return o
		}
	}
	require.FailNow(t, "question has no wrong option", q.ID)
	return ""
}

func mustQuestions(t *testing.T, s *store.Store) []question.Question {
	t.Helper()
	qs, err := s.Questions(context.Background())
	require.NoError(t, err)
	return qs
}
