package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/englishk12/backend/internal/domain/question"
	"github.com/englishk12/backend/internal/service"
	"github.com/englishk12/backend/internal/store"
)

func validDraft() question.Draft {
	return question.Draft{
		Grade:         7,
		Type:          question.TypeVocabulary,
		Text:          "A baby cat is called a _____.",
		Options:       []string{"puppy", "kitten", "calf", "cub"},
		CorrectAnswer: "kitten",
		Explanation:   "Mèo con trong tiếng Anh là kitten.",
	}
}

func TestQuestionBank_ListFilters(t *testing.T) {
	ctx := context.Background()
	bank := service.NewQuestionBank(newStore(t), discardLogger())

	all, err := bank.List(ctx, question.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 5)

	grade := 12
	grammar := question.TypeGrammar
	got, err := bank.List(ctx, question.Filter{TextContains: "THE", Grade: &grade, Type: &grammar})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "q3", got[0].ID)
	assert.Equal(t, "q4", got[1].ID)
}

func TestQuestionBank_CreateAppendsAndPersists(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	bank := service.NewQuestionBank(s, discardLogger())

	q, err := bank.Create(ctx, validDraft())
	require.NoError(t, err)
	assert.NotEmpty(t, q.ID)

	qs := mustQuestions(t, s)
	require.Len(t, qs, 6)
	assert.Equal(t, q, qs[5])

	got, err := bank.Get(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, q, got)
}

func TestQuestionBank_CreateRejectsAnswerNotInOptions(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	bank := service.NewQuestionBank(s, discardLogger())

	d := validDraft()
	d.CorrectAnswer = "Kitten"

	_, err := bank.Create(ctx, d)
	assert.ErrorIs(t, err, question.ErrValidation)
	assert.Len(t, mustQuestions(t, s), 5, "nothing saved")
}

func TestQuestionBank_UpdateInPlace(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	bank := service.NewQuestionBank(s, discardLogger())

	updated, err := bank.Update(ctx, "q2", validDraft())
	require.NoError(t, err)
	assert.Equal(t, "q2", updated.ID)

	qs := mustQuestions(t, s)
	require.Len(t, qs, 5)
	assert.Equal(t, "q2", qs[1].ID)
	assert.Equal(t, "kitten", qs[1].CorrectAnswer)
}

func TestQuestionBank_UpdateErrors(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	bank := service.NewQuestionBank(s, discardLogger())

	_, err := bank.Update(ctx, "missing", validDraft())
	assert.ErrorIs(t, err, store.ErrNotFound)

	bad := validDraft()
	bad.Options = []string{"only"}
	bad.CorrectAnswer = "only"
	_, err = bank.Update(ctx, "q1", bad)
	assert.ErrorIs(t, err, question.ErrValidation)

	assert.Equal(t, "goes", mustQuestions(t, s)[0].CorrectAnswer)
}

func TestQuestionBank_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	bank := service.NewQuestionBank(s, discardLogger())

	require.NoError(t, bank.Delete(ctx, "q1"))
	require.NoError(t, bank.Delete(ctx, "q1"))
	require.NoError(t, bank.Delete(ctx, "never-existed"))

	qs := mustQuestions(t, s)
	assert.Len(t, qs, 4)

	_, err := bank.Get(ctx, "q1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestQuestionBank_DeleteAllLeavesEmptyBank(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	bank := service.NewQuestionBank(s, discardLogger())

	for _, q := range mustQuestions(t, s) {
		require.NoError(t, bank.Delete(ctx, q.ID))
	}

	all, err := bank.List(ctx, question.Filter{})
	require.NoError(t, err)
	assert.Empty(t, all, "an emptied bank is not re-seeded")
}
