package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/englishk12/backend/internal/author"
	"github.com/englishk12/backend/internal/domain/question"
	"github.com/englishk12/backend/internal/service"
)

type stubGenerator struct {
	draft question.Draft
	err   error
	calls int
}

func (g *stubGenerator) GenerateDraft(ctx context.Context, req author.Request) (question.Draft, error) {
	g.calls++
	return g.draft, g.err
}

func TestAuthoring_DraftIsNotSaved(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	gen := &stubGenerator{draft: validDraft()}
	svc := service.NewAuthoring(gen, discardLogger())

	d, err := svc.Draft(ctx, author.Request{Topic: "Animals", Grade: 7, Type: question.TypeVocabulary})
	require.NoError(t, err)
	assert.Equal(t, "kitten", d.CorrectAnswer)
	assert.Len(t, mustQuestions(t, s), 5)

	q, err := service.NewQuestionBank(s, discardLogger()).Create(ctx, d)
	require.NoError(t, err)
	assert.Len(t, mustQuestions(t, s), 6)
	assert.Equal(t, d.Text, q.Text)
}

func TestAuthoring_ServiceErrorPassesThrough(t *testing.T) {
	gen := &stubGenerator{err: &author.ServiceError{Reason: "timeout"}}
	svc := service.NewAuthoring(gen, discardLogger())

	_, err := svc.Draft(context.Background(), author.Request{Topic: "x", Grade: 5, Type: question.TypeGrammar})

	var svcErr *author.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 1, gen.calls, "no retries")
}
