package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/englishk12/backend/internal/domain/question"
	"github.com/englishk12/backend/internal/store"
)

// QuestionRepository is the slice of the store the question bank needs.
type QuestionRepository interface {
	Questions(ctx context.Context) ([]question.Question, error)
	UpdateQuestions(ctx context.Context, fn func([]question.Question) ([]question.Question, error)) error
}

// QuestionBank lists and edits the shared question collection. Every change
// rewrites the whole collection.
type QuestionBank struct {
	repo   QuestionRepository
	logger *slog.Logger
}

func NewQuestionBank(repo QuestionRepository, logger *slog.Logger) *QuestionBank {
	return &QuestionBank{repo: repo, logger: logger}
}

// List returns the questions matching f, in collection order.
func (b *QuestionBank) List(ctx context.Context, f question.Filter) ([]question.Question, error) {
	qs, err := b.repo.Questions(ctx)
	if err != nil {
		return nil, err
	}
	return f.Apply(qs), nil
}

func (b *QuestionBank) Get(ctx context.Context, questionID string) (question.Question, error) {
	qs, err := b.repo.Questions(ctx)
	if err != nil {
		return question.Question{}, err
	}
	i := slices.IndexFunc(qs, func(q question.Question) bool { return q.ID == questionID })
	if i < 0 {
		return question.Question{}, fmt.Errorf("question %s: %w", questionID, store.ErrNotFound)
	}
	return qs[i], nil
}

// Create validates d, gives it a fresh id and appends it.
func (b *QuestionBank) Create(ctx context.Context, d question.Draft) (question.Question, error) {
	q, err := question.New(d)
	if err != nil {
		return question.Question{}, err
	}
	err = b.repo.UpdateQuestions(ctx, func(qs []question.Question) ([]question.Question, error) {
		return append(qs, q), nil
	})
	if err != nil {
		return question.Question{}, err
	}
	b.logger.Info("question created", "question_id", q.ID, "grade", q.Grade, "type", q.Type)
	return q, nil
}

// Update replaces the question in place, keeping its position and id.
func (b *QuestionBank) Update(ctx context.Context, questionID string, d question.Draft) (question.Question, error) {
	q, err := question.Replace(questionID, d)
	if err != nil {
		return question.Question{}, err
	}
	err = b.repo.UpdateQuestions(ctx, func(qs []question.Question) ([]question.Question, error) {
		i := slices.IndexFunc(qs, func(existing question.Question) bool { return existing.ID == questionID })
		if i < 0 {
			return nil, fmt.Errorf("question %s: %w", questionID, store.ErrNotFound)
		}
		qs[i] = q
		return qs, nil
	})
	if err != nil {
		return question.Question{}, err
	}
	b.logger.Info("question updated", "question_id", q.ID)
	return q, nil
}

// Delete removes the question if present. Deleting a missing id is not an
// error. Past results keep referencing it.
func (b *QuestionBank) Delete(ctx context.Context, questionID string) error {
	return b.repo.UpdateQuestions(ctx, func(qs []question.Question) ([]question.Question, error) {
		return slices.DeleteFunc(qs, func(q question.Question) bool { return q.ID == questionID }), nil
	})
}
