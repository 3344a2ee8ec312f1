package service

import (
	"context"

	"github.com/englishk12/backend/internal/analytics"
	"github.com/englishk12/backend/internal/domain/question"
	"github.com/englishk12/backend/internal/domain/result"
	"github.com/englishk12/backend/internal/domain/user"
)

// ReviewRepository is the slice of the store the review screens read.
type ReviewRepository interface {
	Users(ctx context.Context) ([]user.User, error)
	Questions(ctx context.Context) ([]question.Question, error)
	Results(ctx context.Context) ([]result.TestResult, error)
}

// Review serves read-only views over stored results.
type Review struct {
	repo ReviewRepository
}

func NewReview(repo ReviewRepository) *Review {
	return &Review{repo: repo}
}

// History returns the student's results, newest first.
func (r *Review) History(ctx context.Context, studentID string) ([]result.TestResult, error) {
	results, err := r.repo.Results(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.History(results, studentID), nil
}

// Mistakes returns the student's most-missed questions that still exist.
func (r *Review) Mistakes(ctx context.Context, studentID string) ([]analytics.MissedQuestion, error) {
	results, err := r.repo.Results(ctx)
	if err != nil {
		return nil, err
	}
	bank, err := r.repo.Questions(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.MissedQuestions(results, bank, studentID), nil
}

// Reports summarizes every student for the teacher.
func (r *Review) Reports(ctx context.Context) ([]analytics.StudentReport, error) {
	users, err := r.repo.Users(ctx)
	if err != nil {
		return nil, err
	}
	results, err := r.repo.Results(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.StudentReports(users, results), nil
}
