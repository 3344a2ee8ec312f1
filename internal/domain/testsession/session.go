package testsession

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/englishk12/backend/internal/domain/question"
	"github.com/englishk12/backend/internal/domain/result"
	"github.com/englishk12/backend/internal/id"
)

type State string

const (
	StateAnswerPending  State = "answer_pending"
	StateAnswerRevealed State = "answer_revealed"
	StateFinished       State = "finished"
)

var (
	ErrEmptySession    = errors.New("no questions available for this grade")
	ErrAlreadyRevealed = errors.New("answer already revealed")
	ErrNoSelection     = errors.New("no option selected")
	ErrNotRevealed     = errors.New("answer not confirmed yet")
	ErrFinished        = errors.New("test already finished")
	ErrUnknownOption   = errors.New("option is not part of the current question")
)

// ResultRecorder persists the result of a finished test.
type ResultRecorder interface {
	SaveResult(ctx context.Context, r result.TestResult) error
}

// TestSession walks a student through a fixed, randomly drawn sequence of
// questions for one grade. It is not safe for concurrent use.
type TestSession struct {
	ID        string
	StudentID string
	Grade     int
	Questions []question.Question

	state    State
	index    int
	selected string
	details  []result.Detail
	result   *result.TestResult
	now      func() time.Time
}

// Start draws min(QuestionsPerTest, available) questions of the given grade
// in random order. The draw happens once; the order is fixed for the session.
func Start(studentID string, grade int, bank []question.Question, config SessionConfig) (*TestSession, error) {
	questions := shuffleQuestions(question.ForGrade(bank, grade), config.Rand)
	if len(questions) == 0 {
		return nil, ErrEmptySession
	}

	if config.QuestionsPerTest > 0 && config.QuestionsPerTest < len(questions) {
		questions = questions[:config.QuestionsPerTest]
	}

	now := config.Now
	if now == nil {
		now = time.Now
	}

	return &TestSession{
		ID:        id.New(id.PrefixSession),
		StudentID: studentID,
		Grade:     grade,
		Questions: questions,
		state:     StateAnswerPending,
		details:   make([]result.Detail, 0, len(questions)),
		now:       now,
	}, nil
}

// shuffleQuestions returns a new slice with questions in random order.
func shuffleQuestions(questions []question.Question, r *rand.Rand) []question.Question {
	shuffled := make([]question.Question, len(questions))
	copy(shuffled, questions)

	swap := func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	if r != nil {
		r.Shuffle(len(shuffled), swap)
	} else {
		rand.Shuffle(len(shuffled), swap)
	}

	return shuffled
}

func (s *TestSession) State() State { return s.state }
func (s *TestSession) Index() int { return s.index }
func (s *TestSession) Total() int { return len(s.Questions) }
func (s *TestSession) Selected() string { return s.selected }
func (s *TestSession) IsFinished() bool { return s.state == StateFinished }
func (s *TestSession) IsLastQuestion() bool {
	return s.index == len(s.Questions)-1
}

// Current returns the question being answered. After the test finishes it
// returns false.
func (s *TestSession) Current() (question.Question, bool) {
	if s.state == StateFinished {
		return question.Question{}, false
	}
	return s.Questions[s.index], true
}

// Details returns a copy of the answers recorded so far.
func (s *TestSession) Details() []result.Detail {
	return slices.Clone(s.details)
}

// LastDetail returns the detail recorded for the current question once it is revealed.
func (s *TestSession) LastDetail() (result.Detail, bool) {
	if s.state != StateAnswerRevealed || len(s.details) == 0 {
		return result.Detail{}, false
	}
	return s.details[len(s.details)-1], true
}

// Score is the number of correct answers recorded so far.
func (s *TestSession) Score() int {
	return result.Score(s.details)
}

// Rank is only meaningful once the test is finished.
func (s *TestSession) Rank() result.Rank {
	return result.RankFor(s.Score(), s.Total())
}

// Result returns the persisted result of a finished test.
func (s *TestSession) Result() (result.TestResult, bool) {
	if s.result == nil {
		return result.TestResult{}, false
	}
	return *s.result, true
}

// Select marks opt as the chosen answer. Allowed only while the current
// answer is pending; the choice may be changed until it is confirmed.
func (s *TestSession) Select(opt string) error {
	switch s.state {
	case StateFinished:
		return ErrFinished
	case StateAnswerRevealed:
		return ErrAlreadyRevealed
	}
	if !s.Questions[s.index].HasOption(opt) {
		return ErrUnknownOption
	}
	s.selected = opt
	return nil
}

// Confirm reveals the answer and records the detail for the current question.
// The recording is permanent.
func (s *TestSession) Confirm() (result.Detail, error) {
	switch s.state {
	case StateFinished:
		return result.Detail{}, ErrFinished
	case StateAnswerRevealed:
		return result.Detail{}, ErrAlreadyRevealed
	}
	if s.selected == "" {
		return result.Detail{}, ErrNoSelection
	}

	q := s.Questions[s.index]
	d := result.Detail{
		QuestionID: q.ID,
		UserChoice: s.selected,
		IsCorrect:  q.IsCorrect(s.selected),
	}
	s.details = append(s.details, d)
	s.state = StateAnswerRevealed
	return d, nil
}

// Next advances to the following question, or finishes the test after the
// last one. Finishing scores the details and saves the result through rec
// exactly once. If saving fails the session stays on the revealed answer so
// Next can be called again.
func (s *TestSession) Next(ctx context.Context, rec ResultRecorder) error {
	switch s.state {
	case StateFinished:
		return ErrFinished
	case StateAnswerPending:
		return ErrNotRevealed
	}

	if !s.IsLastQuestion() {
		s.index++
		s.selected = ""
		s.state = StateAnswerPending
		return nil
	}

	r := result.New(s.StudentID, s.Grade, s.Details(), s.now())
	if err := rec.SaveResult(ctx, r); err != nil {
		return fmt.Errorf("save result: %w", err)
	}

	s.result = &r
	s.selected = ""
	s.state = StateFinished
	return nil
}
