package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/englishk12/backend/internal/domain/question"
	"github.com/englishk12/backend/internal/domain/result"
	"github.com/englishk12/backend/internal/domain/settings"
	"github.com/englishk12/backend/internal/domain/testsession"
	"github.com/englishk12/backend/internal/store"
)

// TestingRepository is the slice of the store live tests need.
type TestingRepository interface {
	Questions(ctx context.Context) ([]question.Question, error)
	Settings(ctx context.Context) (settings.AppSettings, error)
	testsession.ResultRecorder
}

// TestingOption customizes a Testing service.
type TestingOption func(*Testing)

// WithRand fixes the shuffle source. The service only uses it under its lock.
func WithRand(r *rand.Rand) TestingOption {
	return func(t *Testing) { t.rand = r }
}

// WithClock sets the clock used to date finished results.
func WithClock(now func() time.Time) TestingOption {
	return func(t *Testing) { t.now = now }
}

// Testing owns the live test sessions. Each student has at most one; starting
// a new test drops the previous one, finished or not.
type Testing struct {
	repo   TestingRepository
	logger *slog.Logger
	rand   *rand.Rand
	now    func() time.Time

	mu       sync.Mutex
	sessions map[string]*testsession.TestSession // sessionID → session
	live     map[string]string                   // studentID → sessionID
}

func NewTesting(repo TestingRepository, logger *slog.Logger, opts ...TestingOption) *Testing {
	t := &Testing{
		repo:     repo,
		logger:   logger,
		sessions: make(map[string]*testsession.TestSession),
		live:     make(map[string]string),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ── Views ───────────────────────────────────────────────────────────────────

// SessionView is a snapshot of a session safe to hand out of the lock.
type SessionView struct {
	ID       string            `json:"sessionId"`
	Grade    int               `json:"grade"`
	State    testsession.State `json:"state"`
	Index    int               `json:"index"`
	Total    int               `json:"total"`
	Question *QuestionView     `json:"question,omitempty"`
	Selected string            `json:"selected,omitempty"`
	Reveal   *Reveal           `json:"reveal,omitempty"`
	Summary  *Summary          `json:"summary,omitempty"`
}

// QuestionView is a question without its answer.
type QuestionView struct {
	ID      string        `json:"id"`
	Type    question.Type `json:"type"`
	Text    string        `json:"question"`
	Options []string      `json:"options"`
}

// Reveal is shown once the current answer is confirmed.
type Reveal struct {
	UserChoice    string `json:"userChoice"`
	IsCorrect     bool   `json:"isCorrect"`
	CorrectAnswer string `json:"correctAnswer"`
	Explanation   string `json:"explanation"`
}

// Summary is shown once the test is finished.
type Summary struct {
	Score     int               `json:"score"`
	Total     int               `json:"total"`
	Rank      result.Rank       `json:"rank"`
	RankLabel string            `json:"rankLabel"`
	Result    result.TestResult `json:"result"`
}

func viewOf(s *testsession.TestSession) SessionView {
	v := SessionView{
		ID:       s.ID,
		Grade:    s.Grade,
		State:    s.State(),
		Index:    s.Index(),
		Total:    s.Total(),
		Selected: s.Selected(),
	}

	if q, ok := s.Current(); ok {
		v.Question = &QuestionView{
			ID:      q.ID,
			Type:    q.Type,
			Text:    q.Text,
			Options: q.Options,
		}
		if d, ok := s.LastDetail(); ok {
			v.Selected = d.UserChoice
			v.Reveal = &Reveal{
				UserChoice:    d.UserChoice,
				IsCorrect:     d.IsCorrect,
				CorrectAnswer: q.CorrectAnswer,
				Explanation:   q.Explanation,
			}
		}
	}

	if r, ok := s.Result(); ok {
		rank := s.Rank()
		v.Summary = &Summary{
			Score:     r.Score,
			Total:     s.Total(),
			Rank:      rank,
			RankLabel: rank.Label(),
			Result:    r,
		}
	}
	return v
}

// ── Operations ──────────────────────────────────────────────────────────────

// Start draws a new test for the student. The number of questions comes from
// the current settings.
func (t *Testing) Start(ctx context.Context, studentID string, grade int) (SessionView, error) {
	st, err := t.repo.Settings(ctx)
	if err != nil {
		return SessionView{}, err
	}
	bank, err := t.repo.Questions(ctx)
	if err != nil {
		return SessionView{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	cfg := testsession.ConfigFrom(st)
	cfg.Rand = t.rand
	cfg.Now = t.now

	s, err := testsession.Start(studentID, grade, bank, cfg)
	if err != nil {
		return SessionView{}, err
	}

	if prev, ok := t.live[studentID]; ok {
		delete(t.sessions, prev)
	}
	t.sessions[s.ID] = s
	t.live[studentID] = s.ID

	t.logger.Info("test started",
		"session_id", s.ID,
		"student_id", studentID,
		"grade", grade,
		"questions", s.Total(),
	)
	return viewOf(s), nil
}

func (t *Testing) Get(studentID, sessionID string) (SessionView, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, err := t.lookup(studentID, sessionID)
	if err != nil {
		return SessionView{}, err
	}
	return viewOf(s), nil
}

func (t *Testing) Select(studentID, sessionID, option string) (SessionView, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, err := t.lookup(studentID, sessionID)
	if err != nil {
		return SessionView{}, err
	}
	if err := s.Select(option); err != nil {
		return SessionView{}, err
	}
	return viewOf(s), nil
}

func (t *Testing) Confirm(studentID, sessionID string) (SessionView, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, err := t.lookup(studentID, sessionID)
	if err != nil {
		return SessionView{}, err
	}
	if _, err := s.Confirm(); err != nil {
		return SessionView{}, err
	}
	return viewOf(s), nil
}

// Next moves on, or finishes the test and saves its result.
func (t *Testing) Next(ctx context.Context, studentID, sessionID string) (SessionView, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, err := t.lookup(studentID, sessionID)
	if err != nil {
		return SessionView{}, err
	}
	if err := s.Next(ctx, t.repo); err != nil {
		return SessionView{}, err
	}

	if r, ok := s.Result(); ok {
		t.logger.Info("test finished",
			"session_id", s.ID,
			"student_id", studentID,
			"result_id", r.ID,
			"score", r.Score,
			"total", s.Total(),
		)
	}
	return viewOf(s), nil
}

// lookup must be called with t.mu held. Sessions of other students are
// reported as missing.
func (t *Testing) lookup(studentID, sessionID string) (*testsession.TestSession, error) {
	s, ok := t.sessions[sessionID]
	if !ok || s.StudentID != studentID {
		return nil, fmt.Errorf("session %s: %w", sessionID, store.ErrNotFound)
	}
	return s, nil
}
