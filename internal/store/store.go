package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/englishk12/backend/internal/domain/question"
	"github.com/englishk12/backend/internal/domain/result"
	"github.com/englishk12/backend/internal/domain/settings"
	"github.com/englishk12/backend/internal/domain/user"
)

var (
	ErrNotFound = errors.New("not found")
)

// Keys of the five logical collections.
const (
	KeyUsers     = "k12_users"
	KeyQuestions = "k12_questions"
	KeyResults   = "k12_results"
	KeyAuth      = "k12_auth" // one slot per user: k12_auth:<userID>
	KeySettings  = "k12_settings"
)

// Store exposes the typed collections on top of a KV. Every write replaces
// the whole collection (last writer wins). Read-modify-write sequences are
// serialized so concurrent requests do not drop each other's appends.
type Store struct {
	kv KV
	mu sync.Mutex
}

func New(kv KV) *Store {
	return &Store{kv: kv}
}

// Open builds a Store for the given driver. The memory driver ignores dsn.
func Open(ctx context.Context, driver Driver, dsn string) (*Store, error) {
	if driver == DriverMemory {
		return New(NewMemoryKV()), nil
	}
	kv, err := OpenSQL(ctx, driver, dsn)
	if err != nil {
		return nil, err
	}
	return New(kv), nil
}

func (s *Store) Close() error {
	if c, ok := s.kv.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// ============================================================================
// Users
// ============================================================================

// Users returns the user collection, seeding it on first access.
func (s *Store) Users(ctx context.Context) ([]user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return load(ctx, s.kv, KeyUsers, seedUsers, true)
}

// ============================================================================
// Questions
// ============================================================================

// Questions returns the question bank, seeding it on first access.
func (s *Store) Questions(ctx context.Context) ([]question.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return load(ctx, s.kv, KeyQuestions, seedQuestions, true)
}

func (s *Store) SaveQuestions(ctx context.Context, questions []question.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return save(ctx, s.kv, KeyQuestions, questions)
}

// UpdateQuestions loads the bank, applies fn and writes the full result back.
// Nothing is written if fn returns an error.
func (s *Store) UpdateQuestions(ctx context.Context, fn func([]question.Question) ([]question.Question, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := load(ctx, s.kv, KeyQuestions, seedQuestions, true)
	if err != nil {
		return err
	}
	updated, err := fn(current)
	if err != nil {
		return err
	}
	return save(ctx, s.kv, KeyQuestions, updated)
}

// ============================================================================
// Results
// ============================================================================

func (s *Store) Results(ctx context.Context) ([]result.TestResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return load(ctx, s.kv, KeyResults, emptyResults, false)
}

// SaveResult appends r to the result collection.
func (s *Store) SaveResult(ctx context.Context, r result.TestResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := load(ctx, s.kv, KeyResults, emptyResults, false)
	if err != nil {
		return err
	}
	return save(ctx, s.kv, KeyResults, append(current, r))
}

// ============================================================================
// Auth slot
// ============================================================================

// AuthKey is the KV key of the user's auth slot.
func AuthKey(userID string) string {
	return KeyAuth + ":" + userID
}

// Auth returns the login remembered for userID, or nil when that user is
// logged out.
func (s *Store) Auth(ctx context.Context, userID string) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return load(ctx, s.kv, AuthKey(userID), func() *user.User { return nil }, false)
}

// SetAuth remembers u in userID's slot; nil clears it. Other users' slots
// are left alone.
func (s *Store) SetAuth(ctx context.Context, userID string, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return save(ctx, s.kv, AuthKey(userID), u)
}

// ============================================================================
// Settings
// ============================================================================

func (s *Store) Settings(ctx context.Context) (settings.AppSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return load(ctx, s.kv, KeySettings, settings.Default, false)
}

func (s *Store) SaveSettings(ctx context.Context, st settings.AppSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return save(ctx, s.kv, KeySettings, st)
}

// ============================================================================
// JSON helpers
// ============================================================================

// load decodes key, falling back to def() when it is absent. With
// persistDefault the fallback is written back, matching first-run seeding.
func load[T any](ctx context.Context, kv KV, key string, def func() T, persistDefault bool) (T, error) {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		v := def()
		if persistDefault {
			if err := save(ctx, kv, key, v); err != nil {
				return v, err
			}
		}
		return v, nil
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("decode %s: %w", key, err)
	}
	return v, nil
}

func save[T any](ctx context.Context, kv KV, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func emptyResults() []result.TestResult {
	return []result.TestResult{}
}
