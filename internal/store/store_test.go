package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/englishk12/backend/internal/domain/question"
	"github.com/englishk12/backend/internal/domain/result"
	"github.com/englishk12/backend/internal/domain/settings"
	"github.com/englishk12/backend/internal/domain/user"
	"github.com/englishk12/backend/internal/store"
)

func TestUsers_SeededAndPersisted(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	s := store.New(kv)

	users, err := s.Users(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "admin", users[0].Username)
	assert.Equal(t, user.RoleTeacher, users[0].Role)
	require.NotNil(t, users[1].Class)
	assert.Equal(t, 5, *users[1].Class)

	_, ok, err := kv.Get(ctx, store.KeyUsers)
	require.NoError(t, err)
	assert.True(t, ok, "seed users should be written back")
}

func TestQuestions_SeededOnce(t *testing.T) {
	ctx := context.Background()
	s := store.New(store.NewMemoryKV())

	qs, err := s.Questions(ctx)
	require.NoError(t, err)
	require.Len(t, qs, 5)

	require.NoError(t, s.SaveQuestions(ctx, qs[:1]))

	qs, err = s.Questions(ctx)
	require.NoError(t, err)
	assert.Len(t, qs, 1, "an existing collection must not be re-seeded")
}

func TestSaveQuestions_EmptyBankStaysEmpty(t *testing.T) {
	ctx := context.Background()
	s := store.New(store.NewMemoryKV())

	require.NoError(t, s.SaveQuestions(ctx, []question.Question{}))

	qs, err := s.Questions(ctx)
	require.NoError(t, err)
	assert.Empty(t, qs)
}

func TestUpdateQuestions_ErrorWritesNothing(t *testing.T) {
	ctx := context.Background()
	s := store.New(store.NewMemoryKV())

	boom := errors.New("boom")
	err := s.UpdateQuestions(ctx, func(qs []question.Question) ([]question.Question, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)

	qs, err := s.Questions(ctx)
	require.NoError(t, err)
	assert.Len(t, qs, 5)
}

func TestResults_AppendOnly(t *testing.T) {
	ctx := context.Background()
	s := store.New(store.NewMemoryKV())

	rs, err := s.Results(ctx)
	require.NoError(t, err)
	assert.Empty(t, rs)

	require.NoError(t, s.SaveResult(ctx, result.TestResult{ID: "r1", StudentID: "u2", Date: "2024-01-01"}))
	require.NoError(t, s.SaveResult(ctx, result.TestResult{ID: "r2", StudentID: "u2", Date: "2024-01-02"}))

	rs, err = s.Results(ctx)
	require.NoError(t, err)
	require.Len(t, rs, 2)
	assert.Equal(t, "r1", rs[0].ID)
	assert.Equal(t, "r2", rs[1].ID)
}

func TestSaveResult_ConcurrentAppendsAreKept(t *testing.T) {
	ctx := context.Background()
	s := store.New(store.NewMemoryKV())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.SaveResult(ctx, result.TestResult{StudentID: "u2"})
		}()
	}
	wg.Wait()

	rs, err := s.Results(ctx)
	require.NoError(t, err)
	assert.Len(t, rs, 20)
}

func TestAuthSlot(t *testing.T) {
	ctx := context.Background()
	s := store.New(store.NewMemoryKV())

	u, err := s.Auth(ctx, "u2")
	require.NoError(t, err)
	assert.Nil(t, u)

	require.NoError(t, s.SetAuth(ctx, "u2", &user.User{ID: "u2", Username: "student1"}))
	u, err = s.Auth(ctx, "u2")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "student1", u.Username)

	require.NoError(t, s.SetAuth(ctx, "u2", nil))
	u, err = s.Auth(ctx, "u2")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestAuthSlot_PerUser(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	s := store.New(kv)

	require.NoError(t, s.SetAuth(ctx, "u1", &user.User{ID: "u1", Username: "admin"}))
	require.NoError(t, s.SetAuth(ctx, "u2", &user.User{ID: "u2", Username: "student1"}))
	require.NoError(t, s.SetAuth(ctx, "u2", nil))

	u, err := s.Auth(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, u, "clearing one user's slot must keep the others")
	assert.Equal(t, "admin", u.Username)

	_, ok, err := kv.Get(ctx, "k12_auth:u1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSettings_DefaultAndSave(t *testing.T) {
	ctx := context.Background()
	s := store.New(store.NewMemoryKV())

	st, err := s.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings.DefaultQuestionsPerTest, st.QuestionsPerTest)

	require.NoError(t, s.SaveSettings(ctx, settings.AppSettings{QuestionsPerTest: 25}))
	st, err = s.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 25, st.QuestionsPerTest)
}

func TestCorruptValue(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	require.NoError(t, kv.Set(ctx, store.KeySettings, []byte("{not json")))

	_, err := store.New(kv).Settings(ctx)
	assert.Error(t, err)
}

func TestSQLite_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db")

	s, err := store.Open(ctx, store.DriverSQLite, dsn)
	require.NoError(t, err)

	require.NoError(t, s.SaveSettings(ctx, settings.AppSettings{QuestionsPerTest: 7}))
	require.NoError(t, s.SaveSettings(ctx, settings.AppSettings{QuestionsPerTest: 8}))
	require.NoError(t, s.SaveResult(ctx, result.TestResult{ID: "r1", StudentID: "u2"}))
	require.NoError(t, s.Close())

	reopened, err := store.Open(ctx, store.DriverSQLite, dsn)
	require.NoError(t, err)
	defer reopened.Close()

	st, err := reopened.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, st.QuestionsPerTest)

	rs, err := reopened.Results(ctx)
	require.NoError(t, err)
	require.Len(t, rs, 1)
	assert.Equal(t, "r1", rs[0].ID)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := store.Open(context.Background(), store.Driver("mysql"), "")
	assert.Error(t, err)
}
