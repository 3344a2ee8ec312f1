package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/englishk12/backend/internal/analytics"
	"github.com/englishk12/backend/internal/domain/question"
	"github.com/englishk12/backend/internal/domain/result"
	"github.com/englishk12/backend/internal/domain/user"
)

func miss(qid string) result.Detail { return result.Detail{QuestionID: qid, UserChoice: "x", IsCorrect: false} }
func hit(qid string) result.Detail { return result.Detail{QuestionID: qid, UserChoice: "y", IsCorrect: true} }

func resultIDs(rs []result.TestResult) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.ID
	}
	return out
}

func TestHistory_DateDescending(t *testing.T) {
	results := []result.TestResult{
		{ID: "jan", StudentID: "u2", Date: "2024-01-01"},
		{ID: "mar", StudentID: "u2", Date: "2024-03-01"},
		{ID: "feb", StudentID: "u2", Date: "2024-02-01"},
	}

	got := analytics.History(results, "u2")

	assert.Equal(t, []string{"mar", "feb", "jan"}, resultIDs(got))
}

func TestHistory_SameDateKeepsInsertionOrder(t *testing.T) {
	results := []result.TestResult{
		{ID: "a", StudentID: "u2", Date: "2024-02-01"},
		{ID: "other", StudentID: "u3", Date: "2024-05-01"},
		{ID: "b", StudentID: "u2", Date: "2024-02-01"},
		{ID: "c", StudentID: "u2", Date: "2024-03-01"},
		{ID: "d", StudentID: "u2", Date: "2024-02-01"},
	}

	got := analytics.History(results, "u2")

	assert.Equal(t, []string{"c", "a", "b", "d"}, resultIDs(got))
}

func TestHistory_NoResults(t *testing.T) {
	got := analytics.History(nil, "u2")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMissedQuestions_RankedByCount(t *testing.T) {
	bank := []question.Question{{ID: "q1"}, {ID: "q2"}, {ID: "q3"}}
	results := []result.TestResult{
		{StudentID: "u2", Details: []result.Detail{miss("q1"), miss("q2"), hit("q3")}},
		{StudentID: "u2", Details: []result.Detail{miss("q2"), miss("q3")}},
		{StudentID: "u3", Details: []result.Detail{miss("q1"), miss("q1")}},
		{StudentID: "u2", Details: []result.Detail{miss("q2")}},
	}

	got := analytics.MissedQuestions(results, bank, "u2")

	require.Len(t, got, 3)
	assert.Equal(t, "q2", got[0].Question.ID)
	assert.Equal(t, 3, got[0].MissCount)
	// q1 and q3 tie at 1; q1 was missed first
	assert.Equal(t, "q1", got[1].Question.ID)
	assert.Equal(t, "q3", got[2].Question.ID)
}

func TestMissedQuestions_TieOrderIsFirstEncounter(t *testing.T) {
	bank := []question.Question{{ID: "a"}, {ID: "b"}, {ID: "z"}}
	results := []result.TestResult{
		{StudentID: "u2", Details: []result.Detail{miss("z"), miss("b"), miss("a")}},
	}

	got := analytics.MissedQuestions(results, bank, "u2")

	require.Len(t, got, 3)
	assert.Equal(t, "z", got[0].Question.ID)
	assert.Equal(t, "b", got[1].Question.ID)
	assert.Equal(t, "a", got[2].Question.ID)
}

func TestMissedQuestions_DropsDeletedQuestions(t *testing.T) {
	bank := []question.Question{{ID: "q1"}}
	results := []result.TestResult{
		{StudentID: "u2", Details: []result.Detail{miss("deleted"), miss("deleted"), miss("q1")}},
	}

	got := analytics.MissedQuestions(results, bank, "u2")

	require.Len(t, got, 1)
	assert.Equal(t, "q1", got[0].Question.ID)
}

func TestMissedQuestions_NoMistakes(t *testing.T) {
	bank := []question.Question{{ID: "q1"}}
	results := []result.TestResult{
		{StudentID: "u2", Details: []result.Detail{hit("q1")}},
	}

	got := analytics.MissedQuestions(results, bank, "u2")
	assert.Empty(t, got)
}

func TestStudentReports(t *testing.T) {
	users := []user.User{
		{ID: "u1", Role: user.RoleTeacher},
		{ID: "u2", Role: user.RoleStudent},
		{ID: "u3", Role: user.RoleStudent},
	}
	results := []result.TestResult{
		{StudentID: "u2", Score: 7},
		{StudentID: "u2", Score: 8},
		{StudentID: "u2", Score: 8},
	}

	got := analytics.StudentReports(users, results)

	require.Len(t, got, 2)
	assert.Equal(t, "u2", got[0].Student.ID)
	assert.Equal(t, 3, got[0].Attempts)
	assert.Equal(t, "7.7", got[0].AverageScore.String())

	assert.Equal(t, "u3", got[1].Student.ID)
	assert.Equal(t, 0, got[1].Attempts)
	assert.True(t, got[1].AverageScore.IsZero())
}
