package result

import (
	"time"

	"github.com/englishk12/backend/internal/id"
)

// DateLayout is the calendar-day format results are stamped with.
const DateLayout = time.DateOnly

// Detail records one answered question of a test.
type Detail struct {
	QuestionID string `json:"questionId"`
	UserChoice string `json:"userChoice"`
	IsCorrect  bool   `json:"isCorrect"`
}

// TestResult is written once when a test finishes and never changed afterwards.
type TestResult struct {
	ID        string   `json:"resultId"`
	StudentID string   `json:"studentId"`
	Grade     int      `json:"grade"`
	Score     int      `json:"score"`
	Date      string   `json:"date"`
	Details   []Detail `json:"details"`
}

// New builds a result for a finished test, scoring it from details.
func New(studentID string, grade int, details []Detail, now time.Time) TestResult {
	return TestResult{
		ID:        id.New(id.PrefixResult),
		StudentID: studentID,
		Grade:     grade,
		Score:     Score(details),
		Date:      now.Format(DateLayout),
		Details:   details,
	}
}

// Score counts the correct answers.
func Score(details []Detail) int {
	n := 0
	for _, d := range details {
		if d.IsCorrect {
			n++
		}
	}
	return n
}

// Day parses the result date. Unparseable dates sort as the zero time.
func (r TestResult) Day() time.Time {
	if t, err := time.Parse(DateLayout, r.Date); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, r.Date); err == nil {
		return t
	}
	return time.Time{}
}
