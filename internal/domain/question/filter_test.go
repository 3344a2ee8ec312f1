package question_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/englishk12/backend/internal/domain/question"
)

func sampleBank() []question.Question {
	return []question.Question{
		{ID: "q1", Grade: 5, Type: question.TypeGrammar, Text: "She _____ to school every day."},
		{ID: "q2", Grade: 5, Type: question.TypeVocabulary, Text: "I like to eat _____."},
		{ID: "q3", Grade: 12, Type: question.TypeGrammar, Text: "If I _____ you, I would take the job."},
	}
}

func ids(qs []question.Question) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	five := 5
	grammar := question.TypeGrammar

	tests := []struct {
		name   string
		filter question.Filter
		want   []string
	}{
		{"empty filter passes all", question.Filter{}, []string{"q1", "q2", "q3"}},
		{"text is case-insensitive", question.Filter{TextContains: "SCHOOL"}, []string{"q1"}},
		{"grade", question.Filter{Grade: &five}, []string{"q1", "q2"}},
		{"type", question.Filter{Type: &grammar}, []string{"q1", "q3"}},
		{"all combined", question.Filter{TextContains: "eat", Grade: &five, Type: &grammar}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(tt.filter.Apply(sampleBank())))
		})
	}
}

func TestForGrade(t *testing.T) {
	assert.Equal(t, []string{"q3"}, ids(question.ForGrade(sampleBank(), 12)))
}
