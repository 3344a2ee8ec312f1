package question

import "strings"

// Filter narrows a question listing. Nil / empty fields match everything;
// set fields are AND-combined.
type Filter struct {
	TextContains string
	Grade        *int
	Type         *Type
}

func (f Filter) Matches(q Question) bool {
	if f.TextContains != "" && !strings.Contains(strings.ToLower(q.Text), strings.ToLower(f.TextContains)) {
		return false
	}
	if f.Grade != nil && q.Grade != *f.Grade {
		return false
	}
	if f.Type != nil && q.Type != *f.Type {
		return false
	}
	return true
}

// Apply returns the questions matching f, preserving collection order.
func (f Filter) Apply(questions []Question) []Question {
	out := make([]Question, 0, len(questions))
	for _, q := range questions {
		if f.Matches(q) {
			out = append(out, q)
		}
	}
	return out
}

// ForGrade returns the questions targeting grade.
func ForGrade(questions []Question, grade int) []Question {
	return Filter{Grade: &grade}.Apply(questions)
}

// Index maps question IDs to questions.
func Index(questions []Question) map[string]Question {
	m := make(map[string]Question, len(questions))
	for _, q := range questions {
		m[q.ID] = q
	}
	return m
}
