package question

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/englishk12/backend/internal/id"
)

type Type string

const (
	TypeGrammar    Type = "grammar"
	TypeVocabulary Type = "vocabulary"
	TypeCloze      Type = "cloze"
)

func (t Type) Valid() bool {
	switch t {
	case TypeGrammar, TypeVocabulary, TypeCloze:
		return true
	}
	return false
}

// Question is a single multiple-choice item in the bank.
type Question struct {
	ID            string   `json:"id"`
	Grade         int      `json:"grade"`
	Type          Type     `json:"type"`
	Text          string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// Draft is the editable content of a question, either typed by a teacher
// or produced by the authoring assistant.
type Draft struct {
	Grade         int      `json:"grade"`
	Type          Type     `json:"type"`
	Text          string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("validation error")

// ValidationError reports which field of a draft was rejected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Validate checks a draft before it is saved. The correct answer must be
// exactly one of the options.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Text) == "" {
		return &ValidationError{Field: "question", Reason: "text cannot be empty"}
	}
	if !d.Type.Valid() {
		return &ValidationError{Field: "type", Reason: fmt.Sprintf("%q is not one of grammar, vocabulary, cloze", d.Type)}
	}
	if len(d.Options) < 2 {
		return &ValidationError{Field: "options", Reason: "at least two options are required"}
	}
	if !slices.Contains(d.Options, d.CorrectAnswer) {
		return &ValidationError{Field: "correctAnswer", Reason: "must match one of the options"}
	}
	return nil
}

// New validates the draft and builds a question with a fresh ID.
func New(d Draft) (Question, error) {
	if err := d.Validate(); err != nil {
		return Question{}, err
	}
	return d.apply(id.New(id.PrefixQuestion)), nil
}

// Replace validates the draft and builds the updated version of question questionID.
func Replace(questionID string, d Draft) (Question, error) {
	if err := d.Validate(); err != nil {
		return Question{}, err
	}
	return d.apply(questionID), nil
}

func (d Draft) apply(questionID string) Question {
	return Question{
		ID:            questionID,
		Grade:         d.Grade,
		Type:          d.Type,
		Text:          d.Text,
		Options:       slices.Clone(d.Options),
		CorrectAnswer: d.CorrectAnswer,
		Explanation:   d.Explanation,
	}
}

// Draft returns the editable content of q.
func (q Question) Draft() Draft {
	return Draft{
		Grade:         q.Grade,
		Type:          q.Type,
		Text:          q.Text,
		Options:       slices.Clone(q.Options),
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
	}
}

// IsCorrect reports whether choice is exactly the correct answer.
func (q Question) IsCorrect(choice string) bool {
	return choice == q.CorrectAnswer
}

func (q Question) HasOption(opt string) bool {
	return slices.Contains(q.Options, opt)
}
