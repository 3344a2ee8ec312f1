package author

import (
	"context"
	"fmt"
	"strings"

	"github.com/englishk12/backend/internal/domain/question"
)

// Request describes the question a teacher wants drafted.
type Request struct {
	Topic string        `json:"topic"`
	Grade int           `json:"grade"`
	Type  question.Type `json:"type"`
}

func (r Request) Validate() error {
	if strings.TrimSpace(r.Topic) == "" {
		return &question.ValidationError{Field: "topic", Reason: "topic is required"}
	}
	if !r.Type.Valid() {
		return &question.ValidationError{Field: "type", Reason: fmt.Sprintf("%q is not one of grammar, vocabulary, cloze", r.Type)}
	}
	return nil
}

// Generator drafts a multiple-choice question for a topic.
// Implementations may call an LLM or return canned drafts (for tests).
type Generator interface {
	// GenerateDraft returns a draft with exactly four options and a correct
	// answer among them, or a *ServiceError.
	GenerateDraft(ctx context.Context, req Request) (question.Draft, error)
}

// ServiceError is returned when the generation service cannot produce a
// usable draft. The teacher may simply retry.
type ServiceError struct {
	Reason  string
	Wrapped error
}

func (e *ServiceError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("question generation failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("question generation failed: %s", e.Reason)
}

func (e *ServiceError) Unwrap() error {
	return e.Wrapped
}
