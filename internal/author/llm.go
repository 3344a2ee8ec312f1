package author

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/englishk12/backend/internal/domain/question"
)

// DraftOptionCount is the number of options a generated draft must have.
const DraftOptionCount = 4

// LLMAuthor drafts questions with a chat model.
type LLMAuthor struct {
	chat *chatClient
}

var _ Generator = (*LLMAuthor)(nil)

// NewLLMAuthor talks to the OpenAI-compatible server at url, e.g.
// "http://localhost:1234". apiKey may be empty for local servers.
func NewLLMAuthor(url, model, apiKey string, timeout time.Duration) *LLMAuthor {
	return &LLMAuthor{chat: newChatClient(url, model, apiKey, timeout)}
}

// generatedQuestion is the structured output requested from the LLM.
type generatedQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// GenerateDraft asks the LLM for one question. The call is made once; any
// transport or content problem comes back as a *ServiceError.
func (a *LLMAuthor) GenerateDraft(ctx context.Context, req Request) (question.Draft, error) {
	if err := req.Validate(); err != nil {
		return question.Draft{}, err
	}

	content, err := a.chat.complete(ctx, buildPrompt(req))
	if err != nil {
		return question.Draft{}, &ServiceError{Reason: "LLM call failed", Wrapped: err}
	}

	jsonStr := extractJSON(content)
	if jsonStr == "" {
		return question.Draft{}, &ServiceError{Reason: "no JSON object found in LLM response"}
	}

	var gen generatedQuestion
	if err := json.Unmarshal([]byte(jsonStr), &gen); err != nil {
		return question.Draft{}, &ServiceError{Reason: "invalid JSON from LLM", Wrapped: err}
	}

	return toDraft(req, gen)
}

// toDraft checks the structured fields and turns them into a draft.
func toDraft(req Request, gen generatedQuestion) (question.Draft, error) {
	if strings.TrimSpace(gen.Question) == "" {
		return question.Draft{}, &ServiceError{Reason: "missing question text"}
	}
	if len(gen.Options) != DraftOptionCount {
		return question.Draft{}, &ServiceError{Reason: fmt.Sprintf("expected %d options, got %d", DraftOptionCount, len(gen.Options))}
	}
	if !slices.Contains(gen.Options, gen.CorrectAnswer) {
		return question.Draft{}, &ServiceError{Reason: "correct answer does not match any option"}
	}
	if strings.TrimSpace(gen.Explanation) == "" {
		return question.Draft{}, &ServiceError{Reason: "missing explanation"}
	}

	return question.Draft{
		Grade:         req.Grade,
		Type:          req.Type,
		Text:          gen.Question,
		Options:       gen.Options,
		CorrectAnswer: gen.CorrectAnswer,
		Explanation:   gen.Explanation,
	}, nil
}

// ============================================================================
// Prompt
// ============================================================================

var typeHints = map[question.Type]string{
	question.TypeGrammar:    "a grammar question: one sentence with a blank (_____) testing a grammar point",
	question.TypeVocabulary: "a vocabulary question: one sentence with a blank (_____) testing word choice or meaning",
	question.TypeCloze:      "a cloze question: a short passage with one blank (_____) to complete from context",
}

// buildPrompt asks for exactly one question and ends with the JSON schema so
// it is the last thing the model sees.
func buildPrompt(req Request) string {
	return fmt.Sprintf(`/no_think
Generate 1 English multiple-choice question for Grade %d students in Vietnam.

TOPIC: %s
TYPE: %s

RULES:
- Exactly 4 options (A, B, C, D), all different.
- "correctAnswer" must be exactly one of the 4 option strings, character for character.
- The explanation must be written in Vietnamese.
- Keep the question academic, accurate and appropriate for the grade.

Respond with ONLY this JSON, no markdown:
{"question": "...", "options": ["...", "...", "...", "..."], "correctAnswer": "...", "explanation": "..."}`,
		req.Grade, strings.TrimSpace(req.Topic), typeHints[req.Type])
}
