package question_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/englishk12/backend/internal/domain/question"
)

func validDraft() question.Draft {
	return question.Draft{
		Grade:         5,
		Type:          question.TypeGrammar,
		Text:          "She _____ to school every day.",
		Options:       []string{"go", "goes", "going", "went"},
		CorrectAnswer: "goes",
		Explanation:   "Present simple, third person singular.",
	}
}

func TestNew_Valid(t *testing.T) {
	q, err := question.New(validDraft())
	require.NoError(t, err)

	assert.NotEmpty(t, q.ID)
	assert.Equal(t, "goes", q.CorrectAnswer)
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *question.Draft)
		field  string
	}{
		{"answer not among options", func(d *question.Draft) { d.CorrectAnswer = "gone" }, "correctAnswer"},
		{"answer differs in case", func(d *question.Draft) { d.CorrectAnswer = "Goes" }, "correctAnswer"},
		{"empty answer", func(d *question.Draft) { d.CorrectAnswer = "" }, "correctAnswer"},
		{"empty text", func(d *question.Draft) { d.Text = "   " }, "question"},
		{"single option", func(d *question.Draft) { d.Options = []string{"goes"} }, "options"},
		{"unknown type", func(d *question.Draft) { d.Type = "essay" }, "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)

			_, err := question.New(d)
			require.ErrorIs(t, err, question.ErrValidation)

			var ve *question.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestReplace_KeepsID(t *testing.T) {
	d := validDraft()
	d.Text = "He _____ to school every day."

	q, err := question.Replace("q1", d)
	require.NoError(t, err)
	assert.Equal(t, "q1", q.ID)
	assert.Equal(t, d.Text, q.Text)
}

func TestDraft_DoesNotAliasOptions(t *testing.T) {
	d := validDraft()
	q, err := question.New(d)
	require.NoError(t, err)

	d.Options[0] = "changed"
	assert.Equal(t, "go", q.Options[0], "question options must not share the draft's backing array")
}
