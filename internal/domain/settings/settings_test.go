package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	assert.Equal(t, 10, Default().QuestionsPerTest)
	assert.True(t, Default().WithinHint())
}

func TestWithinHint(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{4, false},
		{5, true},
		{50, true},
		{51, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AppSettings{QuestionsPerTest: tt.n}.WithinHint(), tt.n)
	}
}
