package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTopicRequest(t *testing.T) {
	tests := []struct {
		name       string
		difficulty string
		want       Difficulty
	}{
		{"omitted defaults to intermediate", "", DifficultyIntermediate},
		{"whitespace kept verbatim", "  ", Difficulty("  ")},
		{"padded level kept verbatim", " advanced ", Difficulty(" advanced ")},
		{"beginner kept", "beginner", DifficultyBeginner},
		{"advanced kept", "advanced", DifficultyAdvanced},
		{"unknown passed through", "expert", Difficulty("expert")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := NewTopicRequest("Binary Search Trees", "", tt.difficulty)
			assert.Equal(t, tt.want, req.DifficultyLevel)
			assert.Equal(t, "Binary Search Trees", req.TopicName)
		})
	}
}

func TestDifficulty_IsKnown(t *testing.T) {
	assert.True(t, DifficultyBeginner.IsKnown())
	assert.True(t, DifficultyIntermediate.IsKnown())
	assert.True(t, DifficultyAdvanced.IsKnown())
	assert.False(t, Difficulty("expert").IsKnown())
}

func TestFallbackProgressionPlan(t *testing.T) {
	plan := FallbackProgressionPlan("Heaps")
	if assert.Len(t, plan.WeeklyPlan, 1) {
		week := plan.WeeklyPlan[0]
		assert.Equal(t, 1, week.Week)
		assert.Equal(t, "Understanding Basics", week.Focus)
		assert.Equal(t, []string{"Heaps"}, week.Topics)
		assert.Equal(t, []string{"Practice with examples"}, week.PracticeProblems)
		assert.Equal(t, []string{"Master fundamentals"}, week.Objectives)
	}
	assert.Equal(t, []string{"Related topic 1", "Related topic 2"}, plan.RecommendedNextTopics)
}

func TestParsePolicy(t *testing.T) {
	assert.Equal(t, PolicyAbort, ParsePolicy("abort", PolicyFallback))
	assert.Equal(t, PolicyFallback, ParsePolicy("fallback", PolicyAbort))
	assert.Equal(t, PolicyAbort, ParsePolicy("", PolicyAbort))
	assert.Equal(t, PolicyFallback, ParsePolicy("bogus", PolicyFallback))
}

func TestErrors(t *testing.T) {
	upstream := errors.New("quota exceeded")
	llmErr := NewLLMServiceError(upstream)
	assert.Equal(t, "quota exceeded", llmErr.Message)
	assert.ErrorIs(t, llmErr, upstream)
	assert.True(t, IsLLMServiceError(llmErr))
	assert.False(t, IsLLMServiceError(upstream))

	pe := NewQuizParseError("not json", errors.New("invalid character"))
	assert.Equal(t, ErrQuizParse, pe.Code)
	assert.Equal(t, "not json", pe.RawResponse)
	assert.Contains(t, pe.Error(), MsgParseFailure)

	var target *ParseError
	assert.True(t, errors.As(error(pe), &target))
}
