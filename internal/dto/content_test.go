package dto

import (
	"encoding/json"
	"testing"

	"dsa-tutor/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateContentRequest_ToDomain(t *testing.T) {
	req := GenerateContentRequest{TopicName: "Queues"}
	got := req.ToDomain()
	assert.Equal(t, domain.DifficultyIntermediate, got.DifficultyLevel)

	req.DifficultyLevel = "expert"
	assert.Equal(t, domain.Difficulty("expert"), req.ToDomain().DifficultyLevel, "unknown levels pass through")
}

func TestNewGenerateContentResponse_EmptyCollectionsEncodeAsArrays(t *testing.T) {
	resp := NewGenerateContentResponse(&domain.GeneratedContent{
		TopicName:       "Queues",
		ProgressionPlan: &domain.ProgressionPlan{},
	})

	b, err := json.Marshal(resp)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(b, &body))
	assert.Equal(t, []any{}, body["testQuestions"])
	assert.Equal(t, []any{}, body["progressionPlan"].(map[string]any)["weeklyPlan"])
}

func TestErrorResponses_Keys(t *testing.T) {
	b, err := json.Marshal(ErrorResponse{Error: "boom"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"boom"}`, string(b))

	b, err = json.Marshal(ParseErrorResponse{Error: "Failed to parse AI response as JSON"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"Failed to parse AI response as JSON","rawResponse":""}`, string(b))
}
