package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codepilot-ai/codepilot/pkg/models"
)

func TestToProtoMessages(t *testing.T) {
	messages := []models.Message{
		{Role: "user", Content: "You are starting your task as the PLANNER agent."},
		{Role: "assistant", Content: "```python\nprint(read_file(\"pom.xml\"))\n```"},
		{Role: "user", Content: "Observation:\nstdout:\n<project/>"},
	}

	result := toProtoMessages(messages)
	require.Len(t, result, 3)

	assert.Equal(t, "user", result[0].Role)
	assert.Equal(t, "You are starting your task as the PLANNER agent.", result[0].Content)

	assert.Equal(t, "assistant", result[1].Role)
	assert.Equal(t, "```python\nprint(read_file(\"pom.xml\"))\n```", result[1].Content)

	assert.Equal(t, "user", result[2].Role)
}

func TestToProtoMessages_Empty(t *testing.T) {
	result := toProtoMessages(nil)
	assert.Empty(t, result)
}
