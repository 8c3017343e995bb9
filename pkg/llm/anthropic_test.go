package llm

import (
	"context"
	"errors"
	"net/http"
	"testing"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codepilot-ai/codepilot/pkg/models"
)

type stubMessages struct {
	lastParams sdk.MessageNewParams
	resp       *sdk.Message
	err        error
}

func (s *stubMessages) New(_ context.Context, body sdk.MessageNewParams, _ ...option.RequestOption) (*sdk.Message, error) {
	s.lastParams = body
	return s.resp, s.err
}

func TestAnthropicComplete(t *testing.T) {
	stub := &stubMessages{
		resp: &sdk.Message{
			Content: []sdk.ContentBlockUnion{
				{Type: "text", Text: "I will start by "},
				{Type: "text", Text: "reading the failing test."},
			},
		},
	}
	client := &AnthropicClient{msg: stub, maxTokens: 4096}

	text, err := client.Complete(context.Background(), "claude-sonnet-4-5", "You are the planner.", []models.Message{
		models.UserMessage("Begin."),
		models.AssistantMessage("Working on it."),
		models.UserMessage("Observation:\nok"),
	})
	require.NoError(t, err)
	assert.Equal(t, "I will start by reading the failing test.", text)

	// Request mapping
	assert.Equal(t, sdk.Model("claude-sonnet-4-5"), stub.lastParams.Model)
	assert.Equal(t, int64(4096), stub.lastParams.MaxTokens)
	require.Len(t, stub.lastParams.System, 1)
	assert.Equal(t, "You are the planner.", stub.lastParams.System[0].Text)
	require.Len(t, stub.lastParams.Messages, 3)
	assert.Equal(t, sdk.MessageParamRoleUser, stub.lastParams.Messages[0].Role)
	assert.Equal(t, sdk.MessageParamRoleAssistant, stub.lastParams.Messages[1].Role)
	assert.Equal(t, sdk.MessageParamRoleUser, stub.lastParams.Messages[2].Role)
}

func TestAnthropicComplete_SkipsNonTextBlocks(t *testing.T) {
	stub := &stubMessages{
		resp: &sdk.Message{
			Content: []sdk.ContentBlockUnion{
				{Type: "thinking", Text: ""},
				{Type: "text", Text: "done"},
			},
		},
	}
	client := &AnthropicClient{msg: stub, maxTokens: 64}

	text, err := client.Complete(context.Background(), "claude-sonnet-4-5", "sys", []models.Message{models.UserMessage("hi")})
	require.NoError(t, err)
	assert.Equal(t, "done", text)
}

func TestAnthropicComplete_RateLimited(t *testing.T) {
	req, err := http.NewRequest(http.MethodPost, "https://api.anthropic.com/v1/messages", nil)
	require.NoError(t, err)

	stub := &stubMessages{
		err: &sdk.Error{
			StatusCode: http.StatusTooManyRequests,
			Request:    req,
			Response:   &http.Response{StatusCode: http.StatusTooManyRequests},
		},
	}
	client := &AnthropicClient{msg: stub, maxTokens: 64}

	_, err = client.Complete(context.Background(), "claude-sonnet-4-5", "sys", []models.Message{models.UserMessage("hi")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestAnthropicComplete_OtherError(t *testing.T) {
	stub := &stubMessages{err: errors.New("connection reset")}
	client := &AnthropicClient{msg: stub, maxTokens: 64}

	_, err := client.Complete(context.Background(), "claude-sonnet-4-5", "sys", []models.Message{models.UserMessage("hi")})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRateLimited)
	assert.Contains(t, err.Error(), "connection reset")
}
