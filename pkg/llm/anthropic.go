package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/codepilot-ai/codepilot/pkg/models"
)

// MessagesClient captures the subset of the Anthropic SDK used by the client.
// It is satisfied by *sdk.MessageService so tests can pass a stub.
type MessagesClient interface {
	New(ctx context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error)
}

// AnthropicClient implements Client against the Anthropic Messages API.
type AnthropicClient struct {
	msg       MessagesClient
	maxTokens int64
}

// NewAnthropicClient creates a client that calls the Anthropic Messages API
// directly. SDK retries are disabled: the agent loop owns retry policy.
func NewAnthropicClient(apiKey string, maxTokens int) *AnthropicClient {
	ac := sdk.NewClient(
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	)
	return &AnthropicClient{
		msg:       &ac.Messages,
		maxTokens: int64(maxTokens),
	}
}

// Complete issues a non-streaming Messages request and returns the
// concatenated text blocks of the response.
func (c *AnthropicClient) Complete(ctx context.Context, model, system string, messages []models.Message) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	msg, err := c.msg.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(model),
		MaxTokens: c.maxTokens,
		System:    []sdk.TextBlockParam{{Text: system}},
		Messages:  toSDKMessages(messages),
	})
	if err != nil {
		if isRateLimited(err) {
			return "", fmt.Errorf("%w: %w", ErrRateLimited, err)
		}
		return "", fmt.Errorf("anthropic messages.new: %w", err)
	}
	if msg == nil {
		return "", errors.New("anthropic: response message is nil")
	}
	return textContent(msg), nil
}

// Close is a no-op: the SDK client holds no persistent connections.
func (c *AnthropicClient) Close() error {
	return nil
}

func toSDKMessages(messages []models.Message) []sdk.MessageParam {
	out := make([]sdk.MessageParam, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case models.RoleAssistant:
			out = append(out, sdk.NewAssistantMessage(sdk.NewTextBlock(m.Content)))
		default:
			out = append(out, sdk.NewUserMessage(sdk.NewTextBlock(m.Content)))
		}
	}
	return out
}

func textContent(msg *sdk.Message) string {
	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return b.String()
}

func isRateLimited(err error) bool {
	var apiErr *sdk.Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests
}
