package llm

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/codepilot-ai/codepilot/pkg/models"
	llmv1 "github.com/codepilot-ai/codepilot/proto"
)

// GRPCClient implements Client by calling the platform's LLM gateway via gRPC.
type GRPCClient struct {
	conn      *grpc.ClientConn
	client    llmv1.CompletionServiceClient
	maxTokens int32
}

// NewGRPCClient creates a new gRPC LLM client.
func NewGRPCClient(addr string, maxTokens int) (*GRPCClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM gateway at %s: %w", addr, err)
	}
	return &GRPCClient{
		conn:      conn,
		client:    llmv1.NewCompletionServiceClient(conn),
		maxTokens: int32(maxTokens),
	}, nil
}

// Complete sends the conversation to the gateway and returns the completion text.
func (c *GRPCClient) Complete(ctx context.Context, model, system string, messages []models.Message) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := c.client.Complete(ctx, &llmv1.CompleteRequest{
		Model:     model,
		System:    system,
		Messages:  toProtoMessages(messages),
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		if st, ok := status.FromError(err); ok && st.Code() == codes.ResourceExhausted {
			return "", fmt.Errorf("%w: %w", ErrRateLimited, err)
		}
		return "", fmt.Errorf("gRPC Complete call failed: %w", err)
	}
	return resp.GetText(), nil
}

// Close releases the gRPC connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

// ────────────────────────────────────────────────────────────
// Proto conversion helpers
// ────────────────────────────────────────────────────────────

func toProtoMessages(msgs []models.Message) []*llmv1.Message {
	out := make([]*llmv1.Message, len(msgs))
	for i, m := range msgs {
		out[i] = &llmv1.Message{
			Role:    m.Role,
			Content: m.Content,
		}
	}
	return out
}
