// Package llm provides the completion client used by the agent loop.
//
// Two transports are supported: direct Anthropic Messages API calls ("http")
// and the platform's LLM gateway ("grpc"). Both implement the same Client
// interface and surface rate limiting through the same sentinel, so the
// agent loop stays transport agnostic.
package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/codepilot-ai/codepilot/pkg/config"
	"github.com/codepilot-ai/codepilot/pkg/models"
)

// requestTimeout bounds a single completion request.
const requestTimeout = 60 * time.Second

// ErrRateLimited indicates the provider returned HTTP 429 (or the gRPC
// equivalent). Callers may retry without consuming an agent turn.
var ErrRateLimited = errors.New("llm rate limited")

// Client is the completion interface used by the agent loop.
type Client interface {
	// Complete sends a system prompt plus conversation history and returns
	// the assistant's text response.
	Complete(ctx context.Context, model, system string, messages []models.Message) (string, error)

	// Close releases any underlying connections.
	Close() error
}

// New builds a Client for the configured transport.
func New(cfg *config.LLMConfig) (Client, error) {
	switch cfg.Transport {
	case config.LLMTransportGRPC:
		return NewGRPCClient(cfg.GRPCAddr, cfg.MaxTokens)
	case config.LLMTransportHTTP:
		apiKey := os.Getenv(cfg.APIKeyEnv)
		if apiKey == "" {
			return nil, fmt.Errorf("environment variable %s is not set", cfg.APIKeyEnv)
		}
		return NewAnthropicClient(apiKey, cfg.MaxTokens), nil
	default:
		return nil, fmt.Errorf("unknown llm transport: %q", cfg.Transport)
	}
}
