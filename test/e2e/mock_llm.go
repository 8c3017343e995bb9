package e2e

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/codepilot-ai/codepilot/pkg/models"
)

// LLMScriptEntry is one scripted completion.
type LLMScriptEntry struct {
	// Text is the assistant response to return.
	Text string

	// Err is returned instead of Text when set. Wrap llm.ErrRateLimited to
	// exercise the retry path.
	Err error

	// WaitCh, when non-nil, blocks the completion until the channel is
	// closed or the context is cancelled. Lets tests hold a worker mid-step.
	WaitCh <-chan struct{}

	// OnBlock receives one signal when the entry starts blocking on WaitCh.
	OnBlock chan<- struct{}
}

// LLMCall captures one Complete invocation.
type LLMCall struct {
	Role     string
	Model    string
	System   string
	Messages []models.Message
}

// ScriptedLLMClient implements llm.Client with pre-scripted responses.
//
// Entries are consumed from two pools: role-routed entries keyed on the
// agent role named in the system prompt, then sequential entries as a
// fallback. Running out of entries returns an error, which fails the step
// through the normal retry path instead of hanging the test.
type ScriptedLLMClient struct {
	mu         sync.Mutex
	routed     map[string][]LLMScriptEntry
	sequential []LLMScriptEntry
	calls      []LLMCall
}

// NewScriptedLLMClient creates an empty scripted client.
func NewScriptedLLMClient() *ScriptedLLMClient {
	return &ScriptedLLMClient{routed: make(map[string][]LLMScriptEntry)}
}

// AddRouted appends an entry consumed only by calls from the named role
// (system-prompt spelling: "RepoMapper", "Planner", ...).
func (c *ScriptedLLMClient) AddRouted(role string, entry LLMScriptEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.routed[role] = append(c.routed[role], entry)
}

// AddSequential appends an entry consumed by any call without a routed match.
func (c *ScriptedLLMClient) AddSequential(entry LLMScriptEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sequential = append(c.sequential, entry)
}

// Complete returns the next scripted entry for the calling role.
func (c *ScriptedLLMClient) Complete(ctx context.Context, model, system string, messages []models.Message) (string, error) {
	role := roleFromSystemPrompt(system)

	c.mu.Lock()
	c.calls = append(c.calls, LLMCall{
		Role:     role,
		Model:    model,
		System:   system,
		Messages: append([]models.Message(nil), messages...),
	})
	callNum := len(c.calls)

	var entry LLMScriptEntry
	var found bool
	if queue := c.routed[role]; len(queue) > 0 {
		entry, c.routed[role] = queue[0], queue[1:]
		found = true
	} else if len(c.sequential) > 0 {
		entry, c.sequential = c.sequential[0], c.sequential[1:]
		found = true
	}
	c.mu.Unlock()

	if !found {
		return "", fmt.Errorf("no scripted LLM entry for %s (call %d)", role, callNum)
	}

	if entry.OnBlock != nil {
		entry.OnBlock <- struct{}{}
	}
	if entry.WaitCh != nil {
		select {
		case <-entry.WaitCh:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	if entry.Err != nil {
		return "", entry.Err
	}
	return entry.Text, nil
}

// Close implements llm.Client.
func (c *ScriptedLLMClient) Close() error { return nil }

// CallCount returns the total number of Complete calls.
func (c *ScriptedLLMClient) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

// Calls returns a copy of all captured calls in order.
func (c *ScriptedLLMClient) Calls() []LLMCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]LLMCall(nil), c.calls...)
}

// CallsForRole returns the captured calls made by one role, in order.
func (c *ScriptedLLMClient) CallsForRole(role string) []LLMCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []LLMCall
	for _, call := range c.calls {
		if call.Role == role {
			out = append(out, call)
		}
	}
	return out
}

// roleFromSystemPrompt extracts the agent role from a system prompt of the
// form "You are the <Role> agent for CodePilot...".
func roleFromSystemPrompt(system string) string {
	rest, ok := strings.CutPrefix(system, "You are the ")
	if !ok {
		return ""
	}
	role, _, ok := strings.Cut(rest, " agent")
	if !ok {
		return ""
	}
	return role
}
