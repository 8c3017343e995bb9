// Package models holds domain types shared across layers.
package models

// Conversation roles as sent to the LLM service.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single conversation turn. The agent loop appends turns as it
// runs and persists the full slice on every turn, so a resumed step replays
// an identical conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// UserMessage builds a user turn.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// AssistantMessage builds an assistant turn.
func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}
