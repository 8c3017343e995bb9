package agent

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/codepilot-ai/codepilot/ent"
	"github.com/codepilot-ai/codepilot/ent/step"
	"github.com/codepilot-ai/codepilot/pkg/models"
)

// resumeTokenBudget caps the serialized transcript size we are willing to
// resume, in estimated tokens (~4 chars each). A transcript already near
// the model's context limit would fail again the moment it resumed.
const resumeTokenBudget = 150_000

// loadOrInitHistory restores the step's saved transcript when a previous
// worker was interrupted mid-step, or starts a fresh conversation with the
// role's opening message. Corrupt or oversized transcripts fall back to a
// fresh start.
func (l *Loop) loadOrInitHistory(st *ent.Step, jb *ent.Job, prior map[step.Role]string, log *slog.Logger) []models.Message {
	if st.ConversationHistory != nil && strings.TrimSpace(*st.ConversationHistory) != "" {
		saved := *st.ConversationHistory
		estimatedTokens := len(saved) / 4

		var restored []models.Message
		if err := json.Unmarshal([]byte(saved), &restored); err != nil {
			log.Warn("Could not decode saved conversation, starting fresh", "error", err)
		} else if estimatedTokens > resumeTokenBudget {
			log.Warn("Saved conversation too large to resume safely, starting fresh",
				"estimated_tokens", estimatedTokens)
		} else {
			log.Info("Resuming from saved conversation",
				"messages", len(restored), "estimated_tokens", estimatedTokens)
			return restored
		}
	}

	return []models.Message{
		models.UserMessage(l.prompts.InitialMessage(st.Role, jb.TaskDescription, jb.FailingTest, prior)),
	}
}

// persistHistory saves the transcript for crash recovery. Failures are
// logged and swallowed: a missed save only costs a retried step one extra
// turn of rework.
func (l *Loop) persistHistory(ctx context.Context, stepID string, history []models.Message, log *slog.Logger) {
	encoded, err := json.Marshal(history)
	if err != nil {
		log.Warn("Could not encode conversation history", "error", err)
		return
	}
	if err := l.jobs.SaveConversationHistory(ctx, stepID, string(encoded)); err != nil {
		log.Warn("Could not persist conversation history", "error", err)
	}
}
