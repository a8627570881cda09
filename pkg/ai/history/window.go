package history

import (
	"context"

	"golexai-be/internal/entity"
	"golexai-be/internal/repository/contract"
	"golexai-be/pkg/llm"

	"github.com/google/uuid"
)

// WindowSize bounds how many prior messages accompany a chat turn.
const WindowSize = 10

// Loader reads the recent history of a conversation for LLM context.
type Loader struct {
	messages contract.MessageRepository
}

func NewLoader(messages contract.MessageRepository) *Loader {
	return &Loader{
		messages: messages,
	}
}

// Load returns up to WindowSize messages of the conversation oldest-first,
// excluding the in-flight message identified by excludeId.
func (l *Loader) Load(ctx context.Context, conversationId uuid.UUID, excludeId *uuid.UUID) ([]llm.Message, error) {
	recent, err := l.messages.FindRecent(ctx, conversationId, excludeId, WindowSize)
	if err != nil {
		return nil, err
	}
	return Window(recent), nil
}

// Window converts newest-first rows into the oldest-first provider format.
func Window(recent []*entity.Message) []llm.Message {
	messages := make([]llm.Message, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		msg := recent[i]
		messages = append(messages, llm.Message{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}
	return messages
}
