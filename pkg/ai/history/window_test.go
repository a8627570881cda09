package history

import (
	"testing"

	"golexai-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestWindowReversesToOldestFirst(t *testing.T) {
	// FindRecent hands rows back newest first
	recent := []*entity.Message{
		{Role: entity.MessageRoleAssistant, Content: "third"},
		{Role: entity.MessageRoleUser, Content: "second"},
		{Role: entity.MessageRoleAssistant, Content: "first"},
	}

	messages := Window(recent)

	assert.Len(t, messages, 3)
	assert.Equal(t, "first", messages[0].Content)
	assert.Equal(t, string(entity.MessageRoleAssistant), messages[0].Role)
	assert.Equal(t, "second", messages[1].Content)
	assert.Equal(t, string(entity.MessageRoleUser), messages[1].Role)
	assert.Equal(t, "third", messages[2].Content)
}

func TestWindowEmpty(t *testing.T) {
	messages := Window(nil)

	assert.NotNil(t, messages)
	assert.Empty(t, messages)
}
