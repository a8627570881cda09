package entity

import (
	"time"

	"github.com/google/uuid"
)

type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
	MessageRoleSystem    MessageRole = "system"
)

type Conversation struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	CaseId    *uuid.UUID
	Title     string
	Language  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Message struct {
	Id             uuid.UUID
	ConversationId uuid.UUID
	DocumentId     *uuid.UUID
	Role           MessageRole
	Content        string
	TokensUsed     int
	CreatedAt      time.Time
}
