package entity

import (
	"time"

	"github.com/google/uuid"
)

type Prompt struct {
	Id          uuid.UUID
	Name        string
	Description string
	PromptText  string
	Version     int
	IsActive    bool
	Language    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type KnowledgeBaseEntry struct {
	Id          uuid.UUID
	DocumentId  uuid.UUID
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
