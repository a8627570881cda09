package entity

import (
	"time"

	"github.com/google/uuid"
)

type DocumentType string
type DocumentStatus string
type Priority string

const (
	DocumentTypePleading    DocumentType = "pleading"
	DocumentTypeOpinion     DocumentType = "opinion"
	DocumentTypeContract    DocumentType = "contract"
	DocumentTypeAIGenerated DocumentType = "ai_generated"
	DocumentTypeOther       DocumentType = "other"

	DocumentStatusDraft    DocumentStatus = "draft"
	DocumentStatusReview   DocumentStatus = "review"
	DocumentStatusFinal    DocumentStatus = "final"
	DocumentStatusArchived DocumentStatus = "archived"

	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

type Document struct {
	Id               uuid.UUID
	UserId           uuid.UUID
	CaseId           *uuid.UUID
	Title            string
	FileType         DocumentType
	OriginalFilename string
	MimeType         string
	FileSize         int64
	FilePath         string
	ContentText      string
	Analysis         string
	IsAIGenerated    bool
	Priority         Priority
	Status           DocumentStatus
	Tags             []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
