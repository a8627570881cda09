package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendChatRequest struct {
	Message          string     `json:"message" validate:"required"`
	ConversationId   *uuid.UUID `json:"conversation_id"`
	Persona          string     `json:"persona" validate:"omitempty,oneof=commercial personal"`
	DocumentId       *uuid.UUID `json:"document_id"`
	CaseId           *uuid.UUID `json:"case_id"`
	UseKnowledgeBase bool       `json:"use_knowledge_base"`
}

type SendChatResponse struct {
	ConversationId uuid.UUID        `json:"conversation_id"`
	Sent           *MessageResponse `json:"sent"`
	Reply          *MessageResponse `json:"reply"`
}

type RegenerateRequest struct {
	ConversationId         uuid.UUID `json:"conversation_id" validate:"required"`
	AdditionalInstructions string    `json:"additional_instructions"`
}

type GenerateDocumentRequest struct {
	DocumentType string     `json:"document_type" validate:"required,min=1,max=50"`
	Context      string     `json:"context" validate:"required"`
	CaseId       *uuid.UUID `json:"case_id"`
}

type GenerateDocumentResponse struct {
	DocumentId uuid.UUID `json:"document_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	TokensUsed int       `json:"tokens_used"`
}

type MessageResponse struct {
	Id         uuid.UUID  `json:"id"`
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	DocumentId *uuid.UUID `json:"document_id,omitempty"`
	TokensUsed int        `json:"tokens_used,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type ConversationResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Language  string     `json:"language"`
	CaseId    *uuid.UUID `json:"case_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type PromptResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Version     int       `json:"version"`
	IsActive    bool      `json:"is_active"`
	Language    string    `json:"language"`
}

type CreateKnowledgeBaseEntryRequest struct {
	DocumentId  uuid.UUID `json:"document_id" validate:"required"`
	Name        string    `json:"name" validate:"required,min=1,max=255"`
	Description string    `json:"description"`
}

type UpdateKnowledgeBaseEntryRequest struct {
	Name        string `json:"name" validate:"omitempty,min=1,max=255"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

type KnowledgeBaseEntryResponse struct {
	Id          uuid.UUID `json:"id"`
	DocumentId  uuid.UUID `json:"document_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
