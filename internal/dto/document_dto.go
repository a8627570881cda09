package dto

import (
	"time"

	"github.com/google/uuid"
)

type UploadDocumentRequest struct {
	Title    string     `json:"title" validate:"required,min=1,max=255"`
	FileType string     `json:"file_type" validate:"omitempty,oneof=pleading opinion contract ai_generated other"`
	CaseId   *uuid.UUID `json:"case_id"`
	Priority string     `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Tags     []string   `json:"tags"`
}

type UpdateDocumentRequest struct {
	Title    string     `json:"title" validate:"omitempty,min=1,max=255"`
	FileType string     `json:"file_type" validate:"omitempty,oneof=pleading opinion contract ai_generated other"`
	CaseId   *uuid.UUID `json:"case_id"`
	Priority string     `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Status   string     `json:"status" validate:"omitempty,oneof=draft review final archived"`
	Tags     []string   `json:"tags"`
}

type DocumentResponse struct {
	Id               uuid.UUID  `json:"id"`
	Title            string     `json:"title"`
	FileType         string     `json:"file_type"`
	OriginalFilename string     `json:"original_filename"`
	MimeType         string     `json:"mime_type"`
	FileSize         int64      `json:"file_size"`
	CaseId           *uuid.UUID `json:"case_id,omitempty"`
	Analysis         string     `json:"analysis,omitempty"`
	IsAIGenerated    bool       `json:"is_ai_generated"`
	Priority         string     `json:"priority"`
	Status           string     `json:"status"`
	Tags             []string   `json:"tags,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type AnalyzeDocumentResponse struct {
	DocumentId uuid.UUID `json:"document_id"`
	Analysis   string    `json:"analysis"`
	TokensUsed int       `json:"tokens_used"`
}
