package dto

import "time"

type UpdateProfileRequest struct {
	FullName string `json:"full_name" validate:"omitempty,min=2"`
	Language string `json:"language" validate:"omitempty,oneof=en pl"`
}

type ExportDataResponse struct {
	Profile       *UserProfile          `json:"profile"`
	Documents     []*DocumentResponse   `json:"documents"`
	Cases         []*CaseResponse       `json:"cases"`
	Conversations []*ConversationExport `json:"conversations"`
	AuditTrail    []*AuditLogResponse   `json:"audit_trail"`
	ExportedAt    time.Time             `json:"exported_at"`
}

type ConversationExport struct {
	Conversation *ConversationResponse `json:"conversation"`
	Messages     []*MessageResponse    `json:"messages"`
}

type DeleteDataRequest struct {
	Confirmation string `json:"confirmation" validate:"required"`
}
