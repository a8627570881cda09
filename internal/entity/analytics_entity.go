package entity

import (
	"time"

	"github.com/google/uuid"
)

type MetricType string
type AuditAction string

const (
	MetricDocumentUploaded    MetricType = "document_uploaded"
	MetricDocumentAnalyzed    MetricType = "document_analyzed"
	MetricDocumentGenerated   MetricType = "document_generated"
	MetricAIQuery             MetricType = "ai_query"
	MetricConversationStarted MetricType = "conversation_started"

	AuditLogin          AuditAction = "login"
	AuditLogout         AuditAction = "logout"
	AuditDocumentAccess AuditAction = "document_access"
	AuditDocumentDelete AuditAction = "document_delete"
	AuditDataExport     AuditAction = "data_export"
	AuditDataDelete     AuditAction = "data_delete"
	AuditSettingsChange AuditAction = "settings_change"
)

type UsageMetric struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	MetricType MetricType
	Value      float64
	Metadata   map[string]any
	CreatedAt  time.Time
}

type AuditLog struct {
	Id           uuid.UUID
	UserId       *uuid.UUID
	Action       AuditAction
	ResourceType string
	ResourceId   string
	IpAddress    string
	UserAgent    string
	Metadata     map[string]any
	CreatedAt    time.Time
}
