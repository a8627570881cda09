package dto

import (
	"time"

	"github.com/google/uuid"
)

type AnalyticsSummaryResponse struct {
	PeriodDays    int                      `json:"period_days"`
	Documents     *DocumentStats           `json:"documents"`
	Cases         *CaseStats               `json:"cases"`
	AIUsage       map[string]*MetricTotals `json:"ai_usage"`
	Conversations int64                    `json:"conversations"`
	GeneratedAt   time.Time                `json:"generated_at"`
}

type DocumentStats struct {
	Total    int64 `json:"total"`
	Uploaded int64 `json:"uploaded_in_period"`
}

type CaseStats struct {
	Total int64 `json:"total"`
	Open  int64 `json:"open"`
}

type MetricTotals struct {
	Count int64   `json:"count"`
	Total float64 `json:"total"`
}

type AuditLogResponse struct {
	Id           uuid.UUID `json:"id"`
	Action       string    `json:"action"`
	ResourceType string    `json:"resource_type,omitempty"`
	ResourceId   string    `json:"resource_id,omitempty"`
	IpAddress    string    `json:"ip_address,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
