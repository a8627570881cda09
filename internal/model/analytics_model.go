package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type UsageMetric struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;index:idx_usage_metrics_user_created"`
	MetricType string    `gorm:"type:varchar(50);not null;index"`
	Value      float64   `gorm:"not null;default:0"`
	Metadata   datatypes.JSON
	CreatedAt  time.Time `gorm:"autoCreateTime;index:idx_usage_metrics_user_created"`
}

func (UsageMetric) TableName() string {
	return "usage_metrics"
}

type AuditLog struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       *uuid.UUID `gorm:"type:uuid;index"`
	Action       string     `gorm:"type:varchar(50);not null"`
	ResourceType string     `gorm:"type:varchar(100)"`
	ResourceId   string     `gorm:"type:varchar(100)"`
	IpAddress    string     `gorm:"type:varchar(45)"`
	UserAgent    string     `gorm:"type:text"`
	Metadata     datatypes.JSON
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
