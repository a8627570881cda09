package mapper

import (
	"encoding/json"

	"golexai-be/internal/entity"
	"golexai-be/internal/model"

	"gorm.io/datatypes"
)

type AnalyticsMapper struct{}

func NewAnalyticsMapper() *AnalyticsMapper {
	return &AnalyticsMapper{}
}

func (m *AnalyticsMapper) UsageMetricToEntity(u *model.UsageMetric) *entity.UsageMetric {
	if u == nil {
		return nil
	}

	var metadata map[string]any
	if len(u.Metadata) > 0 {
		_ = json.Unmarshal(u.Metadata, &metadata)
	}

	return &entity.UsageMetric{
		Id:         u.Id,
		UserId:     u.UserId,
		MetricType: entity.MetricType(u.MetricType),
		Value:      u.Value,
		Metadata:   metadata,
		CreatedAt:  u.CreatedAt,
	}
}

func (m *AnalyticsMapper) UsageMetricToModel(u *entity.UsageMetric) *model.UsageMetric {
	if u == nil {
		return nil
	}

	var metadata datatypes.JSON
	if u.Metadata != nil {
		raw, err := json.Marshal(u.Metadata)
		if err == nil {
			metadata = raw
		}
	}

	return &model.UsageMetric{
		Id:         u.Id,
		UserId:     u.UserId,
		MetricType: string(u.MetricType),
		Value:      u.Value,
		Metadata:   metadata,
		CreatedAt:  u.CreatedAt,
	}
}

func (m *AnalyticsMapper) AuditLogToEntity(a *model.AuditLog) *entity.AuditLog {
	if a == nil {
		return nil
	}

	var metadata map[string]any
	if len(a.Metadata) > 0 {
		_ = json.Unmarshal(a.Metadata, &metadata)
	}

	return &entity.AuditLog{
		Id:           a.Id,
		UserId:       a.UserId,
		Action:       entity.AuditAction(a.Action),
		ResourceType: a.ResourceType,
		ResourceId:   a.ResourceId,
		IpAddress:    a.IpAddress,
		UserAgent:    a.UserAgent,
		Metadata:     metadata,
		CreatedAt:    a.CreatedAt,
	}
}

func (m *AnalyticsMapper) AuditLogToModel(a *entity.AuditLog) *model.AuditLog {
	if a == nil {
		return nil
	}

	var metadata datatypes.JSON
	if a.Metadata != nil {
		raw, err := json.Marshal(a.Metadata)
		if err == nil {
			metadata = raw
		}
	}

	return &model.AuditLog{
		Id:           a.Id,
		UserId:       a.UserId,
		Action:       string(a.Action),
		ResourceType: a.ResourceType,
		ResourceId:   a.ResourceId,
		IpAddress:    a.IpAddress,
		UserAgent:    a.UserAgent,
		Metadata:     metadata,
		CreatedAt:    a.CreatedAt,
	}
}

func (m *AnalyticsMapper) AuditLogsToEntities(logs []*model.AuditLog) []*entity.AuditLog {
	entities := make([]*entity.AuditLog, len(logs))
	for i, a := range logs {
		entities[i] = m.AuditLogToEntity(a)
	}
	return entities
}
