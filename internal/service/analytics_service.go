package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golexai-be/internal/dto"
	"golexai-be/internal/entity"
	"golexai-be/internal/pkg/logger"
	"golexai-be/internal/repository/specification"
	"golexai-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	summaryPeriodDays = 30
	summaryCacheTTL   = time.Minute
	auditLogPageSize  = 100
)

type IAnalyticsService interface {
	Summary(ctx context.Context, userId uuid.UUID) (*dto.AnalyticsSummaryResponse, error)
	AuditLogs(ctx context.Context, userId uuid.UUID) ([]*dto.AuditLogResponse, error)
}

type analyticsService struct {
	uowFactory unitofwork.RepositoryFactory
	redis      *redis.Client
	log        logger.ILogger
}

func NewAnalyticsService(uowFactory unitofwork.RepositoryFactory, redisClient *redis.Client, log logger.ILogger) IAnalyticsService {
	return &analyticsService{
		uowFactory: uowFactory,
		redis:      redisClient,
		log:        log,
	}
}

func summaryCacheKey(userId uuid.UUID) string {
	return fmt.Sprintf("analytics:summary:%s", userId)
}

// Summary aggregates the last 30 days of activity. Cache failures fall
// through to the database, they never fail the request.
func (s *analyticsService) Summary(ctx context.Context, userId uuid.UUID) (*dto.AnalyticsSummaryResponse, error) {
	if s.redis != nil {
		cached, err := s.redis.Get(ctx, summaryCacheKey(userId)).Bytes()
		if err == nil {
			var summary dto.AnalyticsSummaryResponse
			if err := json.Unmarshal(cached, &summary); err == nil {
				return &summary, nil
			}
		} else if err != redis.Nil {
			s.log.Warn("analytics", "summary cache read failed", map[string]interface{}{"error": err.Error()})
		}
	}

	summary, err := s.buildSummary(ctx, userId)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if payload, err := json.Marshal(summary); err == nil {
			if err := s.redis.Set(ctx, summaryCacheKey(userId), payload, summaryCacheTTL).Err(); err != nil {
				s.log.Warn("analytics", "summary cache write failed", map[string]interface{}{"error": err.Error()})
			}
		}
	}

	return summary, nil
}

func (s *analyticsService) buildSummary(ctx context.Context, userId uuid.UUID) (*dto.AnalyticsSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	since := time.Now().AddDate(0, 0, -summaryPeriodDays)

	docTotal, err := uow.DocumentRepository().Count(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	docUploaded, err := uow.DocumentRepository().Count(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.CreatedSince{Since: since},
	)
	if err != nil {
		return nil, err
	}

	caseTotal, err := uow.CaseRepository().Count(ctx, specification.ByLawyerID{LawyerID: userId})
	if err != nil {
		return nil, err
	}
	caseOpen, err := uow.CaseRepository().Count(ctx,
		specification.ByLawyerID{LawyerID: userId},
		specification.Filter("status", entity.CaseStatusOpen),
	)
	if err != nil {
		return nil, err
	}

	conversations, err := uow.ConversationRepository().Count(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.CreatedSince{Since: since},
	)
	if err != nil {
		return nil, err
	}

	aggregates, err := uow.UsageMetricRepository().AggregateSince(ctx, userId, since)
	if err != nil {
		return nil, err
	}
	aiUsage := make(map[string]*dto.MetricTotals, len(aggregates))
	for _, agg := range aggregates {
		aiUsage[agg.MetricType] = &dto.MetricTotals{
			Count: agg.Count,
			Total: agg.Total,
		}
	}

	return &dto.AnalyticsSummaryResponse{
		PeriodDays: summaryPeriodDays,
		Documents: &dto.DocumentStats{
			Total:    docTotal,
			Uploaded: docUploaded,
		},
		Cases: &dto.CaseStats{
			Total: caseTotal,
			Open:  caseOpen,
		},
		AIUsage:       aiUsage,
		Conversations: conversations,
		GeneratedAt:   time.Now(),
	}, nil
}

func (s *analyticsService) AuditLogs(ctx context.Context, userId uuid.UUID) ([]*dto.AuditLogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	logs, err := uow.AuditLogRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: auditLogPageSize},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.AuditLogResponse, 0, len(logs))
	for _, entry := range logs {
		responses = append(responses, auditLogToDTO(entry))
	}
	return responses, nil
}
