package contract

import (
	"context"
	"time"

	"golexai-be/internal/entity"
	"golexai-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MetricAggregate struct {
	MetricType string
	Count      int64
	Total      float64
}

type UsageMetricRepository interface {
	Create(ctx context.Context, metric *entity.UsageMetric) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UsageMetric, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// AggregateSince groups a user's metrics recorded at or after since
	// by metric type.
	AggregateSince(ctx context.Context, userId uuid.UUID, since time.Time) ([]MetricAggregate, error)
}
