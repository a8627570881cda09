package implementation

import (
	"context"
	"time"

	"golexai-be/internal/entity"
	"golexai-be/internal/mapper"
	"golexai-be/internal/model"
	"golexai-be/internal/repository/contract"
	"golexai-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UsageMetricRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AnalyticsMapper
}

func NewUsageMetricRepository(db *gorm.DB) contract.UsageMetricRepository {
	return &UsageMetricRepositoryImpl{
		db:     db,
		mapper: mapper.NewAnalyticsMapper(),
	}
}

func (r *UsageMetricRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *UsageMetricRepositoryImpl) Create(ctx context.Context, metric *entity.UsageMetric) error {
	m := r.mapper.UsageMetricToModel(metric)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*metric = *r.mapper.UsageMetricToEntity(m)
	return nil
}

func (r *UsageMetricRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UsageMetric, error) {
	var models []*model.UsageMetric
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.UsageMetric, len(models))
	for i, m := range models {
		entities[i] = r.mapper.UsageMetricToEntity(m)
	}
	return entities, nil
}

func (r *UsageMetricRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.UsageMetric{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UsageMetricRepositoryImpl) AggregateSince(ctx context.Context, userId uuid.UUID, since time.Time) ([]contract.MetricAggregate, error) {
	var rows []contract.MetricAggregate
	err := r.db.WithContext(ctx).
		Model(&model.UsageMetric{}).
		Select("metric_type, COUNT(*) AS count, COALESCE(SUM(value), 0) AS total").
		Where("user_id = ? AND created_at >= ?", userId, since).
		Group("metric_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
