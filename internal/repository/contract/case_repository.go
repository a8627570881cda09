package contract

import (
	"context"

	"golexai-be/internal/entity"
	"golexai-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CaseRepository interface {
	Create(ctx context.Context, c *entity.Case) error
	Update(ctx context.Context, c *entity.Case) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllByLawyerId(ctx context.Context, lawyerId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Case, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Case, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
