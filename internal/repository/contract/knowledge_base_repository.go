package contract

import (
	"context"

	"golexai-be/internal/entity"
	"golexai-be/internal/repository/specification"

	"github.com/google/uuid"
)

type KnowledgeBaseRepository interface {
	Create(ctx context.Context, entry *entity.KnowledgeBaseEntry) error
	Update(ctx context.Context, entry *entity.KnowledgeBaseEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeBaseEntry, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeBaseEntry, error)

	// FindActiveForUser returns active entries whose backing document is
	// owned by the user, newest first, capped at limit.
	FindActiveForUser(ctx context.Context, userId uuid.UUID, limit int) ([]*entity.KnowledgeBaseEntry, error)
}
