package implementation

import (
	"context"
	"errors"

	"golexai-be/internal/entity"
	"golexai-be/internal/mapper"
	"golexai-be/internal/model"
	"golexai-be/internal/repository/contract"
	"golexai-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type KnowledgeBaseRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PromptMapper
}

func NewKnowledgeBaseRepository(db *gorm.DB) contract.KnowledgeBaseRepository {
	return &KnowledgeBaseRepositoryImpl{
		db:     db,
		mapper: mapper.NewPromptMapper(),
	}
}

func (r *KnowledgeBaseRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *KnowledgeBaseRepositoryImpl) Create(ctx context.Context, entry *entity.KnowledgeBaseEntry) error {
	m := r.mapper.KnowledgeBaseEntryToModel(entry)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*entry = *r.mapper.KnowledgeBaseEntryToEntity(m)
	return nil
}

func (r *KnowledgeBaseRepositoryImpl) Update(ctx context.Context, entry *entity.KnowledgeBaseEntry) error {
	m := r.mapper.KnowledgeBaseEntryToModel(entry)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*entry = *r.mapper.KnowledgeBaseEntryToEntity(m)
	return nil
}

func (r *KnowledgeBaseRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.KnowledgeBaseEntry{}, id).Error
}

func (r *KnowledgeBaseRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeBaseEntry, error) {
	var m model.KnowledgeBaseEntry
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.KnowledgeBaseEntryToEntity(&m), nil
}

func (r *KnowledgeBaseRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeBaseEntry, error) {
	var models []*model.KnowledgeBaseEntry
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.KnowledgeBaseEntriesToEntities(models), nil
}

func (r *KnowledgeBaseRepositoryImpl) FindActiveForUser(ctx context.Context, userId uuid.UUID, limit int) ([]*entity.KnowledgeBaseEntry, error) {
	var models []*model.KnowledgeBaseEntry
	err := r.db.WithContext(ctx).
		Joins("JOIN documents ON documents.id = knowledge_base_entries.document_id").
		Where("knowledge_base_entries.is_active = ? AND documents.user_id = ?", true, userId).
		Order("knowledge_base_entries.created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.KnowledgeBaseEntriesToEntities(models), nil
}
