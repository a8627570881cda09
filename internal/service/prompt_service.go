package service

import (
	"context"
	"time"

	"golexai-be/internal/dto"
	"golexai-be/internal/entity"
	"golexai-be/internal/pkg/logger"
	"golexai-be/internal/repository/specification"
	"golexai-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// OverrideInvalidator drops a cached prompt template after an admin change.
type OverrideInvalidator interface {
	Invalidate(name, language string)
}

type IPromptService interface {
	ListPrompts(ctx context.Context, language string) ([]*dto.PromptResponse, error)
	ListKnowledgeBase(ctx context.Context, userId uuid.UUID) ([]*dto.KnowledgeBaseEntryResponse, error)
	CreateKnowledgeBaseEntry(ctx context.Context, userId uuid.UUID, req *dto.CreateKnowledgeBaseEntryRequest) (*dto.KnowledgeBaseEntryResponse, error)
	UpdateKnowledgeBaseEntry(ctx context.Context, userId uuid.UUID, entryId uuid.UUID, req *dto.UpdateKnowledgeBaseEntryRequest) (*dto.KnowledgeBaseEntryResponse, error)
	DeleteKnowledgeBaseEntry(ctx context.Context, userId uuid.UUID, entryId uuid.UUID) error
}

type promptService struct {
	uowFactory  unitofwork.RepositoryFactory
	invalidator OverrideInvalidator
	log         logger.ILogger
}

func NewPromptService(uowFactory unitofwork.RepositoryFactory, invalidator OverrideInvalidator, log logger.ILogger) IPromptService {
	return &promptService{
		uowFactory:  uowFactory,
		invalidator: invalidator,
		log:         log,
	}
}

// ListPrompts exposes template metadata only. Template text stays
// server-side.
func (s *promptService) ListPrompts(ctx context.Context, language string) ([]*dto.PromptResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.ActiveOnly{},
		specification.OrderBy{Field: "name"},
	}
	if language != "" {
		specs = append(specs, specification.ByLanguage{Language: language})
	}

	prompts, err := uow.PromptRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.PromptResponse, 0, len(prompts))
	for _, p := range prompts {
		responses = append(responses, &dto.PromptResponse{
			Id:          p.Id,
			Name:        p.Name,
			Description: p.Description,
			Version:     p.Version,
			IsActive:    p.IsActive,
			Language:    p.Language,
		})
	}
	return responses, nil
}

func (s *promptService) ListKnowledgeBase(ctx context.Context, userId uuid.UUID) ([]*dto.KnowledgeBaseEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entries, err := uow.KnowledgeBaseRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return []*dto.KnowledgeBaseEntryResponse{}, nil
	}

	docIds := make([]uuid.UUID, 0, len(entries))
	for _, entry := range entries {
		docIds = append(docIds, entry.DocumentId)
	}
	docs, err := uow.DocumentRepository().FindAll(ctx,
		specification.ByIDs{IDs: docIds},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	owned := make(map[uuid.UUID]bool, len(docs))
	for _, doc := range docs {
		owned[doc.Id] = true
	}

	responses := make([]*dto.KnowledgeBaseEntryResponse, 0, len(entries))
	for _, entry := range entries {
		if !owned[entry.DocumentId] {
			continue
		}
		responses = append(responses, knowledgeBaseEntryToDTO(entry))
	}
	return responses, nil
}

func (s *promptService) CreateKnowledgeBaseEntry(ctx context.Context, userId uuid.UUID, req *dto.CreateKnowledgeBaseEntryRequest) (*dto.KnowledgeBaseEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.DocumentRepository().FindOne(ctx,
		specification.ByID{ID: req.DocumentId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, wrapErr(ErrNotFound, "document not found")
	}
	if doc.ContentText == "" {
		return nil, wrapErr(ErrValidation, "document has no extractable text for the knowledge base")
	}

	entry := &entity.KnowledgeBaseEntry{
		Id:          uuid.New(),
		DocumentId:  req.DocumentId,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := uow.KnowledgeBaseRepository().Create(ctx, entry); err != nil {
		return nil, err
	}

	return knowledgeBaseEntryToDTO(entry), nil
}

func (s *promptService) UpdateKnowledgeBaseEntry(ctx context.Context, userId uuid.UUID, entryId uuid.UUID, req *dto.UpdateKnowledgeBaseEntryRequest) (*dto.KnowledgeBaseEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry, err := s.findOwnedEntry(ctx, uow, userId, entryId)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		entry.Name = req.Name
	}
	if req.Description != "" {
		entry.Description = req.Description
	}
	if req.IsActive != nil {
		entry.IsActive = *req.IsActive
	}
	entry.UpdatedAt = time.Now()

	if err := uow.KnowledgeBaseRepository().Update(ctx, entry); err != nil {
		return nil, err
	}

	return knowledgeBaseEntryToDTO(entry), nil
}

func (s *promptService) DeleteKnowledgeBaseEntry(ctx context.Context, userId uuid.UUID, entryId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.findOwnedEntry(ctx, uow, userId, entryId); err != nil {
		return err
	}

	return uow.KnowledgeBaseRepository().Delete(ctx, entryId)
}

// findOwnedEntry resolves an entry whose backing document belongs to the
// user. Entries over other users' documents are invisible.
func (s *promptService) findOwnedEntry(ctx context.Context, uow unitofwork.UnitOfWork, userId, entryId uuid.UUID) (*entity.KnowledgeBaseEntry, error) {
	entry, err := uow.KnowledgeBaseRepository().FindOne(ctx, specification.ByID{ID: entryId})
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, wrapErr(ErrNotFound, "knowledge base entry not found")
	}

	doc, err := uow.DocumentRepository().FindOne(ctx,
		specification.ByID{ID: entry.DocumentId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, wrapErr(ErrNotFound, "knowledge base entry not found")
	}

	return entry, nil
}

func knowledgeBaseEntryToDTO(entry *entity.KnowledgeBaseEntry) *dto.KnowledgeBaseEntryResponse {
	return &dto.KnowledgeBaseEntryResponse{
		Id:          entry.Id,
		DocumentId:  entry.DocumentId,
		Name:        entry.Name,
		Description: entry.Description,
		IsActive:    entry.IsActive,
		CreatedAt:   entry.CreatedAt,
	}
}
