package mapper

import (
	"golexai-be/internal/entity"
	"golexai-be/internal/model"
)

type PromptMapper struct{}

func NewPromptMapper() *PromptMapper {
	return &PromptMapper{}
}

func (m *PromptMapper) ToEntity(p *model.Prompt) *entity.Prompt {
	if p == nil {
		return nil
	}
	return &entity.Prompt{
		Id:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		PromptText:  p.PromptText,
		Version:     p.Version,
		IsActive:    p.IsActive,
		Language:    p.Language,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (m *PromptMapper) ToModel(p *entity.Prompt) *model.Prompt {
	if p == nil {
		return nil
	}
	return &model.Prompt{
		Id:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		PromptText:  p.PromptText,
		Version:     p.Version,
		IsActive:    p.IsActive,
		Language:    p.Language,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (m *PromptMapper) ToEntities(prompts []*model.Prompt) []*entity.Prompt {
	entities := make([]*entity.Prompt, len(prompts))
	for i, p := range prompts {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

func (m *PromptMapper) KnowledgeBaseEntryToEntity(e *model.KnowledgeBaseEntry) *entity.KnowledgeBaseEntry {
	if e == nil {
		return nil
	}
	return &entity.KnowledgeBaseEntry{
		Id:          e.Id,
		DocumentId:  e.DocumentId,
		Name:        e.Name,
		Description: e.Description,
		IsActive:    e.IsActive,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (m *PromptMapper) KnowledgeBaseEntryToModel(e *entity.KnowledgeBaseEntry) *model.KnowledgeBaseEntry {
	if e == nil {
		return nil
	}
	return &model.KnowledgeBaseEntry{
		Id:          e.Id,
		DocumentId:  e.DocumentId,
		Name:        e.Name,
		Description: e.Description,
		IsActive:    e.IsActive,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (m *PromptMapper) KnowledgeBaseEntriesToEntities(entries []*model.KnowledgeBaseEntry) []*entity.KnowledgeBaseEntry {
	entities := make([]*entity.KnowledgeBaseEntry, len(entries))
	for i, e := range entries {
		entities[i] = m.KnowledgeBaseEntryToEntity(e)
	}
	return entities
}
