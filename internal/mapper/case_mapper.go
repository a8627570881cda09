package mapper

import (
	"golexai-be/internal/entity"
	"golexai-be/internal/model"
)

type CaseMapper struct{}

func NewCaseMapper() *CaseMapper {
	return &CaseMapper{}
}

func (m *CaseMapper) ToEntity(c *model.Case) *entity.Case {
	if c == nil {
		return nil
	}
	return &entity.Case{
		Id:          c.Id,
		LawyerId:    c.LawyerId,
		Title:       c.Title,
		Description: c.Description,
		Priority:    entity.Priority(c.Priority),
		Status:      entity.CaseStatus(c.Status),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (m *CaseMapper) ToModel(c *entity.Case) *model.Case {
	if c == nil {
		return nil
	}
	return &model.Case{
		Id:          c.Id,
		LawyerId:    c.LawyerId,
		Title:       c.Title,
		Description: c.Description,
		Priority:    string(c.Priority),
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (m *CaseMapper) ToEntities(cases []*model.Case) []*entity.Case {
	entities := make([]*entity.Case, len(cases))
	for i, c := range cases {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
