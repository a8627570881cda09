package mapper

import (
	"encoding/json"

	"golexai-be/internal/entity"
	"golexai-be/internal/model"

	"gorm.io/datatypes"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

func (m *DocumentMapper) ToEntity(d *model.Document) *entity.Document {
	if d == nil {
		return nil
	}

	var tags []string
	if len(d.Tags) > 0 {
		_ = json.Unmarshal(d.Tags, &tags)
	}

	return &entity.Document{
		Id:               d.Id,
		UserId:           d.UserId,
		CaseId:           d.CaseId,
		Title:            d.Title,
		FileType:         entity.DocumentType(d.FileType),
		OriginalFilename: d.OriginalFilename,
		MimeType:         d.MimeType,
		FileSize:         d.FileSize,
		FilePath:         d.FilePath,
		ContentText:      d.ContentText,
		Analysis:         d.Analysis,
		IsAIGenerated:    d.IsAIGenerated,
		Priority:         entity.Priority(d.Priority),
		Status:           entity.DocumentStatus(d.Status),
		Tags:             tags,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func (m *DocumentMapper) ToModel(d *entity.Document) *model.Document {
	if d == nil {
		return nil
	}

	var tags datatypes.JSON
	if d.Tags != nil {
		raw, err := json.Marshal(d.Tags)
		if err == nil {
			tags = raw
		}
	}

	return &model.Document{
		Id:               d.Id,
		UserId:           d.UserId,
		CaseId:           d.CaseId,
		Title:            d.Title,
		FileType:         string(d.FileType),
		OriginalFilename: d.OriginalFilename,
		MimeType:         d.MimeType,
		FileSize:         d.FileSize,
		FilePath:         d.FilePath,
		ContentText:      d.ContentText,
		Analysis:         d.Analysis,
		IsAIGenerated:    d.IsAIGenerated,
		Priority:         string(d.Priority),
		Status:           string(d.Status),
		Tags:             tags,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func (m *DocumentMapper) ToEntities(docs []*model.Document) []*entity.Document {
	entities := make([]*entity.Document, len(docs))
	for i, d := range docs {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
