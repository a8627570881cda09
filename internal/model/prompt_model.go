package model

import (
	"time"

	"github.com/google/uuid"
)

type Prompt struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(100);not null;index:idx_prompts_name_language"`
	Description string    `gorm:"type:text"`
	PromptText  string    `gorm:"type:text;not null"`
	Version     int       `gorm:"not null;default:1"`
	IsActive    bool      `gorm:"default:true"`
	Language    string    `gorm:"type:varchar(10);not null;default:'en';index:idx_prompts_name_language"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Prompt) TableName() string {
	return "prompts"
}

type KnowledgeBaseEntry struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DocumentId  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	IsActive    bool      `gorm:"default:true"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`

	Document *Document `gorm:"foreignKey:DocumentId;constraint:OnDelete:CASCADE"`
}

func (KnowledgeBaseEntry) TableName() string {
	return "knowledge_base_entries"
}
