package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Document struct {
	Id               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId           uuid.UUID  `gorm:"type:uuid;not null;index"`
	CaseId           *uuid.UUID `gorm:"type:uuid;index"`
	Title            string     `gorm:"type:varchar(255);not null"`
	FileType         string     `gorm:"type:varchar(50);not null;default:'other'"`
	OriginalFilename string     `gorm:"type:varchar(255)"`
	MimeType         string     `gorm:"type:varchar(100)"`
	FileSize         int64      `gorm:"default:0"`
	FilePath         string     `gorm:"type:text"`
	ContentText      string     `gorm:"type:text"`
	Analysis         string     `gorm:"type:text"`
	IsAIGenerated    bool       `gorm:"default:false"`
	Priority         string     `gorm:"type:varchar(20);not null;default:'medium'"`
	Status           string     `gorm:"type:varchar(20);not null;default:'draft'"`
	Tags             datatypes.JSON
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`

	Case *Case `gorm:"foreignKey:CaseId;constraint:OnDelete:SET NULL"`
}

func (Document) TableName() string {
	return "documents"
}
