package model

import (
	"time"

	"github.com/google/uuid"
)

type Case struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LawyerId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Priority    string    `gorm:"type:varchar(20);not null;default:'medium'"`
	Status      string    `gorm:"type:varchar(20);not null;default:'open'"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Case) TableName() string {
	return "cases"
}
