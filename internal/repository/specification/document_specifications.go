package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByCaseID struct {
	CaseID uuid.UUID
}

func (s ByCaseID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("case_id = ?", s.CaseID)
}

type ByLawyerID struct {
	LawyerID uuid.UUID
}

func (s ByLawyerID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("lawyer_id = ?", s.LawyerID)
}
