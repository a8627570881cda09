package specification

import "gorm.io/gorm"

type ByPromptName struct {
	Name     string
	Language string
}

func (s ByPromptName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ? AND language = ?", s.Name, s.Language)
}

type ByLanguage struct {
	Language string
}

func (s ByLanguage) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("language = ?", s.Language)
}

type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}
