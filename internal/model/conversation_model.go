package model

import (
	"time"

	"github.com/google/uuid"
)

type Conversation struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID  `gorm:"type:uuid;not null;index"`
	CaseId    *uuid.UUID `gorm:"type:uuid;index"`
	Title     string     `gorm:"type:varchar(255);not null"`
	Language  string     `gorm:"type:varchar(10);not null;default:'en'"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
}

func (Conversation) TableName() string {
	return "conversations"
}

type Message struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ConversationId uuid.UUID  `gorm:"type:uuid;not null;index:idx_messages_conversation_created"`
	DocumentId     *uuid.UUID `gorm:"type:uuid"`
	Role           string     `gorm:"type:varchar(20);not null"`
	Content        string     `gorm:"type:text;not null"`
	TokensUsed     int        `gorm:"default:0"`
	CreatedAt      time.Time  `gorm:"autoCreateTime;index:idx_messages_conversation_created"`

	Conversation *Conversation `gorm:"foreignKey:ConversationId;constraint:OnDelete:CASCADE"`
	Document     *Document     `gorm:"foreignKey:DocumentId;constraint:OnDelete:SET NULL"`
}

func (Message) TableName() string {
	return "messages"
}
