package entity

import (
	"time"

	"github.com/google/uuid"
)

type CaseStatus string

const (
	CaseStatusOpen       CaseStatus = "open"
	CaseStatusInProgress CaseStatus = "in_progress"
	CaseStatusClosed     CaseStatus = "closed"
)

type Case struct {
	Id          uuid.UUID
	LawyerId    uuid.UUID
	Title       string
	Description string
	Priority    Priority
	Status      CaseStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
