package unitofwork

import (
	"context"

	"golexai-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	DocumentRepository() contract.DocumentRepository
	CaseRepository() contract.CaseRepository
	ConversationRepository() contract.ConversationRepository
	MessageRepository() contract.MessageRepository
	PromptRepository() contract.PromptRepository
	KnowledgeBaseRepository() contract.KnowledgeBaseRepository
	UsageMetricRepository() contract.UsageMetricRepository
	AuditLogRepository() contract.AuditLogRepository
}
