package service

import (
	"context"

	"golexai-be/internal/dto"
	"golexai-be/internal/entity"
	"golexai-be/internal/pkg/logger"
	"golexai-be/internal/repository/specification"
	"golexai-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IConversationService interface {
	List(ctx context.Context, userId uuid.UUID) ([]*dto.ConversationResponse, error)
	Show(ctx context.Context, userId uuid.UUID, conversationId uuid.UUID) (*dto.ConversationResponse, error)
	Messages(ctx context.Context, userId uuid.UUID, conversationId uuid.UUID) ([]*dto.MessageResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, conversationId uuid.UUID) error
}

type conversationService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewConversationService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IConversationService {
	return &conversationService{
		uowFactory: uowFactory,
		log:        log,
	}
}

func (s *conversationService) List(ctx context.Context, userId uuid.UUID) ([]*dto.ConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversations, err := uow.ConversationRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ConversationResponse, 0, len(conversations))
	for _, conv := range conversations {
		responses = append(responses, conversationToDTO(conv))
	}
	return responses, nil
}

func (s *conversationService) Show(ctx context.Context, userId uuid.UUID, conversationId uuid.UUID) (*dto.ConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversation, err := s.findOwnedConversation(ctx, uow, userId, conversationId)
	if err != nil {
		return nil, err
	}

	return conversationToDTO(conversation), nil
}

// Messages returns the full transcript oldest first.
func (s *conversationService) Messages(ctx context.Context, userId uuid.UUID, conversationId uuid.UUID) ([]*dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.findOwnedConversation(ctx, uow, userId, conversationId); err != nil {
		return nil, err
	}

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.ByConversationID{ConversationID: conversationId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.MessageResponse, 0, len(messages))
	for _, msg := range messages {
		responses = append(responses, messageToDTO(msg))
	}
	return responses, nil
}

// Delete removes the conversation and its messages in one transaction.
func (s *conversationService) Delete(ctx context.Context, userId uuid.UUID, conversationId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.findOwnedConversation(ctx, uow, userId, conversationId); err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.MessageRepository().DeleteByConversationId(ctx, conversationId); err != nil {
		return err
	}

	if err := uow.ConversationRepository().Delete(ctx, conversationId); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *conversationService) findOwnedConversation(ctx context.Context, uow unitofwork.UnitOfWork, userId, conversationId uuid.UUID) (*entity.Conversation, error) {
	conversation, err := uow.ConversationRepository().FindOne(ctx,
		specification.ByID{ID: conversationId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, wrapErr(ErrNotFound, "conversation not found")
	}
	return conversation, nil
}

func conversationToDTO(conv *entity.Conversation) *dto.ConversationResponse {
	return &dto.ConversationResponse{
		Id:        conv.Id,
		Title:     conv.Title,
		Language:  conv.Language,
		CaseId:    conv.CaseId,
		CreatedAt: conv.CreatedAt,
		UpdatedAt: conv.UpdatedAt,
	}
}
