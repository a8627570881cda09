package service

import (
	"context"
	"time"

	"golexai-be/internal/dto"
	"golexai-be/internal/entity"
	"golexai-be/internal/pkg/logger"
	"golexai-be/internal/repository/specification"
	"golexai-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// deleteConfirmationPhrase guards the GDPR wipe endpoint against
// accidental calls.
const deleteConfirmationPhrase = "DELETE_ALL_MY_DATA"

type IUserService interface {
	Me(ctx context.Context, userId uuid.UUID) (*dto.UserProfile, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest, ipAddress string) (*dto.UserProfile, error)
	ExportData(ctx context.Context, userId uuid.UUID, ipAddress string) (*dto.ExportDataResponse, error)
	DeleteData(ctx context.Context, userId uuid.UUID, req *dto.DeleteDataRequest, ipAddress string) error
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IUserService {
	return &userService{
		uowFactory: uowFactory,
		log:        log,
	}
}

func (s *userService) Me(ctx context.Context, userId uuid.UUID) (*dto.UserProfile, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := s.findUser(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	return userToProfile(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest, ipAddress string) (*dto.UserProfile, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := s.findUser(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Language != "" {
		user.Language = req.Language
	}
	user.UpdatedAt = time.Now()

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	s.writeAudit(ctx, uow, userId, entity.AuditSettingsChange, ipAddress, nil)

	return userToProfile(user), nil
}

// ExportData assembles the user's complete footprint for a GDPR data
// portability request.
func (s *userService) ExportData(ctx context.Context, userId uuid.UUID, ipAddress string) (*dto.ExportDataResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := s.findUser(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	docs, err := uow.DocumentRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}
	docResponses := make([]*dto.DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		docResponses = append(docResponses, documentToDTO(doc))
	}

	cases, err := uow.CaseRepository().FindAll(ctx,
		specification.ByLawyerID{LawyerID: userId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}
	caseResponses := make([]*dto.CaseResponse, 0, len(cases))
	for _, c := range cases {
		caseResponses = append(caseResponses, caseToDTO(c))
	}

	conversations, err := uow.ConversationRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}
	conversationExports := make([]*dto.ConversationExport, 0, len(conversations))
	for _, conv := range conversations {
		messages, err := uow.MessageRepository().FindAll(ctx,
			specification.ByConversationID{ConversationID: conv.Id},
			specification.OrderBy{Field: "created_at"},
		)
		if err != nil {
			return nil, err
		}
		messageResponses := make([]*dto.MessageResponse, 0, len(messages))
		for _, msg := range messages {
			messageResponses = append(messageResponses, messageToDTO(msg))
		}
		conversationExports = append(conversationExports, &dto.ConversationExport{
			Conversation: conversationToDTO(conv),
			Messages:     messageResponses,
		})
	}

	auditLogs, err := uow.AuditLogRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	auditResponses := make([]*dto.AuditLogResponse, 0, len(auditLogs))
	for _, entry := range auditLogs {
		auditResponses = append(auditResponses, auditLogToDTO(entry))
	}

	s.writeAudit(ctx, uow, userId, entity.AuditDataExport, ipAddress, nil)

	return &dto.ExportDataResponse{
		Profile:       userToProfile(user),
		Documents:     docResponses,
		Cases:         caseResponses,
		Conversations: conversationExports,
		AuditTrail:    auditResponses,
		ExportedAt:    time.Now(),
	}, nil
}

// DeleteData erases the user's content in dependency order inside one
// transaction, then records the wipe. The account row itself survives.
func (s *userService) DeleteData(ctx context.Context, userId uuid.UUID, req *dto.DeleteDataRequest, ipAddress string) error {
	if req.Confirmation != deleteConfirmationPhrase {
		return wrapErr(ErrValidation, "confirmation phrase does not match")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.findUser(ctx, uow, userId); err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.MessageRepository().DeleteAllByUserId(ctx, userId); err != nil {
		return err
	}
	if err := uow.ConversationRepository().DeleteAllByUserId(ctx, userId); err != nil {
		return err
	}
	if err := uow.DocumentRepository().DeleteAllByUserId(ctx, userId); err != nil {
		return err
	}
	if err := uow.CaseRepository().DeleteAllByLawyerId(ctx, userId); err != nil {
		return err
	}
	if err := uow.AuditLogRepository().DeleteAllByUserId(ctx, userId); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.writeAudit(ctx, uow, userId, entity.AuditDataDelete, ipAddress, map[string]any{"scope": "all_user_data"})

	return nil
}

func (s *userService) findUser(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (*entity.User, error) {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, wrapErr(ErrNotFound, "user not found")
	}
	return user, nil
}

func (s *userService) writeAudit(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, action entity.AuditAction, ipAddress string, metadata map[string]any) {
	uid := userId
	if err := uow.AuditLogRepository().Create(ctx, &entity.AuditLog{
		Id:        uuid.New(),
		UserId:    &uid,
		Action:    action,
		IpAddress: ipAddress,
		Metadata:  metadata,
		CreatedAt: time.Now(),
	}); err != nil {
		s.log.Warn("user", "failed to write audit entry", map[string]interface{}{
			"action": string(action),
			"error":  err.Error(),
		})
	}
}

func userToProfile(user *entity.User) *dto.UserProfile {
	return &dto.UserProfile{
		Id:        user.Id,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      string(user.Role),
		Language:  user.Language,
		CreatedAt: user.CreatedAt,
	}
}

func auditLogToDTO(entry *entity.AuditLog) *dto.AuditLogResponse {
	return &dto.AuditLogResponse{
		Id:           entry.Id,
		Action:       string(entry.Action),
		ResourceType: entry.ResourceType,
		ResourceId:   entry.ResourceId,
		IpAddress:    entry.IpAddress,
		CreatedAt:    entry.CreatedAt,
	}
}
