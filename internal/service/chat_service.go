package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golexai-be/internal/constant"
	"golexai-be/internal/dto"
	"golexai-be/internal/entity"
	"golexai-be/internal/pkg/logger"
	"golexai-be/internal/repository/specification"
	"golexai-be/internal/repository/unitofwork"
	"golexai-be/pkg/ai/assembler"
	"golexai-be/pkg/ai/history"
	"golexai-be/pkg/events"
	"golexai-be/pkg/llm"

	"github.com/google/uuid"
)

const (
	conversationTitleLimit = 50
	knowledgeExcerptLimit  = 1000
	knowledgeEntryLimit    = 5
	caseDocExcerptLimit    = 800
	caseDocLimit           = 3
	documentExcerptLimit   = 2000
	analyzeTextLimit       = 4000
)

type IChatService interface {
	SendChat(ctx context.Context, userId uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	Regenerate(ctx context.Context, userId uuid.UUID, req *dto.RegenerateRequest) (*dto.SendChatResponse, error)
	GenerateDocument(ctx context.Context, userId uuid.UUID, req *dto.GenerateDocumentRequest) (*dto.GenerateDocumentResponse, error)
}

type chatService struct {
	uowFactory    unitofwork.RepositoryFactory
	provider      llm.CompletionProvider
	assembler     *assembler.Assembler
	historyLoader *history.Loader
	publisher     IPublisherService
	log           logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	provider llm.CompletionProvider,
	promptAssembler *assembler.Assembler,
	historyLoader *history.Loader,
	publisher IPublisherService,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:    uowFactory,
		provider:      provider,
		assembler:     promptAssembler,
		historyLoader: historyLoader,
		publisher:     publisher,
		log:           log,
	}
}

// truncate bounds a string to max runes, mirroring how excerpts are cut
// before prompt assembly.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// SendChat runs one chat turn: resolve conversation, gather context,
// persist the user message, call the model, persist the reply.
// The user message stays persisted even when the upstream call fails.
func (cs *chatService) SendChat(ctx context.Context, userId uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	messageText := strings.TrimSpace(req.Message)
	if messageText == "" {
		return nil, wrapErr(ErrValidation, "message must not be empty")
	}
	if cs.provider == nil {
		return nil, wrapErr(ErrServiceUnavailable, "AI provider not configured")
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	conversation, created, err := cs.resolveConversation(ctx, uow, userId, req, messageText)
	if err != nil {
		return nil, err
	}

	blocks := cs.gatherContext(ctx, uow, userId, req)

	now := time.Now()
	userMessage := &entity.Message{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		DocumentId:     req.DocumentId,
		Role:           entity.MessageRoleUser,
		Content:        messageText,
		CreatedAt:      now,
	}
	if err := uow.MessageRepository().Create(ctx, userMessage); err != nil {
		return nil, err
	}

	if created {
		cs.publisher.PublishUsage(ctx, events.UsageEvent{
			UserId:     userId,
			MetricType: string(entity.MetricConversationStarted),
			Value:      1,
			Metadata:   map[string]any{"conversation_id": conversation.Id.String()},
			OccurredAt: now,
		})
	}

	hist, err := cs.historyLoader.Load(ctx, conversation.Id, &userMessage.Id)
	if err != nil {
		cs.log.Warn("chat", "failed to load conversation history", map[string]interface{}{"error": err.Error()})
		hist = []llm.Message{}
	}

	persona := req.Persona
	if persona == "" {
		persona = constant.PersonaCommercial
	}
	systemPrompt := cs.assembler.Compose(ctx, persona, conversation.Language, blocks)

	messages := append(hist, llm.Message{Role: string(entity.MessageRoleUser), Content: messageText})

	result, err := cs.provider.Complete(ctx, systemPrompt, messages)
	if err != nil {
		cs.log.Error("chat", "completion call failed", map[string]interface{}{
			"error":           err.Error(),
			"conversation_id": conversation.Id.String(),
		})
		return nil, wrapErr(ErrUpstream, err.Error())
	}

	assistantMessage := &entity.Message{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		Role:           entity.MessageRoleAssistant,
		Content:        result.Content,
		TokensUsed:     result.TokensUsed,
		CreatedAt:      time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.MessageRepository().Create(ctx, assistantMessage); err != nil {
		return nil, err
	}

	conversation.UpdatedAt = time.Now()
	if err := uow.ConversationRepository().Update(ctx, conversation); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	cs.publisher.PublishUsage(ctx, events.UsageEvent{
		UserId:     userId,
		MetricType: string(entity.MetricAIQuery),
		Value:      float64(result.TokensUsed),
		Metadata:   map[string]any{"conversation_id": conversation.Id.String()},
		OccurredAt: time.Now(),
	})

	return &dto.SendChatResponse{
		ConversationId: conversation.Id,
		Sent:           messageToDTO(userMessage),
		Reply:          messageToDTO(assistantMessage),
	}, nil
}

// resolveConversation loads an existing owned conversation or starts a new
// one titled with the opening message.
func (cs *chatService) resolveConversation(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	userId uuid.UUID,
	req *dto.SendChatRequest,
	messageText string,
) (*entity.Conversation, bool, error) {
	if req.ConversationId != nil {
		conversation, err := uow.ConversationRepository().FindOne(ctx,
			specification.ByID{ID: *req.ConversationId},
			specification.UserOwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, false, err
		}
		if conversation == nil {
			return nil, false, wrapErr(ErrNotFound, "conversation not found")
		}
		return conversation, false, nil
	}

	language := "en"
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err == nil && user != nil {
		language = user.Language
	}

	conversation := &entity.Conversation{
		Id:        uuid.New(),
		UserId:    userId,
		CaseId:    req.CaseId,
		Title:     truncate(messageText, conversationTitleLimit),
		Language:  language,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uow.ConversationRepository().Create(ctx, conversation); err != nil {
		return nil, false, err
	}

	return conversation, true, nil
}

// gatherContext collects the optional prompt blocks. Lookup failures and
// missing rows degrade to absent context, they never fail the turn.
func (cs *chatService) gatherContext(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	userId uuid.UUID,
	req *dto.SendChatRequest,
) assembler.ContextBlocks {
	blocks := assembler.ContextBlocks{}

	if req.UseKnowledgeBase {
		blocks.KnowledgeExcerpts = cs.knowledgeExcerpts(ctx, uow, userId)
	}

	if req.CaseId != nil {
		blocks.CaseExcerpt = cs.caseExcerpt(ctx, uow, userId, *req.CaseId)
	}

	if req.DocumentId != nil {
		doc, err := uow.DocumentRepository().FindOne(ctx,
			specification.ByID{ID: *req.DocumentId},
			specification.UserOwnedBy{UserID: userId},
		)
		if err != nil {
			cs.log.Warn("chat", "document context lookup failed", map[string]interface{}{"error": err.Error()})
		} else if doc != nil && doc.ContentText != "" {
			blocks.DocumentExcerpt = truncate(doc.ContentText, documentExcerptLimit)
		}
	}

	return blocks
}

func (cs *chatService) knowledgeExcerpts(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) []string {
	entries, err := uow.KnowledgeBaseRepository().FindActiveForUser(ctx, userId, knowledgeEntryLimit)
	if err != nil {
		cs.log.Warn("chat", "knowledge base lookup failed", map[string]interface{}{"error": err.Error()})
		return nil
	}

	excerpts := make([]string, 0, len(entries))
	for _, entry := range entries {
		doc, err := uow.DocumentRepository().FindOne(ctx,
			specification.ByID{ID: entry.DocumentId},
			specification.UserOwnedBy{UserID: userId},
		)
		if err != nil || doc == nil || doc.ContentText == "" {
			continue
		}
		excerpts = append(excerpts, fmt.Sprintf("Document: %s\n%s",
			entry.Name, truncate(doc.ContentText, knowledgeExcerptLimit)))
	}
	return excerpts
}

func (cs *chatService) caseExcerpt(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, caseId uuid.UUID) string {
	legalCase, err := uow.CaseRepository().FindOne(ctx,
		specification.ByID{ID: caseId},
		specification.ByLawyerID{LawyerID: userId},
	)
	if err != nil {
		cs.log.Warn("chat", "case context lookup failed", map[string]interface{}{"error": err.Error()})
		return ""
	}
	if legalCase == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Case: %s\nStatus: %s\nPriority: %s",
		legalCase.Title, legalCase.Status, legalCase.Priority))
	if legalCase.Description != "" {
		b.WriteString("\nDescription: " + legalCase.Description)
	}

	docs, err := uow.DocumentRepository().FindAll(ctx,
		specification.ByCaseID{CaseID: caseId},
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: caseDocLimit},
	)
	if err != nil {
		cs.log.Warn("chat", "case documents lookup failed", map[string]interface{}{"error": err.Error()})
		return b.String()
	}

	for _, doc := range docs {
		if doc.ContentText == "" {
			continue
		}
		b.WriteString(fmt.Sprintf("\n\nDocument: %s\n%s",
			doc.Title, truncate(doc.ContentText, caseDocExcerptLimit)))
	}

	return b.String()
}

// Regenerate re-answers the latest exchange of a conversation with extra
// instructions folded into the prompt.
func (cs *chatService) Regenerate(ctx context.Context, userId uuid.UUID, req *dto.RegenerateRequest) (*dto.SendChatResponse, error) {
	if cs.provider == nil {
		return nil, wrapErr(ErrServiceUnavailable, "AI provider not configured")
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	conversation, err := uow.ConversationRepository().FindOne(ctx,
		specification.ByID{ID: req.ConversationId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, wrapErr(ErrNotFound, "conversation not found")
	}

	recent, err := uow.MessageRepository().FindRecent(ctx, conversation.Id, nil, history.WindowSize)
	if err != nil {
		return nil, err
	}

	var lastUser, lastAssistant *entity.Message
	for _, msg := range recent {
		if lastAssistant == nil && msg.Role == entity.MessageRoleAssistant {
			lastAssistant = msg
		}
		if lastUser == nil && msg.Role == entity.MessageRoleUser {
			lastUser = msg
		}
		if lastUser != nil && lastAssistant != nil {
			break
		}
	}
	if lastUser == nil || lastAssistant == nil {
		return nil, wrapErr(ErrValidation, "conversation has no exchange to regenerate")
	}

	prompt := buildRegeneratePrompt(conversation.Language, lastUser.Content, lastAssistant.Content, req.AdditionalInstructions)
	systemPrompt := cs.assembler.SystemPrompt(ctx, constant.PersonaCommercial, conversation.Language)

	result, err := cs.provider.Complete(ctx, systemPrompt, []llm.Message{{Role: string(entity.MessageRoleUser), Content: prompt}})
	if err != nil {
		return nil, wrapErr(ErrUpstream, err.Error())
	}

	assistantMessage := &entity.Message{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		Role:           entity.MessageRoleAssistant,
		Content:        result.Content,
		TokensUsed:     result.TokensUsed,
		CreatedAt:      time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.MessageRepository().Create(ctx, assistantMessage); err != nil {
		return nil, err
	}

	conversation.UpdatedAt = time.Now()
	if err := uow.ConversationRepository().Update(ctx, conversation); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	cs.publisher.PublishUsage(ctx, events.UsageEvent{
		UserId:     userId,
		MetricType: string(entity.MetricAIQuery),
		Value:      float64(result.TokensUsed),
		Metadata:   map[string]any{"conversation_id": conversation.Id.String()},
		OccurredAt: time.Now(),
	})

	return &dto.SendChatResponse{
		ConversationId: conversation.Id,
		Sent:           messageToDTO(lastUser),
		Reply:          messageToDTO(assistantMessage),
	}, nil
}

func buildRegeneratePrompt(language, originalMessage, previousResponse, additionalInstructions string) string {
	if language == constant.LanguagePolish {
		return fmt.Sprintf(`Poprzednia odpowiedź na pytanie "%s" brzmiała:

%s

Proszę o wygenerowanie nowej odpowiedzi uwzględniającej następujące dodatkowe instrukcje:
%s`, originalMessage, previousResponse, additionalInstructions)
	}
	return fmt.Sprintf(`The previous response to "%s" was:

%s

Please regenerate the response taking into account these additional instructions:
%s`, originalMessage, previousResponse, additionalInstructions)
}

// GenerateDocument drafts a legal document from an admin-managed template
// (or the built-in fallback) and stores it as an AI-generated document.
func (cs *chatService) GenerateDocument(ctx context.Context, userId uuid.UUID, req *dto.GenerateDocumentRequest) (*dto.GenerateDocumentResponse, error) {
	if cs.provider == nil {
		return nil, wrapErr(ErrServiceUnavailable, "AI provider not configured")
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	language := "en"
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err == nil && user != nil {
		language = user.Language
	}

	promptName := constant.PromptNameDocumentGeneration + req.DocumentType
	template, found := cs.assembler.Overrides().GetActive(ctx, promptName, language)
	if !found {
		if language == constant.LanguagePolish {
			template = constant.DefaultDocumentGenerationPromptPL
		} else {
			template = constant.DefaultDocumentGenerationPromptEN
		}
	}

	prompt := strings.ReplaceAll(template, constant.PlaceholderDocumentType, req.DocumentType)
	prompt = strings.ReplaceAll(prompt, constant.PlaceholderContext, req.Context)
	systemPrompt := cs.assembler.SystemPrompt(ctx, constant.PersonaCommercial, language)

	result, err := cs.provider.Complete(ctx, systemPrompt, []llm.Message{{Role: string(entity.MessageRoleUser), Content: prompt}})
	if err != nil {
		return nil, wrapErr(ErrUpstream, err.Error())
	}

	doc := &entity.Document{
		Id:            uuid.New(),
		UserId:        userId,
		CaseId:        req.CaseId,
		Title:         fmt.Sprintf("AI Generated - %s", req.DocumentType),
		FileType:      entity.DocumentTypeAIGenerated,
		MimeType:      "text/plain",
		ContentText:   result.Content,
		IsAIGenerated: true,
		Priority:      entity.PriorityMedium,
		Status:        entity.DocumentStatusDraft,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := uow.DocumentRepository().Create(ctx, doc); err != nil {
		return nil, err
	}

	cs.publisher.PublishUsage(ctx, events.UsageEvent{
		UserId:     userId,
		MetricType: string(entity.MetricDocumentGenerated),
		Value:      float64(result.TokensUsed),
		Metadata:   map[string]any{"document_id": doc.Id.String(), "document_type": req.DocumentType},
		OccurredAt: time.Now(),
	})

	return &dto.GenerateDocumentResponse{
		DocumentId: doc.Id,
		Title:      doc.Title,
		Content:    result.Content,
		TokensUsed: result.TokensUsed,
	}, nil
}

func messageToDTO(msg *entity.Message) *dto.MessageResponse {
	return &dto.MessageResponse{
		Id:         msg.Id,
		Role:       string(msg.Role),
		Content:    msg.Content,
		DocumentId: msg.DocumentId,
		TokensUsed: msg.TokensUsed,
		CreatedAt:  msg.CreatedAt,
	}
}
