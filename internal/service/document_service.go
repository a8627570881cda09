package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golexai-be/internal/constant"
	"golexai-be/internal/dto"
	"golexai-be/internal/entity"
	"golexai-be/internal/pkg/logger"
	"golexai-be/internal/repository/specification"
	"golexai-be/internal/repository/unitofwork"
	"golexai-be/pkg/ai/assembler"
	"golexai-be/pkg/events"
	"golexai-be/pkg/llm"

	"github.com/google/uuid"
)

const defaultUploadDir = "uploads"

// UploadedFile carries the multipart payload after the controller has
// read it from the request.
type UploadedFile struct {
	Filename string
	MimeType string
	Size     int64
	Content  []byte
}

type ExportedDocument struct {
	Filename string
	MimeType string
	Content  []byte
}

type IDocumentService interface {
	Upload(ctx context.Context, userId uuid.UUID, req *dto.UploadDocumentRequest, file *UploadedFile) (*dto.DocumentResponse, error)
	List(ctx context.Context, userId uuid.UUID, caseId *uuid.UUID) ([]*dto.DocumentResponse, error)
	Show(ctx context.Context, userId uuid.UUID, documentId uuid.UUID, ipAddress string) (*dto.DocumentResponse, error)
	Update(ctx context.Context, userId uuid.UUID, documentId uuid.UUID, req *dto.UpdateDocumentRequest) (*dto.DocumentResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, documentId uuid.UUID, ipAddress string) error
	Analyze(ctx context.Context, userId uuid.UUID, documentId uuid.UUID) (*dto.AnalyzeDocumentResponse, error)
	Export(ctx context.Context, userId uuid.UUID, documentId uuid.UUID) (*ExportedDocument, error)
}

type documentService struct {
	uowFactory unitofwork.RepositoryFactory
	provider   llm.CompletionProvider
	assembler  *assembler.Assembler
	publisher  IPublisherService
	uploadDir  string
	log        logger.ILogger
}

func NewDocumentService(
	uowFactory unitofwork.RepositoryFactory,
	provider llm.CompletionProvider,
	promptAssembler *assembler.Assembler,
	publisher IPublisherService,
	uploadDir string,
	log logger.ILogger,
) IDocumentService {
	if uploadDir == "" {
		uploadDir = defaultUploadDir
	}
	return &documentService{
		uowFactory: uowFactory,
		provider:   provider,
		assembler:  promptAssembler,
		publisher:  publisher,
		uploadDir:  uploadDir,
		log:        log,
	}
}

// extractableText reports whether the payload is plain text we can index
// for AI context. Binary formats keep an empty content_text.
func extractableText(mimeType, filename string) bool {
	if strings.HasPrefix(mimeType, "text/") {
		return true
	}
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".md" || ext == ".txt"
}

func (s *documentService) Upload(ctx context.Context, userId uuid.UUID, req *dto.UploadDocumentRequest, file *UploadedFile) (*dto.DocumentResponse, error) {
	if file == nil || len(file.Content) == 0 {
		return nil, wrapErr(ErrValidation, "file is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	if req.CaseId != nil {
		if err := s.ensureCaseOwned(ctx, uow, userId, *req.CaseId); err != nil {
			return nil, err
		}
	}

	docId := uuid.New()
	userDir := filepath.Join(s.uploadDir, userId.String())
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to prepare upload directory: %w", err)
	}

	storedName := docId.String() + filepath.Ext(file.Filename)
	storedPath := filepath.Join(userDir, storedName)
	if err := os.WriteFile(storedPath, file.Content, 0o644); err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	contentText := ""
	if extractableText(file.MimeType, file.Filename) {
		contentText = string(file.Content)
	}

	fileType := entity.DocumentTypeOther
	if req.FileType != "" {
		fileType = entity.DocumentType(req.FileType)
	}
	priority := entity.PriorityMedium
	if req.Priority != "" {
		priority = entity.Priority(req.Priority)
	}

	doc := &entity.Document{
		Id:               docId,
		UserId:           userId,
		CaseId:           req.CaseId,
		Title:            req.Title,
		FileType:         fileType,
		OriginalFilename: file.Filename,
		MimeType:         file.MimeType,
		FileSize:         file.Size,
		FilePath:         storedPath,
		ContentText:      contentText,
		Priority:         priority,
		Status:           entity.DocumentStatusDraft,
		Tags:             req.Tags,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := uow.DocumentRepository().Create(ctx, doc); err != nil {
		if removeErr := os.Remove(storedPath); removeErr != nil {
			s.log.Warn("document", "failed to remove orphaned upload", map[string]interface{}{"path": storedPath})
		}
		return nil, err
	}

	s.publisher.PublishUsage(ctx, events.UsageEvent{
		UserId:     userId,
		MetricType: string(entity.MetricDocumentUploaded),
		Value:      1,
		Metadata:   map[string]any{"document_id": doc.Id.String(), "file_type": string(doc.FileType)},
		OccurredAt: time.Now(),
	})

	return documentToDTO(doc), nil
}

func (s *documentService) List(ctx context.Context, userId uuid.UUID, caseId *uuid.UUID) ([]*dto.DocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if caseId != nil {
		specs = append(specs, specification.ByCaseID{CaseID: *caseId})
	}

	docs, err := uow.DocumentRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		responses = append(responses, documentToDTO(doc))
	}
	return responses, nil
}

func (s *documentService) Show(ctx context.Context, userId uuid.UUID, documentId uuid.UUID, ipAddress string) (*dto.DocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := s.findOwnedDocument(ctx, uow, userId, documentId)
	if err != nil {
		return nil, err
	}

	s.writeAudit(ctx, uow, userId, entity.AuditDocumentAccess, "document", documentId.String(), ipAddress)

	return documentToDTO(doc), nil
}

func (s *documentService) Update(ctx context.Context, userId uuid.UUID, documentId uuid.UUID, req *dto.UpdateDocumentRequest) (*dto.DocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := s.findOwnedDocument(ctx, uow, userId, documentId)
	if err != nil {
		return nil, err
	}

	if req.CaseId != nil {
		if err := s.ensureCaseOwned(ctx, uow, userId, *req.CaseId); err != nil {
			return nil, err
		}
		doc.CaseId = req.CaseId
	}
	if req.Title != "" {
		doc.Title = req.Title
	}
	if req.FileType != "" {
		doc.FileType = entity.DocumentType(req.FileType)
	}
	if req.Priority != "" {
		doc.Priority = entity.Priority(req.Priority)
	}
	if req.Status != "" {
		doc.Status = entity.DocumentStatus(req.Status)
	}
	if req.Tags != nil {
		doc.Tags = req.Tags
	}
	doc.UpdatedAt = time.Now()

	if err := uow.DocumentRepository().Update(ctx, doc); err != nil {
		return nil, err
	}

	return documentToDTO(doc), nil
}

func (s *documentService) Delete(ctx context.Context, userId uuid.UUID, documentId uuid.UUID, ipAddress string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := s.findOwnedDocument(ctx, uow, userId, documentId)
	if err != nil {
		return err
	}

	if err := uow.DocumentRepository().Delete(ctx, documentId); err != nil {
		return err
	}

	if doc.FilePath != "" {
		if err := os.Remove(doc.FilePath); err != nil && !os.IsNotExist(err) {
			s.log.Warn("document", "failed to remove stored file", map[string]interface{}{
				"path":  doc.FilePath,
				"error": err.Error(),
			})
		}
	}

	s.writeAudit(ctx, uow, userId, entity.AuditDocumentDelete, "document", documentId.String(), ipAddress)

	return nil
}

// Analyze runs the document through the analysis template and stores the
// result on the document itself.
func (s *documentService) Analyze(ctx context.Context, userId uuid.UUID, documentId uuid.UUID) (*dto.AnalyzeDocumentResponse, error) {
	if s.provider == nil {
		return nil, wrapErr(ErrServiceUnavailable, "AI provider not configured")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := s.findOwnedDocument(ctx, uow, userId, documentId)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(doc.ContentText) == "" {
		return nil, wrapErr(ErrValidation, "document has no extractable text to analyze")
	}

	language := "en"
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err == nil && user != nil {
		language = user.Language
	}

	template, found := s.assembler.Overrides().GetActive(ctx, constant.PromptNameDocumentAnalysis, language)
	if !found {
		if language == constant.LanguagePolish {
			template = constant.DefaultDocumentAnalysisPromptPL
		} else {
			template = constant.DefaultDocumentAnalysisPromptEN
		}
	}

	prompt := strings.ReplaceAll(template, constant.PlaceholderDocumentText, truncate(doc.ContentText, analyzeTextLimit))
	systemPrompt := s.assembler.SystemPrompt(ctx, constant.PersonaCommercial, language)

	result, err := s.provider.Complete(ctx, systemPrompt, []llm.Message{{Role: string(entity.MessageRoleUser), Content: prompt}})
	if err != nil {
		return nil, wrapErr(ErrUpstream, err.Error())
	}

	doc.Analysis = result.Content
	doc.UpdatedAt = time.Now()
	if err := uow.DocumentRepository().Update(ctx, doc); err != nil {
		return nil, err
	}

	s.publisher.PublishUsage(ctx, events.UsageEvent{
		UserId:     userId,
		MetricType: string(entity.MetricDocumentAnalyzed),
		Value:      float64(result.TokensUsed),
		Metadata:   map[string]any{"document_id": doc.Id.String()},
		OccurredAt: time.Now(),
	})

	return &dto.AnalyzeDocumentResponse{
		DocumentId: doc.Id,
		Analysis:   result.Content,
		TokensUsed: result.TokensUsed,
	}, nil
}

// Export returns the document payload for download. AI-generated documents
// have no file on disk, their content lives in content_text.
func (s *documentService) Export(ctx context.Context, userId uuid.UUID, documentId uuid.UUID) (*ExportedDocument, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := s.findOwnedDocument(ctx, uow, userId, documentId)
	if err != nil {
		return nil, err
	}

	if doc.FilePath != "" {
		content, err := os.ReadFile(doc.FilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read stored file: %w", err)
		}
		return &ExportedDocument{
			Filename: doc.OriginalFilename,
			MimeType: doc.MimeType,
			Content:  content,
		}, nil
	}

	if doc.ContentText == "" {
		return nil, wrapErr(ErrNotFound, "document has no exportable content")
	}

	return &ExportedDocument{
		Filename: doc.Title + ".txt",
		MimeType: "text/plain",
		Content:  []byte(doc.ContentText),
	}, nil
}

func (s *documentService) findOwnedDocument(ctx context.Context, uow unitofwork.UnitOfWork, userId, documentId uuid.UUID) (*entity.Document, error) {
	doc, err := uow.DocumentRepository().FindOne(ctx,
		specification.ByID{ID: documentId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, wrapErr(ErrNotFound, "document not found")
	}
	return doc, nil
}

func (s *documentService) ensureCaseOwned(ctx context.Context, uow unitofwork.UnitOfWork, userId, caseId uuid.UUID) error {
	legalCase, err := uow.CaseRepository().FindOne(ctx,
		specification.ByID{ID: caseId},
		specification.ByLawyerID{LawyerID: userId},
	)
	if err != nil {
		return err
	}
	if legalCase == nil {
		return wrapErr(ErrNotFound, "case not found")
	}
	return nil
}

func (s *documentService) writeAudit(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, action entity.AuditAction, resourceType, resourceId, ipAddress string) {
	uid := userId
	if err := uow.AuditLogRepository().Create(ctx, &entity.AuditLog{
		Id:           uuid.New(),
		UserId:       &uid,
		Action:       action,
		ResourceType: resourceType,
		ResourceId:   resourceId,
		IpAddress:    ipAddress,
		CreatedAt:    time.Now(),
	}); err != nil {
		s.log.Warn("document", "failed to write audit entry", map[string]interface{}{
			"action": string(action),
			"error":  err.Error(),
		})
	}
}

func documentToDTO(doc *entity.Document) *dto.DocumentResponse {
	return &dto.DocumentResponse{
		Id:               doc.Id,
		Title:            doc.Title,
		FileType:         string(doc.FileType),
		OriginalFilename: doc.OriginalFilename,
		MimeType:         doc.MimeType,
		FileSize:         doc.FileSize,
		CaseId:           doc.CaseId,
		Analysis:         doc.Analysis,
		IsAIGenerated:    doc.IsAIGenerated,
		Priority:         string(doc.Priority),
		Status:           string(doc.Status),
		Tags:             doc.Tags,
		CreatedAt:        doc.CreatedAt,
		UpdatedAt:        doc.UpdatedAt,
	}
}
