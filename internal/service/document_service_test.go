package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"golexai-be/internal/dto"
	"golexai-be/internal/entity"
	"golexai-be/pkg/ai/assembler"
	"golexai-be/pkg/ai/persona"
	"golexai-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type documentFixture struct {
	uow       *fakeUnitOfWork
	provider  *fakeProvider
	publisher *fakePublisher
	service   IDocumentService
	userId    uuid.UUID
}

func newDocumentFixture(t *testing.T) *documentFixture {
	uow := newFakeUnitOfWork()
	provider := &fakeProvider{result: &llm.CompletionResult{Content: "analysis result", TokensUsed: 55}}
	publisher := &fakePublisher{}

	userId := uuid.New()
	uow.users.users = append(uow.users.users, &entity.User{
		Id:       userId,
		Language: "en",
	})

	promptAssembler := assembler.NewAssembler(persona.NewCatalog(), &stubOverrides{})
	svc := NewDocumentService(&fakeUowFactory{uow: uow}, provider, promptAssembler, publisher, t.TempDir(), nopLogger{})

	return &documentFixture{
		uow:       uow,
		provider:  provider,
		publisher: publisher,
		service:   svc,
		userId:    userId,
	}
}

func TestUploadExtractsPlainText(t *testing.T) {
	fx := newDocumentFixture(t)

	res, err := fx.service.Upload(context.Background(), fx.userId, &dto.UploadDocumentRequest{
		Title:    "Engagement Letter",
		FileType: "contract",
	}, &UploadedFile{
		Filename: "letter.txt",
		MimeType: "text/plain",
		Size:     11,
		Content:  []byte("hello world"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "Engagement Letter", res.Title)
	assert.Equal(t, "contract", res.FileType)

	assert.Len(t, fx.uow.documents.documents, 1)
	assert.Equal(t, "hello world", fx.uow.documents.documents[0].ContentText)

	var metered bool
	for _, e := range fx.publisher.events {
		if e.MetricType == string(entity.MetricDocumentUploaded) {
			metered = true
		}
	}
	assert.True(t, metered)
}

func TestUploadBinaryKeepsEmptyContentText(t *testing.T) {
	fx := newDocumentFixture(t)

	_, err := fx.service.Upload(context.Background(), fx.userId, &dto.UploadDocumentRequest{
		Title: "Scanned Pleading",
	}, &UploadedFile{
		Filename: "scan.pdf",
		MimeType: "application/pdf",
		Size:     4,
		Content:  []byte{0x25, 0x50, 0x44, 0x46},
	})

	assert.NoError(t, err)
	assert.Empty(t, fx.uow.documents.documents[0].ContentText)
}

func TestUploadMissingFile(t *testing.T) {
	fx := newDocumentFixture(t)

	res, err := fx.service.Upload(context.Background(), fx.userId, &dto.UploadDocumentRequest{Title: "x"}, nil)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAnalyzeSuccess(t *testing.T) {
	fx := newDocumentFixture(t)

	doc := &entity.Document{
		Id:          uuid.New(),
		UserId:      fx.userId,
		Title:       "Contract",
		ContentText: strings.Repeat("z", 5000),
	}
	fx.uow.documents.documents = append(fx.uow.documents.documents, doc)

	res, err := fx.service.Analyze(context.Background(), fx.userId, doc.Id)

	assert.NoError(t, err)
	assert.Equal(t, "analysis result", res.Analysis)
	assert.Equal(t, 55, res.TokensUsed)
	assert.Equal(t, "analysis result", doc.Analysis)

	// Document text is bounded before it reaches the prompt, which rides
	// under the persona system prompt
	prompt := fx.provider.lastMsgs[0].Content
	assert.Contains(t, prompt, strings.Repeat("z", 4000))
	assert.NotContains(t, prompt, strings.Repeat("z", 4001))
	assert.Contains(t, fx.provider.lastSystem, "GOLEXAI")

	var metered bool
	for _, e := range fx.publisher.events {
		if e.MetricType == string(entity.MetricDocumentAnalyzed) {
			metered = true
			assert.Equal(t, float64(55), e.Value)
		}
	}
	assert.True(t, metered)
}

func TestAnalyzeNoExtractableText(t *testing.T) {
	fx := newDocumentFixture(t)

	doc := &entity.Document{Id: uuid.New(), UserId: fx.userId, Title: "Scan"}
	fx.uow.documents.documents = append(fx.uow.documents.documents, doc)

	res, err := fx.service.Analyze(context.Background(), fx.userId, doc.Id)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 0, fx.provider.calls)
}

func TestAnalyzeUpstreamFailure(t *testing.T) {
	fx := newDocumentFixture(t)
	fx.provider.err = errors.New("timeout")

	doc := &entity.Document{Id: uuid.New(), UserId: fx.userId, ContentText: "text"}
	fx.uow.documents.documents = append(fx.uow.documents.documents, doc)

	res, err := fx.service.Analyze(context.Background(), fx.userId, doc.Id)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrUpstream)
	assert.Empty(t, doc.Analysis)
}

func TestAnalyzeForeignDocument(t *testing.T) {
	fx := newDocumentFixture(t)

	doc := &entity.Document{Id: uuid.New(), UserId: uuid.New(), ContentText: "text"}
	fx.uow.documents.documents = append(fx.uow.documents.documents, doc)

	res, err := fx.service.Analyze(context.Background(), fx.userId, doc.Id)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrNotFound)
}
