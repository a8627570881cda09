package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"golexai-be/internal/constant"
	"golexai-be/internal/dto"
	"golexai-be/internal/entity"
	"golexai-be/pkg/ai/assembler"
	"golexai-be/pkg/ai/history"
	"golexai-be/pkg/ai/persona"
	"golexai-be/pkg/ai/promptstore"
	"golexai-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubOverrides struct {
	templates map[string]string
}

func (s *stubOverrides) GetActive(_ context.Context, name, language string) (string, bool) {
	text, ok := s.templates[name+":"+language]
	return text, ok
}

type chatFixture struct {
	uow       *fakeUnitOfWork
	provider  *fakeProvider
	publisher *fakePublisher
	service   IChatService
	userId    uuid.UUID
}

func newChatFixture(overrides map[string]string) *chatFixture {
	uow := newFakeUnitOfWork()
	provider := &fakeProvider{result: &llm.CompletionResult{Content: "the answer", TokensUsed: 77}}
	publisher := &fakePublisher{}

	userId := uuid.New()
	uow.users.users = append(uow.users.users, &entity.User{
		Id:       userId,
		Email:    "lawyer@example.com",
		FullName: "Test Lawyer",
		Role:     entity.UserRoleLawyer,
		Language: "en",
	})

	resolver := &stubOverrides{templates: overrides}
	promptAssembler := assembler.NewAssembler(persona.NewCatalog(), resolver)
	historyLoader := history.NewLoader(uow.messages)

	svc := NewChatService(&fakeUowFactory{uow: uow}, provider, promptAssembler, historyLoader, publisher, nopLogger{})

	return &chatFixture{
		uow:       uow,
		provider:  provider,
		publisher: publisher,
		service:   svc,
		userId:    userId,
	}
}

func TestSendChatEmptyMessage(t *testing.T) {
	fx := newChatFixture(nil)

	res, err := fx.service.SendChat(context.Background(), fx.userId, &dto.SendChatRequest{Message: "   "})

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, fx.uow.messages.messages)
}

func TestSendChatNoProvider(t *testing.T) {
	fx := newChatFixture(nil)
	svc := NewChatService(&fakeUowFactory{uow: fx.uow}, nil, nil, nil, fx.publisher, nopLogger{})

	res, err := svc.SendChat(context.Background(), fx.userId, &dto.SendChatRequest{Message: "hello"})

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.Empty(t, fx.uow.messages.messages)
	assert.Empty(t, fx.uow.conversations.conversations)
}

func TestSendChatCreatesConversation(t *testing.T) {
	fx := newChatFixture(nil)

	longMessage := strings.Repeat("a", 80)
	res, err := fx.service.SendChat(context.Background(), fx.userId, &dto.SendChatRequest{Message: longMessage})

	assert.NoError(t, err)
	assert.Len(t, fx.uow.conversations.conversations, 1)

	conv := fx.uow.conversations.conversations[0]
	assert.Equal(t, res.ConversationId, conv.Id)
	assert.Equal(t, fx.userId, conv.UserId)
	assert.Equal(t, strings.Repeat("a", 50), conv.Title)
	assert.Equal(t, "en", conv.Language)

	// New conversation meters conversation_started plus the query itself
	types := make([]string, 0, len(fx.publisher.events))
	for _, e := range fx.publisher.events {
		types = append(types, e.MetricType)
	}
	assert.Contains(t, types, string(entity.MetricConversationStarted))
	assert.Contains(t, types, string(entity.MetricAIQuery))
}

func TestSendChatUnknownConversation(t *testing.T) {
	fx := newChatFixture(nil)
	other := uuid.New()

	res, err := fx.service.SendChat(context.Background(), fx.userId, &dto.SendChatRequest{
		Message:        "hello",
		ConversationId: &other,
	})

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSendChatForeignConversationInvisible(t *testing.T) {
	fx := newChatFixture(nil)
	foreign := &entity.Conversation{Id: uuid.New(), UserId: uuid.New(), Title: "not yours", Language: "en"}
	fx.uow.conversations.conversations = append(fx.uow.conversations.conversations, foreign)

	res, err := fx.service.SendChat(context.Background(), fx.userId, &dto.SendChatRequest{
		Message:        "hello",
		ConversationId: &foreign.Id,
	})

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSendChatSuccess(t *testing.T) {
	fx := newChatFixture(nil)

	res, err := fx.service.SendChat(context.Background(), fx.userId, &dto.SendChatRequest{Message: "Draft a lease."})

	assert.NoError(t, err)
	assert.Equal(t, "Draft a lease.", res.Sent.Content)
	assert.Equal(t, string(entity.MessageRoleUser), res.Sent.Role)
	assert.Equal(t, "the answer", res.Reply.Content)
	assert.Equal(t, string(entity.MessageRoleAssistant), res.Reply.Role)
	assert.Equal(t, 77, res.Reply.TokensUsed)

	// Both turns persisted
	assert.Len(t, fx.uow.messages.messages, 2)
	assert.Equal(t, 1, fx.uow.commits)

	// Persona base reaches the provider as the system prompt
	assert.Contains(t, fx.provider.lastSystem, "GOLEXAI")
	assert.Equal(t, "Draft a lease.", fx.provider.lastMsgs[len(fx.provider.lastMsgs)-1].Content)

	// Usage event carries the token total and conversation id
	var aiQuery *int
	for i, e := range fx.publisher.events {
		if e.MetricType == string(entity.MetricAIQuery) {
			aiQuery = &i
		}
	}
	if assert.NotNil(t, aiQuery) {
		event := fx.publisher.events[*aiQuery]
		assert.Equal(t, float64(77), event.Value)
		assert.Equal(t, res.ConversationId.String(), event.Metadata["conversation_id"])
	}
}

func TestSendChatUpstreamFailureKeepsUserMessage(t *testing.T) {
	fx := newChatFixture(nil)
	fx.provider.err = errors.New("model overloaded")

	res, err := fx.service.SendChat(context.Background(), fx.userId, &dto.SendChatRequest{Message: "hello"})

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrUpstream)

	// The user turn survives the failed completion
	assert.Len(t, fx.uow.messages.messages, 1)
	assert.Equal(t, entity.MessageRoleUser, fx.uow.messages.messages[0].Role)
	assert.Equal(t, 0, fx.uow.commits)
}

func TestSendChatHistoryExcludesInFlightMessage(t *testing.T) {
	fx := newChatFixture(nil)

	conv := &entity.Conversation{Id: uuid.New(), UserId: fx.userId, Title: "t", Language: "en"}
	fx.uow.conversations.conversations = append(fx.uow.conversations.conversations, conv)

	base := time.Now().Add(-time.Hour)
	fx.uow.messages.messages = append(fx.uow.messages.messages,
		&entity.Message{Id: uuid.New(), ConversationId: conv.Id, Role: entity.MessageRoleUser, Content: "older question", CreatedAt: base},
		&entity.Message{Id: uuid.New(), ConversationId: conv.Id, Role: entity.MessageRoleAssistant, Content: "older answer", CreatedAt: base.Add(time.Minute)},
	)

	_, err := fx.service.SendChat(context.Background(), fx.userId, &dto.SendChatRequest{
		Message:        "follow up",
		ConversationId: &conv.Id,
	})

	assert.NoError(t, err)

	// history oldest-first, then the in-flight message exactly once
	msgs := fx.provider.lastMsgs
	assert.Len(t, msgs, 3)
	assert.Equal(t, "older question", msgs[0].Content)
	assert.Equal(t, "older answer", msgs[1].Content)
	assert.Equal(t, "follow up", msgs[2].Content)
}

func TestSendChatHistoryWindowCappedAtTen(t *testing.T) {
	fx := newChatFixture(nil)

	conv := &entity.Conversation{Id: uuid.New(), UserId: fx.userId, Title: "t", Language: "en"}
	fx.uow.conversations.conversations = append(fx.uow.conversations.conversations, conv)

	base := time.Now().Add(-time.Hour)
	for i := 1; i <= 15; i++ {
		role := entity.MessageRoleUser
		if i%2 == 0 {
			role = entity.MessageRoleAssistant
		}
		fx.uow.messages.messages = append(fx.uow.messages.messages, &entity.Message{
			Id:             uuid.New(),
			ConversationId: conv.Id,
			Role:           role,
			Content:        fmt.Sprintf("turn %d", i),
			CreatedAt:      base.Add(time.Duration(i) * time.Minute),
		})
	}

	_, err := fx.service.SendChat(context.Background(), fx.userId, &dto.SendChatRequest{
		Message:        "follow up",
		ConversationId: &conv.Id,
	})

	assert.NoError(t, err)

	// Only the 10 most recent turns reach the model, plus the in-flight one
	msgs := fx.provider.lastMsgs
	assert.Len(t, msgs, 11)
	assert.Equal(t, "turn 6", msgs[0].Content)
	assert.Equal(t, "turn 15", msgs[9].Content)
	assert.Equal(t, "follow up", msgs[10].Content)
	for _, m := range msgs {
		assert.NotEqual(t, "turn 5", m.Content)
	}
}

func TestSendChatDocumentContextTruncated(t *testing.T) {
	fx := newChatFixture(nil)

	doc := &entity.Document{
		Id:          uuid.New(),
		UserId:      fx.userId,
		Title:       "Long Contract",
		ContentText: strings.Repeat("x", 3000),
	}
	fx.uow.documents.documents = append(fx.uow.documents.documents, doc)

	_, err := fx.service.SendChat(context.Background(), fx.userId, &dto.SendChatRequest{
		Message:    "summarize",
		DocumentId: &doc.Id,
	})

	assert.NoError(t, err)
	assert.Contains(t, fx.provider.lastSystem, "**Document Context:**")
	assert.Contains(t, fx.provider.lastSystem, strings.Repeat("x", 2000))
	assert.NotContains(t, fx.provider.lastSystem, strings.Repeat("x", 2001))
}

func TestSendChatForeignDocumentContextAbsent(t *testing.T) {
	fx := newChatFixture(nil)

	doc := &entity.Document{
		Id:          uuid.New(),
		UserId:      uuid.New(),
		Title:       "Someone Else's Contract",
		ContentText: "confidential clause",
	}
	fx.uow.documents.documents = append(fx.uow.documents.documents, doc)

	res, err := fx.service.SendChat(context.Background(), fx.userId, &dto.SendChatRequest{
		Message:    "summarize",
		DocumentId: &doc.Id,
	})

	// The turn succeeds, the unowned document simply contributes nothing
	assert.NoError(t, err)
	assert.NotNil(t, res)
	assert.NotContains(t, fx.provider.lastSystem, "**Document Context:**")
	assert.NotContains(t, fx.provider.lastSystem, "confidential clause")
}

func TestSendChatContextLookupFailureDegrades(t *testing.T) {
	fx := newChatFixture(nil)
	fx.uow.knowledgeBase.findErr = errors.New("kb table locked")

	res, err := fx.service.SendChat(context.Background(), fx.userId, &dto.SendChatRequest{
		Message:          "hello",
		UseKnowledgeBase: true,
	})

	assert.NoError(t, err)
	assert.NotNil(t, res)
	assert.NotContains(t, fx.provider.lastSystem, "**Knowledge Base Reference:**")
}

func TestSendChatKnowledgeBaseExcerpts(t *testing.T) {
	fx := newChatFixture(nil)

	doc := &entity.Document{
		Id:          uuid.New(),
		UserId:      fx.userId,
		Title:       "Precedent",
		ContentText: strings.Repeat("k", 1500),
	}
	fx.uow.documents.documents = append(fx.uow.documents.documents, doc)
	fx.uow.knowledgeBase.entries = append(fx.uow.knowledgeBase.entries, &entity.KnowledgeBaseEntry{
		Id:         uuid.New(),
		DocumentId: doc.Id,
		Name:       "Key Precedent",
		IsActive:   true,
	})

	_, err := fx.service.SendChat(context.Background(), fx.userId, &dto.SendChatRequest{
		Message:          "cite precedent",
		UseKnowledgeBase: true,
	})

	assert.NoError(t, err)
	assert.Contains(t, fx.provider.lastSystem, "**Knowledge Base Reference:**")
	assert.Contains(t, fx.provider.lastSystem, "Document: Key Precedent\n"+strings.Repeat("k", 1000))
	assert.NotContains(t, fx.provider.lastSystem, strings.Repeat("k", 1001))
}

func TestSendChatSystemOverride(t *testing.T) {
	fx := newChatFixture(map[string]string{
		constant.PromptNameSystem + ":en": "Custom courtroom persona.",
	})

	_, err := fx.service.SendChat(context.Background(), fx.userId, &dto.SendChatRequest{Message: "hello"})

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(fx.provider.lastSystem, "Custom courtroom persona."))
	assert.NotContains(t, fx.provider.lastSystem, "GOLEXAI")
}

func TestSendChatOverrideHighestVersionWins(t *testing.T) {
	uow := newFakeUnitOfWork()
	provider := &fakeProvider{result: &llm.CompletionResult{Content: "the answer", TokensUsed: 77}}

	userId := uuid.New()
	uow.users.users = append(uow.users.users, &entity.User{Id: userId, Language: "en"})

	uow.prompts.prompts = append(uow.prompts.prompts,
		&entity.Prompt{Id: uuid.New(), Name: constant.PromptNameSystem, Language: "en", PromptText: "first persona", Version: 1, IsActive: true},
		&entity.Prompt{Id: uuid.New(), Name: constant.PromptNameSystem, Language: "en", PromptText: "third persona", Version: 3, IsActive: true},
		&entity.Prompt{Id: uuid.New(), Name: constant.PromptNameSystem, Language: "en", PromptText: "retired persona", Version: 4, IsActive: false},
	)

	store := promptstore.NewOverrideStore(uow.prompts)
	promptAssembler := assembler.NewAssembler(persona.NewCatalog(), store)
	svc := NewChatService(&fakeUowFactory{uow: uow}, provider, promptAssembler, history.NewLoader(uow.messages), &fakePublisher{}, nopLogger{})

	_, err := svc.SendChat(context.Background(), userId, &dto.SendChatRequest{Message: "hello"})

	// Highest active version replaces the persona; the inactive v4 does not
	assert.NoError(t, err)
	assert.Equal(t, "third persona", provider.lastSystem)
}

func TestRegenerateWithoutExchange(t *testing.T) {
	fx := newChatFixture(nil)
	conv := &entity.Conversation{Id: uuid.New(), UserId: fx.userId, Title: "t", Language: "en"}
	fx.uow.conversations.conversations = append(fx.uow.conversations.conversations, conv)

	res, err := fx.service.Regenerate(context.Background(), fx.userId, &dto.RegenerateRequest{
		ConversationId: conv.Id,
	})

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRegenerateSuccess(t *testing.T) {
	fx := newChatFixture(nil)
	conv := &entity.Conversation{Id: uuid.New(), UserId: fx.userId, Title: "t", Language: "en"}
	fx.uow.conversations.conversations = append(fx.uow.conversations.conversations, conv)

	base := time.Now().Add(-time.Hour)
	fx.uow.messages.messages = append(fx.uow.messages.messages,
		&entity.Message{Id: uuid.New(), ConversationId: conv.Id, Role: entity.MessageRoleUser, Content: "original question", CreatedAt: base},
		&entity.Message{Id: uuid.New(), ConversationId: conv.Id, Role: entity.MessageRoleAssistant, Content: "previous answer", CreatedAt: base.Add(time.Minute)},
	)

	res, err := fx.service.Regenerate(context.Background(), fx.userId, &dto.RegenerateRequest{
		ConversationId:         conv.Id,
		AdditionalInstructions: "make it shorter",
	})

	assert.NoError(t, err)
	assert.Equal(t, "the answer", res.Reply.Content)

	// Single-message prompt folds in the prior exchange and instructions,
	// under the persona system prompt
	assert.Len(t, fx.provider.lastMsgs, 1)
	prompt := fx.provider.lastMsgs[0].Content
	assert.Contains(t, prompt, "original question")
	assert.Contains(t, prompt, "previous answer")
	assert.Contains(t, prompt, "make it shorter")
	assert.Contains(t, fx.provider.lastSystem, "GOLEXAI")

	// New assistant turn stored
	assert.Len(t, fx.uow.messages.messages, 3)
	assert.Equal(t, 1, fx.uow.commits)
}

func TestGenerateDocumentDefaultTemplate(t *testing.T) {
	fx := newChatFixture(nil)

	res, err := fx.service.GenerateDocument(context.Background(), fx.userId, &dto.GenerateDocumentRequest{
		DocumentType: "contract",
		Context:      "lease for office space",
	})

	assert.NoError(t, err)
	assert.Equal(t, "the answer", res.Content)
	assert.Equal(t, 77, res.TokensUsed)

	// Placeholders substituted into the built-in template
	prompt := fx.provider.lastMsgs[0].Content
	assert.Contains(t, prompt, "contract")
	assert.Contains(t, prompt, "lease for office space")
	assert.NotContains(t, prompt, constant.PlaceholderDocumentType)
	assert.NotContains(t, prompt, constant.PlaceholderContext)
	assert.Contains(t, fx.provider.lastSystem, "GOLEXAI")

	// Stored as an AI-generated draft
	assert.Len(t, fx.uow.documents.documents, 1)
	doc := fx.uow.documents.documents[0]
	assert.Equal(t, entity.DocumentTypeAIGenerated, doc.FileType)
	assert.True(t, doc.IsAIGenerated)
	assert.Equal(t, entity.DocumentStatusDraft, doc.Status)
	assert.Equal(t, "the answer", doc.ContentText)

	var found bool
	for _, e := range fx.publisher.events {
		if e.MetricType == string(entity.MetricDocumentGenerated) {
			found = true
			assert.Equal(t, doc.Id.String(), e.Metadata["document_id"])
		}
	}
	assert.True(t, found)
}

func TestGenerateDocumentOverrideTemplate(t *testing.T) {
	fx := newChatFixture(map[string]string{
		constant.PromptNameDocumentGeneration + "contract:en": "Custom template: {document_type} / {context}",
	})

	_, err := fx.service.GenerateDocument(context.Background(), fx.userId, &dto.GenerateDocumentRequest{
		DocumentType: "contract",
		Context:      "NDA",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Custom template: contract / NDA", fx.provider.lastMsgs[0].Content)
}
