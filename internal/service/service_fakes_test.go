package service

import (
	"context"
	"sort"
	"time"

	"golexai-be/internal/entity"
	"golexai-be/internal/repository/contract"
	"golexai-be/internal/repository/specification"
	"golexai-be/internal/repository/unitofwork"
	"golexai-be/pkg/events"
	"golexai-be/pkg/llm"

	"github.com/google/uuid"
)

// In-memory unit of work shared by orchestrator scenario tests. The fake
// repositories interpret the small set of specifications the services use.

type specFilter struct {
	id      *uuid.UUID
	userId  *uuid.UUID
	limit   int
	hasSort bool
}

func parseSpecs(specs []specification.Specification) specFilter {
	f := specFilter{}
	for _, s := range specs {
		switch v := s.(type) {
		case specification.ByID:
			id := v.ID
			f.id = &id
		case specification.UserOwnedBy:
			uid := v.UserID
			f.userId = &uid
		case specification.ByLawyerID:
			uid := v.LawyerID
			f.userId = &uid
		case specification.Pagination:
			f.limit = v.Limit
		case specification.OrderBy:
			f.hasSort = true
		}
	}
	return f
}

type fakeUnitOfWork struct {
	users         *fakeUserRepo
	documents     *fakeDocumentRepo
	cases         *fakeCaseRepo
	conversations *fakeConversationRepo
	messages      *fakeMessageRepo
	prompts       *fakePromptRepo
	knowledgeBase *fakeKnowledgeBaseRepo
	usageMetrics  *fakeUsageMetricRepo
	auditLogs     *fakeAuditLogRepo

	beginErr  error
	commitErr error
	commits   int
	rollbacks int
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		users:         &fakeUserRepo{},
		documents:     &fakeDocumentRepo{},
		cases:         &fakeCaseRepo{},
		conversations: &fakeConversationRepo{},
		messages:      &fakeMessageRepo{},
		prompts:       &fakePromptRepo{},
		knowledgeBase: &fakeKnowledgeBaseRepo{},
		usageMetrics:  &fakeUsageMetricRepo{},
		auditLogs:     &fakeAuditLogRepo{},
	}
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return u.beginErr }
func (u *fakeUnitOfWork) Commit() error {
	if u.commitErr != nil {
		return u.commitErr
	}
	u.commits++
	return nil
}
func (u *fakeUnitOfWork) Rollback() error { u.rollbacks++; return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository                   { return u.users }
func (u *fakeUnitOfWork) DocumentRepository() contract.DocumentRepository           { return u.documents }
func (u *fakeUnitOfWork) CaseRepository() contract.CaseRepository                   { return u.cases }
func (u *fakeUnitOfWork) ConversationRepository() contract.ConversationRepository   { return u.conversations }
func (u *fakeUnitOfWork) MessageRepository() contract.MessageRepository             { return u.messages }
func (u *fakeUnitOfWork) PromptRepository() contract.PromptRepository               { return u.prompts }
func (u *fakeUnitOfWork) KnowledgeBaseRepository() contract.KnowledgeBaseRepository { return u.knowledgeBase }
func (u *fakeUnitOfWork) UsageMetricRepository() contract.UsageMetricRepository     { return u.usageMetrics }
func (u *fakeUnitOfWork) AuditLogRepository() contract.AuditLogRepository           { return u.auditLogs }

type fakeUowFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

// --- repositories ---

type fakeUserRepo struct {
	users   []*entity.User
	findErr error
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users = append(r.users, user)
	return nil
}
func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }
func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }
func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	f := parseSpecs(specs)
	for _, u := range r.users {
		if f.id != nil && u.Id != *f.id {
			continue
		}
		return u, nil
	}
	return nil, nil
}
func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	return r.users, nil
}
func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.users)), nil
}
func (r *fakeUserRepo) UpdatePassword(ctx context.Context, userId uuid.UUID, hash string) error {
	return nil
}
func (r *fakeUserRepo) CreatePasswordResetToken(ctx context.Context, token *entity.PasswordResetToken) error {
	return nil
}
func (r *fakeUserRepo) FindPasswordResetToken(ctx context.Context, specs ...specification.Specification) (*entity.PasswordResetToken, error) {
	return nil, nil
}
func (r *fakeUserRepo) MarkTokenUsed(ctx context.Context, id uuid.UUID) error { return nil }
func (r *fakeUserRepo) CreateRefreshToken(ctx context.Context, token *entity.UserRefreshToken) error {
	return nil
}
func (r *fakeUserRepo) FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.UserRefreshToken, error) {
	return nil, nil
}
func (r *fakeUserRepo) RevokeRefreshToken(ctx context.Context, tokenHash string) error { return nil }

type fakeDocumentRepo struct {
	documents []*entity.Document
	findErr   error
}

func (r *fakeDocumentRepo) Create(ctx context.Context, doc *entity.Document) error {
	r.documents = append(r.documents, doc)
	return nil
}
func (r *fakeDocumentRepo) Update(ctx context.Context, doc *entity.Document) error { return nil }
func (r *fakeDocumentRepo) Delete(ctx context.Context, id uuid.UUID) error         { return nil }
func (r *fakeDocumentRepo) DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error {
	return nil
}
func (r *fakeDocumentRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Document, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	f := parseSpecs(specs)
	for _, d := range r.documents {
		if f.id != nil && d.Id != *f.id {
			continue
		}
		if f.userId != nil && d.UserId != *f.userId {
			continue
		}
		return d, nil
	}
	return nil, nil
}
func (r *fakeDocumentRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Document, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	f := parseSpecs(specs)
	var caseId *uuid.UUID
	var idSet map[uuid.UUID]bool
	for _, s := range specs {
		switch v := s.(type) {
		case specification.ByCaseID:
			id := v.CaseID
			caseId = &id
		case specification.ByIDs:
			idSet = make(map[uuid.UUID]bool, len(v.IDs))
			for _, id := range v.IDs {
				idSet[id] = true
			}
		}
	}
	out := make([]*entity.Document, 0)
	for _, d := range r.documents {
		if f.userId != nil && d.UserId != *f.userId {
			continue
		}
		if caseId != nil && (d.CaseId == nil || *d.CaseId != *caseId) {
			continue
		}
		if idSet != nil && !idSet[d.Id] {
			continue
		}
		out = append(out, d)
	}
	if f.limit > 0 && len(out) > f.limit {
		out = out[:f.limit]
	}
	return out, nil
}
func (r *fakeDocumentRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	docs, _ := r.FindAll(ctx, specs...)
	return int64(len(docs)), nil
}

type fakeCaseRepo struct {
	cases   []*entity.Case
	findErr error
}

func (r *fakeCaseRepo) Create(ctx context.Context, c *entity.Case) error {
	r.cases = append(r.cases, c)
	return nil
}
func (r *fakeCaseRepo) Update(ctx context.Context, c *entity.Case) error { return nil }
func (r *fakeCaseRepo) Delete(ctx context.Context, id uuid.UUID) error   { return nil }
func (r *fakeCaseRepo) DeleteAllByLawyerId(ctx context.Context, lawyerId uuid.UUID) error {
	return nil
}
func (r *fakeCaseRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Case, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	f := parseSpecs(specs)
	for _, c := range r.cases {
		if f.id != nil && c.Id != *f.id {
			continue
		}
		if f.userId != nil && c.LawyerId != *f.userId {
			continue
		}
		return c, nil
	}
	return nil, nil
}
func (r *fakeCaseRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Case, error) {
	return r.cases, nil
}
func (r *fakeCaseRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.cases)), nil
}

type fakeConversationRepo struct {
	conversations []*entity.Conversation
	createErr     error
	updates       int
}

func (r *fakeConversationRepo) Create(ctx context.Context, conv *entity.Conversation) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.conversations = append(r.conversations, conv)
	return nil
}
func (r *fakeConversationRepo) Update(ctx context.Context, conv *entity.Conversation) error {
	r.updates++
	return nil
}
func (r *fakeConversationRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (r *fakeConversationRepo) DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error {
	return nil
}
func (r *fakeConversationRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Conversation, error) {
	f := parseSpecs(specs)
	for _, c := range r.conversations {
		if f.id != nil && c.Id != *f.id {
			continue
		}
		if f.userId != nil && c.UserId != *f.userId {
			continue
		}
		return c, nil
	}
	return nil, nil
}
func (r *fakeConversationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Conversation, error) {
	return r.conversations, nil
}
func (r *fakeConversationRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.conversations)), nil
}

type fakeMessageRepo struct {
	messages  []*entity.Message
	createErr error
}

func (r *fakeMessageRepo) Create(ctx context.Context, msg *entity.Message) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.messages = append(r.messages, msg)
	return nil
}
func (r *fakeMessageRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (r *fakeMessageRepo) DeleteByConversationId(ctx context.Context, conversationId uuid.UUID) error {
	return nil
}
func (r *fakeMessageRepo) DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error { return nil }
func (r *fakeMessageRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Message, error) {
	return nil, nil
}
func (r *fakeMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	return r.messages, nil
}
func (r *fakeMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.messages)), nil
}
func (r *fakeMessageRepo) FindRecent(ctx context.Context, conversationId uuid.UUID, excludeId *uuid.UUID, limit int) ([]*entity.Message, error) {
	out := make([]*entity.Message, 0)
	for _, m := range r.messages {
		if m.ConversationId != conversationId {
			continue
		}
		if excludeId != nil && m.Id == *excludeId {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakePromptRepo struct {
	prompts []*entity.Prompt
}

func (r *fakePromptRepo) Create(ctx context.Context, prompt *entity.Prompt) error { return nil }
func (r *fakePromptRepo) Update(ctx context.Context, prompt *entity.Prompt) error { return nil }
func (r *fakePromptRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Prompt, error) {
	return nil, nil
}
func (r *fakePromptRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Prompt, error) {
	return r.prompts, nil
}
func (r *fakePromptRepo) FindLatestActive(ctx context.Context, name, language string) (*entity.Prompt, error) {
	var best *entity.Prompt
	for _, p := range r.prompts {
		if p.Name != name || p.Language != language || !p.IsActive {
			continue
		}
		if best == nil || p.Version > best.Version {
			best = p
		}
	}
	return best, nil
}

type fakeKnowledgeBaseRepo struct {
	entries []*entity.KnowledgeBaseEntry
	findErr error
}

func (r *fakeKnowledgeBaseRepo) Create(ctx context.Context, entry *entity.KnowledgeBaseEntry) error {
	r.entries = append(r.entries, entry)
	return nil
}
func (r *fakeKnowledgeBaseRepo) Update(ctx context.Context, entry *entity.KnowledgeBaseEntry) error {
	return nil
}
func (r *fakeKnowledgeBaseRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (r *fakeKnowledgeBaseRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeBaseEntry, error) {
	f := parseSpecs(specs)
	for _, e := range r.entries {
		if f.id != nil && e.Id != *f.id {
			continue
		}
		return e, nil
	}
	return nil, nil
}
func (r *fakeKnowledgeBaseRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeBaseEntry, error) {
	return r.entries, nil
}
func (r *fakeKnowledgeBaseRepo) FindActiveForUser(ctx context.Context, userId uuid.UUID, limit int) ([]*entity.KnowledgeBaseEntry, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := make([]*entity.KnowledgeBaseEntry, 0)
	for _, e := range r.entries {
		if !e.IsActive {
			continue
		}
		out = append(out, e)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

type fakeUsageMetricRepo struct {
	metrics []*entity.UsageMetric
}

func (r *fakeUsageMetricRepo) Create(ctx context.Context, metric *entity.UsageMetric) error {
	r.metrics = append(r.metrics, metric)
	return nil
}
func (r *fakeUsageMetricRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UsageMetric, error) {
	return r.metrics, nil
}
func (r *fakeUsageMetricRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.metrics)), nil
}
func (r *fakeUsageMetricRepo) AggregateSince(ctx context.Context, userId uuid.UUID, since time.Time) ([]contract.MetricAggregate, error) {
	totals := map[string]*contract.MetricAggregate{}
	for _, m := range r.metrics {
		if m.UserId != userId || m.CreatedAt.Before(since) {
			continue
		}
		agg, ok := totals[string(m.MetricType)]
		if !ok {
			agg = &contract.MetricAggregate{MetricType: string(m.MetricType)}
			totals[string(m.MetricType)] = agg
		}
		agg.Count++
		agg.Total += m.Value
	}
	out := make([]contract.MetricAggregate, 0, len(totals))
	for _, agg := range totals {
		out = append(out, *agg)
	}
	return out, nil
}

type fakeAuditLogRepo struct {
	logs []*entity.AuditLog
}

func (r *fakeAuditLogRepo) Create(ctx context.Context, log *entity.AuditLog) error {
	r.logs = append(r.logs, log)
	return nil
}
func (r *fakeAuditLogRepo) DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error {
	return nil
}
func (r *fakeAuditLogRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AuditLog, error) {
	return r.logs, nil
}

// --- collaborators ---

type fakeProvider struct {
	result     *llm.CompletionResult
	err        error
	lastSystem string
	lastMsgs   []llm.Message
	calls      int
}

func (p *fakeProvider) Complete(ctx context.Context, system string, history []llm.Message, options ...llm.Option) (*llm.CompletionResult, error) {
	p.calls++
	p.lastSystem = system
	p.lastMsgs = history
	if p.err != nil {
		return nil, p.err
	}
	return p.result, nil
}

type fakePublisher struct {
	events []events.UsageEvent
}

func (p *fakePublisher) PublishUsage(ctx context.Context, event events.UsageEvent) {
	p.events = append(p.events, event)
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
