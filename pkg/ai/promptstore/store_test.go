package promptstore

import (
	"context"
	"errors"
	"testing"

	"golexai-be/internal/entity"
	"golexai-be/internal/repository/specification"

	"github.com/stretchr/testify/assert"
)

type fakePromptRepository struct {
	prompts map[string]*entity.Prompt
	err     error
	calls   int
}

func (f *fakePromptRepository) Create(ctx context.Context, prompt *entity.Prompt) error { return nil }
func (f *fakePromptRepository) Update(ctx context.Context, prompt *entity.Prompt) error { return nil }
func (f *fakePromptRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Prompt, error) {
	return nil, nil
}
func (f *fakePromptRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Prompt, error) {
	return nil, nil
}

func (f *fakePromptRepository) FindLatestActive(ctx context.Context, name, language string) (*entity.Prompt, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.prompts[name+":"+language], nil
}

func TestGetActiveFound(t *testing.T) {
	repo := &fakePromptRepository{prompts: map[string]*entity.Prompt{
		"system:en": {Name: "system", Language: "en", PromptText: "override text", Version: 3},
	}}
	store := NewOverrideStore(repo)

	text, found := store.GetActive(context.Background(), "system", "en")

	assert.True(t, found)
	assert.Equal(t, "override text", text)
}

func TestGetActiveMissing(t *testing.T) {
	store := NewOverrideStore(&fakePromptRepository{})

	text, found := store.GetActive(context.Background(), "system", "pl")

	assert.False(t, found)
	assert.Empty(t, text)
}

func TestGetActiveCachesResult(t *testing.T) {
	repo := &fakePromptRepository{prompts: map[string]*entity.Prompt{
		"system:en": {PromptText: "cached"},
	}}
	store := NewOverrideStore(repo)

	store.GetActive(context.Background(), "system", "en")
	store.GetActive(context.Background(), "system", "en")

	assert.Equal(t, 1, repo.calls)
}

func TestGetActiveCachesAbsence(t *testing.T) {
	repo := &fakePromptRepository{}
	store := NewOverrideStore(repo)

	store.GetActive(context.Background(), "document_analysis", "en")
	_, found := store.GetActive(context.Background(), "document_analysis", "en")

	assert.False(t, found)
	assert.Equal(t, 1, repo.calls)
}

func TestGetActiveErrorDegradesToAbsentUncached(t *testing.T) {
	repo := &fakePromptRepository{err: errors.New("db down")}
	store := NewOverrideStore(repo)

	_, found := store.GetActive(context.Background(), "system", "en")
	assert.False(t, found)

	// A failed lookup must not be cached, the next call retries
	repo.err = nil
	repo.prompts = map[string]*entity.Prompt{"system:en": {PromptText: "recovered"}}

	text, found := store.GetActive(context.Background(), "system", "en")
	assert.True(t, found)
	assert.Equal(t, "recovered", text)
	assert.Equal(t, 2, repo.calls)
}

func TestInvalidate(t *testing.T) {
	repo := &fakePromptRepository{prompts: map[string]*entity.Prompt{
		"system:en": {PromptText: "v1"},
	}}
	store := NewOverrideStore(repo)

	store.GetActive(context.Background(), "system", "en")
	repo.prompts["system:en"] = &entity.Prompt{PromptText: "v2"}

	store.Invalidate("system", "en")

	text, _ := store.GetActive(context.Background(), "system", "en")
	assert.Equal(t, "v2", text)
	assert.Equal(t, 2, repo.calls)
}
