package promptstore

import (
	"context"
	"fmt"
	"time"

	"golexai-be/internal/repository/contract"

	gocache "github.com/patrickmn/go-cache"
)

const (
	cacheTTL        = 5 * time.Minute
	cleanupInterval = 10 * time.Minute
)

type cachedPrompt struct {
	text  string
	found bool
}

// OverrideStore resolves admin-managed prompt templates from the database.
// Lookups are cached in-process since prompts change rarely and chat reads
// them on every turn.
type OverrideStore struct {
	repo  contract.PromptRepository
	cache *gocache.Cache
}

func NewOverrideStore(repo contract.PromptRepository) *OverrideStore {
	return &OverrideStore{
		repo:  repo,
		cache: gocache.New(cacheTTL, cleanupInterval),
	}
}

// GetActive returns the prompt text of the highest-version active template
// for the name and language, and whether one exists. Lookup errors degrade
// to absent so a flaky read never blocks a chat turn.
func (s *OverrideStore) GetActive(ctx context.Context, name, language string) (string, bool) {
	key := cacheKey(name, language)
	if v, ok := s.cache.Get(key); ok {
		cached := v.(cachedPrompt)
		return cached.text, cached.found
	}

	prompt, err := s.repo.FindLatestActive(ctx, name, language)
	if err != nil {
		return "", false
	}

	result := cachedPrompt{}
	if prompt != nil {
		result.text = prompt.PromptText
		result.found = true
	}
	s.cache.Set(key, result, gocache.DefaultExpiration)

	return result.text, result.found
}

// Invalidate drops a cached entry after an admin edit.
func (s *OverrideStore) Invalidate(name, language string) {
	s.cache.Delete(cacheKey(name, language))
}

func cacheKey(name, language string) string {
	return fmt.Sprintf("%s:%s", name, language)
}
