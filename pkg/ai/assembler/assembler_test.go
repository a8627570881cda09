package assembler

import (
	"context"
	"strings"
	"testing"

	"golexai-be/internal/constant"
	"golexai-be/pkg/ai/persona"

	"github.com/stretchr/testify/assert"
)

type stubResolver struct {
	overrides map[string]string
}

func (s *stubResolver) GetActive(_ context.Context, name, language string) (string, bool) {
	text, ok := s.overrides[name+":"+language]
	return text, ok
}

func TestComposeBasePromptOnly(t *testing.T) {
	a := NewAssembler(persona.NewCatalog(), &stubResolver{})

	prompt := a.Compose(context.Background(), constant.PersonaCommercial, constant.LanguageEnglish, ContextBlocks{})

	assert.Equal(t, constant.PersonaPrompts[constant.PersonaCommercial][constant.LanguageEnglish], prompt)
	assert.NotContains(t, prompt, "**Knowledge Base Reference:**")
	assert.NotContains(t, prompt, "**Case Context:**")
	assert.NotContains(t, prompt, "**Document Context:**")
}

func TestComposeSystemOverrideReplacesPersona(t *testing.T) {
	resolver := &stubResolver{overrides: map[string]string{
		constant.PromptNameSystem + ":en": "You are a custom assistant.",
	}}
	a := NewAssembler(persona.NewCatalog(), resolver)

	prompt := a.Compose(context.Background(), constant.PersonaCommercial, "en", ContextBlocks{})

	assert.Equal(t, "You are a custom assistant.", prompt)
	assert.NotContains(t, prompt, constant.PersonaPrompts[constant.PersonaCommercial]["en"])
}

func TestComposeBlockOrder(t *testing.T) {
	a := NewAssembler(persona.NewCatalog(), &stubResolver{})

	prompt := a.Compose(context.Background(), constant.PersonaPersonal, "en", ContextBlocks{
		KnowledgeExcerpts: []string{"Document: kb-one\nfirst excerpt", "Document: kb-two\nsecond excerpt"},
		CaseExcerpt:       "Case: Smith v. Jones",
		DocumentExcerpt:   "contract body",
	})

	kbIdx := strings.Index(prompt, "**Knowledge Base Reference:**")
	caseIdx := strings.Index(prompt, "**Case Context:**")
	docIdx := strings.Index(prompt, "**Document Context:**")

	assert.Greater(t, kbIdx, 0)
	assert.Greater(t, caseIdx, kbIdx)
	assert.Greater(t, docIdx, caseIdx)

	assert.Contains(t, prompt, "Document: kb-one\nfirst excerpt\n\nDocument: kb-two\nsecond excerpt")
	assert.Contains(t, prompt, "**Case Context:**\nCase: Smith v. Jones")
	assert.Contains(t, prompt, "**Document Context:**\ncontract body")
}

func TestComposeSkipsEmptyBlocks(t *testing.T) {
	a := NewAssembler(persona.NewCatalog(), &stubResolver{})

	prompt := a.Compose(context.Background(), constant.PersonaCommercial, "en", ContextBlocks{
		DocumentExcerpt: "only the document",
	})

	assert.NotContains(t, prompt, "**Knowledge Base Reference:**")
	assert.NotContains(t, prompt, "**Case Context:**")
	assert.Contains(t, prompt, "**Document Context:**\nonly the document")
}
