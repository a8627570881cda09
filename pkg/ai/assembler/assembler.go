package assembler

import (
	"context"
	"strings"

	"golexai-be/internal/constant"
	"golexai-be/pkg/ai/persona"
)

// OverrideResolver reports the active admin-managed prompt template for a
// name and language, if any.
type OverrideResolver interface {
	GetActive(ctx context.Context, name, language string) (string, bool)
}

// ContextBlocks carries the optional context sections appended after the
// persona prompt. Excerpt providers truncate before handing content here.
type ContextBlocks struct {
	KnowledgeExcerpts []string
	CaseExcerpt       string
	DocumentExcerpt   string
}

// Assembler composes the full system prompt for a chat turn. Section order
// is fixed: persona (or its full replacement by the active "system"
// template), knowledge base, case context, document context.
type Assembler struct {
	catalog   *persona.Catalog
	overrides OverrideResolver
}

func NewAssembler(catalog *persona.Catalog, overrides OverrideResolver) *Assembler {
	return &Assembler{
		catalog:   catalog,
		overrides: overrides,
	}
}

// Overrides exposes the resolver for callers that look up non-system
// templates, such as document generation.
func (a *Assembler) Overrides() OverrideResolver {
	return a.overrides
}

// SystemPrompt composes the persona prompt without context blocks, for
// standalone completion calls such as analysis and document generation.
func (a *Assembler) SystemPrompt(ctx context.Context, personaKey, language string) string {
	return a.Compose(ctx, personaKey, language, ContextBlocks{})
}

func (a *Assembler) Compose(ctx context.Context, personaKey, language string, blocks ContextBlocks) string {
	base := a.catalog.Resolve(personaKey, language)
	if override, ok := a.overrides.GetActive(ctx, constant.PromptNameSystem, language); ok {
		base = override
	}

	var prompt strings.Builder
	prompt.WriteString(base)

	if len(blocks.KnowledgeExcerpts) > 0 {
		prompt.WriteString("\n\n**Knowledge Base Reference:**\n")
		prompt.WriteString(strings.Join(blocks.KnowledgeExcerpts, "\n\n"))
	}

	if blocks.CaseExcerpt != "" {
		prompt.WriteString("\n\n**Case Context:**\n")
		prompt.WriteString(blocks.CaseExcerpt)
	}

	if blocks.DocumentExcerpt != "" {
		prompt.WriteString("\n\n**Document Context:**\n")
		prompt.WriteString(blocks.DocumentExcerpt)
	}

	return prompt.String()
}
