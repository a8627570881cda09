package persona

import (
	"fmt"

	"golexai-be/internal/constant"
)

// Catalog resolves the base system prompt for a legal persona and language.
// The texts are static configuration; an active admin-managed "system"
// prompt template replaces the resolved text entirely downstream.
type Catalog struct {
	prompts map[string]map[string]string
}

func NewCatalog() *Catalog {
	return &Catalog{
		prompts: constant.PersonaPrompts,
	}
}

// Resolve returns the base prompt for the given persona and language.
// Unknown personas fall back to commercial, missing languages to English.
func (c *Catalog) Resolve(personaKey, language string) string {
	languages, ok := c.prompts[personaKey]
	if !ok {
		languages = c.prompts[constant.PersonaCommercial]
	}
	text, ok := languages[language]
	if !ok {
		text = languages[constant.LanguageEnglish]
	}
	return text
}

// MustValidate panics when the catalog is missing a persona or language
// combination. Called once at startup.
func (c *Catalog) MustValidate() {
	personas := []string{constant.PersonaCommercial, constant.PersonaPersonal}
	languages := []string{constant.LanguageEnglish, constant.LanguagePolish}
	for _, p := range personas {
		for _, l := range languages {
			if c.prompts[p][l] == "" {
				panic(fmt.Sprintf("persona catalog missing prompt for %s/%s", p, l))
			}
		}
	}
}
