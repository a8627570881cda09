package constant

// Prompt template names resolved from the prompts table. Templates use
// {placeholder} markers substituted at call time, same convention as the
// admin-managed rows.
const (
	PromptNameSystem             = "system"
	PromptNameDocumentAnalysis   = "document_analysis"
	PromptNameDocumentGeneration = "document_generation_" // + document type suffix

	PlaceholderDocumentText = "{document_text}"
	PlaceholderDocumentType = "{document_type}"
	PlaceholderContext      = "{context}"
)

const DefaultDocumentAnalysisPromptEN = `Analyze the following legal document and provide:

**1. Summary of Key Points**
- Main findings and terms

**2. Important Legal Terms**
- Definitions and their significance

**3. Potential Issues or Concerns**
- Areas requiring attention

**4. Recommendations**
- Suggested actions and improvements

**Document:**
{document_text}`

const DefaultDocumentAnalysisPromptPL = `Przeanalizuj poniższy dokument prawny i przedstaw:

**1. Podsumowanie kluczowych punktów**
- Główne ustalenia i warunki

**2. Ważne terminy prawne**
- Definicje i ich znaczenie

**3. Potencjalne problemy lub wątpliwości**
- Obszary wymagające uwagi

**4. Rekomendacje**
- Sugerowane działania i poprawki

**Dokument:**
{document_text}`

const DefaultDocumentGenerationPromptEN = `Generate a professional legal document of type: **{document_type}**

Based on the following context:
{context}

Please provide:
1. Complete document structure
2. All necessary clauses
3. Professional formatting
4. Placeholders marked as [TO BE COMPLETED]`

const DefaultDocumentGenerationPromptPL = `Wygeneruj profesjonalny dokument prawny typu: **{document_type}**

Na podstawie następującego kontekstu:
{context}

Proszę o dostarczenie:
1. Pełnej struktury dokumentu
2. Wszystkich niezbędnych klauzul
3. Profesjonalnego formatowania
4. Miejsc do uzupełnienia oznaczonych jako [UZUPEŁNIJ]`
