package factory

import (
	"fmt"

	"golexai-be/pkg/llm"
	"golexai-be/pkg/llm/openai"
)

func NewCompletionProvider(providerType, apiKey, baseURL, model string) (llm.CompletionProvider, error) {
	switch providerType {
	case "openai":
		return openai.NewOpenAIProvider(apiKey, baseURL, model), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
