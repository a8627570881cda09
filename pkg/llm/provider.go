package llm

import (
	"context"
)

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string `json:"role"` // "user", "assistant", "system"
	Content string `json:"content"`
}

// CompletionResult carries the assistant reply and the token usage the
// upstream reported for the whole call.
type CompletionResult struct {
	Content    string
	TokensUsed int
}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// CompletionProvider defines the contract for any LLM backend
type CompletionProvider interface {
	// Complete sends a system prompt plus chat history to the model and
	// returns the assistant reply with usage accounting.
	Complete(ctx context.Context, system string, history []Message, options ...Option) (*CompletionResult, error)
}
