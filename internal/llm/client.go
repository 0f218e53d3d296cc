package llm

import (
	"context"
	"fmt"
)

// Client is an abstraction over LLM providers
type Client interface {
	// Complete sends one system+user exchange and returns the model's reply
	Complete(ctx context.Context, req Request) (*Response, error)
	// Model returns the model identifier requests are sent to
	Model() string
	// Close releases any resources held by the client
	Close() error
}

// Request is a single completion request
type Request struct {
	System string
	User   string
	// JSON asks the provider to constrain the reply to a JSON object
	JSON bool
}

// Response is the text reply and, when reported, token usage
type Response struct {
	Text  string
	Model string
	Usage *Usage
}

// Usage reports token counts for one call
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config) (Client, error) {
	if config == nil {
		return nil, fmt.Errorf("llm config is required")
	}

	switch config.Provider {
	case ProviderOpenAI, "":
		return NewOpenAIClient(config)
	case ProviderGemini:
		return NewGeminiClient(ctx, config)
	case ProviderAnthropic:
		return NewAnthropicClient(config)
	default:
		return nil, fmt.Errorf("unsupported provider %q", config.Provider)
	}
}
