// Package llm provides LLM configuration and client abstractions for the
// completion providers the tailoring step can talk to.
package llm

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderOpenAI is the OpenAI Chat Completions provider
	ProviderOpenAI Provider = "openai"
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderAnthropic is the Anthropic/Claude provider
	ProviderAnthropic Provider = "anthropic"
)

// Default model identifiers per provider
const (
	DefaultOpenAIModel    = "gpt-4o-mini"
	DefaultGeminiModel    = "gemini-2.5-flash"
	DefaultAnthropicModel = "claude-3-7-sonnet-latest"

	// DefaultOpenAIBaseURL is the Chat Completions API root
	DefaultOpenAIBaseURL = "https://api.openai.com/v1"
)

// Config holds the client configuration, built once and passed to NewClient
type Config struct {
	Provider Provider
	Model    string
	APIKey   string
	// BaseURL overrides the OpenAI API root (tests, compatible gateways)
	BaseURL string
}

// DefaultModel returns the model used when no override is configured
func DefaultModel(p Provider) string {
	switch p {
	case ProviderGemini:
		return DefaultGeminiModel
	case ProviderAnthropic:
		return DefaultAnthropicModel
	default:
		return DefaultOpenAIModel
	}
}

// ModelOrDefault returns the configured model, falling back to the provider default
func (c *Config) ModelOrDefault() string {
	if c.Model != "" {
		return c.Model
	}
	return DefaultModel(c.Provider)
}
