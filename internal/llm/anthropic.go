package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicMaxTokens bounds the reply; 12 bullets fit comfortably
const anthropicMaxTokens = 2048

// AnthropicClient implements Client using the Anthropic Messages API.
// The API has no JSON mode, so JSON requests rely on the instruction and
// the caller strips code fences.
type AnthropicClient struct {
	client anthropic.Client
	model  string
}

// NewAnthropicClient creates a new Anthropic client
func NewAnthropicClient(config *Config) (*AnthropicClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY is required")
	}

	return &AnthropicClient{
		client: anthropic.NewClient(option.WithAPIKey(config.APIKey)),
		model:  config.ModelOrDefault(),
	}, nil
}

// Complete sends one message with the request's system prompt
func (c *AnthropicClient) Complete(ctx context.Context, req Request) (*Response, error) {
	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: anthropicMaxTokens,
		System:    []anthropic.TextBlockParam{{Text: req.System}},
		Messages: []anthropic.MessageParam{{
			Role: anthropic.MessageParamRoleUser,
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: req.User},
			}},
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call Claude API: %w", err)
	}

	var parts []string
	for _, block := range msg.Content {
		if block.Type == "text" {
			parts = append(parts, block.Text)
		}
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("no text content in Claude response")
	}

	return &Response{
		Text:  strings.Join(parts, ""),
		Model: string(msg.Model),
		Usage: &Usage{
			PromptTokens:     int(msg.Usage.InputTokens),
			CompletionTokens: int(msg.Usage.OutputTokens),
			TotalTokens:      int(msg.Usage.InputTokens + msg.Usage.OutputTokens),
		},
	}, nil
}

// Model returns the configured model name
func (c *AnthropicClient) Model() string {
	return c.model
}

// Close is a no-op for the Anthropic client
func (c *AnthropicClient) Close() error {
	return nil
}

var _ Client = (*AnthropicClient)(nil)
