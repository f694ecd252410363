package llm

import (
	"context"
	"encoding/json"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Message is a minimal chat message used by the core chat service.
// Role must be one of: "system", "user", or "assistant".
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Client defines the two capabilities the core service needs from a
// language model: free-form chat completion over a message history, and
// schema-constrained extraction into a caller-supplied struct.
type Client interface {
	Chat(ctx context.Context, messages []Message) (string, error)
	Extract(ctx context.Context, prompt string, out any) error
}

// OpenAIClient talks to any OpenAI-compatible chat completion API. Groq
// and Ollama both expose this wire protocol, so a single client covers
// every supported provider; only the base URL, key and model differ.
type OpenAIClient struct {
	client   *openai.Client
	provider string
	model    string
}

// NewOpenAIClient constructs a client for the given provider. baseURL may
// be empty for the canonical OpenAI endpoint.
func NewOpenAIClient(provider, apiKey, baseURL, model string) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIClient{
		client:   openai.NewClientWithConfig(cfg),
		provider: provider,
		model:    model,
	}
}

// Chat sends the message history to the chat completion API and returns
// the assistant's response.
func (c *OpenAIClient) Chat(ctx context.Context, messages []Message) (string, error) {
	oaMsgs := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		role := m.Role
		if role != openai.ChatMessageRoleSystem && role != openai.ChatMessageRoleUser && role != openai.ChatMessageRoleAssistant {
			// coerce anything unknown to user
			role = openai.ChatMessageRoleUser
		}
		oaMsgs = append(oaMsgs, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    oaMsgs,
		Temperature: 0.1,
	})
	if err != nil {
		return "", &ProviderError{Provider: c.provider, Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// Extract runs the prompt in JSON mode and decodes the reply into out.
// A reply that is not valid JSON for the target schema is reported as a
// ProviderError, the same as an unreachable provider.
func (c *OpenAIClient) Extract(ctx context.Context, prompt string, out any) error {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.1,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return &ProviderError{Provider: c.provider, Err: err}
	}
	if len(resp.Choices) == 0 {
		return &ProviderError{Provider: c.provider, Err: errEmptyCompletion}
	}
	raw := stripCodeFence(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return &ProviderError{Provider: c.provider, Err: err}
	}
	return nil
}

// stripCodeFence removes a markdown code fence some models wrap around
// JSON output even in JSON mode.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}
