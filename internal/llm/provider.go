package llm

import (
	"context"
	"encoding/json"
)

// Provider abstracts a text-generation backend. The assessment core
// depends only on this interface; the concrete backend (Anthropic,
// OpenAI, Gemini, OpenRouter) is injected at startup.
type Provider interface {
	// Generate sends a single request to the backend. When the request
	// carries a Schema, the returned Content is JSON validated against
	// it; otherwise Content is the raw text reply.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the model this provider is configured for.
	ModelID() string
}

// Request is one prompt to the backend.
type Request struct {
	// System sets the backend's role and constraints.
	System string

	// Messages is the conversation. Skillgap only ever sends a single
	// user message, but the slice keeps providers general.
	Messages []Message

	// Schema, when set, asks the provider for structured JSON output
	// conforming to the definition. Nil means free text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0,1]. Zero value means deterministic.
	Temperature float64
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema describes the JSON shape expected from the backend.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "question-set".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the backend's reply.
type Response struct {
	// Content is validated JSON when the request carried a Schema,
	// raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token counts for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
