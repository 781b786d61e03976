// Package llm abstracts the external content-generation service behind a
// single Provider interface with structured (JSON Schema) output.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the content-generation capability consumed by the flow
// services. A call to Generate is synchronous from the caller's point of
// view and has no side effect on the datastore.
type Provider interface {
	// Generate sends a prompt and returns structured JSON. When the
	// request carries a Schema, the returned Content is validated
	// against it before being handed back.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured
	// to use.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Every flow in this service is
	// single-turn, so this is one user message in practice.
	Messages []Message

	// Schema, when set, selects the provider's native structured-output
	// mechanism and is enforced on the response.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0, 1]. Zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case.
	Name string

	// Description tells the model what this schema represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is the generated JSON. Validated when the request carried
	// a Schema.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage is token accounting for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
