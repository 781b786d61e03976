// Package content turns Provider calls into domain objects: lessons,
// quizzes, exams, practice feedback, and news digests. Each flow owns
// its prompt and its JSON Schema; the provider enforces the schema, so
// decoding here does not re-validate.
package content

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/adilet/learnloop/internal/llm"
)

// Generator produces structured learning content through an llm.Provider.
type Generator struct {
	provider llm.Provider
}

// NewGenerator wraps the given provider.
func NewGenerator(provider llm.Provider) *Generator {
	return &Generator{provider: provider}
}

func (g *Generator) generate(ctx context.Context, purpose string, req llm.Request, out any) error {
	ctx = llm.WithPurpose(ctx, purpose)
	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return fmt.Errorf("generating %s: %w", purpose, err)
	}
	if err := json.Unmarshal(resp.Content, out); err != nil {
		return fmt.Errorf("decoding %s response: %w", purpose, err)
	}
	return nil
}

// questionSchema is the shared definition of one multiple-choice
// question: four options, a correct index, and an explanation.
func questionSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{"type": "string"},
			"options": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 4,
				"maxItems": 4,
			},
			"correct_index": map[string]any{
				"type":    "integer",
				"minimum": 0,
				"maximum": 3,
			},
			"explanation": map[string]any{"type": "string"},
		},
		"required":             []any{"question", "options", "correct_index", "explanation"},
		"additionalProperties": false,
	}
}

func questionArraySchema(n int) map[string]any {
	return map[string]any{
		"type":     "array",
		"items":    questionSchema(),
		"minItems": n,
		"maxItems": n,
	}
}
