package content

import (
	"context"
	"fmt"

	"github.com/adilet/learnloop/internal/llm"
	"github.com/adilet/learnloop/internal/model"
)

const practiceSystem = `You review prompts written by learners practicing prompt
engineering. Feedback is specific and encouraging: name what works,
name what to improve, and show a stronger version of their prompt.`

var practiceSchema = &llm.Schema{
	Name:        "practice-feedback",
	Description: "Structured feedback on a learner's practice prompt.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"strengths": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 1,
			},
			"improvements": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 1,
			},
			"improved_prompt": map[string]any{"type": "string"},
		},
		"required":             []any{"strengths", "improvements", "improved_prompt"},
		"additionalProperties": false,
	},
}

// Practice reviews a learner's prompt for the given task and returns
// structured feedback.
func (g *Generator) Practice(ctx context.Context, task, userPrompt string) (model.PracticeFeedback, error) {
	prompt := fmt.Sprintf(
		"Task given to the learner:\n%s\n\nThe learner's prompt:\n%s\n\nReview the prompt: list its strengths, list concrete improvements, and write an improved version.",
		task, userPrompt,
	)

	var payload model.PracticeFeedback
	err := g.generate(ctx, "practice", llm.Request{
		System:      practiceSystem,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Schema:      practiceSchema,
		MaxTokens:   1200,
		Temperature: 0.6,
	}, &payload)
	if err != nil {
		return model.PracticeFeedback{}, err
	}
	return payload, nil
}
