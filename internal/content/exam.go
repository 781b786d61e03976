package content

import (
	"context"
	"fmt"

	"github.com/adilet/learnloop/internal/llm"
	"github.com/adilet/learnloop/internal/model"
)

const examSystem = `You write certification exams covering the fundamentals of AI:
machine learning basics, neural networks, LLMs, prompt engineering, and
responsible AI use. Questions span difficulty from recall to applied
reasoning. Every question has exactly four options.`

var examSchema = &llm.Schema{
	Name:        "certification-exam",
	Description: "A 15-question certification exam with a short description.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"description": map[string]any{"type": "string"},
			"questions":   questionArraySchema(15),
		},
		"required":             []any{"description", "questions"},
		"additionalProperties": false,
	},
}

type examPayload struct {
	Description string           `json:"description"`
	Questions   []model.Question `json:"questions"`
}

// Exam generates a certification exam with the given title.
func (g *Generator) Exam(ctx context.Context, title string) (model.Exam, error) {
	prompt := fmt.Sprintf(
		"Write a certification exam titled %q: a one-paragraph description and 15 multiple-choice questions (4 options each). Cover core concepts, practical prompting, and responsible use. Mix easy, medium, and hard questions.",
		title,
	)

	var payload examPayload
	err := g.generate(ctx, "exam", llm.Request{
		System:      examSystem,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Schema:      examSchema,
		MaxTokens:   6000,
		Temperature: 0.5,
	}, &payload)
	if err != nil {
		return model.Exam{}, err
	}

	return model.Exam{
		Title:       title,
		Description: payload.Description,
		Questions:   payload.Questions,
	}, nil
}
