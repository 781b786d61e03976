package content

import (
	"context"
	"fmt"

	"github.com/adilet/learnloop/internal/llm"
	"github.com/adilet/learnloop/internal/model"
)

const quizSystem = `You write comprehension quizzes for AI micro-lessons. Questions
test understanding of the lesson text, not trivia. Wrong options are
plausible but clearly incorrect to someone who read the lesson.`

var quizSchema = &llm.Schema{
	Name:        "lesson-quiz",
	Description: "Three multiple-choice questions for one lesson.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": questionArraySchema(3),
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

type quizPayload struct {
	Questions []model.Question `json:"questions"`
}

// Quiz generates the three-question quiz for a lesson.
func (g *Generator) Quiz(ctx context.Context, lesson model.Lesson) ([]model.Question, error) {
	prompt := fmt.Sprintf(
		"Write 3 multiple-choice questions (4 options each) testing this lesson.\n\nTitle: %s\n\nExplanation:\n%s\n\nKey takeaway: %s",
		lesson.Title, lesson.Explanation, lesson.KeyTakeaway,
	)

	var payload quizPayload
	err := g.generate(ctx, "quiz", llm.Request{
		System:      quizSystem,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Schema:      quizSchema,
		MaxTokens:   1500,
		Temperature: 0.5,
	}, &payload)
	if err != nil {
		return nil, err
	}
	return payload.Questions, nil
}
