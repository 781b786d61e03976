package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/adilet/learnloop/internal/llm"
	"github.com/adilet/learnloop/internal/model"
)

const lessonSystem = `You are an expert AI educator writing micro-lessons for busy
professionals. Lessons are plain-spoken, concrete, and free of hype.
Each lesson teaches exactly one idea in under three minutes of reading.`

var lessonSchema = &llm.Schema{
	Name:        "micro-lesson",
	Description: "A single micro-lesson on an AI topic.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":        map[string]any{"type": "string"},
			"explanation":  map[string]any{"type": "string"},
			"analogy":      map[string]any{"type": "string"},
			"key_takeaway": map[string]any{"type": "string"},
		},
		"required":             []any{"title", "explanation", "analogy", "key_takeaway"},
		"additionalProperties": false,
	},
}

type lessonPayload struct {
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	Analogy     string `json:"analogy"`
	KeyTakeaway string `json:"key_takeaway"`
}

// Lesson generates one micro-lesson for the topic at the given level.
// previousTitles steers the model away from material already covered;
// the caller still deduplicates by title afterwards.
func (g *Generator) Lesson(ctx context.Context, topic string, level model.Level, previousTitles []string) (model.Lesson, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a %s-level micro-lesson about %q.\n", strings.ToLower(string(level)), topic)
	b.WriteString("Include a short title, a 2-3 paragraph explanation, a one-sentence everyday analogy, and a one-sentence key takeaway.\n")
	if len(previousTitles) > 0 {
		b.WriteString("The learner has already covered these lessons, so pick a new angle:\n")
		for _, title := range previousTitles {
			fmt.Fprintf(&b, "- %s\n", title)
		}
	}

	var payload lessonPayload
	err := g.generate(ctx, "lesson", llm.Request{
		System:      lessonSystem,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: b.String()}},
		Schema:      lessonSchema,
		MaxTokens:   1500,
		Temperature: 0.7,
	}, &payload)
	if err != nil {
		return model.Lesson{}, err
	}

	return model.Lesson{
		Topic:       topic,
		Level:       level,
		Title:       payload.Title,
		Explanation: payload.Explanation,
		Analogy:     payload.Analogy,
		KeyTakeaway: payload.KeyTakeaway,
	}, nil
}
