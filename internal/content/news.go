package content

import (
	"context"
	"fmt"

	"github.com/adilet/learnloop/internal/llm"
	"github.com/adilet/learnloop/internal/model"
)

const newsSystem = `You produce a daily AI news digest for learners. Each item is a
realistic, plausible development in AI, explained for a non-expert:
what happened, why it matters, and one technical term unpacked in plain
language. Each item carries a two-question comprehension quiz.`

var newsSchema = &llm.Schema{
	Name:        "news-digest",
	Description: "Three AI news items with per-item comprehension quizzes.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"items": map[string]any{
				"type":     "array",
				"minItems": 3,
				"maxItems": 3,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"source":           map[string]any{"type": "string"},
						"title":            map[string]any{"type": "string"},
						"url":              map[string]any{"type": "string"},
						"what_happened":    map[string]any{"type": "string"},
						"why_it_matters":   map[string]any{"type": "string"},
						"term":             map[string]any{"type": "string"},
						"term_explanation": map[string]any{"type": "string"},
						"quiz":             questionArraySchema(2),
					},
					"required": []any{
						"source", "title", "url", "what_happened",
						"why_it_matters", "term", "term_explanation", "quiz",
					},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"items"},
		"additionalProperties": false,
	},
}

type newsItemPayload struct {
	Source          string           `json:"source"`
	Title           string           `json:"title"`
	URL             string           `json:"url"`
	WhatHappened    string           `json:"what_happened"`
	WhyItMatters    string           `json:"why_it_matters"`
	Term            string           `json:"term"`
	TermExplanation string           `json:"term_explanation"`
	Quiz            []model.Question `json:"quiz"`
}

type newsPayload struct {
	Items []newsItemPayload `json:"items"`
}

// News generates the three-item digest for the given civil date.
func (g *Generator) News(ctx context.Context, date string) ([]model.NewsItem, error) {
	prompt := fmt.Sprintf(
		"Produce today's AI news digest for %s: 3 items. For each item give the source, a headline, a URL, what happened (2-3 sentences), why it matters to someone learning AI (1-2 sentences), one technical term with a plain-language explanation, and a 2-question multiple-choice quiz (4 options each).",
		date,
	)

	var payload newsPayload
	err := g.generate(ctx, "news", llm.Request{
		System:      newsSystem,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Schema:      newsSchema,
		MaxTokens:   4000,
		Temperature: 0.8,
	}, &payload)
	if err != nil {
		return nil, err
	}

	items := make([]model.NewsItem, 0, len(payload.Items))
	for _, it := range payload.Items {
		items = append(items, model.NewsItem{
			PublishedDate:   date,
			Source:          it.Source,
			Title:           it.Title,
			URL:             it.URL,
			WhatHappened:    it.WhatHappened,
			WhyItMatters:    it.WhyItMatters,
			Term:            it.Term,
			TermExplanation: it.TermExplanation,
			Quiz:            it.Quiz,
		})
	}
	return items, nil
}
