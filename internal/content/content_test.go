package content

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adilet/learnloop/internal/llm"
	"github.com/adilet/learnloop/internal/model"
)

func TestLessonDecodesPayload(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"title": "What Is a Token?",
			"explanation": "Models read text in chunks called tokens.",
			"analogy": "Like syllables for a machine.",
			"key_takeaway": "Token count drives cost and limits."
		}`),
	})
	g := NewGenerator(mock)

	lesson, err := g.Lesson(context.Background(), "LLM Basics", model.LevelBeginner, []string{"Intro to LLMs"})
	require.NoError(t, err)

	assert.Equal(t, "What Is a Token?", lesson.Title)
	assert.Equal(t, "LLM Basics", lesson.Topic)
	assert.Equal(t, model.LevelBeginner, lesson.Level)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Contains(t, req.Messages[0].Content, "Intro to LLMs", "previous titles go into the prompt")
	require.NotNil(t, req.Schema)
	assert.Equal(t, "micro-lesson", req.Schema.Name)
}

func TestQuizDecodesQuestions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"questions": [
			{"question": "Q1?", "options": ["a","b","c","d"], "correct_index": 2, "explanation": "e1"},
			{"question": "Q2?", "options": ["a","b","c","d"], "correct_index": 0, "explanation": "e2"},
			{"question": "Q3?", "options": ["a","b","c","d"], "correct_index": 3, "explanation": "e3"}
		]}`),
	})
	g := NewGenerator(mock)

	questions, err := g.Quiz(context.Background(), model.Lesson{
		Title:       "What Is a Token?",
		Explanation: "Models read text in chunks called tokens.",
		KeyTakeaway: "Token count drives cost and limits.",
	})
	require.NoError(t, err)
	require.Len(t, questions, 3)
	assert.Equal(t, 2, questions[0].CorrectIndex)

	assert.Contains(t, mock.Calls[0].Messages[0].Content, "What Is a Token?")
}

func TestExamCarriesTitleThrough(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"description": "Covers AI fundamentals.", "questions": []}`),
	})
	g := NewGenerator(mock)

	exam, err := g.Exam(context.Background(), "AI Fundamentals Certification Exam")
	require.NoError(t, err)
	assert.Equal(t, "AI Fundamentals Certification Exam", exam.Title)
	assert.Equal(t, "Covers AI fundamentals.", exam.Description)
}

func TestNewsStampsDate(t *testing.T) {
	item := `{
		"source": "Example Wire", "title": "New model released", "url": "https://example.com/a",
		"what_happened": "A lab shipped a model.", "why_it_matters": "Cheaper inference.",
		"term": "distillation", "term_explanation": "Training a small model to mimic a big one.",
		"quiz": []
	}`
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"items": [` + item + `,` + item + `,` + item + `]}`),
	})
	g := NewGenerator(mock)

	items, err := g.News(context.Background(), "2026-08-30")
	require.NoError(t, err)
	require.Len(t, items, 3)
	for _, it := range items {
		assert.Equal(t, "2026-08-30", it.PublishedDate)
	}
}

func TestGenerateWrapsProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue: provider unavailable
	g := NewGenerator(mock)

	_, err := g.Practice(context.Background(), "Summarize a doc", "please summarize")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generating practice")
}
