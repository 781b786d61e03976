package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/adilet/learnloop/ent"
	"github.com/adilet/learnloop/ent/lessonattempt"
	"github.com/adilet/learnloop/internal/model"
)

// AttemptRepo appends to the attempt logs. Attempts are evidence rows:
// written once, read as existence or aggregate checks, never mutated.
type AttemptRepo struct {
	client *ent.Client
}

// InsertLessonAttempt logs a lesson completion.
func (r *AttemptRepo) InsertLessonAttempt(ctx context.Context, userID string, lessonID uuid.UUID, score int) error {
	_, err := r.client.LessonAttempt.Create().
		SetUserID(userID).
		SetLessonID(lessonID).
		SetScore(score).
		Save(ctx)
	if err != nil {
		return mapWriteError("insert lesson attempt", err)
	}
	return nil
}

// CompletedLessonIDs returns the set of lesson ids the learner has at
// least one attempt for. Set membership, not a counter: repeated
// completions of the same lesson collapse to one entry.
func (r *AttemptRepo) CompletedLessonIDs(ctx context.Context, userID string) (map[uuid.UUID]bool, error) {
	var rows []struct {
		LessonID uuid.UUID `json:"lesson_id"`
	}
	err := r.client.LessonAttempt.Query().
		Where(lessonattempt.UserIDEQ(userID)).
		Select(lessonattempt.FieldLessonID).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("query completed lessons: %w", err)
	}

	out := make(map[uuid.UUID]bool, len(rows))
	for _, row := range rows {
		out[row.LessonID] = true
	}
	return out, nil
}

// InsertQuizAttempt logs a quiz submission with the raw answers.
func (r *AttemptRepo) InsertQuizAttempt(ctx context.Context, userID string, quizID uuid.UUID, score int, answers []int) error {
	_, err := r.client.QuizAttempt.Create().
		SetUserID(userID).
		SetQuizID(quizID).
		SetScore(score).
		SetAnswers(answers).
		Save(ctx)
	if err != nil {
		return mapWriteError("insert quiz attempt", err)
	}
	return nil
}

// InsertPracticeAttempt logs a practice submission and its feedback.
func (r *AttemptRepo) InsertPracticeAttempt(ctx context.Context, userID, task, userPrompt string, feedback model.PracticeFeedback) error {
	fb := map[string]any{
		"strengths":       feedback.Strengths,
		"improvements":    feedback.Improvements,
		"improved_prompt": feedback.ImprovedPrompt,
	}
	_, err := r.client.PracticeAttempt.Create().
		SetUserID(userID).
		SetTask(task).
		SetUserPrompt(userPrompt).
		SetFeedback(fb).
		Save(ctx)
	if err != nil {
		return mapWriteError("insert practice attempt", err)
	}
	return nil
}

// InsertExamAttempt logs an exam submission.
func (r *AttemptRepo) InsertExamAttempt(ctx context.Context, userID string, examID uuid.UUID, score int, passed bool) error {
	_, err := r.client.ExamAttempt.Create().
		SetUserID(userID).
		SetExamID(examID).
		SetScore(score).
		SetPassed(passed).
		Save(ctx)
	if err != nil {
		return mapWriteError("insert exam attempt", err)
	}
	return nil
}

// InsertNewsQuizAttempt logs a news comprehension quiz submission.
func (r *AttemptRepo) InsertNewsQuizAttempt(ctx context.Context, userID string, newsID uuid.UUID, score int) error {
	_, err := r.client.NewsQuizAttempt.Create().
		SetUserID(userID).
		SetNewsID(newsID).
		SetScore(score).
		Save(ctx)
	if err != nil {
		return mapWriteError("insert news quiz attempt", err)
	}
	return nil
}

// InsertLessonView logs a lesson open for analytics.
func (r *AttemptRepo) InsertLessonView(ctx context.Context, userID string, lessonID uuid.UUID) error {
	_, err := r.client.LessonViewEvent.Create().
		SetUserID(userID).
		SetLessonID(lessonID).
		Save(ctx)
	if err != nil {
		return mapWriteError("insert lesson view", err)
	}
	return nil
}
