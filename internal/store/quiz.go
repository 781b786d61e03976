package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/adilet/learnloop/ent"
	"github.com/adilet/learnloop/ent/quiz"
	"github.com/adilet/learnloop/internal/model"
)

// QuizRepo manages per-lesson quizzes. The unique lesson_id constraint
// makes duplicate inserts surface as ErrConflict.
type QuizRepo struct {
	client *ent.Client
}

// ByLessonID returns the quiz for a lesson, or nil when none exists.
func (r *QuizRepo) ByLessonID(ctx context.Context, lessonID uuid.UUID) (*model.Quiz, error) {
	row, err := r.client.Quiz.Query().
		Where(quiz.LessonIDEQ(lessonID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query quiz by lesson: %w", err)
	}
	return entQuizToModel(row)
}

// List returns the most recent quizzes, capped at limit.
func (r *QuizRepo) List(ctx context.Context, limit int) ([]model.Quiz, error) {
	rows, err := r.client.Quiz.Query().
		Order(ent.Desc(quiz.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}

	out := make([]model.Quiz, len(rows))
	for i, row := range rows {
		q, err := entQuizToModel(row)
		if err != nil {
			return nil, err
		}
		out[i] = *q
	}
	return out, nil
}

// ByID returns a quiz, or ErrNotFound.
func (r *QuizRepo) ByID(ctx context.Context, id uuid.UUID) (*model.Quiz, error) {
	row, err := r.client.Quiz.Get(ctx, id)
	if err != nil {
		return nil, mapWriteError("get quiz", err)
	}
	return entQuizToModel(row)
}

// Insert persists a new quiz, returning ErrConflict if one already
// exists for the lesson.
func (r *QuizRepo) Insert(ctx context.Context, q model.Quiz) (*model.Quiz, error) {
	questions, err := questionsToMaps(q.Questions)
	if err != nil {
		return nil, err
	}

	row, err := r.client.Quiz.Create().
		SetLessonID(q.LessonID).
		SetQuestions(questions).
		Save(ctx)
	if err != nil {
		return nil, mapWriteError("insert quiz", err)
	}
	return entQuizToModel(row)
}

func entQuizToModel(row *ent.Quiz) (*model.Quiz, error) {
	questions, err := questionsFromMaps(row.Questions)
	if err != nil {
		return nil, err
	}
	return &model.Quiz{
		ID:        row.ID,
		LessonID:  row.LessonID,
		Questions: questions,
		CreatedAt: row.CreatedAt,
	}, nil
}
