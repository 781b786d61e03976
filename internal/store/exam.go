package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/adilet/learnloop/ent"
	"github.com/adilet/learnloop/ent/exam"
	"github.com/adilet/learnloop/internal/model"
)

// ExamRepo manages certification exams, unique per title.
type ExamRepo struct {
	client *ent.Client
}

// ByTitle returns the exam with the given title, or nil when none exists.
func (r *ExamRepo) ByTitle(ctx context.Context, title string) (*model.Exam, error) {
	row, err := r.client.Exam.Query().
		Where(exam.TitleEQ(title)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query exam by title: %w", err)
	}
	return entExamToModel(row)
}

// ByID returns an exam, or ErrNotFound.
func (r *ExamRepo) ByID(ctx context.Context, id uuid.UUID) (*model.Exam, error) {
	row, err := r.client.Exam.Get(ctx, id)
	if err != nil {
		return nil, mapWriteError("get exam", err)
	}
	return entExamToModel(row)
}

// Insert persists a new exam, returning ErrConflict if the title is taken.
func (r *ExamRepo) Insert(ctx context.Context, e model.Exam) (*model.Exam, error) {
	questions, err := questionsToMaps(e.Questions)
	if err != nil {
		return nil, err
	}

	row, err := r.client.Exam.Create().
		SetTitle(e.Title).
		SetDescription(e.Description).
		SetQuestions(questions).
		Save(ctx)
	if err != nil {
		return nil, mapWriteError("insert exam", err)
	}
	return entExamToModel(row)
}

func entExamToModel(row *ent.Exam) (*model.Exam, error) {
	questions, err := questionsFromMaps(row.Questions)
	if err != nil {
		return nil, err
	}
	return &model.Exam{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Questions:   questions,
		CreatedAt:   row.CreatedAt,
	}, nil
}
