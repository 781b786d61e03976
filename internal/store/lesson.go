package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/adilet/learnloop/ent"
	"github.com/adilet/learnloop/ent/lesson"
	"github.com/adilet/learnloop/internal/model"
)

// LessonRepo manages immutable lesson rows. Lessons are created once and
// never updated or deleted.
type LessonRepo struct {
	client *ent.Client
}

// FirstForScope returns the earliest lesson matching (topic, level)
// created at or after since, or nil when none exists. This is the lookup
// half of the daily-lesson generation guard.
func (r *LessonRepo) FirstForScope(ctx context.Context, topic string, level model.Level, since time.Time) (*model.Lesson, error) {
	row, err := r.client.Lesson.Query().
		Where(
			lesson.TopicEQ(topic),
			lesson.LevelEQ(string(level)),
			lesson.CreatedAtGTE(since),
		).
		Order(ent.Asc(lesson.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query lesson for scope: %w", err)
	}
	return entLessonToModel(row), nil
}

// ListByTopic returns every lesson of a topic ordered by creation time.
func (r *LessonRepo) ListByTopic(ctx context.Context, topic string) ([]model.Lesson, error) {
	rows, err := r.client.Lesson.Query().
		Where(lesson.TopicEQ(topic)).
		Order(ent.Asc(lesson.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lessons by topic: %w", err)
	}

	out := make([]model.Lesson, len(rows))
	for i, row := range rows {
		out[i] = *entLessonToModel(row)
	}
	return out, nil
}

// List returns the most recent lessons across all topics, capped at
// limit.
func (r *LessonRepo) List(ctx context.Context, limit int) ([]model.Lesson, error) {
	rows, err := r.client.Lesson.Query().
		Order(ent.Desc(lesson.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}

	out := make([]model.Lesson, len(rows))
	for i, row := range rows {
		out[i] = *entLessonToModel(row)
	}
	return out, nil
}

// ByID returns a single lesson, or ErrNotFound.
func (r *LessonRepo) ByID(ctx context.Context, id uuid.UUID) (*model.Lesson, error) {
	row, err := r.client.Lesson.Get(ctx, id)
	if err != nil {
		return nil, mapWriteError("get lesson", err)
	}
	return entLessonToModel(row), nil
}

// Insert persists a new lesson and returns the stored row.
func (r *LessonRepo) Insert(ctx context.Context, l model.Lesson) (*model.Lesson, error) {
	row, err := r.client.Lesson.Create().
		SetTopic(l.Topic).
		SetLevel(string(l.Level)).
		SetTitle(l.Title).
		SetExplanation(l.Explanation).
		SetAnalogy(l.Analogy).
		SetKeyTakeaway(l.KeyTakeaway).
		Save(ctx)
	if err != nil {
		return nil, mapWriteError("insert lesson", err)
	}
	return entLessonToModel(row), nil
}

func entLessonToModel(row *ent.Lesson) *model.Lesson {
	return &model.Lesson{
		ID:          row.ID,
		Topic:       row.Topic,
		Level:       model.Level(row.Level),
		Title:       row.Title,
		Explanation: row.Explanation,
		Analogy:     row.Analogy,
		KeyTakeaway: row.KeyTakeaway,
		CreatedAt:   row.CreatedAt,
	}
}
