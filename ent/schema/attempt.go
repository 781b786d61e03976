package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
	"github.com/google/uuid"
)

// AttemptMixin provides the fields shared by every attempt log. Attempts
// are append-only: one row per submission, never updated or deleted.
type AttemptMixin struct {
	mixin.Schema
}

func (AttemptMixin) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (AttemptMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}

// LessonAttempt records a lesson completion submission.
type LessonAttempt struct {
	ent.Schema
}

func (LessonAttempt) Mixin() []ent.Mixin {
	return []ent.Mixin{AttemptMixin{}}
}

func (LessonAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("lesson_id", uuid.UUID{}).
			Immutable(),
		field.Int("score"),
	}
}

func (LessonAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "lesson_id"),
	}
}

// QuizAttempt records a quiz submission with the raw answer indices.
type QuizAttempt struct {
	ent.Schema
}

func (QuizAttempt) Mixin() []ent.Mixin {
	return []ent.Mixin{AttemptMixin{}}
}

func (QuizAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("quiz_id", uuid.UUID{}).
			Immutable(),
		field.Int("score"),
		field.JSON("answers", []int{}),
	}
}

// PracticeAttempt records a prompt-practice submission and the feedback
// generated for it.
type PracticeAttempt struct {
	ent.Schema
}

func (PracticeAttempt) Mixin() []ent.Mixin {
	return []ent.Mixin{AttemptMixin{}}
}

func (PracticeAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.Text("task").
			NotEmpty(),
		field.Text("user_prompt").
			NotEmpty(),
		field.JSON("feedback", map[string]any{}),
	}
}

// ExamAttempt records an exam submission.
type ExamAttempt struct {
	ent.Schema
}

func (ExamAttempt) Mixin() []ent.Mixin {
	return []ent.Mixin{AttemptMixin{}}
}

func (ExamAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("exam_id", uuid.UUID{}).
			Immutable(),
		field.Int("score"),
		field.Bool("passed"),
	}
}

// NewsQuizAttempt records a news comprehension quiz submission.
type NewsQuizAttempt struct {
	ent.Schema
}

func (NewsQuizAttempt) Mixin() []ent.Mixin {
	return []ent.Mixin{AttemptMixin{}}
}

func (NewsQuizAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("news_id", uuid.UUID{}).
			Immutable(),
		field.Int("score"),
	}
}
