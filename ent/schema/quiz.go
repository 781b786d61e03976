package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Quiz holds the generated question set for a single lesson. The unique
// lesson_id index is what turns concurrent generation races into insert
// conflicts the guard can recover from.
type Quiz struct {
	ent.Schema
}

func (Quiz) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("lesson_id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.JSON("questions", []map[string]any{}).
			Comment("Question list as generated, one object per question"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Quiz) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lesson_id").Unique(),
	}
}
