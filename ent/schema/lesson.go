package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Lesson is a generated micro-lesson. Rows are immutable once created;
// lock/completion flags are derived per request and never stored.
type Lesson struct {
	ent.Schema
}

func (Lesson) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("topic").
			NotEmpty().
			Comment("Curriculum topic this lesson belongs to"),
		field.String("level").
			NotEmpty().
			Comment("Beginner, Intermediate, or Advanced"),
		field.String("title").
			NotEmpty(),
		field.Text("explanation").
			NotEmpty(),
		field.Text("analogy").
			NotEmpty(),
		field.Text("key_takeaway").
			NotEmpty(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Lesson) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic", "created_at"),
		index.Fields("topic", "level"),
	}
}
