package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Exam is a certification exam. There is one row per exam title; the
// unique title constraint backs the generation guard for exams.
type Exam struct {
	ent.Schema
}

func (Exam) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("title").
			NotEmpty().
			Unique(),
		field.Text("description").
			Optional(),
		field.JSON("questions", []map[string]any{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
