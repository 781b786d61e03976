package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Certificate is issued when a learner passes a certification exam.
type Certificate struct {
	ent.Schema
}

func (Certificate) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.UUID("exam_id", uuid.UUID{}).
			Immutable(),
		field.String("code").
			NotEmpty().
			Unique().
			Comment("Public verification code, 10 chars A-Z0-9"),
		field.Time("issued_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Certificate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
