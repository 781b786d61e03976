package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// UserProfile holds learner-editable profile fields. Created lazily on
// first read.
type UserProfile struct {
	ent.Schema
}

func (UserProfile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.String("full_name").
			Optional(),
		field.String("avatar_url").
			Optional(),
		field.String("target_goal").
			Optional(),
		field.String("skill_level").
			Optional(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
