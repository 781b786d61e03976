package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// UserBadge is an achievement earned by a learner.
type UserBadge struct {
	ent.Schema
}

func (UserBadge) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("badge_key").
			NotEmpty(),
		field.String("badge_title").
			NotEmpty(),
		field.String("badge_description").
			Default(""),
		field.Time("earned_at").
			Default(time.Now).
			Immutable(),
	}
}

func (UserBadge) Indexes() []ent.Index {
	return []ent.Index{
		// One badge of a kind per learner.
		index.Fields("user_id", "badge_key").
			Unique(),
	}
}
