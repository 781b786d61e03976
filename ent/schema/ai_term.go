package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// AITerm is one glossary entry; the term of the day rotates over all
// rows by day of year.
type AITerm struct {
	ent.Schema
}

func (AITerm) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("term").
			NotEmpty().
			Unique(),
		field.String("definition").
			NotEmpty(),
		field.String("category").
			Default(""),
		field.String("difficulty").
			Default(""),
	}
}
