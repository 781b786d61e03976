package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// NewsItem is one entry of a daily news digest, with an embedded
// comprehension quiz. Items are keyed by their publication date.
type NewsItem struct {
	ent.Schema
}

func (NewsItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("published_date").
			NotEmpty().
			Comment("Digest day in YYYY-MM-DD form"),
		field.String("source").
			NotEmpty(),
		field.String("title").
			NotEmpty(),
		field.String("url").
			Optional(),
		field.Text("what_happened").
			NotEmpty(),
		field.Text("why_it_matters").
			NotEmpty(),
		field.String("term").
			Optional(),
		field.Text("term_explanation").
			Optional(),
		field.JSON("quiz", []map[string]any{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (NewsItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("published_date"),
		index.Fields("published_date", "title").Unique(),
	}
}
