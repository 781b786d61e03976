package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// UserStats is the per-learner counter record. Exactly one row per user:
// the unique user_id constraint converts concurrent lazy-creation races
// into insert conflicts that callers reconcile by switching to update.
type UserStats struct {
	ent.Schema
}

func (UserStats) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.Int("xp_total").
			Default(0).
			NonNegative(),
		field.Int("streak_days").
			Default(0).
			NonNegative(),
		field.String("last_active_date").
			Optional().
			Comment("YYYY-MM-DD of the last streak-counted activity"),
		field.Int("lessons_completed").
			Default(0).
			NonNegative(),
		field.Int("quizzes_completed").
			Default(0).
			NonNegative(),
		field.Int("practice_completed").
			Default(0).
			NonNegative(),
		field.Int("exams_attempted").
			Default(0).
			NonNegative(),
		field.Int("certificates_earned").
			Default(0).
			NonNegative(),
		field.Int("daily_minutes").
			Default(0).
			NonNegative(),
		field.String("last_activity_date").
			Optional().
			Comment("YYYY-MM-DD of the last counter update, bounds daily_minutes"),
	}
}
