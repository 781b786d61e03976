// Code generated by ent, DO NOT EDIT.

package userbadge

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/adilet/learnloop/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEQ(FieldUserID, v))
}

// BadgeKey applies equality check predicate on the "badge_key" field. It's identical to BadgeKeyEQ.
func BadgeKey(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEQ(FieldBadgeKey, v))
}

// BadgeTitle applies equality check predicate on the "badge_title" field. It's identical to BadgeTitleEQ.
func BadgeTitle(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEQ(FieldBadgeTitle, v))
}

// BadgeDescription applies equality check predicate on the "badge_description" field. It's identical to BadgeDescriptionEQ.
func BadgeDescription(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEQ(FieldBadgeDescription, v))
}

// EarnedAt applies equality check predicate on the "earned_at" field. It's identical to EarnedAtEQ.
func EarnedAt(v time.Time) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEQ(FieldEarnedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldContainsFold(FieldUserID, v))
}

// BadgeKeyEQ applies the EQ predicate on the "badge_key" field.
func BadgeKeyEQ(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEQ(FieldBadgeKey, v))
}

// BadgeKeyNEQ applies the NEQ predicate on the "badge_key" field.
func BadgeKeyNEQ(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldNEQ(FieldBadgeKey, v))
}

// BadgeKeyIn applies the In predicate on the "badge_key" field.
func BadgeKeyIn(vs ...string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldIn(FieldBadgeKey, vs...))
}

// BadgeKeyNotIn applies the NotIn predicate on the "badge_key" field.
func BadgeKeyNotIn(vs ...string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldNotIn(FieldBadgeKey, vs...))
}

// BadgeKeyGT applies the GT predicate on the "badge_key" field.
func BadgeKeyGT(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldGT(FieldBadgeKey, v))
}

// BadgeKeyGTE applies the GTE predicate on the "badge_key" field.
func BadgeKeyGTE(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldGTE(FieldBadgeKey, v))
}

// BadgeKeyLT applies the LT predicate on the "badge_key" field.
func BadgeKeyLT(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldLT(FieldBadgeKey, v))
}

// BadgeKeyLTE applies the LTE predicate on the "badge_key" field.
func BadgeKeyLTE(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldLTE(FieldBadgeKey, v))
}

// BadgeKeyContains applies the Contains predicate on the "badge_key" field.
func BadgeKeyContains(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldContains(FieldBadgeKey, v))
}

// BadgeKeyHasPrefix applies the HasPrefix predicate on the "badge_key" field.
func BadgeKeyHasPrefix(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldHasPrefix(FieldBadgeKey, v))
}

// BadgeKeyHasSuffix applies the HasSuffix predicate on the "badge_key" field.
func BadgeKeyHasSuffix(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldHasSuffix(FieldBadgeKey, v))
}

// BadgeKeyEqualFold applies the EqualFold predicate on the "badge_key" field.
func BadgeKeyEqualFold(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEqualFold(FieldBadgeKey, v))
}

// BadgeKeyContainsFold applies the ContainsFold predicate on the "badge_key" field.
func BadgeKeyContainsFold(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldContainsFold(FieldBadgeKey, v))
}

// BadgeTitleEQ applies the EQ predicate on the "badge_title" field.
func BadgeTitleEQ(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEQ(FieldBadgeTitle, v))
}

// BadgeTitleNEQ applies the NEQ predicate on the "badge_title" field.
func BadgeTitleNEQ(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldNEQ(FieldBadgeTitle, v))
}

// BadgeTitleIn applies the In predicate on the "badge_title" field.
func BadgeTitleIn(vs ...string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldIn(FieldBadgeTitle, vs...))
}

// BadgeTitleNotIn applies the NotIn predicate on the "badge_title" field.
func BadgeTitleNotIn(vs ...string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldNotIn(FieldBadgeTitle, vs...))
}

// BadgeTitleGT applies the GT predicate on the "badge_title" field.
func BadgeTitleGT(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldGT(FieldBadgeTitle, v))
}

// BadgeTitleGTE applies the GTE predicate on the "badge_title" field.
func BadgeTitleGTE(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldGTE(FieldBadgeTitle, v))
}

// BadgeTitleLT applies the LT predicate on the "badge_title" field.
func BadgeTitleLT(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldLT(FieldBadgeTitle, v))
}

// BadgeTitleLTE applies the LTE predicate on the "badge_title" field.
func BadgeTitleLTE(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldLTE(FieldBadgeTitle, v))
}

// BadgeTitleContains applies the Contains predicate on the "badge_title" field.
func BadgeTitleContains(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldContains(FieldBadgeTitle, v))
}

// BadgeTitleHasPrefix applies the HasPrefix predicate on the "badge_title" field.
func BadgeTitleHasPrefix(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldHasPrefix(FieldBadgeTitle, v))
}

// BadgeTitleHasSuffix applies the HasSuffix predicate on the "badge_title" field.
func BadgeTitleHasSuffix(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldHasSuffix(FieldBadgeTitle, v))
}

// BadgeTitleEqualFold applies the EqualFold predicate on the "badge_title" field.
func BadgeTitleEqualFold(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEqualFold(FieldBadgeTitle, v))
}

// BadgeTitleContainsFold applies the ContainsFold predicate on the "badge_title" field.
func BadgeTitleContainsFold(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldContainsFold(FieldBadgeTitle, v))
}

// BadgeDescriptionEQ applies the EQ predicate on the "badge_description" field.
func BadgeDescriptionEQ(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEQ(FieldBadgeDescription, v))
}

// BadgeDescriptionNEQ applies the NEQ predicate on the "badge_description" field.
func BadgeDescriptionNEQ(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldNEQ(FieldBadgeDescription, v))
}

// BadgeDescriptionIn applies the In predicate on the "badge_description" field.
func BadgeDescriptionIn(vs ...string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldIn(FieldBadgeDescription, vs...))
}

// BadgeDescriptionNotIn applies the NotIn predicate on the "badge_description" field.
func BadgeDescriptionNotIn(vs ...string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldNotIn(FieldBadgeDescription, vs...))
}

// BadgeDescriptionGT applies the GT predicate on the "badge_description" field.
func BadgeDescriptionGT(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldGT(FieldBadgeDescription, v))
}

// BadgeDescriptionGTE applies the GTE predicate on the "badge_description" field.
func BadgeDescriptionGTE(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldGTE(FieldBadgeDescription, v))
}

// BadgeDescriptionLT applies the LT predicate on the "badge_description" field.
func BadgeDescriptionLT(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldLT(FieldBadgeDescription, v))
}

// BadgeDescriptionLTE applies the LTE predicate on the "badge_description" field.
func BadgeDescriptionLTE(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldLTE(FieldBadgeDescription, v))
}

// BadgeDescriptionContains applies the Contains predicate on the "badge_description" field.
func BadgeDescriptionContains(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldContains(FieldBadgeDescription, v))
}

// BadgeDescriptionHasPrefix applies the HasPrefix predicate on the "badge_description" field.
func BadgeDescriptionHasPrefix(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldHasPrefix(FieldBadgeDescription, v))
}

// BadgeDescriptionHasSuffix applies the HasSuffix predicate on the "badge_description" field.
func BadgeDescriptionHasSuffix(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldHasSuffix(FieldBadgeDescription, v))
}

// BadgeDescriptionEqualFold applies the EqualFold predicate on the "badge_description" field.
func BadgeDescriptionEqualFold(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEqualFold(FieldBadgeDescription, v))
}

// BadgeDescriptionContainsFold applies the ContainsFold predicate on the "badge_description" field.
func BadgeDescriptionContainsFold(v string) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldContainsFold(FieldBadgeDescription, v))
}

// EarnedAtEQ applies the EQ predicate on the "earned_at" field.
func EarnedAtEQ(v time.Time) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldEQ(FieldEarnedAt, v))
}

// EarnedAtNEQ applies the NEQ predicate on the "earned_at" field.
func EarnedAtNEQ(v time.Time) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldNEQ(FieldEarnedAt, v))
}

// EarnedAtIn applies the In predicate on the "earned_at" field.
func EarnedAtIn(vs ...time.Time) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldIn(FieldEarnedAt, vs...))
}

// EarnedAtNotIn applies the NotIn predicate on the "earned_at" field.
func EarnedAtNotIn(vs ...time.Time) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldNotIn(FieldEarnedAt, vs...))
}

// EarnedAtGT applies the GT predicate on the "earned_at" field.
func EarnedAtGT(v time.Time) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldGT(FieldEarnedAt, v))
}

// EarnedAtGTE applies the GTE predicate on the "earned_at" field.
func EarnedAtGTE(v time.Time) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldGTE(FieldEarnedAt, v))
}

// EarnedAtLT applies the LT predicate on the "earned_at" field.
func EarnedAtLT(v time.Time) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldLT(FieldEarnedAt, v))
}

// EarnedAtLTE applies the LTE predicate on the "earned_at" field.
func EarnedAtLTE(v time.Time) predicate.UserBadge {
	return predicate.UserBadge(sql.FieldLTE(FieldEarnedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserBadge) predicate.UserBadge {
	return predicate.UserBadge(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserBadge) predicate.UserBadge {
	return predicate.UserBadge(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserBadge) predicate.UserBadge {
	return predicate.UserBadge(sql.NotPredicates(p))
}
