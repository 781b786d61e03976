// Code generated by ent, DO NOT EDIT.

package practiceattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/adilet/learnloop/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldUserID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldCreatedAt, v))
}

// Task applies equality check predicate on the "task" field. It's identical to TaskEQ.
func Task(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldTask, v))
}

// UserPrompt applies equality check predicate on the "user_prompt" field. It's identical to UserPromptEQ.
func UserPrompt(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldUserPrompt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldContainsFold(FieldUserID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLTE(FieldCreatedAt, v))
}

// TaskEQ applies the EQ predicate on the "task" field.
func TaskEQ(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldTask, v))
}

// TaskNEQ applies the NEQ predicate on the "task" field.
func TaskNEQ(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNEQ(FieldTask, v))
}

// TaskIn applies the In predicate on the "task" field.
func TaskIn(vs ...string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldIn(FieldTask, vs...))
}

// TaskNotIn applies the NotIn predicate on the "task" field.
func TaskNotIn(vs ...string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNotIn(FieldTask, vs...))
}

// TaskGT applies the GT predicate on the "task" field.
func TaskGT(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGT(FieldTask, v))
}

// TaskGTE applies the GTE predicate on the "task" field.
func TaskGTE(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGTE(FieldTask, v))
}

// TaskLT applies the LT predicate on the "task" field.
func TaskLT(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLT(FieldTask, v))
}

// TaskLTE applies the LTE predicate on the "task" field.
func TaskLTE(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLTE(FieldTask, v))
}

// TaskContains applies the Contains predicate on the "task" field.
func TaskContains(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldContains(FieldTask, v))
}

// TaskHasPrefix applies the HasPrefix predicate on the "task" field.
func TaskHasPrefix(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldHasPrefix(FieldTask, v))
}

// TaskHasSuffix applies the HasSuffix predicate on the "task" field.
func TaskHasSuffix(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldHasSuffix(FieldTask, v))
}

// TaskEqualFold applies the EqualFold predicate on the "task" field.
func TaskEqualFold(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEqualFold(FieldTask, v))
}

// TaskContainsFold applies the ContainsFold predicate on the "task" field.
func TaskContainsFold(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldContainsFold(FieldTask, v))
}

// UserPromptEQ applies the EQ predicate on the "user_prompt" field.
func UserPromptEQ(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldUserPrompt, v))
}

// UserPromptNEQ applies the NEQ predicate on the "user_prompt" field.
func UserPromptNEQ(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNEQ(FieldUserPrompt, v))
}

// UserPromptIn applies the In predicate on the "user_prompt" field.
func UserPromptIn(vs ...string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldIn(FieldUserPrompt, vs...))
}

// UserPromptNotIn applies the NotIn predicate on the "user_prompt" field.
func UserPromptNotIn(vs ...string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNotIn(FieldUserPrompt, vs...))
}

// UserPromptGT applies the GT predicate on the "user_prompt" field.
func UserPromptGT(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGT(FieldUserPrompt, v))
}

// UserPromptGTE applies the GTE predicate on the "user_prompt" field.
func UserPromptGTE(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGTE(FieldUserPrompt, v))
}

// UserPromptLT applies the LT predicate on the "user_prompt" field.
func UserPromptLT(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLT(FieldUserPrompt, v))
}

// UserPromptLTE applies the LTE predicate on the "user_prompt" field.
func UserPromptLTE(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLTE(FieldUserPrompt, v))
}

// UserPromptContains applies the Contains predicate on the "user_prompt" field.
func UserPromptContains(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldContains(FieldUserPrompt, v))
}

// UserPromptHasPrefix applies the HasPrefix predicate on the "user_prompt" field.
func UserPromptHasPrefix(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldHasPrefix(FieldUserPrompt, v))
}

// UserPromptHasSuffix applies the HasSuffix predicate on the "user_prompt" field.
func UserPromptHasSuffix(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldHasSuffix(FieldUserPrompt, v))
}

// UserPromptEqualFold applies the EqualFold predicate on the "user_prompt" field.
func UserPromptEqualFold(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEqualFold(FieldUserPrompt, v))
}

// UserPromptContainsFold applies the ContainsFold predicate on the "user_prompt" field.
func UserPromptContainsFold(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldContainsFold(FieldUserPrompt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PracticeAttempt) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PracticeAttempt) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PracticeAttempt) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.NotPredicates(p))
}
