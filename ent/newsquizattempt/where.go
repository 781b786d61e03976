// Code generated by ent, DO NOT EDIT.

package newsquizattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/adilet/learnloop/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldEQ(FieldUserID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldEQ(FieldCreatedAt, v))
}

// NewsID applies equality check predicate on the "news_id" field. It's identical to NewsIDEQ.
func NewsID(v uuid.UUID) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldEQ(FieldNewsID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldEQ(FieldScore, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldContainsFold(FieldUserID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldLTE(FieldCreatedAt, v))
}

// NewsIDEQ applies the EQ predicate on the "news_id" field.
func NewsIDEQ(v uuid.UUID) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldEQ(FieldNewsID, v))
}

// NewsIDNEQ applies the NEQ predicate on the "news_id" field.
func NewsIDNEQ(v uuid.UUID) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldNEQ(FieldNewsID, v))
}

// NewsIDIn applies the In predicate on the "news_id" field.
func NewsIDIn(vs ...uuid.UUID) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldIn(FieldNewsID, vs...))
}

// NewsIDNotIn applies the NotIn predicate on the "news_id" field.
func NewsIDNotIn(vs ...uuid.UUID) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldNotIn(FieldNewsID, vs...))
}

// NewsIDGT applies the GT predicate on the "news_id" field.
func NewsIDGT(v uuid.UUID) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldGT(FieldNewsID, v))
}

// NewsIDGTE applies the GTE predicate on the "news_id" field.
func NewsIDGTE(v uuid.UUID) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldGTE(FieldNewsID, v))
}

// NewsIDLT applies the LT predicate on the "news_id" field.
func NewsIDLT(v uuid.UUID) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldLT(FieldNewsID, v))
}

// NewsIDLTE applies the LTE predicate on the "news_id" field.
func NewsIDLTE(v uuid.UUID) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldLTE(FieldNewsID, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.FieldLTE(FieldScore, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.NewsQuizAttempt) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.NewsQuizAttempt) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.NewsQuizAttempt) predicate.NewsQuizAttempt {
	return predicate.NewsQuizAttempt(sql.NotPredicates(p))
}
