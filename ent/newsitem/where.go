// Code generated by ent, DO NOT EDIT.

package newsitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/adilet/learnloop/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldLTE(FieldID, id))
}

// PublishedDate applies equality check predicate on the "published_date" field. It's identical to PublishedDateEQ.
func PublishedDate(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEQ(FieldPublishedDate, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEQ(FieldSource, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEQ(FieldTitle, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEQ(FieldURL, v))
}

// WhatHappened applies equality check predicate on the "what_happened" field. It's identical to WhatHappenedEQ.
func WhatHappened(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEQ(FieldWhatHappened, v))
}

// WhyItMatters applies equality check predicate on the "why_it_matters" field. It's identical to WhyItMattersEQ.
func WhyItMatters(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEQ(FieldWhyItMatters, v))
}

// Term applies equality check predicate on the "term" field. It's identical to TermEQ.
func Term(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEQ(FieldTerm, v))
}

// TermExplanation applies equality check predicate on the "term_explanation" field. It's identical to TermExplanationEQ.
func TermExplanation(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEQ(FieldTermExplanation, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEQ(FieldCreatedAt, v))
}

// PublishedDateEQ applies the EQ predicate on the "published_date" field.
func PublishedDateEQ(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEQ(FieldPublishedDate, v))
}

// PublishedDateNEQ applies the NEQ predicate on the "published_date" field.
func PublishedDateNEQ(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNEQ(FieldPublishedDate, v))
}

// PublishedDateIn applies the In predicate on the "published_date" field.
func PublishedDateIn(vs ...string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldIn(FieldPublishedDate, vs...))
}

// PublishedDateNotIn applies the NotIn predicate on the "published_date" field.
func PublishedDateNotIn(vs ...string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNotIn(FieldPublishedDate, vs...))
}

// PublishedDateGT applies the GT predicate on the "published_date" field.
func PublishedDateGT(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldGT(FieldPublishedDate, v))
}

// PublishedDateGTE applies the GTE predicate on the "published_date" field.
func PublishedDateGTE(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldGTE(FieldPublishedDate, v))
}

// PublishedDateLT applies the LT predicate on the "published_date" field.
func PublishedDateLT(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldLT(FieldPublishedDate, v))
}

// PublishedDateLTE applies the LTE predicate on the "published_date" field.
func PublishedDateLTE(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldLTE(FieldPublishedDate, v))
}

// PublishedDateContains applies the Contains predicate on the "published_date" field.
func PublishedDateContains(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldContains(FieldPublishedDate, v))
}

// PublishedDateHasPrefix applies the HasPrefix predicate on the "published_date" field.
func PublishedDateHasPrefix(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldHasPrefix(FieldPublishedDate, v))
}

// PublishedDateHasSuffix applies the HasSuffix predicate on the "published_date" field.
func PublishedDateHasSuffix(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldHasSuffix(FieldPublishedDate, v))
}

// PublishedDateEqualFold applies the EqualFold predicate on the "published_date" field.
func PublishedDateEqualFold(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEqualFold(FieldPublishedDate, v))
}

// PublishedDateContainsFold applies the ContainsFold predicate on the "published_date" field.
func PublishedDateContainsFold(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldContainsFold(FieldPublishedDate, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldContainsFold(FieldSource, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldContainsFold(FieldTitle, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldHasSuffix(FieldURL, v))
}

// URLIsNil applies the IsNil predicate on the "url" field.
func URLIsNil() predicate.NewsItem {
	return predicate.NewsItem(sql.FieldIsNull(FieldURL))
}

// URLNotNil applies the NotNil predicate on the "url" field.
func URLNotNil() predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNotNull(FieldURL))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldContainsFold(FieldURL, v))
}

// WhatHappenedEQ applies the EQ predicate on the "what_happened" field.
func WhatHappenedEQ(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEQ(FieldWhatHappened, v))
}

// WhatHappenedNEQ applies the NEQ predicate on the "what_happened" field.
func WhatHappenedNEQ(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNEQ(FieldWhatHappened, v))
}

// WhatHappenedIn applies the In predicate on the "what_happened" field.
func WhatHappenedIn(vs ...string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldIn(FieldWhatHappened, vs...))
}

// WhatHappenedNotIn applies the NotIn predicate on the "what_happened" field.
func WhatHappenedNotIn(vs ...string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNotIn(FieldWhatHappened, vs...))
}

// WhatHappenedGT applies the GT predicate on the "what_happened" field.
func WhatHappenedGT(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldGT(FieldWhatHappened, v))
}

// WhatHappenedGTE applies the GTE predicate on the "what_happened" field.
func WhatHappenedGTE(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldGTE(FieldWhatHappened, v))
}

// WhatHappenedLT applies the LT predicate on the "what_happened" field.
func WhatHappenedLT(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldLT(FieldWhatHappened, v))
}

// WhatHappenedLTE applies the LTE predicate on the "what_happened" field.
func WhatHappenedLTE(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldLTE(FieldWhatHappened, v))
}

// WhatHappenedContains applies the Contains predicate on the "what_happened" field.
func WhatHappenedContains(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldContains(FieldWhatHappened, v))
}

// WhatHappenedHasPrefix applies the HasPrefix predicate on the "what_happened" field.
func WhatHappenedHasPrefix(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldHasPrefix(FieldWhatHappened, v))
}

// WhatHappenedHasSuffix applies the HasSuffix predicate on the "what_happened" field.
func WhatHappenedHasSuffix(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldHasSuffix(FieldWhatHappened, v))
}

// WhatHappenedEqualFold applies the EqualFold predicate on the "what_happened" field.
func WhatHappenedEqualFold(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEqualFold(FieldWhatHappened, v))
}

// WhatHappenedContainsFold applies the ContainsFold predicate on the "what_happened" field.
func WhatHappenedContainsFold(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldContainsFold(FieldWhatHappened, v))
}

// WhyItMattersEQ applies the EQ predicate on the "why_it_matters" field.
func WhyItMattersEQ(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEQ(FieldWhyItMatters, v))
}

// WhyItMattersNEQ applies the NEQ predicate on the "why_it_matters" field.
func WhyItMattersNEQ(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNEQ(FieldWhyItMatters, v))
}

// WhyItMattersIn applies the In predicate on the "why_it_matters" field.
func WhyItMattersIn(vs ...string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldIn(FieldWhyItMatters, vs...))
}

// WhyItMattersNotIn applies the NotIn predicate on the "why_it_matters" field.
func WhyItMattersNotIn(vs ...string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNotIn(FieldWhyItMatters, vs...))
}

// WhyItMattersGT applies the GT predicate on the "why_it_matters" field.
func WhyItMattersGT(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldGT(FieldWhyItMatters, v))
}

// WhyItMattersGTE applies the GTE predicate on the "why_it_matters" field.
func WhyItMattersGTE(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldGTE(FieldWhyItMatters, v))
}

// WhyItMattersLT applies the LT predicate on the "why_it_matters" field.
func WhyItMattersLT(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldLT(FieldWhyItMatters, v))
}

// WhyItMattersLTE applies the LTE predicate on the "why_it_matters" field.
func WhyItMattersLTE(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldLTE(FieldWhyItMatters, v))
}

// WhyItMattersContains applies the Contains predicate on the "why_it_matters" field.
func WhyItMattersContains(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldContains(FieldWhyItMatters, v))
}

// WhyItMattersHasPrefix applies the HasPrefix predicate on the "why_it_matters" field.
func WhyItMattersHasPrefix(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldHasPrefix(FieldWhyItMatters, v))
}

// WhyItMattersHasSuffix applies the HasSuffix predicate on the "why_it_matters" field.
func WhyItMattersHasSuffix(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldHasSuffix(FieldWhyItMatters, v))
}

// WhyItMattersEqualFold applies the EqualFold predicate on the "why_it_matters" field.
func WhyItMattersEqualFold(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEqualFold(FieldWhyItMatters, v))
}

// WhyItMattersContainsFold applies the ContainsFold predicate on the "why_it_matters" field.
func WhyItMattersContainsFold(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldContainsFold(FieldWhyItMatters, v))
}

// TermEQ applies the EQ predicate on the "term" field.
func TermEQ(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEQ(FieldTerm, v))
}

// TermNEQ applies the NEQ predicate on the "term" field.
func TermNEQ(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNEQ(FieldTerm, v))
}

// TermIn applies the In predicate on the "term" field.
func TermIn(vs ...string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldIn(FieldTerm, vs...))
}

// TermNotIn applies the NotIn predicate on the "term" field.
func TermNotIn(vs ...string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNotIn(FieldTerm, vs...))
}

// TermGT applies the GT predicate on the "term" field.
func TermGT(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldGT(FieldTerm, v))
}

// TermGTE applies the GTE predicate on the "term" field.
func TermGTE(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldGTE(FieldTerm, v))
}

// TermLT applies the LT predicate on the "term" field.
func TermLT(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldLT(FieldTerm, v))
}

// TermLTE applies the LTE predicate on the "term" field.
func TermLTE(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldLTE(FieldTerm, v))
}

// TermContains applies the Contains predicate on the "term" field.
func TermContains(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldContains(FieldTerm, v))
}

// TermHasPrefix applies the HasPrefix predicate on the "term" field.
func TermHasPrefix(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldHasPrefix(FieldTerm, v))
}

// TermHasSuffix applies the HasSuffix predicate on the "term" field.
func TermHasSuffix(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldHasSuffix(FieldTerm, v))
}

// TermIsNil applies the IsNil predicate on the "term" field.
func TermIsNil() predicate.NewsItem {
	return predicate.NewsItem(sql.FieldIsNull(FieldTerm))
}

// TermNotNil applies the NotNil predicate on the "term" field.
func TermNotNil() predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNotNull(FieldTerm))
}

// TermEqualFold applies the EqualFold predicate on the "term" field.
func TermEqualFold(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEqualFold(FieldTerm, v))
}

// TermContainsFold applies the ContainsFold predicate on the "term" field.
func TermContainsFold(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldContainsFold(FieldTerm, v))
}

// TermExplanationEQ applies the EQ predicate on the "term_explanation" field.
func TermExplanationEQ(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEQ(FieldTermExplanation, v))
}

// TermExplanationNEQ applies the NEQ predicate on the "term_explanation" field.
func TermExplanationNEQ(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNEQ(FieldTermExplanation, v))
}

// TermExplanationIn applies the In predicate on the "term_explanation" field.
func TermExplanationIn(vs ...string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldIn(FieldTermExplanation, vs...))
}

// TermExplanationNotIn applies the NotIn predicate on the "term_explanation" field.
func TermExplanationNotIn(vs ...string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNotIn(FieldTermExplanation, vs...))
}

// TermExplanationGT applies the GT predicate on the "term_explanation" field.
func TermExplanationGT(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldGT(FieldTermExplanation, v))
}

// TermExplanationGTE applies the GTE predicate on the "term_explanation" field.
func TermExplanationGTE(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldGTE(FieldTermExplanation, v))
}

// TermExplanationLT applies the LT predicate on the "term_explanation" field.
func TermExplanationLT(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldLT(FieldTermExplanation, v))
}

// TermExplanationLTE applies the LTE predicate on the "term_explanation" field.
func TermExplanationLTE(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldLTE(FieldTermExplanation, v))
}

// TermExplanationContains applies the Contains predicate on the "term_explanation" field.
func TermExplanationContains(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldContains(FieldTermExplanation, v))
}

// TermExplanationHasPrefix applies the HasPrefix predicate on the "term_explanation" field.
func TermExplanationHasPrefix(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldHasPrefix(FieldTermExplanation, v))
}

// TermExplanationHasSuffix applies the HasSuffix predicate on the "term_explanation" field.
func TermExplanationHasSuffix(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldHasSuffix(FieldTermExplanation, v))
}

// TermExplanationIsNil applies the IsNil predicate on the "term_explanation" field.
func TermExplanationIsNil() predicate.NewsItem {
	return predicate.NewsItem(sql.FieldIsNull(FieldTermExplanation))
}

// TermExplanationNotNil applies the NotNil predicate on the "term_explanation" field.
func TermExplanationNotNil() predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNotNull(FieldTermExplanation))
}

// TermExplanationEqualFold applies the EqualFold predicate on the "term_explanation" field.
func TermExplanationEqualFold(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEqualFold(FieldTermExplanation, v))
}

// TermExplanationContainsFold applies the ContainsFold predicate on the "term_explanation" field.
func TermExplanationContainsFold(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldContainsFold(FieldTermExplanation, v))
}

// QuizIsNil applies the IsNil predicate on the "quiz" field.
func QuizIsNil() predicate.NewsItem {
	return predicate.NewsItem(sql.FieldIsNull(FieldQuiz))
}

// QuizNotNil applies the NotNil predicate on the "quiz" field.
func QuizNotNil() predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNotNull(FieldQuiz))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.NewsItem) predicate.NewsItem {
	return predicate.NewsItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.NewsItem) predicate.NewsItem {
	return predicate.NewsItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.NewsItem) predicate.NewsItem {
	return predicate.NewsItem(sql.NotPredicates(p))
}
