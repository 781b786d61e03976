// Code generated by ent, DO NOT EDIT.

package newsitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the newsitem type in the database.
	Label = "news_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPublishedDate holds the string denoting the published_date field in the database.
	FieldPublishedDate = "published_date"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldWhatHappened holds the string denoting the what_happened field in the database.
	FieldWhatHappened = "what_happened"
	// FieldWhyItMatters holds the string denoting the why_it_matters field in the database.
	FieldWhyItMatters = "why_it_matters"
	// FieldTerm holds the string denoting the term field in the database.
	FieldTerm = "term"
	// FieldTermExplanation holds the string denoting the term_explanation field in the database.
	FieldTermExplanation = "term_explanation"
	// FieldQuiz holds the string denoting the quiz field in the database.
	FieldQuiz = "quiz"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the newsitem in the database.
	Table = "news_items"
)

// Columns holds all SQL columns for newsitem fields.
var Columns = []string{
	FieldID,
	FieldPublishedDate,
	FieldSource,
	FieldTitle,
	FieldURL,
	FieldWhatHappened,
	FieldWhyItMatters,
	FieldTerm,
	FieldTermExplanation,
	FieldQuiz,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// PublishedDateValidator is a validator for the "published_date" field. It is called by the builders before save.
	PublishedDateValidator func(string) error
	// SourceValidator is a validator for the "source" field. It is called by the builders before save.
	SourceValidator func(string) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// WhatHappenedValidator is a validator for the "what_happened" field. It is called by the builders before save.
	WhatHappenedValidator func(string) error
	// WhyItMattersValidator is a validator for the "why_it_matters" field. It is called by the builders before save.
	WhyItMattersValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the NewsItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPublishedDate orders the results by the published_date field.
func ByPublishedDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublishedDate, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByWhatHappened orders the results by the what_happened field.
func ByWhatHappened(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWhatHappened, opts...).ToFunc()
}

// ByWhyItMatters orders the results by the why_it_matters field.
func ByWhyItMatters(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWhyItMatters, opts...).ToFunc()
}

// ByTerm orders the results by the term field.
func ByTerm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTerm, opts...).ToFunc()
}

// ByTermExplanation orders the results by the term_explanation field.
func ByTermExplanation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTermExplanation, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
