// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adilet/learnloop/ent/newsitem"
	"github.com/google/uuid"
)

// NewsItem is the model entity for the NewsItem schema.
type NewsItem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Digest day in YYYY-MM-DD form
	PublishedDate string `json:"published_date,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// WhatHappened holds the value of the "what_happened" field.
	WhatHappened string `json:"what_happened,omitempty"`
	// WhyItMatters holds the value of the "why_it_matters" field.
	WhyItMatters string `json:"why_it_matters,omitempty"`
	// Term holds the value of the "term" field.
	Term string `json:"term,omitempty"`
	// TermExplanation holds the value of the "term_explanation" field.
	TermExplanation string `json:"term_explanation,omitempty"`
	// Quiz holds the value of the "quiz" field.
	Quiz []map[string]interface{} `json:"quiz,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*NewsItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case newsitem.FieldQuiz:
			values[i] = new([]byte)
		case newsitem.FieldPublishedDate, newsitem.FieldSource, newsitem.FieldTitle, newsitem.FieldURL, newsitem.FieldWhatHappened, newsitem.FieldWhyItMatters, newsitem.FieldTerm, newsitem.FieldTermExplanation:
			values[i] = new(sql.NullString)
		case newsitem.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case newsitem.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the NewsItem fields.
func (_m *NewsItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case newsitem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case newsitem.FieldPublishedDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field published_date", values[i])
			} else if value.Valid {
				_m.PublishedDate = value.String
			}
		case newsitem.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case newsitem.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case newsitem.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case newsitem.FieldWhatHappened:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field what_happened", values[i])
			} else if value.Valid {
				_m.WhatHappened = value.String
			}
		case newsitem.FieldWhyItMatters:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field why_it_matters", values[i])
			} else if value.Valid {
				_m.WhyItMatters = value.String
			}
		case newsitem.FieldTerm:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field term", values[i])
			} else if value.Valid {
				_m.Term = value.String
			}
		case newsitem.FieldTermExplanation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field term_explanation", values[i])
			} else if value.Valid {
				_m.TermExplanation = value.String
			}
		case newsitem.FieldQuiz:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field quiz", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Quiz); err != nil {
					return fmt.Errorf("unmarshal field quiz: %w", err)
				}
			}
		case newsitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the NewsItem.
// This includes values selected through modifiers, order, etc.
func (_m *NewsItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this NewsItem.
// Note that you need to call NewsItem.Unwrap() before calling this method if this NewsItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *NewsItem) Update() *NewsItemUpdateOne {
	return NewNewsItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the NewsItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *NewsItem) Unwrap() *NewsItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: NewsItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *NewsItem) String() string {
	var builder strings.Builder
	builder.WriteString("NewsItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("published_date=")
	builder.WriteString(_m.PublishedDate)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("what_happened=")
	builder.WriteString(_m.WhatHappened)
	builder.WriteString(", ")
	builder.WriteString("why_it_matters=")
	builder.WriteString(_m.WhyItMatters)
	builder.WriteString(", ")
	builder.WriteString("term=")
	builder.WriteString(_m.Term)
	builder.WriteString(", ")
	builder.WriteString("term_explanation=")
	builder.WriteString(_m.TermExplanation)
	builder.WriteString(", ")
	builder.WriteString("quiz=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quiz))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// NewsItems is a parsable slice of NewsItem.
type NewsItems []*NewsItem
