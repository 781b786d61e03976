// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adilet/learnloop/ent/newsquizattempt"
	"github.com/google/uuid"
)

// NewsQuizAttempt is the model entity for the NewsQuizAttempt schema.
type NewsQuizAttempt struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// NewsID holds the value of the "news_id" field.
	NewsID uuid.UUID `json:"news_id,omitempty"`
	// Score holds the value of the "score" field.
	Score        int `json:"score,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*NewsQuizAttempt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case newsquizattempt.FieldScore:
			values[i] = new(sql.NullInt64)
		case newsquizattempt.FieldUserID:
			values[i] = new(sql.NullString)
		case newsquizattempt.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case newsquizattempt.FieldID, newsquizattempt.FieldNewsID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the NewsQuizAttempt fields.
func (_m *NewsQuizAttempt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case newsquizattempt.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case newsquizattempt.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case newsquizattempt.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case newsquizattempt.FieldNewsID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field news_id", values[i])
			} else if value != nil {
				_m.NewsID = *value
			}
		case newsquizattempt.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the NewsQuizAttempt.
// This includes values selected through modifiers, order, etc.
func (_m *NewsQuizAttempt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this NewsQuizAttempt.
// Note that you need to call NewsQuizAttempt.Unwrap() before calling this method if this NewsQuizAttempt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *NewsQuizAttempt) Update() *NewsQuizAttemptUpdateOne {
	return NewNewsQuizAttemptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the NewsQuizAttempt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *NewsQuizAttempt) Unwrap() *NewsQuizAttempt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: NewsQuizAttempt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *NewsQuizAttempt) String() string {
	var builder strings.Builder
	builder.WriteString("NewsQuizAttempt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("news_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.NewsID))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteByte(')')
	return builder.String()
}

// NewsQuizAttempts is a parsable slice of NewsQuizAttempt.
type NewsQuizAttempts []*NewsQuizAttempt
