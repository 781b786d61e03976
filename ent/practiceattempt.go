// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adilet/learnloop/ent/practiceattempt"
	"github.com/google/uuid"
)

// PracticeAttempt is the model entity for the PracticeAttempt schema.
type PracticeAttempt struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Task holds the value of the "task" field.
	Task string `json:"task,omitempty"`
	// UserPrompt holds the value of the "user_prompt" field.
	UserPrompt string `json:"user_prompt,omitempty"`
	// Feedback holds the value of the "feedback" field.
	Feedback     map[string]interface{} `json:"feedback,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PracticeAttempt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case practiceattempt.FieldFeedback:
			values[i] = new([]byte)
		case practiceattempt.FieldUserID, practiceattempt.FieldTask, practiceattempt.FieldUserPrompt:
			values[i] = new(sql.NullString)
		case practiceattempt.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case practiceattempt.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PracticeAttempt fields.
func (_m *PracticeAttempt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case practiceattempt.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case practiceattempt.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case practiceattempt.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case practiceattempt.FieldTask:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task", values[i])
			} else if value.Valid {
				_m.Task = value.String
			}
		case practiceattempt.FieldUserPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_prompt", values[i])
			} else if value.Valid {
				_m.UserPrompt = value.String
			}
		case practiceattempt.FieldFeedback:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field feedback", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Feedback); err != nil {
					return fmt.Errorf("unmarshal field feedback: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PracticeAttempt.
// This includes values selected through modifiers, order, etc.
func (_m *PracticeAttempt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PracticeAttempt.
// Note that you need to call PracticeAttempt.Unwrap() before calling this method if this PracticeAttempt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PracticeAttempt) Update() *PracticeAttemptUpdateOne {
	return NewPracticeAttemptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PracticeAttempt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PracticeAttempt) Unwrap() *PracticeAttempt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PracticeAttempt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PracticeAttempt) String() string {
	var builder strings.Builder
	builder.WriteString("PracticeAttempt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("task=")
	builder.WriteString(_m.Task)
	builder.WriteString(", ")
	builder.WriteString("user_prompt=")
	builder.WriteString(_m.UserPrompt)
	builder.WriteString(", ")
	builder.WriteString("feedback=")
	builder.WriteString(fmt.Sprintf("%v", _m.Feedback))
	builder.WriteByte(')')
	return builder.String()
}

// PracticeAttempts is a parsable slice of PracticeAttempt.
type PracticeAttempts []*PracticeAttempt
