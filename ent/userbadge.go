// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adilet/learnloop/ent/userbadge"
	"github.com/google/uuid"
)

// UserBadge is the model entity for the UserBadge schema.
type UserBadge struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// BadgeKey holds the value of the "badge_key" field.
	BadgeKey string `json:"badge_key,omitempty"`
	// BadgeTitle holds the value of the "badge_title" field.
	BadgeTitle string `json:"badge_title,omitempty"`
	// BadgeDescription holds the value of the "badge_description" field.
	BadgeDescription string `json:"badge_description,omitempty"`
	// EarnedAt holds the value of the "earned_at" field.
	EarnedAt     time.Time `json:"earned_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserBadge) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userbadge.FieldUserID, userbadge.FieldBadgeKey, userbadge.FieldBadgeTitle, userbadge.FieldBadgeDescription:
			values[i] = new(sql.NullString)
		case userbadge.FieldEarnedAt:
			values[i] = new(sql.NullTime)
		case userbadge.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserBadge fields.
func (_m *UserBadge) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userbadge.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case userbadge.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case userbadge.FieldBadgeKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field badge_key", values[i])
			} else if value.Valid {
				_m.BadgeKey = value.String
			}
		case userbadge.FieldBadgeTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field badge_title", values[i])
			} else if value.Valid {
				_m.BadgeTitle = value.String
			}
		case userbadge.FieldBadgeDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field badge_description", values[i])
			} else if value.Valid {
				_m.BadgeDescription = value.String
			}
		case userbadge.FieldEarnedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field earned_at", values[i])
			} else if value.Valid {
				_m.EarnedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserBadge.
// This includes values selected through modifiers, order, etc.
func (_m *UserBadge) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UserBadge.
// Note that you need to call UserBadge.Unwrap() before calling this method if this UserBadge
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UserBadge) Update() *UserBadgeUpdateOne {
	return NewUserBadgeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UserBadge entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UserBadge) Unwrap() *UserBadge {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserBadge is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UserBadge) String() string {
	var builder strings.Builder
	builder.WriteString("UserBadge(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("badge_key=")
	builder.WriteString(_m.BadgeKey)
	builder.WriteString(", ")
	builder.WriteString("badge_title=")
	builder.WriteString(_m.BadgeTitle)
	builder.WriteString(", ")
	builder.WriteString("badge_description=")
	builder.WriteString(_m.BadgeDescription)
	builder.WriteString(", ")
	builder.WriteString("earned_at=")
	builder.WriteString(_m.EarnedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UserBadges is a parsable slice of UserBadge.
type UserBadges []*UserBadge
