// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adilet/learnloop/ent/userstats"
	"github.com/google/uuid"
)

// UserStats is the model entity for the UserStats schema.
type UserStats struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// XpTotal holds the value of the "xp_total" field.
	XpTotal int `json:"xp_total,omitempty"`
	// StreakDays holds the value of the "streak_days" field.
	StreakDays int `json:"streak_days,omitempty"`
	// YYYY-MM-DD of the last streak-counted activity
	LastActiveDate string `json:"last_active_date,omitempty"`
	// LessonsCompleted holds the value of the "lessons_completed" field.
	LessonsCompleted int `json:"lessons_completed,omitempty"`
	// QuizzesCompleted holds the value of the "quizzes_completed" field.
	QuizzesCompleted int `json:"quizzes_completed,omitempty"`
	// PracticeCompleted holds the value of the "practice_completed" field.
	PracticeCompleted int `json:"practice_completed,omitempty"`
	// ExamsAttempted holds the value of the "exams_attempted" field.
	ExamsAttempted int `json:"exams_attempted,omitempty"`
	// CertificatesEarned holds the value of the "certificates_earned" field.
	CertificatesEarned int `json:"certificates_earned,omitempty"`
	// DailyMinutes holds the value of the "daily_minutes" field.
	DailyMinutes int `json:"daily_minutes,omitempty"`
	// YYYY-MM-DD of the last counter update, bounds daily_minutes
	LastActivityDate string `json:"last_activity_date,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserStats) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userstats.FieldXpTotal, userstats.FieldStreakDays, userstats.FieldLessonsCompleted, userstats.FieldQuizzesCompleted, userstats.FieldPracticeCompleted, userstats.FieldExamsAttempted, userstats.FieldCertificatesEarned, userstats.FieldDailyMinutes:
			values[i] = new(sql.NullInt64)
		case userstats.FieldUserID, userstats.FieldLastActiveDate, userstats.FieldLastActivityDate:
			values[i] = new(sql.NullString)
		case userstats.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserStats fields.
func (_m *UserStats) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userstats.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case userstats.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case userstats.FieldXpTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp_total", values[i])
			} else if value.Valid {
				_m.XpTotal = int(value.Int64)
			}
		case userstats.FieldStreakDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field streak_days", values[i])
			} else if value.Valid {
				_m.StreakDays = int(value.Int64)
			}
		case userstats.FieldLastActiveDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_active_date", values[i])
			} else if value.Valid {
				_m.LastActiveDate = value.String
			}
		case userstats.FieldLessonsCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lessons_completed", values[i])
			} else if value.Valid {
				_m.LessonsCompleted = int(value.Int64)
			}
		case userstats.FieldQuizzesCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quizzes_completed", values[i])
			} else if value.Valid {
				_m.QuizzesCompleted = int(value.Int64)
			}
		case userstats.FieldPracticeCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field practice_completed", values[i])
			} else if value.Valid {
				_m.PracticeCompleted = int(value.Int64)
			}
		case userstats.FieldExamsAttempted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field exams_attempted", values[i])
			} else if value.Valid {
				_m.ExamsAttempted = int(value.Int64)
			}
		case userstats.FieldCertificatesEarned:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field certificates_earned", values[i])
			} else if value.Valid {
				_m.CertificatesEarned = int(value.Int64)
			}
		case userstats.FieldDailyMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field daily_minutes", values[i])
			} else if value.Valid {
				_m.DailyMinutes = int(value.Int64)
			}
		case userstats.FieldLastActivityDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_activity_date", values[i])
			} else if value.Valid {
				_m.LastActivityDate = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserStats.
// This includes values selected through modifiers, order, etc.
func (_m *UserStats) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UserStats.
// Note that you need to call UserStats.Unwrap() before calling this method if this UserStats
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UserStats) Update() *UserStatsUpdateOne {
	return NewUserStatsClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UserStats entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UserStats) Unwrap() *UserStats {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserStats is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UserStats) String() string {
	var builder strings.Builder
	builder.WriteString("UserStats(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("xp_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.XpTotal))
	builder.WriteString(", ")
	builder.WriteString("streak_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.StreakDays))
	builder.WriteString(", ")
	builder.WriteString("last_active_date=")
	builder.WriteString(_m.LastActiveDate)
	builder.WriteString(", ")
	builder.WriteString("lessons_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.LessonsCompleted))
	builder.WriteString(", ")
	builder.WriteString("quizzes_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuizzesCompleted))
	builder.WriteString(", ")
	builder.WriteString("practice_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.PracticeCompleted))
	builder.WriteString(", ")
	builder.WriteString("exams_attempted=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExamsAttempted))
	builder.WriteString(", ")
	builder.WriteString("certificates_earned=")
	builder.WriteString(fmt.Sprintf("%v", _m.CertificatesEarned))
	builder.WriteString(", ")
	builder.WriteString("daily_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.DailyMinutes))
	builder.WriteString(", ")
	builder.WriteString("last_activity_date=")
	builder.WriteString(_m.LastActivityDate)
	builder.WriteByte(')')
	return builder.String()
}

// UserStatsSlice is a parsable slice of UserStats.
type UserStatsSlice []*UserStats
