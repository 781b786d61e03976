// Code generated by ent, DO NOT EDIT.

package userstats

import (
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the userstats type in the database.
	Label = "user_stats"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldXpTotal holds the string denoting the xp_total field in the database.
	FieldXpTotal = "xp_total"
	// FieldStreakDays holds the string denoting the streak_days field in the database.
	FieldStreakDays = "streak_days"
	// FieldLastActiveDate holds the string denoting the last_active_date field in the database.
	FieldLastActiveDate = "last_active_date"
	// FieldLessonsCompleted holds the string denoting the lessons_completed field in the database.
	FieldLessonsCompleted = "lessons_completed"
	// FieldQuizzesCompleted holds the string denoting the quizzes_completed field in the database.
	FieldQuizzesCompleted = "quizzes_completed"
	// FieldPracticeCompleted holds the string denoting the practice_completed field in the database.
	FieldPracticeCompleted = "practice_completed"
	// FieldExamsAttempted holds the string denoting the exams_attempted field in the database.
	FieldExamsAttempted = "exams_attempted"
	// FieldCertificatesEarned holds the string denoting the certificates_earned field in the database.
	FieldCertificatesEarned = "certificates_earned"
	// FieldDailyMinutes holds the string denoting the daily_minutes field in the database.
	FieldDailyMinutes = "daily_minutes"
	// FieldLastActivityDate holds the string denoting the last_activity_date field in the database.
	FieldLastActivityDate = "last_activity_date"
	// Table holds the table name of the userstats in the database.
	Table = "user_stats"
)

// Columns holds all SQL columns for userstats fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldXpTotal,
	FieldStreakDays,
	FieldLastActiveDate,
	FieldLessonsCompleted,
	FieldQuizzesCompleted,
	FieldPracticeCompleted,
	FieldExamsAttempted,
	FieldCertificatesEarned,
	FieldDailyMinutes,
	FieldLastActivityDate,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultXpTotal holds the default value on creation for the "xp_total" field.
	DefaultXpTotal int
	// XpTotalValidator is a validator for the "xp_total" field. It is called by the builders before save.
	XpTotalValidator func(int) error
	// DefaultStreakDays holds the default value on creation for the "streak_days" field.
	DefaultStreakDays int
	// StreakDaysValidator is a validator for the "streak_days" field. It is called by the builders before save.
	StreakDaysValidator func(int) error
	// DefaultLessonsCompleted holds the default value on creation for the "lessons_completed" field.
	DefaultLessonsCompleted int
	// LessonsCompletedValidator is a validator for the "lessons_completed" field. It is called by the builders before save.
	LessonsCompletedValidator func(int) error
	// DefaultQuizzesCompleted holds the default value on creation for the "quizzes_completed" field.
	DefaultQuizzesCompleted int
	// QuizzesCompletedValidator is a validator for the "quizzes_completed" field. It is called by the builders before save.
	QuizzesCompletedValidator func(int) error
	// DefaultPracticeCompleted holds the default value on creation for the "practice_completed" field.
	DefaultPracticeCompleted int
	// PracticeCompletedValidator is a validator for the "practice_completed" field. It is called by the builders before save.
	PracticeCompletedValidator func(int) error
	// DefaultExamsAttempted holds the default value on creation for the "exams_attempted" field.
	DefaultExamsAttempted int
	// ExamsAttemptedValidator is a validator for the "exams_attempted" field. It is called by the builders before save.
	ExamsAttemptedValidator func(int) error
	// DefaultCertificatesEarned holds the default value on creation for the "certificates_earned" field.
	DefaultCertificatesEarned int
	// CertificatesEarnedValidator is a validator for the "certificates_earned" field. It is called by the builders before save.
	CertificatesEarnedValidator func(int) error
	// DefaultDailyMinutes holds the default value on creation for the "daily_minutes" field.
	DefaultDailyMinutes int
	// DailyMinutesValidator is a validator for the "daily_minutes" field. It is called by the builders before save.
	DailyMinutesValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the UserStats queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByXpTotal orders the results by the xp_total field.
func ByXpTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXpTotal, opts...).ToFunc()
}

// ByStreakDays orders the results by the streak_days field.
func ByStreakDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreakDays, opts...).ToFunc()
}

// ByLastActiveDate orders the results by the last_active_date field.
func ByLastActiveDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActiveDate, opts...).ToFunc()
}

// ByLessonsCompleted orders the results by the lessons_completed field.
func ByLessonsCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonsCompleted, opts...).ToFunc()
}

// ByQuizzesCompleted orders the results by the quizzes_completed field.
func ByQuizzesCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizzesCompleted, opts...).ToFunc()
}

// ByPracticeCompleted orders the results by the practice_completed field.
func ByPracticeCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPracticeCompleted, opts...).ToFunc()
}

// ByExamsAttempted orders the results by the exams_attempted field.
func ByExamsAttempted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExamsAttempted, opts...).ToFunc()
}

// ByCertificatesEarned orders the results by the certificates_earned field.
func ByCertificatesEarned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCertificatesEarned, opts...).ToFunc()
}

// ByDailyMinutes orders the results by the daily_minutes field.
func ByDailyMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDailyMinutes, opts...).ToFunc()
}

// ByLastActivityDate orders the results by the last_activity_date field.
func ByLastActivityDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActivityDate, opts...).ToFunc()
}
