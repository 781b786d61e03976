// Code generated by ent, DO NOT EDIT.

package userbadge

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the userbadge type in the database.
	Label = "user_badge"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldBadgeKey holds the string denoting the badge_key field in the database.
	FieldBadgeKey = "badge_key"
	// FieldBadgeTitle holds the string denoting the badge_title field in the database.
	FieldBadgeTitle = "badge_title"
	// FieldBadgeDescription holds the string denoting the badge_description field in the database.
	FieldBadgeDescription = "badge_description"
	// FieldEarnedAt holds the string denoting the earned_at field in the database.
	FieldEarnedAt = "earned_at"
	// Table holds the table name of the userbadge in the database.
	Table = "user_badges"
)

// Columns holds all SQL columns for userbadge fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldBadgeKey,
	FieldBadgeTitle,
	FieldBadgeDescription,
	FieldEarnedAt,
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
	// BadgeKeyValidator is a validator for the "badge_key" field. It is called by the builders before save.
	BadgeKeyValidator func(string) error
	// BadgeTitleValidator is a validator for the "badge_title" field. It is called by the builders before save.
	BadgeTitleValidator func(string) error
	// DefaultBadgeDescription holds the default value on creation for the "badge_description" field.
	DefaultBadgeDescription string
	// DefaultEarnedAt holds the default value on creation for the "earned_at" field.
	DefaultEarnedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the UserBadge queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByBadgeKey orders the results by the badge_key field.
func ByBadgeKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBadgeKey, opts...).ToFunc()
}

// ByBadgeTitle orders the results by the badge_title field.
func ByBadgeTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBadgeTitle, opts...).ToFunc()
}

// ByBadgeDescription orders the results by the badge_description field.
func ByBadgeDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBadgeDescription, opts...).ToFunc()
}

// ByEarnedAt orders the results by the earned_at field.
func ByEarnedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEarnedAt, opts...).ToFunc()
}
