// Code generated by ent, DO NOT EDIT.

package notificationpref

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the notificationpref type in the database.
	Label = "notification_pref"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldRequestSms holds the string denoting the request_sms field in the database.
	FieldRequestSms = "request_sms"
	// FieldRequestEmail holds the string denoting the request_email field in the database.
	FieldRequestEmail = "request_email"
	// FieldRequestPush holds the string denoting the request_push field in the database.
	FieldRequestPush = "request_push"
	// Table holds the table name of the notificationpref in the database.
	Table = "notification_prefs"
)

// Columns holds all SQL columns for notificationpref fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUserID,
	FieldRequestSms,
	FieldRequestEmail,
	FieldRequestPush,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultRequestSms holds the default value on creation for the "request_sms" field.
	DefaultRequestSms bool
	// DefaultRequestEmail holds the default value on creation for the "request_email" field.
	DefaultRequestEmail bool
	// DefaultRequestPush holds the default value on creation for the "request_push" field.
	DefaultRequestPush bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the NotificationPref queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByRequestSms orders the results by the request_sms field.
func ByRequestSms(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestSms, opts...).ToFunc()
}

// ByRequestEmail orders the results by the request_email field.
func ByRequestEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestEmail, opts...).ToFunc()
}

// ByRequestPush orders the results by the request_push field.
func ByRequestPush(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestPush, opts...).ToFunc()
}
