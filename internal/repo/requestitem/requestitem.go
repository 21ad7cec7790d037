// Code generated by ent, DO NOT EDIT.

package requestitem

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the requestitem type in the database.
	Label = "request_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldRequestID holds the string denoting the request_id field in the database.
	FieldRequestID = "request_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDosage holds the string denoting the dosage field in the database.
	FieldDosage = "dosage"
	// FieldFrequency holds the string denoting the frequency field in the database.
	FieldFrequency = "frequency"
	// FieldDuration holds the string denoting the duration field in the database.
	FieldDuration = "duration"
	// FieldInstructions holds the string denoting the instructions field in the database.
	FieldInstructions = "instructions"
	// FieldAvailable holds the string denoting the available field in the database.
	FieldAvailable = "available"
	// FieldItemStatus holds the string denoting the item_status field in the database.
	FieldItemStatus = "item_status"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// EdgeRequest holds the string denoting the request edge name in mutations.
	EdgeRequest = "request"
	// Table holds the table name of the requestitem in the database.
	Table = "request_items"
	// RequestTable is the table that holds the request relation/edge.
	RequestTable = "request_items"
	// RequestInverseTable is the table name for the MedicalRequest entity.
	// It exists in this package in order to avoid circular dependency with the "medicalrequest" package.
	RequestInverseTable = "medical_requests"
	// RequestColumn is the table column denoting the request relation/edge.
	RequestColumn = "request_id"
)

// Columns holds all SQL columns for requestitem fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldRequestID,
	FieldName,
	FieldDosage,
	FieldFrequency,
	FieldDuration,
	FieldInstructions,
	FieldAvailable,
	FieldItemStatus,
	FieldPosition,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DosageValidator is a validator for the "dosage" field. It is called by the builders before save.
	DosageValidator func(string) error
	// FrequencyValidator is a validator for the "frequency" field. It is called by the builders before save.
	FrequencyValidator func(string) error
	// DurationValidator is a validator for the "duration" field. It is called by the builders before save.
	DurationValidator func(string) error
	// DefaultAvailable holds the default value on creation for the "available" field.
	DefaultAvailable bool
	// DefaultPosition holds the default value on creation for the "position" field.
	DefaultPosition int
	// PositionValidator is a validator for the "position" field. It is called by the builders before save.
	PositionValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// ItemStatus defines the type for the "item_status" enum field.
type ItemStatus string

// ItemStatusPending is the default value of the ItemStatus enum.
const DefaultItemStatus = ItemStatusPending

// ItemStatus values.
const (
	ItemStatusPending        ItemStatus = "pending"
	ItemStatusConfirmed      ItemStatus = "confirmed"
	ItemStatusUnavailable    ItemStatus = "unavailable"
	ItemStatusReadyForPickup ItemStatus = "ready_for_pickup"
	ItemStatusCollected      ItemStatus = "collected"
)

func (is ItemStatus) String() string {
	return string(is)
}

// ItemStatusValidator is a validator for the "item_status" field enum values. It is called by the builders before save.
func ItemStatusValidator(is ItemStatus) error {
	switch is {
	case ItemStatusPending, ItemStatusConfirmed, ItemStatusUnavailable, ItemStatusReadyForPickup, ItemStatusCollected:
		return nil
	default:
		return fmt.Errorf("requestitem: invalid enum value for item_status field: %q", is)
	}
}

// OrderOption defines the ordering options for the RequestItem queries.
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

// ByRequestID orders the results by the request_id field.
func ByRequestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDosage orders the results by the dosage field.
func ByDosage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDosage, opts...).ToFunc()
}

// ByFrequency orders the results by the frequency field.
func ByFrequency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFrequency, opts...).ToFunc()
}

// ByDuration orders the results by the duration field.
func ByDuration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDuration, opts...).ToFunc()
}

// ByInstructions orders the results by the instructions field.
func ByInstructions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstructions, opts...).ToFunc()
}

// ByAvailable orders the results by the available field.
func ByAvailable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvailable, opts...).ToFunc()
}

// ByItemStatus orders the results by the item_status field.
func ByItemStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemStatus, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByRequestField orders the results by request field.
func ByRequestField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRequestStep(), sql.OrderByField(field, opts...))
	}
}
func newRequestStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RequestInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RequestTable, RequestColumn),
	)
}
