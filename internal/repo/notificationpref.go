// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/notificationpref"
	"github.com/google/uuid"
)

// NotificationPref is the model entity for the NotificationPref schema.
type NotificationPref struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id
	UserID uuid.UUID `json:"user_id,omitempty"`
	// SMS on fulfillment status changes
	RequestSms bool `json:"request_sms,omitempty"`
	// RequestEmail holds the value of the "request_email" field.
	RequestEmail bool `json:"request_email,omitempty"`
	// In-app notification rows
	RequestPush  bool `json:"request_push,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*NotificationPref) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case notificationpref.FieldRequestSms, notificationpref.FieldRequestEmail, notificationpref.FieldRequestPush:
			values[i] = new(sql.NullBool)
		case notificationpref.FieldCreatedAt, notificationpref.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case notificationpref.FieldID, notificationpref.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the NotificationPref fields.
func (_m *NotificationPref) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case notificationpref.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case notificationpref.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case notificationpref.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case notificationpref.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case notificationpref.FieldRequestSms:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field request_sms", values[i])
			} else if value.Valid {
				_m.RequestSms = value.Bool
			}
		case notificationpref.FieldRequestEmail:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field request_email", values[i])
			} else if value.Valid {
				_m.RequestEmail = value.Bool
			}
		case notificationpref.FieldRequestPush:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field request_push", values[i])
			} else if value.Valid {
				_m.RequestPush = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the NotificationPref.
// This includes values selected through modifiers, order, etc.
func (_m *NotificationPref) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this NotificationPref.
// Note that you need to call NotificationPref.Unwrap() before calling this method if this NotificationPref
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *NotificationPref) Update() *NotificationPrefUpdateOne {
	return NewNotificationPrefClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the NotificationPref entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *NotificationPref) Unwrap() *NotificationPref {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: NotificationPref is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *NotificationPref) String() string {
	var builder strings.Builder
	builder.WriteString("NotificationPref(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("request_sms=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestSms))
	builder.WriteString(", ")
	builder.WriteString("request_email=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestEmail))
	builder.WriteString(", ")
	builder.WriteString("request_push=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestPush))
	builder.WriteByte(')')
	return builder.String()
}

// NotificationPrefs is a parsable slice of NotificationPref.
type NotificationPrefs []*NotificationPref
