// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/medicalrequest"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/requestitem"
	"github.com/google/uuid"
)

// RequestItem is the model entity for the RequestItem schema.
type RequestItem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// RequestID holds the value of the "request_id" field.
	RequestID uuid.UUID `json:"request_id,omitempty"`
	// Medication, test, or exam name
	Name string `json:"name,omitempty"`
	// Dosage holds the value of the "dosage" field.
	Dosage *string `json:"dosage,omitempty"`
	// Frequency holds the value of the "frequency" field.
	Frequency *string `json:"frequency,omitempty"`
	// Duration holds the value of the "duration" field.
	Duration *string `json:"duration,omitempty"`
	// Instructions holds the value of the "instructions" field.
	Instructions *string `json:"instructions,omitempty"`
	// Provider-reported stock/availability
	Available bool `json:"available,omitempty"`
	// ItemStatus holds the value of the "item_status" field.
	ItemStatus requestitem.ItemStatus `json:"item_status,omitempty"`
	// Display order within the request
	Position int `json:"position,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RequestItemQuery when eager-loading is set.
	Edges        RequestItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RequestItemEdges holds the relations/edges for other nodes in the graph.
type RequestItemEdges struct {
	// Request holds the value of the request edge.
	Request *MedicalRequest `json:"request,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RequestOrErr returns the Request value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RequestItemEdges) RequestOrErr() (*MedicalRequest, error) {
	if e.Request != nil {
		return e.Request, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: medicalrequest.Label}
	}
	return nil, &NotLoadedError{edge: "request"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RequestItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case requestitem.FieldAvailable:
			values[i] = new(sql.NullBool)
		case requestitem.FieldPosition:
			values[i] = new(sql.NullInt64)
		case requestitem.FieldName, requestitem.FieldDosage, requestitem.FieldFrequency, requestitem.FieldDuration, requestitem.FieldInstructions, requestitem.FieldItemStatus:
			values[i] = new(sql.NullString)
		case requestitem.FieldCreatedAt, requestitem.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case requestitem.FieldID, requestitem.FieldRequestID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RequestItem fields.
func (_m *RequestItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case requestitem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case requestitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case requestitem.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case requestitem.FieldRequestID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field request_id", values[i])
			} else if value != nil {
				_m.RequestID = *value
			}
		case requestitem.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case requestitem.FieldDosage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dosage", values[i])
			} else if value.Valid {
				_m.Dosage = new(string)
				*_m.Dosage = value.String
			}
		case requestitem.FieldFrequency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field frequency", values[i])
			} else if value.Valid {
				_m.Frequency = new(string)
				*_m.Frequency = value.String
			}
		case requestitem.FieldDuration:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field duration", values[i])
			} else if value.Valid {
				_m.Duration = new(string)
				*_m.Duration = value.String
			}
		case requestitem.FieldInstructions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instructions", values[i])
			} else if value.Valid {
				_m.Instructions = new(string)
				*_m.Instructions = value.String
			}
		case requestitem.FieldAvailable:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field available", values[i])
			} else if value.Valid {
				_m.Available = value.Bool
			}
		case requestitem.FieldItemStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_status", values[i])
			} else if value.Valid {
				_m.ItemStatus = requestitem.ItemStatus(value.String)
			}
		case requestitem.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RequestItem.
// This includes values selected through modifiers, order, etc.
func (_m *RequestItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRequest queries the "request" edge of the RequestItem entity.
func (_m *RequestItem) QueryRequest() *MedicalRequestQuery {
	return NewRequestItemClient(_m.config).QueryRequest(_m)
}

// Update returns a builder for updating this RequestItem.
// Note that you need to call RequestItem.Unwrap() before calling this method if this RequestItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RequestItem) Update() *RequestItemUpdateOne {
	return NewRequestItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RequestItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RequestItem) Unwrap() *RequestItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: RequestItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RequestItem) String() string {
	var builder strings.Builder
	builder.WriteString("RequestItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("request_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.Dosage; v != nil {
		builder.WriteString("dosage=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Frequency; v != nil {
		builder.WriteString("frequency=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Duration; v != nil {
		builder.WriteString("duration=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Instructions; v != nil {
		builder.WriteString("instructions=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("available=")
	builder.WriteString(fmt.Sprintf("%v", _m.Available))
	builder.WriteString(", ")
	builder.WriteString("item_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemStatus))
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteByte(')')
	return builder.String()
}

// RequestItems is a parsable slice of RequestItem.
type RequestItems []*RequestItem
