// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/medicalrequest"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/user"
	"github.com/google/uuid"
)

// MedicalRequest is the model entity for the MedicalRequest schema.
type MedicalRequest struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// Issuing doctor; nil for patient-initiated requests
	DoctorID *uuid.UUID `json:"doctor_id,omitempty"`
	// FK → users.id of the assigned provider
	ProviderID uuid.UUID `json:"provider_id,omitempty"`
	// Type holds the value of the "type" field.
	Type medicalrequest.Type `json:"type,omitempty"`
	// Status holds the value of the "status" field.
	Status medicalrequest.Status `json:"status,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// Provider note to the patient; required for partial or out-of-stock outcomes
	Feedback *string `json:"feedback,omitempty"`
	// Groups requests issued together from one consultation
	PrescriptionGroupID *uuid.UUID `json:"prescription_group_id,omitempty"`
	// S3 key of the uploaded result document
	ResultFileKey *string `json:"result_file_key,omitempty"`
	// ResultFileName holds the value of the "result_file_name" field.
	ResultFileName *string `json:"result_file_name,omitempty"`
	// Optimistic concurrency token, bumped on every status change
	Version int `json:"version,omitempty"`
	// FulfilledAt holds the value of the "fulfilled_at" field.
	FulfilledAt *time.Time `json:"fulfilled_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// CancelledAt holds the value of the "cancelled_at" field.
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MedicalRequestQuery when eager-loading is set.
	Edges        MedicalRequestEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MedicalRequestEdges holds the relations/edges for other nodes in the graph.
type MedicalRequestEdges struct {
	// Patient holds the value of the patient edge.
	Patient *User `json:"patient,omitempty"`
	// Provider holds the value of the provider edge.
	Provider *User `json:"provider,omitempty"`
	// Items holds the value of the items edge.
	Items []*RequestItem `json:"items,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// PatientOrErr returns the Patient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MedicalRequestEdges) PatientOrErr() (*User, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// ProviderOrErr returns the Provider value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MedicalRequestEdges) ProviderOrErr() (*User, error) {
	if e.Provider != nil {
		return e.Provider, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "provider"}
}

// ItemsOrErr returns the Items value or an error if the edge
// was not loaded in eager-loading.
func (e MedicalRequestEdges) ItemsOrErr() ([]*RequestItem, error) {
	if e.loadedTypes[2] {
		return e.Items, nil
	}
	return nil, &NotLoadedError{edge: "items"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MedicalRequest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case medicalrequest.FieldDoctorID, medicalrequest.FieldPrescriptionGroupID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case medicalrequest.FieldVersion:
			values[i] = new(sql.NullInt64)
		case medicalrequest.FieldType, medicalrequest.FieldStatus, medicalrequest.FieldTitle, medicalrequest.FieldDescription, medicalrequest.FieldFeedback, medicalrequest.FieldResultFileKey, medicalrequest.FieldResultFileName:
			values[i] = new(sql.NullString)
		case medicalrequest.FieldCreatedAt, medicalrequest.FieldUpdatedAt, medicalrequest.FieldFulfilledAt, medicalrequest.FieldCompletedAt, medicalrequest.FieldCancelledAt:
			values[i] = new(sql.NullTime)
		case medicalrequest.FieldID, medicalrequest.FieldPatientID, medicalrequest.FieldProviderID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MedicalRequest fields.
func (_m *MedicalRequest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case medicalrequest.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case medicalrequest.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case medicalrequest.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case medicalrequest.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case medicalrequest.FieldDoctorID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field doctor_id", values[i])
			} else if value.Valid {
				_m.DoctorID = new(uuid.UUID)
				*_m.DoctorID = *value.S.(*uuid.UUID)
			}
		case medicalrequest.FieldProviderID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field provider_id", values[i])
			} else if value != nil {
				_m.ProviderID = *value
			}
		case medicalrequest.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = medicalrequest.Type(value.String)
			}
		case medicalrequest.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = medicalrequest.Status(value.String)
			}
		case medicalrequest.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case medicalrequest.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case medicalrequest.FieldFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feedback", values[i])
			} else if value.Valid {
				_m.Feedback = new(string)
				*_m.Feedback = value.String
			}
		case medicalrequest.FieldPrescriptionGroupID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field prescription_group_id", values[i])
			} else if value.Valid {
				_m.PrescriptionGroupID = new(uuid.UUID)
				*_m.PrescriptionGroupID = *value.S.(*uuid.UUID)
			}
		case medicalrequest.FieldResultFileKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result_file_key", values[i])
			} else if value.Valid {
				_m.ResultFileKey = new(string)
				*_m.ResultFileKey = value.String
			}
		case medicalrequest.FieldResultFileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result_file_name", values[i])
			} else if value.Valid {
				_m.ResultFileName = new(string)
				*_m.ResultFileName = value.String
			}
		case medicalrequest.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case medicalrequest.FieldFulfilledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field fulfilled_at", values[i])
			} else if value.Valid {
				_m.FulfilledAt = new(time.Time)
				*_m.FulfilledAt = value.Time
			}
		case medicalrequest.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case medicalrequest.FieldCancelledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field cancelled_at", values[i])
			} else if value.Valid {
				_m.CancelledAt = new(time.Time)
				*_m.CancelledAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MedicalRequest.
// This includes values selected through modifiers, order, etc.
func (_m *MedicalRequest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPatient queries the "patient" edge of the MedicalRequest entity.
func (_m *MedicalRequest) QueryPatient() *UserQuery {
	return NewMedicalRequestClient(_m.config).QueryPatient(_m)
}

// QueryProvider queries the "provider" edge of the MedicalRequest entity.
func (_m *MedicalRequest) QueryProvider() *UserQuery {
	return NewMedicalRequestClient(_m.config).QueryProvider(_m)
}

// QueryItems queries the "items" edge of the MedicalRequest entity.
func (_m *MedicalRequest) QueryItems() *RequestItemQuery {
	return NewMedicalRequestClient(_m.config).QueryItems(_m)
}

// Update returns a builder for updating this MedicalRequest.
// Note that you need to call MedicalRequest.Unwrap() before calling this method if this MedicalRequest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MedicalRequest) Update() *MedicalRequestUpdateOne {
	return NewMedicalRequestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MedicalRequest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MedicalRequest) Unwrap() *MedicalRequest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: MedicalRequest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MedicalRequest) String() string {
	var builder strings.Builder
	builder.WriteString("MedicalRequest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	if v := _m.DoctorID; v != nil {
		builder.WriteString("doctor_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("provider_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProviderID))
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Feedback; v != nil {
		builder.WriteString("feedback=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PrescriptionGroupID; v != nil {
		builder.WriteString("prescription_group_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ResultFileKey; v != nil {
		builder.WriteString("result_file_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ResultFileName; v != nil {
		builder.WriteString("result_file_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	if v := _m.FulfilledAt; v != nil {
		builder.WriteString("fulfilled_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CancelledAt; v != nil {
		builder.WriteString("cancelled_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// MedicalRequests is a parsable slice of MedicalRequest.
type MedicalRequests []*MedicalRequest
