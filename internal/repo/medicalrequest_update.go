// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/medicalrequest"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/predicate"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/requestitem"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/user"
	"github.com/google/uuid"
)

// MedicalRequestUpdate is the builder for updating MedicalRequest entities.
type MedicalRequestUpdate struct {
	config
	hooks    []Hook
	mutation *MedicalRequestMutation
}

// Where appends a list predicates to the MedicalRequestUpdate builder.
func (_u *MedicalRequestUpdate) Where(ps ...predicate.MedicalRequest) *MedicalRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MedicalRequestUpdate) SetUpdatedAt(v time.Time) *MedicalRequestUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *MedicalRequestUpdate) SetPatientID(v uuid.UUID) *MedicalRequestUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *MedicalRequestUpdate) SetNillablePatientID(v *uuid.UUID) *MedicalRequestUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *MedicalRequestUpdate) SetDoctorID(v uuid.UUID) *MedicalRequestUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *MedicalRequestUpdate) SetNillableDoctorID(v *uuid.UUID) *MedicalRequestUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// ClearDoctorID clears the value of the "doctor_id" field.
func (_u *MedicalRequestUpdate) ClearDoctorID() *MedicalRequestUpdate {
	_u.mutation.ClearDoctorID()
	return _u
}

// SetProviderID sets the "provider_id" field.
func (_u *MedicalRequestUpdate) SetProviderID(v uuid.UUID) *MedicalRequestUpdate {
	_u.mutation.SetProviderID(v)
	return _u
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (_u *MedicalRequestUpdate) SetNillableProviderID(v *uuid.UUID) *MedicalRequestUpdate {
	if v != nil {
		_u.SetProviderID(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *MedicalRequestUpdate) SetType(v medicalrequest.Type) *MedicalRequestUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *MedicalRequestUpdate) SetNillableType(v *medicalrequest.Type) *MedicalRequestUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *MedicalRequestUpdate) SetStatus(v medicalrequest.Status) *MedicalRequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MedicalRequestUpdate) SetNillableStatus(v *medicalrequest.Status) *MedicalRequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *MedicalRequestUpdate) SetTitle(v string) *MedicalRequestUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *MedicalRequestUpdate) SetNillableTitle(v *string) *MedicalRequestUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *MedicalRequestUpdate) SetDescription(v string) *MedicalRequestUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MedicalRequestUpdate) SetNillableDescription(v *string) *MedicalRequestUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *MedicalRequestUpdate) ClearDescription() *MedicalRequestUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *MedicalRequestUpdate) SetFeedback(v string) *MedicalRequestUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *MedicalRequestUpdate) SetNillableFeedback(v *string) *MedicalRequestUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// ClearFeedback clears the value of the "feedback" field.
func (_u *MedicalRequestUpdate) ClearFeedback() *MedicalRequestUpdate {
	_u.mutation.ClearFeedback()
	return _u
}

// SetPrescriptionGroupID sets the "prescription_group_id" field.
func (_u *MedicalRequestUpdate) SetPrescriptionGroupID(v uuid.UUID) *MedicalRequestUpdate {
	_u.mutation.SetPrescriptionGroupID(v)
	return _u
}

// SetNillablePrescriptionGroupID sets the "prescription_group_id" field if the given value is not nil.
func (_u *MedicalRequestUpdate) SetNillablePrescriptionGroupID(v *uuid.UUID) *MedicalRequestUpdate {
	if v != nil {
		_u.SetPrescriptionGroupID(*v)
	}
	return _u
}

// ClearPrescriptionGroupID clears the value of the "prescription_group_id" field.
func (_u *MedicalRequestUpdate) ClearPrescriptionGroupID() *MedicalRequestUpdate {
	_u.mutation.ClearPrescriptionGroupID()
	return _u
}

// SetResultFileKey sets the "result_file_key" field.
func (_u *MedicalRequestUpdate) SetResultFileKey(v string) *MedicalRequestUpdate {
	_u.mutation.SetResultFileKey(v)
	return _u
}

// SetNillableResultFileKey sets the "result_file_key" field if the given value is not nil.
func (_u *MedicalRequestUpdate) SetNillableResultFileKey(v *string) *MedicalRequestUpdate {
	if v != nil {
		_u.SetResultFileKey(*v)
	}
	return _u
}

// ClearResultFileKey clears the value of the "result_file_key" field.
func (_u *MedicalRequestUpdate) ClearResultFileKey() *MedicalRequestUpdate {
	_u.mutation.ClearResultFileKey()
	return _u
}

// SetResultFileName sets the "result_file_name" field.
func (_u *MedicalRequestUpdate) SetResultFileName(v string) *MedicalRequestUpdate {
	_u.mutation.SetResultFileName(v)
	return _u
}

// SetNillableResultFileName sets the "result_file_name" field if the given value is not nil.
func (_u *MedicalRequestUpdate) SetNillableResultFileName(v *string) *MedicalRequestUpdate {
	if v != nil {
		_u.SetResultFileName(*v)
	}
	return _u
}

// ClearResultFileName clears the value of the "result_file_name" field.
func (_u *MedicalRequestUpdate) ClearResultFileName() *MedicalRequestUpdate {
	_u.mutation.ClearResultFileName()
	return _u
}

// SetVersion sets the "version" field.
func (_u *MedicalRequestUpdate) SetVersion(v int) *MedicalRequestUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *MedicalRequestUpdate) SetNillableVersion(v *int) *MedicalRequestUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *MedicalRequestUpdate) AddVersion(v int) *MedicalRequestUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetFulfilledAt sets the "fulfilled_at" field.
func (_u *MedicalRequestUpdate) SetFulfilledAt(v time.Time) *MedicalRequestUpdate {
	_u.mutation.SetFulfilledAt(v)
	return _u
}

// SetNillableFulfilledAt sets the "fulfilled_at" field if the given value is not nil.
func (_u *MedicalRequestUpdate) SetNillableFulfilledAt(v *time.Time) *MedicalRequestUpdate {
	if v != nil {
		_u.SetFulfilledAt(*v)
	}
	return _u
}

// ClearFulfilledAt clears the value of the "fulfilled_at" field.
func (_u *MedicalRequestUpdate) ClearFulfilledAt() *MedicalRequestUpdate {
	_u.mutation.ClearFulfilledAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *MedicalRequestUpdate) SetCompletedAt(v time.Time) *MedicalRequestUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *MedicalRequestUpdate) SetNillableCompletedAt(v *time.Time) *MedicalRequestUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *MedicalRequestUpdate) ClearCompletedAt() *MedicalRequestUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *MedicalRequestUpdate) SetCancelledAt(v time.Time) *MedicalRequestUpdate {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *MedicalRequestUpdate) SetNillableCancelledAt(v *time.Time) *MedicalRequestUpdate {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *MedicalRequestUpdate) ClearCancelledAt() *MedicalRequestUpdate {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetPatient sets the "patient" edge to the User entity.
func (_u *MedicalRequestUpdate) SetPatient(v *User) *MedicalRequestUpdate {
	return _u.SetPatientID(v.ID)
}

// SetProvider sets the "provider" edge to the User entity.
func (_u *MedicalRequestUpdate) SetProvider(v *User) *MedicalRequestUpdate {
	return _u.SetProviderID(v.ID)
}

// AddItemIDs adds the "items" edge to the RequestItem entity by IDs.
func (_u *MedicalRequestUpdate) AddItemIDs(ids ...uuid.UUID) *MedicalRequestUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the RequestItem entity.
func (_u *MedicalRequestUpdate) AddItems(v ...*RequestItem) *MedicalRequestUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the MedicalRequestMutation object of the builder.
func (_u *MedicalRequestUpdate) Mutation() *MedicalRequestMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the User entity.
func (_u *MedicalRequestUpdate) ClearPatient() *MedicalRequestUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// ClearProvider clears the "provider" edge to the User entity.
func (_u *MedicalRequestUpdate) ClearProvider() *MedicalRequestUpdate {
	_u.mutation.ClearProvider()
	return _u
}

// ClearItems clears all "items" edges to the RequestItem entity.
func (_u *MedicalRequestUpdate) ClearItems() *MedicalRequestUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to RequestItem entities by IDs.
func (_u *MedicalRequestUpdate) RemoveItemIDs(ids ...uuid.UUID) *MedicalRequestUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to RequestItem entities.
func (_u *MedicalRequestUpdate) RemoveItems(v ...*RequestItem) *MedicalRequestUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MedicalRequestUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MedicalRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MedicalRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MedicalRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MedicalRequestUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := medicalrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MedicalRequestUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := medicalrequest.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "MedicalRequest.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := medicalrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "MedicalRequest.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := medicalrequest.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "MedicalRequest.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResultFileKey(); ok {
		if err := medicalrequest.ResultFileKeyValidator(v); err != nil {
			return &ValidationError{Name: "result_file_key", err: fmt.Errorf(`repo: validator failed for field "MedicalRequest.result_file_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResultFileName(); ok {
		if err := medicalrequest.ResultFileNameValidator(v); err != nil {
			return &ValidationError{Name: "result_file_name", err: fmt.Errorf(`repo: validator failed for field "MedicalRequest.result_file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := medicalrequest.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`repo: validator failed for field "MedicalRequest.version": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "MedicalRequest.patient"`)
	}
	if _u.mutation.ProviderCleared() && len(_u.mutation.ProviderIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "MedicalRequest.provider"`)
	}
	return nil
}

func (_u *MedicalRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(medicalrequest.Table, medicalrequest.Columns, sqlgraph.NewFieldSpec(medicalrequest.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(medicalrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(medicalrequest.FieldDoctorID, field.TypeUUID, value)
	}
	if _u.mutation.DoctorIDCleared() {
		_spec.ClearField(medicalrequest.FieldDoctorID, field.TypeUUID)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(medicalrequest.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(medicalrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(medicalrequest.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(medicalrequest.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(medicalrequest.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(medicalrequest.FieldFeedback, field.TypeString, value)
	}
	if _u.mutation.FeedbackCleared() {
		_spec.ClearField(medicalrequest.FieldFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.PrescriptionGroupID(); ok {
		_spec.SetField(medicalrequest.FieldPrescriptionGroupID, field.TypeUUID, value)
	}
	if _u.mutation.PrescriptionGroupIDCleared() {
		_spec.ClearField(medicalrequest.FieldPrescriptionGroupID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ResultFileKey(); ok {
		_spec.SetField(medicalrequest.FieldResultFileKey, field.TypeString, value)
	}
	if _u.mutation.ResultFileKeyCleared() {
		_spec.ClearField(medicalrequest.FieldResultFileKey, field.TypeString)
	}
	if value, ok := _u.mutation.ResultFileName(); ok {
		_spec.SetField(medicalrequest.FieldResultFileName, field.TypeString, value)
	}
	if _u.mutation.ResultFileNameCleared() {
		_spec.ClearField(medicalrequest.FieldResultFileName, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(medicalrequest.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(medicalrequest.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FulfilledAt(); ok {
		_spec.SetField(medicalrequest.FieldFulfilledAt, field.TypeTime, value)
	}
	if _u.mutation.FulfilledAtCleared() {
		_spec.ClearField(medicalrequest.FieldFulfilledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(medicalrequest.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(medicalrequest.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(medicalrequest.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(medicalrequest.FieldCancelledAt, field.TypeTime)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   medicalrequest.PatientTable,
			Columns: []string{medicalrequest.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   medicalrequest.PatientTable,
			Columns: []string{medicalrequest.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProviderCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   medicalrequest.ProviderTable,
			Columns: []string{medicalrequest.ProviderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProviderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   medicalrequest.ProviderTable,
			Columns: []string{medicalrequest.ProviderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   medicalrequest.ItemsTable,
			Columns: []string{medicalrequest.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requestitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   medicalrequest.ItemsTable,
			Columns: []string{medicalrequest.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requestitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   medicalrequest.ItemsTable,
			Columns: []string{medicalrequest.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requestitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{medicalrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MedicalRequestUpdateOne is the builder for updating a single MedicalRequest entity.
type MedicalRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MedicalRequestMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MedicalRequestUpdateOne) SetUpdatedAt(v time.Time) *MedicalRequestUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *MedicalRequestUpdateOne) SetPatientID(v uuid.UUID) *MedicalRequestUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *MedicalRequestUpdateOne) SetNillablePatientID(v *uuid.UUID) *MedicalRequestUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *MedicalRequestUpdateOne) SetDoctorID(v uuid.UUID) *MedicalRequestUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *MedicalRequestUpdateOne) SetNillableDoctorID(v *uuid.UUID) *MedicalRequestUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// ClearDoctorID clears the value of the "doctor_id" field.
func (_u *MedicalRequestUpdateOne) ClearDoctorID() *MedicalRequestUpdateOne {
	_u.mutation.ClearDoctorID()
	return _u
}

// SetProviderID sets the "provider_id" field.
func (_u *MedicalRequestUpdateOne) SetProviderID(v uuid.UUID) *MedicalRequestUpdateOne {
	_u.mutation.SetProviderID(v)
	return _u
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (_u *MedicalRequestUpdateOne) SetNillableProviderID(v *uuid.UUID) *MedicalRequestUpdateOne {
	if v != nil {
		_u.SetProviderID(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *MedicalRequestUpdateOne) SetType(v medicalrequest.Type) *MedicalRequestUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *MedicalRequestUpdateOne) SetNillableType(v *medicalrequest.Type) *MedicalRequestUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *MedicalRequestUpdateOne) SetStatus(v medicalrequest.Status) *MedicalRequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MedicalRequestUpdateOne) SetNillableStatus(v *medicalrequest.Status) *MedicalRequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *MedicalRequestUpdateOne) SetTitle(v string) *MedicalRequestUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *MedicalRequestUpdateOne) SetNillableTitle(v *string) *MedicalRequestUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *MedicalRequestUpdateOne) SetDescription(v string) *MedicalRequestUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MedicalRequestUpdateOne) SetNillableDescription(v *string) *MedicalRequestUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *MedicalRequestUpdateOne) ClearDescription() *MedicalRequestUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *MedicalRequestUpdateOne) SetFeedback(v string) *MedicalRequestUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *MedicalRequestUpdateOne) SetNillableFeedback(v *string) *MedicalRequestUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// ClearFeedback clears the value of the "feedback" field.
func (_u *MedicalRequestUpdateOne) ClearFeedback() *MedicalRequestUpdateOne {
	_u.mutation.ClearFeedback()
	return _u
}

// SetPrescriptionGroupID sets the "prescription_group_id" field.
func (_u *MedicalRequestUpdateOne) SetPrescriptionGroupID(v uuid.UUID) *MedicalRequestUpdateOne {
	_u.mutation.SetPrescriptionGroupID(v)
	return _u
}

// SetNillablePrescriptionGroupID sets the "prescription_group_id" field if the given value is not nil.
func (_u *MedicalRequestUpdateOne) SetNillablePrescriptionGroupID(v *uuid.UUID) *MedicalRequestUpdateOne {
	if v != nil {
		_u.SetPrescriptionGroupID(*v)
	}
	return _u
}

// ClearPrescriptionGroupID clears the value of the "prescription_group_id" field.
func (_u *MedicalRequestUpdateOne) ClearPrescriptionGroupID() *MedicalRequestUpdateOne {
	_u.mutation.ClearPrescriptionGroupID()
	return _u
}

// SetResultFileKey sets the "result_file_key" field.
func (_u *MedicalRequestUpdateOne) SetResultFileKey(v string) *MedicalRequestUpdateOne {
	_u.mutation.SetResultFileKey(v)
	return _u
}

// SetNillableResultFileKey sets the "result_file_key" field if the given value is not nil.
func (_u *MedicalRequestUpdateOne) SetNillableResultFileKey(v *string) *MedicalRequestUpdateOne {
	if v != nil {
		_u.SetResultFileKey(*v)
	}
	return _u
}

// ClearResultFileKey clears the value of the "result_file_key" field.
func (_u *MedicalRequestUpdateOne) ClearResultFileKey() *MedicalRequestUpdateOne {
	_u.mutation.ClearResultFileKey()
	return _u
}

// SetResultFileName sets the "result_file_name" field.
func (_u *MedicalRequestUpdateOne) SetResultFileName(v string) *MedicalRequestUpdateOne {
	_u.mutation.SetResultFileName(v)
	return _u
}

// SetNillableResultFileName sets the "result_file_name" field if the given value is not nil.
func (_u *MedicalRequestUpdateOne) SetNillableResultFileName(v *string) *MedicalRequestUpdateOne {
	if v != nil {
		_u.SetResultFileName(*v)
	}
	return _u
}

// ClearResultFileName clears the value of the "result_file_name" field.
func (_u *MedicalRequestUpdateOne) ClearResultFileName() *MedicalRequestUpdateOne {
	_u.mutation.ClearResultFileName()
	return _u
}

// SetVersion sets the "version" field.
func (_u *MedicalRequestUpdateOne) SetVersion(v int) *MedicalRequestUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *MedicalRequestUpdateOne) SetNillableVersion(v *int) *MedicalRequestUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *MedicalRequestUpdateOne) AddVersion(v int) *MedicalRequestUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetFulfilledAt sets the "fulfilled_at" field.
func (_u *MedicalRequestUpdateOne) SetFulfilledAt(v time.Time) *MedicalRequestUpdateOne {
	_u.mutation.SetFulfilledAt(v)
	return _u
}

// SetNillableFulfilledAt sets the "fulfilled_at" field if the given value is not nil.
func (_u *MedicalRequestUpdateOne) SetNillableFulfilledAt(v *time.Time) *MedicalRequestUpdateOne {
	if v != nil {
		_u.SetFulfilledAt(*v)
	}
	return _u
}

// ClearFulfilledAt clears the value of the "fulfilled_at" field.
func (_u *MedicalRequestUpdateOne) ClearFulfilledAt() *MedicalRequestUpdateOne {
	_u.mutation.ClearFulfilledAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *MedicalRequestUpdateOne) SetCompletedAt(v time.Time) *MedicalRequestUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *MedicalRequestUpdateOne) SetNillableCompletedAt(v *time.Time) *MedicalRequestUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *MedicalRequestUpdateOne) ClearCompletedAt() *MedicalRequestUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *MedicalRequestUpdateOne) SetCancelledAt(v time.Time) *MedicalRequestUpdateOne {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *MedicalRequestUpdateOne) SetNillableCancelledAt(v *time.Time) *MedicalRequestUpdateOne {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *MedicalRequestUpdateOne) ClearCancelledAt() *MedicalRequestUpdateOne {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetPatient sets the "patient" edge to the User entity.
func (_u *MedicalRequestUpdateOne) SetPatient(v *User) *MedicalRequestUpdateOne {
	return _u.SetPatientID(v.ID)
}

// SetProvider sets the "provider" edge to the User entity.
func (_u *MedicalRequestUpdateOne) SetProvider(v *User) *MedicalRequestUpdateOne {
	return _u.SetProviderID(v.ID)
}

// AddItemIDs adds the "items" edge to the RequestItem entity by IDs.
func (_u *MedicalRequestUpdateOne) AddItemIDs(ids ...uuid.UUID) *MedicalRequestUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the RequestItem entity.
func (_u *MedicalRequestUpdateOne) AddItems(v ...*RequestItem) *MedicalRequestUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the MedicalRequestMutation object of the builder.
func (_u *MedicalRequestUpdateOne) Mutation() *MedicalRequestMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the User entity.
func (_u *MedicalRequestUpdateOne) ClearPatient() *MedicalRequestUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// ClearProvider clears the "provider" edge to the User entity.
func (_u *MedicalRequestUpdateOne) ClearProvider() *MedicalRequestUpdateOne {
	_u.mutation.ClearProvider()
	return _u
}

// ClearItems clears all "items" edges to the RequestItem entity.
func (_u *MedicalRequestUpdateOne) ClearItems() *MedicalRequestUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to RequestItem entities by IDs.
func (_u *MedicalRequestUpdateOne) RemoveItemIDs(ids ...uuid.UUID) *MedicalRequestUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to RequestItem entities.
func (_u *MedicalRequestUpdateOne) RemoveItems(v ...*RequestItem) *MedicalRequestUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Where appends a list predicates to the MedicalRequestUpdate builder.
func (_u *MedicalRequestUpdateOne) Where(ps ...predicate.MedicalRequest) *MedicalRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MedicalRequestUpdateOne) Select(field string, fields ...string) *MedicalRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MedicalRequest entity.
func (_u *MedicalRequestUpdateOne) Save(ctx context.Context) (*MedicalRequest, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MedicalRequestUpdateOne) SaveX(ctx context.Context) *MedicalRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MedicalRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MedicalRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MedicalRequestUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := medicalrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MedicalRequestUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := medicalrequest.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "MedicalRequest.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := medicalrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "MedicalRequest.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := medicalrequest.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "MedicalRequest.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResultFileKey(); ok {
		if err := medicalrequest.ResultFileKeyValidator(v); err != nil {
			return &ValidationError{Name: "result_file_key", err: fmt.Errorf(`repo: validator failed for field "MedicalRequest.result_file_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResultFileName(); ok {
		if err := medicalrequest.ResultFileNameValidator(v); err != nil {
			return &ValidationError{Name: "result_file_name", err: fmt.Errorf(`repo: validator failed for field "MedicalRequest.result_file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := medicalrequest.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`repo: validator failed for field "MedicalRequest.version": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "MedicalRequest.patient"`)
	}
	if _u.mutation.ProviderCleared() && len(_u.mutation.ProviderIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "MedicalRequest.provider"`)
	}
	return nil
}

func (_u *MedicalRequestUpdateOne) sqlSave(ctx context.Context) (_node *MedicalRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(medicalrequest.Table, medicalrequest.Columns, sqlgraph.NewFieldSpec(medicalrequest.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "MedicalRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, medicalrequest.FieldID)
		for _, f := range fields {
			if !medicalrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != medicalrequest.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(medicalrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(medicalrequest.FieldDoctorID, field.TypeUUID, value)
	}
	if _u.mutation.DoctorIDCleared() {
		_spec.ClearField(medicalrequest.FieldDoctorID, field.TypeUUID)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(medicalrequest.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(medicalrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(medicalrequest.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(medicalrequest.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(medicalrequest.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(medicalrequest.FieldFeedback, field.TypeString, value)
	}
	if _u.mutation.FeedbackCleared() {
		_spec.ClearField(medicalrequest.FieldFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.PrescriptionGroupID(); ok {
		_spec.SetField(medicalrequest.FieldPrescriptionGroupID, field.TypeUUID, value)
	}
	if _u.mutation.PrescriptionGroupIDCleared() {
		_spec.ClearField(medicalrequest.FieldPrescriptionGroupID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ResultFileKey(); ok {
		_spec.SetField(medicalrequest.FieldResultFileKey, field.TypeString, value)
	}
	if _u.mutation.ResultFileKeyCleared() {
		_spec.ClearField(medicalrequest.FieldResultFileKey, field.TypeString)
	}
	if value, ok := _u.mutation.ResultFileName(); ok {
		_spec.SetField(medicalrequest.FieldResultFileName, field.TypeString, value)
	}
	if _u.mutation.ResultFileNameCleared() {
		_spec.ClearField(medicalrequest.FieldResultFileName, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(medicalrequest.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(medicalrequest.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FulfilledAt(); ok {
		_spec.SetField(medicalrequest.FieldFulfilledAt, field.TypeTime, value)
	}
	if _u.mutation.FulfilledAtCleared() {
		_spec.ClearField(medicalrequest.FieldFulfilledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(medicalrequest.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(medicalrequest.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(medicalrequest.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(medicalrequest.FieldCancelledAt, field.TypeTime)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   medicalrequest.PatientTable,
			Columns: []string{medicalrequest.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   medicalrequest.PatientTable,
			Columns: []string{medicalrequest.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProviderCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   medicalrequest.ProviderTable,
			Columns: []string{medicalrequest.ProviderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProviderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   medicalrequest.ProviderTable,
			Columns: []string{medicalrequest.ProviderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   medicalrequest.ItemsTable,
			Columns: []string{medicalrequest.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requestitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   medicalrequest.ItemsTable,
			Columns: []string{medicalrequest.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requestitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   medicalrequest.ItemsTable,
			Columns: []string{medicalrequest.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requestitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &MedicalRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{medicalrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
