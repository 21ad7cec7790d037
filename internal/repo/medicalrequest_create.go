// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/medicalrequest"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/requestitem"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/user"
	"github.com/google/uuid"
)

// MedicalRequestCreate is the builder for creating a MedicalRequest entity.
type MedicalRequestCreate struct {
	config
	mutation *MedicalRequestMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *MedicalRequestCreate) SetCreatedAt(v time.Time) *MedicalRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MedicalRequestCreate) SetNillableCreatedAt(v *time.Time) *MedicalRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MedicalRequestCreate) SetUpdatedAt(v time.Time) *MedicalRequestCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MedicalRequestCreate) SetNillableUpdatedAt(v *time.Time) *MedicalRequestCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *MedicalRequestCreate) SetPatientID(v uuid.UUID) *MedicalRequestCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *MedicalRequestCreate) SetDoctorID(v uuid.UUID) *MedicalRequestCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_c *MedicalRequestCreate) SetNillableDoctorID(v *uuid.UUID) *MedicalRequestCreate {
	if v != nil {
		_c.SetDoctorID(*v)
	}
	return _c
}

// SetProviderID sets the "provider_id" field.
func (_c *MedicalRequestCreate) SetProviderID(v uuid.UUID) *MedicalRequestCreate {
	_c.mutation.SetProviderID(v)
	return _c
}

// SetType sets the "type" field.
func (_c *MedicalRequestCreate) SetType(v medicalrequest.Type) *MedicalRequestCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *MedicalRequestCreate) SetStatus(v medicalrequest.Status) *MedicalRequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *MedicalRequestCreate) SetNillableStatus(v *medicalrequest.Status) *MedicalRequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *MedicalRequestCreate) SetTitle(v string) *MedicalRequestCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *MedicalRequestCreate) SetDescription(v string) *MedicalRequestCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *MedicalRequestCreate) SetNillableDescription(v *string) *MedicalRequestCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *MedicalRequestCreate) SetFeedback(v string) *MedicalRequestCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_c *MedicalRequestCreate) SetNillableFeedback(v *string) *MedicalRequestCreate {
	if v != nil {
		_c.SetFeedback(*v)
	}
	return _c
}

// SetPrescriptionGroupID sets the "prescription_group_id" field.
func (_c *MedicalRequestCreate) SetPrescriptionGroupID(v uuid.UUID) *MedicalRequestCreate {
	_c.mutation.SetPrescriptionGroupID(v)
	return _c
}

// SetNillablePrescriptionGroupID sets the "prescription_group_id" field if the given value is not nil.
func (_c *MedicalRequestCreate) SetNillablePrescriptionGroupID(v *uuid.UUID) *MedicalRequestCreate {
	if v != nil {
		_c.SetPrescriptionGroupID(*v)
	}
	return _c
}

// SetResultFileKey sets the "result_file_key" field.
func (_c *MedicalRequestCreate) SetResultFileKey(v string) *MedicalRequestCreate {
	_c.mutation.SetResultFileKey(v)
	return _c
}

// SetNillableResultFileKey sets the "result_file_key" field if the given value is not nil.
func (_c *MedicalRequestCreate) SetNillableResultFileKey(v *string) *MedicalRequestCreate {
	if v != nil {
		_c.SetResultFileKey(*v)
	}
	return _c
}

// SetResultFileName sets the "result_file_name" field.
func (_c *MedicalRequestCreate) SetResultFileName(v string) *MedicalRequestCreate {
	_c.mutation.SetResultFileName(v)
	return _c
}

// SetNillableResultFileName sets the "result_file_name" field if the given value is not nil.
func (_c *MedicalRequestCreate) SetNillableResultFileName(v *string) *MedicalRequestCreate {
	if v != nil {
		_c.SetResultFileName(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *MedicalRequestCreate) SetVersion(v int) *MedicalRequestCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *MedicalRequestCreate) SetNillableVersion(v *int) *MedicalRequestCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetFulfilledAt sets the "fulfilled_at" field.
func (_c *MedicalRequestCreate) SetFulfilledAt(v time.Time) *MedicalRequestCreate {
	_c.mutation.SetFulfilledAt(v)
	return _c
}

// SetNillableFulfilledAt sets the "fulfilled_at" field if the given value is not nil.
func (_c *MedicalRequestCreate) SetNillableFulfilledAt(v *time.Time) *MedicalRequestCreate {
	if v != nil {
		_c.SetFulfilledAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *MedicalRequestCreate) SetCompletedAt(v time.Time) *MedicalRequestCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *MedicalRequestCreate) SetNillableCompletedAt(v *time.Time) *MedicalRequestCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCancelledAt sets the "cancelled_at" field.
func (_c *MedicalRequestCreate) SetCancelledAt(v time.Time) *MedicalRequestCreate {
	_c.mutation.SetCancelledAt(v)
	return _c
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_c *MedicalRequestCreate) SetNillableCancelledAt(v *time.Time) *MedicalRequestCreate {
	if v != nil {
		_c.SetCancelledAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MedicalRequestCreate) SetID(v uuid.UUID) *MedicalRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MedicalRequestCreate) SetNillableID(v *uuid.UUID) *MedicalRequestCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the User entity.
func (_c *MedicalRequestCreate) SetPatient(v *User) *MedicalRequestCreate {
	return _c.SetPatientID(v.ID)
}

// SetProvider sets the "provider" edge to the User entity.
func (_c *MedicalRequestCreate) SetProvider(v *User) *MedicalRequestCreate {
	return _c.SetProviderID(v.ID)
}

// AddItemIDs adds the "items" edge to the RequestItem entity by IDs.
func (_c *MedicalRequestCreate) AddItemIDs(ids ...uuid.UUID) *MedicalRequestCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the RequestItem entity.
func (_c *MedicalRequestCreate) AddItems(v ...*RequestItem) *MedicalRequestCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// Mutation returns the MedicalRequestMutation object of the builder.
func (_c *MedicalRequestCreate) Mutation() *MedicalRequestMutation {
	return _c.mutation
}

// Save creates the MedicalRequest in the database.
func (_c *MedicalRequestCreate) Save(ctx context.Context) (*MedicalRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MedicalRequestCreate) SaveX(ctx context.Context) *MedicalRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MedicalRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MedicalRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MedicalRequestCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := medicalrequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := medicalrequest.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := medicalrequest.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := medicalrequest.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := medicalrequest.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MedicalRequestCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "MedicalRequest.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "MedicalRequest.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "MedicalRequest.patient_id"`)}
	}
	if _, ok := _c.mutation.ProviderID(); !ok {
		return &ValidationError{Name: "provider_id", err: errors.New(`repo: missing required field "MedicalRequest.provider_id"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`repo: missing required field "MedicalRequest.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := medicalrequest.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "MedicalRequest.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "MedicalRequest.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := medicalrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "MedicalRequest.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "MedicalRequest.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := medicalrequest.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "MedicalRequest.title": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ResultFileKey(); ok {
		if err := medicalrequest.ResultFileKeyValidator(v); err != nil {
			return &ValidationError{Name: "result_file_key", err: fmt.Errorf(`repo: validator failed for field "MedicalRequest.result_file_key": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ResultFileName(); ok {
		if err := medicalrequest.ResultFileNameValidator(v); err != nil {
			return &ValidationError{Name: "result_file_name", err: fmt.Errorf(`repo: validator failed for field "MedicalRequest.result_file_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`repo: missing required field "MedicalRequest.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := medicalrequest.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`repo: validator failed for field "MedicalRequest.version": %w`, err)}
		}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "MedicalRequest.patient"`)}
	}
	if len(_c.mutation.ProviderIDs()) == 0 {
		return &ValidationError{Name: "provider", err: errors.New(`repo: missing required edge "MedicalRequest.provider"`)}
	}
	return nil
}

func (_c *MedicalRequestCreate) sqlSave(ctx context.Context) (*MedicalRequest, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MedicalRequestCreate) createSpec() (*MedicalRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &MedicalRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(medicalrequest.Table, sqlgraph.NewFieldSpec(medicalrequest.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(medicalrequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(medicalrequest.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DoctorID(); ok {
		_spec.SetField(medicalrequest.FieldDoctorID, field.TypeUUID, value)
		_node.DoctorID = &value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(medicalrequest.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(medicalrequest.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(medicalrequest.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(medicalrequest.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(medicalrequest.FieldFeedback, field.TypeString, value)
		_node.Feedback = &value
	}
	if value, ok := _c.mutation.PrescriptionGroupID(); ok {
		_spec.SetField(medicalrequest.FieldPrescriptionGroupID, field.TypeUUID, value)
		_node.PrescriptionGroupID = &value
	}
	if value, ok := _c.mutation.ResultFileKey(); ok {
		_spec.SetField(medicalrequest.FieldResultFileKey, field.TypeString, value)
		_node.ResultFileKey = &value
	}
	if value, ok := _c.mutation.ResultFileName(); ok {
		_spec.SetField(medicalrequest.FieldResultFileName, field.TypeString, value)
		_node.ResultFileName = &value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(medicalrequest.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.FulfilledAt(); ok {
		_spec.SetField(medicalrequest.FieldFulfilledAt, field.TypeTime, value)
		_node.FulfilledAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(medicalrequest.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CancelledAt(); ok {
		_spec.SetField(medicalrequest.FieldCancelledAt, field.TypeTime, value)
		_node.CancelledAt = &value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
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
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProviderIDs(); len(nodes) > 0 {
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
		_node.ProviderID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MedicalRequestCreateBulk is the builder for creating many MedicalRequest entities in bulk.
type MedicalRequestCreateBulk struct {
	config
	err      error
	builders []*MedicalRequestCreate
}

// Save creates the MedicalRequest entities in the database.
func (_c *MedicalRequestCreateBulk) Save(ctx context.Context) ([]*MedicalRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MedicalRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MedicalRequestMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MedicalRequestCreateBulk) SaveX(ctx context.Context) []*MedicalRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MedicalRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MedicalRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
