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
	"github.com/google/uuid"
)

// RequestItemCreate is the builder for creating a RequestItem entity.
type RequestItemCreate struct {
	config
	mutation *RequestItemMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *RequestItemCreate) SetCreatedAt(v time.Time) *RequestItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RequestItemCreate) SetNillableCreatedAt(v *time.Time) *RequestItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RequestItemCreate) SetUpdatedAt(v time.Time) *RequestItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RequestItemCreate) SetNillableUpdatedAt(v *time.Time) *RequestItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetRequestID sets the "request_id" field.
func (_c *RequestItemCreate) SetRequestID(v uuid.UUID) *RequestItemCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *RequestItemCreate) SetName(v string) *RequestItemCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDosage sets the "dosage" field.
func (_c *RequestItemCreate) SetDosage(v string) *RequestItemCreate {
	_c.mutation.SetDosage(v)
	return _c
}

// SetNillableDosage sets the "dosage" field if the given value is not nil.
func (_c *RequestItemCreate) SetNillableDosage(v *string) *RequestItemCreate {
	if v != nil {
		_c.SetDosage(*v)
	}
	return _c
}

// SetFrequency sets the "frequency" field.
func (_c *RequestItemCreate) SetFrequency(v string) *RequestItemCreate {
	_c.mutation.SetFrequency(v)
	return _c
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_c *RequestItemCreate) SetNillableFrequency(v *string) *RequestItemCreate {
	if v != nil {
		_c.SetFrequency(*v)
	}
	return _c
}

// SetDuration sets the "duration" field.
func (_c *RequestItemCreate) SetDuration(v string) *RequestItemCreate {
	_c.mutation.SetDuration(v)
	return _c
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_c *RequestItemCreate) SetNillableDuration(v *string) *RequestItemCreate {
	if v != nil {
		_c.SetDuration(*v)
	}
	return _c
}

// SetInstructions sets the "instructions" field.
func (_c *RequestItemCreate) SetInstructions(v string) *RequestItemCreate {
	_c.mutation.SetInstructions(v)
	return _c
}

// SetNillableInstructions sets the "instructions" field if the given value is not nil.
func (_c *RequestItemCreate) SetNillableInstructions(v *string) *RequestItemCreate {
	if v != nil {
		_c.SetInstructions(*v)
	}
	return _c
}

// SetAvailable sets the "available" field.
func (_c *RequestItemCreate) SetAvailable(v bool) *RequestItemCreate {
	_c.mutation.SetAvailable(v)
	return _c
}

// SetNillableAvailable sets the "available" field if the given value is not nil.
func (_c *RequestItemCreate) SetNillableAvailable(v *bool) *RequestItemCreate {
	if v != nil {
		_c.SetAvailable(*v)
	}
	return _c
}

// SetItemStatus sets the "item_status" field.
func (_c *RequestItemCreate) SetItemStatus(v requestitem.ItemStatus) *RequestItemCreate {
	_c.mutation.SetItemStatus(v)
	return _c
}

// SetNillableItemStatus sets the "item_status" field if the given value is not nil.
func (_c *RequestItemCreate) SetNillableItemStatus(v *requestitem.ItemStatus) *RequestItemCreate {
	if v != nil {
		_c.SetItemStatus(*v)
	}
	return _c
}

// SetPosition sets the "position" field.
func (_c *RequestItemCreate) SetPosition(v int) *RequestItemCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *RequestItemCreate) SetNillablePosition(v *int) *RequestItemCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RequestItemCreate) SetID(v uuid.UUID) *RequestItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RequestItemCreate) SetNillableID(v *uuid.UUID) *RequestItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetRequest sets the "request" edge to the MedicalRequest entity.
func (_c *RequestItemCreate) SetRequest(v *MedicalRequest) *RequestItemCreate {
	return _c.SetRequestID(v.ID)
}

// Mutation returns the RequestItemMutation object of the builder.
func (_c *RequestItemCreate) Mutation() *RequestItemMutation {
	return _c.mutation
}

// Save creates the RequestItem in the database.
func (_c *RequestItemCreate) Save(ctx context.Context) (*RequestItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RequestItemCreate) SaveX(ctx context.Context) *RequestItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequestItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequestItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RequestItemCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := requestitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := requestitem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Available(); !ok {
		v := requestitem.DefaultAvailable
		_c.mutation.SetAvailable(v)
	}
	if _, ok := _c.mutation.ItemStatus(); !ok {
		v := requestitem.DefaultItemStatus
		_c.mutation.SetItemStatus(v)
	}
	if _, ok := _c.mutation.Position(); !ok {
		v := requestitem.DefaultPosition
		_c.mutation.SetPosition(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := requestitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RequestItemCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "RequestItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "RequestItem.updated_at"`)}
	}
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`repo: missing required field "RequestItem.request_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "RequestItem.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := requestitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "RequestItem.name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Dosage(); ok {
		if err := requestitem.DosageValidator(v); err != nil {
			return &ValidationError{Name: "dosage", err: fmt.Errorf(`repo: validator failed for field "RequestItem.dosage": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Frequency(); ok {
		if err := requestitem.FrequencyValidator(v); err != nil {
			return &ValidationError{Name: "frequency", err: fmt.Errorf(`repo: validator failed for field "RequestItem.frequency": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Duration(); ok {
		if err := requestitem.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`repo: validator failed for field "RequestItem.duration": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Available(); !ok {
		return &ValidationError{Name: "available", err: errors.New(`repo: missing required field "RequestItem.available"`)}
	}
	if _, ok := _c.mutation.ItemStatus(); !ok {
		return &ValidationError{Name: "item_status", err: errors.New(`repo: missing required field "RequestItem.item_status"`)}
	}
	if v, ok := _c.mutation.ItemStatus(); ok {
		if err := requestitem.ItemStatusValidator(v); err != nil {
			return &ValidationError{Name: "item_status", err: fmt.Errorf(`repo: validator failed for field "RequestItem.item_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`repo: missing required field "RequestItem.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := requestitem.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`repo: validator failed for field "RequestItem.position": %w`, err)}
		}
	}
	if len(_c.mutation.RequestIDs()) == 0 {
		return &ValidationError{Name: "request", err: errors.New(`repo: missing required edge "RequestItem.request"`)}
	}
	return nil
}

func (_c *RequestItemCreate) sqlSave(ctx context.Context) (*RequestItem, error) {
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

func (_c *RequestItemCreate) createSpec() (*RequestItem, *sqlgraph.CreateSpec) {
	var (
		_node = &RequestItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(requestitem.Table, sqlgraph.NewFieldSpec(requestitem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(requestitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(requestitem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(requestitem.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Dosage(); ok {
		_spec.SetField(requestitem.FieldDosage, field.TypeString, value)
		_node.Dosage = &value
	}
	if value, ok := _c.mutation.Frequency(); ok {
		_spec.SetField(requestitem.FieldFrequency, field.TypeString, value)
		_node.Frequency = &value
	}
	if value, ok := _c.mutation.Duration(); ok {
		_spec.SetField(requestitem.FieldDuration, field.TypeString, value)
		_node.Duration = &value
	}
	if value, ok := _c.mutation.Instructions(); ok {
		_spec.SetField(requestitem.FieldInstructions, field.TypeString, value)
		_node.Instructions = &value
	}
	if value, ok := _c.mutation.Available(); ok {
		_spec.SetField(requestitem.FieldAvailable, field.TypeBool, value)
		_node.Available = value
	}
	if value, ok := _c.mutation.ItemStatus(); ok {
		_spec.SetField(requestitem.FieldItemStatus, field.TypeEnum, value)
		_node.ItemStatus = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(requestitem.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if nodes := _c.mutation.RequestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   requestitem.RequestTable,
			Columns: []string{requestitem.RequestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(medicalrequest.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RequestID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RequestItemCreateBulk is the builder for creating many RequestItem entities in bulk.
type RequestItemCreateBulk struct {
	config
	err      error
	builders []*RequestItemCreate
}

// Save creates the RequestItem entities in the database.
func (_c *RequestItemCreateBulk) Save(ctx context.Context) ([]*RequestItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RequestItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RequestItemMutation)
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
func (_c *RequestItemCreateBulk) SaveX(ctx context.Context) []*RequestItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequestItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequestItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
