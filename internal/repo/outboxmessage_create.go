// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/outboxmessage"
	"github.com/google/uuid"
)

// OutboxMessageCreate is the builder for creating a OutboxMessage entity.
type OutboxMessageCreate struct {
	config
	mutation *OutboxMessageMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *OutboxMessageCreate) SetCreatedAt(v time.Time) *OutboxMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OutboxMessageCreate) SetNillableCreatedAt(v *time.Time) *OutboxMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *OutboxMessageCreate) SetEventType(v string) *OutboxMessageCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *OutboxMessageCreate) SetSubject(v string) *OutboxMessageCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetEntityID sets the "entity_id" field.
func (_c *OutboxMessageCreate) SetEntityID(v uuid.UUID) *OutboxMessageCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *OutboxMessageCreate) SetPayload(v map[string]interface{}) *OutboxMessageCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetDispatched sets the "dispatched" field.
func (_c *OutboxMessageCreate) SetDispatched(v bool) *OutboxMessageCreate {
	_c.mutation.SetDispatched(v)
	return _c
}

// SetNillableDispatched sets the "dispatched" field if the given value is not nil.
func (_c *OutboxMessageCreate) SetNillableDispatched(v *bool) *OutboxMessageCreate {
	if v != nil {
		_c.SetDispatched(*v)
	}
	return _c
}

// SetDispatchedAt sets the "dispatched_at" field.
func (_c *OutboxMessageCreate) SetDispatchedAt(v time.Time) *OutboxMessageCreate {
	_c.mutation.SetDispatchedAt(v)
	return _c
}

// SetNillableDispatchedAt sets the "dispatched_at" field if the given value is not nil.
func (_c *OutboxMessageCreate) SetNillableDispatchedAt(v *time.Time) *OutboxMessageCreate {
	if v != nil {
		_c.SetDispatchedAt(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *OutboxMessageCreate) SetAttempts(v int) *OutboxMessageCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *OutboxMessageCreate) SetNillableAttempts(v *int) *OutboxMessageCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_c *OutboxMessageCreate) SetNextAttemptAt(v time.Time) *OutboxMessageCreate {
	_c.mutation.SetNextAttemptAt(v)
	return _c
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_c *OutboxMessageCreate) SetNillableNextAttemptAt(v *time.Time) *OutboxMessageCreate {
	if v != nil {
		_c.SetNextAttemptAt(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *OutboxMessageCreate) SetLastError(v string) *OutboxMessageCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *OutboxMessageCreate) SetNillableLastError(v *string) *OutboxMessageCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OutboxMessageCreate) SetID(v uuid.UUID) *OutboxMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OutboxMessageCreate) SetNillableID(v *uuid.UUID) *OutboxMessageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the OutboxMessageMutation object of the builder.
func (_c *OutboxMessageCreate) Mutation() *OutboxMessageMutation {
	return _c.mutation
}

// Save creates the OutboxMessage in the database.
func (_c *OutboxMessageCreate) Save(ctx context.Context) (*OutboxMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OutboxMessageCreate) SaveX(ctx context.Context) *OutboxMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OutboxMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OutboxMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OutboxMessageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := outboxmessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Dispatched(); !ok {
		v := outboxmessage.DefaultDispatched
		_c.mutation.SetDispatched(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := outboxmessage.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.NextAttemptAt(); !ok {
		v := outboxmessage.DefaultNextAttemptAt()
		_c.mutation.SetNextAttemptAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := outboxmessage.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OutboxMessageCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "OutboxMessage.created_at"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`repo: missing required field "OutboxMessage.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := outboxmessage.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`repo: validator failed for field "OutboxMessage.event_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`repo: missing required field "OutboxMessage.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := outboxmessage.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`repo: validator failed for field "OutboxMessage.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EntityID(); !ok {
		return &ValidationError{Name: "entity_id", err: errors.New(`repo: missing required field "OutboxMessage.entity_id"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`repo: missing required field "OutboxMessage.payload"`)}
	}
	if _, ok := _c.mutation.Dispatched(); !ok {
		return &ValidationError{Name: "dispatched", err: errors.New(`repo: missing required field "OutboxMessage.dispatched"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`repo: missing required field "OutboxMessage.attempts"`)}
	}
	if v, ok := _c.mutation.Attempts(); ok {
		if err := outboxmessage.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`repo: validator failed for field "OutboxMessage.attempts": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NextAttemptAt(); !ok {
		return &ValidationError{Name: "next_attempt_at", err: errors.New(`repo: missing required field "OutboxMessage.next_attempt_at"`)}
	}
	return nil
}

func (_c *OutboxMessageCreate) sqlSave(ctx context.Context) (*OutboxMessage, error) {
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

func (_c *OutboxMessageCreate) createSpec() (*OutboxMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &OutboxMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(outboxmessage.Table, sqlgraph.NewFieldSpec(outboxmessage.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(outboxmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(outboxmessage.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(outboxmessage.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.EntityID(); ok {
		_spec.SetField(outboxmessage.FieldEntityID, field.TypeUUID, value)
		_node.EntityID = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(outboxmessage.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Dispatched(); ok {
		_spec.SetField(outboxmessage.FieldDispatched, field.TypeBool, value)
		_node.Dispatched = value
	}
	if value, ok := _c.mutation.DispatchedAt(); ok {
		_spec.SetField(outboxmessage.FieldDispatchedAt, field.TypeTime, value)
		_node.DispatchedAt = &value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(outboxmessage.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.NextAttemptAt(); ok {
		_spec.SetField(outboxmessage.FieldNextAttemptAt, field.TypeTime, value)
		_node.NextAttemptAt = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(outboxmessage.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	return _node, _spec
}

// OutboxMessageCreateBulk is the builder for creating many OutboxMessage entities in bulk.
type OutboxMessageCreateBulk struct {
	config
	err      error
	builders []*OutboxMessageCreate
}

// Save creates the OutboxMessage entities in the database.
func (_c *OutboxMessageCreateBulk) Save(ctx context.Context) ([]*OutboxMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OutboxMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OutboxMessageMutation)
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
func (_c *OutboxMessageCreateBulk) SaveX(ctx context.Context) []*OutboxMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OutboxMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OutboxMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
