// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/notificationpref"
	"github.com/google/uuid"
)

// NotificationPrefCreate is the builder for creating a NotificationPref entity.
type NotificationPrefCreate struct {
	config
	mutation *NotificationPrefMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *NotificationPrefCreate) SetCreatedAt(v time.Time) *NotificationPrefCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NotificationPrefCreate) SetNillableCreatedAt(v *time.Time) *NotificationPrefCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *NotificationPrefCreate) SetUpdatedAt(v time.Time) *NotificationPrefCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *NotificationPrefCreate) SetNillableUpdatedAt(v *time.Time) *NotificationPrefCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *NotificationPrefCreate) SetUserID(v uuid.UUID) *NotificationPrefCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetRequestSms sets the "request_sms" field.
func (_c *NotificationPrefCreate) SetRequestSms(v bool) *NotificationPrefCreate {
	_c.mutation.SetRequestSms(v)
	return _c
}

// SetNillableRequestSms sets the "request_sms" field if the given value is not nil.
func (_c *NotificationPrefCreate) SetNillableRequestSms(v *bool) *NotificationPrefCreate {
	if v != nil {
		_c.SetRequestSms(*v)
	}
	return _c
}

// SetRequestEmail sets the "request_email" field.
func (_c *NotificationPrefCreate) SetRequestEmail(v bool) *NotificationPrefCreate {
	_c.mutation.SetRequestEmail(v)
	return _c
}

// SetNillableRequestEmail sets the "request_email" field if the given value is not nil.
func (_c *NotificationPrefCreate) SetNillableRequestEmail(v *bool) *NotificationPrefCreate {
	if v != nil {
		_c.SetRequestEmail(*v)
	}
	return _c
}

// SetRequestPush sets the "request_push" field.
func (_c *NotificationPrefCreate) SetRequestPush(v bool) *NotificationPrefCreate {
	_c.mutation.SetRequestPush(v)
	return _c
}

// SetNillableRequestPush sets the "request_push" field if the given value is not nil.
func (_c *NotificationPrefCreate) SetNillableRequestPush(v *bool) *NotificationPrefCreate {
	if v != nil {
		_c.SetRequestPush(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *NotificationPrefCreate) SetID(v uuid.UUID) *NotificationPrefCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *NotificationPrefCreate) SetNillableID(v *uuid.UUID) *NotificationPrefCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the NotificationPrefMutation object of the builder.
func (_c *NotificationPrefCreate) Mutation() *NotificationPrefMutation {
	return _c.mutation
}

// Save creates the NotificationPref in the database.
func (_c *NotificationPrefCreate) Save(ctx context.Context) (*NotificationPref, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NotificationPrefCreate) SaveX(ctx context.Context) *NotificationPref {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationPrefCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationPrefCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NotificationPrefCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := notificationpref.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := notificationpref.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.RequestSms(); !ok {
		v := notificationpref.DefaultRequestSms
		_c.mutation.SetRequestSms(v)
	}
	if _, ok := _c.mutation.RequestEmail(); !ok {
		v := notificationpref.DefaultRequestEmail
		_c.mutation.SetRequestEmail(v)
	}
	if _, ok := _c.mutation.RequestPush(); !ok {
		v := notificationpref.DefaultRequestPush
		_c.mutation.SetRequestPush(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := notificationpref.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NotificationPrefCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "NotificationPref.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "NotificationPref.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "NotificationPref.user_id"`)}
	}
	if _, ok := _c.mutation.RequestSms(); !ok {
		return &ValidationError{Name: "request_sms", err: errors.New(`repo: missing required field "NotificationPref.request_sms"`)}
	}
	if _, ok := _c.mutation.RequestEmail(); !ok {
		return &ValidationError{Name: "request_email", err: errors.New(`repo: missing required field "NotificationPref.request_email"`)}
	}
	if _, ok := _c.mutation.RequestPush(); !ok {
		return &ValidationError{Name: "request_push", err: errors.New(`repo: missing required field "NotificationPref.request_push"`)}
	}
	return nil
}

func (_c *NotificationPrefCreate) sqlSave(ctx context.Context) (*NotificationPref, error) {
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

func (_c *NotificationPrefCreate) createSpec() (*NotificationPref, *sqlgraph.CreateSpec) {
	var (
		_node = &NotificationPref{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(notificationpref.Table, sqlgraph.NewFieldSpec(notificationpref.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(notificationpref.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(notificationpref.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(notificationpref.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.RequestSms(); ok {
		_spec.SetField(notificationpref.FieldRequestSms, field.TypeBool, value)
		_node.RequestSms = value
	}
	if value, ok := _c.mutation.RequestEmail(); ok {
		_spec.SetField(notificationpref.FieldRequestEmail, field.TypeBool, value)
		_node.RequestEmail = value
	}
	if value, ok := _c.mutation.RequestPush(); ok {
		_spec.SetField(notificationpref.FieldRequestPush, field.TypeBool, value)
		_node.RequestPush = value
	}
	return _node, _spec
}

// NotificationPrefCreateBulk is the builder for creating many NotificationPref entities in bulk.
type NotificationPrefCreateBulk struct {
	config
	err      error
	builders []*NotificationPrefCreate
}

// Save creates the NotificationPref entities in the database.
func (_c *NotificationPrefCreateBulk) Save(ctx context.Context) ([]*NotificationPref, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NotificationPref, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NotificationPrefMutation)
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
func (_c *NotificationPrefCreateBulk) SaveX(ctx context.Context) []*NotificationPref {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationPrefCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationPrefCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
