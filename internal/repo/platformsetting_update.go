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
	"github.com/Bemyself19/sehatynet_backend/internal/repo/platformsetting"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// PlatformSettingUpdate is the builder for updating PlatformSetting entities.
type PlatformSettingUpdate struct {
	config
	hooks    []Hook
	mutation *PlatformSettingMutation
}

// Where appends a list predicates to the PlatformSettingUpdate builder.
func (_u *PlatformSettingUpdate) Where(ps ...predicate.PlatformSetting) *PlatformSettingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PlatformSettingUpdate) SetUpdatedAt(v time.Time) *PlatformSettingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetKey sets the "key" field.
func (_u *PlatformSettingUpdate) SetKey(v string) *PlatformSettingUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *PlatformSettingUpdate) SetNillableKey(v *string) *PlatformSettingUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *PlatformSettingUpdate) SetValue(v string) *PlatformSettingUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *PlatformSettingUpdate) SetNillableValue(v *string) *PlatformSettingUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *PlatformSettingUpdate) SetUpdatedBy(v uuid.UUID) *PlatformSettingUpdate {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *PlatformSettingUpdate) SetNillableUpdatedBy(v *uuid.UUID) *PlatformSettingUpdate {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (_u *PlatformSettingUpdate) ClearUpdatedBy() *PlatformSettingUpdate {
	_u.mutation.ClearUpdatedBy()
	return _u
}

// Mutation returns the PlatformSettingMutation object of the builder.
func (_u *PlatformSettingUpdate) Mutation() *PlatformSettingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlatformSettingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlatformSettingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlatformSettingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlatformSettingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PlatformSettingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := platformsetting.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlatformSettingUpdate) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := platformsetting.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`repo: validator failed for field "PlatformSetting.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Value(); ok {
		if err := platformsetting.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`repo: validator failed for field "PlatformSetting.value": %w`, err)}
		}
	}
	return nil
}

func (_u *PlatformSettingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(platformsetting.Table, platformsetting.Columns, sqlgraph.NewFieldSpec(platformsetting.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(platformsetting.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(platformsetting.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(platformsetting.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(platformsetting.FieldUpdatedBy, field.TypeUUID, value)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(platformsetting.FieldUpdatedBy, field.TypeUUID)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{platformsetting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlatformSettingUpdateOne is the builder for updating a single PlatformSetting entity.
type PlatformSettingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlatformSettingMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PlatformSettingUpdateOne) SetUpdatedAt(v time.Time) *PlatformSettingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetKey sets the "key" field.
func (_u *PlatformSettingUpdateOne) SetKey(v string) *PlatformSettingUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *PlatformSettingUpdateOne) SetNillableKey(v *string) *PlatformSettingUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *PlatformSettingUpdateOne) SetValue(v string) *PlatformSettingUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *PlatformSettingUpdateOne) SetNillableValue(v *string) *PlatformSettingUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *PlatformSettingUpdateOne) SetUpdatedBy(v uuid.UUID) *PlatformSettingUpdateOne {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *PlatformSettingUpdateOne) SetNillableUpdatedBy(v *uuid.UUID) *PlatformSettingUpdateOne {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (_u *PlatformSettingUpdateOne) ClearUpdatedBy() *PlatformSettingUpdateOne {
	_u.mutation.ClearUpdatedBy()
	return _u
}

// Mutation returns the PlatformSettingMutation object of the builder.
func (_u *PlatformSettingUpdateOne) Mutation() *PlatformSettingMutation {
	return _u.mutation
}

// Where appends a list predicates to the PlatformSettingUpdate builder.
func (_u *PlatformSettingUpdateOne) Where(ps ...predicate.PlatformSetting) *PlatformSettingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlatformSettingUpdateOne) Select(field string, fields ...string) *PlatformSettingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlatformSetting entity.
func (_u *PlatformSettingUpdateOne) Save(ctx context.Context) (*PlatformSetting, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlatformSettingUpdateOne) SaveX(ctx context.Context) *PlatformSetting {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlatformSettingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlatformSettingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PlatformSettingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := platformsetting.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlatformSettingUpdateOne) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := platformsetting.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`repo: validator failed for field "PlatformSetting.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Value(); ok {
		if err := platformsetting.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`repo: validator failed for field "PlatformSetting.value": %w`, err)}
		}
	}
	return nil
}

func (_u *PlatformSettingUpdateOne) sqlSave(ctx context.Context) (_node *PlatformSetting, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(platformsetting.Table, platformsetting.Columns, sqlgraph.NewFieldSpec(platformsetting.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "PlatformSetting.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, platformsetting.FieldID)
		for _, f := range fields {
			if !platformsetting.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != platformsetting.FieldID {
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
		_spec.SetField(platformsetting.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(platformsetting.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(platformsetting.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(platformsetting.FieldUpdatedBy, field.TypeUUID, value)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(platformsetting.FieldUpdatedBy, field.TypeUUID)
	}
	_node = &PlatformSetting{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{platformsetting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
