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
	"github.com/Bemyself19/sehatynet_backend/internal/repo/outboxmessage"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// OutboxMessageUpdate is the builder for updating OutboxMessage entities.
type OutboxMessageUpdate struct {
	config
	hooks    []Hook
	mutation *OutboxMessageMutation
}

// Where appends a list predicates to the OutboxMessageUpdate builder.
func (_u *OutboxMessageUpdate) Where(ps ...predicate.OutboxMessage) *OutboxMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *OutboxMessageUpdate) SetEventType(v string) *OutboxMessageUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *OutboxMessageUpdate) SetNillableEventType(v *string) *OutboxMessageUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *OutboxMessageUpdate) SetSubject(v string) *OutboxMessageUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *OutboxMessageUpdate) SetNillableSubject(v *string) *OutboxMessageUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetEntityID sets the "entity_id" field.
func (_u *OutboxMessageUpdate) SetEntityID(v uuid.UUID) *OutboxMessageUpdate {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *OutboxMessageUpdate) SetNillableEntityID(v *uuid.UUID) *OutboxMessageUpdate {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *OutboxMessageUpdate) SetPayload(v map[string]interface{}) *OutboxMessageUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetDispatched sets the "dispatched" field.
func (_u *OutboxMessageUpdate) SetDispatched(v bool) *OutboxMessageUpdate {
	_u.mutation.SetDispatched(v)
	return _u
}

// SetNillableDispatched sets the "dispatched" field if the given value is not nil.
func (_u *OutboxMessageUpdate) SetNillableDispatched(v *bool) *OutboxMessageUpdate {
	if v != nil {
		_u.SetDispatched(*v)
	}
	return _u
}

// SetDispatchedAt sets the "dispatched_at" field.
func (_u *OutboxMessageUpdate) SetDispatchedAt(v time.Time) *OutboxMessageUpdate {
	_u.mutation.SetDispatchedAt(v)
	return _u
}

// SetNillableDispatchedAt sets the "dispatched_at" field if the given value is not nil.
func (_u *OutboxMessageUpdate) SetNillableDispatchedAt(v *time.Time) *OutboxMessageUpdate {
	if v != nil {
		_u.SetDispatchedAt(*v)
	}
	return _u
}

// ClearDispatchedAt clears the value of the "dispatched_at" field.
func (_u *OutboxMessageUpdate) ClearDispatchedAt() *OutboxMessageUpdate {
	_u.mutation.ClearDispatchedAt()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *OutboxMessageUpdate) SetAttempts(v int) *OutboxMessageUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *OutboxMessageUpdate) SetNillableAttempts(v *int) *OutboxMessageUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *OutboxMessageUpdate) AddAttempts(v int) *OutboxMessageUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_u *OutboxMessageUpdate) SetNextAttemptAt(v time.Time) *OutboxMessageUpdate {
	_u.mutation.SetNextAttemptAt(v)
	return _u
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_u *OutboxMessageUpdate) SetNillableNextAttemptAt(v *time.Time) *OutboxMessageUpdate {
	if v != nil {
		_u.SetNextAttemptAt(*v)
	}
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *OutboxMessageUpdate) SetLastError(v string) *OutboxMessageUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *OutboxMessageUpdate) SetNillableLastError(v *string) *OutboxMessageUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *OutboxMessageUpdate) ClearLastError() *OutboxMessageUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// Mutation returns the OutboxMessageMutation object of the builder.
func (_u *OutboxMessageUpdate) Mutation() *OutboxMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OutboxMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OutboxMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OutboxMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OutboxMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OutboxMessageUpdate) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := outboxmessage.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`repo: validator failed for field "OutboxMessage.event_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := outboxmessage.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`repo: validator failed for field "OutboxMessage.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempts(); ok {
		if err := outboxmessage.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`repo: validator failed for field "OutboxMessage.attempts": %w`, err)}
		}
	}
	return nil
}

func (_u *OutboxMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(outboxmessage.Table, outboxmessage.Columns, sqlgraph.NewFieldSpec(outboxmessage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(outboxmessage.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(outboxmessage.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntityID(); ok {
		_spec.SetField(outboxmessage.FieldEntityID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(outboxmessage.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Dispatched(); ok {
		_spec.SetField(outboxmessage.FieldDispatched, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DispatchedAt(); ok {
		_spec.SetField(outboxmessage.FieldDispatchedAt, field.TypeTime, value)
	}
	if _u.mutation.DispatchedAtCleared() {
		_spec.ClearField(outboxmessage.FieldDispatchedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(outboxmessage.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(outboxmessage.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextAttemptAt(); ok {
		_spec.SetField(outboxmessage.FieldNextAttemptAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(outboxmessage.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(outboxmessage.FieldLastError, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{outboxmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OutboxMessageUpdateOne is the builder for updating a single OutboxMessage entity.
type OutboxMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OutboxMessageMutation
}

// SetEventType sets the "event_type" field.
func (_u *OutboxMessageUpdateOne) SetEventType(v string) *OutboxMessageUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *OutboxMessageUpdateOne) SetNillableEventType(v *string) *OutboxMessageUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *OutboxMessageUpdateOne) SetSubject(v string) *OutboxMessageUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *OutboxMessageUpdateOne) SetNillableSubject(v *string) *OutboxMessageUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetEntityID sets the "entity_id" field.
func (_u *OutboxMessageUpdateOne) SetEntityID(v uuid.UUID) *OutboxMessageUpdateOne {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *OutboxMessageUpdateOne) SetNillableEntityID(v *uuid.UUID) *OutboxMessageUpdateOne {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *OutboxMessageUpdateOne) SetPayload(v map[string]interface{}) *OutboxMessageUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetDispatched sets the "dispatched" field.
func (_u *OutboxMessageUpdateOne) SetDispatched(v bool) *OutboxMessageUpdateOne {
	_u.mutation.SetDispatched(v)
	return _u
}

// SetNillableDispatched sets the "dispatched" field if the given value is not nil.
func (_u *OutboxMessageUpdateOne) SetNillableDispatched(v *bool) *OutboxMessageUpdateOne {
	if v != nil {
		_u.SetDispatched(*v)
	}
	return _u
}

// SetDispatchedAt sets the "dispatched_at" field.
func (_u *OutboxMessageUpdateOne) SetDispatchedAt(v time.Time) *OutboxMessageUpdateOne {
	_u.mutation.SetDispatchedAt(v)
	return _u
}

// SetNillableDispatchedAt sets the "dispatched_at" field if the given value is not nil.
func (_u *OutboxMessageUpdateOne) SetNillableDispatchedAt(v *time.Time) *OutboxMessageUpdateOne {
	if v != nil {
		_u.SetDispatchedAt(*v)
	}
	return _u
}

// ClearDispatchedAt clears the value of the "dispatched_at" field.
func (_u *OutboxMessageUpdateOne) ClearDispatchedAt() *OutboxMessageUpdateOne {
	_u.mutation.ClearDispatchedAt()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *OutboxMessageUpdateOne) SetAttempts(v int) *OutboxMessageUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *OutboxMessageUpdateOne) SetNillableAttempts(v *int) *OutboxMessageUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *OutboxMessageUpdateOne) AddAttempts(v int) *OutboxMessageUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_u *OutboxMessageUpdateOne) SetNextAttemptAt(v time.Time) *OutboxMessageUpdateOne {
	_u.mutation.SetNextAttemptAt(v)
	return _u
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_u *OutboxMessageUpdateOne) SetNillableNextAttemptAt(v *time.Time) *OutboxMessageUpdateOne {
	if v != nil {
		_u.SetNextAttemptAt(*v)
	}
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *OutboxMessageUpdateOne) SetLastError(v string) *OutboxMessageUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *OutboxMessageUpdateOne) SetNillableLastError(v *string) *OutboxMessageUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *OutboxMessageUpdateOne) ClearLastError() *OutboxMessageUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// Mutation returns the OutboxMessageMutation object of the builder.
func (_u *OutboxMessageUpdateOne) Mutation() *OutboxMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the OutboxMessageUpdate builder.
func (_u *OutboxMessageUpdateOne) Where(ps ...predicate.OutboxMessage) *OutboxMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OutboxMessageUpdateOne) Select(field string, fields ...string) *OutboxMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OutboxMessage entity.
func (_u *OutboxMessageUpdateOne) Save(ctx context.Context) (*OutboxMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OutboxMessageUpdateOne) SaveX(ctx context.Context) *OutboxMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OutboxMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OutboxMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OutboxMessageUpdateOne) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := outboxmessage.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`repo: validator failed for field "OutboxMessage.event_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := outboxmessage.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`repo: validator failed for field "OutboxMessage.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempts(); ok {
		if err := outboxmessage.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`repo: validator failed for field "OutboxMessage.attempts": %w`, err)}
		}
	}
	return nil
}

func (_u *OutboxMessageUpdateOne) sqlSave(ctx context.Context) (_node *OutboxMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(outboxmessage.Table, outboxmessage.Columns, sqlgraph.NewFieldSpec(outboxmessage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "OutboxMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, outboxmessage.FieldID)
		for _, f := range fields {
			if !outboxmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != outboxmessage.FieldID {
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
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(outboxmessage.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(outboxmessage.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntityID(); ok {
		_spec.SetField(outboxmessage.FieldEntityID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(outboxmessage.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Dispatched(); ok {
		_spec.SetField(outboxmessage.FieldDispatched, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DispatchedAt(); ok {
		_spec.SetField(outboxmessage.FieldDispatchedAt, field.TypeTime, value)
	}
	if _u.mutation.DispatchedAtCleared() {
		_spec.ClearField(outboxmessage.FieldDispatchedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(outboxmessage.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(outboxmessage.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextAttemptAt(); ok {
		_spec.SetField(outboxmessage.FieldNextAttemptAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(outboxmessage.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(outboxmessage.FieldLastError, field.TypeString)
	}
	_node = &OutboxMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{outboxmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
