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
	"github.com/google/uuid"
)

// RequestItemUpdate is the builder for updating RequestItem entities.
type RequestItemUpdate struct {
	config
	hooks    []Hook
	mutation *RequestItemMutation
}

// Where appends a list predicates to the RequestItemUpdate builder.
func (_u *RequestItemUpdate) Where(ps ...predicate.RequestItem) *RequestItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RequestItemUpdate) SetUpdatedAt(v time.Time) *RequestItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *RequestItemUpdate) SetRequestID(v uuid.UUID) *RequestItemUpdate {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *RequestItemUpdate) SetNillableRequestID(v *uuid.UUID) *RequestItemUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *RequestItemUpdate) SetName(v string) *RequestItemUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RequestItemUpdate) SetNillableName(v *string) *RequestItemUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDosage sets the "dosage" field.
func (_u *RequestItemUpdate) SetDosage(v string) *RequestItemUpdate {
	_u.mutation.SetDosage(v)
	return _u
}

// SetNillableDosage sets the "dosage" field if the given value is not nil.
func (_u *RequestItemUpdate) SetNillableDosage(v *string) *RequestItemUpdate {
	if v != nil {
		_u.SetDosage(*v)
	}
	return _u
}

// ClearDosage clears the value of the "dosage" field.
func (_u *RequestItemUpdate) ClearDosage() *RequestItemUpdate {
	_u.mutation.ClearDosage()
	return _u
}

// SetFrequency sets the "frequency" field.
func (_u *RequestItemUpdate) SetFrequency(v string) *RequestItemUpdate {
	_u.mutation.SetFrequency(v)
	return _u
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_u *RequestItemUpdate) SetNillableFrequency(v *string) *RequestItemUpdate {
	if v != nil {
		_u.SetFrequency(*v)
	}
	return _u
}

// ClearFrequency clears the value of the "frequency" field.
func (_u *RequestItemUpdate) ClearFrequency() *RequestItemUpdate {
	_u.mutation.ClearFrequency()
	return _u
}

// SetDuration sets the "duration" field.
func (_u *RequestItemUpdate) SetDuration(v string) *RequestItemUpdate {
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *RequestItemUpdate) SetNillableDuration(v *string) *RequestItemUpdate {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// ClearDuration clears the value of the "duration" field.
func (_u *RequestItemUpdate) ClearDuration() *RequestItemUpdate {
	_u.mutation.ClearDuration()
	return _u
}

// SetInstructions sets the "instructions" field.
func (_u *RequestItemUpdate) SetInstructions(v string) *RequestItemUpdate {
	_u.mutation.SetInstructions(v)
	return _u
}

// SetNillableInstructions sets the "instructions" field if the given value is not nil.
func (_u *RequestItemUpdate) SetNillableInstructions(v *string) *RequestItemUpdate {
	if v != nil {
		_u.SetInstructions(*v)
	}
	return _u
}

// ClearInstructions clears the value of the "instructions" field.
func (_u *RequestItemUpdate) ClearInstructions() *RequestItemUpdate {
	_u.mutation.ClearInstructions()
	return _u
}

// SetAvailable sets the "available" field.
func (_u *RequestItemUpdate) SetAvailable(v bool) *RequestItemUpdate {
	_u.mutation.SetAvailable(v)
	return _u
}

// SetNillableAvailable sets the "available" field if the given value is not nil.
func (_u *RequestItemUpdate) SetNillableAvailable(v *bool) *RequestItemUpdate {
	if v != nil {
		_u.SetAvailable(*v)
	}
	return _u
}

// SetItemStatus sets the "item_status" field.
func (_u *RequestItemUpdate) SetItemStatus(v requestitem.ItemStatus) *RequestItemUpdate {
	_u.mutation.SetItemStatus(v)
	return _u
}

// SetNillableItemStatus sets the "item_status" field if the given value is not nil.
func (_u *RequestItemUpdate) SetNillableItemStatus(v *requestitem.ItemStatus) *RequestItemUpdate {
	if v != nil {
		_u.SetItemStatus(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *RequestItemUpdate) SetPosition(v int) *RequestItemUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *RequestItemUpdate) SetNillablePosition(v *int) *RequestItemUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *RequestItemUpdate) AddPosition(v int) *RequestItemUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetRequest sets the "request" edge to the MedicalRequest entity.
func (_u *RequestItemUpdate) SetRequest(v *MedicalRequest) *RequestItemUpdate {
	return _u.SetRequestID(v.ID)
}

// Mutation returns the RequestItemMutation object of the builder.
func (_u *RequestItemUpdate) Mutation() *RequestItemMutation {
	return _u.mutation
}

// ClearRequest clears the "request" edge to the MedicalRequest entity.
func (_u *RequestItemUpdate) ClearRequest() *RequestItemUpdate {
	_u.mutation.ClearRequest()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RequestItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RequestItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RequestItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := requestitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequestItemUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := requestitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "RequestItem.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Dosage(); ok {
		if err := requestitem.DosageValidator(v); err != nil {
			return &ValidationError{Name: "dosage", err: fmt.Errorf(`repo: validator failed for field "RequestItem.dosage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Frequency(); ok {
		if err := requestitem.FrequencyValidator(v); err != nil {
			return &ValidationError{Name: "frequency", err: fmt.Errorf(`repo: validator failed for field "RequestItem.frequency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Duration(); ok {
		if err := requestitem.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`repo: validator failed for field "RequestItem.duration": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemStatus(); ok {
		if err := requestitem.ItemStatusValidator(v); err != nil {
			return &ValidationError{Name: "item_status", err: fmt.Errorf(`repo: validator failed for field "RequestItem.item_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := requestitem.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`repo: validator failed for field "RequestItem.position": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "RequestItem.request"`)
	}
	return nil
}

func (_u *RequestItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(requestitem.Table, requestitem.Columns, sqlgraph.NewFieldSpec(requestitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(requestitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(requestitem.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dosage(); ok {
		_spec.SetField(requestitem.FieldDosage, field.TypeString, value)
	}
	if _u.mutation.DosageCleared() {
		_spec.ClearField(requestitem.FieldDosage, field.TypeString)
	}
	if value, ok := _u.mutation.Frequency(); ok {
		_spec.SetField(requestitem.FieldFrequency, field.TypeString, value)
	}
	if _u.mutation.FrequencyCleared() {
		_spec.ClearField(requestitem.FieldFrequency, field.TypeString)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(requestitem.FieldDuration, field.TypeString, value)
	}
	if _u.mutation.DurationCleared() {
		_spec.ClearField(requestitem.FieldDuration, field.TypeString)
	}
	if value, ok := _u.mutation.Instructions(); ok {
		_spec.SetField(requestitem.FieldInstructions, field.TypeString, value)
	}
	if _u.mutation.InstructionsCleared() {
		_spec.ClearField(requestitem.FieldInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.Available(); ok {
		_spec.SetField(requestitem.FieldAvailable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ItemStatus(); ok {
		_spec.SetField(requestitem.FieldItemStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(requestitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(requestitem.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.RequestCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RequestIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{requestitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RequestItemUpdateOne is the builder for updating a single RequestItem entity.
type RequestItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RequestItemMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RequestItemUpdateOne) SetUpdatedAt(v time.Time) *RequestItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *RequestItemUpdateOne) SetRequestID(v uuid.UUID) *RequestItemUpdateOne {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *RequestItemUpdateOne) SetNillableRequestID(v *uuid.UUID) *RequestItemUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *RequestItemUpdateOne) SetName(v string) *RequestItemUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RequestItemUpdateOne) SetNillableName(v *string) *RequestItemUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDosage sets the "dosage" field.
func (_u *RequestItemUpdateOne) SetDosage(v string) *RequestItemUpdateOne {
	_u.mutation.SetDosage(v)
	return _u
}

// SetNillableDosage sets the "dosage" field if the given value is not nil.
func (_u *RequestItemUpdateOne) SetNillableDosage(v *string) *RequestItemUpdateOne {
	if v != nil {
		_u.SetDosage(*v)
	}
	return _u
}

// ClearDosage clears the value of the "dosage" field.
func (_u *RequestItemUpdateOne) ClearDosage() *RequestItemUpdateOne {
	_u.mutation.ClearDosage()
	return _u
}

// SetFrequency sets the "frequency" field.
func (_u *RequestItemUpdateOne) SetFrequency(v string) *RequestItemUpdateOne {
	_u.mutation.SetFrequency(v)
	return _u
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_u *RequestItemUpdateOne) SetNillableFrequency(v *string) *RequestItemUpdateOne {
	if v != nil {
		_u.SetFrequency(*v)
	}
	return _u
}

// ClearFrequency clears the value of the "frequency" field.
func (_u *RequestItemUpdateOne) ClearFrequency() *RequestItemUpdateOne {
	_u.mutation.ClearFrequency()
	return _u
}

// SetDuration sets the "duration" field.
func (_u *RequestItemUpdateOne) SetDuration(v string) *RequestItemUpdateOne {
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *RequestItemUpdateOne) SetNillableDuration(v *string) *RequestItemUpdateOne {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// ClearDuration clears the value of the "duration" field.
func (_u *RequestItemUpdateOne) ClearDuration() *RequestItemUpdateOne {
	_u.mutation.ClearDuration()
	return _u
}

// SetInstructions sets the "instructions" field.
func (_u *RequestItemUpdateOne) SetInstructions(v string) *RequestItemUpdateOne {
	_u.mutation.SetInstructions(v)
	return _u
}

// SetNillableInstructions sets the "instructions" field if the given value is not nil.
func (_u *RequestItemUpdateOne) SetNillableInstructions(v *string) *RequestItemUpdateOne {
	if v != nil {
		_u.SetInstructions(*v)
	}
	return _u
}

// ClearInstructions clears the value of the "instructions" field.
func (_u *RequestItemUpdateOne) ClearInstructions() *RequestItemUpdateOne {
	_u.mutation.ClearInstructions()
	return _u
}

// SetAvailable sets the "available" field.
func (_u *RequestItemUpdateOne) SetAvailable(v bool) *RequestItemUpdateOne {
	_u.mutation.SetAvailable(v)
	return _u
}

// SetNillableAvailable sets the "available" field if the given value is not nil.
func (_u *RequestItemUpdateOne) SetNillableAvailable(v *bool) *RequestItemUpdateOne {
	if v != nil {
		_u.SetAvailable(*v)
	}
	return _u
}

// SetItemStatus sets the "item_status" field.
func (_u *RequestItemUpdateOne) SetItemStatus(v requestitem.ItemStatus) *RequestItemUpdateOne {
	_u.mutation.SetItemStatus(v)
	return _u
}

// SetNillableItemStatus sets the "item_status" field if the given value is not nil.
func (_u *RequestItemUpdateOne) SetNillableItemStatus(v *requestitem.ItemStatus) *RequestItemUpdateOne {
	if v != nil {
		_u.SetItemStatus(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *RequestItemUpdateOne) SetPosition(v int) *RequestItemUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *RequestItemUpdateOne) SetNillablePosition(v *int) *RequestItemUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *RequestItemUpdateOne) AddPosition(v int) *RequestItemUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetRequest sets the "request" edge to the MedicalRequest entity.
func (_u *RequestItemUpdateOne) SetRequest(v *MedicalRequest) *RequestItemUpdateOne {
	return _u.SetRequestID(v.ID)
}

// Mutation returns the RequestItemMutation object of the builder.
func (_u *RequestItemUpdateOne) Mutation() *RequestItemMutation {
	return _u.mutation
}

// ClearRequest clears the "request" edge to the MedicalRequest entity.
func (_u *RequestItemUpdateOne) ClearRequest() *RequestItemUpdateOne {
	_u.mutation.ClearRequest()
	return _u
}

// Where appends a list predicates to the RequestItemUpdate builder.
func (_u *RequestItemUpdateOne) Where(ps ...predicate.RequestItem) *RequestItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RequestItemUpdateOne) Select(field string, fields ...string) *RequestItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RequestItem entity.
func (_u *RequestItemUpdateOne) Save(ctx context.Context) (*RequestItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestItemUpdateOne) SaveX(ctx context.Context) *RequestItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RequestItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RequestItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := requestitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequestItemUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := requestitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "RequestItem.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Dosage(); ok {
		if err := requestitem.DosageValidator(v); err != nil {
			return &ValidationError{Name: "dosage", err: fmt.Errorf(`repo: validator failed for field "RequestItem.dosage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Frequency(); ok {
		if err := requestitem.FrequencyValidator(v); err != nil {
			return &ValidationError{Name: "frequency", err: fmt.Errorf(`repo: validator failed for field "RequestItem.frequency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Duration(); ok {
		if err := requestitem.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`repo: validator failed for field "RequestItem.duration": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemStatus(); ok {
		if err := requestitem.ItemStatusValidator(v); err != nil {
			return &ValidationError{Name: "item_status", err: fmt.Errorf(`repo: validator failed for field "RequestItem.item_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := requestitem.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`repo: validator failed for field "RequestItem.position": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "RequestItem.request"`)
	}
	return nil
}

func (_u *RequestItemUpdateOne) sqlSave(ctx context.Context) (_node *RequestItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(requestitem.Table, requestitem.Columns, sqlgraph.NewFieldSpec(requestitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "RequestItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, requestitem.FieldID)
		for _, f := range fields {
			if !requestitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != requestitem.FieldID {
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
		_spec.SetField(requestitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(requestitem.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dosage(); ok {
		_spec.SetField(requestitem.FieldDosage, field.TypeString, value)
	}
	if _u.mutation.DosageCleared() {
		_spec.ClearField(requestitem.FieldDosage, field.TypeString)
	}
	if value, ok := _u.mutation.Frequency(); ok {
		_spec.SetField(requestitem.FieldFrequency, field.TypeString, value)
	}
	if _u.mutation.FrequencyCleared() {
		_spec.ClearField(requestitem.FieldFrequency, field.TypeString)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(requestitem.FieldDuration, field.TypeString, value)
	}
	if _u.mutation.DurationCleared() {
		_spec.ClearField(requestitem.FieldDuration, field.TypeString)
	}
	if value, ok := _u.mutation.Instructions(); ok {
		_spec.SetField(requestitem.FieldInstructions, field.TypeString, value)
	}
	if _u.mutation.InstructionsCleared() {
		_spec.ClearField(requestitem.FieldInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.Available(); ok {
		_spec.SetField(requestitem.FieldAvailable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ItemStatus(); ok {
		_spec.SetField(requestitem.FieldItemStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(requestitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(requestitem.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.RequestCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RequestIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RequestItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{requestitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
