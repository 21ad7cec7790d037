// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/medicalrequest"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/predicate"
)

// MedicalRequestDelete is the builder for deleting a MedicalRequest entity.
type MedicalRequestDelete struct {
	config
	hooks    []Hook
	mutation *MedicalRequestMutation
}

// Where appends a list predicates to the MedicalRequestDelete builder.
func (_d *MedicalRequestDelete) Where(ps ...predicate.MedicalRequest) *MedicalRequestDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MedicalRequestDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MedicalRequestDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MedicalRequestDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(medicalrequest.Table, sqlgraph.NewFieldSpec(medicalrequest.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// MedicalRequestDeleteOne is the builder for deleting a single MedicalRequest entity.
type MedicalRequestDeleteOne struct {
	_d *MedicalRequestDelete
}

// Where appends a list predicates to the MedicalRequestDelete builder.
func (_d *MedicalRequestDeleteOne) Where(ps ...predicate.MedicalRequest) *MedicalRequestDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MedicalRequestDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{medicalrequest.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MedicalRequestDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
