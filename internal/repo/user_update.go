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
	"github.com/Bemyself19/sehatynet_backend/internal/repo/user"
	"github.com/google/uuid"
)

// UserUpdate is the builder for updating User entities.
type UserUpdate struct {
	config
	hooks    []Hook
	mutation *UserMutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdate) Where(ps ...predicate.User) *UserUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdate) SetUpdatedAt(v time.Time) *UserUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *UserUpdate) SetDeletedAt(v time.Time) *UserUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *UserUpdate) SetNillableDeletedAt(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *UserUpdate) ClearDeletedAt() *UserUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *UserUpdate) SetFirstName(v string) *UserUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *UserUpdate) SetNillableFirstName(v *string) *UserUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// ClearFirstName clears the value of the "first_name" field.
func (_u *UserUpdate) ClearFirstName() *UserUpdate {
	_u.mutation.ClearFirstName()
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *UserUpdate) SetLastName(v string) *UserUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *UserUpdate) SetNillableLastName(v *string) *UserUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// ClearLastName clears the value of the "last_name" field.
func (_u *UserUpdate) ClearLastName() *UserUpdate {
	_u.mutation.ClearLastName()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *UserUpdate) SetPhone(v string) *UserUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *UserUpdate) SetNillablePhone(v *string) *UserUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *UserUpdate) ClearPhone() *UserUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserUpdate) SetEmail(v string) *UserUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdate) SetNillableEmail(v *string) *UserUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *UserUpdate) ClearEmail() *UserUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *UserUpdate) SetPasswordHash(v string) *UserUpdate {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *UserUpdate) SetNillablePasswordHash(v *string) *UserUpdate {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (_u *UserUpdate) ClearPasswordHash() *UserUpdate {
	_u.mutation.ClearPasswordHash()
	return _u
}

// SetRole sets the "role" field.
func (_u *UserUpdate) SetRole(v user.Role) *UserUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *UserUpdate) SetNillableRole(v *user.Role) *UserUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetProviderType sets the "provider_type" field.
func (_u *UserUpdate) SetProviderType(v user.ProviderType) *UserUpdate {
	_u.mutation.SetProviderType(v)
	return _u
}

// SetNillableProviderType sets the "provider_type" field if the given value is not nil.
func (_u *UserUpdate) SetNillableProviderType(v *user.ProviderType) *UserUpdate {
	if v != nil {
		_u.SetProviderType(*v)
	}
	return _u
}

// ClearProviderType clears the value of the "provider_type" field.
func (_u *UserUpdate) ClearProviderType() *UserUpdate {
	_u.mutation.ClearProviderType()
	return _u
}

// SetSpecialty sets the "specialty" field.
func (_u *UserUpdate) SetSpecialty(v string) *UserUpdate {
	_u.mutation.SetSpecialty(v)
	return _u
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_u *UserUpdate) SetNillableSpecialty(v *string) *UserUpdate {
	if v != nil {
		_u.SetSpecialty(*v)
	}
	return _u
}

// ClearSpecialty clears the value of the "specialty" field.
func (_u *UserUpdate) ClearSpecialty() *UserUpdate {
	_u.mutation.ClearSpecialty()
	return _u
}

// SetNationalIDEncrypted sets the "national_id_encrypted" field.
func (_u *UserUpdate) SetNationalIDEncrypted(v string) *UserUpdate {
	_u.mutation.SetNationalIDEncrypted(v)
	return _u
}

// SetNillableNationalIDEncrypted sets the "national_id_encrypted" field if the given value is not nil.
func (_u *UserUpdate) SetNillableNationalIDEncrypted(v *string) *UserUpdate {
	if v != nil {
		_u.SetNationalIDEncrypted(*v)
	}
	return _u
}

// ClearNationalIDEncrypted clears the value of the "national_id_encrypted" field.
func (_u *UserUpdate) ClearNationalIDEncrypted() *UserUpdate {
	_u.mutation.ClearNationalIDEncrypted()
	return _u
}

// SetNationalIDHash sets the "national_id_hash" field.
func (_u *UserUpdate) SetNationalIDHash(v string) *UserUpdate {
	_u.mutation.SetNationalIDHash(v)
	return _u
}

// SetNillableNationalIDHash sets the "national_id_hash" field if the given value is not nil.
func (_u *UserUpdate) SetNillableNationalIDHash(v *string) *UserUpdate {
	if v != nil {
		_u.SetNationalIDHash(*v)
	}
	return _u
}

// ClearNationalIDHash clears the value of the "national_id_hash" field.
func (_u *UserUpdate) ClearNationalIDHash() *UserUpdate {
	_u.mutation.ClearNationalIDHash()
	return _u
}

// SetStatus sets the "status" field.
func (_u *UserUpdate) SetStatus(v user.Status) *UserUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UserUpdate) SetNillableStatus(v *user.Status) *UserUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPhoneVerified sets the "phone_verified" field.
func (_u *UserUpdate) SetPhoneVerified(v bool) *UserUpdate {
	_u.mutation.SetPhoneVerified(v)
	return _u
}

// SetNillablePhoneVerified sets the "phone_verified" field if the given value is not nil.
func (_u *UserUpdate) SetNillablePhoneVerified(v *bool) *UserUpdate {
	if v != nil {
		_u.SetPhoneVerified(*v)
	}
	return _u
}

// SetEmailVerified sets the "email_verified" field.
func (_u *UserUpdate) SetEmailVerified(v bool) *UserUpdate {
	_u.mutation.SetEmailVerified(v)
	return _u
}

// SetNillableEmailVerified sets the "email_verified" field if the given value is not nil.
func (_u *UserUpdate) SetNillableEmailVerified(v *bool) *UserUpdate {
	if v != nil {
		_u.SetEmailVerified(*v)
	}
	return _u
}

// SetLastLoginAt sets the "last_login_at" field.
func (_u *UserUpdate) SetLastLoginAt(v time.Time) *UserUpdate {
	_u.mutation.SetLastLoginAt(v)
	return _u
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_u *UserUpdate) SetNillableLastLoginAt(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetLastLoginAt(*v)
	}
	return _u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (_u *UserUpdate) ClearLastLoginAt() *UserUpdate {
	_u.mutation.ClearLastLoginAt()
	return _u
}

// SetFailedLoginAttempts sets the "failed_login_attempts" field.
func (_u *UserUpdate) SetFailedLoginAttempts(v int) *UserUpdate {
	_u.mutation.ResetFailedLoginAttempts()
	_u.mutation.SetFailedLoginAttempts(v)
	return _u
}

// SetNillableFailedLoginAttempts sets the "failed_login_attempts" field if the given value is not nil.
func (_u *UserUpdate) SetNillableFailedLoginAttempts(v *int) *UserUpdate {
	if v != nil {
		_u.SetFailedLoginAttempts(*v)
	}
	return _u
}

// AddFailedLoginAttempts adds value to the "failed_login_attempts" field.
func (_u *UserUpdate) AddFailedLoginAttempts(v int) *UserUpdate {
	_u.mutation.AddFailedLoginAttempts(v)
	return _u
}

// SetLockedUntil sets the "locked_until" field.
func (_u *UserUpdate) SetLockedUntil(v time.Time) *UserUpdate {
	_u.mutation.SetLockedUntil(v)
	return _u
}

// SetNillableLockedUntil sets the "locked_until" field if the given value is not nil.
func (_u *UserUpdate) SetNillableLockedUntil(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetLockedUntil(*v)
	}
	return _u
}

// ClearLockedUntil clears the value of the "locked_until" field.
func (_u *UserUpdate) ClearLockedUntil() *UserUpdate {
	_u.mutation.ClearLockedUntil()
	return _u
}

// SetLastFailedLoginAt sets the "last_failed_login_at" field.
func (_u *UserUpdate) SetLastFailedLoginAt(v time.Time) *UserUpdate {
	_u.mutation.SetLastFailedLoginAt(v)
	return _u
}

// SetNillableLastFailedLoginAt sets the "last_failed_login_at" field if the given value is not nil.
func (_u *UserUpdate) SetNillableLastFailedLoginAt(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetLastFailedLoginAt(*v)
	}
	return _u
}

// ClearLastFailedLoginAt clears the value of the "last_failed_login_at" field.
func (_u *UserUpdate) ClearLastFailedLoginAt() *UserUpdate {
	_u.mutation.ClearLastFailedLoginAt()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *UserUpdate) SetMetadata(v map[string]interface{}) *UserUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *UserUpdate) ClearMetadata() *UserUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetSuspendedAt sets the "suspended_at" field.
func (_u *UserUpdate) SetSuspendedAt(v time.Time) *UserUpdate {
	_u.mutation.SetSuspendedAt(v)
	return _u
}

// SetNillableSuspendedAt sets the "suspended_at" field if the given value is not nil.
func (_u *UserUpdate) SetNillableSuspendedAt(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetSuspendedAt(*v)
	}
	return _u
}

// ClearSuspendedAt clears the value of the "suspended_at" field.
func (_u *UserUpdate) ClearSuspendedAt() *UserUpdate {
	_u.mutation.ClearSuspendedAt()
	return _u
}

// AddRequestIDs adds the "requests" edge to the MedicalRequest entity by IDs.
func (_u *UserUpdate) AddRequestIDs(ids ...uuid.UUID) *UserUpdate {
	_u.mutation.AddRequestIDs(ids...)
	return _u
}

// AddRequests adds the "requests" edges to the MedicalRequest entity.
func (_u *UserUpdate) AddRequests(v ...*MedicalRequest) *UserUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRequestIDs(ids...)
}

// AddAssignedRequestIDs adds the "assigned_requests" edge to the MedicalRequest entity by IDs.
func (_u *UserUpdate) AddAssignedRequestIDs(ids ...uuid.UUID) *UserUpdate {
	_u.mutation.AddAssignedRequestIDs(ids...)
	return _u
}

// AddAssignedRequests adds the "assigned_requests" edges to the MedicalRequest entity.
func (_u *UserUpdate) AddAssignedRequests(v ...*MedicalRequest) *UserUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssignedRequestIDs(ids...)
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdate) Mutation() *UserMutation {
	return _u.mutation
}

// ClearRequests clears all "requests" edges to the MedicalRequest entity.
func (_u *UserUpdate) ClearRequests() *UserUpdate {
	_u.mutation.ClearRequests()
	return _u
}

// RemoveRequestIDs removes the "requests" edge to MedicalRequest entities by IDs.
func (_u *UserUpdate) RemoveRequestIDs(ids ...uuid.UUID) *UserUpdate {
	_u.mutation.RemoveRequestIDs(ids...)
	return _u
}

// RemoveRequests removes "requests" edges to MedicalRequest entities.
func (_u *UserUpdate) RemoveRequests(v ...*MedicalRequest) *UserUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRequestIDs(ids...)
}

// ClearAssignedRequests clears all "assigned_requests" edges to the MedicalRequest entity.
func (_u *UserUpdate) ClearAssignedRequests() *UserUpdate {
	_u.mutation.ClearAssignedRequests()
	return _u
}

// RemoveAssignedRequestIDs removes the "assigned_requests" edge to MedicalRequest entities by IDs.
func (_u *UserUpdate) RemoveAssignedRequestIDs(ids ...uuid.UUID) *UserUpdate {
	_u.mutation.RemoveAssignedRequestIDs(ids...)
	return _u
}

// RemoveAssignedRequests removes "assigned_requests" edges to MedicalRequest entities.
func (_u *UserUpdate) RemoveAssignedRequests(v ...*MedicalRequest) *UserUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssignedRequestIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdate) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := user.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "User.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := user.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "User.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := user.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "User.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := user.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "User.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := user.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`repo: validator failed for field "User.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProviderType(); ok {
		if err := user.ProviderTypeValidator(v); err != nil {
			return &ValidationError{Name: "provider_type", err: fmt.Errorf(`repo: validator failed for field "User.provider_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Specialty(); ok {
		if err := user.SpecialtyValidator(v); err != nil {
			return &ValidationError{Name: "specialty", err: fmt.Errorf(`repo: validator failed for field "User.specialty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NationalIDHash(); ok {
		if err := user.NationalIDHashValidator(v); err != nil {
			return &ValidationError{Name: "national_id_hash", err: fmt.Errorf(`repo: validator failed for field "User.national_id_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := user.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "User.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailedLoginAttempts(); ok {
		if err := user.FailedLoginAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "failed_login_attempts", err: fmt.Errorf(`repo: validator failed for field "User.failed_login_attempts": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(user.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(user.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(user.FieldFirstName, field.TypeString, value)
	}
	if _u.mutation.FirstNameCleared() {
		_spec.ClearField(user.FieldFirstName, field.TypeString)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(user.FieldLastName, field.TypeString, value)
	}
	if _u.mutation.LastNameCleared() {
		_spec.ClearField(user.FieldLastName, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(user.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(user.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(user.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(user.FieldPasswordHash, field.TypeString, value)
	}
	if _u.mutation.PasswordHashCleared() {
		_spec.ClearField(user.FieldPasswordHash, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(user.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProviderType(); ok {
		_spec.SetField(user.FieldProviderType, field.TypeEnum, value)
	}
	if _u.mutation.ProviderTypeCleared() {
		_spec.ClearField(user.FieldProviderType, field.TypeEnum)
	}
	if value, ok := _u.mutation.Specialty(); ok {
		_spec.SetField(user.FieldSpecialty, field.TypeString, value)
	}
	if _u.mutation.SpecialtyCleared() {
		_spec.ClearField(user.FieldSpecialty, field.TypeString)
	}
	if value, ok := _u.mutation.NationalIDEncrypted(); ok {
		_spec.SetField(user.FieldNationalIDEncrypted, field.TypeString, value)
	}
	if _u.mutation.NationalIDEncryptedCleared() {
		_spec.ClearField(user.FieldNationalIDEncrypted, field.TypeString)
	}
	if value, ok := _u.mutation.NationalIDHash(); ok {
		_spec.SetField(user.FieldNationalIDHash, field.TypeString, value)
	}
	if _u.mutation.NationalIDHashCleared() {
		_spec.ClearField(user.FieldNationalIDHash, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(user.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PhoneVerified(); ok {
		_spec.SetField(user.FieldPhoneVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EmailVerified(); ok {
		_spec.SetField(user.FieldEmailVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastLoginAt(); ok {
		_spec.SetField(user.FieldLastLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastLoginAtCleared() {
		_spec.ClearField(user.FieldLastLoginAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailedLoginAttempts(); ok {
		_spec.SetField(user.FieldFailedLoginAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedLoginAttempts(); ok {
		_spec.AddField(user.FieldFailedLoginAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LockedUntil(); ok {
		_spec.SetField(user.FieldLockedUntil, field.TypeTime, value)
	}
	if _u.mutation.LockedUntilCleared() {
		_spec.ClearField(user.FieldLockedUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.LastFailedLoginAt(); ok {
		_spec.SetField(user.FieldLastFailedLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastFailedLoginAtCleared() {
		_spec.ClearField(user.FieldLastFailedLoginAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(user.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(user.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.SuspendedAt(); ok {
		_spec.SetField(user.FieldSuspendedAt, field.TypeTime, value)
	}
	if _u.mutation.SuspendedAtCleared() {
		_spec.ClearField(user.FieldSuspendedAt, field.TypeTime)
	}
	if _u.mutation.RequestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.RequestsTable,
			Columns: []string{user.RequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(medicalrequest.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRequestsIDs(); len(nodes) > 0 && !_u.mutation.RequestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.RequestsTable,
			Columns: []string{user.RequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(medicalrequest.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RequestsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.RequestsTable,
			Columns: []string{user.RequestsColumn},
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
	if _u.mutation.AssignedRequestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AssignedRequestsTable,
			Columns: []string{user.AssignedRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(medicalrequest.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssignedRequestsIDs(); len(nodes) > 0 && !_u.mutation.AssignedRequestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AssignedRequestsTable,
			Columns: []string{user.AssignedRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(medicalrequest.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignedRequestsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AssignedRequestsTable,
			Columns: []string{user.AssignedRequestsColumn},
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
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserUpdateOne is the builder for updating a single User entity.
type UserUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdateOne) SetUpdatedAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *UserUpdateOne) SetDeletedAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableDeletedAt(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *UserUpdateOne) ClearDeletedAt() *UserUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *UserUpdateOne) SetFirstName(v string) *UserUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableFirstName(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// ClearFirstName clears the value of the "first_name" field.
func (_u *UserUpdateOne) ClearFirstName() *UserUpdateOne {
	_u.mutation.ClearFirstName()
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *UserUpdateOne) SetLastName(v string) *UserUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableLastName(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// ClearLastName clears the value of the "last_name" field.
func (_u *UserUpdateOne) ClearLastName() *UserUpdateOne {
	_u.mutation.ClearLastName()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *UserUpdateOne) SetPhone(v string) *UserUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillablePhone(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *UserUpdateOne) ClearPhone() *UserUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserUpdateOne) SetEmail(v string) *UserUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableEmail(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *UserUpdateOne) ClearEmail() *UserUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *UserUpdateOne) SetPasswordHash(v string) *UserUpdateOne {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillablePasswordHash(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (_u *UserUpdateOne) ClearPasswordHash() *UserUpdateOne {
	_u.mutation.ClearPasswordHash()
	return _u
}

// SetRole sets the "role" field.
func (_u *UserUpdateOne) SetRole(v user.Role) *UserUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableRole(v *user.Role) *UserUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetProviderType sets the "provider_type" field.
func (_u *UserUpdateOne) SetProviderType(v user.ProviderType) *UserUpdateOne {
	_u.mutation.SetProviderType(v)
	return _u
}

// SetNillableProviderType sets the "provider_type" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableProviderType(v *user.ProviderType) *UserUpdateOne {
	if v != nil {
		_u.SetProviderType(*v)
	}
	return _u
}

// ClearProviderType clears the value of the "provider_type" field.
func (_u *UserUpdateOne) ClearProviderType() *UserUpdateOne {
	_u.mutation.ClearProviderType()
	return _u
}

// SetSpecialty sets the "specialty" field.
func (_u *UserUpdateOne) SetSpecialty(v string) *UserUpdateOne {
	_u.mutation.SetSpecialty(v)
	return _u
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableSpecialty(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetSpecialty(*v)
	}
	return _u
}

// ClearSpecialty clears the value of the "specialty" field.
func (_u *UserUpdateOne) ClearSpecialty() *UserUpdateOne {
	_u.mutation.ClearSpecialty()
	return _u
}

// SetNationalIDEncrypted sets the "national_id_encrypted" field.
func (_u *UserUpdateOne) SetNationalIDEncrypted(v string) *UserUpdateOne {
	_u.mutation.SetNationalIDEncrypted(v)
	return _u
}

// SetNillableNationalIDEncrypted sets the "national_id_encrypted" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableNationalIDEncrypted(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetNationalIDEncrypted(*v)
	}
	return _u
}

// ClearNationalIDEncrypted clears the value of the "national_id_encrypted" field.
func (_u *UserUpdateOne) ClearNationalIDEncrypted() *UserUpdateOne {
	_u.mutation.ClearNationalIDEncrypted()
	return _u
}

// SetNationalIDHash sets the "national_id_hash" field.
func (_u *UserUpdateOne) SetNationalIDHash(v string) *UserUpdateOne {
	_u.mutation.SetNationalIDHash(v)
	return _u
}

// SetNillableNationalIDHash sets the "national_id_hash" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableNationalIDHash(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetNationalIDHash(*v)
	}
	return _u
}

// ClearNationalIDHash clears the value of the "national_id_hash" field.
func (_u *UserUpdateOne) ClearNationalIDHash() *UserUpdateOne {
	_u.mutation.ClearNationalIDHash()
	return _u
}

// SetStatus sets the "status" field.
func (_u *UserUpdateOne) SetStatus(v user.Status) *UserUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableStatus(v *user.Status) *UserUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPhoneVerified sets the "phone_verified" field.
func (_u *UserUpdateOne) SetPhoneVerified(v bool) *UserUpdateOne {
	_u.mutation.SetPhoneVerified(v)
	return _u
}

// SetNillablePhoneVerified sets the "phone_verified" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillablePhoneVerified(v *bool) *UserUpdateOne {
	if v != nil {
		_u.SetPhoneVerified(*v)
	}
	return _u
}

// SetEmailVerified sets the "email_verified" field.
func (_u *UserUpdateOne) SetEmailVerified(v bool) *UserUpdateOne {
	_u.mutation.SetEmailVerified(v)
	return _u
}

// SetNillableEmailVerified sets the "email_verified" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableEmailVerified(v *bool) *UserUpdateOne {
	if v != nil {
		_u.SetEmailVerified(*v)
	}
	return _u
}

// SetLastLoginAt sets the "last_login_at" field.
func (_u *UserUpdateOne) SetLastLoginAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetLastLoginAt(v)
	return _u
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableLastLoginAt(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetLastLoginAt(*v)
	}
	return _u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (_u *UserUpdateOne) ClearLastLoginAt() *UserUpdateOne {
	_u.mutation.ClearLastLoginAt()
	return _u
}

// SetFailedLoginAttempts sets the "failed_login_attempts" field.
func (_u *UserUpdateOne) SetFailedLoginAttempts(v int) *UserUpdateOne {
	_u.mutation.ResetFailedLoginAttempts()
	_u.mutation.SetFailedLoginAttempts(v)
	return _u
}

// SetNillableFailedLoginAttempts sets the "failed_login_attempts" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableFailedLoginAttempts(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetFailedLoginAttempts(*v)
	}
	return _u
}

// AddFailedLoginAttempts adds value to the "failed_login_attempts" field.
func (_u *UserUpdateOne) AddFailedLoginAttempts(v int) *UserUpdateOne {
	_u.mutation.AddFailedLoginAttempts(v)
	return _u
}

// SetLockedUntil sets the "locked_until" field.
func (_u *UserUpdateOne) SetLockedUntil(v time.Time) *UserUpdateOne {
	_u.mutation.SetLockedUntil(v)
	return _u
}

// SetNillableLockedUntil sets the "locked_until" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableLockedUntil(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetLockedUntil(*v)
	}
	return _u
}

// ClearLockedUntil clears the value of the "locked_until" field.
func (_u *UserUpdateOne) ClearLockedUntil() *UserUpdateOne {
	_u.mutation.ClearLockedUntil()
	return _u
}

// SetLastFailedLoginAt sets the "last_failed_login_at" field.
func (_u *UserUpdateOne) SetLastFailedLoginAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetLastFailedLoginAt(v)
	return _u
}

// SetNillableLastFailedLoginAt sets the "last_failed_login_at" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableLastFailedLoginAt(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetLastFailedLoginAt(*v)
	}
	return _u
}

// ClearLastFailedLoginAt clears the value of the "last_failed_login_at" field.
func (_u *UserUpdateOne) ClearLastFailedLoginAt() *UserUpdateOne {
	_u.mutation.ClearLastFailedLoginAt()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *UserUpdateOne) SetMetadata(v map[string]interface{}) *UserUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *UserUpdateOne) ClearMetadata() *UserUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetSuspendedAt sets the "suspended_at" field.
func (_u *UserUpdateOne) SetSuspendedAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetSuspendedAt(v)
	return _u
}

// SetNillableSuspendedAt sets the "suspended_at" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableSuspendedAt(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetSuspendedAt(*v)
	}
	return _u
}

// ClearSuspendedAt clears the value of the "suspended_at" field.
func (_u *UserUpdateOne) ClearSuspendedAt() *UserUpdateOne {
	_u.mutation.ClearSuspendedAt()
	return _u
}

// AddRequestIDs adds the "requests" edge to the MedicalRequest entity by IDs.
func (_u *UserUpdateOne) AddRequestIDs(ids ...uuid.UUID) *UserUpdateOne {
	_u.mutation.AddRequestIDs(ids...)
	return _u
}

// AddRequests adds the "requests" edges to the MedicalRequest entity.
func (_u *UserUpdateOne) AddRequests(v ...*MedicalRequest) *UserUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRequestIDs(ids...)
}

// AddAssignedRequestIDs adds the "assigned_requests" edge to the MedicalRequest entity by IDs.
func (_u *UserUpdateOne) AddAssignedRequestIDs(ids ...uuid.UUID) *UserUpdateOne {
	_u.mutation.AddAssignedRequestIDs(ids...)
	return _u
}

// AddAssignedRequests adds the "assigned_requests" edges to the MedicalRequest entity.
func (_u *UserUpdateOne) AddAssignedRequests(v ...*MedicalRequest) *UserUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssignedRequestIDs(ids...)
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdateOne) Mutation() *UserMutation {
	return _u.mutation
}

// ClearRequests clears all "requests" edges to the MedicalRequest entity.
func (_u *UserUpdateOne) ClearRequests() *UserUpdateOne {
	_u.mutation.ClearRequests()
	return _u
}

// RemoveRequestIDs removes the "requests" edge to MedicalRequest entities by IDs.
func (_u *UserUpdateOne) RemoveRequestIDs(ids ...uuid.UUID) *UserUpdateOne {
	_u.mutation.RemoveRequestIDs(ids...)
	return _u
}

// RemoveRequests removes "requests" edges to MedicalRequest entities.
func (_u *UserUpdateOne) RemoveRequests(v ...*MedicalRequest) *UserUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRequestIDs(ids...)
}

// ClearAssignedRequests clears all "assigned_requests" edges to the MedicalRequest entity.
func (_u *UserUpdateOne) ClearAssignedRequests() *UserUpdateOne {
	_u.mutation.ClearAssignedRequests()
	return _u
}

// RemoveAssignedRequestIDs removes the "assigned_requests" edge to MedicalRequest entities by IDs.
func (_u *UserUpdateOne) RemoveAssignedRequestIDs(ids ...uuid.UUID) *UserUpdateOne {
	_u.mutation.RemoveAssignedRequestIDs(ids...)
	return _u
}

// RemoveAssignedRequests removes "assigned_requests" edges to MedicalRequest entities.
func (_u *UserUpdateOne) RemoveAssignedRequests(v ...*MedicalRequest) *UserUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssignedRequestIDs(ids...)
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdateOne) Where(ps ...predicate.User) *UserUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserUpdateOne) Select(field string, fields ...string) *UserUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated User entity.
func (_u *UserUpdateOne) Save(ctx context.Context) (*User, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdateOne) SaveX(ctx context.Context) *User {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdateOne) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := user.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "User.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := user.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "User.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := user.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "User.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := user.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "User.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := user.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`repo: validator failed for field "User.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProviderType(); ok {
		if err := user.ProviderTypeValidator(v); err != nil {
			return &ValidationError{Name: "provider_type", err: fmt.Errorf(`repo: validator failed for field "User.provider_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Specialty(); ok {
		if err := user.SpecialtyValidator(v); err != nil {
			return &ValidationError{Name: "specialty", err: fmt.Errorf(`repo: validator failed for field "User.specialty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NationalIDHash(); ok {
		if err := user.NationalIDHashValidator(v); err != nil {
			return &ValidationError{Name: "national_id_hash", err: fmt.Errorf(`repo: validator failed for field "User.national_id_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := user.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "User.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailedLoginAttempts(); ok {
		if err := user.FailedLoginAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "failed_login_attempts", err: fmt.Errorf(`repo: validator failed for field "User.failed_login_attempts": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdateOne) sqlSave(ctx context.Context) (_node *User, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "User.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, user.FieldID)
		for _, f := range fields {
			if !user.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != user.FieldID {
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
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(user.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(user.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(user.FieldFirstName, field.TypeString, value)
	}
	if _u.mutation.FirstNameCleared() {
		_spec.ClearField(user.FieldFirstName, field.TypeString)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(user.FieldLastName, field.TypeString, value)
	}
	if _u.mutation.LastNameCleared() {
		_spec.ClearField(user.FieldLastName, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(user.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(user.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(user.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(user.FieldPasswordHash, field.TypeString, value)
	}
	if _u.mutation.PasswordHashCleared() {
		_spec.ClearField(user.FieldPasswordHash, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(user.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProviderType(); ok {
		_spec.SetField(user.FieldProviderType, field.TypeEnum, value)
	}
	if _u.mutation.ProviderTypeCleared() {
		_spec.ClearField(user.FieldProviderType, field.TypeEnum)
	}
	if value, ok := _u.mutation.Specialty(); ok {
		_spec.SetField(user.FieldSpecialty, field.TypeString, value)
	}
	if _u.mutation.SpecialtyCleared() {
		_spec.ClearField(user.FieldSpecialty, field.TypeString)
	}
	if value, ok := _u.mutation.NationalIDEncrypted(); ok {
		_spec.SetField(user.FieldNationalIDEncrypted, field.TypeString, value)
	}
	if _u.mutation.NationalIDEncryptedCleared() {
		_spec.ClearField(user.FieldNationalIDEncrypted, field.TypeString)
	}
	if value, ok := _u.mutation.NationalIDHash(); ok {
		_spec.SetField(user.FieldNationalIDHash, field.TypeString, value)
	}
	if _u.mutation.NationalIDHashCleared() {
		_spec.ClearField(user.FieldNationalIDHash, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(user.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PhoneVerified(); ok {
		_spec.SetField(user.FieldPhoneVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EmailVerified(); ok {
		_spec.SetField(user.FieldEmailVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastLoginAt(); ok {
		_spec.SetField(user.FieldLastLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastLoginAtCleared() {
		_spec.ClearField(user.FieldLastLoginAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailedLoginAttempts(); ok {
		_spec.SetField(user.FieldFailedLoginAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedLoginAttempts(); ok {
		_spec.AddField(user.FieldFailedLoginAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LockedUntil(); ok {
		_spec.SetField(user.FieldLockedUntil, field.TypeTime, value)
	}
	if _u.mutation.LockedUntilCleared() {
		_spec.ClearField(user.FieldLockedUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.LastFailedLoginAt(); ok {
		_spec.SetField(user.FieldLastFailedLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastFailedLoginAtCleared() {
		_spec.ClearField(user.FieldLastFailedLoginAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(user.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(user.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.SuspendedAt(); ok {
		_spec.SetField(user.FieldSuspendedAt, field.TypeTime, value)
	}
	if _u.mutation.SuspendedAtCleared() {
		_spec.ClearField(user.FieldSuspendedAt, field.TypeTime)
	}
	if _u.mutation.RequestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.RequestsTable,
			Columns: []string{user.RequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(medicalrequest.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRequestsIDs(); len(nodes) > 0 && !_u.mutation.RequestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.RequestsTable,
			Columns: []string{user.RequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(medicalrequest.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RequestsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.RequestsTable,
			Columns: []string{user.RequestsColumn},
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
	if _u.mutation.AssignedRequestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AssignedRequestsTable,
			Columns: []string{user.AssignedRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(medicalrequest.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssignedRequestsIDs(); len(nodes) > 0 && !_u.mutation.AssignedRequestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AssignedRequestsTable,
			Columns: []string{user.AssignedRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(medicalrequest.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignedRequestsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AssignedRequestsTable,
			Columns: []string{user.AssignedRequestsColumn},
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
	_node = &User{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
