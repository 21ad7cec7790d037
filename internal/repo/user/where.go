// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.User {
	return predicate.User(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.User {
	return predicate.User(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.User {
	return predicate.User(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.User {
	return predicate.User(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.User {
	return predicate.User(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldDeletedAt, v))
}

// FirstName applies equality check predicate on the "first_name" field. It's identical to FirstNameEQ.
func FirstName(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldFirstName, v))
}

// LastName applies equality check predicate on the "last_name" field. It's identical to LastNameEQ.
func LastName(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLastName, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPhone, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmail, v))
}

// PasswordHash applies equality check predicate on the "password_hash" field. It's identical to PasswordHashEQ.
func PasswordHash(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPasswordHash, v))
}

// Specialty applies equality check predicate on the "specialty" field. It's identical to SpecialtyEQ.
func Specialty(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldSpecialty, v))
}

// NationalIDEncrypted applies equality check predicate on the "national_id_encrypted" field. It's identical to NationalIDEncryptedEQ.
func NationalIDEncrypted(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldNationalIDEncrypted, v))
}

// NationalIDHash applies equality check predicate on the "national_id_hash" field. It's identical to NationalIDHashEQ.
func NationalIDHash(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldNationalIDHash, v))
}

// PhoneVerified applies equality check predicate on the "phone_verified" field. It's identical to PhoneVerifiedEQ.
func PhoneVerified(v bool) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPhoneVerified, v))
}

// EmailVerified applies equality check predicate on the "email_verified" field. It's identical to EmailVerifiedEQ.
func EmailVerified(v bool) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmailVerified, v))
}

// LastLoginAt applies equality check predicate on the "last_login_at" field. It's identical to LastLoginAtEQ.
func LastLoginAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLastLoginAt, v))
}

// FailedLoginAttempts applies equality check predicate on the "failed_login_attempts" field. It's identical to FailedLoginAttemptsEQ.
func FailedLoginAttempts(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldFailedLoginAttempts, v))
}

// LockedUntil applies equality check predicate on the "locked_until" field. It's identical to LockedUntilEQ.
func LockedUntil(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLockedUntil, v))
}

// LastFailedLoginAt applies equality check predicate on the "last_failed_login_at" field. It's identical to LastFailedLoginAtEQ.
func LastFailedLoginAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLastFailedLoginAt, v))
}

// SuspendedAt applies equality check predicate on the "suspended_at" field. It's identical to SuspendedAtEQ.
func SuspendedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldSuspendedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldDeletedAt))
}

// FirstNameEQ applies the EQ predicate on the "first_name" field.
func FirstNameEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldFirstName, v))
}

// FirstNameNEQ applies the NEQ predicate on the "first_name" field.
func FirstNameNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldFirstName, v))
}

// FirstNameIn applies the In predicate on the "first_name" field.
func FirstNameIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldFirstName, vs...))
}

// FirstNameNotIn applies the NotIn predicate on the "first_name" field.
func FirstNameNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldFirstName, vs...))
}

// FirstNameGT applies the GT predicate on the "first_name" field.
func FirstNameGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldFirstName, v))
}

// FirstNameGTE applies the GTE predicate on the "first_name" field.
func FirstNameGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldFirstName, v))
}

// FirstNameLT applies the LT predicate on the "first_name" field.
func FirstNameLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldFirstName, v))
}

// FirstNameLTE applies the LTE predicate on the "first_name" field.
func FirstNameLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldFirstName, v))
}

// FirstNameContains applies the Contains predicate on the "first_name" field.
func FirstNameContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldFirstName, v))
}

// FirstNameHasPrefix applies the HasPrefix predicate on the "first_name" field.
func FirstNameHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldFirstName, v))
}

// FirstNameHasSuffix applies the HasSuffix predicate on the "first_name" field.
func FirstNameHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldFirstName, v))
}

// FirstNameIsNil applies the IsNil predicate on the "first_name" field.
func FirstNameIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldFirstName))
}

// FirstNameNotNil applies the NotNil predicate on the "first_name" field.
func FirstNameNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldFirstName))
}

// FirstNameEqualFold applies the EqualFold predicate on the "first_name" field.
func FirstNameEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldFirstName, v))
}

// FirstNameContainsFold applies the ContainsFold predicate on the "first_name" field.
func FirstNameContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldFirstName, v))
}

// LastNameEQ applies the EQ predicate on the "last_name" field.
func LastNameEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLastName, v))
}

// LastNameNEQ applies the NEQ predicate on the "last_name" field.
func LastNameNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldLastName, v))
}

// LastNameIn applies the In predicate on the "last_name" field.
func LastNameIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldLastName, vs...))
}

// LastNameNotIn applies the NotIn predicate on the "last_name" field.
func LastNameNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldLastName, vs...))
}

// LastNameGT applies the GT predicate on the "last_name" field.
func LastNameGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldLastName, v))
}

// LastNameGTE applies the GTE predicate on the "last_name" field.
func LastNameGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldLastName, v))
}

// LastNameLT applies the LT predicate on the "last_name" field.
func LastNameLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldLastName, v))
}

// LastNameLTE applies the LTE predicate on the "last_name" field.
func LastNameLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldLastName, v))
}

// LastNameContains applies the Contains predicate on the "last_name" field.
func LastNameContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldLastName, v))
}

// LastNameHasPrefix applies the HasPrefix predicate on the "last_name" field.
func LastNameHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldLastName, v))
}

// LastNameHasSuffix applies the HasSuffix predicate on the "last_name" field.
func LastNameHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldLastName, v))
}

// LastNameIsNil applies the IsNil predicate on the "last_name" field.
func LastNameIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldLastName))
}

// LastNameNotNil applies the NotNil predicate on the "last_name" field.
func LastNameNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldLastName))
}

// LastNameEqualFold applies the EqualFold predicate on the "last_name" field.
func LastNameEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldLastName, v))
}

// LastNameContainsFold applies the ContainsFold predicate on the "last_name" field.
func LastNameContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldLastName, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldPhone, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldEmail, v))
}

// PasswordHashEQ applies the EQ predicate on the "password_hash" field.
func PasswordHashEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPasswordHash, v))
}

// PasswordHashNEQ applies the NEQ predicate on the "password_hash" field.
func PasswordHashNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldPasswordHash, v))
}

// PasswordHashIn applies the In predicate on the "password_hash" field.
func PasswordHashIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldPasswordHash, vs...))
}

// PasswordHashNotIn applies the NotIn predicate on the "password_hash" field.
func PasswordHashNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldPasswordHash, vs...))
}

// PasswordHashGT applies the GT predicate on the "password_hash" field.
func PasswordHashGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldPasswordHash, v))
}

// PasswordHashGTE applies the GTE predicate on the "password_hash" field.
func PasswordHashGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldPasswordHash, v))
}

// PasswordHashLT applies the LT predicate on the "password_hash" field.
func PasswordHashLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldPasswordHash, v))
}

// PasswordHashLTE applies the LTE predicate on the "password_hash" field.
func PasswordHashLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldPasswordHash, v))
}

// PasswordHashContains applies the Contains predicate on the "password_hash" field.
func PasswordHashContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldPasswordHash, v))
}

// PasswordHashHasPrefix applies the HasPrefix predicate on the "password_hash" field.
func PasswordHashHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldPasswordHash, v))
}

// PasswordHashHasSuffix applies the HasSuffix predicate on the "password_hash" field.
func PasswordHashHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldPasswordHash, v))
}

// PasswordHashIsNil applies the IsNil predicate on the "password_hash" field.
func PasswordHashIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldPasswordHash))
}

// PasswordHashNotNil applies the NotNil predicate on the "password_hash" field.
func PasswordHashNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldPasswordHash))
}

// PasswordHashEqualFold applies the EqualFold predicate on the "password_hash" field.
func PasswordHashEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldPasswordHash, v))
}

// PasswordHashContainsFold applies the ContainsFold predicate on the "password_hash" field.
func PasswordHashContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldPasswordHash, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v Role) predicate.User {
	return predicate.User(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v Role) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...Role) predicate.User {
	return predicate.User(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...Role) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldRole, vs...))
}

// ProviderTypeEQ applies the EQ predicate on the "provider_type" field.
func ProviderTypeEQ(v ProviderType) predicate.User {
	return predicate.User(sql.FieldEQ(FieldProviderType, v))
}

// ProviderTypeNEQ applies the NEQ predicate on the "provider_type" field.
func ProviderTypeNEQ(v ProviderType) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldProviderType, v))
}

// ProviderTypeIn applies the In predicate on the "provider_type" field.
func ProviderTypeIn(vs ...ProviderType) predicate.User {
	return predicate.User(sql.FieldIn(FieldProviderType, vs...))
}

// ProviderTypeNotIn applies the NotIn predicate on the "provider_type" field.
func ProviderTypeNotIn(vs ...ProviderType) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldProviderType, vs...))
}

// ProviderTypeIsNil applies the IsNil predicate on the "provider_type" field.
func ProviderTypeIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldProviderType))
}

// ProviderTypeNotNil applies the NotNil predicate on the "provider_type" field.
func ProviderTypeNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldProviderType))
}

// SpecialtyEQ applies the EQ predicate on the "specialty" field.
func SpecialtyEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldSpecialty, v))
}

// SpecialtyNEQ applies the NEQ predicate on the "specialty" field.
func SpecialtyNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldSpecialty, v))
}

// SpecialtyIn applies the In predicate on the "specialty" field.
func SpecialtyIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldSpecialty, vs...))
}

// SpecialtyNotIn applies the NotIn predicate on the "specialty" field.
func SpecialtyNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldSpecialty, vs...))
}

// SpecialtyGT applies the GT predicate on the "specialty" field.
func SpecialtyGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldSpecialty, v))
}

// SpecialtyGTE applies the GTE predicate on the "specialty" field.
func SpecialtyGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldSpecialty, v))
}

// SpecialtyLT applies the LT predicate on the "specialty" field.
func SpecialtyLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldSpecialty, v))
}

// SpecialtyLTE applies the LTE predicate on the "specialty" field.
func SpecialtyLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldSpecialty, v))
}

// SpecialtyContains applies the Contains predicate on the "specialty" field.
func SpecialtyContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldSpecialty, v))
}

// SpecialtyHasPrefix applies the HasPrefix predicate on the "specialty" field.
func SpecialtyHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldSpecialty, v))
}

// SpecialtyHasSuffix applies the HasSuffix predicate on the "specialty" field.
func SpecialtyHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldSpecialty, v))
}

// SpecialtyIsNil applies the IsNil predicate on the "specialty" field.
func SpecialtyIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldSpecialty))
}

// SpecialtyNotNil applies the NotNil predicate on the "specialty" field.
func SpecialtyNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldSpecialty))
}

// SpecialtyEqualFold applies the EqualFold predicate on the "specialty" field.
func SpecialtyEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldSpecialty, v))
}

// SpecialtyContainsFold applies the ContainsFold predicate on the "specialty" field.
func SpecialtyContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldSpecialty, v))
}

// NationalIDEncryptedEQ applies the EQ predicate on the "national_id_encrypted" field.
func NationalIDEncryptedEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldNationalIDEncrypted, v))
}

// NationalIDEncryptedNEQ applies the NEQ predicate on the "national_id_encrypted" field.
func NationalIDEncryptedNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldNationalIDEncrypted, v))
}

// NationalIDEncryptedIn applies the In predicate on the "national_id_encrypted" field.
func NationalIDEncryptedIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldNationalIDEncrypted, vs...))
}

// NationalIDEncryptedNotIn applies the NotIn predicate on the "national_id_encrypted" field.
func NationalIDEncryptedNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldNationalIDEncrypted, vs...))
}

// NationalIDEncryptedGT applies the GT predicate on the "national_id_encrypted" field.
func NationalIDEncryptedGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldNationalIDEncrypted, v))
}

// NationalIDEncryptedGTE applies the GTE predicate on the "national_id_encrypted" field.
func NationalIDEncryptedGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldNationalIDEncrypted, v))
}

// NationalIDEncryptedLT applies the LT predicate on the "national_id_encrypted" field.
func NationalIDEncryptedLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldNationalIDEncrypted, v))
}

// NationalIDEncryptedLTE applies the LTE predicate on the "national_id_encrypted" field.
func NationalIDEncryptedLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldNationalIDEncrypted, v))
}

// NationalIDEncryptedContains applies the Contains predicate on the "national_id_encrypted" field.
func NationalIDEncryptedContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldNationalIDEncrypted, v))
}

// NationalIDEncryptedHasPrefix applies the HasPrefix predicate on the "national_id_encrypted" field.
func NationalIDEncryptedHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldNationalIDEncrypted, v))
}

// NationalIDEncryptedHasSuffix applies the HasSuffix predicate on the "national_id_encrypted" field.
func NationalIDEncryptedHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldNationalIDEncrypted, v))
}

// NationalIDEncryptedIsNil applies the IsNil predicate on the "national_id_encrypted" field.
func NationalIDEncryptedIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldNationalIDEncrypted))
}

// NationalIDEncryptedNotNil applies the NotNil predicate on the "national_id_encrypted" field.
func NationalIDEncryptedNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldNationalIDEncrypted))
}

// NationalIDEncryptedEqualFold applies the EqualFold predicate on the "national_id_encrypted" field.
func NationalIDEncryptedEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldNationalIDEncrypted, v))
}

// NationalIDEncryptedContainsFold applies the ContainsFold predicate on the "national_id_encrypted" field.
func NationalIDEncryptedContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldNationalIDEncrypted, v))
}

// NationalIDHashEQ applies the EQ predicate on the "national_id_hash" field.
func NationalIDHashEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldNationalIDHash, v))
}

// NationalIDHashNEQ applies the NEQ predicate on the "national_id_hash" field.
func NationalIDHashNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldNationalIDHash, v))
}

// NationalIDHashIn applies the In predicate on the "national_id_hash" field.
func NationalIDHashIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldNationalIDHash, vs...))
}

// NationalIDHashNotIn applies the NotIn predicate on the "national_id_hash" field.
func NationalIDHashNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldNationalIDHash, vs...))
}

// NationalIDHashGT applies the GT predicate on the "national_id_hash" field.
func NationalIDHashGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldNationalIDHash, v))
}

// NationalIDHashGTE applies the GTE predicate on the "national_id_hash" field.
func NationalIDHashGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldNationalIDHash, v))
}

// NationalIDHashLT applies the LT predicate on the "national_id_hash" field.
func NationalIDHashLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldNationalIDHash, v))
}

// NationalIDHashLTE applies the LTE predicate on the "national_id_hash" field.
func NationalIDHashLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldNationalIDHash, v))
}

// NationalIDHashContains applies the Contains predicate on the "national_id_hash" field.
func NationalIDHashContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldNationalIDHash, v))
}

// NationalIDHashHasPrefix applies the HasPrefix predicate on the "national_id_hash" field.
func NationalIDHashHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldNationalIDHash, v))
}

// NationalIDHashHasSuffix applies the HasSuffix predicate on the "national_id_hash" field.
func NationalIDHashHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldNationalIDHash, v))
}

// NationalIDHashIsNil applies the IsNil predicate on the "national_id_hash" field.
func NationalIDHashIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldNationalIDHash))
}

// NationalIDHashNotNil applies the NotNil predicate on the "national_id_hash" field.
func NationalIDHashNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldNationalIDHash))
}

// NationalIDHashEqualFold applies the EqualFold predicate on the "national_id_hash" field.
func NationalIDHashEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldNationalIDHash, v))
}

// NationalIDHashContainsFold applies the ContainsFold predicate on the "national_id_hash" field.
func NationalIDHashContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldNationalIDHash, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.User {
	return predicate.User(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.User {
	return predicate.User(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldStatus, vs...))
}

// PhoneVerifiedEQ applies the EQ predicate on the "phone_verified" field.
func PhoneVerifiedEQ(v bool) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPhoneVerified, v))
}

// PhoneVerifiedNEQ applies the NEQ predicate on the "phone_verified" field.
func PhoneVerifiedNEQ(v bool) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldPhoneVerified, v))
}

// EmailVerifiedEQ applies the EQ predicate on the "email_verified" field.
func EmailVerifiedEQ(v bool) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmailVerified, v))
}

// EmailVerifiedNEQ applies the NEQ predicate on the "email_verified" field.
func EmailVerifiedNEQ(v bool) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldEmailVerified, v))
}

// LastLoginAtEQ applies the EQ predicate on the "last_login_at" field.
func LastLoginAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLastLoginAt, v))
}

// LastLoginAtNEQ applies the NEQ predicate on the "last_login_at" field.
func LastLoginAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldLastLoginAt, v))
}

// LastLoginAtIn applies the In predicate on the "last_login_at" field.
func LastLoginAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldLastLoginAt, vs...))
}

// LastLoginAtNotIn applies the NotIn predicate on the "last_login_at" field.
func LastLoginAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldLastLoginAt, vs...))
}

// LastLoginAtGT applies the GT predicate on the "last_login_at" field.
func LastLoginAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldLastLoginAt, v))
}

// LastLoginAtGTE applies the GTE predicate on the "last_login_at" field.
func LastLoginAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldLastLoginAt, v))
}

// LastLoginAtLT applies the LT predicate on the "last_login_at" field.
func LastLoginAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldLastLoginAt, v))
}

// LastLoginAtLTE applies the LTE predicate on the "last_login_at" field.
func LastLoginAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldLastLoginAt, v))
}

// LastLoginAtIsNil applies the IsNil predicate on the "last_login_at" field.
func LastLoginAtIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldLastLoginAt))
}

// LastLoginAtNotNil applies the NotNil predicate on the "last_login_at" field.
func LastLoginAtNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldLastLoginAt))
}

// FailedLoginAttemptsEQ applies the EQ predicate on the "failed_login_attempts" field.
func FailedLoginAttemptsEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldFailedLoginAttempts, v))
}

// FailedLoginAttemptsNEQ applies the NEQ predicate on the "failed_login_attempts" field.
func FailedLoginAttemptsNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldFailedLoginAttempts, v))
}

// FailedLoginAttemptsIn applies the In predicate on the "failed_login_attempts" field.
func FailedLoginAttemptsIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldFailedLoginAttempts, vs...))
}

// FailedLoginAttemptsNotIn applies the NotIn predicate on the "failed_login_attempts" field.
func FailedLoginAttemptsNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldFailedLoginAttempts, vs...))
}

// FailedLoginAttemptsGT applies the GT predicate on the "failed_login_attempts" field.
func FailedLoginAttemptsGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldFailedLoginAttempts, v))
}

// FailedLoginAttemptsGTE applies the GTE predicate on the "failed_login_attempts" field.
func FailedLoginAttemptsGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldFailedLoginAttempts, v))
}

// FailedLoginAttemptsLT applies the LT predicate on the "failed_login_attempts" field.
func FailedLoginAttemptsLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldFailedLoginAttempts, v))
}

// FailedLoginAttemptsLTE applies the LTE predicate on the "failed_login_attempts" field.
func FailedLoginAttemptsLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldFailedLoginAttempts, v))
}

// LockedUntilEQ applies the EQ predicate on the "locked_until" field.
func LockedUntilEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLockedUntil, v))
}

// LockedUntilNEQ applies the NEQ predicate on the "locked_until" field.
func LockedUntilNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldLockedUntil, v))
}

// LockedUntilIn applies the In predicate on the "locked_until" field.
func LockedUntilIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldLockedUntil, vs...))
}

// LockedUntilNotIn applies the NotIn predicate on the "locked_until" field.
func LockedUntilNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldLockedUntil, vs...))
}

// LockedUntilGT applies the GT predicate on the "locked_until" field.
func LockedUntilGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldLockedUntil, v))
}

// LockedUntilGTE applies the GTE predicate on the "locked_until" field.
func LockedUntilGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldLockedUntil, v))
}

// LockedUntilLT applies the LT predicate on the "locked_until" field.
func LockedUntilLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldLockedUntil, v))
}

// LockedUntilLTE applies the LTE predicate on the "locked_until" field.
func LockedUntilLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldLockedUntil, v))
}

// LockedUntilIsNil applies the IsNil predicate on the "locked_until" field.
func LockedUntilIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldLockedUntil))
}

// LockedUntilNotNil applies the NotNil predicate on the "locked_until" field.
func LockedUntilNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldLockedUntil))
}

// LastFailedLoginAtEQ applies the EQ predicate on the "last_failed_login_at" field.
func LastFailedLoginAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLastFailedLoginAt, v))
}

// LastFailedLoginAtNEQ applies the NEQ predicate on the "last_failed_login_at" field.
func LastFailedLoginAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldLastFailedLoginAt, v))
}

// LastFailedLoginAtIn applies the In predicate on the "last_failed_login_at" field.
func LastFailedLoginAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldLastFailedLoginAt, vs...))
}

// LastFailedLoginAtNotIn applies the NotIn predicate on the "last_failed_login_at" field.
func LastFailedLoginAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldLastFailedLoginAt, vs...))
}

// LastFailedLoginAtGT applies the GT predicate on the "last_failed_login_at" field.
func LastFailedLoginAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldLastFailedLoginAt, v))
}

// LastFailedLoginAtGTE applies the GTE predicate on the "last_failed_login_at" field.
func LastFailedLoginAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldLastFailedLoginAt, v))
}

// LastFailedLoginAtLT applies the LT predicate on the "last_failed_login_at" field.
func LastFailedLoginAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldLastFailedLoginAt, v))
}

// LastFailedLoginAtLTE applies the LTE predicate on the "last_failed_login_at" field.
func LastFailedLoginAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldLastFailedLoginAt, v))
}

// LastFailedLoginAtIsNil applies the IsNil predicate on the "last_failed_login_at" field.
func LastFailedLoginAtIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldLastFailedLoginAt))
}

// LastFailedLoginAtNotNil applies the NotNil predicate on the "last_failed_login_at" field.
func LastFailedLoginAtNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldLastFailedLoginAt))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldMetadata))
}

// SuspendedAtEQ applies the EQ predicate on the "suspended_at" field.
func SuspendedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldSuspendedAt, v))
}

// SuspendedAtNEQ applies the NEQ predicate on the "suspended_at" field.
func SuspendedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldSuspendedAt, v))
}

// SuspendedAtIn applies the In predicate on the "suspended_at" field.
func SuspendedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldSuspendedAt, vs...))
}

// SuspendedAtNotIn applies the NotIn predicate on the "suspended_at" field.
func SuspendedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldSuspendedAt, vs...))
}

// SuspendedAtGT applies the GT predicate on the "suspended_at" field.
func SuspendedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldSuspendedAt, v))
}

// SuspendedAtGTE applies the GTE predicate on the "suspended_at" field.
func SuspendedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldSuspendedAt, v))
}

// SuspendedAtLT applies the LT predicate on the "suspended_at" field.
func SuspendedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldSuspendedAt, v))
}

// SuspendedAtLTE applies the LTE predicate on the "suspended_at" field.
func SuspendedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldSuspendedAt, v))
}

// SuspendedAtIsNil applies the IsNil predicate on the "suspended_at" field.
func SuspendedAtIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldSuspendedAt))
}

// SuspendedAtNotNil applies the NotNil predicate on the "suspended_at" field.
func SuspendedAtNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldSuspendedAt))
}

// HasRequests applies the HasEdge predicate on the "requests" edge.
func HasRequests() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RequestsTable, RequestsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRequestsWith applies the HasEdge predicate on the "requests" edge with a given conditions (other predicates).
func HasRequestsWith(preds ...predicate.MedicalRequest) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newRequestsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAssignedRequests applies the HasEdge predicate on the "assigned_requests" edge.
func HasAssignedRequests() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AssignedRequestsTable, AssignedRequestsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAssignedRequestsWith applies the HasEdge predicate on the "assigned_requests" edge with a given conditions (other predicates).
func HasAssignedRequestsWith(preds ...predicate.MedicalRequest) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newAssignedRequestsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.User) predicate.User {
	return predicate.User(sql.NotPredicates(p))
}
