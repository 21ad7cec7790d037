// Code generated by ent, DO NOT EDIT.

package notificationpref

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldEQ(FieldUserID, v))
}

// RequestSms applies equality check predicate on the "request_sms" field. It's identical to RequestSmsEQ.
func RequestSms(v bool) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldEQ(FieldRequestSms, v))
}

// RequestEmail applies equality check predicate on the "request_email" field. It's identical to RequestEmailEQ.
func RequestEmail(v bool) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldEQ(FieldRequestEmail, v))
}

// RequestPush applies equality check predicate on the "request_push" field. It's identical to RequestPushEQ.
func RequestPush(v bool) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldEQ(FieldRequestPush, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldLTE(FieldUserID, v))
}

// RequestSmsEQ applies the EQ predicate on the "request_sms" field.
func RequestSmsEQ(v bool) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldEQ(FieldRequestSms, v))
}

// RequestSmsNEQ applies the NEQ predicate on the "request_sms" field.
func RequestSmsNEQ(v bool) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldNEQ(FieldRequestSms, v))
}

// RequestEmailEQ applies the EQ predicate on the "request_email" field.
func RequestEmailEQ(v bool) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldEQ(FieldRequestEmail, v))
}

// RequestEmailNEQ applies the NEQ predicate on the "request_email" field.
func RequestEmailNEQ(v bool) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldNEQ(FieldRequestEmail, v))
}

// RequestPushEQ applies the EQ predicate on the "request_push" field.
func RequestPushEQ(v bool) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldEQ(FieldRequestPush, v))
}

// RequestPushNEQ applies the NEQ predicate on the "request_push" field.
func RequestPushNEQ(v bool) predicate.NotificationPref {
	return predicate.NotificationPref(sql.FieldNEQ(FieldRequestPush, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.NotificationPref) predicate.NotificationPref {
	return predicate.NotificationPref(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.NotificationPref) predicate.NotificationPref {
	return predicate.NotificationPref(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.NotificationPref) predicate.NotificationPref {
	return predicate.NotificationPref(sql.NotPredicates(p))
}
