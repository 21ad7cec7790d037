// Code generated by ent, DO NOT EDIT.

package medicalrequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEQ(FieldPatientID, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v uuid.UUID) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEQ(FieldDoctorID, v))
}

// ProviderID applies equality check predicate on the "provider_id" field. It's identical to ProviderIDEQ.
func ProviderID(v uuid.UUID) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEQ(FieldProviderID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEQ(FieldDescription, v))
}

// Feedback applies equality check predicate on the "feedback" field. It's identical to FeedbackEQ.
func Feedback(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEQ(FieldFeedback, v))
}

// PrescriptionGroupID applies equality check predicate on the "prescription_group_id" field. It's identical to PrescriptionGroupIDEQ.
func PrescriptionGroupID(v uuid.UUID) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEQ(FieldPrescriptionGroupID, v))
}

// ResultFileKey applies equality check predicate on the "result_file_key" field. It's identical to ResultFileKeyEQ.
func ResultFileKey(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEQ(FieldResultFileKey, v))
}

// ResultFileName applies equality check predicate on the "result_file_name" field. It's identical to ResultFileNameEQ.
func ResultFileName(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEQ(FieldResultFileName, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEQ(FieldVersion, v))
}

// FulfilledAt applies equality check predicate on the "fulfilled_at" field. It's identical to FulfilledAtEQ.
func FulfilledAt(v time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEQ(FieldFulfilledAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEQ(FieldCompletedAt, v))
}

// CancelledAt applies equality check predicate on the "cancelled_at" field. It's identical to CancelledAtEQ.
func CancelledAt(v time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEQ(FieldCancelledAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldLTE(FieldUpdatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNotIn(FieldPatientID, vs...))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v uuid.UUID) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v uuid.UUID) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...uuid.UUID) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...uuid.UUID) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNotIn(FieldDoctorID, vs...))
}

// DoctorIDGT applies the GT predicate on the "doctor_id" field.
func DoctorIDGT(v uuid.UUID) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldGT(FieldDoctorID, v))
}

// DoctorIDGTE applies the GTE predicate on the "doctor_id" field.
func DoctorIDGTE(v uuid.UUID) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldGTE(FieldDoctorID, v))
}

// DoctorIDLT applies the LT predicate on the "doctor_id" field.
func DoctorIDLT(v uuid.UUID) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldLT(FieldDoctorID, v))
}

// DoctorIDLTE applies the LTE predicate on the "doctor_id" field.
func DoctorIDLTE(v uuid.UUID) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldLTE(FieldDoctorID, v))
}

// DoctorIDIsNil applies the IsNil predicate on the "doctor_id" field.
func DoctorIDIsNil() predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldIsNull(FieldDoctorID))
}

// DoctorIDNotNil applies the NotNil predicate on the "doctor_id" field.
func DoctorIDNotNil() predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNotNull(FieldDoctorID))
}

// ProviderIDEQ applies the EQ predicate on the "provider_id" field.
func ProviderIDEQ(v uuid.UUID) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEQ(FieldProviderID, v))
}

// ProviderIDNEQ applies the NEQ predicate on the "provider_id" field.
func ProviderIDNEQ(v uuid.UUID) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNEQ(FieldProviderID, v))
}

// ProviderIDIn applies the In predicate on the "provider_id" field.
func ProviderIDIn(vs ...uuid.UUID) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldIn(FieldProviderID, vs...))
}

// ProviderIDNotIn applies the NotIn predicate on the "provider_id" field.
func ProviderIDNotIn(vs ...uuid.UUID) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNotIn(FieldProviderID, vs...))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNotIn(FieldType, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNotIn(FieldStatus, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldContainsFold(FieldDescription, v))
}

// FeedbackEQ applies the EQ predicate on the "feedback" field.
func FeedbackEQ(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEQ(FieldFeedback, v))
}

// FeedbackNEQ applies the NEQ predicate on the "feedback" field.
func FeedbackNEQ(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNEQ(FieldFeedback, v))
}

// FeedbackIn applies the In predicate on the "feedback" field.
func FeedbackIn(vs ...string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldIn(FieldFeedback, vs...))
}

// FeedbackNotIn applies the NotIn predicate on the "feedback" field.
func FeedbackNotIn(vs ...string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNotIn(FieldFeedback, vs...))
}

// FeedbackGT applies the GT predicate on the "feedback" field.
func FeedbackGT(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldGT(FieldFeedback, v))
}

// FeedbackGTE applies the GTE predicate on the "feedback" field.
func FeedbackGTE(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldGTE(FieldFeedback, v))
}

// FeedbackLT applies the LT predicate on the "feedback" field.
func FeedbackLT(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldLT(FieldFeedback, v))
}

// FeedbackLTE applies the LTE predicate on the "feedback" field.
func FeedbackLTE(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldLTE(FieldFeedback, v))
}

// FeedbackContains applies the Contains predicate on the "feedback" field.
func FeedbackContains(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldContains(FieldFeedback, v))
}

// FeedbackHasPrefix applies the HasPrefix predicate on the "feedback" field.
func FeedbackHasPrefix(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldHasPrefix(FieldFeedback, v))
}

// FeedbackHasSuffix applies the HasSuffix predicate on the "feedback" field.
func FeedbackHasSuffix(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldHasSuffix(FieldFeedback, v))
}

// FeedbackIsNil applies the IsNil predicate on the "feedback" field.
func FeedbackIsNil() predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldIsNull(FieldFeedback))
}

// FeedbackNotNil applies the NotNil predicate on the "feedback" field.
func FeedbackNotNil() predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNotNull(FieldFeedback))
}

// FeedbackEqualFold applies the EqualFold predicate on the "feedback" field.
func FeedbackEqualFold(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEqualFold(FieldFeedback, v))
}

// FeedbackContainsFold applies the ContainsFold predicate on the "feedback" field.
func FeedbackContainsFold(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldContainsFold(FieldFeedback, v))
}

// PrescriptionGroupIDEQ applies the EQ predicate on the "prescription_group_id" field.
func PrescriptionGroupIDEQ(v uuid.UUID) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEQ(FieldPrescriptionGroupID, v))
}

// PrescriptionGroupIDNEQ applies the NEQ predicate on the "prescription_group_id" field.
func PrescriptionGroupIDNEQ(v uuid.UUID) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNEQ(FieldPrescriptionGroupID, v))
}

// PrescriptionGroupIDIn applies the In predicate on the "prescription_group_id" field.
func PrescriptionGroupIDIn(vs ...uuid.UUID) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldIn(FieldPrescriptionGroupID, vs...))
}

// PrescriptionGroupIDNotIn applies the NotIn predicate on the "prescription_group_id" field.
func PrescriptionGroupIDNotIn(vs ...uuid.UUID) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNotIn(FieldPrescriptionGroupID, vs...))
}

// PrescriptionGroupIDGT applies the GT predicate on the "prescription_group_id" field.
func PrescriptionGroupIDGT(v uuid.UUID) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldGT(FieldPrescriptionGroupID, v))
}

// PrescriptionGroupIDGTE applies the GTE predicate on the "prescription_group_id" field.
func PrescriptionGroupIDGTE(v uuid.UUID) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldGTE(FieldPrescriptionGroupID, v))
}

// PrescriptionGroupIDLT applies the LT predicate on the "prescription_group_id" field.
func PrescriptionGroupIDLT(v uuid.UUID) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldLT(FieldPrescriptionGroupID, v))
}

// PrescriptionGroupIDLTE applies the LTE predicate on the "prescription_group_id" field.
func PrescriptionGroupIDLTE(v uuid.UUID) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldLTE(FieldPrescriptionGroupID, v))
}

// PrescriptionGroupIDIsNil applies the IsNil predicate on the "prescription_group_id" field.
func PrescriptionGroupIDIsNil() predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldIsNull(FieldPrescriptionGroupID))
}

// PrescriptionGroupIDNotNil applies the NotNil predicate on the "prescription_group_id" field.
func PrescriptionGroupIDNotNil() predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNotNull(FieldPrescriptionGroupID))
}

// ResultFileKeyEQ applies the EQ predicate on the "result_file_key" field.
func ResultFileKeyEQ(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEQ(FieldResultFileKey, v))
}

// ResultFileKeyNEQ applies the NEQ predicate on the "result_file_key" field.
func ResultFileKeyNEQ(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNEQ(FieldResultFileKey, v))
}

// ResultFileKeyIn applies the In predicate on the "result_file_key" field.
func ResultFileKeyIn(vs ...string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldIn(FieldResultFileKey, vs...))
}

// ResultFileKeyNotIn applies the NotIn predicate on the "result_file_key" field.
func ResultFileKeyNotIn(vs ...string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNotIn(FieldResultFileKey, vs...))
}

// ResultFileKeyGT applies the GT predicate on the "result_file_key" field.
func ResultFileKeyGT(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldGT(FieldResultFileKey, v))
}

// ResultFileKeyGTE applies the GTE predicate on the "result_file_key" field.
func ResultFileKeyGTE(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldGTE(FieldResultFileKey, v))
}

// ResultFileKeyLT applies the LT predicate on the "result_file_key" field.
func ResultFileKeyLT(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldLT(FieldResultFileKey, v))
}

// ResultFileKeyLTE applies the LTE predicate on the "result_file_key" field.
func ResultFileKeyLTE(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldLTE(FieldResultFileKey, v))
}

// ResultFileKeyContains applies the Contains predicate on the "result_file_key" field.
func ResultFileKeyContains(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldContains(FieldResultFileKey, v))
}

// ResultFileKeyHasPrefix applies the HasPrefix predicate on the "result_file_key" field.
func ResultFileKeyHasPrefix(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldHasPrefix(FieldResultFileKey, v))
}

// ResultFileKeyHasSuffix applies the HasSuffix predicate on the "result_file_key" field.
func ResultFileKeyHasSuffix(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldHasSuffix(FieldResultFileKey, v))
}

// ResultFileKeyIsNil applies the IsNil predicate on the "result_file_key" field.
func ResultFileKeyIsNil() predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldIsNull(FieldResultFileKey))
}

// ResultFileKeyNotNil applies the NotNil predicate on the "result_file_key" field.
func ResultFileKeyNotNil() predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNotNull(FieldResultFileKey))
}

// ResultFileKeyEqualFold applies the EqualFold predicate on the "result_file_key" field.
func ResultFileKeyEqualFold(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEqualFold(FieldResultFileKey, v))
}

// ResultFileKeyContainsFold applies the ContainsFold predicate on the "result_file_key" field.
func ResultFileKeyContainsFold(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldContainsFold(FieldResultFileKey, v))
}

// ResultFileNameEQ applies the EQ predicate on the "result_file_name" field.
func ResultFileNameEQ(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEQ(FieldResultFileName, v))
}

// ResultFileNameNEQ applies the NEQ predicate on the "result_file_name" field.
func ResultFileNameNEQ(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNEQ(FieldResultFileName, v))
}

// ResultFileNameIn applies the In predicate on the "result_file_name" field.
func ResultFileNameIn(vs ...string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldIn(FieldResultFileName, vs...))
}

// ResultFileNameNotIn applies the NotIn predicate on the "result_file_name" field.
func ResultFileNameNotIn(vs ...string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNotIn(FieldResultFileName, vs...))
}

// ResultFileNameGT applies the GT predicate on the "result_file_name" field.
func ResultFileNameGT(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldGT(FieldResultFileName, v))
}

// ResultFileNameGTE applies the GTE predicate on the "result_file_name" field.
func ResultFileNameGTE(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldGTE(FieldResultFileName, v))
}

// ResultFileNameLT applies the LT predicate on the "result_file_name" field.
func ResultFileNameLT(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldLT(FieldResultFileName, v))
}

// ResultFileNameLTE applies the LTE predicate on the "result_file_name" field.
func ResultFileNameLTE(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldLTE(FieldResultFileName, v))
}

// ResultFileNameContains applies the Contains predicate on the "result_file_name" field.
func ResultFileNameContains(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldContains(FieldResultFileName, v))
}

// ResultFileNameHasPrefix applies the HasPrefix predicate on the "result_file_name" field.
func ResultFileNameHasPrefix(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldHasPrefix(FieldResultFileName, v))
}

// ResultFileNameHasSuffix applies the HasSuffix predicate on the "result_file_name" field.
func ResultFileNameHasSuffix(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldHasSuffix(FieldResultFileName, v))
}

// ResultFileNameIsNil applies the IsNil predicate on the "result_file_name" field.
func ResultFileNameIsNil() predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldIsNull(FieldResultFileName))
}

// ResultFileNameNotNil applies the NotNil predicate on the "result_file_name" field.
func ResultFileNameNotNil() predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNotNull(FieldResultFileName))
}

// ResultFileNameEqualFold applies the EqualFold predicate on the "result_file_name" field.
func ResultFileNameEqualFold(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEqualFold(FieldResultFileName, v))
}

// ResultFileNameContainsFold applies the ContainsFold predicate on the "result_file_name" field.
func ResultFileNameContainsFold(v string) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldContainsFold(FieldResultFileName, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldLTE(FieldVersion, v))
}

// FulfilledAtEQ applies the EQ predicate on the "fulfilled_at" field.
func FulfilledAtEQ(v time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEQ(FieldFulfilledAt, v))
}

// FulfilledAtNEQ applies the NEQ predicate on the "fulfilled_at" field.
func FulfilledAtNEQ(v time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNEQ(FieldFulfilledAt, v))
}

// FulfilledAtIn applies the In predicate on the "fulfilled_at" field.
func FulfilledAtIn(vs ...time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldIn(FieldFulfilledAt, vs...))
}

// FulfilledAtNotIn applies the NotIn predicate on the "fulfilled_at" field.
func FulfilledAtNotIn(vs ...time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNotIn(FieldFulfilledAt, vs...))
}

// FulfilledAtGT applies the GT predicate on the "fulfilled_at" field.
func FulfilledAtGT(v time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldGT(FieldFulfilledAt, v))
}

// FulfilledAtGTE applies the GTE predicate on the "fulfilled_at" field.
func FulfilledAtGTE(v time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldGTE(FieldFulfilledAt, v))
}

// FulfilledAtLT applies the LT predicate on the "fulfilled_at" field.
func FulfilledAtLT(v time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldLT(FieldFulfilledAt, v))
}

// FulfilledAtLTE applies the LTE predicate on the "fulfilled_at" field.
func FulfilledAtLTE(v time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldLTE(FieldFulfilledAt, v))
}

// FulfilledAtIsNil applies the IsNil predicate on the "fulfilled_at" field.
func FulfilledAtIsNil() predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldIsNull(FieldFulfilledAt))
}

// FulfilledAtNotNil applies the NotNil predicate on the "fulfilled_at" field.
func FulfilledAtNotNil() predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNotNull(FieldFulfilledAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNotNull(FieldCompletedAt))
}

// CancelledAtEQ applies the EQ predicate on the "cancelled_at" field.
func CancelledAtEQ(v time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldEQ(FieldCancelledAt, v))
}

// CancelledAtNEQ applies the NEQ predicate on the "cancelled_at" field.
func CancelledAtNEQ(v time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNEQ(FieldCancelledAt, v))
}

// CancelledAtIn applies the In predicate on the "cancelled_at" field.
func CancelledAtIn(vs ...time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldIn(FieldCancelledAt, vs...))
}

// CancelledAtNotIn applies the NotIn predicate on the "cancelled_at" field.
func CancelledAtNotIn(vs ...time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNotIn(FieldCancelledAt, vs...))
}

// CancelledAtGT applies the GT predicate on the "cancelled_at" field.
func CancelledAtGT(v time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldGT(FieldCancelledAt, v))
}

// CancelledAtGTE applies the GTE predicate on the "cancelled_at" field.
func CancelledAtGTE(v time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldGTE(FieldCancelledAt, v))
}

// CancelledAtLT applies the LT predicate on the "cancelled_at" field.
func CancelledAtLT(v time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldLT(FieldCancelledAt, v))
}

// CancelledAtLTE applies the LTE predicate on the "cancelled_at" field.
func CancelledAtLTE(v time.Time) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldLTE(FieldCancelledAt, v))
}

// CancelledAtIsNil applies the IsNil predicate on the "cancelled_at" field.
func CancelledAtIsNil() predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldIsNull(FieldCancelledAt))
}

// CancelledAtNotNil applies the NotNil predicate on the "cancelled_at" field.
func CancelledAtNotNil() predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.FieldNotNull(FieldCancelledAt))
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.MedicalRequest {
	return predicate.MedicalRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.User) predicate.MedicalRequest {
	return predicate.MedicalRequest(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProvider applies the HasEdge predicate on the "provider" edge.
func HasProvider() predicate.MedicalRequest {
	return predicate.MedicalRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProviderTable, ProviderColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProviderWith applies the HasEdge predicate on the "provider" edge with a given conditions (other predicates).
func HasProviderWith(preds ...predicate.User) predicate.MedicalRequest {
	return predicate.MedicalRequest(func(s *sql.Selector) {
		step := newProviderStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasItems applies the HasEdge predicate on the "items" edge.
func HasItems() predicate.MedicalRequest {
	return predicate.MedicalRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItemsWith applies the HasEdge predicate on the "items" edge with a given conditions (other predicates).
func HasItemsWith(preds ...predicate.RequestItem) predicate.MedicalRequest {
	return predicate.MedicalRequest(func(s *sql.Selector) {
		step := newItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MedicalRequest) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MedicalRequest) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MedicalRequest) predicate.MedicalRequest {
	return predicate.MedicalRequest(sql.NotPredicates(p))
}
