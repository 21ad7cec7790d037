// Code generated by ent, DO NOT EDIT.

package requestitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v uuid.UUID) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldEQ(FieldRequestID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldEQ(FieldName, v))
}

// Dosage applies equality check predicate on the "dosage" field. It's identical to DosageEQ.
func Dosage(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldEQ(FieldDosage, v))
}

// Frequency applies equality check predicate on the "frequency" field. It's identical to FrequencyEQ.
func Frequency(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldEQ(FieldFrequency, v))
}

// Duration applies equality check predicate on the "duration" field. It's identical to DurationEQ.
func Duration(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldEQ(FieldDuration, v))
}

// Instructions applies equality check predicate on the "instructions" field. It's identical to InstructionsEQ.
func Instructions(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldEQ(FieldInstructions, v))
}

// Available applies equality check predicate on the "available" field. It's identical to AvailableEQ.
func Available(v bool) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldEQ(FieldAvailable, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldEQ(FieldPosition, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldLTE(FieldUpdatedAt, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v uuid.UUID) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v uuid.UUID) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...uuid.UUID) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...uuid.UUID) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldNotIn(FieldRequestID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldContainsFold(FieldName, v))
}

// DosageEQ applies the EQ predicate on the "dosage" field.
func DosageEQ(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldEQ(FieldDosage, v))
}

// DosageNEQ applies the NEQ predicate on the "dosage" field.
func DosageNEQ(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldNEQ(FieldDosage, v))
}

// DosageIn applies the In predicate on the "dosage" field.
func DosageIn(vs ...string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldIn(FieldDosage, vs...))
}

// DosageNotIn applies the NotIn predicate on the "dosage" field.
func DosageNotIn(vs ...string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldNotIn(FieldDosage, vs...))
}

// DosageGT applies the GT predicate on the "dosage" field.
func DosageGT(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldGT(FieldDosage, v))
}

// DosageGTE applies the GTE predicate on the "dosage" field.
func DosageGTE(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldGTE(FieldDosage, v))
}

// DosageLT applies the LT predicate on the "dosage" field.
func DosageLT(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldLT(FieldDosage, v))
}

// DosageLTE applies the LTE predicate on the "dosage" field.
func DosageLTE(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldLTE(FieldDosage, v))
}

// DosageContains applies the Contains predicate on the "dosage" field.
func DosageContains(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldContains(FieldDosage, v))
}

// DosageHasPrefix applies the HasPrefix predicate on the "dosage" field.
func DosageHasPrefix(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldHasPrefix(FieldDosage, v))
}

// DosageHasSuffix applies the HasSuffix predicate on the "dosage" field.
func DosageHasSuffix(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldHasSuffix(FieldDosage, v))
}

// DosageIsNil applies the IsNil predicate on the "dosage" field.
func DosageIsNil() predicate.RequestItem {
	return predicate.RequestItem(sql.FieldIsNull(FieldDosage))
}

// DosageNotNil applies the NotNil predicate on the "dosage" field.
func DosageNotNil() predicate.RequestItem {
	return predicate.RequestItem(sql.FieldNotNull(FieldDosage))
}

// DosageEqualFold applies the EqualFold predicate on the "dosage" field.
func DosageEqualFold(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldEqualFold(FieldDosage, v))
}

// DosageContainsFold applies the ContainsFold predicate on the "dosage" field.
func DosageContainsFold(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldContainsFold(FieldDosage, v))
}

// FrequencyEQ applies the EQ predicate on the "frequency" field.
func FrequencyEQ(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldEQ(FieldFrequency, v))
}

// FrequencyNEQ applies the NEQ predicate on the "frequency" field.
func FrequencyNEQ(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldNEQ(FieldFrequency, v))
}

// FrequencyIn applies the In predicate on the "frequency" field.
func FrequencyIn(vs ...string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldIn(FieldFrequency, vs...))
}

// FrequencyNotIn applies the NotIn predicate on the "frequency" field.
func FrequencyNotIn(vs ...string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldNotIn(FieldFrequency, vs...))
}

// FrequencyGT applies the GT predicate on the "frequency" field.
func FrequencyGT(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldGT(FieldFrequency, v))
}

// FrequencyGTE applies the GTE predicate on the "frequency" field.
func FrequencyGTE(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldGTE(FieldFrequency, v))
}

// FrequencyLT applies the LT predicate on the "frequency" field.
func FrequencyLT(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldLT(FieldFrequency, v))
}

// FrequencyLTE applies the LTE predicate on the "frequency" field.
func FrequencyLTE(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldLTE(FieldFrequency, v))
}

// FrequencyContains applies the Contains predicate on the "frequency" field.
func FrequencyContains(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldContains(FieldFrequency, v))
}

// FrequencyHasPrefix applies the HasPrefix predicate on the "frequency" field.
func FrequencyHasPrefix(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldHasPrefix(FieldFrequency, v))
}

// FrequencyHasSuffix applies the HasSuffix predicate on the "frequency" field.
func FrequencyHasSuffix(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldHasSuffix(FieldFrequency, v))
}

// FrequencyIsNil applies the IsNil predicate on the "frequency" field.
func FrequencyIsNil() predicate.RequestItem {
	return predicate.RequestItem(sql.FieldIsNull(FieldFrequency))
}

// FrequencyNotNil applies the NotNil predicate on the "frequency" field.
func FrequencyNotNil() predicate.RequestItem {
	return predicate.RequestItem(sql.FieldNotNull(FieldFrequency))
}

// FrequencyEqualFold applies the EqualFold predicate on the "frequency" field.
func FrequencyEqualFold(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldEqualFold(FieldFrequency, v))
}

// FrequencyContainsFold applies the ContainsFold predicate on the "frequency" field.
func FrequencyContainsFold(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldContainsFold(FieldFrequency, v))
}

// DurationEQ applies the EQ predicate on the "duration" field.
func DurationEQ(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldEQ(FieldDuration, v))
}

// DurationNEQ applies the NEQ predicate on the "duration" field.
func DurationNEQ(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldNEQ(FieldDuration, v))
}

// DurationIn applies the In predicate on the "duration" field.
func DurationIn(vs ...string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldIn(FieldDuration, vs...))
}

// DurationNotIn applies the NotIn predicate on the "duration" field.
func DurationNotIn(vs ...string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldNotIn(FieldDuration, vs...))
}

// DurationGT applies the GT predicate on the "duration" field.
func DurationGT(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldGT(FieldDuration, v))
}

// DurationGTE applies the GTE predicate on the "duration" field.
func DurationGTE(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldGTE(FieldDuration, v))
}

// DurationLT applies the LT predicate on the "duration" field.
func DurationLT(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldLT(FieldDuration, v))
}

// DurationLTE applies the LTE predicate on the "duration" field.
func DurationLTE(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldLTE(FieldDuration, v))
}

// DurationContains applies the Contains predicate on the "duration" field.
func DurationContains(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldContains(FieldDuration, v))
}

// DurationHasPrefix applies the HasPrefix predicate on the "duration" field.
func DurationHasPrefix(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldHasPrefix(FieldDuration, v))
}

// DurationHasSuffix applies the HasSuffix predicate on the "duration" field.
func DurationHasSuffix(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldHasSuffix(FieldDuration, v))
}

// DurationIsNil applies the IsNil predicate on the "duration" field.
func DurationIsNil() predicate.RequestItem {
	return predicate.RequestItem(sql.FieldIsNull(FieldDuration))
}

// DurationNotNil applies the NotNil predicate on the "duration" field.
func DurationNotNil() predicate.RequestItem {
	return predicate.RequestItem(sql.FieldNotNull(FieldDuration))
}

// DurationEqualFold applies the EqualFold predicate on the "duration" field.
func DurationEqualFold(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldEqualFold(FieldDuration, v))
}

// DurationContainsFold applies the ContainsFold predicate on the "duration" field.
func DurationContainsFold(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldContainsFold(FieldDuration, v))
}

// InstructionsEQ applies the EQ predicate on the "instructions" field.
func InstructionsEQ(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldEQ(FieldInstructions, v))
}

// InstructionsNEQ applies the NEQ predicate on the "instructions" field.
func InstructionsNEQ(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldNEQ(FieldInstructions, v))
}

// InstructionsIn applies the In predicate on the "instructions" field.
func InstructionsIn(vs ...string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldIn(FieldInstructions, vs...))
}

// InstructionsNotIn applies the NotIn predicate on the "instructions" field.
func InstructionsNotIn(vs ...string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldNotIn(FieldInstructions, vs...))
}

// InstructionsGT applies the GT predicate on the "instructions" field.
func InstructionsGT(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldGT(FieldInstructions, v))
}

// InstructionsGTE applies the GTE predicate on the "instructions" field.
func InstructionsGTE(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldGTE(FieldInstructions, v))
}

// InstructionsLT applies the LT predicate on the "instructions" field.
func InstructionsLT(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldLT(FieldInstructions, v))
}

// InstructionsLTE applies the LTE predicate on the "instructions" field.
func InstructionsLTE(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldLTE(FieldInstructions, v))
}

// InstructionsContains applies the Contains predicate on the "instructions" field.
func InstructionsContains(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldContains(FieldInstructions, v))
}

// InstructionsHasPrefix applies the HasPrefix predicate on the "instructions" field.
func InstructionsHasPrefix(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldHasPrefix(FieldInstructions, v))
}

// InstructionsHasSuffix applies the HasSuffix predicate on the "instructions" field.
func InstructionsHasSuffix(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldHasSuffix(FieldInstructions, v))
}

// InstructionsIsNil applies the IsNil predicate on the "instructions" field.
func InstructionsIsNil() predicate.RequestItem {
	return predicate.RequestItem(sql.FieldIsNull(FieldInstructions))
}

// InstructionsNotNil applies the NotNil predicate on the "instructions" field.
func InstructionsNotNil() predicate.RequestItem {
	return predicate.RequestItem(sql.FieldNotNull(FieldInstructions))
}

// InstructionsEqualFold applies the EqualFold predicate on the "instructions" field.
func InstructionsEqualFold(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldEqualFold(FieldInstructions, v))
}

// InstructionsContainsFold applies the ContainsFold predicate on the "instructions" field.
func InstructionsContainsFold(v string) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldContainsFold(FieldInstructions, v))
}

// AvailableEQ applies the EQ predicate on the "available" field.
func AvailableEQ(v bool) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldEQ(FieldAvailable, v))
}

// AvailableNEQ applies the NEQ predicate on the "available" field.
func AvailableNEQ(v bool) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldNEQ(FieldAvailable, v))
}

// ItemStatusEQ applies the EQ predicate on the "item_status" field.
func ItemStatusEQ(v ItemStatus) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldEQ(FieldItemStatus, v))
}

// ItemStatusNEQ applies the NEQ predicate on the "item_status" field.
func ItemStatusNEQ(v ItemStatus) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldNEQ(FieldItemStatus, v))
}

// ItemStatusIn applies the In predicate on the "item_status" field.
func ItemStatusIn(vs ...ItemStatus) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldIn(FieldItemStatus, vs...))
}

// ItemStatusNotIn applies the NotIn predicate on the "item_status" field.
func ItemStatusNotIn(vs ...ItemStatus) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldNotIn(FieldItemStatus, vs...))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.RequestItem {
	return predicate.RequestItem(sql.FieldLTE(FieldPosition, v))
}

// HasRequest applies the HasEdge predicate on the "request" edge.
func HasRequest() predicate.RequestItem {
	return predicate.RequestItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RequestTable, RequestColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRequestWith applies the HasEdge predicate on the "request" edge with a given conditions (other predicates).
func HasRequestWith(preds ...predicate.MedicalRequest) predicate.RequestItem {
	return predicate.RequestItem(func(s *sql.Selector) {
		step := newRequestStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RequestItem) predicate.RequestItem {
	return predicate.RequestItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RequestItem) predicate.RequestItem {
	return predicate.RequestItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RequestItem) predicate.RequestItem {
	return predicate.RequestItem(sql.NotPredicates(p))
}
