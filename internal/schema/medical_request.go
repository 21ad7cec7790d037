package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// MedicalRequest is a fulfillment request routed to a service provider:
// a prescription sent to a pharmacy, a lab order sent to a laboratory,
// or an imaging order sent to a radiology center.
type MedicalRequest struct {
	ent.Schema
}

func (MedicalRequest) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (MedicalRequest) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.UUID("doctor_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Issuing doctor; nil for patient-initiated requests"),

		field.UUID("provider_id", uuid.UUID{}).
			Comment("FK → users.id of the assigned provider"),

		field.Enum("type").
			Values("prescription", "lab_result", "imaging"),

		field.Enum("status").
			Values(
				"pending",
				"confirmed",
				"pending_patient_confirmation",
				"partially_fulfilled",
				"out_of_stock",
				"ready_for_pickup",
				"completed",
				"cancelled",
			).
			Default("pending"),

		field.String("title").
			MaxLen(255),

		field.Text("description").
			Optional().
			Nillable(),

		field.Text("feedback").
			Optional().
			Nillable().
			Comment("Provider note to the patient; required for partial or out-of-stock outcomes"),

		field.UUID("prescription_group_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Groups requests issued together from one consultation"),

		field.String("result_file_key").
			Optional().
			Nillable().
			MaxLen(500).
			Comment("S3 key of the uploaded result document"),

		field.String("result_file_name").
			Optional().
			Nillable().
			MaxLen(255),

		field.Int("version").
			Default(0).
			NonNegative().
			Comment("Optimistic concurrency token, bumped on every status change"),

		field.Time("fulfilled_at").
			Optional().
			Nillable(),

		field.Time("completed_at").
			Optional().
			Nillable(),

		field.Time("cancelled_at").
			Optional().
			Nillable(),
	}
}

func (MedicalRequest) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", User.Type).
			Ref("requests").
			Unique().
			Required().
			Field("patient_id"),
		edge.From("provider", User.Type).
			Ref("assigned_requests").
			Unique().
			Required().
			Field("provider_id"),
		edge.To("items", RequestItem.Type),
	}
}

func (MedicalRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "status"),
		index.Fields("provider_id", "status", "created_at"),
		index.Fields("type", "status"),
		index.Fields("prescription_group_id"),
	}
}
