package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// RequestItem is one line of a MedicalRequest: a medication on a
// prescription, a test on a lab order, or an exam on an imaging order.
type RequestItem struct {
	ent.Schema
}

func (RequestItem) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (RequestItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("request_id", uuid.UUID{}),

		field.String("name").
			NotEmpty().
			MaxLen(255).
			Comment("Medication, test, or exam name"),

		field.String("dosage").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("frequency").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("duration").
			Optional().
			Nillable().
			MaxLen(100),

		field.Text("instructions").
			Optional().
			Nillable(),

		field.Bool("available").
			Default(true).
			Comment("Provider-reported stock/availability"),

		field.Enum("item_status").
			Values("pending", "confirmed", "unavailable", "ready_for_pickup", "collected").
			Default("pending"),

		field.Int("position").
			Default(0).
			NonNegative().
			Comment("Display order within the request"),
	}
}

func (RequestItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("request", MedicalRequest.Type).
			Ref("items").
			Unique().
			Required().
			Field("request_id"),
	}
}

func (RequestItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_id", "position"),
	}
}
