package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Payment is an append-only record of a (simulated) payment against a
// fulfillment request. There is no real gateway; rows are written only
// while the payments_enabled platform switch is on.
type Payment struct {
	ent.Schema
}

func (Payment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Payment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("request_id", uuid.UUID{}).
			Comment("FK → medical_requests.id"),

		field.UUID("payer_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.Int64("amount").
			Positive().
			Comment("Amount in millimes"),

		field.Enum("status").
			Values("recorded", "refunded").
			Default("recorded"),

		field.String("reference").
			Unique().
			NotEmpty().
			MaxLen(64).
			Comment("Human-readable receipt reference"),

		field.String("description").
			MaxLen(500).
			Optional().
			Nillable(),
	}
}

func (Payment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_id"),
		index.Fields("payer_id", "created_at"),
	}
}
