package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// OutboxMessage is a pending event written in the same transaction as the
// state change that produced it. A relay worker publishes rows to NATS and
// marks them dispatched; delivery is at-least-once.
type OutboxMessage struct {
	ent.Schema
}

func (OutboxMessage) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (OutboxMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("event_type").
			NotEmpty().
			MaxLen(64).
			Comment("e.g. confirmed, out_of_stock, ready_for_pickup"),

		field.String("subject").
			NotEmpty().
			MaxLen(255).
			Comment("NATS subject the payload is published to"),

		field.UUID("entity_id", uuid.UUID{}).
			Comment("ID of the entity the event is about"),

		field.JSON("payload", map[string]any{}),

		field.Bool("dispatched").
			Default(false),

		field.Time("dispatched_at").
			Optional().
			Nillable(),

		field.Int("attempts").
			Default(0).
			NonNegative(),

		field.Time("next_attempt_at").
			Default(time.Now).
			Comment("Earliest time the relay may (re)try this row"),

		field.Text("last_error").
			Optional().
			Nillable(),
	}
}

func (OutboxMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("dispatched", "next_attempt_at"),
		index.Fields("entity_id"),
	}
}
