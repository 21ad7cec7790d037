package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// NotificationPref holds per-user notification channel preferences.
type NotificationPref struct {
	ent.Schema
}

func (NotificationPref) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (NotificationPref) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id"),

		field.Bool("request_sms").
			Default(true).
			Comment("SMS on fulfillment status changes"),

		field.Bool("request_email").
			Default(true),

		field.Bool("request_push").
			Default(true).
			Comment("In-app notification rows"),
	}
}

func (NotificationPref) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
	}
}
