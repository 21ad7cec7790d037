package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// PlatformSetting is a key/value row for platform-wide switches,
// e.g. payments_enabled.
type PlatformSetting struct {
	ent.Schema
}

func (PlatformSetting) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (PlatformSetting) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			NotEmpty().
			Unique().
			MaxLen(100),

		field.String("value").
			MaxLen(500),

		field.UUID("updated_by", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Admin user who last changed the value"),
	}
}
