package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("first_name").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("last_name").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("phone").
			Optional().Nillable().
			Unique().
			MaxLen(20),

		field.String("email").
			Optional().
			Nillable().
			Unique().
			MaxLen(255),

		field.String("password_hash").
			Optional().
			Nillable().
			Sensitive(),

		field.Enum("role").
			Values("patient", "doctor", "provider", "admin").
			Default("patient"),

		field.Enum("provider_type").
			Values("pharmacy", "laboratory", "radiology").
			Optional().
			Nillable().
			Comment("Set only when role = provider"),

		field.String("specialty").
			Optional().
			Nillable().
			MaxLen(100).
			Comment("Doctor specialty, free text"),

		// AES-256-GCM ciphertext of the national id (CIN); the hash column
		// allows uniqueness checks without decrypting.
		field.String("national_id_encrypted").
			Optional().
			Nillable().
			Sensitive(),

		field.String("national_id_hash").
			Optional().
			Nillable().
			Unique().
			MaxLen(64).
			Sensitive(),

		field.Enum("status").
			Values("ACTIVE", "SUSPENDED").
			Default("ACTIVE"),

		field.Bool("phone_verified").Default(false),
		field.Bool("email_verified").Default(false),

		// audit
		field.Time("last_login_at").
			Optional().
			Nillable(),

		field.Int("failed_login_attempts").
			Default(0).
			NonNegative(),

		field.Time("locked_until").
			Optional().
			Nillable().
			Comment("Account locked until this time after repeated login failures"),

		field.Time("last_failed_login_at").
			Optional().
			Nillable(),

		field.JSON("metadata", map[string]any{}).
			Optional().
			Default(map[string]any{}),

		field.Time("suspended_at").
			Optional().
			Nillable(),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("role", "provider_type"),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("requests", MedicalRequest.Type),
		edge.To("assigned_requests", MedicalRequest.Type),
	}
}
