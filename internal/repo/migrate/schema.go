// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// MedicalRequestsColumns holds the columns for the "medical_requests" table.
	MedicalRequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "doctor_id", Type: field.TypeUUID, Nullable: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"prescription", "lab_result", "imaging"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "confirmed", "pending_patient_confirmation", "partially_fulfilled", "out_of_stock", "ready_for_pickup", "completed", "cancelled"}, Default: "pending"},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "feedback", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "prescription_group_id", Type: field.TypeUUID, Nullable: true},
		{Name: "result_file_key", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "result_file_name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "version", Type: field.TypeInt, Default: 0},
		{Name: "fulfilled_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "provider_id", Type: field.TypeUUID},
	}
	// MedicalRequestsTable holds the schema information for the "medical_requests" table.
	MedicalRequestsTable = &schema.Table{
		Name:       "medical_requests",
		Columns:    MedicalRequestsColumns,
		PrimaryKey: []*schema.Column{MedicalRequestsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "medical_requests_users_requests",
				Columns:    []*schema.Column{MedicalRequestsColumns[16]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "medical_requests_users_assigned_requests",
				Columns:    []*schema.Column{MedicalRequestsColumns[17]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "medicalrequest_patient_id_status",
				Unique:  false,
				Columns: []*schema.Column{MedicalRequestsColumns[16], MedicalRequestsColumns[5]},
			},
			{
				Name:    "medicalrequest_provider_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{MedicalRequestsColumns[17], MedicalRequestsColumns[5], MedicalRequestsColumns[1]},
			},
			{
				Name:    "medicalrequest_type_status",
				Unique:  false,
				Columns: []*schema.Column{MedicalRequestsColumns[4], MedicalRequestsColumns[5]},
			},
			{
				Name:    "medicalrequest_prescription_group_id",
				Unique:  false,
				Columns: []*schema.Column{MedicalRequestsColumns[9]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeString, Size: 64},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "is_read", Type: field.TypeBool, Default: false},
		{Name: "is_pushed", Type: field.TypeBool, Default: false},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_user_id_is_read_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[2], NotificationsColumns[7], NotificationsColumns[1]},
			},
		},
	}
	// NotificationPrefsColumns holds the columns for the "notification_prefs" table.
	NotificationPrefsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
		{Name: "request_sms", Type: field.TypeBool, Default: true},
		{Name: "request_email", Type: field.TypeBool, Default: true},
		{Name: "request_push", Type: field.TypeBool, Default: true},
	}
	// NotificationPrefsTable holds the schema information for the "notification_prefs" table.
	NotificationPrefsTable = &schema.Table{
		Name:       "notification_prefs",
		Columns:    NotificationPrefsColumns,
		PrimaryKey: []*schema.Column{NotificationPrefsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notificationpref_user_id",
				Unique:  true,
				Columns: []*schema.Column{NotificationPrefsColumns[3]},
			},
		},
	}
	// OutboxMessagesColumns holds the columns for the "outbox_messages" table.
	OutboxMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "event_type", Type: field.TypeString, Size: 64},
		{Name: "subject", Type: field.TypeString, Size: 255},
		{Name: "entity_id", Type: field.TypeUUID},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "dispatched", Type: field.TypeBool, Default: false},
		{Name: "dispatched_at", Type: field.TypeTime, Nullable: true},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "next_attempt_at", Type: field.TypeTime},
		{Name: "last_error", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// OutboxMessagesTable holds the schema information for the "outbox_messages" table.
	OutboxMessagesTable = &schema.Table{
		Name:       "outbox_messages",
		Columns:    OutboxMessagesColumns,
		PrimaryKey: []*schema.Column{OutboxMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "outboxmessage_dispatched_next_attempt_at",
				Unique:  false,
				Columns: []*schema.Column{OutboxMessagesColumns[6], OutboxMessagesColumns[9]},
			},
			{
				Name:    "outboxmessage_entity_id",
				Unique:  false,
				Columns: []*schema.Column{OutboxMessagesColumns[4]},
			},
		},
	}
	// PaymentsColumns holds the columns for the "payments" table.
	PaymentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeUUID},
		{Name: "payer_id", Type: field.TypeUUID},
		{Name: "amount", Type: field.TypeInt64},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"recorded", "refunded"}, Default: "recorded"},
		{Name: "reference", Type: field.TypeString, Unique: true, Size: 64},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 500},
	}
	// PaymentsTable holds the schema information for the "payments" table.
	PaymentsTable = &schema.Table{
		Name:       "payments",
		Columns:    PaymentsColumns,
		PrimaryKey: []*schema.Column{PaymentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "payment_request_id",
				Unique:  false,
				Columns: []*schema.Column{PaymentsColumns[2]},
			},
			{
				Name:    "payment_payer_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{PaymentsColumns[3], PaymentsColumns[1]},
			},
		},
	}
	// PlatformSettingsColumns holds the columns for the "platform_settings" table.
	PlatformSettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "key", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "value", Type: field.TypeString, Size: 500},
		{Name: "updated_by", Type: field.TypeUUID, Nullable: true},
	}
	// PlatformSettingsTable holds the schema information for the "platform_settings" table.
	PlatformSettingsTable = &schema.Table{
		Name:       "platform_settings",
		Columns:    PlatformSettingsColumns,
		PrimaryKey: []*schema.Column{PlatformSettingsColumns[0]},
	}
	// RequestItemsColumns holds the columns for the "request_items" table.
	RequestItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "dosage", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "frequency", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "duration", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "instructions", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "available", Type: field.TypeBool, Default: true},
		{Name: "item_status", Type: field.TypeEnum, Enums: []string{"pending", "confirmed", "unavailable", "ready_for_pickup", "collected"}, Default: "pending"},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "request_id", Type: field.TypeUUID},
	}
	// RequestItemsTable holds the schema information for the "request_items" table.
	RequestItemsTable = &schema.Table{
		Name:       "request_items",
		Columns:    RequestItemsColumns,
		PrimaryKey: []*schema.Column{RequestItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "request_items_medical_requests_items",
				Columns:    []*schema.Column{RequestItemsColumns[11]},
				RefColumns: []*schema.Column{MedicalRequestsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "requestitem_request_id_position",
				Unique:  false,
				Columns: []*schema.Column{RequestItemsColumns[11], RequestItemsColumns[10]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "first_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "last_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "phone", Type: field.TypeString, Unique: true, Nullable: true, Size: 20},
		{Name: "email", Type: field.TypeString, Unique: true, Nullable: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"patient", "doctor", "provider", "admin"}, Default: "patient"},
		{Name: "provider_type", Type: field.TypeEnum, Nullable: true, Enums: []string{"pharmacy", "laboratory", "radiology"}},
		{Name: "specialty", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "national_id_encrypted", Type: field.TypeString, Nullable: true},
		{Name: "national_id_hash", Type: field.TypeString, Unique: true, Nullable: true, Size: 64},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ACTIVE", "SUSPENDED"}, Default: "ACTIVE"},
		{Name: "phone_verified", Type: field.TypeBool, Default: false},
		{Name: "email_verified", Type: field.TypeBool, Default: false},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "failed_login_attempts", Type: field.TypeInt, Default: 0},
		{Name: "locked_until", Type: field.TypeTime, Nullable: true},
		{Name: "last_failed_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "suspended_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_role_provider_type",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[9], UsersColumns[10]},
			},
		},
	}
	// UserSessionsColumns holds the columns for the "user_sessions" table.
	UserSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true, Size: 36},
		{Name: "refresh_token_hash", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
		{Name: "ip_address", Type: field.TypeString, Nullable: true, Size: 45},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// UserSessionsTable holds the schema information for the "user_sessions" table.
	UserSessionsTable = &schema.Table{
		Name:       "user_sessions",
		Columns:    UserSessionsColumns,
		PrimaryKey: []*schema.Column{UserSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_sessions_users_user",
				Columns:    []*schema.Column{UserSessionsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "usersession_session_id",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[3]},
			},
			{
				Name:    "usersession_user_id",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		MedicalRequestsTable,
		NotificationsTable,
		NotificationPrefsTable,
		OutboxMessagesTable,
		PaymentsTable,
		PlatformSettingsTable,
		RequestItemsTable,
		UsersTable,
		UserSessionsTable,
	}
)

func init() {
	MedicalRequestsTable.ForeignKeys[0].RefTable = UsersTable
	MedicalRequestsTable.ForeignKeys[1].RefTable = UsersTable
	RequestItemsTable.ForeignKeys[0].RefTable = MedicalRequestsTable
	UserSessionsTable.ForeignKeys[0].RefTable = UsersTable
}
