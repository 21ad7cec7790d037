// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// MedicalRequest is the predicate function for medicalrequest builders.
type MedicalRequest func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// NotificationPref is the predicate function for notificationpref builders.
type NotificationPref func(*sql.Selector)

// OutboxMessage is the predicate function for outboxmessage builders.
type OutboxMessage func(*sql.Selector)

// Payment is the predicate function for payment builders.
type Payment func(*sql.Selector)

// PlatformSetting is the predicate function for platformsetting builders.
type PlatformSetting func(*sql.Selector)

// RequestItem is the predicate function for requestitem builders.
type RequestItem func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// UserSession is the predicate function for usersession builders.
type UserSession func(*sql.Selector)
