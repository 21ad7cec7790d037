package authorize

import (
	"fmt"
	"regexp"
)

type Action string
type Resource string
type Role string
type Domain string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// Power actions
	ActionManage  Action = "manage"  // CRUD + list
	ActionExecute Action = "execute" // run, trigger, start, stop, etc.

	// Fulfillment lifecycle actions
	ActionFulfill  Action = "fulfill"  // provider availability report
	ActionComplete Action = "complete" // hand-over at pickup
	ActionReassign Action = "reassign"

	// RBAC-specific actions
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionManage: {}, ActionExecute: {},
	ActionFulfill: {}, ActionComplete: {}, ActionReassign: {},
	ActionGrant: {}, ActionRevoke: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Identity / auth
	ResourceUser         Resource = "user"
	ResourceAuthSession  Resource = "auth_session"
	ResourceRefreshToken Resource = "refresh_token"
	ResourceOTP          Resource = "otp"

	// Fulfillment
	ResourceMedicalRequest Resource = "medical_request"
	ResourceRequestItem    Resource = "request_item"
	ResourceProvider       Resource = "provider"
	ResourceResultFile     Resource = "result_file"

	// Communication
	ResourceNotification     Resource = "notification"
	ResourceNotificationPref Resource = "notification_pref"

	// Financial
	ResourcePayment Resource = "payment"

	// System / platform admin
	ResourcePlatformSetting Resource = "platform_setting"
	ResourceSystem          Resource = "system"
	ResourceAudit           Resource = "audit"
	ResourceRBAC            Resource = "rbac"
)

var KnownResources = map[Resource]struct{}{
	ResourceUser: {}, ResourceAuthSession: {}, ResourceRefreshToken: {}, ResourceOTP: {},
	ResourceMedicalRequest: {}, ResourceRequestItem: {}, ResourceProvider: {}, ResourceResultFile: {},
	ResourceNotification: {}, ResourceNotificationPref: {},
	ResourcePayment:         {},
	ResourcePlatformSetting: {}, ResourceSystem: {}, ResourceAudit: {}, ResourceRBAC: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to users via grouping policies.

const (
	WildcardRole Role = "*"

	// Platform role (domain = sys)
	RolePlatformAdmin Role = "role:platform:admin"

	// Care roles (domain = sys)
	RolePatient Role = "role:patient"
	RoleDoctor  Role = "role:doctor"

	// Provider roles per facility type (domain = sys)
	RoleProviderPharmacy   Role = "role:provider:pharmacy"
	RoleProviderLaboratory Role = "role:provider:laboratory"
	RoleProviderRadiology  Role = "role:provider:radiology"

	// Private user scope (domain = user:<uuid>)
	RoleUserSelf Role = "role:user:self"
)

var KnownRoles = map[Role]struct{}{
	RolePlatformAdmin:      {},
	RolePatient:            {},
	RoleDoctor:             {},
	RoleProviderPharmacy:   {},
	RoleProviderLaboratory: {},
	RoleProviderRadiology:  {},
	RoleUserSelf:           {},
}

// ProviderTypeToRole maps the users.provider_type column to the Casbin role.
var ProviderTypeToRole = map[string]Role{
	"pharmacy":   RoleProviderPharmacy,
	"laboratory": RoleProviderLaboratory,
	"radiology":  RoleProviderRadiology,
}

// ----------------------------
// Domains
// ----------------------------

const (
	DomainSys Domain = "sys"
)

// Domain prefixes (for exact domains we generate per entity)
const (
	DomainPrefixUser Domain = "user:"
)

const (
	WildcardDomain Domain = "*"
)

var (
	reUUID = regexp.MustCompile(`^[0-9a-fA-F-]{36}$`)
)

// UserDomain builds the private domain for a user's own resources.
func UserDomain(userID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixUser, userID))
}

// IsValidDomain checks whether d is a recognised domain string.
func IsValidDomain(d Domain) bool {
	if d == DomainSys || d == WildcardDomain {
		return true
	}

	s := string(d)
	if len(s) > len(DomainPrefixUser) && s[:len(DomainPrefixUser)] == string(DomainPrefixUser) {
		return reUUID.MatchString(s[len(DomainPrefixUser):])
	}
	return false
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// PolicySubject is the p.sub in Casbin: either a role (preferred) or a user/service id.
type PolicySubject string

// GroupSubject is the g.sub in Casbin: a concrete principal id (user_id or service_id).
type GroupSubject string

// Grouping rows: g, user_id, role, domain
type GroupingPolicy struct {
	Subject GroupSubject
	Role    Role
	Domain  Domain
}

// Permission rows: p, role, domain, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Domain  Domain
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
