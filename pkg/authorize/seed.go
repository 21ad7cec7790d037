package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the platform.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// System-level policies (domain: sys)
	sysPolicies := []PermissionPolicy{
		// Platform admin: god mode
		{RolePlatformAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},

		// Patients create requests against providers, follow them, accept or
		// cancel offers, and record payments.
		{RolePatient, DomainSys, ResourceMedicalRequest, ActionCreate, EffectAllow},
		{RolePatient, DomainSys, ResourceMedicalRequest, ActionRead, EffectAllow},
		{RolePatient, DomainSys, ResourceMedicalRequest, ActionList, EffectAllow},
		{RolePatient, DomainSys, ResourceMedicalRequest, ActionUpdate, EffectAllow},
		{RolePatient, DomainSys, ResourceMedicalRequest, ActionReassign, EffectAllow},
		{RolePatient, DomainSys, ResourceProvider, ActionList, EffectAllow},
		{RolePatient, DomainSys, ResourceProvider, ActionRead, EffectAllow},
		{RolePatient, DomainSys, ResourceResultFile, ActionRead, EffectAllow},
		{RolePatient, DomainSys, ResourcePayment, ActionCreate, EffectAllow},
		{RolePatient, DomainSys, ResourcePayment, ActionList, EffectAllow},

		// Doctors issue requests on behalf of their patients.
		{RoleDoctor, DomainSys, ResourceMedicalRequest, ActionCreate, EffectAllow},
		{RoleDoctor, DomainSys, ResourceMedicalRequest, ActionRead, EffectAllow},
		{RoleDoctor, DomainSys, ResourceMedicalRequest, ActionList, EffectAllow},
		{RoleDoctor, DomainSys, ResourceProvider, ActionList, EffectAllow},
		{RoleDoctor, DomainSys, ResourceProvider, ActionRead, EffectAllow},
	}

	// Provider policies are identical across facility types; the service
	// layer enforces the type match between provider and request.
	providerPolicies := make([]PermissionPolicy, 0, 18)
	for _, role := range []Role{RoleProviderPharmacy, RoleProviderLaboratory, RoleProviderRadiology} {
		providerPolicies = append(providerPolicies,
			PermissionPolicy{role, DomainSys, ResourceMedicalRequest, ActionRead, EffectAllow},
			PermissionPolicy{role, DomainSys, ResourceMedicalRequest, ActionList, EffectAllow},
			PermissionPolicy{role, DomainSys, ResourceMedicalRequest, ActionFulfill, EffectAllow},
			PermissionPolicy{role, DomainSys, ResourceMedicalRequest, ActionComplete, EffectAllow},
			PermissionPolicy{role, DomainSys, ResourceRequestItem, ActionUpdate, EffectAllow},
			PermissionPolicy{role, DomainSys, ResourceResultFile, ActionCreate, EffectAllow},
		)
	}

	// User-level policies (domain: user:*)
	userPolicies := []PermissionPolicy{
		// UserSelf: full control over own resources
		{RoleUserSelf, WildcardDomain, ResourceAuthSession, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceRefreshToken, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceNotification, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceNotificationPref, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceUser, ActionRead, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceUser, ActionUpdate, EffectAllow},
	}

	allPolicies := append(append(sysPolicies, providerPolicies...), userPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// AssignUserSelfRole assigns the user:self role in the user's private domain.
// Call this when creating a new user.
func AssignUserSelfRole(ctx context.Context, auth IAuthorization, userID string) error {
	domain := UserDomain(userID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleUserSelf, domain)
	return err
}

// AssignAccountRole assigns the platform role matching a user's account:
// patient, doctor, or one of the provider roles by facility type.
func AssignAccountRole(ctx context.Context, auth IAuthorization, userID, role, providerType string) error {
	var r Role
	switch role {
	case "patient":
		r = RolePatient
	case "doctor":
		r = RoleDoctor
	case "provider":
		pr, ok := ProviderTypeToRole[providerType]
		if !ok {
			return ErrInvalidArgs
		}
		r = pr
	case "admin":
		r = RolePlatformAdmin
	default:
		return ErrInvalidArgs
	}

	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, r, DomainSys)
	return err
}

// RemoveAccountRole removes a sys-domain role from a user.
func RemoveAccountRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	subject := GroupSubject(userID)
	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, DomainSys)
	return err
}

// GetAccountRoles returns all sys-domain roles a user has.
func GetAccountRoles(ctx context.Context, auth IAuthorization, userID string) ([]Role, error) {
	subject := GroupSubject(userID)
	return auth.GetRolesForUserInDomain(ctx, subject, DomainSys)
}
