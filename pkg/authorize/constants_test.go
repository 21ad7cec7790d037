package authorize

import (
	"testing"
)

func TestIsValidDomain(t *testing.T) {
	tests := []struct {
		name     string
		domain   Domain
		expected bool
	}{
		// Valid domains
		{"sys domain", DomainSys, true},
		{"wildcard domain", WildcardDomain, true},
		{"valid user domain", Domain("user:550e8400-e29b-41d4-a716-446655440000"), true},

		// Invalid domains
		{"empty domain", Domain(""), false},
		{"random string", Domain("random"), false},
		{"user without uuid", Domain("user:"), false},
		{"user with invalid uuid", Domain("user:not-a-uuid"), false},
		{"unknown prefix", Domain("clinic:550e8400-e29b-41d4-a716-446655440000"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidDomain(tt.domain)
			if result != tt.expected {
				t.Errorf("IsValidDomain(%q) = %v, want %v", tt.domain, result, tt.expected)
			}
		})
	}
}

func TestUserDomain(t *testing.T) {
	userID := "550e8400-e29b-41d4-a716-446655440000"
	expected := Domain("user:550e8400-e29b-41d4-a716-446655440000")

	result := UserDomain(userID)
	if result != expected {
		t.Errorf("UserDomain(%q) = %q, want %q", userID, result, expected)
	}
}

func TestKnownActions(t *testing.T) {
	// Verify all expected actions are in the known map
	expectedActions := []Action{
		ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionList,
		ActionManage, ActionExecute,
		ActionFulfill, ActionComplete, ActionReassign,
		ActionGrant, ActionRevoke,
	}

	for _, action := range expectedActions {
		if _, ok := KnownActions[action]; !ok {
			t.Errorf("Expected action %q to be in KnownActions", action)
		}
	}
}

func TestKnownResources(t *testing.T) {
	// Verify all expected resources are in the known map
	expectedResources := []Resource{
		ResourceUser, ResourceAuthSession, ResourceRefreshToken, ResourceOTP,
		ResourceMedicalRequest, ResourceRequestItem, ResourceProvider, ResourceResultFile,
		ResourceNotification, ResourceNotificationPref,
		ResourcePayment, ResourcePlatformSetting,
		ResourceSystem, ResourceAudit, ResourceRBAC,
	}

	for _, resource := range expectedResources {
		if _, ok := KnownResources[resource]; !ok {
			t.Errorf("Expected resource %q to be in KnownResources", resource)
		}
	}
}

func TestKnownRoles(t *testing.T) {
	// Verify all expected roles are in the known map
	expectedRoles := []Role{
		RolePlatformAdmin,
		RolePatient, RoleDoctor,
		RoleProviderPharmacy, RoleProviderLaboratory, RoleProviderRadiology,
		RoleUserSelf,
	}

	for _, role := range expectedRoles {
		if _, ok := KnownRoles[role]; !ok {
			t.Errorf("Expected role %q to be in KnownRoles", role)
		}
	}
}

func TestProviderTypeToRole(t *testing.T) {
	tests := []struct {
		providerType string
		want         Role
	}{
		{"pharmacy", RoleProviderPharmacy},
		{"laboratory", RoleProviderLaboratory},
		{"radiology", RoleProviderRadiology},
	}

	for _, tt := range tests {
		got, ok := ProviderTypeToRole[tt.providerType]
		if !ok {
			t.Errorf("ProviderTypeToRole missing %q", tt.providerType)
			continue
		}
		if got != tt.want {
			t.Errorf("ProviderTypeToRole[%q] = %q, want %q", tt.providerType, got, tt.want)
		}
	}

	if _, ok := ProviderTypeToRole["hospital"]; ok {
		t.Error("ProviderTypeToRole should not contain unknown types")
	}
}
