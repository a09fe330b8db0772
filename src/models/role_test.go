package models

import (
	"testing"

	"github.com/google/uuid"
)

func capabilityIDSet(caps []Capability) map[string]bool {
	set := make(map[string]bool, len(caps))
	for _, c := range caps {
		set[c.ID] = true
	}
	return set
}

func TestPermissionsFor_SupersetChain(t *testing.T) {
	superAdmin := capabilityIDSet(PermissionsFor(RoleSuperAdmin))
	admin := capabilityIDSet(PermissionsFor(RoleAdmin))
	editor := capabilityIDSet(PermissionsFor(RoleEditor))

	// super_admin ⊃ admin ⊃ editor, strictly
	for id := range admin {
		if !superAdmin[id] {
			t.Errorf("admin capability %q missing from super_admin", id)
		}
	}
	for id := range editor {
		if !admin[id] {
			t.Errorf("editor capability %q missing from admin", id)
		}
	}
	if len(superAdmin) <= len(admin) {
		t.Errorf("expected super_admin (%d) to hold strictly more capabilities than admin (%d)", len(superAdmin), len(admin))
	}
	if len(admin) <= len(editor) {
		t.Errorf("expected admin (%d) to hold strictly more capabilities than editor (%d)", len(admin), len(editor))
	}
}

func TestPermissionsFor_SuperAdminHoldsFullRegistry(t *testing.T) {
	caps := PermissionsFor(RoleSuperAdmin)
	if len(caps) != len(AllCapabilities) {
		t.Fatalf("expected %d capabilities, got %d", len(AllCapabilities), len(caps))
	}
}

func TestPermissionsFor_AdminExclusions(t *testing.T) {
	admin := capabilityIDSet(PermissionsFor(RoleAdmin))
	if admin[CapManageAdmins] {
		t.Error("admin must not hold manage_admins")
	}
	if admin[CapSiteSettings] {
		t.Error("admin must not hold site_settings")
	}
}

func TestPermissionsFor_EditorSubset(t *testing.T) {
	editor := PermissionsFor(RoleEditor)
	for _, c := range editor {
		if c.Category != CategoryPosts {
			t.Errorf("editor capability %q outside posts category", c.ID)
		}
	}
	set := capabilityIDSet(editor)
	if set[CapDeletePosts] {
		t.Error("editor must not hold delete_posts")
	}
	if !set[CapCreatePosts] || !set[CapEditPosts] {
		t.Error("editor must hold create_posts and edit_posts")
	}
}

func TestPermissionsFor_UnknownRole(t *testing.T) {
	if caps := PermissionsFor(Role("viewer")); len(caps) != 0 {
		t.Errorf("expected empty capability set for unknown role, got %d", len(caps))
	}
}

func TestRoleHasCapability(t *testing.T) {
	tests := []struct {
		role       Role
		capability string
		want       bool
	}{
		{RoleSuperAdmin, CapManageAdmins, true},
		{RoleAdmin, CapManageAdmins, false},
		{RoleAdmin, CapDeletePosts, true},
		{RoleEditor, CapDeletePosts, false},
		{RoleEditor, CapCreatePosts, true},
		{RoleEditor, "nonexistent", false},
	}

	for _, tt := range tests {
		if got := RoleHasCapability(tt.role, tt.capability); got != tt.want {
			t.Errorf("RoleHasCapability(%s, %s) = %v, want %v", tt.role, tt.capability, got, tt.want)
		}
	}
}

func TestValidSnapshot(t *testing.T) {
	if !ValidSnapshot(RoleEditor, []string{CapCreatePosts, CapEditPosts}) {
		t.Error("expected editor subset to be valid")
	}
	if ValidSnapshot(RoleEditor, []string{CapCreatePosts, CapManageAdmins}) {
		t.Error("expected snapshot exceeding the editor template to be invalid")
	}
	if !ValidSnapshot(RoleSuperAdmin, nil) {
		t.Error("expected empty snapshot to be valid")
	}
}

func TestAdminUser_HasCapability(t *testing.T) {
	admin := &AdminUser{
		ID:          uuid.New(),
		Role:        RoleEditor,
		Permissions: []string{CapCreatePosts},
		IsActive:    true,
	}

	if !admin.HasCapability(CapCreatePosts) {
		t.Error("expected active admin to hold snapshot capability")
	}
	if admin.HasCapability(CapEditPosts) {
		t.Error("expected capability outside snapshot to answer false")
	}

	admin.IsActive = false
	if admin.HasCapability(CapCreatePosts) {
		t.Error("expected inactive admin to hold no capabilities")
	}

	var nilAdmin *AdminUser
	if nilAdmin.HasCapability(CapCreatePosts) {
		t.Error("expected nil admin to hold no capabilities")
	}
}

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleSuperAdmin, RoleAdmin, RoleEditor} {
		if !r.Valid() {
			t.Errorf("expected %s to be valid", r)
		}
	}
	if Role("root").Valid() {
		t.Error("expected unknown role to be invalid")
	}
}
