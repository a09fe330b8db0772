package models

// Role is a named tier determining an admin's default capabilities
type Role string

const (
	// RoleSuperAdmin holds every capability, including admin management
	RoleSuperAdmin Role = "super_admin"
	// RoleAdmin holds every capability except admin management and site settings
	RoleAdmin Role = "admin"
	// RoleEditor holds a minimal content-authoring subset
	RoleEditor Role = "editor"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleEditor:
		return true
	}
	return false
}

// CapabilityCategory groups capabilities in the admin UI
type CapabilityCategory string

const (
	CategoryPosts     CapabilityCategory = "posts"
	CategoryUsers     CapabilityCategory = "users"
	CategorySettings  CapabilityCategory = "settings"
	CategoryAnalytics CapabilityCategory = "analytics"
)

// Capability is a discrete named right an admin may hold
type Capability struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Category    CapabilityCategory `json:"category"`
}

// Capability IDs. The registry is fixed at build time; adding a capability
// or a role is a code change, never a config change.
const (
	CapCreatePosts      = "create_posts"
	CapEditPosts        = "edit_posts"
	CapDeletePosts      = "delete_posts"
	CapManageCategories = "manage_categories"
	CapManageStories    = "manage_stories"
	CapManageAdmins     = "manage_admins"
	CapViewAnalytics    = "view_analytics"
	CapSiteSettings     = "site_settings"
)

// AllCapabilities is the full capability registry in display order
var AllCapabilities = []Capability{
	{ID: CapCreatePosts, Name: "Create Posts", Description: "Can create new posts", Category: CategoryPosts},
	{ID: CapEditPosts, Name: "Edit Posts", Description: "Can edit existing posts", Category: CategoryPosts},
	{ID: CapDeletePosts, Name: "Delete Posts", Description: "Can delete posts", Category: CategoryPosts},
	{ID: CapManageCategories, Name: "Manage Categories", Description: "Can manage post categories", Category: CategoryPosts},
	{ID: CapManageStories, Name: "Manage Stories", Description: "Can create and manage stories", Category: CategoryPosts},
	{ID: CapManageAdmins, Name: "Manage Admins", Description: "Can add/remove admin users", Category: CategoryUsers},
	{ID: CapViewAnalytics, Name: "View Analytics", Description: "Can view site analytics", Category: CategoryAnalytics},
	{ID: CapSiteSettings, Name: "Site Settings", Description: "Can modify site settings", Category: CategorySettings},
}

// PermissionsFor returns the capability set for a role, in registry order.
// Unknown roles map to an empty set.
func PermissionsFor(role Role) []Capability {
	var caps []Capability
	for _, c := range AllCapabilities {
		if roleHolds(role, c) {
			caps = append(caps, c)
		}
	}
	return caps
}

func roleHolds(role Role, c Capability) bool {
	switch role {
	case RoleSuperAdmin:
		return true
	case RoleAdmin:
		return c.ID != CapManageAdmins && c.ID != CapSiteSettings
	case RoleEditor:
		return c.Category == CategoryPosts && c.ID != CapDeletePosts && c.ID != CapManageStories
	}
	return false
}

// RoleHasCapability reports whether role's template includes the capability
func RoleHasCapability(role Role, capabilityID string) bool {
	for _, c := range PermissionsFor(role) {
		if c.ID == capabilityID {
			return true
		}
	}
	return false
}

// CapabilityByID looks up a capability in the registry
func CapabilityByID(id string) (Capability, bool) {
	for _, c := range AllCapabilities {
		if c.ID == id {
			return c, true
		}
	}
	return Capability{}, false
}

// ValidSnapshot reports whether every capability id in snapshot belongs to
// the role's template. Per-user grants beyond the template are not supported.
func ValidSnapshot(role Role, snapshot []string) bool {
	for _, id := range snapshot {
		if !RoleHasCapability(role, id) {
			return false
		}
	}
	return true
}
