package auth

import "github.com/Abraxas-365/crewdesk/pkg/iam/admin"

// ============================================================================
// PERMISSION SCOPES - string form of the admin permission matrix
// ============================================================================

const (
	// Application scopes
	ScopeApplicationsView   = "applications:view"
	ScopeApplicationsEdit   = "applications:edit"
	ScopeApplicationsDelete = "applications:delete"

	// Job scopes
	ScopeJobsView   = "jobs:view"
	ScopeJobsEdit   = "jobs:edit"
	ScopeJobsDelete = "jobs:delete"

	// Admin management scopes
	ScopeAdminsView   = "admins:view"
	ScopeAdminsEdit   = "admins:edit"
	ScopeAdminsDelete = "admins:delete"

	// Settings scopes (recipients, agencies, option lists)
	ScopeSettingsView   = "settings:view"
	ScopeSettingsEdit   = "settings:edit"
	ScopeSettingsDelete = "settings:delete"
)

// ScopeCategories organizes scopes for display
var ScopeCategories = map[string][]string{
	"Applications": {
		ScopeApplicationsView,
		ScopeApplicationsEdit,
		ScopeApplicationsDelete,
	},
	"Jobs": {
		ScopeJobsView,
		ScopeJobsEdit,
		ScopeJobsDelete,
	},
	"Admins": {
		ScopeAdminsView,
		ScopeAdminsEdit,
		ScopeAdminsDelete,
	},
	"Settings": {
		ScopeSettingsView,
		ScopeSettingsEdit,
		ScopeSettingsDelete,
	},
}

// Scope returns the scope string of a category and capability
func Scope(category admin.Category, capability admin.Capability) string {
	return string(category) + ":" + string(capability)
}

// ScopesOf flattens a permission matrix into the scopes it grants
func ScopesOf(perms admin.Permissions) []string {
	scopes := make([]string, 0, len(admin.Categories)*len(admin.Capabilities))
	for _, category := range admin.Categories {
		for _, capability := range admin.Capabilities {
			if perms.Allows(category, capability) {
				scopes = append(scopes, Scope(category, capability))
			}
		}
	}
	return scopes
}
