package admin

// Category is a resource family that permissions are granted on
type Category string

const (
	CategoryApplications Category = "applications"
	CategoryJobs         Category = "jobs"
	CategoryAdmins       Category = "admins"
	CategorySettings     Category = "settings"
)

// Categories lists every category in display order
var Categories = []Category{
	CategoryApplications,
	CategoryJobs,
	CategoryAdmins,
	CategorySettings,
}

// Capability is an action within a category
type Capability string

const (
	CapabilityView   Capability = "view"
	CapabilityEdit   Capability = "edit"
	CapabilityDelete Capability = "delete"
)

var Capabilities = []Capability{
	CapabilityView,
	CapabilityEdit,
	CapabilityDelete,
}

// CapabilitySet holds the grants of one category
type CapabilitySet struct {
	View   bool `json:"view"`
	Edit   bool `json:"edit"`
	Delete bool `json:"delete"`
}

func (cs CapabilitySet) Has(capability Capability) bool {
	switch capability {
	case CapabilityView:
		return cs.View
	case CapabilityEdit:
		return cs.Edit
	case CapabilityDelete:
		return cs.Delete
	default:
		return false
	}
}

var (
	fullAccess = CapabilitySet{View: true, Edit: true, Delete: true}
	viewOnly   = CapabilitySet{View: true}
	viewEdit   = CapabilitySet{View: true, Edit: true}
	noAccess   = CapabilitySet{}
)

// Permissions is the fixed four by three grant matrix of an admin
type Permissions struct {
	Applications CapabilitySet `json:"applications"`
	Jobs         CapabilitySet `json:"jobs"`
	Admins       CapabilitySet `json:"admins"`
	Settings     CapabilitySet `json:"settings"`
}

// For returns the grants of category. Unknown categories grant nothing.
func (p Permissions) For(category Category) CapabilitySet {
	switch category {
	case CategoryApplications:
		return p.Applications
	case CategoryJobs:
		return p.Jobs
	case CategoryAdmins:
		return p.Admins
	case CategorySettings:
		return p.Settings
	default:
		return noAccess
	}
}

// Allows is the single permission lookup; anything not explicitly granted is denied
func (p Permissions) Allows(category Category, capability Capability) bool {
	return p.For(category).Has(capability)
}

// TemplateFor returns the default grants of role
func TemplateFor(role Role) Permissions {
	switch role {
	case RoleSuperAdmin:
		return Permissions{
			Applications: fullAccess,
			Jobs:         fullAccess,
			Admins:       fullAccess,
			Settings:     fullAccess,
		}
	case RoleAdmin:
		return Permissions{
			Applications: fullAccess,
			Jobs:         fullAccess,
			Admins:       noAccess,
			Settings:     viewEdit,
		}
	case RoleViewer:
		return Permissions{
			Applications: viewOnly,
			Jobs:         viewOnly,
		}
	default:
		return Permissions{}
	}
}
