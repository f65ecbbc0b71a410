package dashboard

import (
	"github.com/Abraxas-365/crewdesk/pkg/iam/admin"
	"github.com/Abraxas-365/crewdesk/pkg/iam/auth"
	"github.com/Abraxas-365/crewdesk/pkg/iam/session"
)

// Controls tells the dashboard which controls to render. A false field
// means the control is hidden, not disabled.
type Controls struct {
	ApplicationsTab    bool `json:"applications_tab"`
	StatusSelect       bool `json:"status_select"`
	BulkStatus         bool `json:"bulk_status"`
	ResendNotification bool `json:"resend_notification"`
	ResumeDownload     bool `json:"resume_download"`
	DeleteApplication  bool `json:"delete_application"`
	BulkSelect         bool `json:"bulk_select"`
	JobsTab            bool `json:"jobs_tab"`
	JobEditor          bool `json:"job_editor"`
	DeleteJob          bool `json:"delete_job"`
	AdminsTab          bool `json:"admins_tab"`
	AdminApproval      bool `json:"admin_approval"`
	DeleteAdmin        bool `json:"delete_admin"`
	SettingsTab        bool `json:"settings_tab"`
	SettingsEditor     bool `json:"settings_editor"`
	DeleteSetting      bool `json:"delete_setting"`
}

// Capabilities derives the visible controls from the cached session. A nil
// session sees nothing.
func Capabilities(sess *session.AdminSession) Controls {
	can := func(category admin.Category, capability admin.Capability) bool {
		return auth.Authorize(sess, category, capability)
	}

	return Controls{
		ApplicationsTab:    can(admin.CategoryApplications, admin.CapabilityView),
		StatusSelect:       can(admin.CategoryApplications, admin.CapabilityEdit),
		BulkStatus:         can(admin.CategoryApplications, admin.CapabilityEdit),
		ResendNotification: can(admin.CategoryApplications, admin.CapabilityEdit),
		ResumeDownload:     can(admin.CategoryApplications, admin.CapabilityView),
		DeleteApplication:  can(admin.CategoryApplications, admin.CapabilityDelete),
		BulkSelect:         can(admin.CategoryApplications, admin.CapabilityDelete),
		JobsTab:            can(admin.CategoryJobs, admin.CapabilityView),
		JobEditor:          can(admin.CategoryJobs, admin.CapabilityEdit),
		DeleteJob:          can(admin.CategoryJobs, admin.CapabilityDelete),
		AdminsTab:          can(admin.CategoryAdmins, admin.CapabilityView),
		AdminApproval:      can(admin.CategoryAdmins, admin.CapabilityEdit),
		DeleteAdmin:        can(admin.CategoryAdmins, admin.CapabilityDelete),
		SettingsTab:        can(admin.CategorySettings, admin.CapabilityView),
		SettingsEditor:     can(admin.CategorySettings, admin.CapabilityEdit),
		DeleteSetting:      can(admin.CategorySettings, admin.CapabilityDelete),
	}
}
