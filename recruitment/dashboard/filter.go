package dashboard

import (
	"strings"

	"github.com/Abraxas-365/crewdesk/pkg/kernel"
	"github.com/Abraxas-365/crewdesk/recruitment/application"
)

// ApplicationFilter narrows the applications table. Empty fields match all.
type ApplicationFilter struct {
	Status      application.ApplicationStatus
	Nationality kernel.Nationality
	JobTitle    string
	Search      string
}

func (f ApplicationFilter) IsEmpty() bool {
	return f.Status == "" && f.Nationality == "" && f.JobTitle == "" && strings.TrimSpace(f.Search) == ""
}

// FilterApplications keeps the applications matching every set field.
// Search looks at name, email and position.
func FilterApplications(apps []application.Application, f ApplicationFilter) []application.Application {
	out := make([]application.Application, 0, len(apps))
	search := strings.ToLower(strings.TrimSpace(f.Search))

	for _, app := range apps {
		if f.Status != "" && app.Status != f.Status {
			continue
		}
		if f.Nationality != "" && !app.Nationality.Equal(f.Nationality) {
			continue
		}
		if f.JobTitle != "" && !strings.EqualFold(strings.TrimSpace(f.JobTitle), app.DisplayJobTitle()) {
			continue
		}
		if search != "" && !matchesSearch(&app, search) {
			continue
		}
		out = append(out, app)
	}
	return out
}

func matchesSearch(app *application.Application, needle string) bool {
	for _, field := range []string{app.FullName, app.Email.String(), app.Position} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
