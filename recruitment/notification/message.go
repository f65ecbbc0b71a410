package notification

import (
	"fmt"
	"strings"

	"github.com/Abraxas-365/crewdesk/recruitment/application"
)

const dashboardPath = "/careers/admin"

// Subject is the notification subject line for app
func Subject(app *application.Application) string {
	return fmt.Sprintf("New application: %s - %s", app.Position, app.FullName)
}

// Body renders the plain-text notification for app
func Body(app *application.Application, baseURL string, attached bool) string {
	var b strings.Builder

	b.WriteString("A new crew application has been submitted.\n\n")

	line := func(label, value string) {
		if strings.TrimSpace(value) == "" {
			value = "-"
		}
		fmt.Fprintf(&b, "%-18s %s\n", label+":", value)
	}

	line("Name", app.FullName)
	line("Email", app.Email.String())
	line("Phone", app.Phone.String())
	line("Nationality", app.Nationality.String())
	if !app.DateOfBirth.IsZero() {
		line("Date of birth", app.DateOfBirth.Format("2006-01-02"))
	}
	line("Position", app.Position)
	line("Job", app.DisplayJobTitle())
	line("Experience", fmt.Sprintf("%d years", app.YearsExperience))
	line("Expected salary", fmt.Sprintf("%.2f %s", app.ExpectedSalary, app.SalaryCurrency))

	section := func(title, text string) {
		if strings.TrimSpace(text) == "" {
			return
		}
		fmt.Fprintf(&b, "\n%s\n%s\n", title, strings.TrimSpace(text))
	}

	section("Certificates", app.Certificates)
	section("Vessel history", app.VesselHistory)
	section("Cover letter", app.CoverLetter)

	switch {
	case attached:
		b.WriteString("\nThe candidate's resume is attached.\n")
	case app.HasResume():
		fmt.Fprintf(&b, "\nResume: %s\n", app.ResumeURL)
	}

	fmt.Fprintf(&b, "\nReview it in the dashboard: %s%s\n", strings.TrimRight(baseURL, "/"), dashboardPath)
	b.WriteString("Reply to this email to contact the candidate directly.\n")

	return b.String()
}
