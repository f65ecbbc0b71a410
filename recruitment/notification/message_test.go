package notification

import (
	"strings"
	"testing"

	"github.com/Abraxas-365/crewdesk/recruitment/application"
)

func TestBody(t *testing.T) {
	app := &application.Application{
		FullName:       "Ana Reyes",
		Email:          "ana@example.com",
		Position:       "Chief Cook",
		ExpectedSalary: 2500,
		SalaryCurrency: "USD",
		CoverLetter:    "  Ten years on tankers.  ",
	}

	body := Body(app, "https://crew.example.com", false)

	for _, want := range []string{
		"Ana Reyes",
		"ana@example.com",
		"2500.00 USD",
		application.GeneralApplicationTitle,
		"Cover letter\nTen years on tankers.",
		"https://crew.example.com/careers/admin",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
	if strings.Contains(body, "Vessel history") {
		t.Errorf("empty sections should be omitted")
	}
	if got := Subject(app); got != "New application: Chief Cook - Ana Reyes" {
		t.Errorf("unexpected subject %q", got)
	}
}
