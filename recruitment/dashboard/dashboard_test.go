package dashboard

import (
	"reflect"
	"testing"
	"time"

	"github.com/Abraxas-365/crewdesk/pkg/iam/admin"
	"github.com/Abraxas-365/crewdesk/pkg/iam/session"
	"github.com/Abraxas-365/crewdesk/pkg/kernel"
	"github.com/Abraxas-365/crewdesk/recruitment/application"
	"github.com/Abraxas-365/crewdesk/recruitment/job"
)

var base = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func app(id, name string, status application.ApplicationStatus, title string, offset time.Duration) application.Application {
	return application.Application{
		ID:        kernel.ApplicationID(id),
		FullName:  name,
		Email:     kernel.Email(id + "@example.com"),
		Position:  "Deck Cadet",
		Status:    status,
		JobTitle:  kernel.JobTitle(title),
		CreatedAt: base.Add(offset),
	}
}

func ids(apps []application.Application) []string {
	out := make([]string, len(apps))
	for i, a := range apps {
		out[i] = a.ID.String()
	}
	return out
}

func TestSortState_Toggle(t *testing.T) {
	var s SortState

	s = s.Toggle("full_name")
	if s != (SortState{"full_name", DirectionAsc}) {
		t.Fatalf("first toggle: got %+v", s)
	}
	s = s.Toggle("full_name")
	if s != (SortState{"full_name", DirectionDesc}) {
		t.Fatalf("second toggle: got %+v", s)
	}
	s = s.Toggle("full_name")
	if s.IsSorted() {
		t.Fatalf("third toggle should clear sorting, got %+v", s)
	}

	s = SortState{"full_name", DirectionDesc}.Toggle("created_at")
	if s != (SortState{"created_at", DirectionAsc}) {
		t.Errorf("new column should reset to asc, got %+v", s)
	}
}

func TestSortApplications(t *testing.T) {
	apps := []application.Application{
		app("a", "bravo", application.ApplicationStatusPending, "", 2*time.Hour),
		app("b", "Alpha", application.ApplicationStatusPending, "", 0),
		app("c", "charlie", application.ApplicationStatusPending, "", time.Hour),
		app("d", "alpha", application.ApplicationStatusPending, "", 3*time.Hour),
	}

	tests := []struct {
		name  string
		state SortState
		want  []string
	}{
		{"case-insensitive asc, stable", SortState{"full_name", DirectionAsc}, []string{"b", "d", "a", "c"}},
		{"desc", SortState{"full_name", DirectionDesc}, []string{"c", "a", "b", "d"}},
		{"dates by instant", SortState{"created_at", DirectionAsc}, []string{"b", "c", "a", "d"}},
		{"none keeps order", SortState{}, []string{"a", "b", "c", "d"}},
		{"unknown column keeps order", SortState{"shoe_size", DirectionAsc}, []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(SortApplications(apps, tt.state))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	if apps[0].ID != "a" {
		t.Error("input slice must not be reordered")
	}
}

func TestSortApplications_Numeric(t *testing.T) {
	apps := []application.Application{
		{ID: "x", ExpectedSalary: 900},
		{ID: "y", ExpectedSalary: 10000},
		{ID: "z", ExpectedSalary: 2500},
	}
	got := ids(SortApplications(apps, SortState{"expected_salary", DirectionAsc}))
	if want := []string{"x", "z", "y"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSortJobs(t *testing.T) {
	jobs := []job.Job{
		{ID: "1", Title: "Second Officer"},
		{ID: "2", Title: "able seaman"},
		{ID: "3", Title: "Chief Cook"},
	}
	got := SortJobs(jobs, SortState{"title", DirectionAsc})
	var order []string
	for _, j := range got {
		order = append(order, j.ID.String())
	}
	if want := []string{"2", "3", "1"}; !reflect.DeepEqual(order, want) {
		t.Errorf("got %v, want %v", order, want)
	}
}

func TestPaginate(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i + 1
	}

	tests := []struct {
		name      string
		page      int
		size      int
		wantPage  int
		wantSize  int
		wantPages int
		wantFirst int
		wantLen   int
	}{
		{"first page", 1, 10, 1, 10, 3, 1, 10},
		{"last partial page", 3, 10, 3, 10, 3, 21, 3},
		{"page clamped high", 9, 10, 3, 10, 3, 21, 3},
		{"page clamped low", 0, 10, 1, 10, 3, 1, 10},
		{"size 25", 1, 25, 1, 25, 1, 1, 23},
		{"unsupported size falls back", 1, 7, 1, 10, 3, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window, info := Paginate(items, tt.page, tt.size)
			if info.Page != tt.wantPage || info.PageSize != tt.wantSize || info.TotalPages != tt.wantPages {
				t.Fatalf("unexpected info %+v", info)
			}
			if len(window) != tt.wantLen || window[0] != tt.wantFirst {
				t.Errorf("unexpected window %v", window)
			}
			if info.TotalItems != 23 {
				t.Errorf("total items: got %d", info.TotalItems)
			}
		})
	}
}

func TestPaginate_Empty(t *testing.T) {
	window, info := Paginate([]int{}, 4, 50)
	if len(window) != 0 || info.Page != 1 || info.TotalPages != 1 {
		t.Errorf("unexpected %v %+v", window, info)
	}
}

func TestPageNumbers(t *testing.T) {
	tests := []struct {
		current, total int
		want           []int
	}{
		{1, 1, []int{1}},
		{3, 5, []int{1, 2, 3, 4, 5}},
		{1, 10, []int{1, 2, 0, 10}},
		{5, 10, []int{1, 0, 4, 5, 6, 0, 10}},
		{3, 10, []int{1, 2, 3, 4, 0, 10}},
		{10, 10, []int{1, 0, 9, 10}},
		{9, 10, []int{1, 0, 8, 9, 10}},
		{1, 0, []int{}},
	}

	for _, tt := range tests {
		got := PageNumbers(tt.current, tt.total)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("PageNumbers(%d, %d) = %v, want %v", tt.current, tt.total, got, tt.want)
		}
	}
}

func TestGroupByJob(t *testing.T) {
	apps := []application.Application{
		app("1", "a", application.ApplicationStatusPending, "Bosun", 0),
		app("2", "b", application.ApplicationStatusShortlisted, "Oiler", 0),
		app("3", "c", application.ApplicationStatusPending, "", 0),
		app("4", "d", application.ApplicationStatusRejected, "Oiler", 0),
		app("5", "e", application.ApplicationStatusPending, "Oiler", 0),
		app("6", "f", application.ApplicationStatusReviewed, "", 0),
	}

	groups := GroupByJob(apps)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}

	var titles []string
	for _, g := range groups {
		titles = append(titles, g.JobTitle)
	}
	if want := []string{"Oiler", application.GeneralApplicationTitle, "Bosun"}; !reflect.DeepEqual(titles, want) {
		t.Errorf("group order: got %v, want %v", titles, want)
	}

	oiler := groups[0]
	if oiler.Count != 3 || len(oiler.Applications) != 3 {
		t.Errorf("oiler count: %+v", oiler)
	}
	if oiler.StatusCounts[application.ApplicationStatusPending] != 1 ||
		oiler.StatusCounts[application.ApplicationStatusRejected] != 1 ||
		oiler.StatusCounts[application.ApplicationStatusReviewed] != 0 {
		t.Errorf("oiler status counts: %v", oiler.StatusCounts)
	}

	if got := GroupByJob(nil); got == nil || len(got) != 0 {
		t.Errorf("empty input should give an empty, non-nil slice")
	}
}

func TestFilterApplications(t *testing.T) {
	a := app("1", "Juan dela Cruz", application.ApplicationStatusPending, "Oiler", 0)
	a.Nationality = "Filipino"
	b := app("2", "Ivan Petrov", application.ApplicationStatusReviewed, "", 0)
	b.Nationality = "Ukrainian"
	apps := []application.Application{a, b}

	tests := []struct {
		name   string
		filter ApplicationFilter
		want   []string
	}{
		{"empty", ApplicationFilter{}, []string{"1", "2"}},
		{"status", ApplicationFilter{Status: application.ApplicationStatusReviewed}, []string{"2"}},
		{"nationality folds case", ApplicationFilter{Nationality: " filipino "}, []string{"1"}},
		{"general bucket", ApplicationFilter{JobTitle: "general application"}, []string{"2"}},
		{"search name", ApplicationFilter{Search: "petrov"}, []string{"2"}},
		{"search email", ApplicationFilter{Search: "1@example"}, []string{"1"}},
		{"no match", ApplicationFilter{Search: "nobody"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(FilterApplications(apps, tt.filter))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCapabilities(t *testing.T) {
	viewer := admin.NewPendingAdmin("v", "viewer", "x")
	c := Capabilities(session.NewAdminSession("s", viewer))

	if !c.ApplicationsTab || !c.JobsTab || !c.ResumeDownload {
		t.Errorf("viewer should see read-only tabs: %+v", c)
	}
	if c.StatusSelect || c.BulkSelect || c.DeleteApplication || c.JobEditor || c.AdminsTab || c.SettingsTab {
		t.Errorf("viewer must not see mutating controls: %+v", c)
	}

	if got := Capabilities(nil); got != (Controls{}) {
		t.Errorf("nil session should hide everything, got %+v", got)
	}
}
