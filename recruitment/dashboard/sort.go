package dashboard

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/Abraxas-365/crewdesk/recruitment/application"
	"github.com/Abraxas-365/crewdesk/recruitment/job"
)

// Direction of a sorted column. The zero value means unsorted.
type Direction string

const (
	DirectionNone Direction = ""
	DirectionAsc  Direction = "asc"
	DirectionDesc Direction = "desc"
)

// SortState is the single sorted column of a table
type SortState struct {
	Column    string    `json:"column,omitempty"`
	Direction Direction `json:"direction,omitempty"`
}

// ParseSortState reads a column and direction from request parameters.
// Anything unrecognised yields the unsorted state.
func ParseSortState(column, direction string) SortState {
	column = strings.TrimSpace(column)
	switch Direction(strings.ToLower(strings.TrimSpace(direction))) {
	case DirectionAsc:
		return SortState{Column: column, Direction: DirectionAsc}
	case DirectionDesc:
		return SortState{Column: column, Direction: DirectionDesc}
	}
	return SortState{}
}

// Toggle cycles asc, desc, none on the same column. Another column
// starts over at asc.
func (s SortState) Toggle(column string) SortState {
	if s.Column != column || s.Direction == DirectionNone {
		return SortState{Column: column, Direction: DirectionAsc}
	}
	if s.Direction == DirectionAsc {
		return SortState{Column: column, Direction: DirectionDesc}
	}
	return SortState{}
}

func (s SortState) IsSorted() bool {
	return s.Column != "" && s.Direction != DirectionNone
}

// ============================================================================
// Column comparators
// ============================================================================

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func compareTime(a, b time.Time) int {
	return a.Compare(b)
}

var applicationColumns = map[string]func(a, b *application.Application) int{
	"full_name":        func(a, b *application.Application) int { return compareFold(a.FullName, b.FullName) },
	"email":            func(a, b *application.Application) int { return compareFold(a.Email.String(), b.Email.String()) },
	"nationality":      func(a, b *application.Application) int { return compareFold(a.Nationality.String(), b.Nationality.String()) },
	"position":         func(a, b *application.Application) int { return compareFold(a.Position, b.Position) },
	"job_title":        func(a, b *application.Application) int { return compareFold(a.DisplayJobTitle(), b.DisplayJobTitle()) },
	"status":           func(a, b *application.Application) int { return compareFold(string(a.Status), string(b.Status)) },
	"years_experience": func(a, b *application.Application) int { return cmp.Compare(a.YearsExperience, b.YearsExperience) },
	"expected_salary":  func(a, b *application.Application) int { return cmp.Compare(a.ExpectedSalary, b.ExpectedSalary) },
	"date_of_birth":    func(a, b *application.Application) int { return compareTime(a.DateOfBirth, b.DateOfBirth) },
	"created_at":       func(a, b *application.Application) int { return compareTime(a.CreatedAt, b.CreatedAt) },
}

var jobColumns = map[string]func(a, b *job.Job) int{
	"title":        func(a, b *job.Job) int { return compareFold(string(a.Title), string(b.Title)) },
	"vessel_type":  func(a, b *job.Job) int { return compareFold(a.VesselType, b.VesselType) },
	"location":     func(a, b *job.Job) int { return compareFold(a.Location, b.Location) },
	"salary_range": func(a, b *job.Job) int { return compareFold(a.SalaryRange, b.SalaryRange) },
	"status":       func(a, b *job.Job) int { return compareFold(string(a.Status), string(b.Status)) },
	"created_at":   func(a, b *job.Job) int { return compareTime(a.CreatedAt, b.CreatedAt) },
	"updated_at":   func(a, b *job.Job) int { return compareTime(a.UpdatedAt, b.UpdatedAt) },
}

// IsApplicationColumn reports whether applications can be sorted by column
func IsApplicationColumn(column string) bool {
	_, ok := applicationColumns[column]
	return ok
}

func IsJobColumn(column string) bool {
	_, ok := jobColumns[column]
	return ok
}

// SortApplications returns a stably sorted copy. Unsorted state or an
// unknown column keeps the input order.
func SortApplications(apps []application.Application, state SortState) []application.Application {
	return sortBy(apps, state, applicationColumns)
}

// SortJobs returns a stably sorted copy of jobs
func SortJobs(jobs []job.Job, state SortState) []job.Job {
	return sortBy(jobs, state, jobColumns)
}

func sortBy[T any](items []T, state SortState, columns map[string]func(a, b *T) int) []T {
	out := slices.Clone(items)
	if !state.IsSorted() {
		return out
	}

	compare, ok := columns[state.Column]
	if !ok {
		return out
	}

	slices.SortStableFunc(out, func(a, b T) int {
		c := compare(&a, &b)
		if state.Direction == DirectionDesc {
			return -c
		}
		return c
	})
	return out
}
