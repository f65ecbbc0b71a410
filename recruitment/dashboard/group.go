package dashboard

import (
	"cmp"
	"slices"

	"github.com/Abraxas-365/crewdesk/recruitment/application"
)

// JobGroup is one bucket of the grouped-by-job view
type JobGroup struct {
	JobTitle     string                                `json:"job_title"`
	Count        int                                   `json:"count"`
	StatusCounts map[application.ApplicationStatus]int `json:"status_counts"`
	Applications []application.Application             `json:"applications"`
}

// GroupByJob buckets applications by their job title snapshot, largest
// group first. Ties are ordered by title.
func GroupByJob(apps []application.Application) []JobGroup {
	index := make(map[string]int)
	var groups []JobGroup

	for _, app := range apps {
		title := app.DisplayJobTitle()
		i, ok := index[title]
		if !ok {
			i = len(groups)
			index[title] = i
			groups = append(groups, newJobGroup(title))
		}
		groups[i].Count++
		groups[i].StatusCounts[app.Status]++
		groups[i].Applications = append(groups[i].Applications, app)
	}

	sortGroups(groups)
	if groups == nil {
		return []JobGroup{}
	}
	return groups
}

func newJobGroup(title string) JobGroup {
	counts := make(map[application.ApplicationStatus]int, len(application.Statuses))
	for _, s := range application.Statuses {
		counts[s] = 0
	}
	return JobGroup{
		JobTitle:     title,
		StatusCounts: counts,
	}
}

func sortGroups(groups []JobGroup) {
	slices.SortStableFunc(groups, func(a, b JobGroup) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return compareFold(a.JobTitle, b.JobTitle)
	})
}
