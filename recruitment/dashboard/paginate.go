package dashboard

import "slices"

// PageSizes are the selectable table sizes
var PageSizes = []int{10, 25, 50, 100}

const DefaultPageSize = 10

// Ellipsis marks a collapsed run of page numbers
const Ellipsis = 0

// PageInfo describes the window returned by Paginate
type PageInfo struct {
	Page        int   `json:"page"`
	PageSize    int   `json:"page_size"`
	TotalItems  int   `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	PageNumbers []int `json:"page_numbers"`
}

// NormalizePageSize falls back to the default for sizes outside PageSizes
func NormalizePageSize(size int) int {
	if slices.Contains(PageSizes, size) {
		return size
	}
	return DefaultPageSize
}

// Paginate slices items to the requested page. The page is clamped into
// range so an empty result set still reports page 1 of 1.
func Paginate[T any](items []T, page, size int) ([]T, PageInfo) {
	size = NormalizePageSize(size)
	total := len(items)

	pages := (total + size - 1) / size
	if pages < 1 {
		pages = 1
	}
	page = min(max(page, 1), pages)

	start := (page - 1) * size
	end := min(start+size, total)

	window := make([]T, 0, end-start)
	window = append(window, items[start:end]...)

	return window, PageInfo{
		Page:        page,
		PageSize:    size,
		TotalItems:  total,
		TotalPages:  pages,
		PageNumbers: PageNumbers(page, pages),
	}
}

// PageNumbers lists the page links to show. Up to five pages are all
// listed; beyond that the first, last and current±1 pages remain and each
// gap is a single Ellipsis.
func PageNumbers(current, total int) []int {
	if total < 1 {
		return []int{}
	}
	current = min(max(current, 1), total)

	if total <= 5 {
		out := make([]int, total)
		for i := range out {
			out[i] = i + 1
		}
		return out
	}

	out := []int{1}

	lo := max(current-1, 2)
	hi := min(current+1, total-1)

	if lo > 2 {
		out = append(out, Ellipsis)
	}
	for p := lo; p <= hi; p++ {
		out = append(out, p)
	}
	if hi < total-1 {
		out = append(out, Ellipsis)
	}

	return append(out, total)
}
