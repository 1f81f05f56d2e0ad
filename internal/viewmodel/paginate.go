package viewmodel

import (
	"fmt"

	"github.com/five82/roster/internal/records"
)

const (
	// PageSize is the fixed number of rows per page.
	PageSize = 11
	// MaxPageButtons caps the numbered page buttons.
	MaxPageButtons = 5
)

// Page is one window over an ordered record list.
type Page struct {
	Items      []records.Record
	Current    int
	TotalPages int
	TotalCount int
	// RangeStart is the zero-based index of the first item on the page.
	RangeStart int
	// RangeEnd is one past the last item, capped at TotalCount.
	RangeEnd int
}

// TotalPages returns ceil(count/PageSize), never less than 1.
func TotalPages(count int) int {
	if count <= 0 {
		return 1
	}
	return (count + PageSize - 1) / PageSize
}

// ClampPage bounds n to [1, totalPages].
func ClampPage(n, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if n < 1 {
		return 1
	}
	if n > totalPages {
		return totalPages
	}
	return n
}

// Paginate cuts the page-th window out of recs. Out-of-range pages are
// clamped first, so the result always describes a real page.
func Paginate(recs []records.Record, page int) Page {
	total := len(recs)
	pages := TotalPages(total)
	current := ClampPage(page, pages)

	start := (current - 1) * PageSize
	end := min(start+PageSize, total)
	items := []records.Record{}
	if start < end {
		items = recs[start:end:end]
	}
	return Page{
		Items:      items,
		Current:    current,
		TotalPages: pages,
		TotalCount: total,
		RangeStart: start,
		RangeEnd:   end,
	}
}

// PageNumbers returns the numbered buttons: always 1..min(5, totalPages).
// The window does not follow the current page; later pages are reached
// with Next and Previous.
func PageNumbers(totalPages int) []int {
	n := min(MaxPageButtons, max(totalPages, 1))
	nums := make([]int, n)
	for i := range nums {
		nums[i] = i + 1
	}
	return nums
}

// PageLabel formats a page button number with two digits.
func PageLabel(n int) string {
	return fmt.Sprintf("%02d", n)
}
