package viewmodel

import (
	"fmt"

	"github.com/five82/roster/internal/records"
)

// View is everything a renderer needs for one frame.
type View struct {
	Page
	PageNumbers []int
	HasPrev     bool
	HasNext     bool
	Sort        SortSpec
	Query       string
	OpenMenu    string
}

// Derive runs the pipeline (filter, sort, paginate) for st over recs. It is
// pure: the same inputs always produce the same View.
func Derive(st State, recs []records.Record) View {
	st = Normalize(st, recs)
	ordered := Sort(Filter(recs, st.Query), st.Sort)
	page := Paginate(ordered, st.Page)
	return View{
		Page:        page,
		PageNumbers: PageNumbers(page.TotalPages),
		HasPrev:     page.Current > 1,
		HasNext:     page.Current < page.TotalPages,
		Sort:        st.Sort,
		Query:       st.Query,
		OpenMenu:    st.OpenMenu,
	}
}

// Footer is the results summary shown under the table, for example
// "Showing 1 to 11 of 15 results". An empty result reads "Showing 0 to 0
// of 0 results".
func (v View) Footer() string {
	first := v.RangeStart + 1
	if v.TotalCount == 0 {
		first = 0
	}
	return fmt.Sprintf("Showing %d to %d of %d results", first, v.RangeEnd, v.TotalCount)
}

// MenuOpenFor reports whether the action menu is open on the given record.
func (v View) MenuOpenFor(id string) bool {
	return id != "" && v.OpenMenu == id
}

// SortIndicator returns the arrow for column key, or "" when the table is
// not sorted by it.
func (v View) SortIndicator(key SortKey) string {
	if v.Sort.Key != key {
		return ""
	}
	if v.Sort.Order == Descending {
		return "▼"
	}
	return "▲"
}
