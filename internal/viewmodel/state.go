package viewmodel

import "github.com/five82/roster/internal/records"

// State is the interaction state owned by one session. It is a plain value
// and can be stored or compared directly.
type State struct {
	Query string   `json:"query"`
	Sort  SortSpec `json:"sort"`
	Page  int      `json:"page"`
	// OpenMenu is the id of the record whose action menu is open, or "".
	OpenMenu string `json:"openMenu,omitempty"`
}

// NewState returns the initial state: no query, name ascending, page 1,
// no menu.
func NewState() State {
	return State{Sort: DefaultSort(), Page: 1}
}

// Options tune how commands are applied.
type Options struct {
	// ResetPageOnQuery sends the user back to page 1 whenever the query
	// changes. When false the page is only clamped to the new page count.
	ResetPageOnQuery bool
}

// DefaultOptions resets the page on query changes.
func DefaultOptions() Options {
	return Options{ResetPageOnQuery: true}
}

// Command is a single user gesture applied through Reduce.
type Command interface {
	command()
}

// SetQuery replaces the filter text.
type SetQuery struct{ Query string }

// SetSort is a click on a column header.
type SetSort struct{ Key SortKey }

// SetPage jumps to a page; out-of-range values are clamped.
type SetPage struct{ Page int }

// NextPage advances one page, stopping at the last.
type NextPage struct{}

// PrevPage goes back one page, stopping at the first.
type PrevPage struct{}

// ToggleMenu opens the action menu for ID, or closes it if it is already
// the open one.
type ToggleMenu struct{ ID string }

// Dismiss closes any open menu.
type Dismiss struct{}

func (SetQuery) command()   {}
func (SetSort) command()    {}
func (SetPage) command()    {}
func (NextPage) command()   {}
func (PrevPage) command()   {}
func (ToggleMenu) command() {}
func (Dismiss) command()    {}

// Reduce applies cmd to st and returns the new state. The page is clamped
// against the filtered record count before returning, so the result always
// satisfies 1 <= Page <= TotalPages.
func Reduce(st State, recs []records.Record, cmd Command, opts Options) State {
	switch c := cmd.(type) {
	case SetQuery:
		if c.Query != st.Query && opts.ResetPageOnQuery {
			st.Page = 1
		}
		st.Query = c.Query
	case SetSort:
		key := ParseSortKey(string(c.Key))
		if key == st.Sort.Key {
			st.Sort.Order = st.Sort.Order.Toggle()
		} else {
			st.Sort = SortSpec{Key: key, Order: Ascending}
		}
	case SetPage:
		st.Page = c.Page
	case NextPage:
		st.Page++
	case PrevPage:
		st.Page--
	case ToggleMenu:
		if c.ID == "" || st.OpenMenu == c.ID {
			st.OpenMenu = ""
		} else {
			st.OpenMenu = c.ID
		}
	case Dismiss:
		st.OpenMenu = ""
	}
	return Normalize(st, recs)
}

// Normalize repairs a state against a record collection: it substitutes the
// default sort key for unknown ones and clamps the page.
func Normalize(st State, recs []records.Record) State {
	if !st.Sort.Key.Valid() {
		st.Sort.Key = SortByName
	}
	st.Page = ClampPage(st.Page, TotalPages(countMatches(recs, st.Query)))
	return st
}

func countMatches(recs []records.Record, query string) int {
	if query == "" {
		return len(recs)
	}
	return len(Filter(recs, query))
}
