// Package viewmodel derives what the patient table shows from the record
// collection and the user's interaction state.
//
// # Pipeline
//
// Every frame is computed by Derive:
//
//	records ──Filter(query)──> matches ──Sort(spec)──> ordered ──Paginate(page)──> View
//
//   - Filter keeps records whose id, name or contact contains the query,
//     case-insensitively. Order is preserved.
//   - Sort orders by id, name, dob or lastVisit. Strings compare byte-wise
//     (ids are not numbers); dob compares as a calendar date. The comparator
//     is two-way (a>b ? 1 : -1), so equal keys have no guaranteed order.
//     Unparseable dates sort last in both directions.
//   - Paginate cuts fixed pages of PageSize (11) rows. There is always at
//     least one page, even for an empty result.
//
// # State and commands
//
// State holds the query, sort spec, current page and the id of the row whose
// action menu is open. It only changes through Reduce, which applies one
// Command per user gesture:
//
//	SetQuery{Query}  replace the filter text
//	SetSort{Key}     header click: same column toggles, new column resets to ascending
//	SetPage{Page}    jump, clamped to [1, TotalPages]
//	NextPage/PrevPage step, no-op at the edges
//	ToggleMenu{ID}   open for ID, or close if already open (one menu at most)
//	Dismiss          close any menu
//
// After every command the page is clamped against the filtered record count.
// Whether a query change also resets the page to 1 is controlled by
// Options.ResetPageOnQuery.
//
// # Page buttons
//
// PageNumbers always returns 1..min(5, TotalPages). The window is fixed and
// does not follow the current page.
//
// # Session
//
// Session bundles a State with its records for an event loop: Dispatch applies
// a command and returns the new View; Replace swaps records after a reload.
// Nothing in this package blocks or spawns goroutines.
package viewmodel
