// Package ui provides the terminal user interface for roster.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model owns a viewmodel.Session and renders
// whatever View the session last produced; every key that changes what is
// shown (search, sort, paging, row menus) is turned into a viewmodel command
// and dispatched. The table widget only moves the cursor within the page.
//
// # Package Structure
//
//   - app.go: Model, Update loop, messages, commands and Run
//   - table.go: patient table columns, rows and sizing
//   - header.go, footer.go, status.go, view.go: screen sections
//   - search.go: live search input
//   - modal.go, detail.go: row action menu and record details
//   - activity.go: in-app view of the JSON log file
//   - help.go, keys.go: key bindings and the help overlay
//   - theme.go, style_helpers.go, box.go: colors and drawing helpers
//
// # Event Flow
//
//  1. Run starts the program; Init schedules the refresh tick
//  2. Each tick fetches a state.Store snapshot; a new generation replaces
//     the session's records while query, sort and page are kept
//  3. Keys map to viewmodel commands; the returned View drives the table,
//     footer and pager
//  4. Context cancellation stops the program
//
// # Key Bindings
//
//   - /: Search by name, ID or contact
//   - i/n/d/v: Sort by ID, name, date of birth, last visit (again to reverse)
//   - left/right, [ ]: Previous/next page; 1-5 jump to a page
//   - enter/m: Row actions; esc closes the menu
//   - y: Copy the patient ID
//   - L: Activity log; T: Cycle theme; ?: Help; q: Quit
package ui
