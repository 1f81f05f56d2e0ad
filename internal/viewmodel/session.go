package viewmodel

import (
	"slices"

	"github.com/five82/roster/internal/records"
)

// Session couples a State with the record collection it is applied to.
// A Session is driven by a single event loop and is not safe for
// concurrent use.
type Session struct {
	state   State
	records []records.Record
	opts    Options
}

// NewSession starts a session over recs with the initial state.
func NewSession(recs []records.Record, opts Options) *Session {
	s := &Session{opts: opts}
	s.records = slices.Clone(recs)
	s.state = Normalize(NewState(), s.records)
	return s
}

// Dispatch applies cmd and returns the freshly derived view.
func (s *Session) Dispatch(cmd Command) View {
	s.state = Reduce(s.state, s.records, cmd, s.opts)
	return s.View()
}

// View derives the current view without changing state.
func (s *Session) View() View {
	return Derive(s.state, s.records)
}

// State returns a copy of the interaction state.
func (s *Session) State() State {
	return s.state
}

// Restore replaces the interaction state, repairing it against the current
// records.
func (s *Session) Restore(st State) {
	s.state = Normalize(st, s.records)
}

// Len returns the number of records in the session.
func (s *Session) Len() int {
	return len(s.records)
}

// Replace swaps in a new record collection, for example after the backing
// file changed. Interaction state is kept; only the page is clamped.
func (s *Session) Replace(recs []records.Record) {
	s.records = slices.Clone(recs)
	s.state = Normalize(s.state, s.records)
}

// Lookup returns the record with the given id.
func (s *Session) Lookup(id string) (records.Record, bool) {
	for _, rec := range s.records {
		if rec.ID == id {
			return rec, true
		}
	}
	return records.Record{}, false
}
