package viewmodel

import (
	"strings"

	"github.com/five82/roster/internal/records"
)

// Filter keeps the records whose id, name or contact contains query,
// ignoring case. Order is preserved and an empty query keeps everything.
// The query is used as typed; surrounding whitespace is significant.
func Filter(recs []records.Record, query string) []records.Record {
	out := make([]records.Record, 0, len(recs))
	if query == "" {
		return append(out, recs...)
	}
	needle := strings.ToLower(query)
	for _, rec := range recs {
		if Matches(rec, needle) {
			out = append(out, rec)
		}
	}
	return out
}

// Matches reports whether the lower-cased needle occurs in one of the
// searchable fields. Date of birth and last visit are not searched.
func Matches(rec records.Record, needle string) bool {
	return strings.Contains(strings.ToLower(rec.Name), needle) ||
		strings.Contains(strings.ToLower(rec.ID), needle) ||
		strings.Contains(strings.ToLower(rec.Contact), needle)
}
