package viewmodel

import (
	"slices"

	"github.com/five82/roster/internal/records"
)

// SortKey names a sortable column.
type SortKey string

const (
	SortByID        SortKey = "id"
	SortByName      SortKey = "name"
	SortByDOB       SortKey = "dob"
	SortByLastVisit SortKey = "lastVisit"
)

// SortKeys lists the sortable columns in display order.
var SortKeys = []SortKey{SortByID, SortByName, SortByDOB, SortByLastVisit}

// ParseSortKey maps a column name to a SortKey, falling back to name.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(s); k {
	case SortByID, SortByName, SortByDOB, SortByLastVisit:
		return k
	}
	return SortByName
}

// Valid reports whether k is one of the known columns.
func (k SortKey) Valid() bool {
	return ParseSortKey(string(k)) == k
}

// SortOrder is the direction of a sort.
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

// Toggle flips the direction.
func (o SortOrder) Toggle() SortOrder {
	if o == Descending {
		return Ascending
	}
	return Descending
}

func (o SortOrder) String() string {
	if o == Descending {
		return "desc"
	}
	return "asc"
}

// SortSpec is the active sort column and direction.
type SortSpec struct {
	Key   SortKey
	Order SortOrder
}

// DefaultSort is name, ascending.
func DefaultSort() SortSpec {
	return SortSpec{Key: SortByName, Order: Ascending}
}

// Sort returns a sorted copy of recs.
//
// The comparator is two-way: it answers 1 when a sorts after b and -1
// otherwise, so equal keys count as "less" and their relative order is
// unspecified. Ids and last visits compare as plain strings, never as
// numbers. Dates of birth compare chronologically; values that do not parse
// as DD-MM-YYYY sort after every valid date in both directions.
func Sort(recs []records.Record, spec SortSpec) []records.Record {
	out := slices.Clone(recs)
	if out == nil {
		out = []records.Record{}
	}
	slices.SortFunc(out, comparator(spec))
	return out
}

func comparator(spec SortSpec) func(a, b records.Record) int {
	desc := spec.Order == Descending
	switch ParseSortKey(string(spec.Key)) {
	case SortByID:
		return func(a, b records.Record) int { return strictCompare(a.ID, b.ID, desc) }
	case SortByLastVisit:
		return func(a, b records.Record) int { return strictCompare(a.LastVisit, b.LastVisit, desc) }
	case SortByDOB:
		return func(a, b records.Record) int { return compareDOB(a, b, desc) }
	default:
		return func(a, b records.Record) int { return strictCompare(a.Name, b.Name, desc) }
	}
}

type ordered interface {
	~string | ~int64
}

// strictCompare is the a>b ? 1 : -1 comparator, mirrored for descending.
func strictCompare[T ordered](a, b T, desc bool) int {
	if desc {
		if a < b {
			return 1
		}
		return -1
	}
	if a > b {
		return 1
	}
	return -1
}

func compareDOB(a, b records.Record, desc bool) int {
	ta, okA := a.BirthDate()
	tb, okB := b.BirthDate()
	switch {
	case okA && okB:
		return strictCompare(ta.Unix(), tb.Unix(), desc)
	case okA:
		return -1
	case okB:
		return 1
	default:
		return -1
	}
}
