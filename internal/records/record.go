package records

import (
	"strconv"
	"strings"
	"time"
)

// DOBLayout is the display and input layout for dates of birth.
const DOBLayout = "02-01-2006"

// NeverVisited marks a patient without a recorded visit.
const NeverVisited = "-"

// Record is one patient row. Records are read-only once loaded.
type Record struct {
	ID        string `json:"id" toml:"id" yaml:"id"`
	Name      string `json:"name" toml:"name" yaml:"name"`
	DOB       string `json:"dob" toml:"dob" yaml:"dob"`
	Contact   string `json:"contact" toml:"contact" yaml:"contact"`
	LastVisit string `json:"lastVisit" toml:"last_visit" yaml:"lastVisit"`
	Avatar    string `json:"avatar" toml:"avatar" yaml:"avatar"`
}

// BirthDate parses DOB as DD-MM-YYYY. The second return value is false for
// anything that is not a real calendar date.
func (r Record) BirthDate() (time.Time, bool) {
	return ParseDOB(r.DOB)
}

// HasVisited reports whether LastVisit holds an actual visit.
func (r Record) HasVisited() bool {
	v := strings.TrimSpace(r.LastVisit)
	return v != "" && v != NeverVisited
}

// ParseDOB parses a DD-MM-YYYY date. Day and month may omit the leading
// zero; the year must have four digits.
func ParseDOB(value string) (time.Time, bool) {
	parts := strings.Split(strings.TrimSpace(value), "-")
	if len(parts) != 3 || len(parts[2]) != 4 {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, false
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// 31-02 and friends normalise into the next month.
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}

// Initials derives an avatar label from a display name: the first letter of
// the first and last words, upper-cased.
func Initials(name string) string {
	words := strings.Fields(name)
	switch len(words) {
	case 0:
		return ""
	case 1:
		return strings.ToUpper(string([]rune(words[0])[:1]))
	}
	first := []rune(words[0])[:1]
	last := []rune(words[len(words)-1])[:1]
	return strings.ToUpper(string(first) + string(last))
}

// normalize fills derived fields and trims whitespace around every value.
func normalize(r Record) Record {
	r.ID = strings.TrimSpace(r.ID)
	r.Name = strings.TrimSpace(r.Name)
	r.DOB = strings.TrimSpace(r.DOB)
	r.Contact = strings.TrimSpace(r.Contact)
	r.LastVisit = strings.TrimSpace(r.LastVisit)
	if r.LastVisit == "" {
		r.LastVisit = NeverVisited
	}
	r.Avatar = strings.TrimSpace(r.Avatar)
	if r.Avatar == "" {
		r.Avatar = Initials(r.Name)
	}
	return r
}
