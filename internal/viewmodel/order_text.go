package viewmodel

import "fmt"

// MarshalText encodes the order as "asc" or "desc".
func (o SortOrder) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText accepts "asc", "desc" or an empty string (ascending).
func (o *SortOrder) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "asc":
		*o = Ascending
	case "desc":
		*o = Descending
	default:
		return fmt.Errorf("unknown sort order %q", text)
	}
	return nil
}
