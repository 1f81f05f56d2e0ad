package records

import (
	"bytes"
	_ "embed"
)

//go:embed sample.yaml
var sampleYAML []byte

// Sample returns the built-in demo roster.
func Sample() []Record {
	recs, err := Decode(bytes.NewReader(sampleYAML), FormatYAML)
	if err != nil {
		panic("records: embedded sample is invalid: " + err.Error())
	}
	return recs
}
