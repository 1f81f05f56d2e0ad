package records

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnsupportedFormat is returned for files whose extension has no decoder.
	ErrUnsupportedFormat = errors.New("unsupported records format")
	// ErrDuplicateID is returned when two records share an identifier.
	ErrDuplicateID = errors.New("duplicate patient id")
)

// Format identifies an on-disk records encoding.
type Format string

const (
	FormatYAML  Format = "yaml"
	FormatTOML  Format = "toml"
	FormatJSON  Format = "json"
	FormatVCard Format = "vcard"
)

// document is the shared envelope for YAML, TOML and JSON record files.
type document struct {
	Patients []Record `json:"patients" toml:"patients" yaml:"patients"`
}

// DetectFormat maps a file extension to a Format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	case ".vcf", ".vcard":
		return FormatVCard, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Load reads and validates the records file at path.
func Load(path string) ([]Record, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	return Decode(bytes.NewReader(data), format)
}

// Decode parses records in the given format and validates them.
func Decode(r io.Reader, format Format) ([]Record, error) {
	var (
		recs []Record
		err  error
	)
	switch format {
	case FormatVCard:
		recs, err = decodeVCards(r)
	case FormatYAML, FormatTOML, FormatJSON:
		recs, err = decodeDocument(r, format)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}
	return validate(recs)
}

func decodeDocument(r io.Reader, format Format) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	var doc document
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s records: %w", format, err)
	}
	return doc.Patients, nil
}

// validate normalises every record, drops rows without an id and rejects
// duplicate ids. Input order is preserved.
func validate(recs []Record) ([]Record, error) {
	out := make([]Record, 0, len(recs))
	seen := make(map[string]struct{}, len(recs))
	for i, rec := range recs {
		rec = normalize(rec)
		if rec.ID == "" {
			slog.Warn("skipping record without id",
				"component", "records",
				"index", i,
				"name", rec.Name)
			continue
		}
		if _, dup := seen[rec.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, rec.ID)
		}
		seen[rec.ID] = struct{}{}
		out = append(out, rec)
	}
	return out, nil
}
