// Package records defines the patient Record and loads record collections.
//
// Records come from one of two places: the embedded demo roster (sample.yaml,
// the fifteen patients of the original dashboard) or a file chosen in the
// config. Files are decoded by extension:
//
//   - .yaml/.yml: a top-level "patients" list (gopkg.in/yaml.v3)
//   - .toml: [[patients]] tables (go-toml/v2)
//   - .json: {"patients": [...]}
//   - .vcf/.vcard: one patient per card (go-vcard). UID, FN, BDAY, TEL and
//     X-LAST-VISIT map onto the record fields; BDAY is rewritten to DD-MM-YYYY.
//
// Every loaded record is normalised: values are trimmed, an empty LastVisit
// becomes "-", and a missing Avatar is derived from the name. Records without
// an id are skipped; a repeated id fails the whole load with ErrDuplicateID.
package records
