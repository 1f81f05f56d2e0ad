package records

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/emersion/go-vcard"
)

// fieldLastVisit is the extension property carrying the last visit value.
const fieldLastVisit = "X-LAST-VISIT"

var vcardDateLayouts = []string{"2006-01-02", "20060102", time.RFC3339}

func decodeVCards(r io.Reader) ([]Record, error) {
	dec := vcard.NewDecoder(r)
	var recs []Record
	for {
		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if len(recs) == 0 {
				return nil, fmt.Errorf("parse vcard records: %w", err)
			}
			// Keep what was decoded so far; a trailing broken card should not
			// hide the rest of the roster.
			slog.Warn("stopping at malformed vcard",
				"component", "records",
				"decoded", len(recs),
				"error", err)
			break
		}
		recs = append(recs, cardToRecord(card))
	}
	return recs, nil
}

func cardToRecord(card vcard.Card) Record {
	name := card.PreferredValue(vcard.FieldFormattedName)
	if name == "" {
		if n := card.Name(); n != nil {
			name = strings.TrimSpace(n.GivenName + " " + n.FamilyName)
		}
	}
	return Record{
		ID:        card.Value(vcard.FieldUID),
		Name:      name,
		DOB:       vcardDOB(card.Value(vcard.FieldBirthday)),
		Contact:   card.PreferredValue(vcard.FieldTelephone),
		LastVisit: card.Value(fieldLastVisit),
	}
}

// vcardDOB converts a vCard BDAY value to DD-MM-YYYY. Values it cannot read
// (for example year-less --MMDD dates) are kept verbatim.
func vcardDOB(value string) string {
	value = strings.TrimSpace(value)
	for _, layout := range vcardDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(DOBLayout)
		}
	}
	return value
}
