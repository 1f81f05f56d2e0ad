package logtail

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// Attr is one key/value pair from a structured log line, in file order.
type Attr struct {
	Key   string
	Value string
}

// Entry is a parsed slog JSON record.
type Entry struct {
	Time    time.Time
	Level   string
	Message string
	Attrs   []Attr
}

// ParseEntry decodes a line written by slog's JSON handler. It reports
// false for anything that is not a JSON object.
func ParseEntry(line string) (Entry, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "{") {
		return Entry{}, false
	}

	dec := json.NewDecoder(strings.NewReader(trimmed))
	dec.UseNumber()
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return Entry{}, false
	}

	var e Entry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Entry{}, false
		}
		key, ok := tok.(string)
		if !ok {
			return Entry{}, false
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return Entry{}, false
		}
		value := rawString(raw)

		switch key {
		case "time":
			if ts, err := time.Parse(time.RFC3339Nano, value); err == nil {
				e.Time = ts
			}
		case "level":
			e.Level = value
		case "msg":
			e.Message = value
		default:
			e.Attrs = append(e.Attrs, Attr{Key: key, Value: value})
		}
	}
	if tok, err := dec.Token(); err != nil || tok != json.Delim('}') {
		return Entry{}, false
	}
	return e, true
}

// FormatEntry renders a slog JSON line as "15:04:05 LEVEL msg k=v ...".
// Lines that are not JSON are returned unchanged.
func FormatEntry(line string) string {
	e, ok := ParseEntry(line)
	if !ok {
		return line
	}
	return e.String()
}

// FormatLines applies FormatEntry to every line.
func FormatLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = FormatEntry(line)
	}
	return out
}

func (e Entry) String() string {
	var b strings.Builder
	if !e.Time.IsZero() {
		b.WriteString(e.Time.Local().Format("15:04:05"))
		b.WriteByte(' ')
	}
	if e.Level != "" {
		b.WriteString(e.Level)
		b.WriteByte(' ')
	}
	b.WriteString(e.Message)
	for _, a := range e.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.String())
	}
	return strings.TrimRight(b.String(), " ")
}

// String renders the attribute as key=value, quoting values with blanks.
func (a Attr) String() string {
	if strings.ContainsAny(a.Value, " \t") {
		return a.Key + `="` + a.Value + `"`
	}
	return a.Key + "=" + a.Value
}

func rawString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err == nil {
		return compact.String()
	}
	return string(raw)
}
