package forms

import (
	"fmt"
	"strings"
	"time"
)

// isoLayout matches the millisecond UTC timestamps the API stores.
const isoLayout = "2006-01-02T15:04:05.000Z"

var inputLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
	"2006-01",
}

// NormalizeDate converts a user-entered date into an ISO-8601 timestamp.
// An empty input yields nil.
func NormalizeDate(s string) (*string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	out := t.UTC().Format(isoLayout)
	return &out, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// dateField returns the editable form value for a stored timestamp.
func dateField(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// normalizeRange normalizes a start/end pair, recording errors on ve. A nil end
// is always accepted.
func normalizeRange(ve *ValidationError, startField, start, endField, end string) (*string, *string) {
	startISO, err := NormalizeDate(start)
	if err != nil {
		ve.add(startField, "must be a valid date")
	}
	endISO, err := NormalizeDate(end)
	if err != nil {
		ve.add(endField, "must be a valid date")
	}

	if startISO != nil && endISO != nil && *endISO < *startISO {
		ve.add(endField, fmt.Sprintf("cannot be before %s", startField))
	}
	return startISO, endISO
}
