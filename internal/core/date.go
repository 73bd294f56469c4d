package core

import (
	"encoding/json"
	"strings"
	"time"
)

// dateLayouts are the forms the original app persisted: a plain calendar
// date, or a full timestamp straight from the date picker.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// Date is a calendar date plus the raw text it was stored as. Unparsable
// text round-trips through the blob untouched but reports an unknown date,
// so it never matches a period filter.
type Date struct {
	time.Time
	raw string
}

// NewDate builds a known date from year, 1-indexed month, and day.
func NewDate(year, month, day int) Date {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return Date{Time: t, raw: t.Format("2006-01-02")}
}

// ParseDate interprets stored date text. Anything unparsable yields an
// unknown date that keeps the original text for storage.
func ParseDate(s string) Date {
	trimmed := strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return Date{Time: t, raw: s}
		}
	}
	return Date{raw: s}
}

// Known reports whether the text parsed to a real calendar date.
func (d Date) Known() bool {
	return !d.IsZero()
}

// Year returns the calendar year, or 0 for an unknown date.
func (d Date) Year() int {
	if d.IsZero() {
		return 0
	}
	return d.Time.Year()
}

// Month returns the 1-indexed month, or 0 for an unknown date.
func (d Date) Month() int {
	if d.IsZero() {
		return 0
	}
	return int(d.Time.Month())
}

// String renders the date for display, trimming any time component.
func (d Date) String() string {
	if !d.Known() {
		return "unknown"
	}
	return d.Time.Format("2006-01-02")
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.raw != "" {
		return json.Marshal(d.raw)
	}
	if d.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(d.Time.Format("2006-01-02"))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// Legacy blobs are lenient about dates; a non-string value is
		// simply unknown.
		*d = Date{}
		return nil
	}
	*d = ParseDate(s)
	return nil
}
