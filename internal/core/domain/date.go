package domain

import (
	"encoding/json"
	"time"
)

// dateLayouts are the formats accepted from the data feed and the UI, in
// order of preference.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// Date is a calendar date as carried by the data feed and user forms.
// The raw string is retained even when it fails to parse: an invalid date is
// stored, reported back verbatim, and compares false against everything, so
// a malformed creationDate or transactionDate can never crash a
// reconciliation or aggregation pass.
type Date struct {
	raw   string
	t     time.Time
	valid bool
}

// ParseDate builds a Date from its string form. It never fails; an
// unparseable input yields a Date with Valid() == false.
func ParseDate(s string) Date {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{raw: s, t: t, valid: true}
		}
	}
	return Date{raw: s}
}

// NewDate builds a valid Date from a time.Time, truncated to the day.
func NewDate(t time.Time) Date {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return Date{raw: day.Format("2006-01-02"), t: day, valid: true}
}

// Valid reports whether the date parsed to a real calendar date.
func (d Date) Valid() bool { return d.valid }

// Time returns the parsed instant. Zero when invalid.
func (d Date) Time() time.Time { return d.t }

// IsZero reports whether the date carries neither a value nor a raw string.
func (d Date) IsZero() bool { return !d.valid && d.raw == "" }

func (d Date) String() string { return d.raw }

// After reports d > other. False whenever either side is invalid.
func (d Date) After(other Date) bool {
	if !d.valid || !other.valid {
		return false
	}
	return d.t.After(other.t)
}

// Between reports start <= d <= end, inclusive on both ends.
// False whenever d is invalid.
func (d Date) Between(start, end time.Time) bool {
	if !d.valid {
		return false
	}
	return !d.t.Before(start) && !d.t.After(end)
}

// MarshalJSON emits the raw string so invalid dates round-trip unchanged.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.raw)
}

// UnmarshalJSON accepts any JSON string and never reports an error for an
// unparseable date; the value simply becomes invalid.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*d = ParseDate(s)
	return nil
}
