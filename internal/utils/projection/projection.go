// Package projection turns a record collection into the ordered, filtered
// sequence the table views display: stable column sort plus a composed
// text/date-range filter.
package projection

import (
	"sort"
	"strings"

	"github.com/findash/finance_dashboard_app/internal/core/domain"
)

// minSearchLength is the query length below which the text filter is a no-op.
const minSearchLength = 3

// SortDirection orders a sorted column.
type SortDirection string

const (
	Ascending  SortDirection = "ASC"
	Descending SortDirection = "DESC"
)

// SortState is the table's current sort configuration. The zero value means
// unsorted.
type SortState struct {
	Column    string
	Direction SortDirection
}

// Toggle returns the sort state after a click on a column header: clicking
// the sorted column flips ASC to DESC and back, clicking a new column resets
// to ASC.
func (s SortState) Toggle(column string) SortState {
	if s.Column == column && s.Direction == Ascending {
		return SortState{Column: column, Direction: Descending}
	}
	return SortState{Column: column, Direction: Ascending}
}

// Filter is the composed table filter. Search matches case-insensitively as
// a substring once it reaches the minimum length; From/To bound the record
// creation date inclusively, with an unset bound open on that side.
type Filter struct {
	Search string
	From   domain.Date
	To     domain.Date
}

// MatchText reports whether the query matches any of the fields. Queries
// shorter than the threshold match everything.
func MatchText(query string, fields ...string) bool {
	if len(query) < minSearchLength {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// InDateRange reports whether d falls inside the inclusive [from, to] range.
// An invalid or unset bound is open. A record whose own date is invalid
// passes only when no bound is set at all.
func InDateRange(d domain.Date, from, to domain.Date) bool {
	if !from.Valid() && !to.Valid() {
		return true
	}
	if !d.Valid() {
		return false
	}
	if from.Valid() && d.Time().Before(from.Time()) {
		return false
	}
	if to.Valid() && d.Time().After(to.Time()) {
		return false
	}
	return true
}

// Apply filters records through match and stable-sorts the survivors with
// cmp, reversed for a descending direction. Equal keys keep their prior
// relative order. A nil cmp skips sorting, a nil match keeps everything.
func Apply[R any](records []R, cmp func(a, b R) int, dir SortDirection, match func(R) bool) []R {
	out := make([]R, 0, len(records))
	for _, r := range records {
		if match == nil || match(r) {
			out = append(out, r)
		}
	}
	if cmp != nil {
		if dir == Descending {
			sort.SliceStable(out, func(i, j int) bool { return cmp(out[i], out[j]) > 0 })
		} else {
			sort.SliceStable(out, func(i, j int) bool { return cmp(out[i], out[j]) < 0 })
		}
	}
	return out
}
