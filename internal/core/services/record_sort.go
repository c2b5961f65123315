package services

import (
	"github.com/findash/finance_dashboard_app/internal/core/domain"
	"github.com/findash/finance_dashboard_app/internal/dto"
	"github.com/findash/finance_dashboard_app/internal/utils/projection"
)

// compareDates orders two record dates chronologically. Invalid dates sort
// before valid ones; two invalid dates fall back to their raw strings so the
// ordering stays deterministic.
func compareDates(a, b domain.Date) int {
	switch {
	case !a.Valid() && !b.Valid():
		switch {
		case a.String() < b.String():
			return -1
		case a.String() > b.String():
			return 1
		}
		return 0
	case !a.Valid():
		return -1
	case !b.Valid():
		return 1
	}
	return a.Time().Compare(b.Time())
}

// sortDirection maps the query parameter onto a projection direction,
// defaulting to ascending.
func sortDirection(params dto.ListRecordsParams) projection.SortDirection {
	if params.SortDir == string(projection.Descending) {
		return projection.Descending
	}
	return projection.Ascending
}

// recordFilter builds the composed text/date-range filter from the query
// parameters. Date bounds that fail to parse are treated as unset.
func recordFilter(params dto.ListRecordsParams) projection.Filter {
	return projection.Filter{
		Search: params.Search,
		From:   domain.ParseDate(params.From),
		To:     domain.ParseDate(params.To),
	}
}
