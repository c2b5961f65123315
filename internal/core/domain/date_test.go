package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/findash/finance_dashboard_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_AcceptedLayouts(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		valid bool
	}{
		{"plain date", "2026-03-15", true},
		{"rfc3339", "2026-03-15T10:30:00Z", true},
		{"datetime without zone", "2026-03-15T10:30:00", true},
		{"garbage", "not-a-date", false},
		{"empty", "", false},
		{"impossible day", "2026-02-31", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := domain.ParseDate(tc.input)
			assert.Equal(t, tc.valid, d.Valid())
			assert.Equal(t, tc.input, d.String(), "raw string must survive parsing")
		})
	}
}

func TestDate_After(t *testing.T) {
	earlier := domain.ParseDate("2026-01-10")
	later := domain.ParseDate("2026-01-11")
	invalid := domain.ParseDate("bogus")

	assert.True(t, later.After(earlier))
	assert.False(t, earlier.After(later))
	assert.False(t, earlier.After(earlier), "same day is not after")
	assert.False(t, invalid.After(earlier))
	assert.False(t, later.After(invalid))
}

func TestDate_Between(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	assert.True(t, domain.ParseDate("2026-01-01").Between(start, end), "start is inclusive")
	assert.True(t, domain.ParseDate("2026-01-31").Between(start, end), "end is inclusive")
	assert.True(t, domain.ParseDate("2026-01-15").Between(start, end))
	assert.False(t, domain.ParseDate("2025-12-31").Between(start, end))
	assert.False(t, domain.ParseDate("2026-02-01").Between(start, end))
	assert.False(t, domain.ParseDate("bogus").Between(start, end))
}

func TestDate_JSONRoundTripPreservesInvalidRaw(t *testing.T) {
	var d domain.Date
	require.NoError(t, json.Unmarshal([]byte(`"13/01/2026"`), &d))
	assert.False(t, d.Valid())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"13/01/2026"`, string(out))
}

func TestNewDate_TruncatesToDay(t *testing.T) {
	d := domain.NewDate(time.Date(2026, 7, 4, 15, 42, 9, 0, time.UTC))
	require.True(t, d.Valid())
	assert.Equal(t, "2026-07-04", d.String())
	assert.Equal(t, time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC), d.Time())
}
