// Package query translates user-supplied filter options into database
// predicates and hosts result limiting, which the database deliberately
// leaves to its consumers.
package query

import (
	"fmt"
	"iter"
	"net/url"
	"strconv"
	"time"

	"github.com/orbitwatch/neoquery/internal/domain"
	"github.com/orbitwatch/neoquery/internal/neodb"
)

// dateLayout is the calendar-date format accepted on the CLI and the HTTP
// query string.
const dateLayout = "2006-01-02"

// Criteria is an explicit options structure of independent filter dimensions.
// A nil field means no constraint on that dimension; all bounds are
// inclusive.
type Criteria struct {
	Date      *time.Time
	StartDate *time.Time
	EndDate   *time.Time

	MinDistance *float64 // au
	MaxDistance *float64 // au
	MinVelocity *float64 // km/s
	MaxVelocity *float64 // km/s
	MinDiameter *float64 // km
	MaxDiameter *float64 // km

	Hazardous *bool
}

// Filters compiles the criteria into the conjunction of predicates the
// database evaluates.
func (c Criteria) Filters() []neodb.Filter {
	var filters []neodb.Filter
	if c.Date != nil {
		filters = append(filters, neodb.DateEquals(*c.Date))
	}
	if c.StartDate != nil {
		filters = append(filters, neodb.DateOnOrAfter(*c.StartDate))
	}
	if c.EndDate != nil {
		filters = append(filters, neodb.DateOnOrBefore(*c.EndDate))
	}
	if c.MinDistance != nil {
		filters = append(filters, neodb.MinDistance(*c.MinDistance))
	}
	if c.MaxDistance != nil {
		filters = append(filters, neodb.MaxDistance(*c.MaxDistance))
	}
	if c.MinVelocity != nil {
		filters = append(filters, neodb.MinVelocity(*c.MinVelocity))
	}
	if c.MaxVelocity != nil {
		filters = append(filters, neodb.MaxVelocity(*c.MaxVelocity))
	}
	if c.MinDiameter != nil {
		filters = append(filters, neodb.MinDiameter(*c.MinDiameter))
	}
	if c.MaxDiameter != nil {
		filters = append(filters, neodb.MaxDiameter(*c.MaxDiameter))
	}
	if c.Hazardous != nil {
		filters = append(filters, neodb.Hazardous(*c.Hazardous))
	}
	return filters
}

// ParseDate parses a YYYY-MM-DD calendar date in UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.UTC)
}

// FromValues builds Criteria from URL query parameters. Recognized keys:
// date, start_date, end_date (YYYY-MM-DD); min_distance, max_distance,
// min_velocity, max_velocity, min_diameter, max_diameter (decimal);
// hazardous (true/false). Absent or empty parameters impose no constraint.
func FromValues(values url.Values) (Criteria, error) {
	var c Criteria

	dates := []struct {
		key string
		dst **time.Time
	}{
		{"date", &c.Date},
		{"start_date", &c.StartDate},
		{"end_date", &c.EndDate},
	}
	for _, p := range dates {
		s := values.Get(p.key)
		if s == "" {
			continue
		}
		t, err := ParseDate(s)
		if err != nil {
			return Criteria{}, fmt.Errorf("parameter %q: expected YYYY-MM-DD, got %q", p.key, s)
		}
		*p.dst = &t
	}

	floats := []struct {
		key string
		dst **float64
	}{
		{"min_distance", &c.MinDistance},
		{"max_distance", &c.MaxDistance},
		{"min_velocity", &c.MinVelocity},
		{"max_velocity", &c.MaxVelocity},
		{"min_diameter", &c.MinDiameter},
		{"max_diameter", &c.MaxDiameter},
	}
	for _, p := range floats {
		s := values.Get(p.key)
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Criteria{}, fmt.Errorf("parameter %q: expected a number, got %q", p.key, s)
		}
		*p.dst = &v
	}

	if s := values.Get("hazardous"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return Criteria{}, fmt.Errorf("parameter %q: expected true or false, got %q", "hazardous", s)
		}
		c.Hazardous = &v
	}

	return c, nil
}

// Limit truncates a result sequence after n elements without scanning the
// remainder. n <= 0 means no limit.
func Limit(results iter.Seq[*domain.CloseApproach], n int) iter.Seq[*domain.CloseApproach] {
	if n <= 0 {
		return results
	}
	return func(yield func(*domain.CloseApproach) bool) {
		seen := 0
		for ca := range results {
			if !yield(ca) {
				return
			}
			seen++
			if seen == n {
				return
			}
		}
	}
}
