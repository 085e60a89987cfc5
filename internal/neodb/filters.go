package neodb

import (
	"time"

	"github.com/orbitwatch/neoquery/internal/domain"
)

// Filter is a single query predicate over a close approach. A query matches
// an approach only when every supplied filter does; an empty filter set
// matches everything.
type Filter func(*domain.CloseApproach) bool

// dateOf truncates a time to its UTC calendar date. Date filters compare the
// date portion only, never the time of day.
func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateEquals matches approaches occurring on the given calendar date.
func DateEquals(date time.Time) Filter {
	want := dateOf(date)
	return func(ca *domain.CloseApproach) bool {
		return dateOf(ca.Time).Equal(want)
	}
}

// DateOnOrAfter matches approaches on or after the given calendar date.
func DateOnOrAfter(date time.Time) Filter {
	want := dateOf(date)
	return func(ca *domain.CloseApproach) bool {
		return !dateOf(ca.Time).Before(want)
	}
}

// DateOnOrBefore matches approaches on or before the given calendar date.
func DateOnOrBefore(date time.Time) Filter {
	want := dateOf(date)
	return func(ca *domain.CloseApproach) bool {
		return !dateOf(ca.Time).After(want)
	}
}

// MinDistance matches approaches at or beyond the given distance in au.
func MinDistance(au float64) Filter {
	return func(ca *domain.CloseApproach) bool { return ca.Distance >= au }
}

// MaxDistance matches approaches at or within the given distance in au.
func MaxDistance(au float64) Filter {
	return func(ca *domain.CloseApproach) bool { return ca.Distance <= au }
}

// MinVelocity matches approaches at or above the given velocity in km/s.
func MinVelocity(kms float64) Filter {
	return func(ca *domain.CloseApproach) bool { return ca.Velocity >= kms }
}

// MaxVelocity matches approaches at or below the given velocity in km/s.
func MaxVelocity(kms float64) Filter {
	return func(ca *domain.CloseApproach) bool { return ca.Velocity <= kms }
}

// MinDiameter matches approaches whose NEO has a known diameter of at least
// km kilometers. An unknown (NaN) diameter fails every comparison, so such
// approaches never satisfy a diameter bound.
func MinDiameter(km float64) Filter {
	return func(ca *domain.CloseApproach) bool { return ca.NEO.Diameter >= km }
}

// MaxDiameter matches approaches whose NEO has a known diameter of at most
// km kilometers. Unknown diameters never match.
func MaxDiameter(km float64) Filter {
	return func(ca *domain.CloseApproach) bool { return ca.NEO.Diameter <= km }
}

// Hazardous matches approaches whose NEO's hazardous flag equals the given
// value.
func Hazardous(hazardous bool) Filter {
	return func(ca *domain.CloseApproach) bool { return ca.NEO.Hazardous == hazardous }
}
