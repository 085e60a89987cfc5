package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// cadTimeLayout matches the CAD service's compact calendar format,
	// e.g. "1900-Dec-27 01:30".
	cadTimeLayout = "2006-Jan-02 15:04"

	// displayTimeLayout is the output format for approach times. The source
	// data carries no seconds, so none are shown.
	displayTimeLayout = "2006-01-02 15:04"
)

// ApproachRecord is the loose field mapping a loader extracts from one entry
// of the close-approach JSON. All fields are raw text; coercion and
// validation happen in NewCloseApproach.
type ApproachRecord struct {
	Designation string // required, FK to the NEO dataset
	Time        string // required, compact CAD format
	Distance    string // required, au
	Velocity    string // required, km/s
}

// CloseApproach is a single close approach of an NEO to Earth. Instances are
// built once from a record, linked to their NEO when the database is
// constructed, and immutable afterwards.
type CloseApproach struct {
	Designation string
	Time        time.Time // UTC
	Distance    float64   // au
	Velocity    float64   // km/s

	// NEO points at the canonical object owned by the database. Nil until
	// linking; after linking this approach appears exactly once in NEO.Approaches.
	NEO *NearEarthObject
}

// ParseApproachTime parses the CAD compact calendar format into a UTC time.
func ParseApproachTime(s string) (time.Time, error) {
	return time.ParseInLocation(cadTimeLayout, strings.TrimSpace(s), time.UTC)
}

// FormatApproachTime renders a UTC time in the fixed display format, dropping
// seconds that do not exist in the source data.
func FormatApproachTime(t time.Time) string {
	return t.UTC().Format(displayTimeLayout)
}

// NewCloseApproach validates and coerces a raw close-approach record. All
// four fields are required; a missing or malformed field yields a
// ValidationError.
func NewCloseApproach(rec ApproachRecord) (*CloseApproach, error) {
	designation := NormalizeDesignation(rec.Designation)
	if designation == "" {
		return nil, validationErr("approach", "designation", "required field is empty")
	}

	t, err := ParseApproachTime(rec.Time)
	if err != nil {
		return nil, validationErr("approach", "time", "cannot parse %q: %v", rec.Time, err)
	}

	distance, err := requiredFloat("approach", "distance", rec.Distance)
	if err != nil {
		return nil, err
	}
	velocity, err := requiredFloat("approach", "velocity", rec.Velocity)
	if err != nil {
		return nil, err
	}

	return &CloseApproach{
		Designation: designation,
		Time:        t,
		Distance:    distance,
		Velocity:    velocity,
	}, nil
}

func requiredFloat(entity, field, raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, validationErr(entity, field, "required field is empty")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, validationErr(entity, field, "cannot parse %q as a number", raw)
	}
	return v, nil
}

// TimeStr returns the approach time in the fixed display format.
func (ca *CloseApproach) TimeStr() string {
	return FormatApproachTime(ca.Time)
}

// fullname falls back to the bare designation before linking.
func (ca *CloseApproach) fullname() string {
	if ca.NEO != nil {
		return ca.NEO.Fullname()
	}
	return ca.Designation
}

// String returns a human-readable description of the approach event.
func (ca *CloseApproach) String() string {
	return fmt.Sprintf("At %s, %q approaches Earth at a distance of %.3f au and a velocity of %.3f km/s.",
		ca.TimeStr(), ca.fullname(), ca.Distance, ca.Velocity)
}

// GoString returns a machine-oriented debug form.
func (ca *CloseApproach) GoString() string {
	return fmt.Sprintf("CloseApproach{Time: %q, Distance: %.3f, Velocity: %.3f, NEO: %#v}",
		ca.TimeStr(), ca.Distance, ca.Velocity, ca.NEO)
}

// Serialize returns a flat mapping of canonical field names to values for
// tabular or structured export. The NEO back-reference is excluded; exporters
// merge in the NEO's own serialization.
func (ca *CloseApproach) Serialize() map[string]any {
	return map[string]any{
		"datetime_utc":  ca.TimeStr(),
		"distance_au":   ca.Distance,
		"velocity_km_s": ca.Velocity,
	}
}
