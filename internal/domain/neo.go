package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NEORecord is the loose field mapping a loader extracts from one row of the
// NEO CSV. All fields are raw text; coercion and validation happen in
// NewNearEarthObject.
type NEORecord struct {
	Designation string // "pdes" column, required
	Name        string // optional IAU name
	Diameter    string // km, empty or unparseable = unknown
	Hazardous   string // "Y" = potentially hazardous
}

// NearEarthObject is a single near-Earth object. Instances are built once
// from a record, linked to their approaches when the database is constructed,
// and immutable afterwards.
type NearEarthObject struct {
	Designation string
	Name        string  // empty = unnamed
	Diameter    float64 // km, NaN = unknown
	Hazardous   bool

	// Approaches holds back-references to this object's close approaches, in
	// dataset order. Populated by the database during linking, not owned here.
	Approaches []*CloseApproach
}

// NormalizeDesignation canonicalizes a primary designation so the two
// datasets join on the same key regardless of whitespace or letter case.
func NormalizeDesignation(designation string) string {
	return strings.ToUpper(strings.TrimSpace(designation))
}

// NewNearEarthObject validates and coerces a raw NEO record. The designation
// is required; name and diameter are optional and resolve to their absent
// sentinels (empty string, NaN) rather than failing.
func NewNearEarthObject(rec NEORecord) (*NearEarthObject, error) {
	designation := NormalizeDesignation(rec.Designation)
	if designation == "" {
		return nil, validationErr("neo", "designation", "required field is empty")
	}

	diameter := math.NaN()
	if s := strings.TrimSpace(rec.Diameter); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			diameter = v
		}
	}

	return &NearEarthObject{
		Designation: designation,
		Name:        strings.TrimSpace(rec.Name),
		Diameter:    diameter,
		Hazardous:   strings.TrimSpace(rec.Hazardous) == "Y",
	}, nil
}

// Fullname returns "designation (name)" for named objects, else the bare
// designation.
func (n *NearEarthObject) Fullname() string {
	if n.Name != "" {
		return fmt.Sprintf("%s (%s)", n.Designation, n.Name)
	}
	return n.Designation
}

// String returns a human-readable description, omitting the diameter when it
// is unknown.
func (n *NearEarthObject) String() string {
	status := "is not"
	if n.Hazardous {
		status = "is"
	}
	if math.IsNaN(n.Diameter) {
		return fmt.Sprintf("NEO %s, %s potentially hazardous.", n.Fullname(), status)
	}
	return fmt.Sprintf("NEO %s has a diameter of %.3f km and %s potentially hazardous.",
		n.Fullname(), n.Diameter, status)
}

// GoString returns a machine-oriented debug form.
func (n *NearEarthObject) GoString() string {
	return fmt.Sprintf("NearEarthObject{Designation: %q, Name: %q, Diameter: %.3f, Hazardous: %t}",
		n.Designation, n.Name, n.Diameter, n.Hazardous)
}

// Serialize returns a flat mapping of canonical field names to values for
// tabular or structured export. The approach back-references are deliberately
// excluded to keep the mapping acyclic.
func (n *NearEarthObject) Serialize() map[string]any {
	return map[string]any{
		"designation":           n.Designation,
		"name":                  n.Name,
		"diameter_km":           n.Diameter,
		"potentially_hazardous": n.Hazardous,
	}
}
