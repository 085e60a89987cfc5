package export

import (
	"encoding/json"
	"io"
	"math"

	"github.com/orbitwatch/neoquery/internal/domain"
)

// jsonApproach is one exported result: the approach fields flat, the NEO
// nested under "neo" to avoid a cyclic structure.
type jsonApproach struct {
	DatetimeUTC string  `json:"datetime_utc"`
	DistanceAU  float64 `json:"distance_au"`
	VelocityKmS float64 `json:"velocity_km_s"`
	NEO         jsonNEO `json:"neo"`
}

type jsonNEO struct {
	Designation          string   `json:"designation"`
	Name                 string   `json:"name"`
	DiameterKm           *float64 `json:"diameter_km"` // null = unknown
	PotentiallyHazardous bool     `json:"potentially_hazardous"`
}

// WriteJSON writes results as an indented JSON array.
func WriteJSON(w io.Writer, results Results) error {
	// Materialized here, not in the database: a single JSON document cannot
	// be emitted element-by-element without committing to the full set anyway.
	rows := []jsonApproach{}
	for ca := range results {
		rows = append(rows, jsonRow(ca))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func jsonRow(ca *domain.CloseApproach) jsonApproach {
	var diameter *float64
	if !math.IsNaN(ca.NEO.Diameter) {
		d := round3(ca.NEO.Diameter)
		diameter = &d
	}
	return jsonApproach{
		DatetimeUTC: ca.TimeStr(),
		DistanceAU:  round3(ca.Distance),
		VelocityKmS: round3(ca.Velocity),
		NEO: jsonNEO{
			Designation:          ca.NEO.Designation,
			Name:                 ca.NEO.Name,
			DiameterKm:           diameter,
			PotentiallyHazardous: ca.NEO.Hazardous,
		},
	}
}

// round3 keeps JSON numbers at the contract's three decimal places.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
